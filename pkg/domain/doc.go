/*
Package domain contains the core domain models for the advisory engine.

It defines the entities shared by the three conversation state machines
(the intake form, the advisor router, and the decision tree) plus the
records exchanged with the persistence and advice collaborators. This
package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Session: per-user conversation snapshot (stage, profile, tree state).
  - Profile: the intake form's working state and its completed data view.
  - DecisionNode / TreeSession: the static advisory graph and a user's
    traversal through it.
  - Recommendation: a goal-specific advisory outcome with action items.
*/
package domain
