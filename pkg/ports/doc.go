/*
Package ports defines the driven ports (interfaces) for the advisory core.

These interfaces decouple the conversation engines from external
implementations, allowing the orchestrator to work with various storage
backends and advice generators.

# Key Interfaces

  - SessionStore: persists and loads per-user Session snapshots.
  - Store: the archival persistence collaborator (profiles, interactions,
    decision steps); fire-and-forget from the core's perspective.
  - AdviceGenerator: the external generative service producing advice prose.
  - DistributedLocker: distributed locking for concurrent session access.
*/
package ports
