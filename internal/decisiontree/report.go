package decisiontree

import (
	"fmt"
	"strings"

	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
)

// Report condenses a completed decision path into a short written plan.
// The path is replayed into answers, the goal's recommendations are
// regenerated, and their highlights become the summary and step list. A
// path that cannot be interpreted yields a generic plan rather than an
// error.
func (e *Engine) Report(path []PathEntry, data *domain.ProfileData) *domain.Report {
	answers := make(map[string]string, len(path))
	goal := ""
	for _, entry := range path {
		if entry.NodeID == "" || entry.Selection == "" {
			continue
		}
		answers[entry.NodeID] = entry.Selection
		if entry.NodeID == RootNodeID {
			goal = entry.Selection
		}
	}

	if goal == "" {
		e.logger.Warn("report requested without a goal decision")
		return genericReport()
	}

	recs := e.Recommendations(goal, answers)
	if len(recs) == 0 {
		return genericReport()
	}

	var summary strings.Builder
	if root := e.Root(); root != nil {
		if label := optionLabel(root, goal); label != "" {
			fmt.Fprintf(&summary, "Your chosen goal: %s. ", strings.ToLower(label))
		}
	}
	summary.WriteString(recs[0].Description)
	if data != nil && data.RecommendedAdvisor != "" {
		fmt.Fprintf(&summary, " Based on your profile, the %s can support you further.", strings.ToLower(data.RecommendedAdvisor.DisplayName()))
	}

	steps := make([]string, 0, 4)
	for _, rec := range recs {
		for _, item := range rec.ActionItems {
			steps = append(steps, item)
			if len(steps) == 4 {
				break
			}
		}
		if len(steps) == 4 {
			break
		}
	}

	return &domain.Report{
		Summary: summary.String(),
		Steps:   steps,
	}
}

func optionLabel(node *domain.DecisionNode, optionID string) string {
	for _, opt := range node.Options {
		if opt.ID == optionID {
			return opt.Label
		}
	}
	return ""
}

func genericReport() *domain.Report {
	return &domain.Report{
		Summary: "We could not reconstruct your full decision path, so here is a general plan: define a concrete target amount, save toward it monthly, and review your progress regularly.",
		Steps: []string{
			"Write down a concrete target amount and date",
			"Set a fixed monthly contribution",
			"Automate the transfer on payday",
			"Review progress every quarter",
		},
	}
}
