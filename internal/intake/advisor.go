package intake

import (
	"strings"

	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
)

// Goal keyword sets scanned in fixed priority: tax > legal > investment.
var (
	goalTaxKeywords        = []string{"tax", "vat", "deduction", "revenue office"}
	goalLegalKeywords      = []string{"legal", "law", "contract", "regulation"}
	goalInvestmentKeywords = []string{"invest", "stock", "share", "bond", "etf", "exchange", "portfolio"}
)

// RecommendAdvisor derives the advisor category from the profile. Pure
// and re-derivable at any time: the free-text goal is scanned for
// category keywords first; otherwise a small rule table over the
// behavioral answers applies, defaulting to the financial advisor.
func (e *Engine) RecommendAdvisor(p *domain.Profile) domain.Category {
	if !e.requiredFilled(p) {
		return domain.CategoryFinancial
	}

	goal := strings.ToLower(p.StringValue("financial_goal"))
	switch {
	case containsAny(goal, goalTaxKeywords):
		return domain.CategoryTax
	case containsAny(goal, goalLegalKeywords):
		return domain.CategoryLegal
	case containsAny(goal, goalInvestmentKeywords):
		return domain.CategoryInvestment
	}

	risk := p.StringValue("risk_tolerance")
	discipline := p.StringValue("financial_discipline")
	horizon := p.StringValue("time_preference")

	if risk == "aggressive" && horizon == "long_term" {
		return domain.CategoryInvestment
	}
	if risk == "conservative" && discipline == "strict" {
		return domain.CategoryFinancial
	}
	return domain.CategoryFinancial
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
