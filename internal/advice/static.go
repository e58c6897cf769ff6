package advice

import (
	"context"

	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/ports"
)

// StaticGenerator answers with canned per-category guidance. It backs
// the CLI chat when no API key is configured and keeps tests offline.
type StaticGenerator struct{}

var _ ports.AdviceGenerator = (*StaticGenerator)(nil)

// NewStaticGenerator returns a generator that never fails.
func NewStaticGenerator() *StaticGenerator {
	return &StaticGenerator{}
}

var staticAnswers = map[domain.Category]string{
	domain.CategoryFinancial:  "A good starting point is a simple monthly budget: list your income, fixed bills and everything left over, then decide up front how much of the surplus you save. If you tell me more about your situation I can be more specific.",
	domain.CategoryTax:        "Tax rules depend heavily on your country and income type. Gather your income documents first, check which reliefs you qualify for, and when in doubt confirm the details with your local tax office or a licensed advisor.",
	domain.CategoryLegal:      "For financial agreements, read the contract before signing, keep copies of everything, and never rely on verbal promises. If real money is at stake, a short consultation with a lawyer is usually worth its cost.",
	domain.CategoryInvestment: "Before picking any instrument, settle three things: your horizon, how much loss you can tolerate, and whether your emergency fund is in place. Broad, low-cost index funds are the usual starting point for long horizons.",
}

// Generate returns the canned answer for the request's category.
func (g *StaticGenerator) Generate(_ context.Context, req *domain.AdviceRequest) (*domain.Advice, error) {
	category := req.Category
	if !category.Valid() {
		category = domain.CategoryFinancial
	}
	return &domain.Advice{
		Answer:     staticAnswers[category],
		Confidence: 0.3,
		Disclaimer: Prompt(category, language(req)).Disclaimer,
	}, nil
}
