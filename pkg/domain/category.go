package domain

// Category selects the prompt and context used for free-form answering.
type Category string

const (
	CategoryFinancial  Category = "financial"
	CategoryTax        Category = "tax"
	CategoryLegal      Category = "legal"
	CategoryInvestment Category = "investment"
)

// Valid reports whether c is one of the four known advisor categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFinancial, CategoryTax, CategoryLegal, CategoryInvestment:
		return true
	}
	return false
}

// DisplayName returns a human-friendly advisor name for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryTax:
		return "Tax Advisor"
	case CategoryLegal:
		return "Legal Advisor"
	case CategoryInvestment:
		return "Investment Advisor"
	default:
		return "Financial Advisor"
	}
}
