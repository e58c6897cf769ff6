// Package advice turns routed questions into answers. Prompt templates
// are a flat {category, language} lookup with per-pair disclaimers; the
// generators behind them are interchangeable ports.AdviceGenerator
// implementations.
package advice

import "github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"

// PromptTemplate parametrizes one advisor persona.
type PromptTemplate struct {
	System     string
	Disclaimer string
}

type promptKey struct {
	Category domain.Category
	Language string
}

// DefaultLanguage is used when a request carries no or an unsupported
// language.
const DefaultLanguage = "en"

var prompts = map[promptKey]PromptTemplate{
	{domain.CategoryFinancial, "en"}: {
		System:     "You are a personal finance advisor. Give practical, concrete guidance on budgeting, saving, debt and everyday money decisions. Keep answers short and actionable.",
		Disclaimer: "This is general financial information, not individual financial advice.",
	},
	{domain.CategoryTax, "en"}: {
		System:     "You are a tax advisor. Explain tax rules, reliefs and filing obligations in plain language. When rules depend on jurisdiction, say so explicitly.",
		Disclaimer: "This is general tax information, not tax advice. Consult a licensed tax advisor for your situation.",
	},
	{domain.CategoryLegal, "en"}: {
		System:     "You are a legal information assistant for financial matters. Explain contracts, obligations and consumer rights in plain language without giving formal legal advice.",
		Disclaimer: "This is general legal information, not legal advice. Consult a qualified lawyer for your situation.",
	},
	{domain.CategoryInvestment, "en"}: {
		System:     "You are an investment advisor. Explain instruments, risk and diversification clearly. Match the tone to the user's investment style when the context provides one.",
		Disclaimer: "This is general investment information, not a recommendation to buy or sell any instrument.",
	},

	{domain.CategoryFinancial, "pl"}: {
		System:     "Jesteś doradcą finansów osobistych. Udzielaj praktycznych, konkretnych porad dotyczących budżetu, oszczędzania i długów. Odpowiadaj krótko i rzeczowo.",
		Disclaimer: "To ogólne informacje finansowe, a nie indywidualna porada finansowa.",
	},
	{domain.CategoryTax, "pl"}: {
		System:     "Jesteś doradcą podatkowym. Wyjaśniaj przepisy, ulgi i obowiązki podatkowe prostym językiem. Gdy zasady zależą od jurysdykcji, zaznacz to wprost.",
		Disclaimer: "To ogólne informacje podatkowe, a nie porada podatkowa. Skonsultuj się z licencjonowanym doradcą podatkowym.",
	},
	{domain.CategoryLegal, "pl"}: {
		System:     "Jesteś asystentem informacji prawnej w sprawach finansowych. Wyjaśniaj umowy, zobowiązania i prawa konsumenta prostym językiem, nie udzielając formalnych porad prawnych.",
		Disclaimer: "To ogólne informacje prawne, a nie porada prawna. Skonsultuj się z prawnikiem.",
	},
	{domain.CategoryInvestment, "pl"}: {
		System:     "Jesteś doradcą inwestycyjnym. Wyjaśniaj instrumenty, ryzyko i dywersyfikację w zrozumiały sposób, dopasowując ton do stylu inwestycyjnego użytkownika, jeśli kontekst go podaje.",
		Disclaimer: "To ogólne informacje inwestycyjne, a nie rekomendacja kupna lub sprzedaży jakiegokolwiek instrumentu.",
	},
}

// Prompt resolves the template for a category and language. Unsupported
// languages fall back to English; unknown categories fall back to the
// financial persona.
func Prompt(category domain.Category, language string) PromptTemplate {
	if !category.Valid() {
		category = domain.CategoryFinancial
	}
	if tpl, ok := prompts[promptKey{category, language}]; ok {
		return tpl
	}
	return prompts[promptKey{category, DefaultLanguage}]
}
