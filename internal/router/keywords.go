package router

// Keyword sets for intent classification. Matching is lower-cased
// substring search in the fixed priority order tax > legal > investment >
// financial, with financial as the default. The priority order is an
// observable contract relied on by callers.
var (
	taxKeywords = []string{
		"tax", "taxes", "vat", "deduction", "deductible",
		"revenue office", "tax return", "tax relief",
	}

	legalKeywords = []string{
		"legal", "law", "lawyer", "contract", "regulation",
		"inheritance", "lawsuit", "liability",
	}

	investmentKeywords = []string{
		"invest", "investment", "stock", "share", "bond", "etf",
		"exchange", "portfolio", "dividend", "broker",
	}

	financialKeywords = []string{
		"budget", "saving", "savings", "debt", "loan", "credit",
		"mortgage", "emergency fund", "retirement",
	}
)

// Explicit structured-guidance requests. These make the session ready
// for the decision tree with a goal taken from intent classification.
var explicitTreeTriggers = []string{
	"show me options",
	"show options",
	"decision tree",
	"step by step",
	"guide me",
	"walk me through",
	"structured plan",
}

// Implicit guidance requests. These make the session ready but leave the
// goal unresolved, so the reply asks for confirmation first.
var implicitTreeTriggers = []string{
	"what should i do",
	"help me decide",
	"i don't know where to start",
	"i dont know where to start",
	"where do i start",
	"how do i start",
	"not sure what to do",
}

// Debt mentions used for the debt entry-node override.
var debtKeywords = []string{
	"debt", "loan", "credit card", "pay off", "owe",
}
