package intake

// Field describes one intake question. Financial fields precede
// behavioral fields in the fixed form order.
type Field struct {
	Name     string
	Prompt   string
	Required bool
	Type     string // domain.FieldText, domain.FieldNumber, domain.FieldChoice

	// Options and Mapping are set for choice fields only. When a mapping
	// exists, the mapped semantic label is stored instead of the raw key.
	Options []string
	Mapping map[string]string

	// Financial splits the profile view into its two subsets.
	Financial bool
}

// fieldOrder is the fixed question sequence: financial first, then
// behavioral profiling. The cursor in domain.Profile indexes this slice.
var fieldOrder = []Field{
	{Name: "age", Prompt: "How old are you?", Required: true, Type: "number", Financial: true},
	{Name: "country", Prompt: "Which country do you live in?", Required: true, Type: "text", Financial: true},
	{Name: "region", Prompt: "Which region/state/province do you live in?", Required: false, Type: "text", Financial: true},
	{Name: "income", Prompt: "What is your monthly income?", Required: true, Type: "number", Financial: true},
	{Name: "expenses", Prompt: "What are your mandatory monthly expenses?", Required: true, Type: "number", Financial: true},
	{Name: "savings", Prompt: "How much do you have in savings?", Required: true, Type: "number", Financial: true},
	{Name: "debt", Prompt: "How much debt do you carry?", Required: false, Type: "number", Financial: true},
	{Name: "investments", Prompt: "Which companies or assets do you currently invest in?", Required: false, Type: "text", Financial: true},
	{Name: "investment_horizon", Prompt: "Over how many years do you plan your investments?", Required: false, Type: "number", Financial: true},
	{
		Name:     "risk_tolerance",
		Prompt:   "How do you react to financial losses?\n(a) I avoid them at all costs\n(b) I accept small losses\n(c) I accept bigger risk for potentially bigger gains",
		Required: true,
		Type:     "choice",
		Options:  []string{"a", "b", "c"},
		Mapping:  map[string]string{"a": "conservative", "b": "moderate", "c": "aggressive"},
	},
	{
		Name:     "decision_style",
		Prompt:   "How do you make important financial decisions?\n(a) I analyze all the data\n(b) I follow my intuition\n(c) I consult with others\n(d) I decide quickly",
		Required: true,
		Type:     "choice",
		Options:  []string{"a", "b", "c", "d"},
		Mapping:  map[string]string{"a": "analytical", "b": "intuitive", "c": "consultative", "d": "directive"},
	},
	{
		Name:     "financial_discipline",
		Prompt:   "How would you rate your budgeting discipline?\n(a) I stick strictly to the plan\n(b) I mostly stick to the plan with some exceptions\n(c) I often spend impulsively",
		Required: true,
		Type:     "choice",
		Options:  []string{"a", "b", "c"},
		Mapping:  map[string]string{"a": "strict", "b": "flexible", "c": "impulsive"},
	},
	{
		Name:     "time_preference",
		Prompt:   "Over what horizon do you usually plan your finances?\n(a) Short term (up to a year)\n(b) Medium term (1-5 years)\n(c) Long term (over 5 years)",
		Required: true,
		Type:     "choice",
		Options:  []string{"a", "b", "c"},
		Mapping:  map[string]string{"a": "short_term", "b": "medium_term", "c": "long_term"},
	},
	{Name: "financial_goal", Prompt: "What is your main financial goal?", Required: true, Type: "text", Financial: false},
}

// Fields returns the fixed question sequence.
func Fields() []Field {
	return fieldOrder
}
