package decisiontree

import "github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"

// RootNodeID is the single entry point of the advisory graph.
const RootNodeID = "root"

// Goal identifiers, i.e. the option set of the root node.
const (
	GoalEmergencyFund = "emergency_fund"
	GoalDebtReduction = "debt_reduction"
	GoalHomePurchase  = "home_purchase"
	GoalRetirement    = "retirement"
	GoalEducation     = "education"
	GoalVacation      = "vacation"
	GoalOther         = "other"
)

// expectedPathLength is the fixed number of journey steps per goal,
// including the root. Progress saturates at 1.0 against this length.
const expectedPathLength = 4

// buildGraph returns the static advisory graph: one root asking for the
// financial goal, then one three-question branch per goal ending in a
// recommendation node.
func buildGraph() map[string]*domain.DecisionNode {
	nodes := []*domain.DecisionNode{
		{
			ID:       RootNodeID,
			Type:     domain.NodeQuestion,
			Question: "What is your main financial goal?",
			Options: []domain.Option{
				{ID: GoalEmergencyFund, Label: "Emergency fund"},
				{ID: GoalDebtReduction, Label: "Paying off debt"},
				{ID: GoalHomePurchase, Label: "Buying a home"},
				{ID: GoalRetirement, Label: "Saving for retirement"},
				{ID: GoalEducation, Label: "Education (degree, courses)"},
				{ID: GoalVacation, Label: "Vacation and travel"},
				{ID: GoalOther, Label: "Another goal"},
			},
			Next: map[string]string{
				GoalEmergencyFund: "ef_timeframe",
				GoalDebtReduction: "debt_type",
				GoalHomePurchase:  "home_timeframe",
				GoalRetirement:    "retirement_age",
				GoalEducation:     "education_timeframe",
				GoalVacation:      "vacation_timeframe",
				GoalOther:         "other_goal_amount",
			},
		},

		// Emergency fund branch
		{
			ID:       "ef_timeframe",
			Type:     domain.NodeQuestion,
			Question: "How quickly do you want to build your emergency fund?",
			Options: []domain.Option{
				{ID: "short", Label: "Within 6 months"},
				{ID: "medium", Label: "Within a year"},
				{ID: "long", Label: "Within 1-2 years"},
			},
			Next: map[string]string{"short": "ef_amount", "medium": "ef_amount", "long": "ef_amount"},
		},
		{
			ID:       "ef_amount",
			Type:     domain.NodeQuestion,
			Question: "How many months of expenses should the fund cover?",
			Options: []domain.Option{
				{ID: "three", Label: "3 months of expenses"},
				{ID: "six", Label: "6 months of expenses"},
				{ID: "twelve", Label: "12 months of expenses"},
			},
			Next: map[string]string{"three": "ef_savings_method", "six": "ef_savings_method", "twelve": "ef_savings_method"},
		},
		{
			ID:       "ef_savings_method",
			Type:     domain.NodeQuestion,
			Question: "Which way of saving do you prefer?",
			Options: []domain.Option{
				{ID: "automatic", Label: "Automatically setting aside a fixed amount"},
				{ID: "percentage", Label: "Setting aside a percentage of income"},
				{ID: "surplus", Label: "Setting aside budget surpluses"},
			},
			Next: map[string]string{"automatic": "ef_recommendation", "percentage": "ef_recommendation", "surplus": "ef_recommendation"},
		},
		{
			ID:   "ef_recommendation",
			Type: domain.NodeRecommendation,
			Template: &domain.RecommendationTemplate{
				Title:       "Emergency fund plan",
				Description: "We prepared a strategy for building your emergency fund.",
			},
		},

		// Debt reduction branch
		{
			ID:       "debt_type",
			Type:     domain.NodeQuestion,
			Question: "Which kind of debt do you want to pay off first?",
			Options: []domain.Option{
				{ID: "credit_card", Label: "Credit cards / payday loans (high interest)"},
				{ID: "consumer", Label: "Consumer loans"},
				{ID: "mortgage", Label: "Mortgage"},
				{ID: "student", Label: "Student loan"},
				{ID: "multiple", Label: "I have several different obligations"},
			},
			Next: map[string]string{
				"credit_card": "debt_total_amount", "consumer": "debt_total_amount",
				"mortgage": "debt_total_amount", "student": "debt_total_amount", "multiple": "debt_total_amount",
			},
		},
		{
			ID:       "debt_total_amount",
			Type:     domain.NodeQuestion,
			Question: "What is the total amount of your debt?",
			Options: []domain.Option{
				{ID: "small", Label: "Up to 10,000"},
				{ID: "medium", Label: "10,000 - 50,000"},
				{ID: "large", Label: "50,000 - 200,000"},
				{ID: "very_large", Label: "Over 200,000"},
			},
			Next: map[string]string{
				"small": "debt_strategy", "medium": "debt_strategy",
				"large": "debt_strategy", "very_large": "debt_strategy",
			},
		},
		{
			ID:       "debt_strategy",
			Type:     domain.NodeQuestion,
			Question: "Which repayment strategy do you prefer?",
			Options: []domain.Option{
				{ID: "avalanche", Label: "Highest interest first (avalanche method)"},
				{ID: "snowball", Label: "Smallest balances first (snowball method)"},
				{ID: "consolidation", Label: "Debt consolidation"},
				{ID: "not_sure", Label: "I am not sure"},
			},
			Next: map[string]string{
				"avalanche": "debt_recommendation", "snowball": "debt_recommendation",
				"consolidation": "debt_recommendation", "not_sure": "debt_recommendation",
			},
		},
		{
			ID:   "debt_recommendation",
			Type: domain.NodeRecommendation,
			Template: &domain.RecommendationTemplate{
				Title:       "Debt reduction plan",
				Description: "We prepared a strategy for reducing your debt.",
			},
		},

		// Home purchase branch
		{
			ID:       "home_timeframe",
			Type:     domain.NodeQuestion,
			Question: "When are you planning to buy the property?",
			Options: []domain.Option{
				{ID: "short", Label: "Within 1-2 years"},
				{ID: "medium", Label: "Within 3-5 years"},
				{ID: "long", Label: "Within 5-10 years"},
			},
			Next: map[string]string{"short": "home_down_payment", "medium": "home_down_payment", "long": "home_down_payment"},
		},
		{
			ID:       "home_down_payment",
			Type:     domain.NodeQuestion,
			Question: "What share of the property value do you plan to save as a down payment?",
			Options: []domain.Option{
				{ID: "ten", Label: "10% (minimum requirement)"},
				{ID: "twenty", Label: "20% (standard)"},
				{ID: "thirty_plus", Label: "30% or more"},
				{ID: "full", Label: "100% (buying without a mortgage)"},
			},
			Next: map[string]string{
				"ten": "home_budget", "twenty": "home_budget",
				"thirty_plus": "home_budget", "full": "home_budget",
			},
		},
		{
			ID:       "home_budget",
			Type:     domain.NodeQuestion,
			Question: "What is your budget for the purchase?",
			Options: []domain.Option{
				{ID: "small", Label: "Up to 300,000"},
				{ID: "medium", Label: "300,000 - 600,000"},
				{ID: "large", Label: "600,000 - 1,000,000"},
				{ID: "very_large", Label: "Over 1,000,000"},
			},
			Next: map[string]string{
				"small": "home_recommendation", "medium": "home_recommendation",
				"large": "home_recommendation", "very_large": "home_recommendation",
			},
		},
		{
			ID:   "home_recommendation",
			Type: domain.NodeRecommendation,
			Template: &domain.RecommendationTemplate{
				Title:       "Home purchase plan",
				Description: "We prepared a savings strategy for buying a home.",
			},
		},

		// Retirement branch
		{
			ID:       "retirement_age",
			Type:     domain.NodeQuestion,
			Question: "At what age do you plan to retire?",
			Options: []domain.Option{
				{ID: "early", Label: "Earlier than the statutory retirement age"},
				{ID: "standard", Label: "At the standard retirement age"},
				{ID: "late", Label: "Later than the statutory retirement age"},
			},
			Next: map[string]string{"early": "retirement_current_age", "standard": "retirement_current_age", "late": "retirement_current_age"},
		},
		{
			ID:       "retirement_current_age",
			Type:     domain.NodeQuestion,
			Question: "Where are you in your working life right now?",
			Options: []domain.Option{
				{ID: "early", Label: "Early career (20-35)"},
				{ID: "mid", Label: "Mid career (36-50)"},
				{ID: "late", Label: "Late career (51+)"},
			},
			Next: map[string]string{"early": "retirement_vehicle", "mid": "retirement_vehicle", "late": "retirement_vehicle"},
		},
		{
			ID:       "retirement_vehicle",
			Type:     domain.NodeQuestion,
			Question: "Which retirement savings vehicles are you considering?",
			Options: []domain.Option{
				{ID: "pension_account", Label: "Individual pension accounts"},
				{ID: "investment", Label: "My own long-term investments"},
				{ID: "real_estate", Label: "Rental real estate"},
				{ID: "combined", Label: "A combined strategy"},
			},
			Next: map[string]string{
				"pension_account": "retirement_recommendation", "investment": "retirement_recommendation",
				"real_estate": "retirement_recommendation", "combined": "retirement_recommendation",
			},
		},
		{
			ID:   "retirement_recommendation",
			Type: domain.NodeRecommendation,
			Template: &domain.RecommendationTemplate{
				Title:       "Retirement plan",
				Description: "We prepared a retirement savings strategy.",
			},
		},

		// Education branch
		{
			ID:       "education_timeframe",
			Type:     domain.NodeQuestion,
			Question: "When do you plan to start the education?",
			Options: []domain.Option{
				{ID: "short", Label: "Within a year"},
				{ID: "medium", Label: "Within 1-3 years"},
				{ID: "long", Label: "Within 3-5 years"},
			},
			Next: map[string]string{"short": "education_type", "medium": "education_type", "long": "education_type"},
		},
		{
			ID:       "education_type",
			Type:     domain.NodeQuestion,
			Question: "What kind of education are you planning?",
			Options: []domain.Option{
				{ID: "university", Label: "University degree"},
				{ID: "courses", Label: "Specialist courses"},
				{ID: "certification", Label: "Professional certifications"},
				{ID: "child", Label: "Saving for my child's education"},
			},
			Next: map[string]string{
				"university": "education_cost", "courses": "education_cost",
				"certification": "education_cost", "child": "education_cost",
			},
		},
		{
			ID:       "education_cost",
			Type:     domain.NodeQuestion,
			Question: "What is the estimated cost of the planned education?",
			Options: []domain.Option{
				{ID: "small", Label: "Up to 10,000"},
				{ID: "medium", Label: "10,000 - 30,000"},
				{ID: "large", Label: "30,000 - 100,000"},
				{ID: "very_large", Label: "Over 100,000"},
			},
			Next: map[string]string{
				"small": "education_recommendation", "medium": "education_recommendation",
				"large": "education_recommendation", "very_large": "education_recommendation",
			},
		},
		{
			ID:   "education_recommendation",
			Type: domain.NodeRecommendation,
			Template: &domain.RecommendationTemplate{
				Title:       "Education funding plan",
				Description: "We prepared a strategy for funding your education.",
			},
		},

		// Vacation branch
		{
			ID:       "vacation_timeframe",
			Type:     domain.NodeQuestion,
			Question: "When are you planning the trip?",
			Options: []domain.Option{
				{ID: "short", Label: "Within 6 months"},
				{ID: "medium", Label: "Within a year"},
				{ID: "long", Label: "Within 1-2 years"},
			},
			Next: map[string]string{"short": "vacation_cost", "medium": "vacation_cost", "long": "vacation_cost"},
		},
		{
			ID:       "vacation_cost",
			Type:     domain.NodeQuestion,
			Question: "What is the estimated cost of the trip?",
			Options: []domain.Option{
				{ID: "small", Label: "Up to 5,000"},
				{ID: "medium", Label: "5,000 - 15,000"},
				{ID: "large", Label: "15,000 - 30,000"},
				{ID: "very_large", Label: "Over 30,000"},
			},
			Next: map[string]string{
				"small": "vacation_savings_method", "medium": "vacation_savings_method",
				"large": "vacation_savings_method", "very_large": "vacation_savings_method",
			},
		},
		{
			ID:       "vacation_savings_method",
			Type:     domain.NodeQuestion,
			Question: "How do you plan to finance the trip?",
			Options: []domain.Option{
				{ID: "savings", Label: "From current savings"},
				{ID: "dedicated", Label: "A dedicated account for this goal"},
				{ID: "combined", Label: "Partly savings, partly other sources"},
				{ID: "credit", Label: "I am considering a loan"},
			},
			Next: map[string]string{
				"savings": "vacation_recommendation", "dedicated": "vacation_recommendation",
				"combined": "vacation_recommendation", "credit": "vacation_recommendation",
			},
		},
		{
			ID:   "vacation_recommendation",
			Type: domain.NodeRecommendation,
			Template: &domain.RecommendationTemplate{
				Title:       "Vacation funding plan",
				Description: "We prepared a strategy for funding your trip.",
			},
		},

		// Other goal branch
		{
			ID:       "other_goal_amount",
			Type:     domain.NodeQuestion,
			Question: "How much money does your goal require?",
			Options: []domain.Option{
				{ID: "small", Label: "Up to 5,000"},
				{ID: "medium", Label: "5,000 - 20,000"},
				{ID: "large", Label: "20,000 - 50,000"},
				{ID: "very_large", Label: "Over 50,000"},
			},
			Next: map[string]string{
				"small": "other_timeframe", "medium": "other_timeframe",
				"large": "other_timeframe", "very_large": "other_timeframe",
			},
		},
		{
			ID:       "other_timeframe",
			Type:     domain.NodeQuestion,
			Question: "In what timeframe do you want to reach this goal?",
			Options: []domain.Option{
				{ID: "short", Label: "Within 6 months"},
				{ID: "medium", Label: "Within a year"},
				{ID: "long", Label: "Within 1-3 years"},
				{ID: "very_long", Label: "Over 3 years"},
			},
			Next: map[string]string{
				"short": "other_priority", "medium": "other_priority",
				"long": "other_priority", "very_long": "other_priority",
			},
		},
		{
			ID:       "other_priority",
			Type:     domain.NodeQuestion,
			Question: "How high a priority is this goal for you?",
			Options: []domain.Option{
				{ID: "low", Label: "Low - I can postpone it"},
				{ID: "medium", Label: "Medium - I want it but can be flexible"},
				{ID: "high", Label: "High - this matters a lot to me"},
			},
			Next: map[string]string{"low": "other_recommendation", "medium": "other_recommendation", "high": "other_recommendation"},
		},
		{
			ID:   "other_recommendation",
			Type: domain.NodeRecommendation,
			Template: &domain.RecommendationTemplate{
				Title:       "Goal achievement plan",
				Description: "We prepared a strategy for reaching your goal.",
			},
		},
	}

	graph := make(map[string]*domain.DecisionNode, len(nodes))
	for _, node := range nodes {
		graph[node.ID] = node
	}
	return graph
}
