package decisiontree

import (
	"fmt"

	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
)

// generator builds the recommendation set for one goal from the answers
// recorded along its branch. Missing answers fall back to defaults so a
// partially answered branch still produces a usable plan.
type generator func(answers map[string]string) []domain.Recommendation

// Recommendations returns the recommendation set for a finished goal
// branch. A goal without a generator, or a generator that panics on
// unexpected answers, yields a single generic recommendation.
func (e *Engine) Recommendations(goal string, answers map[string]string) (recs []domain.Recommendation) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("recommendation generator failed", "goal", goal, "err", fmt.Sprint(r))
			recs = genericRecommendations()
		}
	}()

	gen, ok := generators[goal]
	if !ok {
		e.logger.Warn("no generator for goal", "goal", goal)
		return genericRecommendations()
	}
	recs = gen(answers)
	if len(recs) == 0 {
		return genericRecommendations()
	}
	return recs
}

var generators = map[string]generator{
	GoalEmergencyFund: emergencyFundRecommendations,
	GoalDebtReduction: debtRecommendations,
	GoalHomePurchase:  homeRecommendations,
	GoalRetirement:    retirementRecommendations,
	GoalEducation:     educationRecommendations,
	GoalVacation:      vacationRecommendations,
	GoalOther:         otherGoalRecommendations,
}

func genericRecommendations() []domain.Recommendation {
	return []domain.Recommendation{{
		ID:          "generic_plan",
		Title:       "Financial plan",
		Description: "Start with a monthly budget, set aside a fixed amount every month, and review your progress quarterly.",
		Category:    domain.CategoryFinancial,
		Impact:      domain.ImpactMedium,
		ActionItems: []string{
			"Write down your monthly income and expenses",
			"Decide on a fixed monthly savings amount",
			"Automate the transfer on payday",
			"Review progress every three months",
		},
	}}
}

func answerOr(answers map[string]string, key, fallback string) string {
	if v, ok := answers[key]; ok && v != "" {
		return v
	}
	return fallback
}

func emergencyFundRecommendations(answers map[string]string) []domain.Recommendation {
	timeframe := answerOr(answers, "ef_timeframe", "medium")
	amount := answerOr(answers, "ef_amount", "six")
	method := answerOr(answers, "ef_savings_method", "automatic")

	months := map[string]string{"three": "3", "six": "6", "twelve": "12"}[amount]
	if months == "" {
		months = "6"
	}
	horizon := map[string]string{"short": "6 months", "medium": "a year", "long": "1-2 years"}[timeframe]
	if horizon == "" {
		horizon = "a year"
	}

	recs := []domain.Recommendation{{
		ID:          "ef_base_plan",
		Title:       fmt.Sprintf("Build a fund covering %s months of expenses", months),
		Description: fmt.Sprintf("Your target is an emergency fund covering %s months of expenses, built within %s. Divide the target by the number of months to get your monthly contribution.", months, horizon),
		Category:    domain.CategoryFinancial,
		Impact:      domain.ImpactHigh,
		ActionItems: []string{
			"Calculate your average monthly expenses",
			fmt.Sprintf("Multiply them by %s to get the target amount", months),
			"Divide the target by the number of months you have",
			"Set up the monthly transfer",
		},
	}}

	switch method {
	case "automatic":
		recs = append(recs, domain.Recommendation{
			ID:          "ef_automatic_savings",
			Title:       "Automate the contribution",
			Description: "Schedule a standing order for the day after your salary arrives so the fund grows before you can spend the money.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Open a separate savings account",
				"Set a standing order for the day after payday",
				"Treat the transfer as a fixed bill",
			},
		})
	case "percentage":
		recs = append(recs, domain.Recommendation{
			ID:          "ef_percentage_savings",
			Title:       "Save a fixed percentage of income",
			Description: "Set aside 10-20% of every income you receive, including irregular ones such as bonuses.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Pick a percentage you can sustain",
				"Apply it to every income, including bonuses",
				"Raise the percentage after each pay rise",
			},
		})
	case "surplus":
		recs = append(recs, domain.Recommendation{
			ID:          "ef_surplus_savings",
			Title:       "Sweep budget surpluses",
			Description: "At the end of each month move whatever is left in your current account into the fund, and pair it with a small guaranteed minimum.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Set a small guaranteed monthly minimum",
				"Sweep the month-end surplus into the fund",
				"Track months with no surplus and adjust the budget",
			},
		})
	}

	recs = append(recs, domain.Recommendation{
		ID:          "emergency_fund_location",
		Title:       "Keep the fund accessible but separate",
		Description: "An emergency fund belongs on an interest-bearing savings account you can reach within a day, separate from your everyday money.",
		Category:    domain.CategoryFinancial,
		Impact:      domain.ImpactMedium,
		ActionItems: []string{
			"Compare savings account interest rates",
			"Keep the fund away from your everyday account",
			"Avoid locking the fund in long-term deposits",
			"Refill the fund first after every withdrawal",
		},
	})
	return recs
}

func debtRecommendations(answers map[string]string) []domain.Recommendation {
	debtType := answerOr(answers, "debt_type", "multiple")
	amount := answerOr(answers, "debt_total_amount", "medium")
	strategy := answerOr(answers, "debt_strategy", "not_sure")

	recs := []domain.Recommendation{{
		ID:          "debt_base_plan",
		Title:       "List every obligation",
		Description: fmt.Sprintf("Start by listing each debt with its balance, interest rate and minimum payment. With debt in the %s range, knowing the exact numbers is the foundation of any strategy.", amountLabel(amount)),
		Category:    domain.CategoryFinancial,
		Impact:      domain.ImpactHigh,
		ActionItems: []string{
			"Write down every debt with balance and interest rate",
			"Note the minimum payment for each",
			"Check for early repayment fees",
			"Mark the highest-interest obligation",
		},
	}}

	switch strategy {
	case "avalanche":
		recs = append(recs, domain.Recommendation{
			ID:          "debt_avalanche",
			Title:       "Pay the highest interest first",
			Description: "Direct every spare amount at the debt with the highest interest rate while paying minimums on the rest. This minimizes the total interest you pay.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactHigh,
			ActionItems: []string{
				"Order debts by interest rate, highest first",
				"Pay minimums on everything except the top one",
				"Put every spare amount into the top debt",
				"Move to the next debt when one is cleared",
			},
		})
	case "snowball":
		recs = append(recs, domain.Recommendation{
			ID:          "debt_snowball",
			Title:       "Clear the smallest balances first",
			Description: "Pay off the smallest debt first for a quick win, then roll its payment into the next smallest. The momentum helps you stay on the plan.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Order debts by balance, smallest first",
				"Clear the smallest while paying minimums on the rest",
				"Roll the freed payment into the next debt",
				"Celebrate each cleared debt",
			},
		})
	case "consolidation":
		recs = append(recs, domain.Recommendation{
			ID:          "debt_consolidation",
			Title:       "Consolidate into one loan",
			Description: "Replacing several obligations with a single lower-interest loan simplifies payments, but only helps if the new rate is genuinely lower and you stop adding new debt.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Compare consolidation offers from several banks",
				"Check the total cost, not just the installment",
				"Close the paid-off credit lines",
				"Do not take on new debt during repayment",
			},
		})
	default:
		if debtType == "credit_card" || amount == "small" {
			recs = append(recs, domain.Recommendation{
				ID:          "debt_suggest_avalanche",
				Title:       "Start with the avalanche method",
				Description: "With high-interest debt the avalanche method, highest interest rate first, saves you the most money.",
				Category:    domain.CategoryFinancial,
				Impact:      domain.ImpactHigh,
				ActionItems: []string{
					"Order debts by interest rate",
					"Attack the most expensive one first",
					"Keep minimum payments on the rest",
				},
			})
		} else {
			recs = append(recs, domain.Recommendation{
				ID:          "debt_suggest_snowball",
				Title:       "Start with the snowball method",
				Description: "When several obligations feel overwhelming, clearing the smallest balances first builds the habit and keeps you motivated.",
				Category:    domain.CategoryFinancial,
				Impact:      domain.ImpactMedium,
				ActionItems: []string{
					"Order debts by balance",
					"Clear the smallest one first",
					"Roll freed payments forward",
				},
			})
		}
	}

	recs = append(recs, domain.Recommendation{
		ID:          "debt_budget_discipline",
		Title:       "Protect the repayment budget",
		Description: "A repayment plan only works if the money for it exists every month. Fix a repayment amount in your budget and stop taking on new consumer debt until you are done.",
		Category:    domain.CategoryFinancial,
		Impact:      domain.ImpactMedium,
		ActionItems: []string{
			"Fix a monthly repayment amount in the budget",
			"Pause new consumer credit until debts are cleared",
			"Put windfalls toward repayment",
			"Review the plan monthly",
		},
	})
	return recs
}

func homeRecommendations(answers map[string]string) []domain.Recommendation {
	timeframe := answerOr(answers, "home_timeframe", "medium")
	downPayment := answerOr(answers, "home_down_payment", "twenty")
	budget := answerOr(answers, "home_budget", "medium")

	recs := []domain.Recommendation{{
		ID:          "home_base_plan",
		Title:       "Set the down payment target",
		Description: fmt.Sprintf("With a purchase budget in the %s range and a %s down payment, calculate the exact amount to save and divide it over your timeline.", amountLabel(budget), downPaymentLabel(downPayment)),
		Category:    domain.CategoryFinancial,
		Impact:      domain.ImpactHigh,
		ActionItems: []string{
			"Estimate the property price you are targeting",
			"Calculate the down payment amount",
			"Add 5-10% for transaction costs",
			"Divide the total over your savings timeline",
		},
	}}

	switch timeframe {
	case "short":
		recs = append(recs, domain.Recommendation{
			ID:          "home_short_horizon",
			Title:       "Keep the savings safe",
			Description: "On a 1-2 year horizon the down payment belongs in savings accounts and short-term deposits. Market investments could lose value exactly when you need the money.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactHigh,
			ActionItems: []string{
				"Use savings accounts and short deposits only",
				"Start comparing mortgage offers now",
				"Check your creditworthiness early",
			},
		})
	case "medium":
		recs = append(recs, domain.Recommendation{
			ID:          "home_medium_horizon",
			Title:       "Mix safety with modest growth",
			Description: "On a 3-5 year horizon keep most of the fund safe, with a limited share in conservative instruments such as bond funds.",
			Category:    domain.CategoryInvestment,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Keep the majority in savings accounts",
				"Consider bond funds for a minority share",
				"Shift everything to safe instruments in the final year",
			},
		})
	case "long":
		recs = append(recs, domain.Recommendation{
			ID:          "home_long_horizon",
			Title:       "Let the fund grow",
			Description: "On a 5-10 year horizon a broader investment mix is reasonable, gradually de-risked as the purchase approaches.",
			Category:    domain.CategoryInvestment,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Consider broad index funds for part of the savings",
				"Reduce risk each year as the purchase nears",
				"Hold the final two years of savings in cash",
			},
		})
	}

	if downPayment == "ten" {
		recs = append(recs, domain.Recommendation{
			ID:          "home_low_down_payment",
			Title:       "Mind the cost of a low down payment",
			Description: "A 10% down payment usually means a higher margin or extra insurance. Raising it to 20% often pays for itself.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Compare offers at 10% and 20% down",
				"Include low-deposit insurance in the cost",
				"Consider delaying the purchase to save more",
			},
		})
	} else if downPayment == "full" {
		recs = append(recs, domain.Recommendation{
			ID:          "home_cash_purchase",
			Title:       "Plan the cash purchase carefully",
			Description: "Buying without a mortgage removes interest costs entirely, but do not drain your emergency fund to do it.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Keep the emergency fund untouched",
				"Negotiate the price as a cash buyer",
				"Budget for renovation and moving costs",
			},
		})
	}

	recs = append(recs, domain.Recommendation{
		ID:          "home_purchase_preparation",
		Title:       "Prepare for the purchase itself",
		Description: "Beyond the down payment, a smooth purchase needs a clean credit history, market knowledge and a buffer for fees.",
		Category:    domain.CategoryFinancial,
		Impact:      domain.ImpactMedium,
		ActionItems: []string{
			"Check and clean up your credit history",
			"Watch prices in your target neighborhoods",
			"Budget for notary, tax and agency fees",
			"Avoid new loans before the mortgage application",
		},
	})
	return recs
}

func retirementRecommendations(answers map[string]string) []domain.Recommendation {
	target := answerOr(answers, "retirement_age", "standard")
	stage := answerOr(answers, "retirement_current_age", "mid")
	vehicle := answerOr(answers, "retirement_vehicle", "combined")

	recs := []domain.Recommendation{{
		ID:          "retirement_base_plan",
		Title:       "Define the retirement gap",
		Description: "Estimate the monthly income you want in retirement, subtract the expected state pension, and size your savings to cover the difference.",
		Category:    domain.CategoryInvestment,
		Impact:      domain.ImpactHigh,
		ActionItems: []string{
			"Estimate your desired retirement income",
			"Check your projected state pension",
			"Calculate the monthly gap to fund yourself",
			"Set a monthly contribution to close it",
		},
	}}

	switch stage {
	case "early":
		recs = append(recs, domain.Recommendation{
			ID:          "retirement_early_career",
			Title:       "Use the long horizon",
			Description: "With decades ahead, even small contributions compound dramatically and a higher equity share is appropriate.",
			Category:    domain.CategoryInvestment,
			Impact:      domain.ImpactHigh,
			ActionItems: []string{
				"Start now, even with small amounts",
				"Keep a high share of equities",
				"Increase contributions with every pay rise",
			},
		})
	case "mid":
		recs = append(recs, domain.Recommendation{
			ID:          "retirement_mid_career",
			Title:       "Accelerate contributions",
			Description: "Mid career is usually peak earning years. Maximize tax-advantaged limits and review whether you are on track.",
			Category:    domain.CategoryInvestment,
			Impact:      domain.ImpactHigh,
			ActionItems: []string{
				"Max out tax-advantaged account limits",
				"Run a projection of your current trajectory",
				"Rebalance toward a moderate risk mix",
			},
		})
	case "late":
		recs = append(recs, domain.Recommendation{
			ID:          "retirement_late_career",
			Title:       "Protect what you have built",
			Description: "Close to retirement the priority shifts from growth to capital preservation and a withdrawal plan.",
			Category:    domain.CategoryInvestment,
			Impact:      domain.ImpactHigh,
			ActionItems: []string{
				"Reduce the equity share gradually",
				"Plan the order of account withdrawals",
				"Consider working slightly longer if the gap is large",
			},
		})
	}

	switch vehicle {
	case "pension_account":
		recs = append(recs, domain.Recommendation{
			ID:          "retirement_pension_accounts",
			Title:       "Exploit pension account tax breaks",
			Description: "Individual pension accounts offer tax advantages that ordinary investing does not. Use the annual limits before investing elsewhere.",
			Category:    domain.CategoryTax,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Open the accounts if you have not yet",
				"Use the annual contribution limits",
				"Pick low-cost funds inside the accounts",
			},
		})
	case "real_estate":
		recs = append(recs, domain.Recommendation{
			ID:          "retirement_real_estate",
			Title:       "Treat rental property as a business",
			Description: "Rental income can fund retirement, but concentrates risk in one asset class and needs active management.",
			Category:    domain.CategoryInvestment,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Calculate net rental yield after all costs",
				"Keep a vacancy and repair buffer",
				"Do not hold all retirement savings in property",
			},
		})
	case "investment":
		recs = append(recs, domain.Recommendation{
			ID:          "retirement_own_portfolio",
			Title:       "Keep the portfolio simple and cheap",
			Description: "A self-managed retirement portfolio works best with broad index funds, low fees and a fixed rebalancing routine.",
			Category:    domain.CategoryInvestment,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Prefer broad, low-fee index funds",
				"Rebalance on a fixed schedule",
				"Ignore short-term market noise",
			},
		})
	}

	if target == "early" {
		recs = append(recs, domain.Recommendation{
			ID:          "retirement_early_exit",
			Title:       "Bridge the years before the statutory age",
			Description: "Retiring early means funding the years before state benefits start entirely from your own savings, outside locked pension accounts.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactHigh,
			ActionItems: []string{
				"Count the bridge years you must self-fund",
				"Hold that part outside locked accounts",
				"Plan health coverage for the bridge period",
			},
		})
	}

	recs = append(recs, domain.Recommendation{
		ID:          "retirement_diversification",
		Title:       "Diversify across vehicles",
		Description: "No single vehicle should carry your whole retirement. Spread savings across accounts, asset classes and, where possible, tax treatments.",
		Category:    domain.CategoryInvestment,
		Impact:      domain.ImpactMedium,
		ActionItems: []string{
			"Spread savings across at least two vehicles",
			"Mix asset classes appropriate to your horizon",
			"Review the allocation once a year",
			"Keep beneficiary designations up to date",
		},
	})
	return recs
}

func educationRecommendations(answers map[string]string) []domain.Recommendation {
	timeframe := answerOr(answers, "education_timeframe", "medium")
	eduType := answerOr(answers, "education_type", "courses")
	cost := answerOr(answers, "education_cost", "medium")

	recs := []domain.Recommendation{{
		ID:          "education_base_plan",
		Title:       "Budget the education precisely",
		Description: fmt.Sprintf("With a cost in the %s range, list tuition, materials and lost income, then divide the total over the months until you start.", amountLabel(cost)),
		Category:    domain.CategoryFinancial,
		Impact:      domain.ImpactHigh,
		ActionItems: []string{
			"List tuition, materials and exam fees",
			"Account for reduced income while studying",
			"Divide the total over the months remaining",
			"Open a dedicated sub-account for the fund",
		},
	}}

	switch eduType {
	case "university":
		recs = append(recs, domain.Recommendation{
			ID:          "education_university",
			Title:       "Check funding before paying yourself",
			Description: "Scholarships, grants and employer funding can cover a large part of a degree. Exhaust those before committing your own savings.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Apply for every scholarship you qualify for",
				"Ask your employer about education funding",
				"Compare part-time study with full-time costs",
			},
		})
	case "child":
		recs = append(recs, domain.Recommendation{
			ID:          "education_child_fund",
			Title:       "Start the child's fund early",
			Description: "A long horizon lets an education fund grow through investing. Keep it formally separate so it is not spent on other goals.",
			Category:    domain.CategoryInvestment,
			Impact:      domain.ImpactHigh,
			ActionItems: []string{
				"Open a separate account dedicated to the child",
				"Invest with the horizon in mind, de-risking later",
				"Involve family gifts in the fund",
			},
		})
	}

	if cost == "large" || cost == "very_large" {
		recs = append(recs, domain.Recommendation{
			ID:          "education_high_cost",
			Title:       "Split the cost over stages",
			Description: "An expensive program rarely has to be paid at once. Paying per semester or module spreads the load and lets savings keep growing.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Negotiate installment or per-semester payment",
				"Keep unreleased tranches in a savings account",
				"Compare a student loan only as a last resort",
			},
		})
	}

	if timeframe == "short" {
		recs = append(recs, domain.Recommendation{
			ID:          "education_short_runway",
			Title:       "Keep the fund liquid",
			Description: "Starting within a year means the money must stay in savings accounts, not investments.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Hold the fund in a savings account",
				"Trim discretionary spending until the start",
				"Confirm the exact payment deadlines",
			},
		})
	}

	recs = append(recs, domain.Recommendation{
		ID:          "education_fund_review",
		Title:       "Track the fund against the start date",
		Description: "Education costs and start dates move. Compare the fund against the remaining cost every few months and adjust contributions early.",
		Category:    domain.CategoryFinancial,
		Impact:      domain.ImpactMedium,
		ActionItems: []string{
			"Review the fund versus the remaining cost quarterly",
			"Update the cost estimate when fees change",
			"Adjust the monthly contribution early, not late",
		},
	})
	return recs
}

func vacationRecommendations(answers map[string]string) []domain.Recommendation {
	timeframe := answerOr(answers, "vacation_timeframe", "medium")
	cost := answerOr(answers, "vacation_cost", "medium")
	method := answerOr(answers, "vacation_savings_method", "dedicated")

	recs := []domain.Recommendation{{
		ID:          "vacation_base_plan",
		Title:       "Price the trip and divide it",
		Description: fmt.Sprintf("With a cost in the %s range, list transport, accommodation, food and activities, add a 10-15%% buffer, and divide by the months remaining.", amountLabel(cost)),
		Category:    domain.CategoryFinancial,
		Impact:      domain.ImpactMedium,
		ActionItems: []string{
			"List all trip costs including local spending",
			"Add a 10-15% buffer for surprises",
			"Divide the total by the months until departure",
			"Book early where it locks in lower prices",
		},
	}}

	if timeframe == "short" {
		recs = append(recs, domain.Recommendation{
			ID:          "vacation_short_runway",
			Title:       "Front-load the saving",
			Description: "With departure within 6 months the monthly amounts are large. Cut discretionary spending now rather than hoping for later surpluses.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Cut subscriptions and dining out temporarily",
				"Sell unused items toward the trip",
				"Consider a cheaper variant if the gap is large",
			},
		})
	}

	if cost == "large" || cost == "very_large" {
		recs = append(recs, domain.Recommendation{
			ID:          "vacation_expensive_trip",
			Title:       "Protect the expensive trip",
			Description: "A costly trip deserves travel insurance and refundable bookings. Losing a deposit hurts twice when you saved for it.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Buy travel insurance covering cancellation",
				"Prefer refundable bookings for big items",
				"Pay deposits by card for chargeback protection",
			},
		})
	}

	switch method {
	case "dedicated":
		recs = append(recs, domain.Recommendation{
			ID:          "vacation_dedicated_account",
			Title:       "Use a dedicated trip account",
			Description: "A named sub-account makes progress visible and keeps the money from leaking into daily spending.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactLow,
			ActionItems: []string{
				"Open a sub-account named after the trip",
				"Automate a monthly transfer into it",
				"Pay trip costs only from that account",
			},
		})
	case "credit":
		recs = append(recs, domain.Recommendation{
			ID:          "vacation_avoid_credit",
			Title:       "Avoid financing leisure with debt",
			Description: "Paying interest on a vacation makes it cost significantly more. Delaying the trip a few months is almost always cheaper than a loan.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactHigh,
			ActionItems: []string{
				"Compare the loan's total cost with delaying the trip",
				"If you borrow, keep the term under a year",
				"Never roll vacation debt onto a credit card",
			},
		})
	}

	recs = append(recs, domain.Recommendation{
		ID:          "vacation_budget_management",
		Title:       "Keep the trip inside the budget",
		Description: "Set a daily spending limit for the trip itself and track it, so the vacation does not undo months of saving.",
		Category:    domain.CategoryFinancial,
		Impact:      domain.ImpactLow,
		ActionItems: []string{
			"Set a daily spending limit for the trip",
			"Track spending during the trip",
			"Keep the buffer for genuine surprises only",
			"Start the next trip's fund when you return",
		},
	})
	return recs
}

func otherGoalRecommendations(answers map[string]string) []domain.Recommendation {
	amount := answerOr(answers, "other_goal_amount", "medium")
	timeframe := answerOr(answers, "other_timeframe", "medium")
	priority := answerOr(answers, "other_priority", "medium")

	recs := []domain.Recommendation{{
		ID:          "other_base_plan",
		Title:       "Turn the goal into a monthly number",
		Description: fmt.Sprintf("With a target in the %s range over a %s horizon, divide the amount by the months available and check the result against your budget.", amountLabel(amount), timeframeLabel(timeframe)),
		Category:    domain.CategoryFinancial,
		Impact:      domain.ImpactMedium,
		ActionItems: []string{
			"Write down the exact target amount",
			"Divide it by the months in your timeframe",
			"Check the monthly amount fits your budget",
			"Stretch the timeframe if it does not",
		},
	}}

	if timeframe == "very_long" || timeframe == "long" {
		recs = append(recs, domain.Recommendation{
			ID:          "other_long_horizon",
			Title:       "Let a long horizon work for you",
			Description: "Beyond a year, part of the fund can sit in conservative investments instead of pure cash.",
			Category:    domain.CategoryInvestment,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Keep the first year of savings in cash",
				"Consider bond funds for the remainder",
				"Move to cash as the goal approaches",
			},
		})
	} else {
		recs = append(recs, domain.Recommendation{
			ID:          "other_short_horizon",
			Title:       "Keep short-horizon money in cash",
			Description: "Inside a year the fund belongs in a savings account where it cannot lose value before you need it.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Use a savings account, not investments",
				"Automate the monthly contribution",
				"Avoid deposits that lock past your deadline",
			},
		})
	}

	if priority == "high" {
		recs = append(recs, domain.Recommendation{
			ID:          "other_high_priority",
			Title:       "Give the goal first claim on income",
			Description: "A high-priority goal gets funded right after fixed bills, before discretionary spending.",
			Category:    domain.CategoryFinancial,
			Impact:      domain.ImpactMedium,
			ActionItems: []string{
				"Schedule the contribution right after payday",
				"Treat it as non-negotiable in the budget",
				"Redirect windfalls toward the goal",
			},
		})
	}

	recs = append(recs, domain.Recommendation{
		ID:          "other_goal_tracking",
		Title:       "Track progress visibly",
		Description: "Goals that are measured get reached. Review the balance against the plan every month and adjust early when you fall behind.",
		Category:    domain.CategoryFinancial,
		Impact:      domain.ImpactLow,
		ActionItems: []string{
			"Review the balance against the plan monthly",
			"Adjust contributions at the first slip",
			"Mark milestones at 25, 50 and 75 percent",
		},
	})
	return recs
}

func amountLabel(id string) string {
	switch id {
	case "small":
		return "smaller"
	case "medium":
		return "moderate"
	case "large":
		return "substantial"
	case "very_large":
		return "very large"
	default:
		return "moderate"
	}
}

func downPaymentLabel(id string) string {
	switch id {
	case "ten":
		return "10%"
	case "twenty":
		return "20%"
	case "thirty_plus":
		return "30%+"
	case "full":
		return "100%"
	default:
		return "20%"
	}
}

func timeframeLabel(id string) string {
	switch id {
	case "short":
		return "6-month"
	case "medium":
		return "one-year"
	case "long":
		return "multi-year"
	case "very_long":
		return "long-term"
	default:
		return "one-year"
	}
}
