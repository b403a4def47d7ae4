// Package categorize implements the rule-based classification of imported
// transactions: category suggestion from description keywords, exclusion of
// non-taxable cash movements, and the combined recommendation the import
// pipeline applies. The engine is deliberately transparent and rule-driven;
// every outcome can be traced to a table entry, which tax auditability
// requires.
package categorize

import (
	"github.com/taxfolio/backend/internal/domain"
)

// Confidence thresholds and defaults. Fixed constants, not configuration.
const (
	// HighConfidenceThreshold is a strict lower bound: exactly 0.90 is not
	// high confidence.
	HighConfidenceThreshold = 0.90
	// MediumConfidenceThreshold is inclusive: exactly 0.60 is suggestion
	// worthy.
	MediumConfidenceThreshold = 0.60

	keywordMatchConfidence     = 0.95
	weakKeywordConfidence      = 0.75
	defaultExpenseConfidence   = 0.30
	defaultIncomeConfidence    = 0.70
	highSignalIncomeConfidence = 0.95
)

// expenseRule maps a keyword set to an expense category. Rules are evaluated
// in slice order and the first match wins; the ordering is a deliberate
// priority, so this is a slice and must never become a map.
type expenseRule struct {
	keywords   []string
	category   domain.ExpenseCategory
	confidence float64
}

var expenseRules = []expenseRule{
	{[]string{"bank charge", "transaction fee", "card fee", "account fee", "overdraft fee", "service charge"}, domain.ExpenseCategoryFinancialCharges, keywordMatchConfidence},
	{[]string{"google ads", "facebook ads", "linkedin ads", "adwords", "advertising", "marketing", "promotion"}, domain.ExpenseCategoryAdvertising, keywordMatchConfidence},
	{[]string{"loan interest", "interest charged"}, domain.ExpenseCategoryInterest, keywordMatchConfidence},
	{[]string{"salary", "salaries", "wages", "payroll", "pension contribution", "staff"}, domain.ExpenseCategoryStaffCosts, keywordMatchConfidence},
	{[]string{"petrol", "diesel", "fuel", "shell", "esso", "bp garage", "mileage"}, domain.ExpenseCategoryTravelMileage, keywordMatchConfidence},
	{[]string{"train ticket", "rail", "tfl", "hotel", "flight", "parking"}, domain.ExpenseCategoryTravelMileage, weakKeywordConfidence},
	{[]string{"rent", "rates", "electricity", "gas bill", "british gas", "water bill", "insurance"}, domain.ExpenseCategoryPremisesCosts, weakKeywordConfidence},
	{[]string{"repair", "maintenance"}, domain.ExpenseCategoryRepairs, weakKeywordConfidence},
	{[]string{"stationery", "printer", "postage", "software", "subscription", "github", "hosting", "domain"}, domain.ExpenseCategoryOfficeCosts, weakKeywordConfidence},
	{[]string{"accountant", "accountancy", "solicitor", "legal fee", "consultancy fee"}, domain.ExpenseCategoryProfessionalFees, keywordMatchConfidence},
	{[]string{"phone", "mobile", "broadband", "internet"}, domain.ExpenseCategoryOfficeCosts, weakKeywordConfidence},
}

// incomeRule maps a keyword set to an income category. Same first-match-wins
// ordering as expenseRules.
type incomeRule struct {
	keywords   []string
	category   domain.IncomeCategory
	confidence float64
}

var incomeRules = []incomeRule{
	{[]string{"tax refund", "hmrc refund"}, domain.IncomeCategoryRefund, highSignalIncomeConfidence},
	{[]string{"dividend"}, domain.IncomeCategoryDividend, highSignalIncomeConfidence},
	{[]string{"interest"}, domain.IncomeCategoryInterest, highSignalIncomeConfidence},
	{[]string{"refund"}, domain.IncomeCategoryRefund, highSignalIncomeConfidence},
	{[]string{"grant"}, domain.IncomeCategoryGrant, highSignalIncomeConfidence},
	{[]string{"invoice", "payment received", "sales"}, domain.IncomeCategorySales, highSignalIncomeConfidence},
}

// SuggestExpenseCategory maps a free-text description to an expense category
// with a confidence score. A blank description degrades to OtherExpenses at
// low confidence rather than failing: one bad description field must never
// fail a whole import.
func SuggestExpenseCategory(description string) (domain.ExpenseCategory, float64) {
	desc := domain.NormalizeDescription(description)
	if desc == "" {
		return domain.ExpenseCategoryOtherExpenses, defaultExpenseConfidence
	}
	for _, rule := range expenseRules {
		for _, kw := range rule.keywords {
			if containsKeyword(desc, kw) {
				return rule.category, rule.confidence
			}
		}
	}
	return domain.ExpenseCategoryOtherExpenses, defaultExpenseConfidence
}

// SuggestIncomeCategory maps a description to an income category. Income on
// a business account is assumed business-related absent counter-evidence, so
// unmatched (and blank) descriptions default to Sales at medium confidence.
func SuggestIncomeCategory(description string) (domain.IncomeCategory, float64) {
	desc := domain.NormalizeDescription(description)
	if desc == "" {
		return domain.IncomeCategorySales, defaultIncomeConfidence
	}
	for _, rule := range incomeRules {
		for _, kw := range rule.keywords {
			if containsKeyword(desc, kw) {
				return rule.category, rule.confidence
			}
		}
	}
	return domain.IncomeCategorySales, defaultIncomeConfidence
}
