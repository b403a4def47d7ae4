package domain

// ExpenseCategory is the SA103-aligned expense category set.
type ExpenseCategory string

const (
	ExpenseCategoryCostOfGoods      ExpenseCategory = "COST_OF_GOODS"
	ExpenseCategorySubcontractors   ExpenseCategory = "SUBCONTRACTORS"
	ExpenseCategoryStaffCosts       ExpenseCategory = "STAFF_COSTS"
	ExpenseCategoryTravelMileage    ExpenseCategory = "TRAVEL_MILEAGE"
	ExpenseCategoryPremisesCosts    ExpenseCategory = "PREMISES_COSTS"
	ExpenseCategoryRepairs          ExpenseCategory = "REPAIRS"
	ExpenseCategoryOfficeCosts      ExpenseCategory = "OFFICE_COSTS"
	ExpenseCategoryAdvertising      ExpenseCategory = "ADVERTISING"
	ExpenseCategoryInterest         ExpenseCategory = "INTEREST"
	ExpenseCategoryFinancialCharges ExpenseCategory = "FINANCIAL_CHARGES"
	ExpenseCategoryBadDebts         ExpenseCategory = "BAD_DEBTS"
	ExpenseCategoryProfessionalFees ExpenseCategory = "PROFESSIONAL_FEES"
	ExpenseCategoryDepreciation     ExpenseCategory = "DEPRECIATION"
	ExpenseCategoryOtherExpenses    ExpenseCategory = "OTHER_EXPENSES"
)

// sa103Boxes maps each expense category to its box number on the SA103F
// self-employment form. The mapping is fixed by the form layout.
var sa103Boxes = map[ExpenseCategory]string{
	ExpenseCategoryCostOfGoods:      "17",
	ExpenseCategorySubcontractors:   "18",
	ExpenseCategoryStaffCosts:       "19",
	ExpenseCategoryTravelMileage:    "20",
	ExpenseCategoryPremisesCosts:    "21",
	ExpenseCategoryRepairs:          "22",
	ExpenseCategoryOfficeCosts:      "23",
	ExpenseCategoryAdvertising:      "24",
	ExpenseCategoryInterest:         "25",
	ExpenseCategoryFinancialCharges: "26",
	ExpenseCategoryBadDebts:         "27",
	ExpenseCategoryProfessionalFees: "28",
	ExpenseCategoryDepreciation:     "29",
	ExpenseCategoryOtherExpenses:    "30",
}

// SA103Box returns the SA103F box number for a category, or "30" (other
// business expenses) when the category is unknown.
func SA103Box(cat ExpenseCategory) string {
	if box, ok := sa103Boxes[cat]; ok {
		return box
	}
	return sa103Boxes[ExpenseCategoryOtherExpenses]
}

// IncomeCategory classifies promoted income records.
type IncomeCategory string

const (
	IncomeCategorySales    IncomeCategory = "SALES"
	IncomeCategoryInterest IncomeCategory = "INTEREST"
	IncomeCategoryDividend IncomeCategory = "DIVIDEND"
	IncomeCategoryRefund   IncomeCategory = "REFUND"
	IncomeCategoryGrant    IncomeCategory = "GRANT"
	IncomeCategoryOther    IncomeCategory = "OTHER_INCOME"
)

// ExclusionReason tags transactions that are cash movements rather than
// business income or expense.
type ExclusionReason string

const (
	ExclusionReasonTransfer       ExclusionReason = "TRANSFER"
	ExclusionReasonTaxPayment     ExclusionReason = "TAX_PAYMENT"
	ExclusionReasonLoan           ExclusionReason = "LOAN"
	ExclusionReasonCreditCard     ExclusionReason = "CREDIT_CARD"
	ExclusionReasonCashWithdrawal ExclusionReason = "CASH_WITHDRAWAL"
)
