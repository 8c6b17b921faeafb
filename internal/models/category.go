package models

import "strings"

// Expense categories, also the set a scanned receipt may be assigned to.
const (
	CategoryHousing        = "Housing"
	CategoryTransportation = "Transportation"
	CategoryGroceries      = "Groceries"
	CategoryUtilities      = "Utilities"
	CategoryEntertainment  = "Entertainment"
	CategoryFood           = "Food"
	CategoryShopping       = "Shopping"
	CategoryHealthcare     = "Healthcare"
	CategoryEducation      = "Education"
	CategoryPersonal       = "Personal"
	CategoryTravel         = "Travel"
	CategoryInsurance      = "Insurance"
	CategoryGifts          = "Gifts"
	CategoryBills          = "Bills"
	CategoryOtherExpense   = "Other-expense"
)

// Income categories
const (
	CategorySalary      = "Salary"
	CategoryFreelance   = "Freelance"
	CategoryInvestments = "Investments"
	CategoryBusiness    = "Business"
	CategoryRental      = "Rental"
	CategoryOtherIncome = "Other-income"
)

// ExpenseCategories returns the expense categories in display order
func ExpenseCategories() []string {
	return []string{
		CategoryHousing,
		CategoryTransportation,
		CategoryGroceries,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryFood,
		CategoryShopping,
		CategoryHealthcare,
		CategoryEducation,
		CategoryPersonal,
		CategoryTravel,
		CategoryInsurance,
		CategoryGifts,
		CategoryBills,
		CategoryOtherExpense,
	}
}

// NormalizeExpenseCategory matches a free-form category case-insensitively
// against the expense categories, falling back to Other-expense.
func NormalizeExpenseCategory(category string) string {
	trimmed := strings.TrimSpace(category)
	for _, known := range ExpenseCategories() {
		if strings.EqualFold(trimmed, known) {
			return known
		}
	}
	return CategoryOtherExpense
}
