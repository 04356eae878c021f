package domain

// CategoryAnalytics aggregates the operations of one category within a
// period. Percentage is the category share of the period total for its
// operation type.
type CategoryAnalytics struct {
	CategoryID     string
	CategoryName   string
	TotalAmount    Money
	OperationCount int
	Percentage     float64
}

// PeriodAnalytics summarizes all operations within a period, split by
// direction and grouped by category.
type PeriodAnalytics struct {
	Period            DateRange
	TotalIncome       Money
	TotalExpense      Money
	NetIncome         Money
	IncomeByCategory  []CategoryAnalytics
	ExpenseByCategory []CategoryAnalytics
}
