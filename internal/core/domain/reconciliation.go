package domain

// AccountBalance is the discrepancy record produced when an account's stored
// balance is checked against the balance implied by its operations.
type AccountBalance struct {
	AccountID         string
	AccountName       string
	Balance           Money
	CalculatedBalance Money
	HasDiscrepancy    bool
}
