package dto

// TransferRequest defines the data needed to move funds between accounts.
type TransferRequest struct {
	FromAccountID string   `json:"fromAccountID" binding:"required"`
	ToAccountID   string   `json:"toAccountID" binding:"required"`
	Amount        MoneyDTO `json:"amount" binding:"required"`
}

// TransferResponse returns both recorded operations together with the
// updated accounts.
type TransferResponse struct {
	Withdrawal  OperationResponse `json:"withdrawal"`
	Deposit     OperationResponse `json:"deposit"`
	FromAccount AccountResponse   `json:"fromAccount"`
	ToAccount   AccountResponse   `json:"toAccount"`
}
