package domain

import "errors"

var (
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates a zero or negative amount.
	ErrNegativeAmount = errors.New("amount must be positive")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient funds")
)

// TransferParams is the input data for the transfer transaction.
type TransferParams struct {
	FromAccountID   int32  `json:"fromAccountId"`
	ToAccountNumber string `json:"toAccountNumber"`
	Amount          string `json:"amount"`
	Description     string `json:"description"`
}

// TransferTxResult is the result of the transfer transaction.
//
// ToAccount and ToEntry are nil when the destination account number did not
// resolve; the debit leg still settles in that case.
type TransferTxResult struct {
	FromAccount Account  `json:"fromAccount"`
	FromEntry   Entry    `json:"fromEntry"`
	ToAccount   *Account `json:"toAccount,omitempty"`
	ToEntry     *Entry   `json:"toEntry,omitempty"`
}
