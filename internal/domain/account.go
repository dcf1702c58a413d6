package domain

import (
	"errors"
	"time"
)

// Account types.
const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
)

// AccountStatusActive marks an account open for transfers.
const AccountStatusActive = "active"

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrOwnerNotFound indicates that the owner for the account is not found.
	ErrOwnerNotFound = errors.New("owner not found")
	// ErrAccountNumberTaken indicates a collision on the external account number.
	ErrAccountNumberTaken = errors.New("account number already taken")
	// ErrInvalidAccountType indicates an unsupported account type.
	ErrInvalidAccountType = errors.New("invalid account type")
)

// Account holds balance data for a single bank account.
// Balance is a decimal string and is mutated only through transfers.
type Account struct {
	ID            int32     `json:"id"`
	Owner         string    `json:"owner"`
	AccountNumber string    `json:"accountNumber"`
	Type          string    `json:"type"`
	Balance       string    `json:"balance"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateAccountParams is the input data to open an account.
type CreateAccountParams struct {
	Owner         string `json:"owner"`
	AccountNumber string `json:"accountNumber"`
	Type          string `json:"type"`
	Balance       string `json:"balance"`
}

// Dashboard is an aggregate view over all accounts of a single owner.
type Dashboard struct {
	Accounts        []Account `json:"accounts"`
	TotalBalance    string    `json:"totalBalance"`
	MonthlyDeposits string    `json:"monthlyDeposits"`
	MonthlyExpenses string    `json:"monthlyExpenses"`
	RecentEntries   []Entry   `json:"recentEntries"`
}
