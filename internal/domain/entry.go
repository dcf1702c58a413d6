package domain

import "time"

// Entry directions.
const (
	EntryTypeCredit = "credit"
	EntryTypeDebit  = "debit"
)

// EntryStatusCompleted marks a settled ledger entry.
const EntryStatusCompleted = "completed"

// Entry is an immutable record of a single-account balance movement.
type Entry struct {
	ID                  int64     `json:"id"`
	AccountID           int32     `json:"accountId"`
	Type                string    `json:"type"`
	Amount              string    `json:"amount"` // always positive, direction is in Type
	Description         string    `json:"description"`
	Category            string    `json:"category"`
	CounterpartyName    string    `json:"counterpartyName,omitempty"`
	CounterpartyAccount string    `json:"counterpartyAccount,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
}

// CreateEntryParams is the input data to record a ledger entry.
type CreateEntryParams struct {
	AccountID           int32  `json:"accountId"`
	Type                string `json:"type"`
	Amount              string `json:"amount"`
	Description         string `json:"description"`
	Category            string `json:"category"`
	CounterpartyName    string `json:"counterpartyName"`
	CounterpartyAccount string `json:"counterpartyAccount"`
}
