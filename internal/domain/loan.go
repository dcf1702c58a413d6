package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrLoanNotFound indicates that the loan offer is not found.
var ErrLoanNotFound = errors.New("loan not found")

// ApplicationStatusPending marks a freshly submitted application awaiting review.
const ApplicationStatusPending = "pending"

// Loan is a static catalog entry describing a loan offer.
type Loan struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	MinAmount    string    `json:"minAmount"`
	MaxAmount    string    `json:"maxAmount"`
	APR          string    `json:"apr"`
	TermMonths   int32     `json:"termMonths"`
	Requirements string    `json:"requirements"`
	CreatedAt    time.Time `json:"createdAt"`
}

// LoanApplication is a customer's request for a loan offer.
type LoanApplication struct {
	ID               int32     `json:"id"`
	Username         string    `json:"username"`
	LoanID           int32     `json:"loanId"`
	RequestedAmount  string    `json:"requestedAmount"`
	TermMonths       int32     `json:"termMonths"`
	EmploymentStatus string    `json:"employmentStatus"`
	AnnualIncome     string    `json:"annualIncome"`
	Purpose          string    `json:"purpose"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ApplyLoanParams is the applicant-supplied part of a loan application.
type ApplyLoanParams struct {
	RequestedAmount  string `json:"requestedAmount"`
	TermMonths       int32  `json:"termMonths"`
	EmploymentStatus string `json:"employmentStatus"`
	AnnualIncome     string `json:"annualIncome"`
	Purpose          string `json:"purpose"`
}

// CreateLoanApplicationParams is the input data to submit a loan application.
type CreateLoanApplicationParams struct {
	Username         string `json:"username"`
	LoanID           int32  `json:"loanId"`
	RequestedAmount  string `json:"requestedAmount"`
	TermMonths       int32  `json:"termMonths"`
	EmploymentStatus string `json:"employmentStatus"`
	AnnualIncome     string `json:"annualIncome"`
	Purpose          string `json:"purpose"`
}

// OutOfRangeError reports a requested amount outside the offer bounds.
type OutOfRangeError struct {
	MinAmount string
	MaxAmount string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("loan amount must be between $%s and $%s", e.MinAmount, e.MaxAmount)
}
