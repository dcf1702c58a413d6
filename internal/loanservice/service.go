// Package loanservice manages business logic layer of loan offers and
// loan applications.
package loanservice

import (
	"context"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by loan service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package loanservice
type Repo interface {
	List(ctx context.Context) ([]domain.Loan, error)
	Get(ctx context.Context, id int32) (domain.Loan, error)
	GetBySlug(ctx context.Context, slug string) (domain.Loan, error)
	CreateApplication(ctx context.Context, arg domain.CreateLoanApplicationParams) (domain.LoanApplication, error)
	ListApplications(ctx context.Context, username string) ([]domain.LoanApplication, error)
}

// Service facilitates loan service layer logic.
type Service struct {
	repo Repo
}

// New returns loan service struct to manage loan bussines logic.
func New(lr Repo) *Service {
	return &Service{repo: lr}
}

// List returns the loan offer catalog.
func (s *Service) List(ctx context.Context) ([]domain.Loan, error) {
	loans, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return loans, nil
}

// Get returns the loan offer with the given slug.
func (s *Service) Get(ctx context.Context, slug string) (domain.Loan, error) {
	loan, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return loan, err
	}

	return loan, nil
}

// Apply validates the requested amount against the offer bounds and records
// a pending application for the given user.
func (s *Service) Apply(ctx context.Context, username string, loanID int32, arg domain.ApplyLoanParams) (domain.LoanApplication, error) {
	l := zerolog.Ctx(ctx)

	var application domain.LoanApplication

	loan, err := s.repo.Get(ctx, loanID)
	if err != nil {
		return application, err
	}

	amount, err := decimal.NewFromString(arg.RequestedAmount)
	if err != nil {
		l.Warn().Err(err).Send()
		return application, domain.ErrInvalidAmount
	}

	minAmount, err := decimal.NewFromString(loan.MinAmount)
	if err != nil {
		l.Error().Err(err).Send()
		return application, err
	}

	maxAmount, err := decimal.NewFromString(loan.MaxAmount)
	if err != nil {
		l.Error().Err(err).Send()
		return application, err
	}

	if amount.LessThan(minAmount) || amount.GreaterThan(maxAmount) {
		return application, &domain.OutOfRangeError{MinAmount: loan.MinAmount, MaxAmount: loan.MaxAmount}
	}

	annualIncome := arg.AnnualIncome
	if annualIncome == "" {
		annualIncome = "0"
	}

	application, err = s.repo.CreateApplication(ctx, domain.CreateLoanApplicationParams{
		Username:         username,
		LoanID:           loan.ID,
		RequestedAmount:  arg.RequestedAmount,
		TermMonths:       arg.TermMonths,
		EmploymentStatus: arg.EmploymentStatus,
		AnnualIncome:     annualIncome,
		Purpose:          arg.Purpose,
	})
	if err != nil {
		return application, err
	}

	return application, nil
}

// ListApplications returns the user's loan applications, newest first.
func (s *Service) ListApplications(ctx context.Context, username string) ([]domain.LoanApplication, error) {
	applications, err := s.repo.ListApplications(ctx, username)
	if err != nil {
		return nil, err
	}

	return applications, nil
}
