// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"errors"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/errorspkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/randompkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// openRetries bounds account number generation attempts on collision.
const openRetries = 3

// dashboardEntries is how many recent ledger entries feed the dashboard.
const dashboardEntries = 10

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	Get(ctx context.Context, id int32) (domain.Account, error)
	GetByNumber(ctx context.Context, accountNumber string) (domain.Account, error)
	List(ctx context.Context, owner string) ([]domain.Account, error)
}

// EntryRepo provides ledger entry access needed by the dashboard and
// transaction history.
type EntryRepo interface {
	ListForOwner(ctx context.Context, owner string, limit int32) ([]domain.Entry, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo      Repo
	entryRepo EntryRepo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo, er EntryRepo) *Service {
	return &Service{repo: ar, entryRepo: er}
}

// Open opens an account of the given type for the owner with the given
// starting balance. The account number is generated here and regenerated on
// the rare collision.
func (s *Service) Open(ctx context.Context, owner, accountType, balance string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	var account domain.Account

	if accountType != domain.AccountTypeChecking && accountType != domain.AccountTypeSavings {
		return account, domain.ErrInvalidAccountType
	}

	if _, err := decimal.NewFromString(balance); err != nil {
		l.Warn().Err(err).Send()
		return account, domain.ErrInvalidAmount
	}

	var err error
	for i := 0; i < openRetries; i++ {
		arg := domain.CreateAccountParams{
			Owner:         owner,
			AccountNumber: randompkg.AccountNumber(),
			Type:          accountType,
			Balance:       balance,
		}

		account, err = s.repo.Create(ctx, arg)
		if !errors.Is(err, domain.ErrAccountNumberTaken) {
			return account, err
		}
	}

	l.Error().Err(err).Send()

	return account, errorspkg.ErrInternal
}

// Get returns account for the given account ID.
func (s *Service) Get(ctx context.Context, id int32) (domain.Account, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return account, err
	}

	return account, nil
}

// List returns accounts that are owned by the given user.
func (s *Service) List(ctx context.Context, owner string) ([]domain.Account, error) {
	accounts, err := s.repo.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// RecentEntries returns the owner's latest ledger entries across all accounts.
func (s *Service) RecentEntries(ctx context.Context, owner string, limit int32) ([]domain.Entry, error) {
	entries, err := s.entryRepo.ListForOwner(ctx, owner, limit)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Dashboard aggregates the owner's accounts and recent ledger activity.
func (s *Service) Dashboard(ctx context.Context, owner string) (domain.Dashboard, error) {
	l := zerolog.Ctx(ctx)

	var dashboard domain.Dashboard

	accounts, err := s.repo.List(ctx, owner)
	if err != nil {
		return dashboard, err
	}

	total := decimal.Zero

	for _, a := range accounts {
		balance, err := decimal.NewFromString(a.Balance)
		if err != nil {
			l.Error().Err(err).Send()
			return dashboard, errorspkg.ErrInternal
		}

		total = total.Add(balance)
	}

	entries, err := s.entryRepo.ListForOwner(ctx, owner, dashboardEntries)
	if err != nil {
		return dashboard, err
	}

	deposits := decimal.Zero
	expenses := decimal.Zero

	for _, e := range entries {
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			l.Error().Err(err).Send()
			return dashboard, errorspkg.ErrInternal
		}

		switch e.Type {
		case domain.EntryTypeCredit:
			deposits = deposits.Add(amount)
		case domain.EntryTypeDebit:
			expenses = expenses.Add(amount)
		}
	}

	dashboard = domain.Dashboard{
		Accounts:        accounts,
		TotalBalance:    total.StringFixed(2),
		MonthlyDeposits: deposits.StringFixed(2),
		MonthlyExpenses: expenses.StringFixed(2),
		RecentEntries:   entries,
	}

	return dashboard, nil
}
