// Package transferservice manages business logic layer of transfers.
package transferservice

import (
	"context"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/accountdelivery"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/errorspkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	Transfer(ctx context.Context, arg domain.TransferParams) (domain.TransferTxResult, error)
}

// Service facilitates transfer service layer logic.
type Service struct {
	repo           Repo
	accountService accountdelivery.Service
}

// New returns transfer service struct to manage transfer bussines logic.
func New(tr Repo, as accountdelivery.Service) *Service {
	return &Service{
		repo:           tr,
		accountService: as,
	}
}

// validRequest checks that the amount is a positive decimal, that the source
// account belongs to the caller, and that its balance covers the amount.
// A source account the caller does not own is reported as not found.
func (s *Service) validRequest(ctx context.Context, fromUsername string, arg domain.TransferParams) error {
	l := zerolog.Ctx(ctx)

	amount, err := decimal.NewFromString(arg.Amount)
	if err != nil {
		l.Warn().Err(err).Send()
		return domain.ErrInvalidAmount
	}

	if !amount.IsPositive() {
		return domain.ErrNegativeAmount
	}

	fromAccount, err := s.accountService.Get(ctx, arg.FromAccountID)
	if err != nil {
		return err
	}

	if fromAccount.Owner != fromUsername {
		l.Warn().Str("owner", fromAccount.Owner).Str("caller", fromUsername).Msg("account owner mismatch")
		return domain.ErrAccountNotFound
	}

	fromAccountBalance, err := decimal.NewFromString(fromAccount.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if fromAccountBalance.LessThan(amount) {
		return domain.ErrInsufficientBalance
	}

	return nil
}

// Transfer moves money between the caller's account and the destination
// account number in a single database transaction.
func (s *Service) Transfer(ctx context.Context, fromUsername string, arg domain.TransferParams) (domain.TransferTxResult, error) {
	if err := s.validRequest(ctx, fromUsername, arg); err != nil {
		return domain.TransferTxResult{}, err
	}

	result, err := s.repo.Transfer(ctx, arg)
	if err != nil {
		return result, err
	}

	return result, nil
}
