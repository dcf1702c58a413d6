// Package transferrepo manages repository layer of transfers.
package transferrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/accountrepo"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/entryrepo"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/errorspkg"
)

// CategoryTransfer is the ledger category stamped on both legs of a transfer.
const CategoryTransfer = "transfer"

// RepoPGS facilitates transfer repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns transfer RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		conn: db,
	}
}

// Transfer moves money between two accounts.
//
// It debits the source, records a debit entry, then resolves the destination
// by its external account number; when the destination exists it is credited
// and a credit entry is recorded. Everything runs within a single database
// transaction so no partial state survives a failure. A destination that does
// not resolve leaves the debit standing.
func (r *RepoPGS) Transfer(ctx context.Context, arg domain.TransferParams) (domain.TransferTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.TransferTxResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	entryRepo := entryrepo.NewRepoPGS(tx)
	accountRepo := accountrepo.NewRepoPGS(tx)

	fromAccount, err := accountRepo.Get(ctx, arg.FromAccountID)
	if err != nil {
		l.Error().Err(err).Send()
		return result, err
	}

	toAccount, err := accountRepo.GetByNumber(ctx, arg.ToAccountNumber)

	switch {
	case err == nil:
		result.FromAccount, result.ToAccount, err = moveBalance(ctx, accountRepo, fromAccount, toAccount, arg.Amount)
		if err != nil {
			l.Error().Err(err).Send()
			return result, knownOr(err, errorspkg.ErrInternal)
		}
	case errors.Is(err, domain.ErrAccountNotFound):
		// The destination account number did not resolve; the debit still
		// settles and the funds leave the ledger.
		result.FromAccount, err = accountRepo.AddBalance(ctx, "-"+arg.Amount, arg.FromAccountID)
		if err != nil {
			l.Error().Err(err).Send()
			return result, knownOr(err, errorspkg.ErrInternal)
		}
	default:
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	description := arg.Description
	if description == "" {
		description = "Transfer"
	}

	fromEntry, err := entryRepo.Create(ctx, domain.CreateEntryParams{
		AccountID:           arg.FromAccountID,
		Type:                domain.EntryTypeDebit,
		Amount:              arg.Amount,
		Description:         description,
		Category:            CategoryTransfer,
		CounterpartyAccount: arg.ToAccountNumber,
	})
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	result.FromEntry = fromEntry

	if result.ToAccount != nil {
		toEntry, err := entryRepo.Create(ctx, domain.CreateEntryParams{
			AccountID:           result.ToAccount.ID,
			Type:                domain.EntryTypeCredit,
			Amount:              arg.Amount,
			Description:         description,
			Category:            CategoryTransfer,
			CounterpartyAccount: fromAccount.AccountNumber,
		})
		if err != nil {
			l.Error().Err(err).Send()
			return result, errorspkg.ErrInternal
		}

		result.ToEntry = &toEntry
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}

// moveBalance updates both balances in consistent id order to avoid deadlocks.
func moveBalance(ctx context.Context, r *accountrepo.RepoPGS, from, to domain.Account, amount string) (domain.Account, *domain.Account, error) {
	var (
		fromAccount, toAccount domain.Account
		err                    error
	)

	if from.ID < to.ID {
		fromAccount, err = r.AddBalance(ctx, "-"+amount, from.ID)
		if err != nil {
			return fromAccount, nil, err
		}

		toAccount, err = r.AddBalance(ctx, amount, to.ID)
	} else {
		toAccount, err = r.AddBalance(ctx, amount, to.ID)
		if err != nil {
			return fromAccount, nil, err
		}

		fromAccount, err = r.AddBalance(ctx, "-"+amount, from.ID)
	}

	if err != nil {
		return fromAccount, nil, err
	}

	return fromAccount, &toAccount, nil
}

// knownOr passes through domain errors and replaces anything else with fallback.
func knownOr(err, fallback error) error {
	if errors.Is(err, domain.ErrInsufficientBalance) || errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	return fallback
}
