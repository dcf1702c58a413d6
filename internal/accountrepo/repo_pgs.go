// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/dbpkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/errorspkg"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const addBalanceQuery = `
UPDATE accounts
SET balance = balance + $1
WHERE id = $2
RETURNING id, owner, account_number, type, balance, status, created_at
`

// AddBalance changes the account's balance and returns the changed account.
//
// A negative amount debits the account; the accounts_balance_check constraint
// rejects any update that would take the balance below zero, which keeps the
// check-and-debit pair atomic under concurrent transfers.
func (r *RepoPGS) AddBalance(ctx context.Context, amount string, id int32) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, addBalanceQuery, amount, id)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Owner,
		&a.AccountNumber,
		&a.Type,
		&a.Balance,
		&a.Status,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "accounts_balance_check" {
				return a, domain.ErrInsufficientBalance
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const createQuery = `
INSERT INTO
    accounts (owner, account_number, type, balance)
VALUES
    ($1, $2, $3, $4)
RETURNING id, owner, account_number, type, balance, status, created_at
`

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.Owner, arg.AccountNumber, arg.Type, arg.Balance)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Owner,
		&a.AccountNumber,
		&a.Type,
		&a.Balance,
		&a.Status,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "accounts_owner_fkey":
				return a, domain.ErrOwnerNotFound
			case "accounts_account_number_key":
				return a, domain.ErrAccountNumberTaken
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT
	id, owner, account_number, type, balance, status, created_at
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Owner,
		&a.AccountNumber,
		&a.Type,
		&a.Balance,
		&a.Status,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getByNumberQuery = `
SELECT
	id, owner, account_number, type, balance, status, created_at
FROM accounts
WHERE account_number = $1
`

// GetByNumber returns the account with the given external account number.
func (r *RepoPGS) GetByNumber(ctx context.Context, accountNumber string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByNumberQuery, accountNumber)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Owner,
		&a.AccountNumber,
		&a.Type,
		&a.Balance,
		&a.Status,
		&a.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const listAccounts = `
SELECT
	id, owner, account_number, type, balance, status, created_at
FROM accounts
WHERE owner = $1
ORDER BY id
`

// List returns all accounts of the given owner.
func (r *RepoPGS) List(ctx context.Context, owner string) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listAccounts, owner)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Owner, &a.AccountNumber, &a.Type, &a.Balance, &a.Status, &a.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
