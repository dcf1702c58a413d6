// Package entryrepo manages repository layer of ledger entries.
package entryrepo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/dbpkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/errorspkg"
)

// RepoPGS facilitates entry repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns entry RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    entries (account_id, type, amount, description, category, counterparty_name, counterparty_account)
VALUES
    ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, account_id, type, amount, description, category, counterparty_name, counterparty_account, status, created_at
`

// Create creates the entry and then returns it. Entries are insert-only.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateEntryParams) (domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.AccountID,
		arg.Type,
		arg.Amount,
		arg.Description,
		arg.Category,
		arg.CounterpartyName,
		arg.CounterpartyAccount,
	)

	var e domain.Entry

	err := row.Scan(
		&e.ID,
		&e.AccountID,
		&e.Type,
		&e.Amount,
		&e.Description,
		&e.Category,
		&e.CounterpartyName,
		&e.CounterpartyAccount,
		&e.Status,
		&e.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const listQuery = `
SELECT id, account_id, type, amount, description, category, counterparty_name, counterparty_account, status, created_at
FROM entries
WHERE account_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3
`

// List returns the specified number of entries for the given accountID, newest first.
func (r *RepoPGS) List(ctx context.Context, accountID int32, limit, offset int32) ([]domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, accountID, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	return scanEntries(ctx, rows)
}

const listForOwnerQuery = `
SELECT e.id, e.account_id, e.type, e.amount, e.description, e.category, e.counterparty_name, e.counterparty_account, e.status, e.created_at
FROM entries e
JOIN accounts a ON a.id = e.account_id
WHERE a.owner = $1
ORDER BY e.created_at DESC, e.id DESC
LIMIT $2
`

// ListForOwner returns the newest entries across all accounts of the given owner.
func (r *RepoPGS) ListForOwner(ctx context.Context, owner string, limit int32) ([]domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listForOwnerQuery, owner, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	return scanEntries(ctx, rows)
}

func scanEntries(ctx context.Context, rows rowsScanner) ([]domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	items := []domain.Entry{}

	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(
			&e.ID,
			&e.AccountID,
			&e.Type,
			&e.Amount,
			&e.Description,
			&e.Category,
			&e.CounterpartyName,
			&e.CounterpartyAccount,
			&e.Status,
			&e.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}
