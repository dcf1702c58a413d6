// Package loanrepo manages repository layer of loan offers and applications.
package loanrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/dbpkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/errorspkg"
)

// RepoPGS facilitates loan repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns loan RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const loanColumns = `id, name, slug, description, min_amount, max_amount, apr, term_months, requirements, created_at`

const listQuery = `
SELECT ` + loanColumns + `
FROM loans
ORDER BY id
`

// List returns the whole loan catalog.
func (r *RepoPGS) List(ctx context.Context) ([]domain.Loan, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Loan{}

	for rows.Next() {
		var loan domain.Loan
		if err := scanLoan(rows.Scan, &loan); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, loan)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const getQuery = `
SELECT ` + loanColumns + `
FROM loans
WHERE id = $1
`

// Get returns the loan offer with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Loan, error) {
	return r.getLoan(ctx, getQuery, id)
}

const getBySlugQuery = `
SELECT ` + loanColumns + `
FROM loans
WHERE slug = $1
`

// GetBySlug returns the loan offer with the given slug.
func (r *RepoPGS) GetBySlug(ctx context.Context, slug string) (domain.Loan, error) {
	return r.getLoan(ctx, getBySlugQuery, slug)
}

func (r *RepoPGS) getLoan(ctx context.Context, query string, arg interface{}) (domain.Loan, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)

	var loan domain.Loan

	if err := scanLoan(row.Scan, &loan); err != nil {
		if err == sql.ErrNoRows {
			return loan, domain.ErrLoanNotFound
		}

		l.Error().Err(err).Send()

		return loan, errorspkg.ErrInternal
	}

	return loan, nil
}

func scanLoan(scan func(dest ...interface{}) error, loan *domain.Loan) error {
	return scan(
		&loan.ID,
		&loan.Name,
		&loan.Slug,
		&loan.Description,
		&loan.MinAmount,
		&loan.MaxAmount,
		&loan.APR,
		&loan.TermMonths,
		&loan.Requirements,
		&loan.CreatedAt,
	)
}

const createApplicationQuery = `
INSERT INTO
    loan_applications (username, loan_id, requested_amount, term_months, employment_status, annual_income, purpose)
VALUES
    ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, username, loan_id, requested_amount, term_months, employment_status, annual_income, purpose, status, created_at
`

// CreateApplication persists a pending loan application and returns it.
func (r *RepoPGS) CreateApplication(ctx context.Context, arg domain.CreateLoanApplicationParams) (domain.LoanApplication, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createApplicationQuery,
		arg.Username,
		arg.LoanID,
		arg.RequestedAmount,
		arg.TermMonths,
		arg.EmploymentStatus,
		arg.AnnualIncome,
		arg.Purpose,
	)

	var a domain.LoanApplication

	err := row.Scan(
		&a.ID,
		&a.Username,
		&a.LoanID,
		&a.RequestedAmount,
		&a.TermMonths,
		&a.EmploymentStatus,
		&a.AnnualIncome,
		&a.Purpose,
		&a.Status,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "loan_applications_loan_id_fkey":
				return a, domain.ErrLoanNotFound
			case "loan_applications_username_fkey":
				return a, domain.ErrUserNotFound
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const listApplicationsQuery = `
SELECT id, username, loan_id, requested_amount, term_months, employment_status, annual_income, purpose, status, created_at
FROM loan_applications
WHERE username = $1
ORDER BY created_at DESC, id DESC
`

// ListApplications returns the applications submitted by the given user, newest first.
func (r *RepoPGS) ListApplications(ctx context.Context, username string) ([]domain.LoanApplication, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listApplicationsQuery, username)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.LoanApplication{}

	for rows.Next() {
		var a domain.LoanApplication
		if err := rows.Scan(
			&a.ID,
			&a.Username,
			&a.LoanID,
			&a.RequestedAmount,
			&a.TermMonths,
			&a.EmploymentStatus,
			&a.AnnualIncome,
			&a.Purpose,
			&a.Status,
			&a.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
