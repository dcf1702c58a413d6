// Package housingrepo manages repository layer of housing offers and mortgage applications.
package housingrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/dbpkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/errorspkg"
)

// RepoPGS facilitates housing repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns housing RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const offerColumns = `id, title, slug, location, price, bedrooms, bathrooms, sqft, property_type, mortgage_rate, created_at`

const listQuery = `
SELECT ` + offerColumns + `
FROM housing_offers
ORDER BY id
`

// List returns the whole housing catalog.
func (r *RepoPGS) List(ctx context.Context) ([]domain.HousingOffer, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.HousingOffer{}

	for rows.Next() {
		var offer domain.HousingOffer
		if err := scanOffer(rows.Scan, &offer); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, offer)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const getQuery = `
SELECT ` + offerColumns + `
FROM housing_offers
WHERE id = $1
`

// Get returns the housing offer with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.HousingOffer, error) {
	return r.getOffer(ctx, getQuery, id)
}

const getBySlugQuery = `
SELECT ` + offerColumns + `
FROM housing_offers
WHERE slug = $1
`

// GetBySlug returns the housing offer with the given slug.
func (r *RepoPGS) GetBySlug(ctx context.Context, slug string) (domain.HousingOffer, error) {
	return r.getOffer(ctx, getBySlugQuery, slug)
}

func (r *RepoPGS) getOffer(ctx context.Context, query string, arg interface{}) (domain.HousingOffer, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)

	var offer domain.HousingOffer

	if err := scanOffer(row.Scan, &offer); err != nil {
		if err == sql.ErrNoRows {
			return offer, domain.ErrHousingOfferNotFound
		}

		l.Error().Err(err).Send()

		return offer, errorspkg.ErrInternal
	}

	return offer, nil
}

func scanOffer(scan func(dest ...interface{}) error, offer *domain.HousingOffer) error {
	return scan(
		&offer.ID,
		&offer.Title,
		&offer.Slug,
		&offer.Location,
		&offer.Price,
		&offer.Bedrooms,
		&offer.Bathrooms,
		&offer.Sqft,
		&offer.PropertyType,
		&offer.MortgageRate,
		&offer.CreatedAt,
	)
}

const createApplicationQuery = `
INSERT INTO
    mortgage_applications (username, housing_offer_id, down_payment, loan_amount, term_years, employment_status, annual_income)
VALUES
    ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, username, housing_offer_id, down_payment, loan_amount, term_years, employment_status, annual_income, status, created_at
`

// CreateApplication persists a pending mortgage application and returns it.
func (r *RepoPGS) CreateApplication(ctx context.Context, arg domain.CreateMortgageApplicationParams) (domain.MortgageApplication, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createApplicationQuery,
		arg.Username,
		arg.HousingOfferID,
		arg.DownPayment,
		arg.LoanAmount,
		arg.TermYears,
		arg.EmploymentStatus,
		arg.AnnualIncome,
	)

	var a domain.MortgageApplication

	err := row.Scan(
		&a.ID,
		&a.Username,
		&a.HousingOfferID,
		&a.DownPayment,
		&a.LoanAmount,
		&a.TermYears,
		&a.EmploymentStatus,
		&a.AnnualIncome,
		&a.Status,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "mortgage_applications_housing_offer_id_fkey":
				return a, domain.ErrHousingOfferNotFound
			case "mortgage_applications_username_fkey":
				return a, domain.ErrUserNotFound
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const listApplicationsQuery = `
SELECT id, username, housing_offer_id, down_payment, loan_amount, term_years, employment_status, annual_income, status, created_at
FROM mortgage_applications
WHERE username = $1
ORDER BY created_at DESC, id DESC
`

// ListApplications returns the applications submitted by the given user, newest first.
func (r *RepoPGS) ListApplications(ctx context.Context, username string) ([]domain.MortgageApplication, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listApplicationsQuery, username)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.MortgageApplication{}

	for rows.Next() {
		var a domain.MortgageApplication
		if err := rows.Scan(
			&a.ID,
			&a.Username,
			&a.HousingOfferID,
			&a.DownPayment,
			&a.LoanAmount,
			&a.TermYears,
			&a.EmploymentStatus,
			&a.AnnualIncome,
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
