// Package housingservice manages business logic layer of housing offers and
// mortgage applications.
package housingservice

import (
	"context"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by housing service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package housingservice
type Repo interface {
	List(ctx context.Context) ([]domain.HousingOffer, error)
	Get(ctx context.Context, id int32) (domain.HousingOffer, error)
	GetBySlug(ctx context.Context, slug string) (domain.HousingOffer, error)
	CreateApplication(ctx context.Context, arg domain.CreateMortgageApplicationParams) (domain.MortgageApplication, error)
	ListApplications(ctx context.Context, username string) ([]domain.MortgageApplication, error)
}

// Service facilitates housing service layer logic.
type Service struct {
	repo Repo
}

// New returns housing service struct to manage housing bussines logic.
func New(hr Repo) *Service {
	return &Service{repo: hr}
}

// List returns the housing offer catalog.
func (s *Service) List(ctx context.Context) ([]domain.HousingOffer, error) {
	offers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return offers, nil
}

// Get returns the housing offer with the given slug.
func (s *Service) Get(ctx context.Context, slug string) (domain.HousingOffer, error) {
	offer, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return offer, err
	}

	return offer, nil
}

// Apply records a pending mortgage application. The financed amount is the
// offer price less the down payment; a down payment at or above the price is
// accepted and yields a non-positive loan amount.
func (s *Service) Apply(ctx context.Context, username string, offerID int32, arg domain.ApplyMortgageParams) (domain.MortgageApplication, error) {
	l := zerolog.Ctx(ctx)

	var application domain.MortgageApplication

	offer, err := s.repo.Get(ctx, offerID)
	if err != nil {
		return application, err
	}

	downPayment, err := decimal.NewFromString(arg.DownPayment)
	if err != nil {
		l.Warn().Err(err).Send()
		return application, domain.ErrInvalidAmount
	}

	price, err := decimal.NewFromString(offer.Price)
	if err != nil {
		l.Error().Err(err).Send()
		return application, err
	}

	loanAmount := price.Sub(downPayment)

	annualIncome := arg.AnnualIncome
	if annualIncome == "" {
		annualIncome = "0"
	}

	application, err = s.repo.CreateApplication(ctx, domain.CreateMortgageApplicationParams{
		Username:         username,
		HousingOfferID:   offer.ID,
		DownPayment:      arg.DownPayment,
		LoanAmount:       loanAmount.StringFixed(2),
		TermYears:        arg.TermYears,
		EmploymentStatus: arg.EmploymentStatus,
		AnnualIncome:     annualIncome,
	})
	if err != nil {
		return application, err
	}

	return application, nil
}

// ListApplications returns the user's mortgage applications, newest first.
func (s *Service) ListApplications(ctx context.Context, username string) ([]domain.MortgageApplication, error) {
	applications, err := s.repo.ListApplications(ctx, username)
	if err != nil {
		return nil, err
	}

	return applications, nil
}
