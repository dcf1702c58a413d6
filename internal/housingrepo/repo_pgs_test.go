//go:build integration

package housingrepo_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/housingrepo"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/integrationtest"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/integrationtest/helpers"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/middleware"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/configpkg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	dbDriver string
	dbSource string
	ctx      context.Context
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	logger := middleware.CreateLogger(config)
	ctx = logger.WithContext(context.Background())

	os.Exit(m.Run())
}

func TestGetBySlug(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)

	want := helpers.SeedHousingOffer(t, tx, "450000.00")

	housingRepo := housingrepo.NewRepoPGS(tx)

	got, err := housingRepo.GetBySlug(ctx, want.Slug)
	if err != nil {
		t.Fatalf("housingRepo.GetBySlug(ctx, %v) returned error: %v", want.Slug, err)
	}

	compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
	if diff := cmp.Diff(want, got, compareCreatedAt); diff != "" {
		t.Errorf("housingRepo.GetBySlug(ctx, %v) returned unexpected difference (-want +got):\n%s", want.Slug, diff)
	}

	if _, err := housingRepo.GetBySlug(ctx, "no-such-offer"); err != domain.ErrHousingOfferNotFound {
		t.Errorf("housingRepo.GetBySlug(ctx, no-such-offer) returned %v, want %v",
			err, domain.ErrHousingOfferNotFound)
	}
}

func TestCreateApplication(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)

	user := helpers.SeedUser(t, tx)
	offer := helpers.SeedHousingOffer(t, tx, "450000.00")

	housingRepo := housingrepo.NewRepoPGS(tx)

	arg := domain.CreateMortgageApplicationParams{
		Username:         user.Username,
		HousingOfferID:   offer.ID,
		DownPayment:      "90000.00",
		LoanAmount:       "360000.00",
		TermYears:        30,
		EmploymentStatus: "employed",
		AnnualIncome:     "120000.00",
	}

	got, err := housingRepo.CreateApplication(ctx, arg)
	if err != nil {
		t.Fatalf("housingRepo.CreateApplication(ctx, %+v) returned error: %v", arg, err)
	}

	want := domain.MortgageApplication{
		ID:               got.ID,
		Username:         arg.Username,
		HousingOfferID:   arg.HousingOfferID,
		DownPayment:      arg.DownPayment,
		LoanAmount:       arg.LoanAmount,
		TermYears:        arg.TermYears,
		EmploymentStatus: arg.EmploymentStatus,
		AnnualIncome:     arg.AnnualIncome,
		Status:           domain.ApplicationStatusPending,
		CreatedAt:        got.CreatedAt,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("housingRepo.CreateApplication(ctx, %+v) returned unexpected difference (-want +got):\n%s",
			arg, diff)
	}

	arg.HousingOfferID = 0
	if _, err := housingRepo.CreateApplication(ctx, arg); err != domain.ErrHousingOfferNotFound {
		t.Errorf("housingRepo.CreateApplication with unknown offer returned %v, want %v",
			err, domain.ErrHousingOfferNotFound)
	}
}

func TestListApplications(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)

	user := helpers.SeedUser(t, tx)
	offer := helpers.SeedHousingOffer(t, tx, "450000.00")

	housingRepo := housingrepo.NewRepoPGS(tx)

	arg := domain.CreateMortgageApplicationParams{
		Username:         user.Username,
		HousingOfferID:   offer.ID,
		DownPayment:      "90000.00",
		LoanAmount:       "360000.00",
		TermYears:        30,
		EmploymentStatus: "employed",
		AnnualIncome:     "120000.00",
	}

	if _, err := housingRepo.CreateApplication(ctx, arg); err != nil {
		t.Fatalf("housingRepo.CreateApplication(ctx, %+v) returned error: %v", arg, err)
	}

	got, err := housingRepo.ListApplications(ctx, user.Username)
	if err != nil {
		t.Fatalf("housingRepo.ListApplications(ctx, %v) returned error: %v", user.Username, err)
	}

	if len(got) != 1 {
		t.Fatalf("len(got) = %v, want 1", len(got))
	}

	if got[0].LoanAmount != "360000.00" {
		t.Errorf("got[0].LoanAmount = %v, want 360000.00", got[0].LoanAmount)
	}
}
