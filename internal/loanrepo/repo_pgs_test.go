//go:build integration

package loanrepo_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/integrationtest"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/integrationtest/helpers"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/loanrepo"
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

	want := helpers.SeedLoan(t, tx, "1000.00", "50000.00")

	loanRepo := loanrepo.NewRepoPGS(tx)

	got, err := loanRepo.GetBySlug(ctx, want.Slug)
	if err != nil {
		t.Fatalf("loanRepo.GetBySlug(ctx, %v) returned error: %v", want.Slug, err)
	}

	compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
	if diff := cmp.Diff(want, got, compareCreatedAt); diff != "" {
		t.Errorf("loanRepo.GetBySlug(ctx, %v) returned unexpected difference (-want +got):\n%s", want.Slug, diff)
	}

	if _, err := loanRepo.GetBySlug(ctx, "no-such-loan"); err != domain.ErrLoanNotFound {
		t.Errorf("loanRepo.GetBySlug(ctx, no-such-loan) returned %v, want %v", err, domain.ErrLoanNotFound)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)

	want := helpers.SeedLoan(t, tx, "1000.00", "50000.00")

	loanRepo := loanrepo.NewRepoPGS(tx)

	got, err := loanRepo.Get(ctx, want.ID)
	if err != nil {
		t.Fatalf("loanRepo.Get(ctx, %v) returned error: %v", want.ID, err)
	}

	compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
	if diff := cmp.Diff(want, got, compareCreatedAt); diff != "" {
		t.Errorf("loanRepo.Get(ctx, %v) returned unexpected difference (-want +got):\n%s", want.ID, diff)
	}
}

func TestCreateApplication(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)

	user := helpers.SeedUser(t, tx)
	loan := helpers.SeedLoan(t, tx, "1000.00", "50000.00")

	loanRepo := loanrepo.NewRepoPGS(tx)

	arg := domain.CreateLoanApplicationParams{
		Username:         user.Username,
		LoanID:           loan.ID,
		RequestedAmount:  "25000.00",
		TermMonths:       36,
		EmploymentStatus: "employed",
		AnnualIncome:     "85000.00",
		Purpose:          "debt consolidation",
	}

	got, err := loanRepo.CreateApplication(ctx, arg)
	if err != nil {
		t.Fatalf("loanRepo.CreateApplication(ctx, %+v) returned error: %v", arg, err)
	}

	want := domain.LoanApplication{
		ID:               got.ID,
		Username:         arg.Username,
		LoanID:           arg.LoanID,
		RequestedAmount:  arg.RequestedAmount,
		TermMonths:       arg.TermMonths,
		EmploymentStatus: arg.EmploymentStatus,
		AnnualIncome:     arg.AnnualIncome,
		Purpose:          arg.Purpose,
		Status:           domain.ApplicationStatusPending,
		CreatedAt:        got.CreatedAt,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loanRepo.CreateApplication(ctx, %+v) returned unexpected difference (-want +got):\n%s", arg, diff)
	}

	arg.LoanID = 0
	if _, err := loanRepo.CreateApplication(ctx, arg); err != domain.ErrLoanNotFound {
		t.Errorf("loanRepo.CreateApplication with unknown loan returned %v, want %v", err, domain.ErrLoanNotFound)
	}
}

func TestListApplications(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)

	user := helpers.SeedUser(t, tx)
	loan := helpers.SeedLoan(t, tx, "1000.00", "50000.00")

	loanRepo := loanrepo.NewRepoPGS(tx)

	const applicationsCount = 3

	for i := 0; i < applicationsCount; i++ {
		arg := domain.CreateLoanApplicationParams{
			Username:         user.Username,
			LoanID:           loan.ID,
			RequestedAmount:  "5000.00",
			TermMonths:       24,
			EmploymentStatus: "employed",
			AnnualIncome:     "60000.00",
		}

		if _, err := loanRepo.CreateApplication(ctx, arg); err != nil {
			t.Fatalf("loanRepo.CreateApplication(ctx, %+v) returned error: %v", arg, err)
		}
	}

	got, err := loanRepo.ListApplications(ctx, user.Username)
	if err != nil {
		t.Fatalf("loanRepo.ListApplications(ctx, %v) returned error: %v", user.Username, err)
	}

	if len(got) != applicationsCount {
		t.Fatalf("len(got) = %v, want %v", len(got), applicationsCount)
	}

	for i := 1; i < len(got); i++ {
		if got[i-1].ID < got[i].ID {
			t.Errorf("applications not sorted newest first: got[%d].ID = %v before got[%d].ID = %v",
				i-1, got[i-1].ID, i, got[i].ID)
		}
	}
}
