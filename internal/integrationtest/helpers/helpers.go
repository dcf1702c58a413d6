// Package helpers seeds database fixtures for integration tests.
package helpers

import (
	"context"
	"testing"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/accountrepo"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/entryrepo"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/userrepo"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/dbpkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/passpkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/randompkg"
)

// SeedUser creates a random user.
func SeedUser(t *testing.T, db dbpkg.SQLInterface) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(32))
	if err != nil {
		t.Fatalf("passpkg.Hash(randompkg.String(32)) returned error: %v", err)
	}

	arg := domain.CreateUserParams{
		Username:       randompkg.Owner(),
		HashedPassword: hashedPassword,
		FullName:       randompkg.String(10),
		Email:          randompkg.Email(),
	}

	userRepo := userrepo.NewRepoPGS(db)

	user, err := userRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("userRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return user
}

// SeedAccount creates a checking account with the given balance for the owner.
func SeedAccount(t *testing.T, db dbpkg.SQLInterface, owner, balance string) domain.Account {
	t.Helper()

	arg := domain.CreateAccountParams{
		Owner:         owner,
		AccountNumber: randompkg.AccountNumber(),
		Type:          domain.AccountTypeChecking,
		Balance:       balance,
	}

	accountRepo := accountrepo.NewRepoPGS(db)

	account, err := accountRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return account
}

// SeedAccountWith1000Balance creates a checking account holding 1000.00.
func SeedAccountWith1000Balance(t *testing.T, db dbpkg.SQLInterface, owner string) domain.Account {
	t.Helper()

	return SeedAccount(t, db, owner, "1000.00")
}

// SeedEntry creates a ledger entry for the account.
func SeedEntry(t *testing.T, db dbpkg.SQLInterface, accountID int32, entryType, amount string) domain.Entry {
	t.Helper()

	arg := domain.CreateEntryParams{
		AccountID:   accountID,
		Type:        entryType,
		Amount:      amount,
		Description: randompkg.String(10),
		Category:    "transfer",
	}

	entryRepo := entryrepo.NewRepoPGS(db)

	entry, err := entryRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("entryRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return entry
}

// SeedEntries creates debit and credit entries with random amounts for the account.
func SeedEntries(t *testing.T, db dbpkg.SQLInterface, count int, accountID int32) []domain.Entry {
	t.Helper()

	entries := make([]domain.Entry, count)

	for i := range entries {
		entryType := domain.EntryTypeDebit
		if i%2 == 0 {
			entryType = domain.EntryTypeCredit
		}

		entries[i] = SeedEntry(t, db, accountID, entryType, randompkg.MoneyAmountBetween(1, 1000))
	}

	return entries
}

const seedLoanQuery = `
INSERT INTO
    loans (name, slug, description, min_amount, max_amount, apr, term_months, requirements)
VALUES
    ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, name, slug, description, min_amount, max_amount, apr, term_months, requirements, created_at
`

// SeedLoan creates a loan offer with the given amount bounds.
func SeedLoan(t *testing.T, db dbpkg.SQLInterface, minAmount, maxAmount string) domain.Loan {
	t.Helper()

	slug := randompkg.String(12)

	row := db.QueryRowContext(context.Background(), seedLoanQuery,
		"Personal Loan "+slug,
		"personal-loan-"+slug,
		"Flexible financing for life's big moments",
		minAmount,
		maxAmount,
		"7.99",
		int32(36),
		"Must be 18 or older with a valid SSN",
	)

	var loan domain.Loan

	err := row.Scan(
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
	if err != nil {
		t.Fatalf("seeding loan offer failed: %v", err)
	}

	return loan
}

const seedHousingOfferQuery = `
INSERT INTO
    housing_offers (title, slug, location, price, bedrooms, bathrooms, sqft, property_type, mortgage_rate)
VALUES
    ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, title, slug, location, price, bedrooms, bathrooms, sqft, property_type, mortgage_rate, created_at
`

// SeedHousingOffer creates a housing offer with the given price.
func SeedHousingOffer(t *testing.T, db dbpkg.SQLInterface, price string) domain.HousingOffer {
	t.Helper()

	slug := randompkg.String(12)

	row := db.QueryRowContext(context.Background(), seedHousingOfferQuery,
		"Craftsman Bungalow "+slug,
		"craftsman-bungalow-"+slug,
		"Portland, OR",
		price,
		int32(3),
		int32(2),
		int32(1850),
		"house",
		"6.50",
	)

	var offer domain.HousingOffer

	err := row.Scan(
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
	if err != nil {
		t.Fatalf("seeding housing offer failed: %v", err)
	}

	return offer
}
