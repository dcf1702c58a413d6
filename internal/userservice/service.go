// Package userservice manages business logic layer of users.
package userservice

import (
	"context"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/errorspkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/passpkg"
	"github.com/rs/zerolog"
)

// Starting balances for the accounts every new customer gets.
const (
	initialCheckingBalance = "1000.00"
	initialSavingsBalance  = "5000.00"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error)
	Get(ctx context.Context, username string) (domain.User, error)
}

// AccountOpener opens accounts for freshly registered users.
type AccountOpener interface {
	Open(ctx context.Context, owner, accountType, balance string) (domain.Account, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo     Repo
	accounts AccountOpener
}

// New return user service struct to manage user bussines logic.
func New(ur Repo, ao AccountOpener) *Service {
	return &Service{
		repo:     ur,
		accounts: ao,
	}
}

// NewUserWithoutPassword returns user with removed sensitive data.
func NewUserWithoutPassword(u domain.User) domain.UserWithoutPassword {
	return domain.UserWithoutPassword{
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Create creates and returns a user together with their starter checking and
// savings accounts.
func (s *Service) Create(ctx context.Context, username, password, fullname, email string) (domain.UserWithoutPassword, error) {
	l := zerolog.Ctx(ctx)

	var result domain.UserWithoutPassword

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	arg := domain.CreateUserParams{
		Username:       username,
		HashedPassword: hashedPassword,
		FullName:       fullname,
		Email:          email,
	}

	gotUser, err := s.repo.Create(ctx, arg)
	if err != nil {
		return result, err
	}

	if _, err = s.accounts.Open(ctx, gotUser.Username, domain.AccountTypeChecking, initialCheckingBalance); err != nil {
		return result, err
	}

	if _, err = s.accounts.Open(ctx, gotUser.Username, domain.AccountTypeSavings, initialSavingsBalance); err != nil {
		return result, err
	}

	result = NewUserWithoutPassword(gotUser)

	return result, nil
}

// CheckPassword checks if the password is valid for the given username.
func (s *Service) CheckPassword(ctx context.Context, username, pass string) (domain.UserWithoutPassword, error) {
	l := zerolog.Ctx(ctx)

	var response domain.UserWithoutPassword

	gotUser, err := s.repo.Get(ctx, username)
	if err != nil {
		return response, err
	}

	err = passpkg.Check(pass, gotUser.HashedPassword)
	if err != nil {
		l.Warn().Err(err).Send()
		return response, domain.ErrWrongPassword
	}

	response = NewUserWithoutPassword(gotUser)

	return response, nil
}
