// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/pkg/errorspkg"
	"github.com/swiftpay/swiftpay/pkg/passpkg"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	GetByPhone(ctx context.Context, phoneNumber string) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Delete(ctx context.Context, id int64) error
	SetBlocked(ctx context.Context, email string, blocked bool) (domain.Account, error)
	SetVerifiedByPhone(ctx context.Context, phoneNumber string, verified bool) (domain.Account, error)
	SetDeviceID(ctx context.Context, email, deviceID string) error
	UpdateName(ctx context.Context, id int64, name string) (domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account business logic.
func New(ar Repo) *Service {
	return &Service{
		repo: ar,
	}
}

// Create registers an account with the role's starting balance and returns it.
func (s *Service) Create(ctx context.Context, name, email, phoneNumber, nid, pin, role string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	var result domain.Account

	if role != domain.RoleUser && role != domain.RoleAgent && role != domain.RoleAdmin {
		return result, domain.ErrInvalidRole
	}

	if !domain.ValidPINFormat(pin) {
		return result, domain.ErrInvalidPINFormat
	}

	hashedPIN, err := passpkg.Hash(pin)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	arg := domain.CreateAccountParams{
		Name:        name,
		Email:       email,
		PhoneNumber: phoneNumber,
		NID:         nid,
		HashedPIN:   hashedPIN,
		Role:        role,
		Balance:     domain.SeedBalance(role),
	}

	return s.repo.Create(ctx, arg)
}

// Login checks credentials and enforces the single-device session rule.
// On success the presented device id is persisted on the account.
func (s *Service) Login(ctx context.Context, email, pin, deviceID string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return domain.Account{}, err
	}

	if account.Blocked {
		return domain.Account{}, domain.ErrAccountBlocked
	}

	if err := passpkg.Check(pin, account.HashedPIN); err != nil {
		l.Warn().Err(err).Send()
		return domain.Account{}, domain.ErrInvalidPIN
	}

	if account.Role == domain.RoleAgent && !account.Verified {
		return domain.Account{}, domain.ErrAgentNotVerified
	}

	// Admins are exempt from the single-device rule.
	if account.Role != domain.RoleAdmin {
		if account.DeviceID != "" && account.DeviceID != deviceID {
			return domain.Account{}, domain.ErrDeviceConflict
		}

		if err := s.repo.SetDeviceID(ctx, email, deviceID); err != nil {
			return domain.Account{}, err
		}

		account.DeviceID = deviceID
	}

	return account, nil
}

// CheckPIN checks the PIN against the stored hash and returns the account.
func (s *Service) CheckPIN(ctx context.Context, email, pin string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return domain.Account{}, err
	}

	if err := passpkg.Check(pin, account.HashedPIN); err != nil {
		l.Warn().Err(err).Send()
		return domain.Account{}, domain.ErrInvalidPIN
	}

	return account, nil
}

// LogoutAllDevices clears the stored device id for the account.
func (s *Service) LogoutAllDevices(ctx context.Context, email string) error {
	return s.repo.SetDeviceID(ctx, email, "")
}

// Get returns the account with the given email.
func (s *Service) Get(ctx context.Context, email string) (domain.Account, error) {
	return s.repo.GetByEmail(ctx, email)
}

// GetByPhone returns the account with the given phone number.
func (s *Service) GetByPhone(ctx context.Context, phoneNumber string) (domain.Account, error) {
	return s.repo.GetByPhone(ctx, phoneNumber)
}

// List returns all accounts.
func (s *Service) List(ctx context.Context) ([]domain.Account, error) {
	return s.repo.List(ctx)
}

// Delete removes the account with the given id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// UpdateName changes the account holder name.
func (s *Service) UpdateName(ctx context.Context, id int64, name string) (domain.Account, error) {
	return s.repo.UpdateName(ctx, id, name)
}

// SetBlocked blocks or unblocks the account with the given email.
func (s *Service) SetBlocked(ctx context.Context, email string, blocked bool) (domain.Account, error) {
	return s.repo.SetBlocked(ctx, email, blocked)
}

// SetAgentVerified resolves an agent verification request by phone number.
func (s *Service) SetAgentVerified(ctx context.Context, phoneNumber string, verified bool) (domain.Account, error) {
	return s.repo.SetVerifiedByPhone(ctx, phoneNumber, verified)
}

// Role returns the role of the account with the given email.
func (s *Service) Role(ctx context.Context, email string) (string, error) {
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	return account.Role, nil
}
