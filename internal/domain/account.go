// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"
)

// Account roles.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
	RoleAdmin = "admin"
)

// Starting balances seeded at account creation.
const (
	UserSeedBalance  = "40"
	AgentSeedBalance = "100000"
)

// PINLength is the required PIN length in digits.
const PINLength = 6

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmailAlreadyExists indicates that the email is already registered.
	ErrEmailAlreadyExists = errors.New("this email already exists, try with another email")
	// ErrPhoneAlreadyExists indicates that the phone number is already registered.
	ErrPhoneAlreadyExists = errors.New("this phone number already exists, try with another number")
	// ErrNIDAlreadyExists indicates that the national id is already registered.
	ErrNIDAlreadyExists = errors.New("this NID already exists, try with another NID")
	// ErrInvalidPIN indicates a failed PIN comparison.
	ErrInvalidPIN = errors.New("invalid PIN")
	// ErrInvalidPINFormat indicates that the PIN is not exactly 6 digits.
	ErrInvalidPINFormat = errors.New("PIN must be exactly 6 digits")
	// ErrInvalidRole indicates an unknown account role.
	ErrInvalidRole = errors.New("invalid role")
	// ErrAccountBlocked indicates that the account is blocked by an admin.
	ErrAccountBlocked = errors.New("account is blocked")
	// ErrAgentNotVerified indicates that the agent is not verified by an admin yet.
	ErrAgentNotVerified = errors.New("agent is not verified yet")
	// ErrDeviceConflict indicates a login attempt from a second device.
	ErrDeviceConflict = errors.New("you are already logged in on another device")
)

// Account holds a user, agent or admin record with its balance.
type Account struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	NID         string    `json:"nid"`
	HashedPIN   string    `json:"-"`
	Role        string    `json:"role"`
	Balance     string    `json:"balance"`
	Verified    bool      `json:"verified"`
	Blocked     bool      `json:"blocked"`
	DeviceID    string    `json:"deviceId"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateAccountParams is the input data to create an account.
type CreateAccountParams struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	NID         string `json:"nid"`
	HashedPIN   string `json:"hashed_pin"`
	Role        string `json:"role"`
	Balance     string `json:"balance"`
}

// ValidPINFormat reports whether pin is exactly PINLength decimal digits.
func ValidPINFormat(pin string) bool {
	if len(pin) != PINLength {
		return false
	}

	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}

	return true
}

// SeedBalance returns the starting balance for the given role.
// Admin accounts are provisioned manually and start from zero.
func SeedBalance(role string) string {
	switch role {
	case RoleUser:
		return UserSeedBalance
	case RoleAgent:
		return AgentSeedBalance
	}

	return "0"
}
