// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/pkg/dbpkg"
	"github.com/swiftpay/swiftpay/pkg/errorspkg"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const accountColumns = `
id, name, email, phone_number, nid, hashed_pin, role, balance, verified, blocked, device_id, created_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row scanner, a *domain.Account) error {
	return row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PhoneNumber,
		&a.NID,
		&a.HashedPIN,
		&a.Role,
		&a.Balance,
		&a.Verified,
		&a.Blocked,
		&a.DeviceID,
		&a.CreatedAt,
	)
}

const createQuery = `
INSERT INTO accounts (
    name, email, phone_number, nid, hashed_pin, role, balance
) VALUES (
    $1, $2, $3, $4, $5, $6, $7
) RETURNING` + accountColumns

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Name,
		arg.Email,
		arg.PhoneNumber,
		arg.NID,
		arg.HashedPIN,
		arg.Role,
		arg.Balance,
	)

	var a domain.Account

	if err := scanAccount(row, &a); err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code.Name() == "unique_violation" {
				switch pqErr.Constraint {
				case "accounts_email_key":
					return a, domain.ErrEmailAlreadyExists
				case "accounts_phone_number_key":
					return a, domain.ErrPhoneAlreadyExists
				case "accounts_nid_key":
					return a, domain.ErrNIDAlreadyExists
				}
			}

			if pqErr.Constraint == "accounts_role_check" {
				return a, domain.ErrInvalidRole
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getByEmailQuery = `
SELECT` + accountColumns + `
FROM accounts
WHERE email = $1
`

// GetByEmail returns the account with the given email.
func (r *RepoPGS) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.get(ctx, getByEmailQuery, email)
}

const getByPhoneQuery = `
SELECT` + accountColumns + `
FROM accounts
WHERE phone_number = $1
`

// GetByPhone returns the account with the given phone number.
func (r *RepoPGS) GetByPhone(ctx context.Context, phoneNumber string) (domain.Account, error) {
	return r.get(ctx, getByPhoneQuery, phoneNumber)
}

const getByIDQuery = `
SELECT` + accountColumns + `
FROM accounts
WHERE id = $1
`

// GetByID returns the account with the given id.
func (r *RepoPGS) GetByID(ctx context.Context, id int64) (domain.Account, error) {
	return r.get(ctx, getByIDQuery, id)
}

const getAdminQuery = `
SELECT` + accountColumns + `
FROM accounts
WHERE role = 'admin'
ORDER BY id
LIMIT 1
`

// GetAdmin returns the admin account that collects fees.
func (r *RepoPGS) GetAdmin(ctx context.Context) (domain.Account, error) {
	return r.get(ctx, getAdminQuery)
}

func (r *RepoPGS) get(ctx context.Context, query string, args ...interface{}) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)

	var a domain.Account

	if err := scanAccount(row, &a); err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const addBalanceByEmailQuery = `
UPDATE accounts
SET balance = balance + $1
WHERE email = $2
RETURNING` + accountColumns

// AddBalanceByEmail changes the balance of the account with the given email
// and returns the changed account. A negative amount that would drive the
// balance below zero violates accounts_balance_check and applies nothing.
func (r *RepoPGS) AddBalanceByEmail(ctx context.Context, amount, email string) (domain.Account, error) {
	return r.addBalance(ctx, addBalanceByEmailQuery, amount, email)
}

const addBalanceByPhoneQuery = `
UPDATE accounts
SET balance = balance + $1
WHERE phone_number = $2
RETURNING` + accountColumns

// AddBalanceByPhone changes the balance of the account with the given phone number.
func (r *RepoPGS) AddBalanceByPhone(ctx context.Context, amount, phoneNumber string) (domain.Account, error) {
	return r.addBalance(ctx, addBalanceByPhoneQuery, amount, phoneNumber)
}

const addBalanceToAdminQuery = `
UPDATE accounts
SET balance = balance + $1
WHERE id = (SELECT id FROM accounts WHERE role = 'admin' ORDER BY id LIMIT 1)
RETURNING` + accountColumns

// AddBalanceToAdmin credits the admin account that collects fees.
func (r *RepoPGS) AddBalanceToAdmin(ctx context.Context, amount string) (domain.Account, error) {
	return r.addBalance(ctx, addBalanceToAdminQuery, amount)
}

func (r *RepoPGS) addBalance(ctx context.Context, query string, args ...interface{}) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)

	var a domain.Account

	if err := scanAccount(row, &a); err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "accounts_balance_check" {
				return a, domain.ErrInsufficientBalance
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const setBlockedQuery = `
UPDATE accounts
SET blocked = $1
WHERE email = $2
RETURNING` + accountColumns

// SetBlocked blocks or unblocks the account with the given email.
func (r *RepoPGS) SetBlocked(ctx context.Context, email string, blocked bool) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, setBlockedQuery, blocked, email)

	var a domain.Account

	if err := scanAccount(row, &a); err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const setVerifiedByPhoneQuery = `
UPDATE accounts
SET verified = $1
WHERE phone_number = $2 AND role = 'agent'
RETURNING` + accountColumns

// SetVerifiedByPhone marks the agent with the given phone number verified or not.
func (r *RepoPGS) SetVerifiedByPhone(ctx context.Context, phoneNumber string, verified bool) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, setVerifiedByPhoneQuery, verified, phoneNumber)

	var a domain.Account

	if err := scanAccount(row, &a); err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const setDeviceIDQuery = `
UPDATE accounts
SET device_id = $1
WHERE email = $2
`

// SetDeviceID stores the last device that logged in. An empty device id
// logs the account out of all devices.
func (r *RepoPGS) SetDeviceID(ctx context.Context, email, deviceID string) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, setDeviceIDQuery, deviceID, email)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

const updateNameQuery = `
UPDATE accounts
SET name = $1
WHERE id = $2
RETURNING` + accountColumns

// UpdateName changes the account holder name.
func (r *RepoPGS) UpdateName(ctx context.Context, id int64, name string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateNameQuery, name, id)

	var a domain.Account

	if err := scanAccount(row, &a); err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const listQuery = `
SELECT` + accountColumns + `
FROM accounts
ORDER BY id
`

// List returns all accounts.
func (r *RepoPGS) List(ctx context.Context) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account
		if err := scanAccount(rows, &a); err != nil {
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

const deleteQuery = `
DELETE FROM accounts
WHERE id = $1
`

// Delete removes the account with the given id.
func (r *RepoPGS) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, deleteQuery, id)
	return err
}

const countByRoleQuery = `
SELECT count(*)
FROM accounts
WHERE role = $1 AND (NOT $2 OR verified)
`

// CountByRole counts accounts with the given role, optionally verified only.
func (r *RepoPGS) CountByRole(ctx context.Context, role string, verifiedOnly bool) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64

	err := r.db.QueryRowContext(ctx, countByRoleQuery, role, verifiedOnly).Scan(&count)
	if err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const sumBalancesQuery = `
SELECT COALESCE(sum(balance), 0)
FROM accounts
`

// SumBalances returns the sum of every account balance.
func (r *RepoPGS) SumBalances(ctx context.Context) (string, error) {
	l := zerolog.Ctx(ctx)

	var sum string

	err := r.db.QueryRowContext(ctx, sumBalancesQuery).Scan(&sum)
	if err != nil {
		l.Error().Err(err).Send()
		return "", errorspkg.ErrInternal
	}

	return sum, nil
}
