// Package transactionrepo manages repository layer of the transaction log.
package transactionrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/pkg/dbpkg"
	"github.com/swiftpay/swiftpay/pkg/errorspkg"
)

// RepoPGS facilitates transaction log repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transaction RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const transactionColumns = `
id, type, sender_email, receiver_phone, agent_email, amount, fee, admin_profit, agent_profit, status, created_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row scanner, t *domain.Transaction) error {
	return row.Scan(
		&t.ID,
		&t.Type,
		&t.SenderEmail,
		&t.ReceiverPhone,
		&t.AgentEmail,
		&t.Amount,
		&t.Fee,
		&t.AdminProfit,
		&t.AgentProfit,
		&t.Status,
		&t.CreatedAt,
	)
}

const createQuery = `
INSERT INTO transactions (
    type, sender_email, receiver_phone, agent_email, amount, fee, admin_profit, agent_profit, status
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9
) RETURNING` + transactionColumns

// Create appends a transaction to the log and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	fee, adminProfit, agentProfit := arg.Fee, arg.AdminProfit, arg.AgentProfit
	if fee == "" {
		fee = "0"
	}

	if adminProfit == "" {
		adminProfit = "0"
	}

	if agentProfit == "" {
		agentProfit = "0"
	}

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Type,
		arg.SenderEmail,
		arg.ReceiverPhone,
		arg.AgentEmail,
		arg.Amount,
		fee,
		adminProfit,
		agentProfit,
		arg.Status,
	)

	var t domain.Transaction

	if err := scanTransaction(row, &t); err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "transactions_amount_check" {
				return t, domain.ErrInvalidAmount
			}
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const getQuery = `
SELECT` + transactionColumns + `
FROM transactions
WHERE id = $1
`

// Get returns the transaction with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var t domain.Transaction

	if err := scanTransaction(row, &t); err != nil {
		if err == sql.ErrNoRows {
			return t, domain.ErrTransactionNotFound
		}

		l.Error().Err(err).Send()

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const updateStatusIfPendingQuery = `
UPDATE transactions
SET status = $1
WHERE id = $2 AND type = $3 AND status = 'pending'
RETURNING` + transactionColumns

// UpdateStatusIfPending transitions the transaction with the given id and type
// out of the pending status. It is the guard against double approval: once a
// transaction reached a terminal status the conditional update matches no row
// and ErrTransactionNotPending is returned without side effects.
func (r *RepoPGS) UpdateStatusIfPending(ctx context.Context, id int64, txType, status string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateStatusIfPendingQuery, status, id, txType)

	var t domain.Transaction

	if err := scanTransaction(row, &t); err != nil {
		if err == sql.ErrNoRows {
			if _, getErr := r.Get(ctx, id); getErr == domain.ErrTransactionNotFound {
				return t, domain.ErrTransactionNotFound
			}

			return t, domain.ErrTransactionNotPending
		}

		l.Error().Err(err).Send()

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const listPendingByAgentQuery = `
SELECT` + transactionColumns + `
FROM transactions
WHERE agent_email = $1 AND type = $2 AND status = 'pending'
ORDER BY created_at DESC
`

// ListPendingByAgent returns the agent's pending requests of the given type,
// newest first.
func (r *RepoPGS) ListPendingByAgent(ctx context.Context, agentEmail, txType string) ([]domain.Transaction, error) {
	return r.list(ctx, listPendingByAgentQuery, agentEmail, txType)
}

const listByAgentQuery = `
SELECT` + transactionColumns + `
FROM transactions
WHERE agent_email = $1
ORDER BY created_at DESC
`

// ListByAgent returns all transactions mediated by the agent, newest first.
func (r *RepoPGS) ListByAgent(ctx context.Context, agentEmail string) ([]domain.Transaction, error) {
	return r.list(ctx, listByAgentQuery, agentEmail)
}

const listBySenderQuery = `
SELECT` + transactionColumns + `
FROM transactions
WHERE sender_email = $1
ORDER BY created_at DESC
`

// ListBySender returns all transactions initiated by the sender, newest first.
func (r *RepoPGS) ListBySender(ctx context.Context, senderEmail string) ([]domain.Transaction, error) {
	return r.list(ctx, listBySenderQuery, senderEmail)
}

const listAllQuery = `
SELECT` + transactionColumns + `
FROM transactions
ORDER BY created_at DESC
`

// ListAll returns the whole transaction log, newest first.
func (r *RepoPGS) ListAll(ctx context.Context) ([]domain.Transaction, error) {
	return r.list(ctx, listAllQuery)
}

func (r *RepoPGS) list(ctx context.Context, query string, args ...interface{}) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		var t domain.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const countQuery = `
SELECT count(*)
FROM transactions
`

// Count returns the total number of logged transactions.
func (r *RepoPGS) Count(ctx context.Context) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64

	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const legacyNetQuery = `
SELECT COALESCE(sum(
    CASE type
        WHEN 'cash-out' THEN -amount
        WHEN 'send-money' THEN 0
        ELSE amount
    END), 0)
FROM transactions
`

// LegacyNet folds the transaction log the way the historical stats endpoint
// did: cash-out subtracts its amount, send-money is net zero, everything else
// adds its amount.
func (r *RepoPGS) LegacyNet(ctx context.Context) (string, error) {
	l := zerolog.Ctx(ctx)

	var net string

	if err := r.db.QueryRowContext(ctx, legacyNetQuery).Scan(&net); err != nil {
		l.Error().Err(err).Send()
		return "", errorspkg.ErrInternal
	}

	return net, nil
}
