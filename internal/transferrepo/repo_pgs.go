// Package transferrepo manages the repository layer of balance transfers.
//
// Every exported method applies its balance deltas and the paired transaction
// log record within a single database transaction, so either all of them
// commit or none do.
package transferrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/swiftpay/swiftpay/internal/accountrepo"
	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/internal/transactionrepo"
	"github.com/swiftpay/swiftpay/pkg/errorspkg"
)

// RepoPGS facilitates transfer repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns transfer RepoPGS with a connection to start transactions.
func NewRepoPGS(conn *sql.DB) *RepoPGS {
	return &RepoPGS{
		conn: conn,
	}
}

func (r *RepoPGS) begin(ctx context.Context) (*sql.Tx, *accountrepo.RepoPGS, *transactionrepo.RepoPGS, error) {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, nil, nil, errorspkg.ErrInternal
	}

	return tx, accountrepo.NewRepoPGS(tx), transactionrepo.NewRepoPGS(tx), nil
}

func rollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		zerolog.Ctx(ctx).Error().Err(err).Send()
	}
}

// SendMoneyTx moves amount from the sender to the receiver and credits the
// fee to the admin account, logging an accepted send-money transaction.
//
// The sender debit is a conditional update backed by the balance check
// constraint, so a concurrent transfer draining the same sender cannot
// overdraw the account. Statements execute in a fixed sender, receiver,
// admin order.
func (r *RepoPGS) SendMoneyTx(ctx context.Context, arg domain.SendMoneyParams) (domain.SendMoneyResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.SendMoneyResult

	amount, err := decimal.NewFromString(arg.Amount)
	if err != nil {
		l.Error().Err(err).Send()
		return result, domain.ErrInvalidAmount
	}

	fee, err := decimal.NewFromString(arg.Fee)
	if err != nil {
		l.Error().Err(err).Send()
		return result, domain.ErrInvalidAmount
	}

	totalDebit := amount.Add(fee)

	tx, accountRepo, transactionRepo, err := r.begin(ctx)
	if err != nil {
		return result, err
	}
	defer rollback(ctx, tx)

	result.Sender, err = accountRepo.AddBalanceByEmail(ctx, totalDebit.Neg().String(), arg.SenderEmail)
	if err != nil {
		return result, err
	}

	result.Receiver, err = accountRepo.AddBalanceByPhone(ctx, arg.Amount, arg.ReceiverPhone)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return result, domain.ErrReceiverNotFound
		}

		return result, err
	}

	result.Admin, err = accountRepo.AddBalanceToAdmin(ctx, arg.Fee)
	if err != nil {
		return result, err
	}

	result.Transaction, err = transactionRepo.Create(ctx, domain.CreateTransactionParams{
		Type:          domain.TypeSendMoney,
		SenderEmail:   arg.SenderEmail,
		ReceiverPhone: arg.ReceiverPhone,
		Amount:        arg.Amount,
		Fee:           arg.Fee,
		Status:        domain.StatusAccepted,
	})
	if err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}

// AcceptCashOutTx resolves a pending cash-out: the status transition and the
// three balance deltas (agent += agentProfit - amount, admin += adminProfit,
// sender -= amount) commit as one unit.
//
// The status transition runs first as a conditional update, so a second
// accept of the same transaction matches no row and applies nothing. If the
// sender can no longer cover the amount, the whole transaction rolls back
// and the request stays pending.
func (r *RepoPGS) AcceptCashOutTx(ctx context.Context, id int64) (domain.AcceptCashOutResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.AcceptCashOutResult

	tx, accountRepo, transactionRepo, err := r.begin(ctx)
	if err != nil {
		return result, err
	}
	defer rollback(ctx, tx)

	result.Transaction, err = transactionRepo.UpdateStatusIfPending(ctx, id, domain.TypeCashOut, domain.StatusAccepted)
	if err != nil {
		return result, err
	}

	amount, err := decimal.NewFromString(result.Transaction.Amount)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	agentProfit, err := decimal.NewFromString(result.Transaction.AgentProfit)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	result.Agent, err = accountRepo.AddBalanceByEmail(ctx, agentProfit.Sub(amount).String(), result.Transaction.AgentEmail)
	if err != nil {
		return result, err
	}

	result.Admin, err = accountRepo.AddBalanceToAdmin(ctx, result.Transaction.AdminProfit)
	if err != nil {
		return result, err
	}

	result.Sender, err = accountRepo.AddBalanceByEmail(ctx, amount.Neg().String(), result.Transaction.SenderEmail)
	if err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}

// AcceptCashInTx resolves a pending cash-in: the status transition, the agent
// debit and the sender credit commit as one unit. The agent debit is the
// conditional update, so an agent without funds cannot accept the request.
func (r *RepoPGS) AcceptCashInTx(ctx context.Context, id int64) (domain.AcceptCashInResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.AcceptCashInResult

	tx, accountRepo, transactionRepo, err := r.begin(ctx)
	if err != nil {
		return result, err
	}
	defer rollback(ctx, tx)

	result.Transaction, err = transactionRepo.UpdateStatusIfPending(ctx, id, domain.TypeCashIn, domain.StatusAccepted)
	if err != nil {
		return result, err
	}

	amount, err := decimal.NewFromString(result.Transaction.Amount)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	result.Agent, err = accountRepo.AddBalanceByEmail(ctx, amount.Neg().String(), result.Transaction.AgentEmail)
	if err != nil {
		return result, err
	}

	result.Sender, err = accountRepo.AddBalanceByEmail(ctx, result.Transaction.Amount, result.Transaction.SenderEmail)
	if err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}
