// Package transferservice manages business logic layer of balance transfers.
package transferservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/swiftpay/swiftpay/internal/accountdelivery"
	"github.com/swiftpay/swiftpay/internal/domain"
)

// Repo provides the data access layer interface needed by the transfer
// service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	SendMoneyTx(ctx context.Context, arg domain.SendMoneyParams) (domain.SendMoneyResult, error)
}

// Log provides the transaction log interface needed by the transfer service
// layer.
type Log interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
}

// Service facilitates transfer service layer logic.
type Service struct {
	repo     Repo
	log      Log
	accounts accountdelivery.Service
}

// New returns transfer service struct to manage transfer business logic.
func New(tr Repo, tl Log, as accountdelivery.Service) *Service {
	return &Service{
		repo:     tr,
		log:      tl,
		accounts: as,
	}
}

func parseAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	if d.LessThan(domain.MinTransferAmount) {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	return d, nil
}

func (s *Service) agentByEmail(ctx context.Context, agentEmail string) (domain.Account, error) {
	agent, err := s.accounts.Get(ctx, agentEmail)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return domain.Account{}, domain.ErrAgentAccountNotFound
		}

		return domain.Account{}, err
	}

	if agent.Role != domain.RoleAgent {
		return domain.Account{}, domain.ErrAgentAccountNotFound
	}

	return agent, nil
}

// SendMoney validates and executes an immediate peer-to-peer transfer.
// The fee is 5 for amounts of 100 or more. The three balance updates and the
// transaction record are applied by the repository as one atomic unit.
func (s *Service) SendMoney(ctx context.Context, senderEmail, receiverPhone, amount, pin string) (domain.SendMoneyResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.SendMoneyResult

	amountDecimal, err := parseAmount(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	sender, err := s.accounts.CheckPIN(ctx, senderEmail, pin)
	if err != nil {
		return result, err
	}

	if sender.PhoneNumber == receiverPhone {
		return result, domain.ErrSelfTransfer
	}

	fee := domain.SendMoneyFee(amountDecimal)

	senderBalance, err := decimal.NewFromString(sender.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return result, err
	}

	if senderBalance.LessThan(amountDecimal.Add(fee)) {
		return result, domain.ErrInsufficientBalance
	}

	arg := domain.SendMoneyParams{
		SenderEmail:   senderEmail,
		ReceiverPhone: receiverPhone,
		Amount:        amountDecimal.String(),
		Fee:           fee.String(),
	}

	return s.repo.SendMoneyTx(ctx, arg)
}

// RequestCashOut validates a cash-out request and appends it to the log as
// pending. The fee shares are fixed now; no balance moves until an agent
// accepts. The balance check here is a read-only pre-check, not a hold.
func (s *Service) RequestCashOut(ctx context.Context, senderEmail, agentEmail, amount, pin string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	var result domain.Transaction

	amountDecimal, err := parseAmount(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	sender, err := s.accounts.CheckPIN(ctx, senderEmail, pin)
	if err != nil {
		return result, err
	}

	if _, err := s.agentByEmail(ctx, agentEmail); err != nil {
		return result, err
	}

	senderBalance, err := decimal.NewFromString(sender.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return result, err
	}

	if senderBalance.LessThan(amountDecimal) {
		return result, domain.ErrInsufficientBalance
	}

	adminProfit, agentProfit := domain.CashOutProfits(amountDecimal)

	arg := domain.CreateTransactionParams{
		Type:        domain.TypeCashOut,
		SenderEmail: senderEmail,
		AgentEmail:  agentEmail,
		Amount:      amountDecimal.String(),
		AdminProfit: adminProfit.String(),
		AgentProfit: agentProfit.String(),
		Status:      domain.StatusPending,
	}

	return s.log.Create(ctx, arg)
}

// RequestCashIn validates a cash-in request and appends it to the log as
// pending. No PIN is required at request time and no balance moves.
func (s *Service) RequestCashIn(ctx context.Context, senderEmail, agentEmail, amount string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	var result domain.Transaction

	amountDecimal, err := parseAmount(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	if _, err := s.accounts.Get(ctx, senderEmail); err != nil {
		return result, err
	}

	if _, err := s.agentByEmail(ctx, agentEmail); err != nil {
		return result, err
	}

	arg := domain.CreateTransactionParams{
		Type:        domain.TypeCashIn,
		SenderEmail: senderEmail,
		AgentEmail:  agentEmail,
		Amount:      amountDecimal.String(),
		Status:      domain.StatusPending,
	}

	return s.log.Create(ctx, arg)
}
