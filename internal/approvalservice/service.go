// Package approvalservice manages the agent-side state machine resolving
// pending cash-in and cash-out requests, and the transaction history views.
package approvalservice

import (
	"context"

	"github.com/swiftpay/swiftpay/internal/domain"
)

// Repo provides the atomic ledger interface needed by the approval service.
//
//go:generate mockgen -source service.go -destination service_mock.go -package approvalservice
type Repo interface {
	AcceptCashOutTx(ctx context.Context, id int64) (domain.AcceptCashOutResult, error)
	AcceptCashInTx(ctx context.Context, id int64) (domain.AcceptCashInResult, error)
}

// Log provides the transaction log interface needed by the approval service.
type Log interface {
	Get(ctx context.Context, id int64) (domain.Transaction, error)
	UpdateStatusIfPending(ctx context.Context, id int64, txType, status string) (domain.Transaction, error)
	ListPendingByAgent(ctx context.Context, agentEmail, txType string) ([]domain.Transaction, error)
	ListByAgent(ctx context.Context, agentEmail string) ([]domain.Transaction, error)
	ListBySender(ctx context.Context, senderEmail string) ([]domain.Transaction, error)
	ListAll(ctx context.Context) ([]domain.Transaction, error)
}

// Service facilitates approval workflow logic.
type Service struct {
	repo Repo
	log  Log
}

// New returns approval service struct to manage the approval state machine.
func New(r Repo, l Log) *Service {
	return &Service{
		repo: r,
		log:  l,
	}
}

// assignedTo rejects settle attempts by an agent the transaction is not
// assigned to. The status transition itself stays guarded by the conditional
// update in the repository.
func (s *Service) assignedTo(ctx context.Context, id int64, agentEmail string) error {
	txn, err := s.log.Get(ctx, id)
	if err != nil {
		return err
	}

	if txn.AgentEmail != agentEmail {
		return domain.ErrNotAssignedAgent
	}

	return nil
}

// AcceptCashOut resolves a pending cash-out, applying the sender debit and
// the agent and admin credits atomically. Only the assigned agent may settle;
// transactions already in a terminal status are rejected without side effects.
func (s *Service) AcceptCashOut(ctx context.Context, id int64, agentEmail string) (domain.AcceptCashOutResult, error) {
	if err := s.assignedTo(ctx, id, agentEmail); err != nil {
		return domain.AcceptCashOutResult{}, err
	}

	return s.repo.AcceptCashOutTx(ctx, id)
}

// CancelCashOut cancels a pending cash-out. No balance is touched.
func (s *Service) CancelCashOut(ctx context.Context, id int64, agentEmail string) (domain.Transaction, error) {
	if err := s.assignedTo(ctx, id, agentEmail); err != nil {
		return domain.Transaction{}, err
	}

	return s.log.UpdateStatusIfPending(ctx, id, domain.TypeCashOut, domain.StatusCanceled)
}

// AcceptCashIn resolves a pending cash-in, moving the amount from the agent
// to the sender atomically. Only the assigned agent may settle.
func (s *Service) AcceptCashIn(ctx context.Context, id int64, agentEmail string) (domain.AcceptCashInResult, error) {
	if err := s.assignedTo(ctx, id, agentEmail); err != nil {
		return domain.AcceptCashInResult{}, err
	}

	return s.repo.AcceptCashInTx(ctx, id)
}

// CancelCashIn cancels a pending cash-in. No balance is touched.
func (s *Service) CancelCashIn(ctx context.Context, id int64, agentEmail string) (domain.Transaction, error) {
	if err := s.assignedTo(ctx, id, agentEmail); err != nil {
		return domain.Transaction{}, err
	}

	return s.log.UpdateStatusIfPending(ctx, id, domain.TypeCashIn, domain.StatusCanceled)
}

// PendingCashOuts returns the agent's pending cash-out requests, newest first.
func (s *Service) PendingCashOuts(ctx context.Context, agentEmail string) ([]domain.Transaction, error) {
	return s.log.ListPendingByAgent(ctx, agentEmail, domain.TypeCashOut)
}

// PendingCashIns returns the agent's pending cash-in requests, newest first.
func (s *Service) PendingCashIns(ctx context.Context, agentEmail string) ([]domain.Transaction, error) {
	return s.log.ListPendingByAgent(ctx, agentEmail, domain.TypeCashIn)
}

// ListByAgent returns all transactions mediated by the agent, newest first.
func (s *Service) ListByAgent(ctx context.Context, agentEmail string) ([]domain.Transaction, error) {
	return s.log.ListByAgent(ctx, agentEmail)
}

// ListBySender returns all transactions initiated by the sender, newest first.
func (s *Service) ListBySender(ctx context.Context, senderEmail string) ([]domain.Transaction, error) {
	return s.log.ListBySender(ctx, senderEmail)
}

// ListAll returns the whole transaction log, newest first.
func (s *Service) ListAll(ctx context.Context) ([]domain.Transaction, error) {
	return s.log.ListAll(ctx)
}
