// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/swiftpay/swiftpay/internal/accountrepo"
	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/internal/transactionrepo"
	"github.com/swiftpay/swiftpay/pkg/dbpkg"
	"github.com/swiftpay/swiftpay/pkg/passpkg"
	"github.com/swiftpay/swiftpay/pkg/randompkg"
)

// SeedAccount creates a random account with the given role and balance
// inside a test transaction. The PIN is random; use SeedAccountWithPIN when
// the test needs to authenticate.
func SeedAccount(t *testing.T, tx dbpkg.SQLInterface, role, balance string) domain.Account {
	t.Helper()

	return SeedAccountWithPIN(t, tx, role, balance, randompkg.PIN())
}

// SeedAccountWithPIN creates a random account with the given role, balance
// and PIN inside a test transaction.
func SeedAccountWithPIN(t *testing.T, tx dbpkg.SQLInterface, role, balance, pin string) domain.Account {
	t.Helper()

	hashedPIN, err := passpkg.Hash(pin)
	if err != nil {
		t.Fatalf("passpkg.Hash(%v) returned error: %v", pin, err)
	}

	arg := domain.CreateAccountParams{
		Name:        randompkg.Name(),
		Email:       randompkg.Email(),
		PhoneNumber: randompkg.PhoneNumber(),
		NID:         randompkg.NID(),
		HashedPIN:   hashedPIN,
		Role:        role,
		Balance:     balance,
	}

	accountRepo := accountrepo.NewRepoPGS(tx)

	account, err := accountRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return account
}

// SeedVerifiedAgent creates a verified agent with the given balance inside a
// test transaction.
func SeedVerifiedAgent(t *testing.T, tx dbpkg.SQLInterface, balance string) domain.Account {
	t.Helper()

	agent := SeedAccount(t, tx, domain.RoleAgent, balance)

	accountRepo := accountrepo.NewRepoPGS(tx)

	agent, err := accountRepo.SetVerifiedByPhone(context.Background(), agent.PhoneNumber, true)
	if err != nil {
		t.Fatalf("accountRepo.SetVerifiedByPhone(context.Background(), %v, true) returned error: %v",
			agent.PhoneNumber, err)
	}

	return agent
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal.NewFromString(%v) returned error: %v", s, err)
	}

	return d
}

// SeedTransaction appends a transaction log record inside a test transaction.
func SeedTransaction(t *testing.T, tx dbpkg.SQLInterface, arg domain.CreateTransactionParams) domain.Transaction {
	t.Helper()

	transactionRepo := transactionrepo.NewRepoPGS(tx)

	txn, err := transactionRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("transactionRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return txn
}

// SeedPendingCashOut creates a pending cash-out request between the given
// sender and agent inside a test transaction.
func SeedPendingCashOut(t *testing.T, tx dbpkg.SQLInterface, sender, agent domain.Account, amount string) domain.Transaction {
	t.Helper()

	adminProfit, agentProfit := domain.CashOutProfits(mustDecimal(t, amount))

	return SeedTransaction(t, tx, domain.CreateTransactionParams{
		Type:        domain.TypeCashOut,
		SenderEmail: sender.Email,
		AgentEmail:  agent.Email,
		Amount:      amount,
		AdminProfit: adminProfit.String(),
		AgentProfit: agentProfit.String(),
		Status:      domain.StatusPending,
	})
}

// SeedPendingCashIn creates a pending cash-in request between the given
// sender and agent inside a test transaction.
func SeedPendingCashIn(t *testing.T, tx dbpkg.SQLInterface, sender, agent domain.Account, amount string) domain.Transaction {
	t.Helper()

	return SeedTransaction(t, tx, domain.CreateTransactionParams{
		Type:        domain.TypeCashIn,
		SenderEmail: sender.Email,
		AgentEmail:  agent.Email,
		Amount:      amount,
		Status:      domain.StatusPending,
	})
}
