// Package statsservice computes system-wide summary statistics on demand.
// Nothing is cached or persisted; every call recomputes from the store.
package statsservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/pkg/errorspkg"
)

// AccountReader provides the account aggregates needed by the stats service.
//
//go:generate mockgen -source service.go -destination service_mock.go -package statsservice
type AccountReader interface {
	CountByRole(ctx context.Context, role string, verifiedOnly bool) (int64, error)
	SumBalances(ctx context.Context) (string, error)
}

// TransactionReader provides the transaction log aggregates needed by the
// stats service.
type TransactionReader interface {
	Count(ctx context.Context) (int64, error)
	LegacyNet(ctx context.Context) (string, error)
}

// Service facilitates stats aggregation logic.
type Service struct {
	accounts     AccountReader
	transactions TransactionReader
}

// New returns stats service struct.
func New(ar AccountReader, tr TransactionReader) *Service {
	return &Service{
		accounts:     ar,
		transactions: tr,
	}
}

// Compute returns current system totals. SystemTotalMoney is the sum of all
// balances; LegacyTotalMoney additionally folds the transaction log the way
// the historical endpoint did and is reported only for client parity.
func (s *Service) Compute(ctx context.Context) (domain.Stats, error) {
	l := zerolog.Ctx(ctx)

	var stats domain.Stats

	var err error

	stats.TotalUsers, err = s.accounts.CountByRole(ctx, domain.RoleUser, false)
	if err != nil {
		return stats, err
	}

	stats.TotalAgents, err = s.accounts.CountByRole(ctx, domain.RoleAgent, true)
	if err != nil {
		return stats, err
	}

	stats.TotalTransactions, err = s.transactions.Count(ctx)
	if err != nil {
		return stats, err
	}

	balances, err := s.accounts.SumBalances(ctx)
	if err != nil {
		return stats, err
	}

	balancesDecimal, err := decimal.NewFromString(balances)
	if err != nil {
		l.Error().Err(err).Send()
		return stats, errorspkg.ErrInternal
	}

	net, err := s.transactions.LegacyNet(ctx)
	if err != nil {
		return stats, err
	}

	netDecimal, err := decimal.NewFromString(net)
	if err != nil {
		l.Error().Err(err).Send()
		return stats, errorspkg.ErrInternal
	}

	stats.SystemTotalMoney = balancesDecimal.String()
	stats.LegacyTotalMoney = balancesDecimal.Add(netDecimal).String()

	return stats, nil
}
