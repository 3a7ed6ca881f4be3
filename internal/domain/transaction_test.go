package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSendMoneyFee(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		amount string
		want   string
	}{
		{"50", "0"},
		{"99", "0"},
		{"99.99", "0"},
		{"100", "5"},
		{"150", "5"},
		{"100000", "5"},
	}

	for _, tc := range testCases {
		amount := decimal.RequireFromString(tc.amount)

		got := SendMoneyFee(amount)
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("SendMoneyFee(%v) = %v, want %v", tc.amount, got, tc.want)
		}
	}
}

func TestCashOutProfits(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		amount          string
		wantAdminProfit string
		wantAgentProfit string
	}{
		{"200", "1", "2"},
		{"1000", "5", "10"},
		{"50", "0.25", "0.5"},
	}

	for _, tc := range testCases {
		adminProfit, agentProfit := CashOutProfits(decimal.RequireFromString(tc.amount))

		if !adminProfit.Equal(decimal.RequireFromString(tc.wantAdminProfit)) {
			t.Errorf("CashOutProfits(%v) adminProfit = %v, want %v", tc.amount, adminProfit, tc.wantAdminProfit)
		}

		if !agentProfit.Equal(decimal.RequireFromString(tc.wantAgentProfit)) {
			t.Errorf("CashOutProfits(%v) agentProfit = %v, want %v", tc.amount, agentProfit, tc.wantAgentProfit)
		}
	}
}

func TestSeedBalance(t *testing.T) {
	t.Parallel()

	if got := SeedBalance(RoleUser); got != "40" {
		t.Errorf("SeedBalance(RoleUser) = %v, want 40", got)
	}

	if got := SeedBalance(RoleAgent); got != "100000" {
		t.Errorf("SeedBalance(RoleAgent) = %v, want 100000", got)
	}

	if got := SeedBalance(RoleAdmin); got != "0" {
		t.Errorf("SeedBalance(RoleAdmin) = %v, want 0", got)
	}
}
