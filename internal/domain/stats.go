package domain

// Stats holds system-wide summary figures, recomputed from scratch on demand.
//
// SystemTotalMoney is the sum of all account balances. LegacyTotalMoney keeps
// the historical formula (balances plus the net of cash-in minus cash-out
// transactions) for clients that depend on the old number; it double-counts
// settled money and is reported as-is.
type Stats struct {
	TotalUsers        int64  `json:"totalUser"`
	TotalAgents       int64  `json:"totalAgent"`
	TotalTransactions int64  `json:"totalTransactions"`
	SystemTotalMoney  string `json:"systemTotalMoney"`
	LegacyTotalMoney  string `json:"legacyTotalMoney"`
}
