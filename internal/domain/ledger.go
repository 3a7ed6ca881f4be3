package domain

// SendMoneyParams is the input data for the send-money ledger transaction.
// Fee is fixed by the caller before the transaction starts.
type SendMoneyParams struct {
	SenderEmail   string
	ReceiverPhone string
	Amount        string
	Fee           string
}

// SendMoneyResult is the all-or-nothing outcome of a send-money transfer:
// the logged transaction and the three accounts after their balance deltas.
type SendMoneyResult struct {
	Transaction Transaction `json:"transaction"`
	Sender      Account     `json:"sender"`
	Receiver    Account     `json:"receiver"`
	Admin       Account     `json:"-"`
}

// AcceptCashOutResult is the outcome of an accepted cash-out.
type AcceptCashOutResult struct {
	Transaction Transaction `json:"transaction"`
	Sender      Account     `json:"sender"`
	Agent       Account     `json:"agent"`
	Admin       Account     `json:"-"`
}

// AcceptCashInResult is the outcome of an accepted cash-in.
type AcceptCashInResult struct {
	Transaction Transaction `json:"transaction"`
	Sender      Account     `json:"sender"`
	Agent       Account     `json:"agent"`
}
