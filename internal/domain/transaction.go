package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TypeSendMoney = "send-money"
	TypeCashOut   = "cash-out"
	TypeCashIn    = "cash-in"
)

// Transaction lifecycle statuses. Send-money rows are created accepted;
// cash-in/out rows start pending and transition exactly once.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusCanceled = "canceled"
)

// MinTransferAmount is the smallest amount accepted by any money movement.
var MinTransferAmount = decimal.NewFromInt(50)

// sendMoneyFeeThreshold is the amount at which the flat send-money fee kicks in.
var sendMoneyFeeThreshold = decimal.NewFromInt(100)

// sendMoneyFlatFee is charged on send-money transfers at or above the threshold.
var sendMoneyFlatFee = decimal.NewFromInt(5)

// Cash-out fee shares, fixed at request time.
var (
	adminProfitRate = decimal.RequireFromString("0.005")
	agentProfitRate = decimal.RequireFromString("0.01")
)

var (
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrTransactionNotPending indicates an accept/cancel on a transaction
	// that already reached a terminal status.
	ErrTransactionNotPending = errors.New("transaction is not pending")
	// ErrInvalidAmount indicates a malformed or too small amount.
	ErrInvalidAmount = errors.New("amount must be a number of at least 50")
	// ErrInsufficientBalance indicates that the sender does not have enough money.
	ErrInsufficientBalance = errors.New("you don't have enough money")
	// ErrSelfTransfer indicates that the sender and receiver phone numbers match.
	ErrSelfTransfer = errors.New("cannot send money to your own number")
	// ErrReceiverNotFound indicates an unknown receiver phone number.
	ErrReceiverNotFound = errors.New("receiver not found, check the phone number again")
	// ErrAgentAccountNotFound indicates an unknown agent email.
	ErrAgentAccountNotFound = errors.New("agent not found, check the email again")
	// ErrNotAssignedAgent indicates an accept/cancel attempt by an agent the
	// transaction is not assigned to.
	ErrNotAssignedAgent = errors.New("transaction is assigned to another agent")
)

// Transaction represents one money movement attempt and its outcome.
type Transaction struct {
	ID          int64     `json:"_id"`
	Type        string    `json:"type"`
	SenderEmail string    `json:"senderEmail"`
	// ReceiverPhone is set for send-money only.
	ReceiverPhone string `json:"receiverPhoneNumber,omitempty"`
	// AgentEmail is set for cash-in and cash-out only.
	AgentEmail  string    `json:"agentEmail,omitempty"`
	Amount      string    `json:"amount"`
	Fee         string    `json:"fee,omitempty"`
	AdminProfit string    `json:"adminProfit,omitempty"`
	AgentProfit string    `json:"agentProfit,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"timestamp"`
}

// CreateTransactionParams is the input data to append to the transaction log.
type CreateTransactionParams struct {
	Type          string
	SenderEmail   string
	ReceiverPhone string
	AgentEmail    string
	Amount        string
	Fee           string
	AdminProfit   string
	AgentProfit   string
	Status        string
}

// SendMoneyFee returns the flat fee for a send-money transfer:
// 5 for amounts of 100 or more, otherwise 0.
func SendMoneyFee(amount decimal.Decimal) decimal.Decimal {
	if amount.GreaterThanOrEqual(sendMoneyFeeThreshold) {
		return sendMoneyFlatFee
	}

	return decimal.Zero
}

// CashOutProfits returns the admin (0.5%) and agent (1%) fee shares
// for a cash-out of the given amount.
func CashOutProfits(amount decimal.Decimal) (adminProfit, agentProfit decimal.Decimal) {
	return amount.Mul(adminProfitRate), amount.Mul(agentProfitRate)
}
