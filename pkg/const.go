package pkg

const (
	HeaderTraceId string = "X-Trace-Id"
)

const (
	TraceId string = "trace_id"
	UserId  string = "user_id"
)

// TransactionType is the kind of a ledger transaction record.
type TransactionType string

const (
	TransactionDeposit     TransactionType = "deposit"
	TransactionWithdrawal  TransactionType = "withdrawal"
	TransactionTransfer    TransactionType = "transfer"
	TransactionBillPayment TransactionType = "bill_payment"
)

// Valid reports whether t is one of the caller-creatable kinds.
// bill_payment records are only created by the bill payment flow.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionDeposit, TransactionWithdrawal, TransactionTransfer:
		return true
	}
	return false
}

type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
	BillStatusOverdue BillStatus = "overdue"
)

type BillType string

const (
	BillTypeElectricity BillType = "electricity"
	BillTypeWater       BillType = "water"
	BillTypeInternet    BillType = "internet"
	BillTypePhone       BillType = "phone"
	BillTypeGas         BillType = "gas"
	BillTypeOther       BillType = "other"
)

func (b BillType) Valid() bool {
	switch b {
	case BillTypeElectricity, BillTypeWater, BillTypeInternet, BillTypePhone, BillTypeGas, BillTypeOther:
		return true
	}
	return false
}
