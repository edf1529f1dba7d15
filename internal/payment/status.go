package payment

// Status is the lifecycle state of a payment attempt.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
)

func (s Status) String() string {
	return string(s)
}

// Method is the selected payment method. Only card is connected; the
// others are explicit dead ends that require switching back to card.
type Method string

const (
	MethodCard       Method = "card"
	MethodUPI        Method = "upi"
	MethodNetBanking Method = "netbanking"
)

func (m Method) IsValid() bool {
	switch m {
	case MethodCard, MethodUPI, MethodNetBanking:
		return true
	}
	return false
}

func (m Method) String() string {
	return string(m)
}

// OutcomeCode classifies how a charge settled.
type OutcomeCode string

const (
	OutcomeApproved OutcomeCode = "approved"
	OutcomeDeclined OutcomeCode = "declined"
	OutcomeError    OutcomeCode = "error"
)

// Outcome is the result of a gateway charge. Declined and error
// outcomes return the machine to idle so the user can retry.
type Outcome struct {
	Code          OutcomeCode `json:"code"`
	Reason        string      `json:"reason,omitempty"`
	TransactionID string      `json:"transaction_id,omitempty"`
}

// Approved reports whether the charge settled successfully.
func (o Outcome) Approved() bool {
	return o.Code == OutcomeApproved
}
