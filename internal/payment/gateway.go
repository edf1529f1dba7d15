package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gateway is the external charge collaborator. A production
// implementation talks to a payment network; the simulated one settles
// after a fixed delay and always approves.
type Gateway interface {
	Charge(ctx context.Context, method Method, fields CardFields) (*Outcome, error)
}

type simulatedGateway struct {
	settleDelay time.Duration
}

// NewSimulatedGateway creates a gateway that approves every charge
// after settleDelay. It honors context cancellation mid-settle.
func NewSimulatedGateway(settleDelay time.Duration) Gateway {
	return &simulatedGateway{settleDelay: settleDelay}
}

func (g *simulatedGateway) Charge(ctx context.Context, method Method, fields CardFields) (*Outcome, error) {
	timer := time.NewTimer(g.settleDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return &Outcome{
		Code:          OutcomeApproved,
		TransactionID: generateTransactionID(),
	}, nil
}

// generateTransactionID generates a mock transaction ID
func generateTransactionID() string {
	timestamp := time.Now().Unix()
	shortUUID := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("TXN_%d_%s", timestamp, strings.ToUpper(shortUUID))
}
