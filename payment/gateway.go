// Package payment abstracts the external payment provider so the booking
// flow never assumes authorization succeeds. The real gateway is out of
// scope; the simulated one reproduces its timing and failure modes.
package payment

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrDeclined reports that the provider rejected the charge. Anything else
// returned from Authorize is a transport-level failure.
var ErrDeclined = errors.New("payment declined")

type Authorization struct {
	TransactionID string    `json:"transactionId"`
	Amount        float64   `json:"amount"`
	AuthorizedAt  time.Time `json:"authorizedAt"`
}

type Gateway interface {
	Authorize(ctx context.Context, amount float64) (*Authorization, error)
}

// SimulatedGateway stands in for Razorpay: it waits a fixed delay, then
// either declines (per DeclineRate) or issues a pay_-prefixed transaction id.
// The delay is context-cancellable so an abandoned booking does not hold the
// request open.
type SimulatedGateway struct {
	Delay       time.Duration
	DeclineRate float64 // 0 never declines, 1 always declines

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulatedGateway(delay time.Duration, declineRate float64) *SimulatedGateway {
	return &SimulatedGateway{
		Delay:       delay,
		DeclineRate: declineRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *SimulatedGateway) Authorize(ctx context.Context, amount float64) (*Authorization, error) {
	if amount <= 0 {
		return nil, ErrDeclined
	}

	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if g.declined() {
		return nil, ErrDeclined
	}

	return &Authorization{
		TransactionID: "pay_" + uuid.NewString(),
		Amount:        amount,
		AuthorizedAt:  time.Now(),
	}, nil
}

func (g *SimulatedGateway) declined() bool {
	if g.DeclineRate <= 0 {
		return false
	}
	if g.DeclineRate >= 1 {
		return true
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64() < g.DeclineRate
}
