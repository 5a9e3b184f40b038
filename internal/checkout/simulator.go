// Package checkout simulates the payment step of the order lifecycle. The
// simulator is a three-state machine (idle, processing, succeeded): it
// rejects incomplete payment details before any state transition, holds a
// fixed artificial latency instead of doing real gateway I/O, and commits
// the reservation to the ledger on success. Payments never fail after
// validation; that matches the modeled storefront behavior.
package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"cruisebook/internal/domain"
	"cruisebook/internal/notify"
)

// State is the simulator's lifecycle state.
type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
	StateSucceeded  State = "succeeded"
)

// ErrPaymentInFlight rejects a submission or close while another payment is
// still processing.
var ErrPaymentInFlight = errors.New("payment already processing")

type committer interface {
	Commit(ctx context.Context, res domain.Reservation, paymentMethod string) domain.Booking
}

type cartClearer interface {
	Clear()
}

// Simulator runs simulated payments. One submission may be in flight at a
// time.
type Simulator struct {
	mu       sync.Mutex
	state    State
	latency  time.Duration
	ledger   committer
	cart     cartClearer
	notifier notify.Notifier
}

// New builds a Simulator that commits successful payments to ledger and
// clears the cart afterwards.
func New(latency time.Duration, ledger committer, cart cartClearer, notifier notify.Notifier) *Simulator {
	if notifier == nil {
		notifier = notify.Nop()
	}
	return &Simulator{
		state:    StateIdle,
		latency:  latency,
		ledger:   ledger,
		cart:     cart,
		notifier: notifier,
	}
}

// State returns the current lifecycle state.
func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close resets the simulator to idle, as when the checkout surface is
// dismissed. Closing is suppressed while a payment is processing.
func (s *Simulator) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateProcessing {
		return ErrPaymentInFlight
	}
	s.state = StateIdle
	return nil
}

// Submit runs one payment for the reservation. Incomplete payment details
// are rejected before the machine leaves idle. On valid input the simulator
// processes for the configured latency, commits a confirmed booking, clears
// the cart, and emits one success notification.
//
// The latency wait honors ctx so a server shutdown does not strand the
// goroutine; the storefront flow itself never cancels a payment mid-flight.
func (s *Simulator) Submit(ctx context.Context, req PaymentRequest, res domain.Reservation) (domain.Booking, error) {
	if err := req.Validate(); err != nil {
		return domain.Booking{}, err
	}

	s.mu.Lock()
	if s.state == StateProcessing {
		s.mu.Unlock()
		return domain.Booking{}, ErrPaymentInFlight
	}
	s.state = StateProcessing
	s.mu.Unlock()

	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		s.setState(StateIdle)
		return domain.Booking{}, ctx.Err()
	}

	booking := s.ledger.Commit(ctx, res, req.Label())
	s.cart.Clear()
	s.notifier.Notify("Payment successful! Booking " + booking.ReservationID + " confirmed")

	s.setState(StateSucceeded)
	return booking, nil
}

func (s *Simulator) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
