package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cruisebook/internal/domain"
	"cruisebook/internal/notify"
)

type stubLedger struct {
	mu       sync.Mutex
	commits  int
	lastRes  domain.Reservation
	lastWith string
}

func (s *stubLedger) Commit(_ context.Context, res domain.Reservation, paymentMethod string) domain.Booking {
	s.mu.Lock()
	s.commits++
	s.lastRes = res
	s.lastWith = paymentMethod
	s.mu.Unlock()
	return domain.Booking{Reservation: res, Status: domain.BookingConfirmed, PaymentMethod: paymentMethod}
}

type stubCart struct {
	mu     sync.Mutex
	clears int
}

func (s *stubCart) Clear() {
	s.mu.Lock()
	s.clears++
	s.mu.Unlock()
}

func testReservation() domain.Reservation {
	return domain.Reservation{
		ReservationID:    "RES-TEST1",
		CustomerID:       "CUS-TEST1",
		CruiseID:         "cruise-1",
		CruiseName:       "Caribbean Paradise",
		CruisePriceCents: 129900,
		CabinType:        "Ocean View",
		CabinPriceCents:  49900,
		TotalPriceCents:  179800,
	}
}

func TestSubmit_InvalidCardNeverLeavesIdle(t *testing.T) {
	led := &stubLedger{}
	cartStore := &stubCart{}
	sim := New(0, led, cartStore, notify.Nop())

	req := validCard()
	req.Card.CVV = ""
	_, err := sim.Submit(context.Background(), req, testReservation())

	var invalid *InvalidPaymentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidPaymentError, got %v", err)
	}
	if got := sim.State(); got != StateIdle {
		t.Fatalf("state = %q, want idle", got)
	}
	if led.commits != 0 || cartStore.clears != 0 {
		t.Fatalf("side effects on rejected payment: commits=%d clears=%d", led.commits, cartStore.clears)
	}
}

func TestSubmit_SuccessCommitsAndClearsCart(t *testing.T) {
	led := &stubLedger{}
	cartStore := &stubCart{}
	var mu sync.Mutex
	var messages []string
	sim := New(time.Millisecond, led, cartStore, notify.Func(func(msg string) {
		mu.Lock()
		messages = append(messages, msg)
		mu.Unlock()
	}))

	res := testReservation()
	booking, err := sim.Submit(context.Background(), validCard(), res)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if booking.Status != domain.BookingConfirmed {
		t.Fatalf("status = %q, want confirmed", booking.Status)
	}
	if booking.TotalPriceCents != res.TotalPriceCents {
		t.Fatalf("booking total = %d, want %d", booking.TotalPriceCents, res.TotalPriceCents)
	}
	if led.commits != 1 || led.lastWith != "Credit/Debit Card" {
		t.Fatalf("commit: n=%d label=%q", led.commits, led.lastWith)
	}
	if cartStore.clears != 1 {
		t.Fatalf("cart cleared %d times, want 1", cartStore.clears)
	}
	if got := sim.State(); got != StateSucceeded {
		t.Fatalf("state = %q, want succeeded", got)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(messages) != 1 {
		t.Fatalf("expected exactly one notification, got %v", messages)
	}
}

func TestSubmit_RejectsWhileProcessing(t *testing.T) {
	led := &stubLedger{}
	cartStore := &stubCart{}
	sim := New(50*time.Millisecond, led, cartStore, notify.Nop())

	firstDone := make(chan error, 1)
	go func() {
		_, err := sim.Submit(context.Background(), validCard(), testReservation())
		firstDone <- err
	}()

	// wait for the first submission to enter processing
	deadline := time.Now().Add(time.Second)
	for sim.State() != StateProcessing {
		if time.Now().After(deadline) {
			t.Fatalf("first submission never started processing")
		}
		time.Sleep(time.Millisecond)
	}

	_, err := sim.Submit(context.Background(), validCard(), testReservation())
	if !errors.Is(err, ErrPaymentInFlight) {
		t.Fatalf("expected ErrPaymentInFlight, got %v", err)
	}
	if err := sim.Close(); !errors.Is(err, ErrPaymentInFlight) {
		t.Fatalf("close during processing: expected ErrPaymentInFlight, got %v", err)
	}

	if err := <-firstDone; err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
	if led.commits != 1 {
		t.Fatalf("commits = %d, want 1", led.commits)
	}
}

func TestClose_ResetsAfterSuccess(t *testing.T) {
	sim := New(0, &stubLedger{}, &stubCart{}, notify.Nop())

	if _, err := sim.Submit(context.Background(), validCard(), testReservation()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got := sim.State(); got != StateSucceeded {
		t.Fatalf("state = %q, want succeeded", got)
	}
	if err := sim.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := sim.State(); got != StateIdle {
		t.Fatalf("state after close = %q, want idle", got)
	}
}

func TestSubmit_ShutdownCancelsWait(t *testing.T) {
	led := &stubLedger{}
	sim := New(time.Hour, led, &stubCart{}, notify.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := sim.Submit(ctx, validCard(), testReservation())
		done <- err
	}()

	deadline := time.Now().Add(time.Second)
	for sim.State() != StateProcessing {
		if time.Now().After(deadline) {
			t.Fatalf("submission never started processing")
		}
		time.Sleep(time.Millisecond)
	}
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if led.commits != 0 {
		t.Fatalf("cancelled payment committed")
	}
	if got := sim.State(); got != StateIdle {
		t.Fatalf("state = %q, want idle", got)
	}
}
