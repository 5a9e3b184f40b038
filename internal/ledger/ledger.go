// Package ledger keeps the durable record of every booking ever committed.
// Bookings are appended confirmed, may be flipped to cancelled, and are
// never deleted. The whole ledger is serialized to one blob under a single
// storage key after every mutation and reloaded at start; the ledger is the
// only writer of that key.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"cruisebook/internal/domain"
	"cruisebook/internal/notify"
)

type blobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Ledger is the persisted booking collection.
type Ledger struct {
	mu       sync.Mutex
	bookings []domain.Booking
	store    blobStore
	key      string
	logger   *log.Logger
	notifier notify.Notifier
	subs     []func([]domain.Booking)
}

// Open loads the ledger stored under key. A missing or malformed blob
// degrades to an empty ledger; persistence problems are logged, never fatal.
func Open(ctx context.Context, store blobStore, key string, logger *log.Logger, notifier notify.Notifier) *Ledger {
	if notifier == nil {
		notifier = notify.Nop()
	}
	l := &Ledger{store: store, key: key, logger: logger, notifier: notifier}

	blob, err := store.Get(ctx, key)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// first run, nothing stored yet
	case err != nil:
		logger.Printf("ledger: read %q failed, starting empty: %v", key, err)
	default:
		if err := json.Unmarshal(blob, &l.bookings); err != nil {
			logger.Printf("ledger: stored blob %q is malformed, starting empty: %v", key, err)
			l.bookings = nil
		}
	}
	return l
}

// Subscribe registers an observer called with the full booking list after
// every mutation.
func (l *Ledger) Subscribe(fn func([]domain.Booking)) {
	l.mu.Lock()
	l.subs = append(l.subs, fn)
	l.mu.Unlock()
}

// Commit appends a confirmed booking for the reservation and persists the
// ledger. Committing always succeeds; a failed write is logged and the
// booking stays recorded in memory.
func (l *Ledger) Commit(ctx context.Context, res domain.Reservation, paymentMethod string) domain.Booking {
	booking := domain.Booking{
		Reservation:   res,
		Status:        domain.BookingConfirmed,
		PaymentMethod: paymentMethod,
	}

	l.mu.Lock()
	l.bookings = append(l.bookings, booking)
	list, subs := l.listLocked()
	l.mu.Unlock()

	l.persist(ctx)
	publish(subs, list)
	return booking
}

// Cancel flips the booking with the given reservation id to cancelled and
// persists the ledger. Unknown ids and already-cancelled bookings are
// no-ops; Cancel reports whether a status actually changed.
func (l *Ledger) Cancel(ctx context.Context, reservationID string) bool {
	l.mu.Lock()
	changed := false
	for i := range l.bookings {
		if l.bookings[i].ReservationID == reservationID && l.bookings[i].Status == domain.BookingConfirmed {
			l.bookings[i].Status = domain.BookingCancelled
			changed = true
			break
		}
	}
	if !changed {
		l.mu.Unlock()
		return false
	}
	list, subs := l.listLocked()
	l.mu.Unlock()

	l.persist(ctx)
	l.notifier.Notify("Booking " + reservationID + " cancelled")
	publish(subs, list)
	return true
}

// List returns every booking in insertion order, cancelled ones included.
func (l *Ledger) List() []domain.Booking {
	l.mu.Lock()
	list, _ := l.listLocked()
	l.mu.Unlock()
	return list
}

func (l *Ledger) listLocked() ([]domain.Booking, []func([]domain.Booking)) {
	list := make([]domain.Booking, len(l.bookings))
	copy(list, l.bookings)
	subs := make([]func([]domain.Booking), len(l.subs))
	copy(subs, l.subs)
	return list, subs
}

func (l *Ledger) persist(ctx context.Context) {
	l.mu.Lock()
	blob, err := json.Marshal(l.bookings)
	l.mu.Unlock()
	if err != nil {
		l.logger.Printf("ledger: marshal failed: %v", err)
		return
	}
	if err := l.store.Set(ctx, l.key, blob); err != nil {
		l.logger.Printf("ledger: write %q failed: %v", l.key, err)
	}
}

func publish(subs []func([]domain.Booking), list []domain.Booking) {
	for _, fn := range subs {
		fn(list)
	}
}
