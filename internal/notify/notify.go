// Package notify carries user-facing outcome messages out of the order
// lifecycle. Each completed operation emits exactly one message; the content
// is informative only and never parsed by other components.
package notify

import "log"

// Notifier receives one message per completed operation.
type Notifier interface {
	Notify(message string)
}

// Func adapts a plain function to the Notifier interface.
type Func func(message string)

func (f Func) Notify(message string) {
	f(message)
}

// NewLog returns a Notifier that writes messages through the given logger.
func NewLog(logger *log.Logger) Notifier {
	return Func(func(message string) {
		logger.Printf("notify: %s", message)
	})
}

// Nop discards all messages.
func Nop() Notifier {
	return Func(func(string) {})
}
