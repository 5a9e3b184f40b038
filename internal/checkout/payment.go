package checkout

import (
	"fmt"
	"strings"
)

// Method selects one of the fixed payment-method variants.
type Method string

const (
	MethodCard       Method = "card"
	MethodUPI        Method = "upi"
	MethodNetBanking Method = "netbanking"
)

// Bank is a net-banking option.
type Bank struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Banks returns the fixed list of supported net-banking banks.
func Banks() []Bank {
	out := make([]Bank, len(banks))
	copy(out, banks)
	return out
}

var banks = []Bank{
	{ID: "sbi", Name: "State Bank of India"},
	{ID: "hdfc", Name: "HDFC Bank"},
	{ID: "icici", Name: "ICICI Bank"},
	{ID: "axis", Name: "Axis Bank"},
	{ID: "kotak", Name: "Kotak Mahindra Bank"},
	{ID: "pnb", Name: "Punjab National Bank"},
}

// CardDetails are the fields required for a card payment.
type CardDetails struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// PaymentRequest is one payment submission. Only the fields of the selected
// method are considered.
type PaymentRequest struct {
	Method Method      `json:"method"`
	Card   CardDetails `json:"card"`
	UPIID  string      `json:"upiId"`
	BankID string      `json:"bankId"`
}

// InvalidPaymentError reports why a payment submission was rejected before
// processing started. It is a guard result, not a fault.
type InvalidPaymentError struct {
	Reasons []string
}

func (e *InvalidPaymentError) Error() string {
	return fmt.Sprintf("invalid payment: %s", strings.Join(e.Reasons, "; "))
}

// Validate checks the request's required fields for the selected method. A
// non-nil result is always an *InvalidPaymentError.
func (r PaymentRequest) Validate() error {
	var reasons []string
	switch r.Method {
	case MethodCard:
		digits := strings.ReplaceAll(strings.TrimSpace(r.Card.Number), " ", "")
		if n := len(digits); n < 13 || n > 19 || !allDigits(digits) {
			reasons = append(reasons, "card number must be 13-19 digits")
		}
		if strings.TrimSpace(r.Card.Name) == "" {
			reasons = append(reasons, "name on card required")
		}
		if !validExpiry(r.Card.Expiry) {
			reasons = append(reasons, "expiry must be MM/YY")
		}
		if n := len(r.Card.CVV); n < 3 || n > 4 || !allDigits(r.Card.CVV) {
			reasons = append(reasons, "cvv must be 3-4 digits")
		}
	case MethodUPI:
		if !strings.Contains(r.UPIID, "@") {
			reasons = append(reasons, "upi id must contain @")
		}
	case MethodNetBanking:
		if bankName(r.BankID) == "" {
			reasons = append(reasons, "select a supported bank")
		}
	default:
		reasons = append(reasons, fmt.Sprintf("unknown payment method %q", r.Method))
	}
	if len(reasons) > 0 {
		return &InvalidPaymentError{Reasons: reasons}
	}
	return nil
}

// Label returns the finalized payment-method label recorded on the booking.
// Valid requests always have a label.
func (r PaymentRequest) Label() string {
	switch r.Method {
	case MethodCard:
		return "Credit/Debit Card"
	case MethodUPI:
		return "UPI"
	case MethodNetBanking:
		return "Net Banking - " + bankName(r.BankID)
	}
	return string(r.Method)
}

func bankName(id string) string {
	for _, b := range banks {
		if b.ID == id {
			return b.Name
		}
	}
	return ""
}

func validExpiry(expiry string) bool {
	if len(expiry) != 5 || expiry[2] != '/' {
		return false
	}
	return allDigits(expiry[:2]) && allDigits(expiry[3:])
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
