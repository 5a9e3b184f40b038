package checkout

import (
	"errors"
	"testing"
)

func validCard() PaymentRequest {
	return PaymentRequest{
		Method: MethodCard,
		Card: CardDetails{
			Number: "4111 1111 1111 1111",
			Name:   "Jane Traveler",
			Expiry: "12/27",
			CVV:    "123",
		},
	}
}

func TestValidate_CardAccepted(t *testing.T) {
	if err := validCard().Validate(); err != nil {
		t.Fatalf("valid card rejected: %v", err)
	}
}

func TestValidate_CardRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*PaymentRequest)
	}{
		{"empty cvv", func(r *PaymentRequest) { r.Card.CVV = "" }},
		{"short cvv", func(r *PaymentRequest) { r.Card.CVV = "12" }},
		{"letters in number", func(r *PaymentRequest) { r.Card.Number = "4111 abcd 1111 1111" }},
		{"short number", func(r *PaymentRequest) { r.Card.Number = "4111 1111" }},
		{"missing name", func(r *PaymentRequest) { r.Card.Name = "  " }},
		{"bad expiry", func(r *PaymentRequest) { r.Card.Expiry = "1227" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCard()
			tc.mutate(&req)
			err := req.Validate()
			if err == nil {
				t.Fatalf("expected rejection")
			}
			var invalid *InvalidPaymentError
			if !errors.As(err, &invalid) || len(invalid.Reasons) == 0 {
				t.Fatalf("expected InvalidPaymentError with reasons, got %v", err)
			}
		})
	}
}

func TestValidate_UPI(t *testing.T) {
	req := PaymentRequest{Method: MethodUPI, UPIID: "jane@okicici"}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid upi rejected: %v", err)
	}
	req.UPIID = "jane.okicici"
	if err := req.Validate(); err == nil {
		t.Fatalf("upi id without separator accepted")
	}
}

func TestValidate_NetBanking(t *testing.T) {
	req := PaymentRequest{Method: MethodNetBanking, BankID: "hdfc"}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid bank rejected: %v", err)
	}
	req.BankID = "offshore"
	if err := req.Validate(); err == nil {
		t.Fatalf("unknown bank accepted")
	}
	req.BankID = ""
	if err := req.Validate(); err == nil {
		t.Fatalf("missing bank accepted")
	}
}

func TestValidate_UnknownMethod(t *testing.T) {
	req := PaymentRequest{Method: "cheque"}
	if err := req.Validate(); err == nil {
		t.Fatalf("unknown method accepted")
	}
}

func TestLabel(t *testing.T) {
	if got := validCard().Label(); got != "Credit/Debit Card" {
		t.Fatalf("card label = %q", got)
	}
	if got := (PaymentRequest{Method: MethodUPI, UPIID: "a@b"}).Label(); got != "UPI" {
		t.Fatalf("upi label = %q", got)
	}
	got := (PaymentRequest{Method: MethodNetBanking, BankID: "sbi"}).Label()
	if got != "Net Banking - State Bank of India" {
		t.Fatalf("netbanking label = %q", got)
	}
}
