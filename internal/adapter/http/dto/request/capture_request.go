package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrEmptyCaptureBody     = errors.New("request body is empty")
	ErrInvalidCaptureBody   = errors.New("request body is not valid json")
	ErrMissingCaptureAmount = errors.New("amount is required")
	ErrEmptyMPPayload       = errors.New("mp_payload cannot be empty")
)

// CaptureRequest is a card capture against an invoice.
//
// Two body shapes are accepted:
//
//	{"amount": 800, "mp_payload": {...}}
//	{"transaction_amount": 800, "payment_method_id": "visa", ...}
//
// The second form is a bare Mercado Pago payment request whose amount doubles
// as the capture amount.
type CaptureRequest struct {
	Amount    float64         `json:"amount"`
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}

func ParseCaptureRequest(raw []byte) (CaptureRequest, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return CaptureRequest{}, ErrEmptyCaptureBody
	}
	if !json.Valid(raw) {
		return CaptureRequest{}, ErrInvalidCaptureBody
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return CaptureRequest{}, ErrInvalidCaptureBody
	}

	out := CaptureRequest{MPPayload: json.RawMessage(raw)}
	if wrapped, ok := envelope["mp_payload"]; ok {
		v := strings.TrimSpace(string(wrapped))
		if v == "" || v == "null" {
			return CaptureRequest{}, ErrEmptyMPPayload
		}
		out.MPPayload = wrapped
	}

	amountRaw, ok := envelope["amount"]
	if !ok {
		amountRaw, ok = envelope["transaction_amount"]
	}
	if !ok {
		return CaptureRequest{}, ErrMissingCaptureAmount
	}
	if err := json.Unmarshal(amountRaw, &out.Amount); err != nil {
		return CaptureRequest{}, ErrMissingCaptureAmount
	}
	return out, nil
}
