package status

import "strings"

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

var (
	refundKeywords = []string{"remb", "refund"}
	paidKeywords   = []string{"pay", "paid", "succ", "reuss", "valid"}
)

// ClassifyPayment maps a raw payment or transaction status onto
// {pending, paid, refunded}: refunded, then paid, then pending. Refund
// keywords win over everything else. Negated text such as "unpaid" contains
// a paid keyword and classifies as paid; cmd/status_audit flags such values.
// When raw is absent the first non-empty fallback is classified instead.
func ClassifyPayment(raw string, fallback ...string) PaymentStatus {
	if strings.TrimSpace(raw) == "" {
		for _, f := range fallback {
			if strings.TrimSpace(f) != "" {
				return classifyPayment(f)
			}
		}
		return PaymentPending
	}
	return classifyPayment(raw)
}

func classifyPayment(raw string) PaymentStatus {
	st, _ := ExplainPayment(raw)
	return st
}

// ExplainPayment classifies raw and reports whether a keyword matched.
// Unmatched text is pending.
func ExplainPayment(raw string) (PaymentStatus, bool) {
	s := Normalize(raw)
	switch {
	case containsAny(s, refundKeywords):
		return PaymentRefunded, true
	case containsAny(s, paidKeywords):
		return PaymentPaid, true
	case containsAny(s, pendingKeywords):
		return PaymentPending, true
	default:
		return PaymentPending, false
	}
}
