package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"autoloco/internal/repository"
	"autoloco/internal/status"
)

type bookingBreakdowns interface {
	StatusBreakdown(ctx context.Context) ([]repository.RawStatusCount, error)
	PaymentStatusBreakdown(ctx context.Context) ([]repository.RawStatusCount, error)
}

type transactionBreakdowns interface {
	StatusBreakdown(ctx context.Context) ([]repository.RawStatusCount, error)
}

const (
	sourceBookingStatus  = "booking.status"
	sourceBookingPayment = "booking.payment_status"
	sourceTransaction    = "transaction.status"

	byDates   = "(dates)"
	notApplic = "-"

	noteNegated = "negated, counted as paid"
)

// negationHints are forms that read as unpaid but contain a paid keyword.
var negationHints = []string{"unpaid", "impay", "non pay", "not paid", "echec", "fail", "refus"}

type auditRow struct {
	Source  string
	Raw     string
	Count   int64
	Admin   string
	Renter  string
	Payment string
	Matched bool
	Note    string
}

func collect(ctx context.Context, bookings bookingBreakdowns, txs transactionBreakdowns) ([]auditRow, error) {
	statuses, err := bookings.StatusBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := bookings.PaymentStatusBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	txStatuses, err := txs.StatusBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]auditRow, 0, len(statuses)+len(payments)+len(txStatuses))
	for _, rc := range statuses {
		raw := status.Deref(rc.Raw)
		admin := status.Explain(status.AdminProfile, raw)
		renter := status.Explain(status.RenterProfile, raw)
		out = append(out, auditRow{
			Source:  sourceBookingStatus,
			Raw:     raw,
			Count:   rc.Count,
			Admin:   describe(admin),
			Renter:  describe(renter),
			Payment: notApplic,
			Matched: admin.Matched || renter.Matched,
		})
	}
	for _, rc := range payments {
		out = append(out, paymentRow(sourceBookingPayment, rc))
	}
	for _, rc := range txStatuses {
		out = append(out, paymentRow(sourceTransaction, rc))
	}
	return out, nil
}

func paymentRow(source string, rc repository.RawStatusCount) auditRow {
	raw := status.Deref(rc.Raw)
	p, matched := status.ExplainPayment(raw)
	row := auditRow{
		Source:  source,
		Raw:     raw,
		Count:   rc.Count,
		Admin:   notApplic,
		Renter:  notApplic,
		Payment: string(p),
		Matched: matched,
	}
	if p == status.PaymentPaid && looksNegated(raw) {
		row.Note = noteNegated
	}
	return row
}

func looksNegated(raw string) bool {
	s := status.Normalize(raw)
	for _, h := range negationHints {
		if strings.Contains(s, h) {
			return true
		}
	}
	return false
}

func describe(m status.Match) string {
	switch {
	case m.Matched && m.ByDate:
		return byDates
	case m.Matched:
		return string(m.Status)
	default:
		return byDates + " unmatched"
	}
}

// needsReview keeps rows no keyword recognizes and negated payment text.
func needsReview(rows []auditRow) []auditRow {
	out := rows[:0:0]
	for _, r := range rows {
		if !r.Matched || r.Note != "" {
			out = append(out, r)
		}
	}
	return out
}

func write(w io.Writer, rows []auditRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tRAW\tCOUNT\tADMIN\tRENTER\tPAYMENT\tNOTE")
	for _, r := range rows {
		raw := strconv.Quote(r.Raw)
		if r.Raw == "" {
			raw = "<empty>"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n", r.Source, raw, r.Count, r.Admin, r.Renter, r.Payment, r.Note)
	}
	return tw.Flush()
}
