package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoloco/internal/repository"
)

type fakeBookings struct {
	statuses []repository.RawStatusCount
	payments []repository.RawStatusCount
	err      error
}

func (f fakeBookings) StatusBreakdown(context.Context) ([]repository.RawStatusCount, error) {
	return f.statuses, f.err
}

func (f fakeBookings) PaymentStatusBreakdown(context.Context) ([]repository.RawStatusCount, error) {
	return f.payments, nil
}

type fakeTransactions []repository.RawStatusCount

func (f fakeTransactions) StatusBreakdown(context.Context) ([]repository.RawStatusCount, error) {
	return f, nil
}

func ptr(s string) *string { return &s }

func TestCollect(t *testing.T) {
	bookings := fakeBookings{
		statuses: []repository.RawStatusCount{
			{Raw: ptr("Annulée"), Count: 4},
			{Raw: ptr("confirmée"), Count: 10},
			{Raw: nil, Count: 2},
			{Raw: ptr("bizarre"), Count: 1},
		},
		payments: []repository.RawStatusCount{{Raw: ptr("Payé"), Count: 7}},
	}
	txs := fakeTransactions{{Raw: ptr("Remboursé"), Count: 1}, {Raw: ptr("???"), Count: 3}}

	rows, err := collect(context.Background(), bookings, txs)
	require.NoError(t, err)
	require.Len(t, rows, 7)

	assert.Equal(t, auditRow{
		Source: sourceBookingStatus, Raw: "Annulée", Count: 4,
		Admin: "cancelled", Renter: "completed", Payment: notApplic, Matched: true,
	}, rows[0])
	assert.Equal(t, "confirmed", rows[1].Admin)
	assert.Equal(t, byDates, rows[1].Renter)
	assert.Equal(t, "", rows[2].Raw)
	assert.False(t, rows[2].Matched)
	assert.Equal(t, "paid", rows[4].Payment)
	assert.Equal(t, "refunded", rows[5].Payment)
	assert.False(t, rows[6].Matched)

	left := needsReview(rows)
	require.Len(t, left, 3)
	assert.Equal(t, "bizarre", left[1].Raw)
}

func TestCollect_Error(t *testing.T) {
	_, err := collect(context.Background(), fakeBookings{err: errors.New("boom")}, fakeTransactions{})
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, write(&buf, []auditRow{
		{Source: sourceBookingStatus, Raw: "", Count: 2, Admin: byDates, Renter: byDates, Payment: notApplic},
		{Source: sourceTransaction, Raw: "Payé", Count: 1, Admin: notApplic, Renter: notApplic, Payment: "paid"},
	}))

	out := buf.String()
	assert.Contains(t, out, "SOURCE")
	assert.Contains(t, out, "<empty>")
	assert.Contains(t, out, `"Payé"`)
}

func TestCollect_FlagsNegatedPayments(t *testing.T) {
	bookings := fakeBookings{payments: []repository.RawStatusCount{
		{Raw: ptr("Impayé"), Count: 5},
		{Raw: ptr("Payé"), Count: 9},
	}}
	txs := fakeTransactions{{Raw: ptr("Payment failed"), Count: 2}}

	rows, err := collect(context.Background(), bookings, txs)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "paid", rows[0].Payment)
	assert.Equal(t, noteNegated, rows[0].Note)
	assert.Empty(t, rows[1].Note)
	assert.Equal(t, noteNegated, rows[2].Note)

	review := needsReview(rows)
	require.Len(t, review, 2)
	assert.Equal(t, "Impayé", review[0].Raw)
	assert.Equal(t, "Payment failed", review[1].Raw)

	var buf bytes.Buffer
	require.NoError(t, write(&buf, review))
	assert.Contains(t, buf.String(), noteNegated)
}
