package status

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
	BookingDispute    BookingStatus = "dispute"

	// renter-facing states
	BookingActive   BookingStatus = "active"
	BookingUpcoming BookingStatus = "upcoming"
)

// DateRange is the rental period of a booking. Start <= End is expected but
// not required.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Rule maps a keyword group onto a status. A rule with ByDate set matches
// like any other rule but resolves through the profile's date fallback.
type Rule struct {
	Keywords []string
	Status   BookingStatus
	ByDate   bool
}

// DateFallback picks a status from the position of now relative to a range.
type DateFallback struct {
	Before BookingStatus
	During BookingStatus
	After  BookingStatus
}

func (f DateFallback) Resolve(rng DateRange, now time.Time) BookingStatus {
	switch {
	case now.Before(rng.Start):
		return f.Before
	case !now.After(rng.End):
		return f.During
	default:
		return f.After
	}
}

// ViewProfile is the ordered keyword table and fallback used by one family
// of views. Rules are evaluated in order, first match wins.
type ViewProfile struct {
	Name     string
	Rules    []Rule
	Fallback DateFallback
	// States lists the closed set the profile can produce, in display order.
	States []BookingStatus
}

var (
	disputeKeywords   = []string{"litig", "disput"}
	cancelKeywords    = []string{"annul", "cancel"}
	refusedKeywords   = []string{"refus", "reject"}
	pendingKeywords   = []string{"attente", "pending"}
	confirmedKeywords = []string{"confirm", "valid", "accept"}
	ongoingKeywords   = []string{"encours", "en cours", "en_cours"}
	finishedKeywords  = []string{"termin"}
)

// AdminProfile is used by admin and owner views:
// dispute -> cancelled -> pending -> confirmed -> dates.
var AdminProfile = ViewProfile{
	Name: "admin",
	Rules: []Rule{
		{Keywords: disputeKeywords, Status: BookingDispute},
		{Keywords: cancelKeywords, Status: BookingCancelled},
		{Keywords: pendingKeywords, Status: BookingPending},
		{Keywords: confirmedKeywords, Status: BookingConfirmed},
	},
	Fallback: DateFallback{
		Before: BookingConfirmed,
		During: BookingInProgress,
		After:  BookingCompleted,
	},
	States: []BookingStatus{
		BookingPending,
		BookingConfirmed,
		BookingInProgress,
		BookingCompleted,
		BookingCancelled,
		BookingDispute,
	},
}

// RenterProfile is used by renter views. Cancelled and refused bookings are
// shown as completed; pending ones as upcoming.
var RenterProfile = ViewProfile{
	Name: "renter",
	Rules: []Rule{
		{Keywords: append(append([]string{}, cancelKeywords...), refusedKeywords...), Status: BookingCompleted},
		{Keywords: pendingKeywords, Status: BookingUpcoming},
		{Keywords: append(append([]string{}, confirmedKeywords...), ongoingKeywords...), ByDate: true},
		{Keywords: finishedKeywords, Status: BookingCompleted},
	},
	Fallback: DateFallback{
		Before: BookingUpcoming,
		During: BookingActive,
		After:  BookingCompleted,
	},
	States: []BookingStatus{
		BookingActive,
		BookingUpcoming,
		BookingCompleted,
	},
}

// Match is the outcome of looking a raw status up in a profile's rules.
type Match struct {
	Status  BookingStatus
	Matched bool
	// ByDate is set when the status depends on the booking dates, either
	// because the matched rule defers to them or because nothing matched.
	ByDate bool
}

// Explain reports which rule of p handles raw, without looking at dates.
func Explain(p ViewProfile, raw string) Match {
	s := Normalize(raw)
	if s == "" {
		return Match{ByDate: true}
	}
	for _, r := range p.Rules {
		if !containsAny(s, r.Keywords) {
			continue
		}
		return Match{Status: r.Status, Matched: true, ByDate: r.ByDate}
	}
	return Match{ByDate: true}
}

// ClassifyBooking maps raw status text onto the profile's closed set.
// Empty or unrecognized text resolves by dates. It never fails.
func ClassifyBooking(p ViewProfile, raw string, rng DateRange, now time.Time) BookingStatus {
	m := Explain(p, raw)
	if m.ByDate {
		return p.Fallback.Resolve(rng, now)
	}
	return m.Status
}

// Has reports whether st belongs to the profile's closed set.
func (p ViewProfile) Has(st BookingStatus) bool {
	for _, s := range p.States {
		if s == st {
			return true
		}
	}
	return false
}
