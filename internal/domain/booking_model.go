package domain

import "time"

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// DateRange is a lodging period. Dates are calendar days; both ends are
// normalized to midnight UTC so night arithmetic stays whole-day exact.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func NewDateRange(checkIn, checkOut time.Time) DateRange {
	return DateRange{
		CheckIn:  normalizeDate(checkIn),
		CheckOut: normalizeDate(checkOut),
	}
}

// ParseDateRange builds a range from two YYYY-MM-DD strings.
func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return DateRange{}, ErrInvalidRange
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return DateRange{}, ErrInvalidRange
	}
	return NewDateRange(in, out), nil
}

func normalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// GuestCount splits the party into adults and children. Values below zero
// are never stored; parsing clamps at the form boundary.
type GuestCount struct {
	Adults   int `json:"numOfAdults"`
	Children int `json:"numOfChildren"`
}

func (g GuestCount) Total() int {
	return g.Adults + g.Children
}

// BookingDraft is the mutable checkout form: the room being booked, the
// lodging period, the party, and the guest identity fields. The idempotency
// key is assigned once when the draft is created and rides along on the
// eventual submission.
type BookingDraft struct {
	Room           Room
	Range          DateRange
	Guests         GuestCount
	GuestFullName  string
	GuestEmail     string
	IdempotencyKey string
}

// BookingSummary is a read-only projection of a validated draft.
// Total is always Nights * PricePerNight.
type BookingSummary struct {
	Nights        int
	PricePerNight Money
	Total         Money
	Draft         BookingDraft
}

// Booking is a server-confirmed reservation. The confirmation code is issued
// by the backend and never fabricated locally.
type Booking struct {
	ID               int64
	ConfirmationCode string
	Room             Room
	Range            DateRange
	GuestFullName    string
	GuestEmail       string
	Guests           GuestCount
}
