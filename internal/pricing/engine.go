// Package pricing computes nights and totals for a lodging period and
// validates the inputs. Everything here is a pure function of its arguments;
// the booking workflow and its tests rely on that.
package pricing

import "github.com/lakeside/hotel-client/internal/domain"

// ValidateRange fails with domain.ErrInvalidRange unless check-out is
// strictly after check-in.
func ValidateRange(r domain.DateRange) error {
	if !r.CheckOut.After(r.CheckIn) {
		return domain.ErrInvalidRange
	}
	return nil
}

// ValidateGuestCount fails with domain.ErrNoAdults when no adult is present
// and domain.ErrNoGuests when the party is empty.
func ValidateGuestCount(g domain.GuestCount) error {
	if g.Adults < 1 {
		return domain.ErrNoAdults
	}
	if g.Total() < 1 {
		return domain.ErrNoGuests
	}
	return nil
}

// Nights is the whole-day difference between check-out and check-in, never
// negative. Ranges are normalized to midnight UTC, so the division is exact.
func Nights(r domain.DateRange) int {
	nights := int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// Total is nights * pricePerNight, floored at zero.
func Total(nights int, pricePerNight domain.Money) domain.Money {
	if nights <= 0 {
		return 0
	}
	total := domain.Money(int64(nights)) * pricePerNight
	if total < 0 {
		return 0
	}
	return total
}

// Summarize projects a draft into its read-only summary.
func Summarize(draft domain.BookingDraft) domain.BookingSummary {
	nights := Nights(draft.Range)
	return domain.BookingSummary{
		Nights:        nights,
		PricePerNight: draft.Room.PricePerNight,
		Total:         Total(nights, draft.Room.PricePerNight),
		Draft:         draft,
	}
}
