package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/lakeside/hotel-client/internal/domain"
)

type bookedRoomPayload struct {
	GuestFullName string `json:"guestFullName"`
	GuestEmail    string `json:"guestEmail"`
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
	NumOfAdults   int    `json:"numOfAdults"`
	NumOfChildren int    `json:"numOfChildren"`
}

type submitBookingPayload struct {
	BookedRoom  bookedRoomPayload `json:"bookedRoom"`
	TotalAmount domain.Money      `json:"totalAmount"`
}

// SubmitBooking submits the draft and returns the server-issued confirmation
// code verbatim. The draft's idempotency key rides along so the backend can
// collapse an accidental duplicate submission onto the original booking.
func (c *Client) SubmitBooking(ctx context.Context, roomID int64, draft domain.BookingDraft, total domain.Money) (string, error) {
	payload := submitBookingPayload{
		BookedRoom: bookedRoomPayload{
			GuestFullName: draft.GuestFullName,
			GuestEmail:    draft.GuestEmail,
			CheckInDate:   draft.Range.CheckIn.Format(domain.DateLayout),
			CheckOutDate:  draft.Range.CheckOut.Format(domain.DateLayout),
			NumOfAdults:   draft.Guests.Adults,
			NumOfChildren: draft.Guests.Children,
		},
		TotalAmount: total,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode booking: %w", err)
	}

	path := fmt.Sprintf("/bookings/room/%d/booking", roomID)
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if draft.IdempotencyKey != "" {
		req.Header.Set("Idempotency-Key", draft.IdempotencyKey)
	}

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	// The backend answers with the bare confirmation code, either as plain
	// text or as a JSON string.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	code := strings.TrimSpace(string(body))
	var quoted string
	if json.Unmarshal(body, &quoted) == nil {
		code = quoted
	}
	if code == "" {
		return "", fmt.Errorf("backend returned no confirmation code")
	}
	return code, nil
}

type bookingDTO struct {
	ID               int64       `json:"id"`
	ConfirmationCode string      `json:"bookingConfirmationCode"`
	Room             domain.Room `json:"room"`
	CheckInDate      string      `json:"checkInDate"`
	CheckOutDate     string      `json:"checkOutDate"`
	GuestFullName    string      `json:"guestFullName"`
	GuestName        string      `json:"guestName"`
	GuestEmail       string      `json:"guestEmail"`
	NumOfAdults      int         `json:"numOfAdults"`
	NumOfChildren    int         `json:"numOfChildren"`
}

func (d bookingDTO) toDomain() domain.Booking {
	name := d.GuestFullName
	if name == "" {
		name = d.GuestName
	}
	rng, err := domain.ParseDateRange(d.CheckInDate, d.CheckOutDate)
	if err != nil {
		rng = domain.DateRange{}
	}
	return domain.Booking{
		ID:               d.ID,
		ConfirmationCode: d.ConfirmationCode,
		Room:             d.Room,
		Range:            rng,
		GuestFullName:    name,
		GuestEmail:       d.GuestEmail,
		Guests: domain.GuestCount{
			Adults:   d.NumOfAdults,
			Children: d.NumOfChildren,
		},
	}
}

// BookingByCode looks a booking up by its confirmation code.
func (c *Client) BookingByCode(ctx context.Context, code string) (*domain.Booking, error) {
	var dto bookingDTO
	path := "/bookings/confirmation/" + url.PathEscape(code)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, err
	}
	booking := dto.toDomain()
	return &booking, nil
}

// Bookings lists every booking (admin).
func (c *Client) Bookings(ctx context.Context) ([]domain.Booking, error) {
	var dtos []bookingDTO
	if err := c.doJSON(ctx, http.MethodGet, "/bookings/all-bookings", nil, &dtos); err != nil {
		return nil, err
	}
	return toBookings(dtos), nil
}

// BookingsByUser lists the bookings made by one user.
func (c *Client) BookingsByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var dtos []bookingDTO
	path := fmt.Sprintf("/bookings/user/%d/bookings", userID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	return toBookings(dtos), nil
}

// CancelBooking deletes a booking by id.
func (c *Client) CancelBooking(ctx context.Context, bookingID int64) error {
	path := fmt.Sprintf("/bookings/booking/%d/delete", bookingID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

func toBookings(dtos []bookingDTO) []domain.Booking {
	bookings := make([]domain.Booking, len(dtos))
	for i, d := range dtos {
		bookings[i] = d.toDomain()
	}
	return bookings
}
