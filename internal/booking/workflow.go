// Package booking drives the checkout flow for one room: edit the draft,
// validate it, show the summary, confirm, submit. One Workflow per draft;
// a failed submission is terminal and the user starts over with a new one.
package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lakeside/hotel-client/internal/domain"
	"github.com/lakeside/hotel-client/internal/notify"
	"github.com/lakeside/hotel-client/internal/pricing"
	"github.com/lakeside/hotel-client/internal/utils"
	"github.com/lakeside/hotel-client/pkg/logger"
)

type State string

const (
	StateEditing    State = "editing"
	StateValidated  State = "validated"
	StateSummarized State = "summarized"
	StateConfirming State = "confirming"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
)

var (
	ErrSubmissionInFlight = errors.New("booking submission already in flight")
	ErrNotEditable        = errors.New("draft is no longer editable")
	ErrNotConfirmable     = errors.New("no summarized draft to confirm")
)

// Gateway is the slice of the remote API the workflow needs.
type Gateway interface {
	SubmitBooking(ctx context.Context, roomID int64, draft domain.BookingDraft, total domain.Money) (string, error)
}

type Workflow struct {
	gw       Gateway
	notifier notify.Notifier

	state        State
	draft        domain.BookingDraft
	summary      *domain.BookingSummary
	confirmation string
	failure      error
}

// NewWorkflow opens a checkout flow for the given room. guestEmail prefills
// the draft (the signed-in user's address). The idempotency key is fixed
// here for the draft's whole lifetime.
func NewWorkflow(room domain.Room, guestEmail string, gw Gateway, notifier notify.Notifier) *Workflow {
	return &Workflow{
		gw:       gw,
		notifier: notifier,
		state:    StateEditing,
		draft: domain.BookingDraft{
			Room:           room,
			GuestEmail:     utils.NormalizeEmail(guestEmail),
			IdempotencyKey: uuid.NewString(),
		},
	}
}

// SetRange sets the lodging period. Allowed while editing; a summarized flow
// rolls back to editing and drops its summary.
func (w *Workflow) SetRange(r domain.DateRange) error {
	if err := w.rollbackToEditing(); err != nil {
		return err
	}
	w.draft.Range = r
	return nil
}

// SetDates is SetRange for the form's YYYY-MM-DD strings.
func (w *Workflow) SetDates(checkIn, checkOut string) error {
	r, err := domain.ParseDateRange(checkIn, checkOut)
	if err != nil {
		return err
	}
	return w.SetRange(r)
}

// SetGuests sets the party size. Negative inputs clamp to zero, matching the
// form's lower bounds; validation still rejects a party without an adult.
func (w *Workflow) SetGuests(adults, children int) error {
	if err := w.rollbackToEditing(); err != nil {
		return err
	}
	if adults < 0 {
		adults = 0
	}
	if children < 0 {
		children = 0
	}
	w.draft.Guests = domain.GuestCount{Adults: adults, Children: children}
	return nil
}

func (w *Workflow) SetGuestName(name string) error {
	if err := w.rollbackToEditing(); err != nil {
		return err
	}
	w.draft.GuestFullName = utils.NormalizeString(name)
	return nil
}

func (w *Workflow) SetGuestEmail(email string) error {
	if err := w.rollbackToEditing(); err != nil {
		return err
	}
	w.draft.GuestEmail = utils.NormalizeEmail(email)
	return nil
}

// Validate checks the draft. On failure the flow stays in editing and the
// specific validation error is returned. On success the flow moves through
// validated to summarized and the fresh summary is returned.
func (w *Workflow) Validate() (*domain.BookingSummary, error) {
	if err := w.rollbackToEditing(); err != nil {
		return nil, err
	}

	if err := w.validateDraft(); err != nil {
		notify.Error(w.notifier, err.Error())
		return nil, err
	}

	w.state = StateValidated

	s := pricing.Summarize(w.draft)
	w.summary = &s
	w.state = StateSummarized
	return w.summary, nil
}

// Confirm submits the summarized draft. Nights and total are re-checked
// first; the draft may have gone stale between summary and confirmation.
// Success yields the server's confirmation code unchanged and the flow ends
// in completed; any gateway error ends it in failed. Neither outcome retries.
func (w *Workflow) Confirm(ctx context.Context) (string, error) {
	switch w.state {
	case StateSummarized:
	case StateConfirming:
		return "", ErrSubmissionInFlight
	default:
		return "", ErrNotConfirmable
	}

	s := pricing.Summarize(w.draft)
	if s.Nights <= 0 {
		w.state = StateEditing
		w.summary = nil
		return "", domain.ErrInvalidRange
	}
	if s.Total <= 0 {
		w.state = StateEditing
		w.summary = nil
		return "", domain.ErrZeroTotal
	}
	w.summary = &s
	w.state = StateConfirming

	logger.InfoContext(ctx, "submitting booking",
		"room_id", w.draft.Room.ID,
		"nights", s.Nights,
		"total", s.Total.String(),
		"idempotency_key", w.draft.IdempotencyKey,
	)

	code, err := w.gw.SubmitBooking(ctx, w.draft.Room.ID, w.draft, s.Total)
	if err != nil {
		w.state = StateFailed
		w.failure = err
		notify.Error(w.notifier, userMessage(err))
		return "", err
	}

	w.state = StateCompleted
	w.confirmation = code
	notify.Success(w.notifier, fmt.Sprintf("Room booked! Your confirmation code is: %s", code))
	return code, nil
}

func (w *Workflow) State() State {
	return w.state
}

// Draft returns a copy of the current draft.
func (w *Workflow) Draft() domain.BookingDraft {
	return w.draft
}

// Summary returns the current summary, nil unless the flow is summarized or
// beyond.
func (w *Workflow) Summary() *domain.BookingSummary {
	return w.summary
}

// ConfirmationCode returns the server-issued code, "" unless completed.
func (w *Workflow) ConfirmationCode() string {
	return w.confirmation
}

// Err returns the failure that ended the flow, nil unless failed.
func (w *Workflow) Err() error {
	return w.failure
}

func (w *Workflow) validateDraft() error {
	if err := pricing.ValidateRange(w.draft.Range); err != nil {
		return err
	}
	if err := pricing.ValidateGuestCount(w.draft.Guests); err != nil {
		return err
	}
	if w.draft.GuestFullName == "" {
		return domain.ErrNameRequired
	}
	if !utils.IsValidEmail(w.draft.GuestEmail) {
		return domain.ErrInvalidEmail
	}
	return nil
}

func (w *Workflow) rollbackToEditing() error {
	switch w.state {
	case StateEditing:
	case StateValidated, StateSummarized:
		w.state = StateEditing
		w.summary = nil
	default:
		return ErrNotEditable
	}
	return nil
}

// userMessage maps a submission error to what the user should see: server
// messages verbatim, transport failures as a generic retry suggestion.
func userMessage(err error) string {
	var appErr *domain.ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Error()
	}
	var transportErr *domain.TransportError
	if errors.As(err, &transportErr) {
		return "Booking failed: could not reach the server, please try again"
	}
	return err.Error()
}
