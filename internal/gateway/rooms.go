package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-querystring/query"

	"github.com/lakeside/hotel-client/internal/domain"
)

// Room fetches a single room by id.
func (c *Client) Room(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/rooms/room/%d", id), nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// Rooms fetches the full room catalog.
func (c *Client) Rooms(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	if err := c.doJSON(ctx, http.MethodGet, "/rooms/all-rooms", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// RoomTypes fetches the distinct room types offered.
func (c *Client) RoomTypes(ctx context.Context) ([]string, error) {
	var types []string
	if err := c.doJSON(ctx, http.MethodGet, "/rooms/types", nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

type availabilityQuery struct {
	CheckIn  string `url:"checkInDate"`
	CheckOut string `url:"checkOutDate"`
}

// AvailableRooms fetches rooms free for the given lodging period.
func (c *Client) AvailableRooms(ctx context.Context, r domain.DateRange) ([]domain.Room, error) {
	params, err := query.Values(availabilityQuery{
		CheckIn:  r.CheckIn.Format(domain.DateLayout),
		CheckOut: r.CheckOut.Format(domain.DateLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	var rooms []domain.Room
	if err := c.doJSON(ctx, http.MethodGet, "/rooms/available?"+params.Encode(), nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// AddRoom creates a room (admin). photo may be nil.
func (c *Client) AddRoom(ctx context.Context, roomType string, price domain.Money, photo []byte) error {
	fields := map[string]string{
		"roomType":  roomType,
		"roomPrice": price.String(),
	}
	return c.doMultipart(ctx, http.MethodPost, "/rooms/add/new-room", fields, photo, nil)
}

// UpdateRoom updates a room's type, price and optionally its photo (admin).
func (c *Client) UpdateRoom(ctx context.Context, id int64, roomType string, price domain.Money, photo []byte) (*domain.Room, error) {
	fields := map[string]string{
		"roomType":  roomType,
		"roomPrice": price.String(),
	}
	var room domain.Room
	if err := c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/rooms/update/%d", id), fields, photo, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// DeleteRoom removes a room (admin).
func (c *Client) DeleteRoom(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/rooms/delete/room/%d", id), nil, nil)
}
