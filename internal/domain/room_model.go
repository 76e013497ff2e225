package domain

// Room as served by the backend. Photo is the raw image; the backend ships
// it base64-encoded, which encoding/json maps to []byte natively.
type Room struct {
	ID            int64  `json:"id"`
	RoomType      string `json:"roomType"`
	PricePerNight Money  `json:"roomPrice"`
	Photo         []byte `json:"photo,omitempty"`
	Booked        bool   `json:"booked,omitempty"`
}
