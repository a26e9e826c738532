package models

import "time"

type Booking struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"userId" db:"user_id"`
	RoomID    int       `json:"roomId" db:"room_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Room      *Room     `json:"Room,omitempty" db:"-"`
}
