package models

import "time"

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type Ticket struct {
	ID           int          `json:"id" db:"id"`
	EnrollmentID int          `json:"enrollmentId" db:"enrollment_id"`
	TicketTypeID int          `json:"ticketTypeId" db:"ticket_type_id"`
	Status       TicketStatus `json:"status" db:"status"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`
	TicketType   TicketType   `json:"TicketType" db:"-"`
}

type TicketType struct {
	ID            int    `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	Price         int    `json:"price" db:"price"`
	IsRemote      bool   `json:"isRemote" db:"is_remote"`
	IncludesHotel bool   `json:"includesHotel" db:"includes_hotel"`
}
