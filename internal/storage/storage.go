package storage

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrBookingExists = errors.New("user already has a booking")
)
