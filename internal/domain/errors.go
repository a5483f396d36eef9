package domain

import "errors"

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrEditConflict         = errors.New("edit conflict")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrShowtimeSlotTaken    = errors.New("a showtime already exists for this movie, theater and start time")
	ErrInsufficientCapacity = errors.New("not enough seats available")
	ErrCapacityOverflow     = errors.New("seat release would exceed theater capacity")
	ErrAlreadyCancelled     = errors.New("booking is already cancelled")
	ErrResourceInUse        = errors.New("resource is referenced by other records")
)
