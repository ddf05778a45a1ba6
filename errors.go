package qb

import "github.com/pkg/errors"

var (
	// ErrBuilderConsumed is returned when a terminal operation is called on a
	// builder that already ran one.
	ErrBuilderConsumed = errors.New("qb: builder already consumed")

	// ErrNoValues is returned by Save and Update when nothing was Set.
	ErrNoValues = errors.New("qb: no values to write")

	ErrUnknownDriver = errors.New("qb: no dialect matched with driver")

	// ErrInvalidDestination is returned when ToObject or OneObject receive
	// something other than a pointer to a slice or a struct.
	ErrInvalidDestination = errors.New("qb: invalid bind destination")
)
