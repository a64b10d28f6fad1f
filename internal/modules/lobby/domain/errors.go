package domain

import "errors"

var (
	// ErrNotFound is returned when no live lobby exists for a code.
	ErrNotFound = errors.New("lobby not found")

	// ErrGameInProgress is returned on join attempts after the round started.
	ErrGameInProgress = errors.New("game already in progress")

	// ErrNameTaken is returned when a joining name is already present in the
	// lobby, compared case-insensitively.
	ErrNameTaken = errors.New("name already taken in this lobby")

	// ErrParticipantNotFound is returned when a viewer id is not in the roster.
	ErrParticipantNotFound = errors.New("participant not found in lobby")

	// ErrGenerationExhausted is returned when a unique code could not be found
	// within the generation retry bound.
	ErrGenerationExhausted = errors.New("exhausted lobby code generation attempts")
)
