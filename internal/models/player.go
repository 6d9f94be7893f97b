package models

// Player represents someone who takes part in sessions and settlements.
type Player struct {
	// ID is the unique identifier for the player (UUID format).
	ID string

	// Name is the display name of the player, trimmed of surrounding whitespace.
	Name string

	// CreatedAt is the Unix timestamp when the player was added.
	CreatedAt int64
}
