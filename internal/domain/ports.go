package domain

import "context"

// Countdown is what the display needs from the rotation: a way to read
// the current state and the single start action.
type Countdown interface {
	Snapshot() Snapshot
	Start(ctx context.Context)
}

// Announcer is told every time the rotation moves on to a new name.
// Implementations can log, ring a bell, or push a notification.
type Announcer interface {
	Announce(ctx context.Context, s Snapshot) error
}
