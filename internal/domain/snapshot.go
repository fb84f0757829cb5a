// Package domain defines the core types and interfaces for the rotation
// display. All other packages depend on domain; domain depends on nothing.
package domain

// Snapshot is a read-only copy of the rotation state handed to the
// display and announcers. Mutating it has no effect on the controller.
type Snapshot struct {
	Active   bool
	Index    int
	Names    []string
	History  []string // most recent first, at most two entries
	TimeLeft int      // seconds
	Duration int      // seconds
}

// Current returns the name being shown.
func (s Snapshot) Current() string {
	if len(s.Names) == 0 {
		return ""
	}
	return s.Names[s.Index%len(s.Names)]
}

// Next returns the name that follows the current one.
func (s Snapshot) Next() string {
	if len(s.Names) == 0 {
		return ""
	}
	return s.Names[(s.Index+1)%len(s.Names)]
}

// Progress returns the fraction of the countdown still left, in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	p := float64(s.TimeLeft) / float64(s.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
