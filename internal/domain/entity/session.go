package entity

import "github.com/diegoclair/weekday-range-picker/internal/domain/picker"

// SessionKey identifies one picker instance: a user inside a Slack channel
type SessionKey struct {
	TeamID    string
	ChannelID string
	UserID    string
}

// Outcome is the result of one interaction with the picker
type Outcome struct {
	State picker.State
	// Classified and Notification are only set when the interaction produced a new valid selection
	Classified   *picker.Classified
	Notification *picker.Notification
	// Dropped is set when unparsable input was ignored without touching the state
	Dropped bool
}

// Selected reports whether the interaction produced a new valid selection
func (o *Outcome) Selected() bool {
	return o != nil && o.Notification != nil
}
