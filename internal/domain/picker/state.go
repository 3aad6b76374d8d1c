package picker

import "github.com/diegoclair/weekday-range-picker/internal/domain/calendar"

// Status is the picker's position in its state machine
type Status string

const (
	StatusEmpty        Status = "empty"
	StatusPartialStart Status = "partial_start"
	StatusPartialEnd   Status = "partial_end"
	StatusValid        Status = "valid"
	StatusInvalid      Status = "invalid"
)

// State is the whole selection of one picker instance.
//
// Start and End always hold the last accepted range. When only one bound was
// picked the other is filled with it and takes part in later checks.
// StartChosen/EndChosen record which bounds the user actually picked.
// Err is the single active validation error.
type State struct {
	Start       calendar.Date
	End         calendar.Date
	StartChosen bool
	EndChosen   bool
	Err         *ValidationError
}

// Clear returns the empty state
func Clear() State {
	return State{}
}

// Clear resets start, end and error whatever the current state
func (s State) Clear() State {
	return Clear()
}

func (s State) Status() Status {
	switch {
	case s.Err != nil:
		return StatusInvalid
	case s.StartChosen && s.EndChosen:
		return StatusValid
	case s.StartChosen:
		return StatusPartialStart
	case s.EndChosen:
		return StatusPartialEnd
	}
	return StatusEmpty
}

// Range returns the last accepted range, if any
func (s State) Range() (Range, bool) {
	if s.Start.IsZero() || s.End.IsZero() {
		return Range{}, false
	}
	return Range{Start: s.Start, End: s.End}, true
}

// SetStart validates d as the new start against the stored end. A lone start
// fills the end with itself, so picking a later start afterwards is rejected.
func (s State) SetStart(d calendar.Date) State {
	r, err := ValidateStart(d, s.End)
	if err != nil {
		return s.Reject(err)
	}
	return State{Start: r.Start, End: r.End, StartChosen: true, EndChosen: s.EndChosen}
}

// SetEnd validates d as the new end against the stored start. A lone end
// fills the start with itself and keeps it when the end moves.
func (s State) SetEnd(d calendar.Date) State {
	r, err := ValidateEnd(d, s.Start)
	if err != nil {
		return s.Reject(err)
	}
	return State{Start: r.Start, End: r.End, StartChosen: s.StartChosen, EndChosen: true}
}

// ApplyPreset replaces the selection with a predefined range and clears any error
func (s State) ApplyPreset(r Range) State {
	accepted, err := ApplyPredefined(r)
	if err != nil {
		return s.Reject(err)
	}
	return State{Start: accepted.Start, End: accepted.End, StartChosen: true, EndChosen: true}
}

// Reject keeps the current bounds and records err as the active error.
// Errors that are not a *ValidationError are reported as ErrInvalidDate.
func (s State) Reject(err error) State {
	verr, ok := err.(*ValidationError)
	if !ok {
		verr = ErrInvalidDate
	}
	s.Err = verr
	return s
}
