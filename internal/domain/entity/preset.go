package entity

import (
	"time"

	"github.com/diegoclair/weekday-range-picker/internal/domain/calendar"
	"github.com/diegoclair/weekday-range-picker/internal/domain/picker"
)

// Preset is a predefined range offered as a one-click selection in a channel
type Preset struct {
	ID        int64
	ChannelID int64
	Label     string
	Start     calendar.Date
	End       calendar.Date
	Position  int
	CreatedAt time.Time
}

func (p *Preset) Range() picker.Range {
	return picker.Range{Start: p.Start, End: p.End}
}
