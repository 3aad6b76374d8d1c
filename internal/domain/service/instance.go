package service

import (
	"github.com/diegoclair/weekday-range-picker/internal/domain"
	"github.com/diegoclair/weekday-range-picker/internal/domain/contract"
	"go.uber.org/zap"
)

type Instance struct {
	Picker contract.PickerService
	Preset contract.PresetService
}

func NewInstance(dm contract.DataManager, notifier contract.SelectionNotifier, log *zap.Logger, presets []domain.PresetSeed, opts PickerOptions) *Instance {
	return &Instance{
		Picker: newPicker(dm, notifier, log, opts),
		Preset: newPreset(dm, log, presets),
	}
}
