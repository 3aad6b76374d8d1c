package domain

import "errors"

var (
	ErrPresetNotFound = errors.New("predefined range not found")
	ErrPresetExists   = errors.New("a predefined range with this label already exists")
	ErrInvalidPreset  = errors.New("invalid predefined range")
)
