package domain

import (
	"strconv"

	apperrors "github.com/louisbranch/dicetray/internal/platform/errors"
	"github.com/louisbranch/dicetray/internal/services/tray/storage"
)

const (
	// MaxUnitCount bounds how many dice one tray holds.
	MaxUnitCount = 64
	// MaxSides bounds the face count of each die.
	MaxSides = 100

	defaultUnitCount    = 2
	defaultSides        = 6
	defaultDefaultValue = 6
)

// Settings describes the dice the tray provisions.
type Settings struct {
	UnitCount int
	// DefaultValue is the face every die rests on before its first roll.
	DefaultValue int
	Sides        int
}

// DefaultSettings returns two six-sided dice resting on six.
func DefaultSettings() Settings {
	return Settings{
		UnitCount:    defaultUnitCount,
		DefaultValue: defaultDefaultValue,
		Sides:        defaultSides,
	}
}

// Validate reports the first invalid field as a domain error.
func (s Settings) Validate() error {
	if s.UnitCount < 0 || s.UnitCount > MaxUnitCount {
		return apperrors.WithMetadata(
			apperrors.CodeTrayInvalidUnitCount,
			"unit count out of range: "+strconv.Itoa(s.UnitCount),
			map[string]string{"Max": strconv.Itoa(MaxUnitCount)},
		)
	}
	if s.Sides < 2 || s.Sides > MaxSides {
		return apperrors.WithMetadata(
			apperrors.CodeTrayInvalidSides,
			"sides out of range: "+strconv.Itoa(s.Sides),
			map[string]string{"Max": strconv.Itoa(MaxSides)},
		)
	}
	if s.DefaultValue < 1 || s.DefaultValue > s.Sides {
		return apperrors.WithMetadata(
			apperrors.CodeTrayInvalidDefaultValue,
			"default value out of range: "+strconv.Itoa(s.DefaultValue),
			map[string]string{"Sides": strconv.Itoa(s.Sides)},
		)
	}
	return nil
}

// SettingsPatch selects settings fields to change. Nil fields keep the
// current value.
type SettingsPatch struct {
	UnitCount    *int
	DefaultValue *int
	Sides        *int
}

// Apply returns base with the fields set in p replaced.
func (p SettingsPatch) Apply(base Settings) Settings {
	if p.UnitCount != nil {
		base.UnitCount = *p.UnitCount
	}
	if p.DefaultValue != nil {
		base.DefaultValue = *p.DefaultValue
	}
	if p.Sides != nil {
		base.Sides = *p.Sides
	}
	return base
}

func settingsFromRecord(record storage.Settings) Settings {
	return Settings{
		UnitCount:    record.UnitCount,
		DefaultValue: record.DefaultValue,
		Sides:        record.Sides,
	}
}

func (s Settings) record() storage.Settings {
	return storage.Settings{
		UnitCount:    s.UnitCount,
		DefaultValue: s.DefaultValue,
		Sides:        s.Sides,
	}
}
