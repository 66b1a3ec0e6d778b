package entities

import (
	"github.com/KirkDiggler/mercdex/internal/errors"
)

// Default progression bounds
const (
	DefaultMaxLevel  = 31
	DefaultMaxReboot = 7
)

// Progression is a chosen point on both progression axes.
// Level is 1-based, Reboot is 0-based.
type Progression struct {
	Level  int `json:"level"`
	Reboot int `json:"reboot"`
}

// DefaultProgression is the selection a fresh session starts with
func DefaultProgression() Progression {
	return Progression{Level: 1, Reboot: 0}
}

// ProgressionLimits bounds the selectable progression domain
type ProgressionLimits struct {
	MaxLevel  int `json:"max_level" yaml:"max_level"`
	MaxReboot int `json:"max_reboot" yaml:"max_reboot"`
}

// DefaultProgressionLimits returns level 1..31 and reboot 0..7
func DefaultProgressionLimits() ProgressionLimits {
	return ProgressionLimits{
		MaxLevel:  DefaultMaxLevel,
		MaxReboot: DefaultMaxReboot,
	}
}

// Validate checks that the limits describe a non-empty domain
func (l ProgressionLimits) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("max_level", l.MaxLevel, 1, vb)
	errors.ValidateMin("max_reboot", l.MaxReboot, 0, vb)
	return vb.Build()
}

// Check returns OutOfRange when p falls outside the limits
func (l ProgressionLimits) Check(p Progression) error {
	if p.Level < 1 || p.Level > l.MaxLevel {
		return errors.OutOfRangef("level %d outside 1..%d", p.Level, l.MaxLevel).
			WithMeta("level", p.Level)
	}
	if p.Reboot < 0 || p.Reboot > l.MaxReboot {
		return errors.OutOfRangef("reboot %d outside 0..%d", p.Reboot, l.MaxReboot).
			WithMeta("reboot", p.Reboot)
	}
	return nil
}
