package api

import (
	"errors"
	"math"
	"time"
)

// Touch gestures shorter and stiller than this are taps, the rest drag the
// joystick. Distances in screen pixels.
const (
	TapMaxDuration = 300 * time.Millisecond
	TapMaxDistance = 10.0
)

// IsTap reports whether a touch that lasted d and travelled dist pixels is
// a tap rather than a drag.
func IsTap(d time.Duration, dist float64) bool {
	return d < TapMaxDuration && dist < TapMaxDistance
}

// Validator is implemented by payloads that can check themselves.
type Validator interface {
	Validate() error
}

func validCell(col, row int) error {
	if col < 0 || row < 0 {
		return errors.New("cell coordinates cannot be negative")
	}
	return nil
}

func finite(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("coordinates must be finite")
		}
	}
	return nil
}

func (p MoveToPayload) Validate() error {
	return validCell(p.Col, p.Row)
}

func (p TapPayload) Validate() error {
	if err := finite(p.X, p.Y, p.Drag); err != nil {
		return err
	}
	if p.X < 0 || p.Y < 0 {
		return errors.New("tap outside the map")
	}
	if p.HeldMs < 0 || p.Drag < 0 {
		return errors.New("gesture cannot be negative")
	}
	if !IsTap(time.Duration(p.HeldMs)*time.Millisecond, p.Drag) {
		return errors.New("gesture is a drag, not a tap")
	}
	return nil
}

func (p JoystickPayload) Validate() error {
	return finite(p.Dx, p.Dy)
}

func (p BuildPayload) Validate() error {
	return validCell(p.Col, p.Row)
}

func (p GatherPayload) Validate() error {
	if p.ResourceID == "" {
		return errors.New("resourceId is required")
	}
	return nil
}

func (p TeleportPayload) Validate() error {
	if p.MapID == "" {
		return errors.New("mapId is required")
	}
	return validCell(p.Col, p.Row)
}

func (p EntityPayload) Validate() error {
	if p.TargetID == "" {
		return errors.New("targetId is required")
	}
	return nil
}

func (p StructurePayload) Validate() error {
	if p.StructureID == "" {
		return errors.New("structureId is required")
	}
	return nil
}
