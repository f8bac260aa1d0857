package domain

import "fmt"

// Fader travel for a mix layer, in dB.
const (
	VolumeMinDB = -60.0
	VolumeMaxDB = 6.0
)

// LayerState is one mixable layer's live control values, snapshotted by the
// mix session at submission time. The evaluator only reads it.
type LayerState struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Volume float64 `json:"volume" yaml:"volume"` // dB
	Pan    float64 `json:"pan" yaml:"pan"`       // -1..1
	Muted  bool    `json:"muted" yaml:"muted"`
	Solo   bool    `json:"solo" yaml:"solo"`
	EQLow  float64 `json:"eq_low" yaml:"eq_low"`   // dB
	EQHigh float64 `json:"eq_high" yaml:"eq_high"` // dB
}

// Clamped returns a copy with the volume forced into fader range.
func (l LayerState) Clamped() LayerState {
	if l.Volume < VolumeMinDB {
		l.Volume = VolumeMinDB
	}
	if l.Volume > VolumeMaxDB {
		l.Volume = VolumeMaxDB
	}
	return l
}

// AvailableControls flags which mix dimensions a challenge exposes and
// therefore scores. Volume and mute are always scored.
type AvailableControls struct {
	Pan bool `json:"pan" yaml:"pan"`
	EQ  bool `json:"eq" yaml:"eq"`
}

// ReferenceLayer is one layer of a reference mix. Pan and EQ targets are
// optional: a nil target means the dimension is not part of the grade even
// when the control is available.
type ReferenceLayer struct {
	Volume float64  `json:"volume" yaml:"volume"`
	Pan    *float64 `json:"pan,omitempty" yaml:"pan,omitempty"`
	EQLow  *float64 `json:"eq_low,omitempty" yaml:"eq_low,omitempty"`
	EQHigh *float64 `json:"eq_high,omitempty" yaml:"eq_high,omitempty"`
	Muted  bool     `json:"muted" yaml:"muted"`
}

// ConditionType discriminates the goal-condition union.
type ConditionType string

const (
	CondLevelOrder    ConditionType = "level_order"
	CondPanSpread     ConditionType = "pan_spread"
	CondLayerActive   ConditionType = "layer_active"
	CondLayerMuted    ConditionType = "layer_muted"
	CondRelativeLevel ConditionType = "relative_level"
	CondPanPosition   ConditionType = "pan_position"
)

// Range is an inclusive [min, max] interval.
type Range [2]float64

// ProductionCondition is one clause of a declarative goal set. Which fields
// are meaningful depends on Type; every variant is independently evaluable
// against a layer snapshot.
type ProductionCondition struct {
	Type ConditionType `json:"type" yaml:"type"`

	// level_order
	Louder  string `json:"louder,omitempty" yaml:"louder,omitempty"`
	Quieter string `json:"quieter,omitempty" yaml:"quieter,omitempty"`

	// pan_spread
	MinWidth float64 `json:"min_width,omitempty" yaml:"min_width,omitempty"`

	// layer_active / layer_muted / pan_position
	LayerID string `json:"layer_id,omitempty" yaml:"layer_id,omitempty"`
	Active  bool   `json:"active,omitempty" yaml:"active,omitempty"`
	Muted   bool   `json:"muted,omitempty" yaml:"muted,omitempty"`

	// relative_level
	Layer1     string `json:"layer1,omitempty" yaml:"layer1,omitempty"`
	Layer2     string `json:"layer2,omitempty" yaml:"layer2,omitempty"`
	Difference Range  `json:"difference,omitempty" yaml:"difference,omitempty"`

	// pan_position
	Position Range `json:"position,omitempty" yaml:"position,omitempty"`
}

// TargetType discriminates a mix challenge's target.
type TargetType string

const (
	TargetReference TargetType = "reference"
	TargetGoal      TargetType = "goal"
)

// MixTarget is what a production challenge grades against: either a
// per-layer reference mix or a declarative goal-condition set.
type MixTarget struct {
	Type       TargetType            `json:"type" yaml:"type"`
	Layers     []ReferenceLayer      `json:"layers,omitempty" yaml:"layers,omitempty"`
	Conditions []ProductionCondition `json:"conditions,omitempty" yaml:"conditions,omitempty"`
}

// ProductionChallenge is the full definition of a mix challenge.
type ProductionChallenge struct {
	Layers            []LayerState      `json:"layers" yaml:"layers"`
	Target            MixTarget         `json:"target" yaml:"target"`
	AvailableControls AvailableControls `json:"available_controls" yaml:"available_controls"`
}

// Validate enforces the authoring contract. Evaluation itself never fails on
// a submission, so malformed challenge definitions must be rejected here,
// at catalog-load time.
func (c ProductionChallenge) Validate() error {
	ids := make(map[string]bool, len(c.Layers))
	for _, l := range c.Layers {
		if l.ID == "" {
			return fmt.Errorf("mix layer with empty id")
		}
		if ids[l.ID] {
			return fmt.Errorf("duplicate mix layer id %q", l.ID)
		}
		ids[l.ID] = true
	}

	switch c.Target.Type {
	case TargetReference:
		if len(c.Target.Layers) == 0 {
			return fmt.Errorf("reference target has no layers")
		}
		if len(c.Target.Layers) != len(c.Layers) {
			return fmt.Errorf("reference target has %d layers, challenge has %d",
				len(c.Target.Layers), len(c.Layers))
		}
	case TargetGoal:
		if len(c.Target.Conditions) == 0 {
			return fmt.Errorf("goal target has no conditions")
		}
		for i, cond := range c.Target.Conditions {
			if err := cond.validate(ids); err != nil {
				return fmt.Errorf("condition %d: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("unknown target type %q", c.Target.Type)
	}
	return nil
}

func (c ProductionCondition) validate(layerIDs map[string]bool) error {
	requireLayer := func(id string) error {
		if id == "" {
			return fmt.Errorf("%s: missing layer id", c.Type)
		}
		if !layerIDs[id] {
			return fmt.Errorf("%s: unknown layer %q", c.Type, id)
		}
		return nil
	}

	switch c.Type {
	case CondLevelOrder:
		if err := requireLayer(c.Louder); err != nil {
			return err
		}
		return requireLayer(c.Quieter)
	case CondPanSpread:
		if c.MinWidth <= 0 {
			return fmt.Errorf("pan_spread: min_width must be positive")
		}
		return nil
	case CondLayerActive, CondLayerMuted:
		return requireLayer(c.LayerID)
	case CondRelativeLevel:
		if err := requireLayer(c.Layer1); err != nil {
			return err
		}
		if err := requireLayer(c.Layer2); err != nil {
			return err
		}
		if c.Difference[0] > c.Difference[1] {
			return fmt.Errorf("relative_level: difference range is inverted")
		}
		return nil
	case CondPanPosition:
		if err := requireLayer(c.LayerID); err != nil {
			return err
		}
		if c.Position[0] > c.Position[1] {
			return fmt.Errorf("pan_position: position range is inverted")
		}
		return nil
	default:
		return fmt.Errorf("unknown condition type %q", c.Type)
	}
}
