package domain

import "fmt"

// ChallengeKind discriminates what a challenge grades.
type ChallengeKind string

const (
	KindSound ChallengeKind = "sound"
	KindMix   ChallengeKind = "mix"
)

// SoundChallenge is a sound-design challenge target: the rendered reference
// audio plus the parameter snapshot that produced it. Exactly one parameter
// variant is set, matching the challenge's track.
type SoundChallenge struct {
	Audio       string          `json:"audio" yaml:"audio"`
	Subtractive *SynthParams    `json:"subtractive,omitempty" yaml:"subtractive,omitempty"`
	FM          *FMParams       `json:"fm,omitempty" yaml:"fm,omitempty"`
	Additive    *AdditiveParams `json:"additive,omitempty" yaml:"additive,omitempty"`
}

// TargetParams projects whichever variant is set into the common comparable
// shape.
func (s SoundChallenge) TargetParams() SynthParams {
	switch {
	case s.Subtractive != nil:
		return s.Subtractive.Comparable()
	case s.FM != nil:
		return s.FM.Comparable()
	case s.Additive != nil:
		return s.Additive.Comparable()
	default:
		return SynthParams{}
	}
}

// Challenge is one entry of a challenge pack's catalog.
type Challenge struct {
	ID     string               `json:"id" yaml:"id"`
	Title  string               `json:"title" yaml:"title"`
	Module string               `json:"module" yaml:"module"`
	Track  Track                `json:"track" yaml:"track"`
	Kind   ChallengeKind        `json:"kind" yaml:"kind"`
	Sound  *SoundChallenge      `json:"sound,omitempty" yaml:"sound,omitempty"`
	Mix    *ProductionChallenge `json:"mix,omitempty" yaml:"mix,omitempty"`
}

// Validate enforces the authoring contract for one catalog entry.
func (c Challenge) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("challenge with empty id")
	}
	if c.Module == "" {
		return fmt.Errorf("challenge %s: missing module", c.ID)
	}
	switch c.Kind {
	case KindSound:
		if c.Sound == nil {
			return fmt.Errorf("challenge %s: sound challenge without sound target", c.ID)
		}
		if c.Sound.Audio == "" {
			return fmt.Errorf("challenge %s: missing target audio", c.ID)
		}
		variants := 0
		for _, set := range []bool{c.Sound.Subtractive != nil, c.Sound.FM != nil, c.Sound.Additive != nil} {
			if set {
				variants++
			}
		}
		if variants != 1 {
			return fmt.Errorf("challenge %s: exactly one parameter variant required, got %d", c.ID, variants)
		}
	case KindMix:
		if c.Mix == nil {
			return fmt.Errorf("challenge %s: mix challenge without mix definition", c.ID)
		}
		if err := c.Mix.Validate(); err != nil {
			return fmt.Errorf("challenge %s: %w", c.ID, err)
		}
	default:
		return fmt.Errorf("challenge %s: unknown kind %q", c.ID, c.Kind)
	}
	return nil
}

// Catalog is a loaded challenge pack.
type Catalog struct {
	Pack       string      `json:"pack" yaml:"pack"`
	Dir        string      `json:"-" yaml:"-"`
	Challenges []Challenge `json:"challenges" yaml:"challenges"`
}

// ByID returns the challenge with the given id, or nil.
func (c *Catalog) ByID(id string) *Challenge {
	for i := range c.Challenges {
		if c.Challenges[i].ID == id {
			return &c.Challenges[i]
		}
	}
	return nil
}
