// Package curriculum implements the player skill model: it projects
// heterogeneous score breakdowns into a common skill vector, aggregates them
// into per-skill competency scores, detects weaknesses, and recommends
// challenges that train them. Everything is a pure function over
// caller-supplied data; the label and module tables are injected
// configuration, not package state.
package curriculum

import (
	"strings"

	"github.com/earcraft/earcraft/internal/domain"
	"github.com/fatih/camelcase"
)

// Skill is a named trainable competency key, e.g. "filter" or "pitchMatch".
type Skill string

// SkillInfo is the static presentation data for one skill.
type SkillInfo struct {
	Label string
	Track domain.Track
}

// Table holds the skill→label/track and skill→modules lookups. It is
// immutable after construction; NewTable copies its inputs.
type Table struct {
	skills  map[Skill]SkillInfo
	modules map[Skill][]string
}

// NewTable builds a Table from the given lookups.
func NewTable(skills map[Skill]SkillInfo, modules map[Skill][]string) Table {
	s := make(map[Skill]SkillInfo, len(skills))
	for k, v := range skills {
		s[k] = v
	}
	m := make(map[Skill][]string, len(modules))
	for k, v := range modules {
		m[k] = append([]string(nil), v...)
	}
	return Table{skills: s, modules: m}
}

// Info returns the presentation data for a skill. Unknown skills get a label
// derived from their camelCase key so new breakdown fields degrade gracefully
// instead of disappearing from the dashboard.
func (t Table) Info(s Skill) SkillInfo {
	if info, ok := t.skills[s]; ok {
		return info
	}
	return SkillInfo{Label: humanizeSkill(string(s))}
}

// ModulesFor returns the modules that train a skill.
func (t Table) ModulesFor(s Skill) []string {
	return t.modules[s]
}

func humanizeSkill(key string) string {
	words := camelcase.Split(key)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// DefaultTable is the trainer's built-in skill catalog.
func DefaultTable() Table {
	return NewTable(
		map[Skill]SkillInfo{
			"brightness": {Label: "Brightness Matching", Track: domain.TrackSoundDesign},
			"attack":     {Label: "Attack Shaping", Track: domain.TrackSoundDesign},
			"envelope":   {Label: "Envelope Control", Track: domain.TrackSoundDesign},
			"spectrum":   {Label: "Spectral Matching", Track: domain.TrackSoundDesign},
			"filter":     {Label: "Filter Control", Track: domain.TrackSoundDesign},
			"oscillator": {Label: "Oscillator Setup", Track: domain.TrackSoundDesign},
			"amplitude":  {Label: "Amplitude Envelope", Track: domain.TrackSoundDesign},

			"harmonicity": {Label: "Harmonic Ratios", Track: domain.TrackFM},
			"modulation":  {Label: "Modulation Depth", Track: domain.TrackFM},

			"harmonics": {Label: "Harmonic Balance", Track: domain.TrackAdditive},
			"partials":  {Label: "Partial Shaping", Track: domain.TrackAdditive},

			"levels":     {Label: "Level Balance", Track: domain.TrackMixing},
			"conditions": {Label: "Mix Goals", Track: domain.TrackMixing},

			"balance": {Label: "Production Balance", Track: domain.TrackProduction},

			"chop":       {Label: "Sample Chopping", Track: domain.TrackSampling},
			"pitchMatch": {Label: "Pitch Matching", Track: domain.TrackSampling},
			"loopTiming": {Label: "Loop Timing", Track: domain.TrackSampling},

			"pattern":  {Label: "Pattern Accuracy", Track: domain.TrackDrums},
			"velocity": {Label: "Velocity Dynamics", Track: domain.TrackDrums},
			"swing":    {Label: "Swing Feel", Track: domain.TrackDrums},
		},
		map[Skill][]string{
			"brightness": {"SD1", "SD2"},
			"attack":     {"SD1"},
			"envelope":   {"SD1", "SD2"},
			"spectrum":   {"SD2", "SD3"},
			"filter":     {"SD2"},
			"oscillator": {"SD1"},
			"amplitude":  {"SD1", "SD3"},

			"harmonicity": {"FM1"},
			"modulation":  {"FM1", "FM2"},

			"harmonics": {"AD1"},
			"partials":  {"AD1"},

			"levels":     {"MIX1"},
			"conditions": {"MIX1", "MIX2"},

			"balance": {"PROD1"},

			"chop":       {"SMP1"},
			"pitchMatch": {"SMP1"},
			"loopTiming": {"SMP1"},

			"pattern":  {"DRM1"},
			"velocity": {"DRM1"},
			"swing":    {"DRM1"},
		},
	)
}
