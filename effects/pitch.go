// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"strings"
)

// Pitch is a voice effect with a fixed semitone offset.
type Pitch int

const (
	PitchNone Pitch = iota
	PitchChipmunk
	PitchChild
	PitchFemale
	PitchDeep
	PitchMonster
)

type pitchInfo struct {
	name      string
	label     string
	semitones float64
}

var pitchTable = [...]pitchInfo{
	PitchNone:     {"none", "None", 0},
	PitchChipmunk: {"chipmunk", "Chipmunk Voice", 10},
	PitchChild:    {"child", "Child Voice", 6},
	PitchFemale:   {"female", "Female Voice", 3},
	PitchDeep:     {"deep", "Deep Voice", -4},
	PitchMonster:  {"monster", "Monster Voice", -8},
}

// Pitches returns every choice in display order.
func Pitches() []Pitch {
	out := make([]Pitch, len(pitchTable))
	for i := range pitchTable {
		out[i] = Pitch(i)
	}

	return out
}

// Valid reports whether p is one of the declared choices.
func (p Pitch) Valid() bool {
	return p >= 0 && int(p) < len(pitchTable)
}

// Semitones returns the shift applied by p. Unknown values shift by 0.
func (p Pitch) Semitones() float64 {
	if !p.Valid() {
		return 0
	}
	return pitchTable[p].semitones
}

// String returns the machine name used by flags, config files and forms.
func (p Pitch) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Pitch(%d)", int(p))
	}
	return pitchTable[p].name
}

// Label returns the human readable name.
func (p Pitch) Label() string {
	if !p.Valid() {
		return p.String()
	}
	return pitchTable[p].label
}

// ParsePitch accepts a machine name or a display label, ignoring case
// and surrounding space. The empty string means PitchNone.
func ParsePitch(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PitchNone, nil
	}

	for i, info := range pitchTable {
		if strings.EqualFold(s, info.name) || strings.EqualFold(s, info.label) {
			return Pitch(i), nil
		}
	}

	return PitchNone, &ConfigError{Field: "pitch", Value: s, Reason: "unknown pitch effect"}
}

func (p Pitch) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &ConfigError{Field: "pitch", Value: int(p), Reason: "unknown pitch effect"}
	}
	return []byte(p.String()), nil
}

func (p *Pitch) UnmarshalText(text []byte) error {
	v, err := ParsePitch(string(text))
	if err != nil {
		return err
	}
	*p = v

	return nil
}
