// Package scale enumerates scale degrees on top of the theory core.
package scale

import "github.com/NoteCompose/staff/theory"

// Mode identifies a scale pattern.
type Mode int

const (
	Ionian Mode = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
	HarmonicMinor
	MelodicMinor
	MajorPentatonic
	MinorPentatonic
)

// Modes returns every mode in menu order.
func Modes() []Mode {
	return []Mode{
		Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian,
		HarmonicMinor, MelodicMinor, MajorPentatonic, MinorPentatonic,
	}
}

// patterns holds each mode's degree offsets from the root, in semitones.
var patterns = map[Mode][]theory.Interval{
	Ionian:          {0, 2, 4, 5, 7, 9, 11},
	Dorian:          {0, 2, 3, 5, 7, 9, 10},
	Phrygian:        {0, 1, 3, 5, 7, 8, 10},
	Lydian:          {0, 2, 4, 6, 7, 9, 11},
	Mixolydian:      {0, 2, 4, 5, 7, 9, 10},
	Aeolian:         {0, 2, 3, 5, 7, 8, 10},
	Locrian:         {0, 1, 3, 5, 6, 8, 10},
	HarmonicMinor:   {0, 2, 3, 5, 7, 8, 11},
	MelodicMinor:    {0, 2, 3, 5, 7, 9, 11},
	MajorPentatonic: {0, 2, 4, 7, 9},
	MinorPentatonic: {0, 3, 5, 7, 10},
}

func (m Mode) String() string {
	switch m {
	case Ionian:
		return "ionian"
	case Dorian:
		return "dorian"
	case Phrygian:
		return "phrygian"
	case Lydian:
		return "lydian"
	case Mixolydian:
		return "mixolydian"
	case Aeolian:
		return "aeolian"
	case Locrian:
		return "locrian"
	case HarmonicMinor:
		return "harmonic minor"
	case MelodicMinor:
		return "melodic minor"
	case MajorPentatonic:
		return "major pentatonic"
	case MinorPentatonic:
		return "minor pentatonic"
	}
	return "unknown"
}

// Intervals returns the mode's degree offsets from the root.
func Intervals(m Mode) []theory.Interval {
	p := patterns[m]
	out := make([]theory.Interval, len(p))
	copy(out, p)
	return out
}

// Pitches returns the pitch classes of the scale built on root.
func Pitches(root theory.Pitch, m Mode) []theory.Pitch {
	pattern := patterns[m]
	out := make([]theory.Pitch, len(pattern))
	for i, iv := range pattern {
		out[i] = root.Add(iv)
	}
	return out
}

// Notes spells the scale built on root. A flat root spells the degrees
// from the flat table, anything else from the sharp table.
func Notes(root theory.Note, m Mode) []theory.Note {
	spell := theory.NoteFromSharp
	if root.Accidental == theory.AccidentalFlat || root.Accidental == theory.AccidentalDoubleFlat {
		spell = theory.NoteFromFlat
	}
	pitches := Pitches(theory.FromNote(root), m)
	out := make([]theory.Note, len(pitches))
	for i, p := range pitches {
		out[i] = spell(p)
	}
	// keep the caller's spelling for the root itself
	if len(out) > 0 && out[0].IsEnharmonic(root) {
		out[0] = root
	}
	return out
}

// Major returns the major (ionian) scale on root.
func Major(root theory.Note) []theory.Note {
	return Notes(root, Ionian)
}

// Minor returns the natural minor (aeolian) scale on root.
func Minor(root theory.Note) []theory.Note {
	return Notes(root, Aeolian)
}

// Contains reports whether the scale on root includes the pitch class.
func Contains(root theory.Pitch, m Mode, p theory.Pitch) bool {
	for _, sp := range Pitches(root, m) {
		if sp == p {
			return true
		}
	}
	return false
}
