// Package chord enumerates chord tones on top of the theory core.
package chord

import (
	"fmt"

	"github.com/NoteCompose/staff/theory"
)

// Quality identifies a chord's interval structure.
type Quality int

const (
	Major Quality = iota
	Minor
	Diminished
	Augmented
	Sus2
	Sus4
	Major7
	Minor7
	Dominant7
	MinorMajor7
	HalfDiminished7
	Diminished7
)

// Qualities returns every quality in menu order.
func Qualities() []Quality {
	return []Quality{
		Major, Minor, Diminished, Augmented, Sus2, Sus4,
		Major7, Minor7, Dominant7, MinorMajor7, HalfDiminished7, Diminished7,
	}
}

// tones holds each quality's offsets from the root, in semitones.
var tones = map[Quality][]theory.Interval{
	Major:           {0, 4, 7},
	Minor:           {0, 3, 7},
	Diminished:      {0, 3, 6},
	Augmented:       {0, 4, 8},
	Sus2:            {0, 2, 7},
	Sus4:            {0, 5, 7},
	Major7:          {0, 4, 7, 11},
	Minor7:          {0, 3, 7, 10},
	Dominant7:       {0, 4, 7, 10},
	MinorMajor7:     {0, 3, 7, 11},
	HalfDiminished7: {0, 3, 6, 10},
	Diminished7:     {0, 3, 6, 9},
}

// suffixes are the conventional chord-symbol suffixes.
var suffixes = map[Quality]string{
	Major:           "",
	Minor:           "m",
	Diminished:      "dim",
	Augmented:       "aug",
	Sus2:            "sus2",
	Sus4:            "sus4",
	Major7:          "maj7",
	Minor7:          "m7",
	Dominant7:       "7",
	MinorMajor7:     "mMaj7",
	HalfDiminished7: "m7b5",
	Diminished7:     "dim7",
}

func (q Quality) String() string {
	s, ok := suffixes[q]
	if !ok {
		return "unknown"
	}
	if s == "" {
		return "major"
	}
	return s
}

// Intervals returns the quality's tone offsets from the root.
func Intervals(q Quality) []theory.Interval {
	ts := tones[q]
	out := make([]theory.Interval, len(ts))
	copy(out, ts)
	return out
}

// Pitches returns the pitch classes of the chord built on root.
func Pitches(root theory.Pitch, q Quality) []theory.Pitch {
	ts := tones[q]
	out := make([]theory.Pitch, len(ts))
	for i, iv := range ts {
		out[i] = root.Add(iv)
	}
	return out
}

// Notes spells the chord built on root. A flat root spells the tones from
// the flat table, anything else from the sharp table.
func Notes(root theory.Note, q Quality) []theory.Note {
	spell := theory.NoteFromSharp
	if root.Accidental == theory.AccidentalFlat || root.Accidental == theory.AccidentalDoubleFlat {
		spell = theory.NoteFromFlat
	}
	pitches := Pitches(theory.FromNote(root), q)
	out := make([]theory.Note, len(pitches))
	for i, p := range pitches {
		out[i] = spell(p)
	}
	if len(out) > 0 && out[0].IsEnharmonic(root) {
		out[0] = root
	}
	return out
}

// Symbol renders the chord symbol for root and quality, e.g. "Cmaj7".
func Symbol(root theory.Note, q Quality) string {
	return fmt.Sprintf("%s%s", root, suffixes[q])
}

// Contains reports whether the chord on root includes the pitch class.
func Contains(root theory.Pitch, q Quality, p theory.Pitch) bool {
	for _, cp := range Pitches(root, q) {
		if cp == p {
			return true
		}
	}
	return false
}
