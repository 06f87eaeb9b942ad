// Package midi converts theory values to MIDI key numbers and sounds them
// through an output port.
package midi

import (
	"fmt"
	"math"

	"github.com/NoteCompose/staff/theory"
)

// Note is a MIDI key number in [0,127]. Middle C (C4) is 60, A4 is 69.
type Note uint8

// NewNote builds a MIDI note from a spelled note and an octave. Octave -1
// holds key 0, octave 9 tops out at G9 (127).
func NewNote(n theory.Note, octave int) (Note, error) {
	key := 12*(octave+1) + int(theory.FromNote(n))
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("midi: %s%d out of range", n, octave)
	}
	return Note(key), nil
}

// MustNote is NewNote for octaves known to be in range.
func MustNote(n theory.Note, octave int) Note {
	m, err := NewNote(n, octave)
	if err != nil {
		panic(err)
	}
	return m
}

// Pitch returns the note's pitch class.
func (n Note) Pitch() theory.Pitch {
	return theory.NewPitch(int(n))
}

// Octave returns the note's octave, C4 = 60 convention.
func (n Note) Octave() int {
	return int(n)/12 - 1
}

// Frequency returns the equal-temperament frequency in Hz, A4 = 440.
func (n Note) Frequency() float64 {
	return 440 * math.Pow(2, (float64(n)-69)/12)
}

// String renders the note in sharp spelling with its octave, e.g. "C#4".
func (n Note) String() string {
	return fmt.Sprintf("%s%d", theory.NoteFromSharp(n.Pitch()), n.Octave())
}

// Chord converts chord pitch classes to MIDI notes in the given octave,
// keeping tones ascending: a tone below the root is lifted an octave.
func Chord(pitches []theory.Pitch, octave int) ([]Note, error) {
	if len(pitches) == 0 {
		return nil, nil
	}
	root := pitches[0]
	out := make([]Note, len(pitches))
	for i, p := range pitches {
		oct := octave
		if p < root {
			oct++
		}
		n, err := NewNote(theory.NoteFromSharp(p), oct)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
