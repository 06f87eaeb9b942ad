package theory

// Pitch is a chromatic pitch class in [0,11] with C = 0.
// It is the canonical numeric representation all spelled notes map onto.
type Pitch uint8

const (
	PitchC Pitch = iota
	PitchCSharp
	PitchD
	PitchDSharp
	PitchE
	PitchF
	PitchFSharp
	PitchG
	PitchGSharp
	PitchA
	PitchASharp
	PitchB
)

// Enharmonic aliases for the flat spellings.
const (
	PitchDFlat = PitchCSharp
	PitchEFlat = PitchDSharp
	PitchGFlat = PitchFSharp
	PitchAFlat = PitchGSharp
	PitchBFlat = PitchASharp
)

// NewPitch normalizes a semitone count into [0,11]. Negative inputs wrap
// the mathematical way: NewPitch(-1) is 11, never -1.
func NewPitch(semitones int) Pitch {
	m := semitones % 12
	if m < 0 {
		m += 12
	}
	return Pitch(m)
}

// FromNote returns the pitch class of a spelled note: the letter's base
// offset plus the accidental's delta, wrapped mod 12.
func FromNote(n Note) Pitch {
	return NewPitch(baseOffset[n.Letter] + n.Accidental.Offset())
}

// Add shifts the pitch class by an interval, wrapping mod 12.
func (p Pitch) Add(i Interval) Pitch {
	return NewPitch(int(p) + int(i))
}

// Sub returns the interval from o up to p as the smallest non-negative
// representative in [0,11]. This is deliberately not the signed shortest
// path: Transpose depends on the non-negative convention.
func (p Pitch) Sub(o Pitch) Interval {
	return Interval(NewPitch(int(p) - int(o)))
}

// String renders the pitch class in its sharp spelling.
func (p Pitch) String() string {
	return NoteFromSharp(p).String()
}
