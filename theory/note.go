package theory

import "fmt"

// Note is a spelled note: a letter plus an accidental. Many notes share a
// pitch class (C# and Db are distinct Notes with equal Pitch) and no
// spelling is canonical.
type Note struct {
	Letter     Letter
	Accidental Accidental
}

// NewNote creates a note from a letter and an accidental.
func NewNote(l Letter, a Accidental) Note {
	return Note{Letter: l, Accidental: a}
}

// Natural creates a note with no accidental.
func Natural(l Letter) Note {
	return NewNote(l, AccidentalNatural)
}

// Sharp creates a note raised one semitone.
func Sharp(l Letter) Note {
	return NewNote(l, AccidentalSharp)
}

// Flat creates a note lowered one semitone.
func Flat(l Letter) Note {
	return NewNote(l, AccidentalFlat)
}

// DoubleSharp creates a note raised two semitones.
func DoubleSharp(l Letter) Note {
	return NewNote(l, AccidentalDoubleSharp)
}

// DoubleFlat creates a note lowered two semitones.
func DoubleFlat(l Letter) Note {
	return NewNote(l, AccidentalDoubleFlat)
}

// NoteFromSharp spells a pitch class preferring sharps: black keys become
// <lower-letter>#, white keys stay natural. Total over all 12 classes.
func NoteFromSharp(p Pitch) Note {
	switch p {
	case PitchC:
		return Natural(C)
	case PitchCSharp:
		return Sharp(C)
	case PitchD:
		return Natural(D)
	case PitchDSharp:
		return Sharp(D)
	case PitchE:
		return Natural(E)
	case PitchF:
		return Natural(F)
	case PitchFSharp:
		return Sharp(F)
	case PitchG:
		return Natural(G)
	case PitchGSharp:
		return Sharp(G)
	case PitchA:
		return Natural(A)
	case PitchASharp:
		return Sharp(A)
	case PitchB:
		return Natural(B)
	}
	// NewPitch normalizes every construction path into [0,11]
	panic("theory: pitch class out of range")
}

// NoteFromFlat spells a pitch class preferring flats: black keys become
// <upper-letter>b, white keys stay natural. Total over all 12 classes.
func NoteFromFlat(p Pitch) Note {
	switch p {
	case PitchC:
		return Natural(C)
	case PitchDFlat:
		return Flat(D)
	case PitchD:
		return Natural(D)
	case PitchEFlat:
		return Flat(E)
	case PitchE:
		return Natural(E)
	case PitchF:
		return Natural(F)
	case PitchGFlat:
		return Flat(G)
	case PitchG:
		return Natural(G)
	case PitchAFlat:
		return Flat(A)
	case PitchA:
		return Natural(A)
	case PitchBFlat:
		return Flat(B)
	case PitchB:
		return Natural(B)
	}
	panic("theory: pitch class out of range")
}

// Pitch returns the note's pitch class.
func (n Note) Pitch() Pitch {
	return FromNote(n)
}

// IntoSharp respells the note in sharp notation, preserving its pitch
// class. Sharp and natural notes come back unchanged; B# wraps to C.
func (n Note) IntoSharp() Note {
	return NoteFromSharp(FromNote(n))
}

// IntoFlat respells the note in flat notation, preserving its pitch class.
// Fb comes back as E.
func (n Note) IntoFlat() Note {
	return NoteFromFlat(FromNote(n))
}

// IsEnharmonic reports whether two notes share a pitch class. A note is
// always enharmonic with itself.
func (n Note) IsEnharmonic(other Note) bool {
	return FromNote(n) == FromNote(other)
}

// String renders the note as <Letter><accidental symbol>: one letter
// followed by zero to two accidental characters.
func (n Note) String() string {
	return fmt.Sprintf("%s%s", n.Letter, n.Accidental)
}
