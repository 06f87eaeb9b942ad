package theory

// Accidental modifies a letter's pitch by a fixed number of semitones.
// The numeric value of each constant is its semitone offset.
type Accidental int8

const (
	AccidentalDoubleFlat Accidental = iota - 2
	AccidentalFlat
	AccidentalNatural
	AccidentalSharp
	AccidentalDoubleSharp
)

// Offset returns the semitone delta the accidental applies to a letter.
func (a Accidental) Offset() int {
	return int(a)
}

func (a Accidental) String() string {
	switch a {
	case AccidentalDoubleFlat:
		return "bb"
	case AccidentalFlat:
		return "b"
	case AccidentalNatural:
		return ""
	case AccidentalSharp:
		return "#"
	case AccidentalDoubleSharp:
		return "##"
	}
	panic("theory: invalid accidental")
}
