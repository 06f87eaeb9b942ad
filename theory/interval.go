package theory

// Interval is a signed semitone distance. Intervals add and subtract as
// ordinary integers; mod-12 wrapping only happens when an Interval is
// combined with a Pitch.
type Interval int

const (
	Unison Interval = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	Tritone
	PerfectFifth
	MinorSixth
	MajorSixth
	MinorSeventh
	MajorSeventh
	Octave
)

// Semitones returns the interval's size as a plain semitone count.
func (i Interval) Semitones() int {
	return int(i)
}

// Transpose shifts a note so it keeps its interval relationship to a key
// when the key moves to a new tonic: the interval from key up to note
// (non-negative subtraction convention) applied to the new tonic. The 2nd
// degree of C (D) transposed to the key of D becomes E.
func Transpose(key, note, to Pitch) Pitch {
	f := note.Sub(key)
	return to.Add(f)
}
