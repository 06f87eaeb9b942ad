package chord_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NoteCompose/staff/chord"
	"github.com/NoteCompose/staff/theory"
)

func names(notes []theory.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.String()
	}
	return out
}

func TestTriads(t *testing.T) {
	cases := []struct {
		root    theory.Note
		quality chord.Quality
		want    []string
	}{
		{theory.Natural(theory.C), chord.Major, []string{"C", "E", "G"}},
		{theory.Natural(theory.A), chord.Minor, []string{"A", "C", "E"}},
		{theory.Natural(theory.B), chord.Diminished, []string{"B", "D", "F"}},
		{theory.Flat(theory.E), chord.Major, []string{"Eb", "G", "Bb"}},
		{theory.Sharp(theory.F), chord.Minor, []string{"F#", "A", "C#"}},
		{theory.Natural(theory.C), chord.Augmented, []string{"C", "E", "G#"}},
		{theory.Natural(theory.D), chord.Sus4, []string{"D", "G", "A"}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, names(chord.Notes(c.root, c.quality)), "%s %s", c.root, c.quality)
	}
}

func TestSevenths(t *testing.T) {
	cases := []struct {
		root    theory.Note
		quality chord.Quality
		want    []string
	}{
		{theory.Natural(theory.C), chord.Major7, []string{"C", "E", "G", "B"}},
		{theory.Natural(theory.G), chord.Dominant7, []string{"G", "B", "D", "F"}},
		{theory.Natural(theory.D), chord.Minor7, []string{"D", "F", "A", "C"}},
		{theory.Natural(theory.B), chord.HalfDiminished7, []string{"B", "D", "F", "A"}},
		{theory.Flat(theory.B), chord.Dominant7, []string{"Bb", "D", "F", "Ab"}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, names(chord.Notes(c.root, c.quality)), "%s %s", c.root, c.quality)
	}
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "C", chord.Symbol(theory.Natural(theory.C), chord.Major))
	assert.Equal(t, "Am", chord.Symbol(theory.Natural(theory.A), chord.Minor))
	assert.Equal(t, "Ebmaj7", chord.Symbol(theory.Flat(theory.E), chord.Major7))
	assert.Equal(t, "F#m7b5", chord.Symbol(theory.Sharp(theory.F), chord.HalfDiminished7))
}

func TestContains(t *testing.T) {
	assert.True(t, chord.Contains(theory.PitchC, chord.Major, theory.PitchE))
	assert.False(t, chord.Contains(theory.PitchC, chord.Major, theory.PitchD))
}

func ExampleNotes() {
	for _, n := range chord.Notes(theory.Natural(theory.E), chord.Minor7) {
		fmt.Print(n, " ")
	}
	// Output: E G B D
}
