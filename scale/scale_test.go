package scale_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NoteCompose/staff/scale"
	"github.com/NoteCompose/staff/theory"
)

func names(notes []theory.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.String()
	}
	return out
}

func TestMajorScales(t *testing.T) {
	cases := []struct {
		root theory.Note
		want []string
	}{
		{theory.Natural(theory.C), []string{"C", "D", "E", "F", "G", "A", "B"}},
		{theory.Natural(theory.G), []string{"G", "A", "B", "C", "D", "E", "F#"}},
		{theory.Flat(theory.B), []string{"Bb", "C", "D", "Eb", "F", "G", "A"}},
		{theory.Flat(theory.E), []string{"Eb", "F", "G", "Ab", "Bb", "C", "D"}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, names(scale.Major(c.root)), "major scale on %s", c.root)
	}
}

func TestMinorScale(t *testing.T) {
	assert.Equal(t,
		[]string{"A", "B", "C", "D", "E", "F", "G"},
		names(scale.Minor(theory.Natural(theory.A))))
	assert.Equal(t,
		[]string{"Eb", "F", "Gb", "Ab", "Bb", "B", "Db"},
		names(scale.Notes(theory.Flat(theory.E), scale.Aeolian)))
}

func TestModePatternsShareDegreeCount(t *testing.T) {
	for _, m := range scale.Modes() {
		got := scale.Intervals(m)
		assert.NotEmpty(t, got, "%s has a pattern", m)
		assert.Equal(t, theory.Unison, got[0], "%s starts on the root", m)
	}
}

func TestPitchesWrap(t *testing.T) {
	// A major crosses the octave boundary: degrees above G# wrap to low classes
	got := scale.Pitches(theory.PitchA, scale.Ionian)
	want := []theory.Pitch{
		theory.PitchA, theory.PitchB, theory.PitchCSharp, theory.PitchD,
		theory.PitchE, theory.PitchFSharp, theory.PitchGSharp,
	}
	assert.Equal(t, want, got)
}

func TestContains(t *testing.T) {
	assert.True(t, scale.Contains(theory.PitchC, scale.Ionian, theory.PitchG))
	assert.False(t, scale.Contains(theory.PitchC, scale.Ionian, theory.PitchFSharp))
}

func ExampleMajor() {
	for _, n := range scale.Major(theory.Natural(theory.D)) {
		fmt.Print(n, " ")
	}
	// Output: D E F# G A B C#
}
