package theory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NoteCompose/staff/theory"
)

func TestIntervalArithmeticIsPlainInts(t *testing.T) {
	// no normalization until combined with a Pitch
	i := theory.MajorSeventh + theory.PerfectFifth
	assert.Equal(t, 18, i.Semitones())
	assert.Equal(t, theory.PitchFSharp, theory.PitchC.Add(i))

	down := theory.Unison - theory.Octave
	assert.Equal(t, -12, down.Semitones())
	assert.Equal(t, theory.PitchA, theory.PitchA.Add(down))
}

func TestTranspose(t *testing.T) {
	// the 2nd degree of C, moved to the key of D, is E
	assert.Equal(t, theory.PitchE, theory.Transpose(theory.PitchC, theory.PitchD, theory.PitchD))

	// degree relationships survive moving the tonic anywhere
	cases := []struct {
		key, note, to, want theory.Pitch
	}{
		{theory.PitchC, theory.PitchC, theory.PitchG, theory.PitchG},     // tonic stays tonic
		{theory.PitchC, theory.PitchE, theory.PitchF, theory.PitchA},     // major 3rd of F
		{theory.PitchG, theory.PitchB, theory.PitchC, theory.PitchE},     // major 3rd of C
		{theory.PitchD, theory.PitchC, theory.PitchE, theory.PitchD},     // m7 above the tonic, non-negative convention
		{theory.PitchA, theory.PitchE, theory.PitchC, theory.PitchG},     // 5th of C
		{theory.PitchB, theory.PitchC, theory.PitchC, theory.PitchDFlat}, // wraps at the octave boundary
	}
	for _, c := range cases {
		got := theory.Transpose(c.key, c.note, c.to)
		assert.Equal(t, c.want, got, "Transpose(%s, %s, %s)", c.key, c.note, c.to)
	}
}
