package theory_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NoteCompose/staff/theory"
)

// Round-trip law: spelling a pitch class and converting back is identity,
// for both spelling tables, over all 12 classes.
func TestSpellingRoundTrip(t *testing.T) {
	for p := 0; p < 12; p++ {
		pitch := theory.Pitch(p)
		assert.Equal(t, pitch, theory.FromNote(theory.NoteFromSharp(pitch)), "sharp round trip %d", p)
		assert.Equal(t, pitch, theory.FromNote(theory.NoteFromFlat(pitch)), "flat round trip %d", p)
	}
}

func TestNoteFromSharpTable(t *testing.T) {
	want := []theory.Note{
		theory.Natural(theory.C),
		theory.Sharp(theory.C),
		theory.Natural(theory.D),
		theory.Sharp(theory.D),
		theory.Natural(theory.E),
		theory.Natural(theory.F),
		theory.Sharp(theory.F),
		theory.Natural(theory.G),
		theory.Sharp(theory.G),
		theory.Natural(theory.A),
		theory.Sharp(theory.A),
		theory.Natural(theory.B),
	}
	for p, n := range want {
		assert.Equal(t, n, theory.NoteFromSharp(theory.Pitch(p)))
	}
}

func TestNoteFromFlatTable(t *testing.T) {
	want := []theory.Note{
		theory.Natural(theory.C),
		theory.Flat(theory.D),
		theory.Natural(theory.D),
		theory.Flat(theory.E),
		theory.Natural(theory.E),
		theory.Natural(theory.F),
		theory.Flat(theory.G),
		theory.Natural(theory.G),
		theory.Flat(theory.A),
		theory.Natural(theory.A),
		theory.Flat(theory.B),
		theory.Natural(theory.B),
	}
	for p, n := range want {
		assert.Equal(t, n, theory.NoteFromFlat(theory.Pitch(p)))
	}
}

func allNotes() []theory.Note {
	accidentals := []theory.Accidental{
		theory.AccidentalDoubleFlat,
		theory.AccidentalFlat,
		theory.AccidentalNatural,
		theory.AccidentalSharp,
		theory.AccidentalDoubleSharp,
	}
	var notes []theory.Note
	for _, l := range theory.Letters() {
		for _, a := range accidentals {
			notes = append(notes, theory.NewNote(l, a))
		}
	}
	return notes
}

// Respelling preserves the pitch class and is idempotent, for every
// letter and accidental combination.
func TestRespellingLaws(t *testing.T) {
	for _, n := range allNotes() {
		sharp := n.IntoSharp()
		flat := n.IntoFlat()

		assert.Equal(t, theory.FromNote(n), theory.FromNote(sharp), "%s into sharp", n)
		assert.Equal(t, theory.FromNote(n), theory.FromNote(flat), "%s into flat", n)

		assert.Equal(t, sharp, sharp.IntoSharp(), "%s sharp idempotent", n)
		assert.Equal(t, flat, flat.IntoFlat(), "%s flat idempotent", n)
	}
}

func TestRespellingCases(t *testing.T) {
	assert.Equal(t, theory.Flat(theory.A), theory.Sharp(theory.G).IntoFlat())
	assert.Equal(t, theory.Natural(theory.E), theory.Flat(theory.F).IntoFlat())
	assert.Equal(t, theory.Sharp(theory.C), theory.Flat(theory.D).IntoSharp())
	// wraparound: B# is pitch class 0
	assert.Equal(t, theory.Natural(theory.C), theory.Sharp(theory.B).IntoSharp())
	assert.Equal(t, theory.Natural(theory.B), theory.Flat(theory.C).IntoFlat())
}

func TestIsEnharmonic(t *testing.T) {
	assert.True(t, theory.Flat(theory.D).IsEnharmonic(theory.Sharp(theory.C)))
	assert.True(t, theory.Sharp(theory.B).IsEnharmonic(theory.Natural(theory.C)))
	assert.False(t, theory.Natural(theory.C).IsEnharmonic(theory.Natural(theory.D)))

	for _, a := range allNotes() {
		assert.True(t, a.IsEnharmonic(a), "%s reflexive", a)
		for _, b := range allNotes() {
			assert.Equal(t, a.IsEnharmonic(b), b.IsEnharmonic(a), "%s/%s symmetric", a, b)
		}
	}
}

func TestNoteString(t *testing.T) {
	assert.Equal(t, "C#", theory.Sharp(theory.C).String())
	assert.Equal(t, "Bb", theory.Flat(theory.B).String())
	assert.Equal(t, "A", theory.Natural(theory.A).String())
	assert.Equal(t, "F##", theory.DoubleSharp(theory.F).String())
	assert.Equal(t, "Ebb", theory.DoubleFlat(theory.E).String())
}

func ExampleNote_IntoFlat() {
	fmt.Println(theory.Sharp(theory.G).IntoFlat())
	fmt.Println(theory.Flat(theory.F).IntoFlat())
	// Output:
	// Ab
	// E
}

func ExampleNote_IntoSharp() {
	fmt.Println(theory.Flat(theory.D).IntoSharp())
	fmt.Println(theory.Sharp(theory.B).IntoSharp())
	// Output:
	// C#
	// C
}
