package main

import (
	"fmt"
	"os"
	"time"

	"github.com/NoteCompose/staff/chord"
	"github.com/NoteCompose/staff/midi"
	"github.com/NoteCompose/staff/theory"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "play":
		playChord()
	case "freq":
		printFrequencies()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI Test Scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list    - List all MIDI output ports")
	fmt.Println("  play    - Sound a C major chord on the first port")
	fmt.Println("  freq    - Print the frequency table for octave 4")
}

func listPorts() {
	fmt.Println("=== MIDI Output Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	ports, err := midi.OutPorts()
	if err != nil {
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
		return
	}
	if len(ports) == 0 {
		fmt.Println("  (none)")
		return
	}
	for i, p := range ports {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
}

func playChord() {
	player, err := midi.NewPlayer("", 0, 100)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer player.Close()

	root := theory.Natural(theory.C)
	notes, err := midi.Chord(chord.Pitches(theory.FromNote(root), chord.Major), 4)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Playing %s on %s...\n", chord.Symbol(root, chord.Major), player.Port())
	if err := player.PlayChord(notes, 200*time.Millisecond, 2*time.Second); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func printFrequencies() {
	fmt.Println("=== Octave 4 ===")
	for p := 0; p < 12; p++ {
		n := midi.MustNote(theory.NoteFromSharp(theory.Pitch(p)), 4)
		fmt.Printf("  %-4s %7.2f Hz\n", n, n.Frequency())
	}
}
