package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NoteCompose/staff/config"
	"github.com/NoteCompose/staff/debug"
	"github.com/NoteCompose/staff/midi"
	"github.com/NoteCompose/staff/theme"
	"github.com/NoteCompose/staff/tui"
)

func main() {
	debug.Enable()
	defer debug.Disable()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Load theme
	palette := theme.DefaultPalette()
	if cfg.Palette != "" {
		if p, err := theme.LoadGPL(cfg.Palette); err == nil {
			palette = p
		} else {
			debug.Log("main", "palette %s: %v", cfg.Palette, err)
		}
	}
	th := theme.New(palette)

	// Open MIDI output (optional - the explorer works without one)
	player, err := midi.NewPlayer(cfg.MIDI.PortName, cfg.MIDI.Channel, cfg.MIDI.Velocity)
	if err != nil {
		debug.Log("main", "no MIDI output: %v", err)
		player = nil
	} else {
		defer player.Close()
	}

	// Create and run TUI
	m := tui.NewModel(cfg, player, th)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Save(); err != nil {
		fmt.Printf("Error saving config: %v\n", err)
	}
}
