package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NoteCompose/staff/chord"
	"github.com/NoteCompose/staff/config"
	"github.com/NoteCompose/staff/debug"
	"github.com/NoteCompose/staff/midi"
	"github.com/NoteCompose/staff/scale"
	"github.com/NoteCompose/staff/theme"
	"github.com/NoteCompose/staff/theory"
)

// ordinals for the degree readout
var ordinals = []string{"1st", "2nd", "3rd", "4th", "5th", "6th", "7th"}

type Model struct {
	Cfg    *config.Config
	Theme  *theme.Theme
	Player *midi.Player // nil when no MIDI port is available

	tonic    theory.Pitch
	mode     int // index into scale.Modes()
	quality  int // index into chord.Qualities()
	degree   int // selected scale degree, 0-based
	octave   int
	spelling config.Spelling

	transposing bool
	target      theory.Pitch

	status   string
	quitting bool
}

// playedMsg reports a finished (or failed) MIDI playback command.
type playedMsg struct {
	what string
	err  error
}

func NewModel(cfg *config.Config, player *midi.Player, th *theme.Theme) Model {
	m := Model{
		Cfg:      cfg,
		Theme:    th,
		Player:   player,
		tonic:    theory.NewPitch(cfg.UI.Tonic),
		mode:     cfg.UI.Mode,
		quality:  cfg.UI.Quality,
		octave:   cfg.UI.Octave,
		spelling: cfg.UI.Spelling,
	}
	if m.mode < 0 || m.mode >= len(scale.Modes()) {
		m.mode = 0
	}
	if m.quality < 0 || m.quality >= len(chord.Qualities()) {
		m.quality = 0
	}
	if m.spelling != config.SpellingFlat {
		m.spelling = config.SpellingSharp
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// spell renders a pitch class with the current spelling preference.
func (m Model) spell(p theory.Pitch) theory.Note {
	if m.spelling == config.SpellingFlat {
		return theory.NoteFromFlat(p)
	}
	return theory.NoteFromSharp(p)
}

func (m Model) currentMode() scale.Mode {
	return scale.Modes()[m.mode]
}

func (m Model) currentQuality() chord.Quality {
	return chord.Qualities()[m.quality]
}

// degreePitch is the pitch class of the selected scale degree.
func (m Model) degreePitch() theory.Pitch {
	pitches := scale.Pitches(m.tonic, m.currentMode())
	return pitches[m.degree%len(pitches)]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg.String())

	case playedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("midi error: %v", msg.err)
			debug.Log("tui", "playback failed: %v", msg.err)
		} else {
			m.status = msg.what
		}
	}
	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "ctrl+c":
		m.quitting = true
		m.saveUI()
		return m, tea.Quit

	case "h", "left":
		if m.transposing {
			m.target = m.target.Add(-1)
		} else {
			m.tonic = m.tonic.Add(-1)
		}

	case "l", "right":
		if m.transposing {
			m.target = m.target.Add(1)
		} else {
			m.tonic = m.tonic.Add(1)
		}

	case "j", "down":
		degrees := len(scale.Pitches(m.tonic, m.currentMode()))
		m.degree = (m.degree + degrees - 1) % degrees

	case "k", "up":
		degrees := len(scale.Pitches(m.tonic, m.currentMode()))
		m.degree = (m.degree + 1) % degrees

	case "s":
		m.spelling = config.SpellingSharp

	case "f":
		m.spelling = config.SpellingFlat

	case "m":
		m.mode = (m.mode + 1) % len(scale.Modes())
		m.degree = 0

	case "M":
		m.mode = (m.mode + len(scale.Modes()) - 1) % len(scale.Modes())
		m.degree = 0

	case "c":
		m.quality = (m.quality + 1) % len(chord.Qualities())

	case "C":
		m.quality = (m.quality + len(chord.Qualities()) - 1) % len(chord.Qualities())

	case "[":
		if m.octave > 0 {
			m.octave--
		}

	case "]":
		if m.octave < 8 {
			m.octave++
		}

	case "t":
		m.transposing = !m.transposing
		m.target = m.tonic

	case "enter":
		if m.transposing {
			// move the selected degree with the key, then adopt the new tonic
			moved := theory.Transpose(m.tonic, m.degreePitch(), m.target)
			debug.Log("tui", "transpose %s -> %s, degree %s -> %s",
				m.spell(m.tonic), m.spell(m.target), m.spell(m.degreePitch()), m.spell(moved))
			m.tonic = m.target
			m.transposing = false
			m.status = fmt.Sprintf("transposed to %s", m.spell(m.tonic))
		}

	case " ", "p":
		return m, m.playChord()

	case "n":
		return m, m.playDegree()
	}
	return m, nil
}

// playChord sounds the chord built on the selected degree.
func (m Model) playChord() tea.Cmd {
	if m.Player == nil {
		return func() tea.Msg {
			return playedMsg{err: fmt.Errorf("no MIDI output")}
		}
	}
	root := m.degreePitch()
	symbol := chord.Symbol(m.spell(root), m.currentQuality())
	notes, err := midi.Chord(chord.Pitches(root, m.currentQuality()), m.octave)
	if err != nil {
		return func() tea.Msg { return playedMsg{err: err} }
	}
	player := m.Player
	strum := time.Duration(m.Cfg.MIDI.StrumMs) * time.Millisecond
	hold := time.Duration(m.Cfg.MIDI.NoteMs) * time.Millisecond
	return func() tea.Msg {
		err := player.PlayChord(notes, strum, hold)
		return playedMsg{what: fmt.Sprintf("played %s", symbol), err: err}
	}
}

// playDegree sounds the selected scale degree as a single note.
func (m Model) playDegree() tea.Cmd {
	if m.Player == nil {
		return func() tea.Msg {
			return playedMsg{err: fmt.Errorf("no MIDI output")}
		}
	}
	note, err := midi.NewNote(m.spell(m.degreePitch()), m.octave)
	if err != nil {
		return func() tea.Msg { return playedMsg{err: err} }
	}
	player := m.Player
	hold := time.Duration(m.Cfg.MIDI.NoteMs) * time.Millisecond
	return func() tea.Msg {
		err := player.PlayNote(note, hold)
		return playedMsg{what: fmt.Sprintf("played %s", note), err: err}
	}
}

func (m *Model) saveUI() {
	m.Cfg.UI.Tonic = int(m.tonic)
	m.Cfg.UI.Mode = m.mode
	m.Cfg.UI.Quality = m.quality
	m.Cfg.UI.Octave = m.octave
	m.Cfg.UI.Spelling = m.spelling
}

// keyboard renders one octave of pitch classes, colored by role, with a
// marker row underneath showing tonic, chord tones and scale members.
func (m Model) keyboard() string {
	scaleRoot := m.tonic
	if m.transposing {
		scaleRoot = m.target
	}
	chordRoot := m.degreePitch()
	sym := m.Theme.Symbols

	var cells, markers []string
	for p := 0; p < 12; p++ {
		pitch := theory.Pitch(p)
		label := fmt.Sprintf(" %-2s", m.spell(pitch))

		var style lipgloss.Style
		marker := sym.Off
		switch {
		case pitch == scaleRoot:
			style = lipgloss.NewStyle().Foreground(m.Theme.BG()).Background(m.Theme.Root()).Bold(true)
			marker = sym.Root
		case chord.Contains(chordRoot, m.currentQuality(), pitch):
			style = lipgloss.NewStyle().Foreground(m.Theme.BG()).Background(m.Theme.Chord())
			marker = sym.Chord
		case scale.Contains(scaleRoot, m.currentMode(), pitch):
			style = lipgloss.NewStyle().Foreground(m.Theme.Scale())
			marker = sym.Scale
		case m.spell(pitch).Accidental == theory.AccidentalNatural:
			style = lipgloss.NewStyle().Foreground(m.Theme.WhiteKey())
			marker = sym.WhiteKey
		default:
			style = lipgloss.NewStyle().Foreground(m.Theme.BlackKey())
			marker = sym.BlackKey
		}
		cells = append(cells, style.Render(label))
		markers = append(markers, style.Render(fmt.Sprintf(" %c ", marker)))
	}
	return strings.Join(cells, " ") + "\n" + strings.Join(markers, " ")
}

func noteNames(notes []theory.Note) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Root()).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	valueStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	tonicNote := m.spell(m.tonic)
	degreeNote := m.spell(m.degreePitch())

	port := "none"
	if m.Player != nil {
		port = m.Player.Port()
	}

	header := headerStyle.Render(fmt.Sprintf("staff  %s %s  oct:%d  midi:%s",
		tonicNote, m.currentMode(), m.octave, port))

	scaleNotes := scale.Notes(tonicNote, m.currentMode())
	chordNotes := chord.Notes(degreeNote, m.currentQuality())

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(m.keyboard())
	out.WriteString("\n\n")

	out.WriteString(labelStyle.Render("scale  "))
	out.WriteString(valueStyle.Render(noteNames(scaleNotes)))
	out.WriteString("\n")

	degreeName := fmt.Sprintf("%d", m.degree+1)
	if m.degree < len(ordinals) {
		degreeName = ordinals[m.degree]
	}
	out.WriteString(labelStyle.Render("degree "))
	out.WriteString(valueStyle.Render(fmt.Sprintf("%s = %s", degreeName, degreeNote)))
	out.WriteString("\n")

	out.WriteString(labelStyle.Render("chord  "))
	out.WriteString(valueStyle.Render(fmt.Sprintf("%s: %s",
		chord.Symbol(degreeNote, m.currentQuality()), noteNames(chordNotes))))
	out.WriteString("\n")

	if m.transposing {
		out.WriteString(labelStyle.Render("transpose to "))
		out.WriteString(valueStyle.Render(m.spell(m.target).String()))
		out.WriteString(dimStyle.Render("  (h/l to choose, enter to apply, t to cancel)"))
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(dimStyle.Render("h/l:tonic  j/k:degree  m:mode  c:chord  s/f:spelling  [/]:octave  t:transpose  space:play  n:note  q:quit"))

	if m.status != "" {
		out.WriteString("\n")
		out.WriteString(dimStyle.Render(m.status))
	}

	return out.String()
}
