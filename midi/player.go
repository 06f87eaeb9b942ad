package midi

import (
	"fmt"
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"github.com/NoteCompose/staff/debug"
)

// portScanTimeout guards against a hung MIDI backend (CoreMIDI can hang).
const portScanTimeout = 3 * time.Second

// OutPorts lists the available MIDI output ports, with a timeout guard.
func OutPorts() ([]drivers.Out, error) {
	ch := make(chan []drivers.Out, 1)
	go func() {
		ch <- gomidi.GetOutPorts()
	}()

	select {
	case ports := <-ch:
		return ports, nil
	case <-time.After(portScanTimeout):
		// User needs to run: sudo killall coreaudiod midiserver
		return nil, fmt.Errorf("midi: port scan timed out")
	}
}

// FindOutPort returns the first output port whose name contains name
// (case-insensitive). An empty name matches the first port.
func FindOutPort(name string) (drivers.Out, error) {
	ports, err := OutPorts()
	if err != nil {
		return nil, err
	}
	if len(ports) == 0 {
		return nil, fmt.Errorf("midi: no output ports")
	}
	if name == "" {
		return ports[0], nil
	}
	want := strings.ToLower(name)
	for _, p := range ports {
		if strings.Contains(strings.ToLower(p.String()), want) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("midi: no output port matching %q", name)
}

// Player sounds notes and chords on a single MIDI output port.
type Player struct {
	port     drivers.Out
	send     func(gomidi.Message) error
	channel  uint8 // 0-15
	velocity uint8

	mu      sync.Mutex
	sounded map[Note]bool // notes currently on, for Close cleanup
}

// NewPlayer opens the named output port. channel is the MIDI channel 0-15.
func NewPlayer(portName string, channel, velocity uint8) (*Player, error) {
	port, err := FindOutPort(portName)
	if err != nil {
		return nil, err
	}
	send, err := gomidi.SendTo(port)
	if err != nil {
		return nil, err
	}
	debug.Log("midi", "opened output port %s", port.String())
	return &Player{
		port:     port,
		send:     send,
		channel:  channel,
		velocity: velocity,
		sounded:  make(map[Note]bool),
	}, nil
}

// Port returns the name of the open output port.
func (p *Player) Port() string {
	return p.port.String()
}

func (p *Player) noteOn(n Note) error {
	p.mu.Lock()
	p.sounded[n] = true
	p.mu.Unlock()
	return p.send(gomidi.NoteOn(p.channel, uint8(n), p.velocity))
}

func (p *Player) noteOff(n Note) error {
	p.mu.Lock()
	delete(p.sounded, n)
	p.mu.Unlock()
	return p.send(gomidi.NoteOff(p.channel, uint8(n)))
}

// PlayNote sounds a single note for the given duration, blocking.
func (p *Player) PlayNote(n Note, d time.Duration) error {
	if err := p.noteOn(n); err != nil {
		return err
	}
	time.Sleep(d)
	return p.noteOff(n)
}

// PlayChord sounds notes together for hold, strumming them strum apart.
// Blocks until the chord is released.
func (p *Player) PlayChord(notes []Note, strum, hold time.Duration) error {
	for i, n := range notes {
		if i > 0 && strum > 0 {
			time.Sleep(strum)
		}
		if err := p.noteOn(n); err != nil {
			return err
		}
	}
	time.Sleep(hold)
	for _, n := range notes {
		if err := p.noteOff(n); err != nil {
			return err
		}
	}
	return nil
}

// Close silences anything still sounding and releases the port.
func (p *Player) Close() error {
	p.mu.Lock()
	for n := range p.sounded {
		p.send(gomidi.NoteOff(p.channel, uint8(n)))
	}
	p.sounded = make(map[Note]bool)
	p.mu.Unlock()

	gomidi.CloseDriver()
	return nil
}
