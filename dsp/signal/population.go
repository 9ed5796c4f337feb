package signal

import (
	"fmt"

	"github.com/cwbudde/algo-pulse/dsp/core"
)

// EventKind identifies how a blind-test waveform was produced.
type EventKind int

const (
	EventSignal EventKind = iota
	EventBackground
	EventPileup
	numEventKinds
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case EventSignal:
		return "signal"
	case EventBackground:
		return "background"
	case EventPileup:
		return "pileup"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Label returns the ground truth of the kind. Pile-up is background.
func (k EventKind) Label() Label {
	if k == EventSignal {
		return LabelSignal
	}
	return LabelBackground
}

// Event is one waveform of a mixed population.
type Event struct {
	Kind     EventKind
	Waveform []float64
}

// Label returns the event's ground truth.
func (e Event) Label() Label {
	return e.Kind.Label()
}

// Population draws n events whose kind is chosen uniformly among signal,
// background and pile-up, each synthesized with Physics.BlindNoise. Kind
// and noise come from the same random stream, kind first.
func (g *Generator) Population(axis core.Axis, n int) ([]Event, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleCount, n)
	}
	noise := g.physics.BlindNoise
	events := make([]Event, 0, n)
	for i := 0; i < n; i++ {
		kind := EventKind(g.rng.IntN(int(numEventKinds)))

		var (
			w   []float64
			err error
		)
		switch kind {
		case EventSignal:
			w, err = g.SignalPulse(axis, noise)
		case EventBackground:
			w, err = g.BackgroundPulse(axis, noise)
		default:
			w, err = g.Pileup(axis, g.physics.Onset, noise)
		}
		if err != nil {
			return nil, fmt.Errorf("signal: population event %d (%s): %w", i, kind, err)
		}
		events = append(events, Event{Kind: kind, Waveform: w})
	}
	return events, nil
}
