package bank

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/patchcord/tsunamigen/internal/config"
	"github.com/patchcord/tsunamigen/internal/pitch"
	"github.com/patchcord/tsunamigen/internal/synth"
	"github.com/patchcord/tsunamigen/internal/wavfile"
)

// EventType identifies a progress event emitted during a run.
type EventType int

const (
	EventBankStart EventType = iota
	EventFileWritten
	EventBankDone
	EventRunDone
	EventError
)

// Event reports generation progress. Written and Total count files across
// the whole run, not just the current bank.
type Event struct {
	Type     EventType
	Bank     Bank
	Track    int
	Filename string
	Written  int
	Total    int
	Err      error
}

// Result summarizes a completed run.
type Result struct {
	FilesWritten int
	Banks        int
	OutputDir    string
	Elapsed      time.Duration
}

// Generator renders a full sample library from a profile. A Generator is
// single-use: create one per run.
type Generator struct {
	profile *config.Profile
	banks   []Bank
	events  chan Event
}

// New validates the profile and prepares a Generator for it.
func New(p *config.Profile) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	waveforms, err := p.Waveforms()
	if err != nil {
		return nil, err
	}
	return &Generator{
		profile: p,
		banks:   Layout(waveforms),
		events:  make(chan Event, 100),
	}, nil
}

// Banks returns the bank layout for this run.
func (g *Generator) Banks() []Bank {
	return g.banks
}

// Events returns the channel on which progress events are delivered. The
// channel is closed when Run returns.
func (g *Generator) Events() <-chan Event {
	return g.events
}

// Run generates every file in the library, strictly sequentially: each
// write completes before the next note is rendered. Cancelling the context
// stops the run between files. Any write failure aborts the run; the
// operation is idempotent, so a failed run is simply re-run from scratch.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	defer close(g.events)

	start := time.Now()

	if err := os.MkdirAll(g.profile.Output, 0o755); err != nil {
		err = fmt.Errorf("create output directory %s: %w", g.profile.Output, err)
		g.events <- Event{Type: EventError, Err: err}
		return nil, err
	}

	total := g.profile.TotalFiles()
	written := 0

	for _, b := range g.banks {
		g.events <- Event{Type: EventBankStart, Bank: b, Written: written, Total: total}

		for note := 0; note < config.NotesPerBank; note++ {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			name, err := g.writeNote(b, note)
			if err != nil {
				g.events <- Event{Type: EventError, Bank: b, Err: err}
				return nil, err
			}

			written++
			g.events <- Event{
				Type:     EventFileWritten,
				Bank:     b,
				Track:    TrackNumber(b.Index, note),
				Filename: name,
				Written:  written,
				Total:    total,
			}
		}

		g.events <- Event{Type: EventBankDone, Bank: b, Written: written, Total: total}
	}

	res := &Result{
		FilesWritten: written,
		Banks:        len(g.banks),
		OutputDir:    g.profile.Output,
		Elapsed:      time.Since(start),
	}
	g.events <- Event{Type: EventRunDone, Written: written, Total: total}
	return res, nil
}

// writeNote renders, shapes, and writes a single note, returning the
// filename it was written under.
func (g *Generator) writeNote(b Bank, note int) (string, error) {
	p := g.profile

	buf := synth.Render(b.Waveform, pitch.Frequency(note), p.SampleRate, p.Duration)
	env := synth.FadeEnvelope(len(buf), p.FadeFraction)
	synth.ApplyEnvelope(buf, env)
	synth.ApplyGain(buf, p.MasterGain)

	track := TrackNumber(b.Index, note)
	name := Filename(track, p.PlaybackSuffix, b.Waveform.Label(), pitch.Name(note))

	path := filepath.Join(p.Output, name)
	if err := wavfile.Write(path, buf, p.SampleRate, p.Channels()); err != nil {
		return "", err
	}
	return name, nil
}
