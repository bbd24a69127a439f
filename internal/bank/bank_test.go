package bank

import (
	"testing"

	"github.com/patchcord/tsunamigen/internal/config"
	"github.com/patchcord/tsunamigen/internal/pitch"
	"github.com/patchcord/tsunamigen/internal/synth"
)

func TestTrackNumber(t *testing.T) {
	cases := []struct {
		bank, note, want int
	}{
		{0, 0, 1},
		{0, 60, 61},
		{0, 127, 128},
		{1, 0, 129},
		{2, 0, 257},
		{3, 127, 512},
	}
	for _, c := range cases {
		if got := TrackNumber(c.bank, c.note); got != c.want {
			t.Errorf("TrackNumber(%d, %d) = %d, want %d", c.bank, c.note, got, c.want)
		}
	}
}

func TestTrackNumberBijection(t *testing.T) {
	seen := make(map[int]bool)
	for b := 0; b < 4; b++ {
		prev := 0
		for n := 0; n < config.NotesPerBank; n++ {
			track := TrackNumber(b, n)
			if track < 1 || track > 512 {
				t.Fatalf("track %d out of range 1..512", track)
			}
			if seen[track] {
				t.Fatalf("track %d assigned twice", track)
			}
			seen[track] = true
			if track <= prev {
				t.Fatalf("track numbers not increasing within bank %d", b)
			}
			prev = track
		}
	}
	if len(seen) != 512 {
		t.Errorf("expected 512 distinct tracks, got %d", len(seen))
	}
}

func TestFilename(t *testing.T) {
	cases := []struct {
		track    int
		suffix   string
		label    string
		noteName string
		want     string
	}{
		{61, "_S1", "Sine", "C4", "0061_S1 Sine_C4.wav"},
		{1, "_S1", "Sine", "C-1", "0001_S1 Sine_C-1.wav"},
		{512, "_L2", "Square", "G9", "0512_L2 Square_G9.wav"},
	}
	for _, c := range cases {
		got := Filename(c.track, c.suffix, c.label, c.noteName)
		if got != c.want {
			t.Errorf("Filename(%d, %q, %q, %q) = %q, want %q",
				c.track, c.suffix, c.label, c.noteName, got, c.want)
		}
	}
}

func TestLayout(t *testing.T) {
	banks := Layout([]synth.Waveform{synth.Sine, synth.Triangle, synth.Sawtooth, synth.Square})
	if len(banks) != 4 {
		t.Fatalf("expected 4 banks, got %d", len(banks))
	}
	for i, b := range banks {
		if b.Index != i {
			t.Errorf("bank %d has index %d", i, b.Index)
		}
	}
	if banks[2].Waveform != synth.Sawtooth {
		t.Errorf("bank 2 waveform = %v, want sawtooth", banks[2].Waveform)
	}
}

func TestAllFilenamesDistinct(t *testing.T) {
	p := config.Default()
	waveforms, err := p.Waveforms()
	if err != nil {
		t.Fatal(err)
	}

	names := make(map[string]bool)
	for _, b := range Layout(waveforms) {
		for n := 0; n < config.NotesPerBank; n++ {
			name := Filename(TrackNumber(b.Index, n), p.PlaybackSuffix, b.Waveform.Label(), pitch.Name(n))
			if names[name] {
				t.Fatalf("duplicate filename %q", name)
			}
			names[name] = true
		}
	}
	if len(names) != 512 {
		t.Errorf("expected 512 distinct filenames, got %d", len(names))
	}
}
