// Package bank models the Tsunami bank layout and runs the generation
// pipeline that renders every (bank, MIDI note) pair to a WAV file.
//
// The trigger device selects files by track number: bank b covers tracks
// b*128+1 through b*128+128, with MIDI note n inside the bank mapping to
// track b*128+n+1. Filenames carry the track number, a playback code, the
// waveform label, and the note name, e.g. "0061_S1 Sine_C4.wav".
package bank

import (
	"fmt"

	"github.com/patchcord/tsunamigen/internal/config"
	"github.com/patchcord/tsunamigen/internal/synth"
)

// Bank is one group of 128 tracks sharing a waveform kind.
type Bank struct {
	Index    int
	Waveform synth.Waveform
}

// Layout builds the ordered bank list for a set of waveforms.
func Layout(waveforms []synth.Waveform) []Bank {
	banks := make([]Bank, len(waveforms))
	for i, w := range waveforms {
		banks[i] = Bank{Index: i, Waveform: w}
	}
	return banks
}

// TrackNumber maps a bank index and MIDI note to the 1-based global track
// number. The mapping is a bijection: every (bank, note) pair gets a
// distinct track, and tracks increase with note inside a bank.
func TrackNumber(bankIndex, note int) int {
	return bankIndex*config.NotesPerBank + note + 1
}

// Filename formats the Tsunami filename for a track:
// <4-digit track><playback suffix> <Label>_<NoteName>.wav.
func Filename(track int, suffix, label, noteName string) string {
	return fmt.Sprintf("%04d%s %s_%s.wav", track, suffix, label, noteName)
}
