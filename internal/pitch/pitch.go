// Package pitch maps MIDI note numbers to frequencies and note names.
// MIDI note 69 is A4 at 440 Hz; MIDI note 60 is C4 (middle C).
package pitch

import (
	"fmt"
	"math"
)

// noteNames are the twelve pitch classes in chromatic order starting at C.
var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Frequency returns the equal-tempered frequency in Hz for a MIDI note,
// referenced to A4 = 440 Hz at note 69.
func Frequency(note int) float64 {
	return 440.0 * math.Pow(2.0, float64(note-69)/12.0)
}

// Name returns the conventional note name for a MIDI note, e.g. Name(60)
// is "C4" and Name(0) is "C-1".
func Name(note int) string {
	return fmt.Sprintf("%s%d", noteNames[note%12], note/12-1)
}
