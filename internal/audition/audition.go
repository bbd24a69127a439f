// Package audition plays rendered sample buffers through the default
// audio device, so a profile can be checked by ear before a full library
// is generated onto the SD card.
package audition

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// Player plays float sample buffers through the system audio device.
type Player struct {
	context    *oto.Context
	sampleRate int
	channels   int
}

var (
	globalPlayer *Player
	initOnce     sync.Once
	initErr      error
)

// GetPlayer returns the global player instance. This is a singleton since
// an oto context can only be created once per process; the first call
// fixes the sample rate and channel count.
func GetPlayer(sampleRate, channels int) (*Player, error) {
	initOnce.Do(func() {
		// 2 bytes per sample: 16-bit signed PCM.
		ctx, ready, err := oto.NewContext(sampleRate, channels, 2)
		if err != nil {
			initErr = err
			return
		}
		<-ready

		globalPlayer = &Player{
			context:    ctx,
			sampleRate: sampleRate,
			channels:   channels,
		}
	})
	if initErr != nil {
		return nil, fmt.Errorf("open audio device: %w", initErr)
	}
	if globalPlayer.sampleRate != sampleRate || globalPlayer.channels != channels {
		return nil, fmt.Errorf("audio device already open at %d Hz/%d ch",
			globalPlayer.sampleRate, globalPlayer.channels)
	}
	return globalPlayer, nil
}

// Play converts a mono float buffer to 16-bit PCM (duplicated across
// channels if the device is stereo) and blocks until playback finishes.
func (p *Player) Play(samples []float64) error {
	player := p.context.NewPlayer(newPCMReader(PCMBytes(samples, p.channels)))
	defer player.Close()

	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

// PCMBytes converts float samples in [-1, 1] to interleaved little-endian
// 16-bit PCM, duplicating the mono buffer across the given channel count.
func PCMBytes(samples []float64, channels int) []byte {
	data := make([]byte, len(samples)*channels*2)
	o := 0
	for _, s := range samples {
		if s > 1.0 {
			s = 1.0
		} else if s < -1.0 {
			s = -1.0
		}
		v := uint16(int16(s * 32767))
		for ch := 0; ch < channels; ch++ {
			data[o] = byte(v)
			data[o+1] = byte(v >> 8)
			o += 2
		}
	}
	return data
}

// pcmReader implements io.Reader over a raw PCM byte buffer.
type pcmReader struct {
	data   []byte
	offset int
}

func newPCMReader(data []byte) *pcmReader {
	return &pcmReader{data: data}
}

// Read implements io.Reader.
func (r *pcmReader) Read(p []byte) (n int, err error) {
	if r.offset >= len(r.data) {
		return 0, io.EOF
	}
	n = copy(p, r.data[r.offset:])
	r.offset += n
	return n, nil
}
