// Package config defines the generation profile: every tunable that the
// sample generator reads, loaded from an optional YAML file with the
// Tsunami library defaults filled in.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/patchcord/tsunamigen/internal/synth"
)

// NotesPerBank is the number of tracks in one bank, one per MIDI note.
const NotesPerBank = 128

// suffixPattern is the Tsunami playback code: _S (single-shot) or _L
// (looped), followed by the output number 1-8.
var suffixPattern = regexp.MustCompile(`^_[SL][1-8]$`)

// Profile holds the immutable parameters for one generation run.
type Profile struct {
	Output         string   `yaml:"output"`
	SampleRate     int      `yaml:"sample_rate"`
	Duration       float64  `yaml:"duration"`
	MasterGain     float64  `yaml:"master_gain"`
	FadeFraction   float64  `yaml:"fade_fraction"`
	PlaybackSuffix string   `yaml:"playback_suffix"`
	Stereo         bool     `yaml:"stereo"`
	Banks          []string `yaml:"banks"`
}

// Default returns the canonical Tsunami library profile: 512 mono
// one-second samples at 44.1 kHz, -10.5 dBFS, single-shot on output 1.
func Default() *Profile {
	return &Profile{
		Output:         "samples_folder",
		SampleRate:     44100,
		Duration:       1.0,
		MasterGain:     0.3,
		FadeFraction:   0.01,
		PlaybackSuffix: "_S1",
		Stereo:         false,
		Banks:          []string{"sine", "triangle", "sawtooth", "square"},
	}
}

// Load reads a profile from the given YAML file. A missing file yields the
// default profile; keys absent from the file keep their defaults.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}

// Save writes the profile to the given YAML file, creating the parent
// directory if needed.
func Save(path string, p *Profile) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the profile for values the generator cannot honor.
func (p *Profile) Validate() error {
	if p.Output == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", p.SampleRate)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", p.Duration)
	}
	if p.MasterGain <= 0 || p.MasterGain > 1 {
		return fmt.Errorf("master gain must be in (0, 1], got %v", p.MasterGain)
	}
	if p.FadeFraction < 0 || p.FadeFraction >= 0.5 {
		return fmt.Errorf("fade fraction must be in [0, 0.5), got %v", p.FadeFraction)
	}
	if !suffixPattern.MatchString(p.PlaybackSuffix) {
		return fmt.Errorf("playback suffix %q does not match _[SL][1-8]", p.PlaybackSuffix)
	}
	if len(p.Banks) == 0 {
		return fmt.Errorf("at least one bank is required")
	}
	for i, name := range p.Banks {
		if _, err := synth.ParseWaveform(name); err != nil {
			return fmt.Errorf("bank %d: %w", i, err)
		}
	}
	return nil
}

// Waveforms parses the bank list into waveform values, in bank order.
func (p *Profile) Waveforms() ([]synth.Waveform, error) {
	out := make([]synth.Waveform, len(p.Banks))
	for i, name := range p.Banks {
		w, err := synth.ParseWaveform(name)
		if err != nil {
			return nil, fmt.Errorf("bank %d: %w", i, err)
		}
		out[i] = w
	}
	return out, nil
}

// Channels returns the output channel count: 1 for mono, 2 when the
// stereo-duplication variant is enabled.
func (p *Profile) Channels() int {
	if p.Stereo {
		return 2
	}
	return 1
}

// SamplesPerFile returns the number of sample frames in one generated file.
func (p *Profile) SamplesPerFile() int {
	return int(float64(p.SampleRate) * p.Duration)
}

// TotalFiles returns the number of files a full run will produce.
func (p *Profile) TotalFiles() int {
	return len(p.Banks) * NotesPerBank
}
