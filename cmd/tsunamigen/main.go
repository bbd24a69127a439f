// Command tsunamigen generates a bank-aware sample library for the Tsunami
// Super WAV Trigger: 4 banks x 128 MIDI notes of sine, triangle, sawtooth,
// and square waves, named by the device's track-number convention.
//
// Run with no arguments to generate the canonical 512-file library into
// ./samples_folder. A YAML profile can override sample rate, duration,
// gain, playback suffix, channel layout, and bank order.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"github.com/patchcord/tsunamigen/internal/audition"
	"github.com/patchcord/tsunamigen/internal/bank"
	"github.com/patchcord/tsunamigen/internal/config"
	"github.com/patchcord/tsunamigen/internal/pitch"
	"github.com/patchcord/tsunamigen/internal/synth"
	"github.com/patchcord/tsunamigen/internal/tui"
)

func main() {
	configPath := flag.String("config", "tsunamigen.yaml", "path to the generation profile (YAML)")
	outDir := flag.String("out", "", "override the profile's output directory")
	initProfile := flag.Bool("init", false, "write a starter profile to -config and exit")
	auditionNote := flag.Int("audition", -1, "preview a MIDI note (0-127) on bank 0 instead of generating")
	watch := flag.Bool("watch", false, "regenerate whenever the profile changes")
	quiet := flag.Bool("quiet", false, "plain line output even on a terminal")
	flag.Parse()

	if err := run(*configPath, *outDir, *initProfile, *auditionNote, *watch, *quiet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, outDir string, initProfile bool, auditionNote int, watch, quiet bool) error {
	if initProfile {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("profile already exists at %s", configPath)
		}
		if err := config.Save(configPath, config.Default()); err != nil {
			return fmt.Errorf("write starter profile: %w", err)
		}
		fmt.Printf("Wrote starter profile to %s\n", configPath)
		return nil
	}

	profile, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outDir != "" {
		profile.Output = outDir
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	if auditionNote >= 0 {
		return auditionRun(profile, auditionNote)
	}

	if watch {
		return watchRun(configPath, profile)
	}

	if !quiet && term.IsTerminal(os.Stdout.Fd()) {
		return dashboardRun(profile)
	}
	return plainRun(profile)
}

// dashboardRun generates with the interactive progress dashboard.
func dashboardRun(profile *config.Profile) error {
	app, err := tui.NewApp(profile)
	if err != nil {
		return err
	}

	model, err := tea.NewProgram(app).Run()
	if err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	if a, ok := model.(*tui.App); ok && a.Err() != nil {
		return a.Err()
	}
	return nil
}

// plainRun generates with one line of output per bank, matching
// non-interactive use (pipes, CI).
func plainRun(profile *config.Profile) error {
	gen, err := bank.New(profile)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range gen.Events() {
			switch ev.Type {
			case bank.EventBankStart:
				fmt.Printf("Generating bank %d - %s...\n", ev.Bank.Index, ev.Bank.Waveform)
			case bank.EventError:
				// The run loop reports the error; nothing to print here.
			}
		}
	}()

	res, err := gen.Run(context.Background())
	<-done
	if err != nil {
		return err
	}

	fmt.Println(tui.RenderSummary(res, profile))
	return nil
}

// watchRun generates once, then regenerates every time the profile file
// changes. Always plain output: watch mode exists for tweak-listen loops
// driven from an editor.
func watchRun(configPath string, profile *config.Profile) error {
	if err := plainRun(profile); err != nil {
		return err
	}

	watcher, err := config.NewWatcher(configPath)
	if err != nil {
		return fmt.Errorf("watch %s: %w", configPath, err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		return fmt.Errorf("watch %s: %w", configPath, err)
	}
	fmt.Printf("Watching %s for changes (ctrl-c to stop)\n", configPath)

	for ev := range watcher.Events() {
		if ev.Error != nil {
			fmt.Fprintf(os.Stderr, "Profile error: %v\n", ev.Error)
			continue
		}
		fmt.Printf("Profile changed, regenerating...\n")
		if err := plainRun(ev.Profile); err != nil {
			fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
		}
	}
	return nil
}

// auditionRun renders one note from the first bank with the active profile
// and plays it through the default audio device.
func auditionRun(profile *config.Profile, note int) error {
	if note > 127 {
		return fmt.Errorf("MIDI note %d out of range 0-127", note)
	}

	waveforms, err := profile.Waveforms()
	if err != nil {
		return err
	}
	w := waveforms[0]

	buf := synth.Render(w, pitch.Frequency(note), profile.SampleRate, profile.Duration)
	env := synth.FadeEnvelope(len(buf), profile.FadeFraction)
	synth.ApplyEnvelope(buf, env)
	synth.ApplyGain(buf, profile.MasterGain)

	player, err := audition.GetPlayer(profile.SampleRate, profile.Channels())
	if err != nil {
		return err
	}

	fmt.Printf("Auditioning %s %s (%.2f Hz)\n", w.Label(), pitch.Name(note), pitch.Frequency(note))
	return player.Play(buf)
}
