package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/patchcord/tsunamigen/internal/bank"
	"github.com/patchcord/tsunamigen/internal/config"
)

// AppState represents the current state of the generation run.
type AppState int

const (
	StateRunning AppState = iota
	StateCancelling
	StateComplete
	StateError
)

func (s AppState) String() string {
	switch s {
	case StateRunning:
		return "Generating"
	case StateCancelling:
		return "Cancelling"
	case StateComplete:
		return "Complete"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// GenEventMsg wraps a generator progress event for the Bubble Tea model.
// Closed is set when the event channel has been closed.
type GenEventMsg struct {
	Event  bank.Event
	Closed bool
}

// GenFinishedMsg is sent when the generator run returns.
type GenFinishedMsg struct {
	Result *bank.Result
	Err    error
}

type runOutcome struct {
	result *bank.Result
	err    error
}

// App is the Bubble Tea model for an interactive generation run.
type App struct {
	profile *config.Profile
	gen     *bank.Generator
	cancel  context.CancelFunc
	outcome chan runOutcome

	state       AppState
	written     int
	total       int
	perBank     []int
	currentBank int
	currentFile string
	startTime   time.Time
	width       int
	err         error
	result      *bank.Result
}

// NewApp prepares a model that will run the given profile.
func NewApp(profile *config.Profile) (*App, error) {
	gen, err := bank.New(profile)
	if err != nil {
		return nil, err
	}

	return &App{
		profile: profile,
		gen:     gen,
		outcome: make(chan runOutcome, 1),
		state:   StateRunning,
		total:   profile.TotalFiles(),
		perBank: make([]int, len(profile.Banks)),
		width:   80,
	}, nil
}

// Init starts the generator in the background and begins listening for its
// events.
func (a *App) Init() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.startTime = time.Now()

	go func() {
		res, err := a.gen.Run(ctx)
		a.outcome <- runOutcome{result: res, err: err}
	}()

	return tea.Batch(a.listenForEvents(), a.waitForFinish())
}

// listenForEvents returns a command that delivers the next generator event.
func (a *App) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-a.gen.Events()
		return GenEventMsg{Event: ev, Closed: !ok}
	}
}

// waitForFinish returns a command that delivers the run outcome.
func (a *App) waitForFinish() tea.Cmd {
	return func() tea.Msg {
		o := <-a.outcome
		return GenFinishedMsg{Result: o.result, Err: o.err}
	}
}

// Update handles messages and updates the model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if a.state == StateRunning && a.cancel != nil {
				a.cancel()
				a.state = StateCancelling
			}
			return a, nil
		}
		return a, nil

	case GenEventMsg:
		if msg.Closed {
			// Run is over; wait for the outcome message.
			return a, nil
		}
		a.applyEvent(msg.Event)
		return a, a.listenForEvents()

	case GenFinishedMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, context.Canceled) {
				// Treated as an error state with a friendlier message.
				a.err = errors.New("cancelled")
			} else {
				a.err = msg.Err
			}
			a.state = StateError
		} else {
			a.state = StateComplete
			a.result = msg.Result
		}
		return a, tea.Quit
	}

	return a, nil
}

// Err returns the error that ended the run, if any.
func (a *App) Err() error {
	return a.err
}

// applyEvent folds one generator event into the model.
func (a *App) applyEvent(ev bank.Event) {
	switch ev.Type {
	case bank.EventBankStart:
		a.currentBank = ev.Bank.Index
	case bank.EventFileWritten:
		a.written = ev.Written
		a.currentBank = ev.Bank.Index
		a.currentFile = ev.Filename
		if ev.Bank.Index < len(a.perBank) {
			a.perBank[ev.Bank.Index]++
		}
	case bank.EventRunDone:
		a.written = ev.Written
	}
}
