package timekeeper

import (
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
}

// TimeKeeper is the pomodoro countdown: work, then a short break, with a
// long break after every LongBreakInterval completed work rounds.
type TimeKeeper struct {
	mu            sync.Mutex
	config        model.TimerConfig
	options       Config
	state         State
	previousState State
	remaining     time.Duration
	rounds        int
	subscribers   []*subscriber
	stopCh        chan struct{}
	running       bool
	paused        bool
}

// New creates a TimeKeeper with the provided configuration.
func New(config model.TimerConfig, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	keeper := &TimeKeeper{
		config:        normalize(config),
		options:       options,
		state:         StateWork,
		previousState: StateWork,
		stopCh:        make(chan struct{}),
	}
	keeper.remaining = keeper.config.Work
	return keeper
}

// Subscribe registers a new observer channel.
// Slow observers never block the timer: state changes queue up for them and
// progress updates collapse into the latest one.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	sub := newSubscriber(buffer)
	keeper.mu.Lock()
	keeper.subscribers = append(keeper.subscribers, sub)
	keeper.mu.Unlock()
	return sub.ch
}

// Start launches the ticking loop with a fresh work phase.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	if keeper.running {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	keeper.paused = false
	keeper.state = StateWork
	keeper.previousState = StateWork
	keeper.remaining = keeper.config.Work
	keeper.emitLocked(keeper.stateEventLocked(StateWork, time.Now()))
	keeper.mu.Unlock()

	go keeper.run()
}

// Stop terminates the ticking loop and closes observers.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}
	close(keeper.stopCh)
	keeper.running = false
	subscribers := keeper.subscribers
	keeper.subscribers = nil
	keeper.mu.Unlock()

	for _, sub := range subscribers {
		sub.close()
	}
}

// Pause freezes the countdown.
func (keeper *TimeKeeper) Pause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.paused || !keeper.running {
		return
	}
	keeper.paused = true
	keeper.previousState = keeper.state
	keeper.state = StatePaused
	keeper.emitLocked(keeper.stateEventLocked(keeper.previousState, time.Now()))
}

// Resume continues a paused countdown.
func (keeper *TimeKeeper) Resume() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.paused {
		return
	}
	keeper.paused = false
	keeper.state = keeper.previousState
	keeper.emitLocked(keeper.stateEventLocked(StatePaused, time.Now()))
}

// TogglePause pauses a running countdown or resumes a paused one.
func (keeper *TimeKeeper) TogglePause() {
	keeper.mu.Lock()
	paused := keeper.paused
	keeper.mu.Unlock()
	if paused {
		keeper.Resume()
		return
	}
	keeper.Pause()
}

// UpdateConfig applies a new cycle. The current phase keeps its remaining time
// unless it exceeds the new phase length.
func (keeper *TimeKeeper) UpdateConfig(config model.TimerConfig) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.config = normalize(config)
	if total := keeper.phaseDurationLocked(keeper.activeStateLocked()); keeper.remaining > total {
		keeper.remaining = total
	}
}

// SkipBreak ends the current break and returns to work.
func (keeper *TimeKeeper) SkipBreak() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.activeStateLocked().IsBreak() {
		return
	}
	keeper.paused = false
	keeper.enterLocked(StateWork, time.Now())
}

// ForceBreak starts a short or long break immediately.
func (keeper *TimeKeeper) ForceBreak(state State) {
	if !state.IsBreak() {
		return
	}
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running {
		return
	}
	keeper.paused = false
	keeper.enterLocked(state, time.Now())
}

// Reset restarts the work phase and clears completed rounds.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.rounds = 0
	keeper.paused = false
	keeper.enterLocked(StateWork, time.Now())
}

// Snapshot returns the current state, remaining time and completed rounds.
func (keeper *TimeKeeper) Snapshot() (State, time.Duration, int) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state, keeper.remaining, keeper.rounds
}

func (keeper *TimeKeeper) run() {
	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-keeper.stopCh:
			return
		case tickTime := <-ticker.C:
			keeper.tick(tickTime)
		}
	}
}

func (keeper *TimeKeeper) tick(tickTime time.Time) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running || keeper.paused {
		return
	}

	keeper.remaining -= keeper.options.TickInterval
	if keeper.remaining > 0 {
		keeper.emitLocked(Event{
			Type:      EventProgress,
			State:     keeper.state,
			Remaining: keeper.remaining,
			Progress:  keeper.progressLocked(),
			Rounds:    keeper.rounds,
			At:        tickTime,
		})
		return
	}
	keeper.completePhaseLocked(tickTime)
}

func (keeper *TimeKeeper) completePhaseLocked(now time.Time) {
	if keeper.state != StateWork {
		keeper.enterLocked(StateWork, now)
		return
	}
	keeper.rounds++
	if keeper.rounds%keeper.config.LongBreakInterval == 0 {
		keeper.enterLocked(StateLongBreak, now)
		return
	}
	keeper.enterLocked(StateShortBreak, now)
}

func (keeper *TimeKeeper) enterLocked(state State, now time.Time) {
	previous := keeper.activeStateLocked()
	keeper.state = state
	keeper.previousState = state
	keeper.remaining = keeper.phaseDurationLocked(state)
	keeper.emitLocked(keeper.stateEventLocked(previous, now))
}

func (keeper *TimeKeeper) stateEventLocked(previous State, now time.Time) Event {
	return Event{
		Type:      EventStateChange,
		State:     keeper.state,
		Previous:  previous,
		Remaining: keeper.remaining,
		Progress:  keeper.progressLocked(),
		Rounds:    keeper.rounds,
		At:        now,
	}
}

// activeStateLocked is the running phase, looking through a pause.
func (keeper *TimeKeeper) activeStateLocked() State {
	if keeper.state == StatePaused {
		return keeper.previousState
	}
	return keeper.state
}

func (keeper *TimeKeeper) phaseDurationLocked(state State) time.Duration {
	switch state {
	case StateShortBreak:
		return keeper.config.ShortBreak
	case StateLongBreak:
		return keeper.config.LongBreak
	default:
		return keeper.config.Work
	}
}

func (keeper *TimeKeeper) progressLocked() float64 {
	total := keeper.phaseDurationLocked(keeper.activeStateLocked())
	if total <= 0 {
		return 1
	}
	progress := float64(total-keeper.remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, sub := range keeper.subscribers {
		sub.deliver(event)
	}
}

func normalize(config model.TimerConfig) model.TimerConfig {
	defaults := model.DefaultSettings().TimerConfig()
	if config.Work <= 0 {
		config.Work = defaults.Work
	}
	if config.ShortBreak <= 0 {
		config.ShortBreak = defaults.ShortBreak
	}
	if config.LongBreak <= 0 {
		config.LongBreak = defaults.LongBreak
	}
	if config.LongBreakInterval <= 0 {
		config.LongBreakInterval = defaults.LongBreakInterval
	}
	return config
}
