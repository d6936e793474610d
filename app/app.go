// Package app runs the widget: one goroutine owns all state and selects over
// terminal events, countdown ticks, the end-of-round grace timer and frames.
package app

import (
	"context"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/twentyfive/audio"
	"github.com/lixenwraith/twentyfive/constant"
	"github.com/lixenwraith/twentyfive/game"
	"github.com/lixenwraith/twentyfive/input"
	"github.com/lixenwraith/twentyfive/render"
	"github.com/lixenwraith/twentyfive/render/renderers"
)

// eventBufferSize bounds terminal events queued between frames
const eventBufferSize = 100

// Options configures an App
type Options struct {
	Mouse   bool
	AudioOn bool
	Keys    *input.KeyTable // nil means default bindings
}

// App owns the timer, the counter and their presentation
type App struct {
	screen       tcell.Screen
	clock        clockwork.Clock
	cues         audio.Cues
	router       *input.Router
	orchestrator *render.RenderOrchestrator
	opts         Options

	countdown *game.Countdown
	counter   game.CounterState
	timerRoll game.Roller
	countRoll game.Roller
	incFlash  game.Flash
	decFlash  game.Flash
	teamName  []rune

	crashHandler func(any)
}

// New wires an App to an initialized screen. cues may be a silent implementation.
func New(screen tcell.Screen, clock clockwork.Clock, cues audio.Cues, opts Options) *App {
	counter := game.NewCounterState()
	a := &App{
		screen:       screen,
		clock:        clock,
		cues:         cues,
		router:       input.NewRouter(opts.Keys),
		orchestrator: render.NewRenderOrchestrator(screen),
		opts:         opts,
		countdown:    game.NewCountdown(clock),
		counter:      counter,
		timerRoll:    game.NewRoller(constant.TimerSeconds),
		countRoll:    game.NewRoller(counter.Count),
	}

	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}
	rendererList := []rendererDef{
		{renderers.NewDialRenderer(), render.PriorityDial},
		{renderers.NewTimerDigitsRenderer(), render.PriorityDigits},
		{renderers.NewCountDigitsRenderer(), render.PriorityDigits},
		{renderers.NewGaugeRenderer(), render.PriorityGauge},
		{renderers.NewControlsRenderer(), render.PriorityUI},
		{renderers.NewStatusBarRenderer(), render.PriorityUI},
		{renderers.NewCompactRenderer(), render.PriorityOverlay},
	}
	for _, def := range rendererList {
		a.orchestrator.Register(def.renderer, def.priority)
	}

	a.router.SetRegions(a.orchestrator.Layout().Regions())
	return a
}

// SetCrashHandler installs the handler run when the event poller panics
func (a *App) SetCrashHandler(h func(any)) {
	a.crashHandler = h
}

// Counter returns the word counter state
func (a *App) Counter() game.CounterState {
	return a.counter
}

// Timer returns the countdown state
func (a *App) Timer() game.TimerState {
	return a.countdown.State()
}

// TeamName returns the entered team name
func (a *App) TeamName() string {
	return string(a.teamName)
}

// Apply executes one intent. Returns false when the app should exit.
func (a *App) Apply(intent input.Intent) bool {
	now := a.clock.Now()

	switch intent.Type {
	case input.IntentQuit:
		return false

	case input.IntentResize:
		a.orchestrator.Resize(intent.Width, intent.Height)
		a.router.SetRegions(a.orchestrator.Layout().Regions())

	case input.IntentStartTimer:
		a.startRound()

	case input.IntentIncrement:
		if next, ok := a.counter.Increment(); ok {
			a.counter = next
			a.countRoll.Set(next.Count, now)
			a.incFlash.Trigger(now)
			log.Debug().Int("count", next.Count).Msg("word added")
		}

	case input.IntentDecrement:
		if next, ok := a.counter.Decrement(); ok {
			a.counter = next
			a.countRoll.Set(next.Count, now)
			a.decFlash.Trigger(now)
			log.Debug().Int("count", next.Count).Msg("word removed")
		}

	case input.IntentTextChar:
		if len(a.teamName) < constant.TeamNameMaxLen && unicode.IsPrint(intent.Char) {
			a.teamName = append(a.teamName, intent.Char)
		}

	case input.IntentTextBackspace:
		if n := len(a.teamName); n > 0 {
			a.teamName = a.teamName[:n-1]
		}

	case input.IntentTextConfirm:
		log.Debug().Str("team", string(a.teamName)).Msg("team name set")
	}
	return true
}

func (a *App) startRound() {
	if !a.countdown.Start() {
		return
	}
	a.timerRoll.Reset(constant.TimerSeconds)
	a.cues.PlayTickStart()
	log.Info().Str("team", string(a.teamName)).Int("words", a.counter.Count).Msg("round started")
}

// HandleTick applies one countdown tick
func (a *App) HandleTick() {
	res := a.countdown.Tick()
	if res == game.TickIgnored {
		return
	}
	a.timerRoll.Set(a.countdown.State().Remaining, a.clock.Now())
	if res == game.TickExpired {
		a.cues.PlayDone()
	}
}

// HandleGrace ends the round after the post-expiry delay
func (a *App) HandleGrace() {
	if a.countdown.End() {
		a.cues.StopTick()
		log.Info().Int("words", a.counter.Count).Msg("round over")
	}
}

// RenderContext snapshots the state for one frame
func (a *App) RenderContext() render.RenderContext {
	now := a.clock.Now()
	timer := a.countdown.State()
	return render.RenderContext{
		Timer:    a.timerRoll.Frame(now),
		Dial:     timer.Dial,
		Active:   timer.Active,
		Expired:  timer.Active && timer.Remaining == 0,
		Count:    a.countRoll.Frame(now),
		Fill:     a.counter.Fill(),
		IncLit:   a.incFlash.Lit(now),
		DecLit:   a.decFlash.Lit(now),
		TeamName: string(a.teamName),
		Editing:  a.router.Focus() == input.FocusText,
		AudioOn:  a.opts.AudioOn,
	}
}

// Render draws one frame
func (a *App) Render() {
	a.orchestrator.RenderFrame(a.RenderContext())
}

// Run is the main loop. It returns when the user quits, the screen closes or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.opts.Mouse {
		a.screen.EnableMouse()
		defer a.screen.DisableMouse()
	}

	done := make(chan struct{})
	defer close(done)
	events := a.pollEvents(done)

	frame := a.clock.NewTicker(constant.FrameUpdateInterval)
	defer frame.Stop()

	a.Render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.Apply(a.router.Handle(ev)) {
				return nil
			}

		case <-a.countdown.Ticks():
			a.HandleTick()

		case <-a.countdown.Grace():
			a.HandleGrace()

		case <-frame.Chan():
			a.Render()
		}
	}
}

// pollEvents feeds terminal events into a channel until the screen is
// finalized or done is closed
func (a *App) pollEvents(done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, eventBufferSize)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if a.crashHandler == nil {
					panic(r)
				}
				a.crashHandler(r)
			}
		}()
		defer close(events)

		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// Stop releases the countdown, used on exit mid-round
func (a *App) Stop() {
	if a.countdown.End() {
		a.cues.StopTick()
	}
}
