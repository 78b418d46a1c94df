// This file is part of Gopher2D.
//
// Gopher2D is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2D is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2D.  If not, see <https://www.gnu.org/licenses/>.

package engine

import (
	"context"
	"image"

	"github.com/jetsetilly/gopher2d/audio"
	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/events"
	"github.com/jetsetilly/gopher2d/input"
	"github.com/jetsetilly/gopher2d/logger"
	"github.com/jetsetilly/gopher2d/prefs"
	"github.com/jetsetilly/gopher2d/runloop"
	"github.com/jetsetilly/gopher2d/scheduler"
	"github.com/jetsetilly/gopher2d/userinput"
)

// Sentinal errors.
const (
	NoWindow       = "engine: no window"
	NotImplemented = "not implemented: %s"
)

// Options for New(). The Window and Output fields are required.
type Options struct {
	Window Window

	// the audio output. a nil output is an error
	Output audio.Output

	// decoder for Mixer.Play() and Mixer.PlayMusic(). may be nil
	Decoder audio.Decoder

	// coordinate transform for mouse positions. if nil and the window
	// implements input.Viewport then the window is used
	Viewport input.Viewport

	// gamepad devices. if nil and the window implements
	// input.GamepadDevices then the window is used
	Gamepads input.GamepadDevices

	// virtual button bindings. if nil then the bindings file named in the
	// preferences is loaded
	Bindings *input.Bindings

	// if nil then the preferences file in the resource directory is used
	Preferences *Preferences

	// if nil then the system clock is used
	Clock runloop.Clock

	// number of times per second the scheduler is woken. zero means the
	// default
	RefreshRate int

	// the fixed and variable update callbacks. either may be nil
	Fixed  func(e *Engine)
	Update func(e *Engine) error
}

// Engine is the application context.
type Engine struct {
	opts   Options
	window Window
	prefs  *Preferences

	loop  *runloop.Loop
	reg   *events.Registry
	input *input.Input
	sched *scheduler.Scheduler
	mixer *audio.Mixer

	// raw input events from the window
	queue userinput.Queue

	hidden bool

	// cancels the context given to Run()
	cancel context.CancelFunc
	quit   bool
}

// New is the preferred method of initialisation for the Engine type.
func New(opts Options) (*Engine, error) {
	if opts.Window == nil {
		return nil, curated.Errorf(NoWindow)
	}

	e := &Engine{
		opts:   opts,
		window: opts.Window,
		prefs:  opts.Preferences,
		loop:   runloop.NewLoop(opts.Clock),
		reg:    events.NewRegistry(),
	}

	if e.prefs == nil {
		var err error
		e.prefs, err = NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	bindings := opts.Bindings
	if bindings == nil {
		if fn := e.prefs.BindingsFile.String(); fn != "" {
			var err error
			bindings, err = input.LoadBindings(fn)
			if err != nil {
				return nil, err
			}
			logger.Logf(logger.Allow, "engine", "bindings loaded from %s", fn)
		}
	}

	viewport := opts.Viewport
	if viewport == nil {
		viewport, _ = opts.Window.(input.Viewport)
	}
	gamepads := opts.Gamepads
	if gamepads == nil {
		gamepads, _ = opts.Window.(input.GamepadDevices)
	}

	e.input = input.NewInput(e.reg, input.Config{
		Bindings: bindings,
		Viewport: viewport,
		Gamepads: gamepads,
	})

	e.input.SetDeadzone(e.prefs.Deadzone.Get().(float64))

	var err error
	e.mixer, err = audio.NewMixer(e.loop, opts.Output, opts.Decoder, audio.Config{
		Channels:    e.prefs.Channels.Get().(int),
		ChunkFrames: e.prefs.ChunkFrames.Get().(int),
	})
	if err != nil {
		return nil, err
	}
	e.mixer.SetMasterVolume(e.prefs.MasterVolume.Get().(float64))

	e.sched = scheduler.NewScheduler(e.loop, scheduler.Config{
		FixedRate:    e.prefs.FixedRate.Get().(int),
		MaxFPS:       e.prefs.MaxFPS.Get().(int),
		RefreshRate:  opts.RefreshRate,
		TimeScale:    e.prefs.TimeScale.Get().(float64),
		Fixed:        e.fixed,
		Update:       e.update,
		ProcessInput: e.processInput,
		ResetInput:   e.input.Reset,
	})

	// a time scale of zero is a valid preference but the scheduler treats
	// zero in the config as the default
	e.sched.SetTimeScale(e.prefs.TimeScale.Get().(float64))

	e.prefs.MaxFPS.SetHookPost(func(v prefs.Value) error {
		e.sched.SetMaxFPS(v.(int))
		return nil
	})
	e.prefs.TimeScale.SetHookPost(func(v prefs.Value) error {
		e.sched.SetTimeScale(v.(float64))
		return nil
	})
	e.prefs.MasterVolume.SetHookPost(func(v prefs.Value) error {
		e.mixer.SetMasterVolume(v.(float64))
		return nil
	})
	e.prefs.Deadzone.SetHookPost(func(v prefs.Value) error {
		e.input.SetDeadzone(v.(float64))
		return nil
	})

	return e, nil
}

func (e *Engine) fixed() {
	if e.opts.Fixed != nil {
		e.opts.Fixed(e)
	}
}

func (e *Engine) update(processInput func() error, resetInput func()) error {
	if err := processInput(); err != nil {
		return err
	}
	defer resetInput()

	if e.opts.Update != nil {
		return e.opts.Update(e)
	}
	return nil
}

func (e *Engine) processInput() error {
	evs, dropped := e.queue.Drain()
	if dropped > 0 {
		logger.Logf(e, "engine", "dropped %d input events", dropped)
	}
	return e.input.Process(evs)
}

// HandleEvent is the entry point for events from the window collaborator. It
// is safe to call from any goroutine.
func (e *Engine) HandleEvent(ev userinput.Event) {
	switch ev := ev.(type) {
	case userinput.EventFocus:
		e.loop.Post(func() {
			e.setHidden(!ev.Focused)
		})
	case userinput.EventVisibility:
		e.loop.Post(func() {
			e.setHidden(!ev.Visible)
		})
	case userinput.EventResize:
		e.loop.Post(func() {
			e.reg.Publish(ResizeEvent{Width: ev.W, Height: ev.H})
		})
	case userinput.EventQuit:
		e.loop.Post(e.Quit)
	default:
		if !e.queue.Push(ev) {
			logger.Log(logger.Allow, "engine", "input queue is full")
		}
	}
}

func (e *Engine) setHidden(hidden bool) {
	if hidden == e.hidden {
		return
	}
	e.hidden = hidden
	e.sched.SetHidden(hidden)

	if hidden {
		logger.Log(e, "engine", "hidden")
		e.input.ReleaseAll()
		e.reg.Publish(events.Simple(events.Hide))
		return
	}

	logger.Log(e, "engine", "shown")
	e.sched.SkipTime()
	e.reg.Publish(events.Simple(events.Show))
}

// Start the scheduler. Called by Run() and only needed by callers that drive
// the engine with Service().
func (e *Engine) Start() {
	e.sched.Start()
}

// Service the window and then the run loop, once. Returns the error that
// stopped the engine, if any.
func (e *Engine) Service() error {
	if err := e.serviceWindow(); err != nil {
		return err
	}
	e.loop.Service()
	return e.sched.Err()
}

func (e *Engine) serviceWindow() error {
	if e.quit {
		return nil
	}
	if err := e.window.Service(e.HandleEvent); err != nil {
		return err
	}
	return e.sched.Err()
}

// Run the engine until Quit() is called, the context is cancelled or until
// there is an error. The window is destroyed before Run() returns.
func (e *Engine) Run(ctx context.Context) error {
	ctx, e.cancel = context.WithCancel(ctx)
	defer e.cancel()

	logger.Log(logger.Allow, "engine", "running")
	e.Start()

	err := e.loop.Run(ctx, e.serviceWindow)
	e.Quit()

	return err
}

// Quit the engine. The scheduler is stopped, all sounds are stopped and the
// window is destroyed. Run() returns after the current iteration of the loop.
func (e *Engine) Quit() {
	if e.quit {
		return
	}
	e.quit = true

	logger.Log(logger.Allow, "engine", "quit")

	e.sched.Stop()
	e.mixer.StopAll()

	if err := e.window.Destroy(); err != nil {
		logger.Log(logger.Allow, "engine", err)
	}

	if e.cancel != nil {
		e.cancel()
	}
}

// AllowLogging implements the logger.Permission interface. Window and input
// noise that arrives during shutdown is not logged.
func (e *Engine) AllowLogging() bool {
	return !e.quit
}

// Quitting returns true if Quit() has been called.
func (e *Engine) Quitting() bool {
	return e.quit
}

// Hidden returns true if the window has lost focus or is not visible.
func (e *Engine) Hidden() bool {
	return e.hidden
}

// Input returns the input context.
func (e *Engine) Input() *input.Input {
	return e.input
}

// Audio returns the audio mixer.
func (e *Engine) Audio() *audio.Mixer {
	return e.mixer
}

// Events returns the event registry.
func (e *Engine) Events() *events.Registry {
	return e.reg
}

// Loop returns the run loop.
func (e *Engine) Loop() *runloop.Loop {
	return e.loop
}

// Scheduler returns the frame scheduler.
func (e *Engine) Scheduler() *scheduler.Scheduler {
	return e.sched
}

// Preferences returns the engine preferences.
func (e *Engine) Preferences() *Preferences {
	return e.prefs
}

// Size returns the size of the window.
func (e *Engine) Size() (int, int) {
	return e.window.Size()
}

// Dt is the scaled time in seconds of the most recent frame.
func (e *Engine) Dt() float64 { return e.sched.Dt() }

// FixedDt is the scaled time in seconds of one fixed update.
func (e *Engine) FixedDt() float64 { return e.sched.FixedDt() }

// RestDt is the scaled time in seconds left over after the fixed updates.
func (e *Engine) RestDt() float64 { return e.sched.RestDt() }

// Time is the total time in seconds of all frames.
func (e *Engine) Time() float64 { return e.sched.Time() }

// Frame is the number of frames so far.
func (e *Engine) Frame() uint64 { return e.sched.Frame() }

// FPS is the measured number of frames per second.
func (e *Engine) FPS() float64 { return e.sched.FPS() }

// OnShow subscribes to the Show notification.
func (e *Engine) OnShow(fn func()) *events.Subscription {
	return e.reg.Subscribe(events.Show, func(events.Event) { fn() })
}

// OnHide subscribes to the Hide notification.
func (e *Engine) OnHide(fn func()) *events.Subscription {
	return e.reg.Subscribe(events.Hide, func(events.Event) { fn() })
}

// OnResize subscribes to the Resize notification.
func (e *Engine) OnResize(fn func(ResizeEvent)) *events.Subscription {
	return events.On(e.reg, events.Resize, fn)
}

// SetFullscreen is not implemented.
func (e *Engine) SetFullscreen(fullscreen bool) error {
	return curated.Errorf(NotImplemented, "fullscreen")
}

// SetCursor is not implemented.
func (e *Engine) SetCursor(cursor string) error {
	return curated.Errorf(NotImplemented, "cursor")
}

// Screenshot is not implemented.
func (e *Engine) Screenshot() (image.Image, error) {
	return nil, curated.Errorf(NotImplemented, "screenshot")
}
