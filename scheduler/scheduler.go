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

package scheduler

import (
	"time"

	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/logger"
	"github.com/jetsetilly/gopher2d/runloop"
)

// the largest amount of real time that will be accounted for in a single tick.
// a longer stall, for example when the process has been suspended, would
// otherwise result in a burst of fixed updates
const maxElapsed = 0.25

// the period over which the FPS is measured
const fpsWindow = 1.0

// UpdateError is the pattern used for errors returned by the update function.
const UpdateError = "scheduler: %v"

// Default values for the Config type.
const (
	DefaultFixedRate   = 50
	DefaultRefreshRate = 60
)

// Config for a new Scheduler.
type Config struct {
	// the number of fixed updates per second of simulation time
	FixedRate int

	// the maximum number of frames per second. a value of zero means no limit
	// other than the refresh rate
	MaxFPS int

	// the number of times per second the scheduler is woken
	RefreshRate int

	// scale applied to the values returned by Dt(), FixedDt() and RestDt()
	TimeScale float64

	// called once for every fixed step. may be nil
	Fixed func()

	// called once per frame after the fixed updates. may be nil. an error
	// returned by the update function stops the scheduler
	Update func(processInput func() error, resetInput func()) error

	// the input functions handed to the update function. either may be nil
	ProcessInput func() error
	ResetInput   func()
}

// Scheduler runs the fixed and variable update callbacks.
type Scheduler struct {
	loop *runloop.Loop
	cfg  Config

	timer    *runloop.Timer
	interval time.Duration
	last     time.Time
	started  bool
	stopped  bool
	err      error

	hidden   bool
	skipTime bool

	// minimum real time between frames. derived from MaxFPS
	minDt float64

	// real time accumulated since the last frame
	realAcc float64

	// real time accumulated for the fixed updates
	fixedAcc float64

	fixedDt   float64
	dt        float64
	restDt    float64
	timeScale float64
	time      float64
	frame     uint64

	fps      float64
	fpsCount int
	fpsTime  float64
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The scheduler does nothing until Start() is called.
func NewScheduler(loop *runloop.Loop, cfg Config) *Scheduler {
	if cfg.FixedRate <= 0 {
		cfg.FixedRate = DefaultFixedRate
	}
	if cfg.RefreshRate <= 0 {
		cfg.RefreshRate = DefaultRefreshRate
	}
	if cfg.TimeScale <= 0 {
		cfg.TimeScale = 1.0
	}

	sch := &Scheduler{
		loop:      loop,
		cfg:       cfg,
		interval:  time.Second / time.Duration(cfg.RefreshRate),
		fixedDt:   1.0 / float64(cfg.FixedRate),
		timeScale: cfg.TimeScale,
	}
	sch.SetMaxFPS(cfg.MaxFPS)

	return sch
}

// SetMaxFPS changes the frame limit. A value of zero or less removes the
// limit.
func (sch *Scheduler) SetMaxFPS(fps int) {
	if fps <= 0 {
		sch.minDt = 0
		return
	}
	sch.minDt = 1.0 / float64(fps)
}

// SetTimeScale changes the scale applied to the Dt(), FixedDt() and RestDt()
// values. Negative values are treated as zero.
func (sch *Scheduler) SetTimeScale(scale float64) {
	sch.timeScale = max(scale, 0)
}

// TimeScale returns the current time scale.
func (sch *Scheduler) TimeScale() float64 {
	return sch.timeScale
}

// Start the scheduler. The first tick happens on the next service of the
// loop. Starting a scheduler that has been stopped has no effect.
func (sch *Scheduler) Start() {
	if sch.started || sch.stopped {
		return
	}
	sch.started = true
	sch.last = sch.loop.Now()
	sch.timer = sch.loop.After(0, sch.tick)
	logger.Logf(logger.Allow, "scheduler", "started (fixed rate %dHz, refresh %dHz)", sch.cfg.FixedRate, sch.cfg.RefreshRate)
}

// Stop the scheduler permanently. No further ticks will happen.
func (sch *Scheduler) Stop() {
	if sch.stopped {
		return
	}
	sch.stopped = true
	sch.timer.Stop()
	logger.Logf(logger.Allow, "scheduler", "stopped after %d frames", sch.frame)
}

// Stopped returns true if Stop() has been called or if the update function
// returned an error.
func (sch *Scheduler) Stopped() bool {
	return sch.stopped
}

// Err returns the error that stopped the scheduler, if any.
func (sch *Scheduler) Err() error {
	return sch.err
}

// SetHidden is used by the window collaborator to indicate that there is no
// point producing frames. Ticks continue while the scheduler is hidden but no
// work is done.
func (sch *Scheduler) SetHidden(hidden bool) {
	sch.hidden = hidden
}

// Hidden returns the value set by SetHidden().
func (sch *Scheduler) Hidden() bool {
	return sch.hidden
}

// SkipTime causes the time accumulated for the next frame to be ignored by
// the fixed updates. Used when the window is shown after being hidden.
func (sch *Scheduler) SkipTime() {
	sch.skipTime = true
}

func (sch *Scheduler) tick() {
	if sch.stopped {
		return
	}
	sch.timer = sch.loop.After(sch.interval, sch.tick)

	now := sch.loop.Now()
	elapsed := now.Sub(sch.last).Seconds()
	sch.last = now

	if sch.hidden {
		return
	}

	if elapsed > maxElapsed {
		logger.Logf(logger.Allow, "scheduler", "stall of %.2fs clamped to %.2fs", elapsed, maxElapsed)
		elapsed = maxElapsed
	}
	sch.realAcc += elapsed

	if sch.realAcc < sch.minDt {
		return
	}

	if !sch.skipTime {
		sch.fixedAcc += sch.realAcc
		for sch.fixedAcc >= sch.fixedDt {
			sch.fixedAcc -= sch.fixedDt
			if sch.cfg.Fixed != nil {
				sch.cfg.Fixed()
			}
		}
		sch.restDt = sch.fixedAcc
	}

	sch.dt = sch.realAcc
	sch.time += sch.dt
	sch.measure(sch.dt)

	sch.realAcc = 0
	sch.skipTime = false
	sch.frame++

	if sch.cfg.Update != nil {
		if err := sch.cfg.Update(sch.processInput, sch.resetInput); err != nil {
			sch.err = curated.Errorf(UpdateError, err)
			sch.Stop()
		}
	}
}

func (sch *Scheduler) processInput() error {
	if sch.cfg.ProcessInput == nil {
		return nil
	}
	return sch.cfg.ProcessInput()
}

func (sch *Scheduler) resetInput() {
	if sch.cfg.ResetInput != nil {
		sch.cfg.ResetInput()
	}
}

func (sch *Scheduler) measure(dt float64) {
	sch.fpsCount++
	sch.fpsTime += dt
	if sch.fpsTime >= fpsWindow {
		sch.fps = float64(sch.fpsCount) / sch.fpsTime
		sch.fpsCount = 0
		sch.fpsTime = 0
	}
}

// Dt returns the scaled duration of the most recent frame in seconds.
func (sch *Scheduler) Dt() float64 {
	return sch.dt * sch.timeScale
}

// RealDt returns the unscaled duration of the most recent frame in seconds.
func (sch *Scheduler) RealDt() float64 {
	return sch.dt
}

// FixedDt returns the scaled duration of a fixed step in seconds.
func (sch *Scheduler) FixedDt() float64 {
	return sch.fixedDt * sch.timeScale
}

// RestDt returns the scaled amount of time left in the fixed accumulator after
// the most recent frame. Always less than FixedDt(). Useful for interpolating
// between fixed steps.
func (sch *Scheduler) RestDt() float64 {
	return sch.restDt * sch.timeScale
}

// Time returns the total amount of real time accounted for by the frames so
// far, in seconds.
func (sch *Scheduler) Time() float64 {
	return sch.time
}

// Frame returns the number of frames produced.
func (sch *Scheduler) Frame() uint64 {
	return sch.frame
}

// FPS returns the frame rate measured over the most recent one second window.
// Returns zero until the first window is complete.
func (sch *Scheduler) FPS() float64 {
	return sch.fps
}
