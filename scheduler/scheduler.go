// Package scheduler implements the monotonic-clock, multi-queue frame
// executor described in spec §4.2: it interleaves prioritized write tasks,
// read tasks and after-tasks across animation frames, and exposes
// microtask/macrotask hooks.
package scheduler

import (
	"time"

	"github.com/vortexkit/vortex/dom"
)

// Component is the minimal surface the scheduler needs from a component to
// treat it as a write task or to drive it through the update-each-frame
// list. package component.Component satisfies this.
type Component interface {
	Update()
	Depth() int
	MarkDirty()
	UpdatingEachFrame() bool
}

// Metrics receives scheduler observability events. The zero-overhead
// default is NoOpMetrics; scheduler/prometheus.New provides an opt-in
// Prometheus-backed implementation (grounded on the pack's monitoring
// pattern, see DESIGN.md).
type Metrics interface {
	ObserveFrame(prioWrites, plainWrites, reads, afters int, dur time.Duration)
	ObserveClock(value uint64)
}

// NoOpMetrics discards every observation.
type NoOpMetrics struct{}

func (NoOpMetrics) ObserveFrame(int, int, int, int, time.Duration) {}
func (NoOpMetrics) ObserveClock(uint64)                            {}

// Scheduler is the single-threaded, cooperative frame executor described in
// spec §3.5/§4.2. Application code should normally use Default(), but tests
// construct isolated instances with New(ticker) per spec §9.
type Scheduler struct {
	ticker dom.Ticker
	clock  uint64

	current *Frame
	next    *Frame

	microtasks   []func()
	macrotasks   []func()
	everyFrame   []Component

	framePending bool
	microPending bool
	macroPending bool
	running      bool

	metrics Metrics
}

// New builds a Scheduler driven by the given capability record. The clock
// starts at 1, per spec §3.5.
func New(ticker dom.Ticker) *Scheduler {
	return &Scheduler{
		ticker:  ticker,
		clock:   1,
		current: newFrame(),
		next:    newFrame(),
		metrics: NoOpMetrics{},
	}
}

// SetMetrics installs m as the Scheduler's observability sink.
func (s *Scheduler) SetMetrics(m Metrics) {
	if m == nil {
		m = NoOpMetrics{}
	}
	s.metrics = m
}

// Clock returns the current monotonic clock value.
func (s *Scheduler) Clock() uint64 { return s.clock }

// Now implements invalidator.Clock.
func (s *Scheduler) Now() uint64 { return s.clock }

// CurrentFrame returns the frame under execution. It is only meaningful
// from inside a write/read/after callback; outside one it still returns the
// frame most recently (or currently) executing.
func (s *Scheduler) CurrentFrame() *Frame { return s.current }

// NextFrame returns the pending frame, requesting an animation-frame tick
// if one is not already pending.
func (s *Scheduler) NextFrame() *Frame {
	s.requestFrameTick()
	return s.next
}

// ScheduleUpdate enqueues c as a depth-ordered write task. Called
// reentrantly from inside an executing frame (s.running), it lands in that
// same frame so the tick's drain loop picks it up before the tick ends;
// called from outside any tick (the common case: an event handler reacting
// to user input), it lands in the upcoming frame and arms a tick for it.
func (s *Scheduler) ScheduleUpdate(c Component) {
	if s.running {
		s.current.UpdateComponent(c)
		return
	}
	s.NextFrame().UpdateComponent(c)
}

// ScheduleMicrotask enqueues cb and arms the microtask ticker if it is not
// already armed.
func (s *Scheduler) ScheduleMicrotask(cb func()) {
	s.microtasks = append(s.microtasks, cb)
	if !s.microPending {
		s.microPending = true
		s.ticker.ArmMicrotask(s.onMicrotaskTick)
	}
}

// ScheduleMacrotask enqueues cb and arms the macrotask ticker if it is not
// already armed.
func (s *Scheduler) ScheduleMacrotask(cb func()) {
	s.macrotasks = append(s.macrotasks, cb)
	if !s.macroPending {
		s.macroPending = true
		s.ticker.ArmMacrotask(s.onMacrotaskTick)
	}
}

// StartUpdateComponentEachFrame registers c for autonomous per-frame
// updates, per spec §4.2. Re-registering an already-registered component is
// a no-op.
func (s *Scheduler) StartUpdateComponentEachFrame(c Component) {
	for _, existing := range s.everyFrame {
		if existing == c {
			return
		}
	}
	s.everyFrame = append(s.everyFrame, c)
	s.requestFrameTick()
}

func (s *Scheduler) requestFrameTick() {
	if s.framePending {
		return
	}
	s.framePending = true
	s.ticker.RequestFrame(s.onFrameTick)
}

// onMicrotaskTick drains every microtask armed up to and including ones
// armed by a microtask while it drains (matching real microtask-queue
// semantics), then advances the clock exactly once for the whole batch.
func (s *Scheduler) onMicrotaskTick() {
	for len(s.microtasks) > 0 {
		batch := s.microtasks
		s.microtasks = nil
		for _, cb := range batch {
			cb()
		}
	}
	s.microPending = false
	s.advanceClock()
}

func (s *Scheduler) onMacrotaskTick() {
	batch := s.macrotasks
	s.macrotasks = nil
	s.macroPending = false
	for _, cb := range batch {
		cb()
	}
	s.advanceClock()
}

// onFrameTick runs the frame execution algorithm of spec §4.2.
func (s *Scheduler) onFrameTick(now float64) {
	start := time.Now()
	s.framePending = false
	s.running = true

	// Swap nextFrame and currentFrame: writes enqueued via NextFrame()
	// during this tick land on the fresh "next" below, while writes
	// enqueued via CurrentFrame() are observed by later passes of the
	// loop in this very tick.
	frame := s.next
	s.current = frame
	s.next = newFrame()

	for _, c := range s.everyFrame {
		c.MarkDirty()
	}

	var prioCount, plainCount, readCount int

	for frame.hasWrites() || frame.hasReads() {
		for frame.hasWrites() {
			if frame.hasPrioWrites() {
				prioCount += frame.drainPrioOnce()
			}
			if frame.hasPlainWrites() {
				plainCount += frame.drainPlainOnce()
			}
		}
		s.walkEveryFrame()
		if frame.hasReads() {
			readCount += frame.drainReadsOnce()
		}
	}

	afterCount := frame.drainAfters()

	if len(s.everyFrame) > 0 {
		s.requestFrameTick()
	}

	s.advanceClock()
	s.running = false
	s.metrics.ObserveFrame(prioCount, plainCount, readCount, afterCount, time.Since(start))
}

// walkEveryFrame drops components that turned their per-frame updating off
// and updates the rest (a no-op on any that aren't dirty).
func (s *Scheduler) walkEveryFrame() {
	kept := s.everyFrame[:0]
	for _, c := range s.everyFrame {
		if !c.UpdatingEachFrame() {
			continue
		}
		kept = append(kept, c)
	}
	s.everyFrame = kept
	for _, c := range s.everyFrame {
		c.Update()
	}
}

func (s *Scheduler) advanceClock() {
	s.clock++
	s.metrics.ObserveClock(s.clock)
}
