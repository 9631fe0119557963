package platform

import (
	"github.com/spaghettifunk/easel/engine/containers"
	"github.com/spaghettifunk/easel/engine/core"
)

// FrameCallback is invoked once, just before the next repaint, with a
// monotonic timestamp in milliseconds.
type FrameCallback func(timestamp float64)

// Host is the window/display the application runs in.
type Host interface {
	// DocumentSize and WindowSize are two measurements of the display area.
	// Hosts may report them inconsistently; callers take the larger of each.
	DocumentSize() (width, height int)
	WindowSize() (width, height int)

	AddResizeListener(fn func()) core.ListenerID
	RemoveResizeListener(id core.ListenerID) bool

	// RequestAnimationFrame schedules cb for the next host frame only.
	RequestAnimationFrame(cb FrameCallback)
}

const maxPendingFrames = 64

// Scheduler holds what every host shares: the resize listeners and the queue
// of pending frame callbacks.
type Scheduler struct {
	events  *core.EventBus
	pending *containers.RingQueue[FrameCallback]
}

func NewScheduler() Scheduler {
	return Scheduler{
		events:  core.NewEventBus(),
		pending: containers.NewRingQueue[FrameCallback](maxPendingFrames),
	}
}

func (s *Scheduler) AddResizeListener(fn func()) core.ListenerID {
	if fn == nil {
		return 0
	}
	return s.events.Register(core.EVENT_CODE_RESIZED, func(core.SystemEventCode, interface{}, core.EventContext) bool {
		fn()
		return false
	})
}

func (s *Scheduler) RemoveResizeListener(id core.ListenerID) bool {
	return s.events.Unregister(core.EVENT_CODE_RESIZED, id)
}

// ResizeListeners returns how many resize listeners are attached.
func (s *Scheduler) ResizeListeners() int {
	return s.events.Count(core.EVENT_CODE_RESIZED)
}

func (s *Scheduler) RequestAnimationFrame(cb FrameCallback) {
	if cb == nil {
		return
	}
	if err := s.pending.Enqueue(cb); err != nil {
		core.LogError("dropping frame callback: %s", err)
	}
}

// Pending returns how many frame callbacks wait for the next frame.
func (s *Scheduler) Pending() int {
	return s.pending.Len()
}

// FireResize notifies every resize listener of the new display size.
func (s *Scheduler) FireResize(sender interface{}, width, height int) {
	ctx := core.EventContext{}
	ctx.Data.I32[0] = int32(width)
	ctx.Data.I32[1] = int32(height)
	s.events.Fire(core.EVENT_CODE_RESIZED, sender, ctx)
}

// RunFrame invokes the callbacks pending when the frame starts. Callbacks
// requested while it runs wait for the following frame.
func (s *Scheduler) RunFrame(timestamp float64) int {
	n := s.pending.Len()
	for i := 0; i < n; i++ {
		cb, err := s.pending.Dequeue()
		if err != nil {
			break
		}
		cb(timestamp)
	}
	return n
}
