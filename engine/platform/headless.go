package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/spaghettifunk/easel/engine/core"
	"github.com/spaghettifunk/easel/engine/math"
)

// Headless is a host without a window. Frames only happen when Step is called,
// or while Run pumps them on a ticker.
type Headless struct {
	Scheduler

	docWidth, docHeight int
	winWidth, winHeight int
	start               time.Time
}

func NewHeadless(width, height int) *Headless {
	return &Headless{
		Scheduler: NewScheduler(),
		docWidth:  width,
		docHeight: height,
		winWidth:  width,
		winHeight: height,
		start:     time.Now(),
	}
}

func (h *Headless) DocumentSize() (int, int) {
	return h.docWidth, h.docHeight
}

func (h *Headless) WindowSize() (int, int) {
	return h.winWidth, h.winHeight
}

// Resize changes both measurements and notifies resize listeners.
func (h *Headless) Resize(docWidth, docHeight, winWidth, winHeight int) {
	h.docWidth, h.docHeight = docWidth, docHeight
	h.winWidth, h.winHeight = winWidth, winHeight
	h.FireResize(h, max(docWidth, winWidth), max(docHeight, winHeight))
}

// Step runs one frame with the given timestamp and returns how many callbacks
// were invoked.
func (h *Headless) Step(timestamp float64) int {
	return h.RunFrame(timestamp)
}

// Run pumps frames every interval until frames frames have run, nothing is
// pending anymore, or ctx is done. Timestamps are milliseconds since the host
// was created. Returns the number of frames run, or core.ErrInvalidInterval
// when interval is not positive.
func (h *Headless) Run(ctx context.Context, frames int, interval time.Duration) (int, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("%w: %s", core.ErrInvalidInterval, interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	count := 0
	for count < frames && h.Pending() > 0 {
		select {
		case <-ctx.Done():
			return count, nil
		case now := <-ticker.C:
			h.Step(now.Sub(h.start).Seconds() * math.K_SEC_TO_MS_MULTIPLIER)
			count++
		}
	}
	return count, nil
}
