// Package desktop provides a windowed platform.Host driven by ebiten.
package desktop

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spaghettifunk/easel/engine/core"
	"github.com/spaghettifunk/easel/engine/math"
	"github.com/spaghettifunk/easel/engine/platform"
)

// Presenter is the part of a surface the host needs to put a frame on screen.
type Presenter interface {
	Present(screen *ebiten.Image)
}

// Ebiten runs frames inside ebiten's game loop. It implements ebiten.Game:
// Layout reports the outside size of the window and Draw is the repaint.
type Ebiten struct {
	platform.Scheduler

	startWidth          int
	startHeight         int
	docWidth, docHeight int
	presenter           Presenter
	start               time.Time
	quit                atomic.Bool
}

var _ platform.Host = (*Ebiten)(nil)

// NewEbiten sizes the window up front so WindowSize reports the requested size
// before the window is shown.
func NewEbiten(title string, width, height int) *Ebiten {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return &Ebiten{
		Scheduler:   platform.NewScheduler(),
		startWidth:  width,
		startHeight: height,
		start:       time.Now(),
	}
}

// SetPresenter chooses what is copied to the screen after each frame.
func (e *Ebiten) SetPresenter(p Presenter) {
	e.presenter = p
}

// DocumentSize is the last outside size ebiten reported through Layout. It is
// zero until the window is shown.
func (e *Ebiten) DocumentSize() (int, int) {
	return e.docWidth, e.docHeight
}

func (e *Ebiten) WindowSize() (int, int) {
	w, h := ebiten.WindowSize()
	if w == 0 && h == 0 {
		return e.startWidth, e.startHeight
	}
	return w, h
}

// Update ends the game loop once the context given to Run is done.
func (e *Ebiten) Update() error {
	if e.quit.Load() {
		return ebiten.Termination
	}
	return nil
}

func (e *Ebiten) Draw(screen *ebiten.Image) {
	e.RunFrame(time.Since(e.start).Seconds() * math.K_SEC_TO_MS_MULTIPLIER)
	if e.presenter != nil {
		e.presenter.Present(screen)
	}
}

func (e *Ebiten) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.docWidth || outsideHeight != e.docHeight {
		e.docWidth, e.docHeight = outsideWidth, outsideHeight
		core.LogDebug("window resize: %d, %d", outsideWidth, outsideHeight)
		e.FireResize(e, outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed or ctx is done.
func (e *Ebiten) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			core.LogInfo("closing window: %v", context.Cause(ctx))
			e.quit.Store(true)
		case <-done:
		}
	}()

	return ebiten.RunGame(e)
}
