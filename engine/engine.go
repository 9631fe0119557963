package engine

import (
	"fmt"

	"github.com/spaghettifunk/easel/engine/core"
	"github.com/spaghettifunk/easel/engine/math"
	"github.com/spaghettifunk/easel/engine/objects"
	"github.com/spaghettifunk/easel/engine/platform"
	"github.com/spaghettifunk/easel/engine/renderer"
)

type LoopState uint8

const (
	// Loop has not been started yet
	LoopIdle LoopState = iota
	// Loop reschedules itself on every host frame
	LoopRunning
)

func (s LoopState) String() string {
	switch s {
	case LoopRunning:
		return "running"
	default:
		return "idle"
	}
}

// ViewPort mirrors the display area of the host in pixels.
type ViewPort struct {
	Width  int
	Height int

	resizeListener core.ListenerID
	watching       bool
}

// Watching reports whether a resize listener is attached.
func (v ViewPort) Watching() bool {
	return v.watching
}

// integrable is implemented by entities whose motion strategy can be swapped.
type integrable interface {
	SetIntegrator(objects.Integrator)
}

// Application owns the viewport, the animation clock and the entities, and
// drives an update then render pass on every frame the host schedules.
type Application struct {
	gameInstance *Game
	host         platform.Host
	surface      renderer.Surface
	integrator   objects.Integrator

	viewPort ViewPort
	clock    *core.Clock
	state    LoopState
	metrics  *core.Metrics
	loop     platform.FrameCallback

	// a frame callback is queued on the host
	scheduled bool

	objects []objects.Entity
}

func New(g *Game, host platform.Host, surface renderer.Surface) (*Application, error) {
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = DefaultApplicationConfig()
	}
	if err := g.ApplicationConfig.Validate(); err != nil {
		return nil, err
	}
	integrator, err := objects.IntegratorByName(g.ApplicationConfig.Integration)
	if err != nil {
		return nil, err
	}

	a := &Application{
		gameInstance: g,
		host:         host,
		surface:      surface,
		integrator:   integrator,
		clock:        core.NewClock(),
		state:        LoopIdle,
		metrics:      core.NewMetrics(),
	}
	a.loop = a.frame
	return a, nil
}

// Run measures the viewport, starts watching it, creates the entities and
// starts the frame loop. It is the only supported entry point and must be
// called once.
func (a *Application) Run() {
	a.UpdateViewPort()
	a.WatchViewPort()
	a.InitObjects()
	a.InitLoop()
	core.LogInfo("%s running with %d objects on a %dx%d viewport", a.gameInstance.ApplicationConfig.Name, len(a.objects), a.viewPort.Width, a.viewPort.Height)
}

// UpdateViewPort takes the larger of the two host measurements on each axis
// and resizes the surface to match, which clears it.
func (a *Application) UpdateViewPort() {
	docWidth, docHeight := a.host.DocumentSize()
	winWidth, winHeight := a.host.WindowSize()

	a.viewPort.Width = math.NonNegative(max(docWidth, winWidth))
	a.viewPort.Height = math.NonNegative(max(docHeight, winHeight))
	a.surface.SetSize(a.viewPort.Width, a.viewPort.Height)
}

// WatchViewPort (re)installs the single resize listener. A resize only
// re-measures the viewport; the cleared surface stays blank until the next
// frame renders.
func (a *Application) WatchViewPort() {
	if a.viewPort.watching {
		a.host.RemoveResizeListener(a.viewPort.resizeListener)
		a.viewPort.watching = false
	}

	a.viewPort.resizeListener = a.host.AddResizeListener(func() {
		a.UpdateViewPort()
		core.LogDebug("viewport resized to %dx%d", a.viewPort.Width, a.viewPort.Height)
	})
	a.viewPort.watching = true
}

// InitObjects appends the entities supplied by the game.
func (a *Application) InitObjects() {
	if a.gameInstance.FnInitObjects == nil {
		return
	}
	for _, o := range a.gameInstance.FnInitObjects() {
		if i, ok := o.(integrable); ok {
			i.SetIntegrator(a.integrator)
		}
		a.objects = append(a.objects, o)
	}
}

// InitLoop starts the frame loop. Starting a loop that is already running
// logs a warning and does nothing. A restarted loop measures its first delta
// as 0 and reuses a callback that is still queued from the previous run.
func (a *Application) InitLoop() {
	if a.state == LoopRunning {
		core.LogWarn("loop is already running")
		return
	}

	a.state = LoopRunning
	a.clock.Reset()
	a.schedule()
}

func (a *Application) schedule() {
	if a.scheduled {
		return
	}
	a.scheduled = true
	a.host.RequestAnimationFrame(a.loop)
}

// stop lets the pending frame run out without scheduling another.
func (a *Application) stop() {
	a.state = LoopIdle
}

func (a *Application) frame(timestamp float64) {
	a.scheduled = false
	if a.state != LoopRunning {
		return
	}

	a.metrics.Update(a.clock.Tick(timestamp))

	a.Update()
	a.Render()

	a.schedule()
}

// Update forwards the current delta to every entity.
func (a *Application) Update() {
	delta := a.clock.Delta()
	for _, o := range a.objects {
		o.Update(delta)
	}
}

// Render clears the screen and draws every entity in insertion order, so
// later entities are drawn over earlier ones.
func (a *Application) Render() {
	a.ClearScreen()
	for _, o := range a.objects {
		o.Render(a.surface, o.Pos())
	}
}

func (a *Application) ClearScreen() {
	a.surface.ClearRect(0, 0, float64(a.viewPort.Width), float64(a.viewPort.Height))
}

func (a *Application) ViewPort() ViewPort {
	return a.viewPort
}

func (a *Application) Delta() float64 {
	return a.clock.Delta()
}

func (a *Application) State() LoopState {
	return a.state
}

func (a *Application) Objects() []objects.Entity {
	return a.objects
}

func (a *Application) Metrics() *core.Metrics {
	return a.metrics
}

func (a *Application) String() string {
	return fmt.Sprintf("%s [%s] %dx%d", a.gameInstance.ApplicationConfig.Name, a.state, a.viewPort.Width, a.viewPort.Height)
}
