package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/config"
	"github.com/ja-he/timeruler/internal/control"
	"github.com/ja-he/timeruler/internal/control/action"
	"github.com/ja-he/timeruler/internal/input"
	"github.com/ja-he/timeruler/internal/input/processors"
	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/potatolog"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/tui"
	"github.com/ja-he/timeruler/internal/ui"
	"github.com/ja-he/timeruler/internal/ui/panes"
)

const helpWidth = 50

// Controller is the struct for the TUI controller.
//
// Events are processed on one goroutine and frames are drawn on another; mtx
// guards everything both of them touch.
type Controller struct {
	mtx sync.Mutex

	data     *control.ControlData
	viewport *control.ViewportController
	rootPane *panes.RootPane

	theme      config.ColorschemeType
	stylesheet *styling.Stylesheet
	ruler      config.Ruler

	helpContent   input.Help
	helpOverlay   input.SimpleInputProcessor
	exitRequested bool

	// primary mouse button was down on the last mouse event
	buttonHeld bool

	rulerDimensions func() (x, y, w, h int)

	now func() time.Time

	configWatcher    *config.Watcher
	controllerEvents chan controllerEvent

	screenEvents      tui.EventPollable
	initializedScreen tui.InitializedScreen
	syncer            tui.ScreenSynchronizer
}

// NewController creates a new Controller with the ruler centered on now.
func NewController(
	envData control.EnvData,
	configData config.Config,
	theme config.ColorschemeType,
	renderer *tui.ScreenHandler,
) (*Controller, error) {
	now := time.Now()
	viewport := control.NewViewportController(now, model.NewClipRangeAround(now, model.InitialClipHalfSpan))
	return newController(viewport, time.Now, envData, configData, theme, renderer)
}

func newController(
	viewport *control.ViewportController,
	now func() time.Time,
	envData control.EnvData,
	configData config.Config,
	theme config.ColorschemeType,
	renderer *tui.ScreenHandler,
) (*Controller, error) {
	controller := &Controller{
		data:             &control.ControlData{EnvData: envData},
		viewport:         viewport,
		theme:            theme,
		stylesheet:       styling.NewStylesheetFromConfig(configData.Stylesheet),
		ruler:            configData.Ruler,
		now:              now,
		controllerEvents: make(chan controllerEvent, 32),
	}

	screenDimensions := renderer.Dimensions
	statusDimensions := func() (x, y, w, h int) {
		screenX, screenY, screenW, screenH := screenDimensions()
		return screenX, screenY + screenH - 1, screenW, 1
	}
	mainDimensions := func() (x, y, w, h int) {
		screenX, screenY, screenW, screenH := screenDimensions()
		return screenX, screenY, screenW, max(screenH-1, 0)
	}
	controller.rulerDimensions = func() (x, y, w, h int) {
		mainX, mainY, mainW, mainH := mainDimensions()
		return mainX, mainY + max((mainH-panes.RulerHeight)/2, 0), mainW, min(panes.RulerHeight, mainH)
	}
	helpDimensions := func() (x, y, w, h int) {
		screenX, screenY, screenW, screenH := screenDimensions()
		w = min(helpWidth, screenW)
		h = min(len(controller.helpContent)+2, screenH)
		return screenX + (screenW-w)/2, screenY + (screenH-h)/2, w, h
	}
	perfDimensions := func() (x, y, w, h int) { return 2, 2, 50, 2 }

	var suntimes *model.SuntimesProvider
	lat, lon, err := envData.Coordinates()
	switch {
	case errors.Is(err, control.ErrNoCoordinates):
		log.Info().Msg("no lat-/longitude provided -> no day/night shading")
	case err != nil:
		log.Error().Err(err).Msg("could not parse longitude/latitude -> no day/night shading")
	default:
		suntimes = &model.SuntimesProvider{Latitude: lat, Longitude: lon}
	}

	rulerPane := panes.NewRulerPane(
		ui.NewConstrainedRenderer(renderer, controller.rulerDimensions),
		controller.rulerDimensions,
		controller.stylesheet,
		func(width int) ui.DrawPlan { return controller.viewport.Plan(float64(width)) },
		func() control.DragMode { return controller.viewport.Drag().Mode },
		controller.rulerSettings,
		suntimes,
	)
	statusPane := panes.NewStatusPane(
		ui.NewConstrainedRenderer(renderer, statusDimensions),
		statusDimensions,
		controller.stylesheet,
		controller.viewport.Zoom,
		func() control.DragMode { return controller.viewport.Drag().Mode },
		controller.viewport.Clip,
		controller.cursorTime,
	)
	logPane := panes.NewLogPane(
		ui.NewConstrainedRenderer(renderer, mainDimensions),
		mainDimensions,
		controller.stylesheet,
		func() bool { return controller.data.ShowLog },
		func() string { return "LOG" },
		&potatolog.GlobalMemoryLogReaderWriter,
	)
	helpPane := panes.NewHelpPane(
		ui.NewConstrainedRenderer(renderer, helpDimensions),
		helpDimensions,
		controller.stylesheet,
		func() bool { return controller.data.ShowHelp },
		func() input.Help { return controller.helpContent },
	)
	perfPane := panes.NewPerfPane(
		ui.NewConstrainedRenderer(renderer, perfDimensions),
		perfDimensions,
		func() bool { return controller.data.ShowDebug },
		&controller.data.RenderTimes,
		&controller.data.EventProcessingTimes,
	)

	keyActions, err := bindKeys(configData.Keys, controller.actions())
	if err != nil {
		return nil, fmt.Errorf("invalid key bindings (%w)", err)
	}
	rootPaneInputTree, err := input.ConstructInputTree(keyActions)
	if err != nil {
		return nil, fmt.Errorf("failed to construct input tree for root pane (%w)", err)
	}

	closeHelp := action.NewSimple("close help", controller.hideHelp)
	helpOverlaySpec := map[input.Keyspec]action.Action{"<esc>": closeHelp}
	if toggle := configData.Keys[actionToggleHelp]; toggle != "" && toggle != "<esc>" {
		helpOverlaySpec[toggle] = closeHelp
	}
	helpOverlayTree, err := input.ConstructInputTree(helpOverlaySpec)
	if err != nil {
		return nil, fmt.Errorf("failed to construct input tree for help overlay (%w)", err)
	}
	controller.helpOverlay = input.CapturingOverlayWrap(helpOverlayTree)

	controller.rootPane = panes.NewRootPane(
		renderer,
		screenDimensions,
		rulerPane,
		statusPane,
		logPane,
		helpPane,
		perfPane,
		processors.NewModalInputProcessor(rootPaneInputTree),
	)

	controller.screenEvents = renderer.GetEventPollable()
	controller.initializedScreen = renderer
	controller.syncer = renderer

	return controller, nil
}

// actions are the operations key bindings can refer to by name.
func (c *Controller) actions() map[input.Actionspec]action.Action {
	return map[input.Actionspec]action.Action{
		actionQuit:         action.NewSimple("exit program", func() { c.exitRequested = true }),
		actionZoomIn:       action.NewSimple("zoom in", c.viewport.ZoomIn),
		actionZoomOut:      action.NewSimple("zoom out", c.viewport.ZoomOut),
		actionPanLeft:      action.NewSimple("pan to earlier times", func() { c.viewport.PanByMajorTicks(-c.panStep()) }),
		actionPanRight:     action.NewSimple("pan to later times", func() { c.viewport.PanByMajorTicks(c.panStep()) }),
		actionResetZoom:    action.NewSimple("reset zoom", c.viewport.ResetZoom),
		actionCenterOnNow:  action.NewSimple("center on now", func() { c.viewport.CenterOn(c.now()) }),
		actionCenterOnClip: action.NewSimple("center on clip range", c.viewport.CenterOnClip),
		actionToggleHelp:   action.NewSimple("show help", c.showHelp),
		actionToggleLog: action.NewDynamic(
			func() string {
				if c.data.ShowLog {
					return "hide log"
				}
				return "show log"
			},
			func() { c.data.ShowLog = !c.data.ShowLog },
		),
		actionToggleDebug: action.NewSimple("toggle performance overlay", func() { c.data.ShowDebug = !c.data.ShowDebug }),
	}
}

func (c *Controller) panStep() int {
	if c.ruler.PanStep == nil {
		return 1
	}
	return *c.ruler.PanStep
}

func (c *Controller) rulerSettings() panes.RulerSettings {
	isSet := func(b *bool) bool { return b != nil && *b }
	return panes.RulerSettings{
		CenterIndicator: isSet(c.ruler.CenterIndicator),
		Timestamp:       isSet(c.ruler.Timestamp),
		DayNight:        isSet(c.ruler.DayNight),
	}
}

func (c *Controller) showHelp() {
	if c.data.ShowHelp {
		return
	}
	c.helpContent = c.rootPane.GetHelp()
	c.data.ShowHelp = true
	c.rootPane.ApplyModalOverlay(c.helpOverlay)
}

func (c *Controller) hideHelp() {
	if !c.data.ShowHelp {
		return
	}
	c.data.ShowHelp = false
	if err := c.rootPane.PopModalOverlay(); err != nil {
		log.Warn().Err(err).Msg("help shown without overlay; likely logic error")
	}
}

// handleEvent processes a single terminal event and returns whether the
// program should exit.
func (c *Controller) handleEvent(ev tcell.Event) (exit bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	start := time.Now()

	switch e := ev.(type) {
	case *tcell.EventKey:
		key := input.KeyFromTcellEvent(e)
		if !c.rootPane.ProcessInput(key) {
			log.Debug().Str("key", key.ToDebugString()).Msg("could not apply key input")
		}

	case *tcell.EventMouse:
		c.handleMouseEvent(e)

	case *tcell.EventResize:
		c.syncer.NeedsSync()
	}

	c.data.EventProcessingTimes.Add(time.Since(start))

	return c.exitRequested
}

// cursorTime gives the time under the mouse cursor while it is over the
// ruler.
func (c *Controller) cursorTime() (time.Time, bool) {
	pos := c.data.CursorPos
	if c.rootPane.GetPositionInfo(pos.X, pos.Y).PaneType() != ui.RulerPaneType {
		return time.Time{}, false
	}
	rulerX, _, rulerW, _ := c.rulerDimensions()
	return c.viewport.TimeAt(float64(pos.X-rulerX), float64(rulerW))
}

// handleMouseEvent translates a mouse event into pointer and wheel events on
// the viewport. Pressing the primary button on the ruler starts a drag, which
// then follows the pointer (even outside the ruler) until the button is
// released.
func (c *Controller) handleMouseEvent(e *tcell.EventMouse) {
	x, y := e.Position()
	c.data.CursorPos = ui.MouseCursorPos{X: x, Y: y}

	rulerX, rulerY, rulerW, _ := c.rulerDimensions()
	localX, localY := float64(x-rulerX), float64(y-rulerY)
	dragging := c.viewport.Drag().Mode != control.DragModeIdle

	buttons := e.Buttons()
	pressed := buttons&tcell.Button1 != 0 && !c.buttonHeld
	c.buttonHeld = buttons&tcell.Button1 != 0

	switch {
	case buttons&tcell.Button1 != 0:
		if dragging {
			c.viewport.PointerMove(localX, localY)
			return
		}
		if !pressed {
			// held since a press that started nothing
			return
		}
		info, onRuler := c.rootPane.GetPositionInfo(x, y).(ui.RulerPanePositionInfo)
		if !onRuler {
			return
		}
		c.viewport.PointerDown(float64(info.LocalX), float64(info.LocalY), float64(rulerW))
		log.Trace().Str("mode", c.viewport.Drag().Mode.ToString()).Msg("started drag")

	case dragging:
		// any event without the primary button ends the drag
		c.viewport.PointerUp()

	case buttons&tcell.WheelUp != 0:
		if c.rootPane.GetPositionInfo(x, y).PaneType() == ui.RulerPaneType {
			c.viewport.Wheel(-1)
		}

	case buttons&tcell.WheelDown != 0:
		if c.rootPane.GetPositionInfo(x, y).PaneType() == ui.RulerPaneType {
			c.viewport.Wheel(+1)
		}
	}
}

// render draws a frame.
func (c *Controller) render() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	start := time.Now()
	c.rootPane.Draw()
	c.data.RenderTimes.Add(time.Since(start))
}

// reloadConfig rereads the config file and applies its stylesheet and ruler
// settings. Key bindings are only read on startup.
// An unreadable or invalid config leaves the current one in place.
func (c *Controller) reloadConfig() {
	configData, err := readConfig(c.data.EnvData.ConfigFilePath(), c.theme)
	if err != nil {
		log.Warn().Err(err).Msg("could not reload config, keeping current")
		return
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()
	*c.stylesheet = *styling.NewStylesheetFromConfig(configData.Stylesheet)
	c.ruler = configData.Ruler
	log.Info().Msg("reloaded config")
}

// readConfig reads and parses the config file at the given path.
// A missing file gives the defaults.
func readConfig(path string, theme config.ColorschemeType) (config.Config, error) {
	yamlData, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		yamlData = nil
	} else if err != nil {
		return config.Default(theme), fmt.Errorf("can't read config file '%s' (%w)", path, err)
	}
	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		return configData, fmt.Errorf("can't parse config file '%s' (%w)", path, err)
	}
	return configData, nil
}

// WatchConfig makes the controller reload the config whenever the config file
// changes while it runs.
func (c *Controller) WatchConfig(watcher *config.Watcher) {
	c.configWatcher = watcher
}

type controllerEvent int

const (
	controllerEventExit controllerEvent = iota
	controllerEventRender
	controllerEventReloadConfig
)

// drainEvents empties all buffered events from the channel.
// It reports whether an exit event was encountered, so the caller knows to
// exit, and whether a config reload was requested.
func drainEvents(c chan controllerEvent) (exit, reload bool) {
	for {
		select {
		case bufferedEvent := <-c:
			switch bufferedEvent {
			case controllerEventRender:
				// dump extra render events
			case controllerEventReloadConfig:
				reload = true
			case controllerEventExit:
				return true, reload
			}
		default:
			return false, reload
		}
	}
}

// Run runs the TUI until the user quits.
func (c *Controller) Run() {
	log.Info().Msg("timeruler TUI started")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	post := func(e controllerEvent) {
		select {
		case c.controllerEvents <- e:
		case <-ctx.Done():
		}
	}

	var wg sync.WaitGroup

	// Run the main render loop, that renders or exits when prompted accordingly
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer c.initializedScreen.Fini()
		for controllerEvent := range c.controllerEvents {
			switch controllerEvent {
			case controllerEventRender, controllerEventReloadConfig:
				exit, reload := drainEvents(c.controllerEvents)
				if exit {
					return
				}
				if reload || controllerEvent == controllerEventReloadConfig {
					c.reloadConfig()
				}
				c.render()

			case controllerEventExit:
				return

			default:
				log.Error().Interface("event", controllerEvent).Msgf("unhandled controller event")
			}
		}
	}()

	// Redraw at the start of every minute, for the day/night shading to follow
	// the clock.
	go func() {
		for {
			next := time.Now().Truncate(time.Minute).Add(time.Minute)
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Until(next)):
				post(controllerEventRender)
			}
		}
	}()

	if c.configWatcher != nil {
		go c.configWatcher.Run(ctx, func() { post(controllerEventReloadConfig) })
		defer c.configWatcher.Close()
	}

	// Run the event tracking loop, that waits for and processes events and pings
	// for a redraw (or program exit) after each event.
	go func() {
		for {
			ev := c.screenEvents.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			if c.handleEvent(ev) {
				post(controllerEventExit)
				return
			}
			post(controllerEventRender)
		}
	}()

	post(controllerEventRender)
	wg.Wait()
	log.Info().Msg("timeruler TUI exited")
}
