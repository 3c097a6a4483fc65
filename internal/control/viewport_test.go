package control_test

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/ja-he/timeruler/internal/control"
	"github.com/ja-he/timeruler/internal/model"
)

var baseTime = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

const width = 800.0

// newTestController returns a controller centered on baseTime at zoom 1 with
// the clip's start marker at pixel 200 and its end marker at pixel 600.
func newTestController(t *testing.T) *control.ViewportController {
	t.Helper()
	clip, err := model.NewClipRange(baseTime.Add(-200*time.Second), baseTime.Add(200*time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	c := control.NewViewportController(baseTime, clip)
	c.SetZoom(1)
	return c
}

func TestInitialState(t *testing.T) {
	c := control.NewViewportController(baseTime, model.NewClipRangeAround(baseTime, 10000*time.Hour))
	if c.Zoom() != model.InitialZoom {
		t.Errorf("expected initial zoom %f, got %f", model.InitialZoom, c.Zoom())
	}
	if c.Drag().Mode != control.DragModeIdle {
		t.Errorf("expected idle, got %s", c.Drag().Mode.ToString())
	}
	if !c.Center().Equal(baseTime) {
		t.Errorf("unexpected center %s", c.Center())
	}
}

func TestVisibleWindow(t *testing.T) {
	c := newTestController(t)
	w := c.VisibleWindow(width)
	center := model.ToSeconds(baseTime)
	if w.Start != center-400 || w.End != center+400 {
		t.Errorf("unexpected window %+v around %f", w, center)
	}

	c.SetZoom(0.1)
	w = c.VisibleWindow(width)
	if math.Abs((w.End-w.Start)-8000) > 1e-6 {
		t.Errorf("expected 8000s wide window at zoom 0.1, got %f", w.End-w.Start)
	}
}

func TestTimeAt(t *testing.T) {
	c := newTestController(t)

	at, ok := c.TimeAt(450, width)
	if !ok || !at.Equal(baseTime.Add(50*time.Second)) {
		t.Errorf("expected %s under column 450, got %s (%t)", baseTime.Add(50*time.Second), at, ok)
	}
	if at, ok := c.TimeAt(0, width); !ok || !at.Equal(baseTime.Add(-400*time.Second)) {
		t.Errorf("expected window start under column 0, got %s (%t)", at, ok)
	}
	for _, x := range []float64{-1, width + 1} {
		if _, ok := c.TimeAt(x, width); ok {
			t.Errorf("expected no time outside the ruler at %f", x)
		}
	}
}

func TestPointerDown(t *testing.T) {
	t.Run("on start marker", func(t *testing.T) {
		c := newTestController(t)
		c.PointerDown(205, 3, width)
		if c.Drag().Mode != control.DragModeClipStart {
			t.Errorf("expected clip-start drag, got %s", c.Drag().Mode.ToString())
		}
		if (c.Drag().Anchor != control.PointerPos{X: 205, Y: 3}) {
			t.Errorf("unexpected anchor %+v", c.Drag().Anchor)
		}
	})

	t.Run("on end marker", func(t *testing.T) {
		c := newTestController(t)
		c.PointerDown(595, 0, width)
		if c.Drag().Mode != control.DragModeClipEnd {
			t.Errorf("expected clip-end drag, got %s", c.Drag().Mode.ToString())
		}
	})

	t.Run("elsewhere pans", func(t *testing.T) {
		c := newTestController(t)
		c.PointerDown(400, 0, width)
		if c.Drag().Mode != control.DragModePanning {
			t.Errorf("expected panning, got %s", c.Drag().Mode.ToString())
		}
		if c.Drag().Anchor.X != 400 {
			t.Errorf("unexpected anchor %+v", c.Drag().Anchor)
		}
	})

	t.Run("start wins on overlap", func(t *testing.T) {
		clip, _ := model.NewClipRange(baseTime.Add(-2*time.Second), baseTime.Add(2*time.Second))
		c := control.NewViewportController(baseTime, clip)
		c.SetZoom(1)
		c.PointerDown(400, 0, width)
		if c.Drag().Mode != control.DragModeClipStart {
			t.Errorf("expected clip-start drag, got %s", c.Drag().Mode.ToString())
		}
	})
}

func TestPanning(t *testing.T) {
	c := newTestController(t)
	c.SetZoom(0.1)
	before := c.Center()

	c.PointerDown(100, 0, width)
	c.PointerMove(150, 0)

	if expected := before.Add(-500 * time.Second); !c.Center().Equal(expected) {
		t.Errorf("expected center %s, got %s", expected, c.Center())
	}
	if c.Drag().Anchor.X != 150 {
		t.Errorf("expected anchor to follow pointer, got %+v", c.Drag().Anchor)
	}

	c.PointerMove(120, 0)
	if expected := before.Add(-200 * time.Second); !c.Center().Equal(expected) {
		t.Errorf("expected center %s, got %s", expected, c.Center())
	}
}

func TestPointerMoveWhileIdle(t *testing.T) {
	c := newTestController(t)
	before := c.Center()
	startBefore := c.Clip().Start()
	c.PointerMove(300, 0)
	if !c.Center().Equal(before) || !c.Clip().Start().Equal(startBefore) {
		t.Error("pointer move while idle changed state")
	}
}

func TestClipDragging(t *testing.T) {
	t.Run("start follows pointer", func(t *testing.T) {
		c := newTestController(t)
		start := c.Clip().Start()
		center := c.Center()

		c.PointerDown(200, 0, width)
		c.PointerMove(260, 0)

		if expected := start.Add(60 * time.Second); !c.Clip().Start().Equal(expected) {
			t.Errorf("expected start %s, got %s", expected, c.Clip().Start())
		}
		if c.Drag().Anchor.X != 260 {
			t.Errorf("expected anchor to follow, got %+v", c.Drag().Anchor)
		}
		if !c.Center().Equal(center) {
			t.Error("clip drag moved the view")
		}
	})

	t.Run("start clamps and keeps anchor", func(t *testing.T) {
		c := newTestController(t)
		end := c.Clip().End()

		c.PointerDown(200, 0, width)
		c.PointerMove(700, 0)

		if expected := end.Add(-time.Second); !c.Clip().Start().Equal(expected) {
			t.Errorf("expected start clamped to %s, got %s", expected, c.Clip().Start())
		}
		if c.Drag().Anchor.X != 200 {
			t.Errorf("expected anchor to stay when clamped, got %+v", c.Drag().Anchor)
		}

		// moving back from the still-anchored position is relative to the anchor
		c.PointerMove(190, 0)
		if expected := end.Add(-time.Second).Add(-10 * time.Second); !c.Clip().Start().Equal(expected) {
			t.Errorf("expected start %s, got %s", expected, c.Clip().Start())
		}
	})

	t.Run("end clamps", func(t *testing.T) {
		c := newTestController(t)
		start := c.Clip().Start()

		c.PointerDown(600, 0, width)
		c.PointerMove(0, 0)

		if expected := start.Add(time.Second); !c.Clip().End().Equal(expected) {
			t.Errorf("expected end clamped to %s, got %s", expected, c.Clip().End())
		}
		if c.Drag().Anchor.X != 600 {
			t.Errorf("expected anchor to stay when clamped, got %+v", c.Drag().Anchor)
		}
	})
}

func TestPointerUp(t *testing.T) {
	c := newTestController(t)
	c.PointerDown(200, 0, width)
	c.PointerUp()
	if (c.Drag() != control.DragState{Mode: control.DragModeIdle}) {
		t.Errorf("expected idle state with cleared anchor, got %+v", c.Drag())
	}

	start := c.Clip().Start()
	c.PointerMove(300, 0)
	if !c.Clip().Start().Equal(start) {
		t.Error("move after pointer up still dragged")
	}
}

func TestWheel(t *testing.T) {
	t.Run("direction", func(t *testing.T) {
		c := newTestController(t)
		c.SetZoom(0.5)
		c.Wheel(1)
		if math.Abs(c.Zoom()-0.45) > 1e-12 {
			t.Errorf("expected zoom out to 0.45, got %f", c.Zoom())
		}
		c.Wheel(-1)
		if math.Abs(c.Zoom()-0.495) > 1e-12 {
			t.Errorf("expected zoom in to 0.495, got %f", c.Zoom())
		}
		c.Wheel(0)
		if math.Abs(c.Zoom()-0.5445) > 1e-12 {
			t.Errorf("expected zero delta to zoom in, got %f", c.Zoom())
		}
	})

	t.Run("clamped at max", func(t *testing.T) {
		c := newTestController(t)
		for i := 0; i < 20; i++ {
			c.Wheel(-1)
		}
		if c.Zoom() != model.MaxZoom {
			t.Errorf("expected max zoom, got %f", c.Zoom())
		}
	})

	t.Run("clamped at min", func(t *testing.T) {
		c := newTestController(t)
		c.SetZoom(model.MinZoom)
		for i := 0; i < 20; i++ {
			c.Wheel(1)
		}
		if c.Zoom() != model.MinZoom {
			t.Errorf("expected min zoom, got %f", c.Zoom())
		}
	})

	t.Run("center anchored", func(t *testing.T) {
		c := newTestController(t)
		center := c.Center()
		c.Wheel(1)
		c.Wheel(-1)
		if !c.Center().Equal(center) {
			t.Error("zoom moved the center")
		}
	})
}

func TestKeyboardNavigation(t *testing.T) {
	c := newTestController(t)

	c.PanBy(90)
	if expected := baseTime.Add(90 * time.Second); !c.Center().Equal(expected) {
		t.Errorf("expected center %s, got %s", expected, c.Center())
	}

	c.SetZoom(0.15)
	c.PanByMajorTicks(-2)
	if expected := baseTime.Add(90*time.Second - 1800*time.Second); !c.Center().Equal(expected) {
		t.Errorf("expected center %s, got %s", expected, c.Center())
	}

	c.CenterOnClip()
	if !c.Center().Equal(baseTime) {
		t.Errorf("expected center on clip middle %s, got %s", baseTime, c.Center())
	}

	c.ResetZoom()
	if c.Zoom() != model.InitialZoom {
		t.Errorf("expected initial zoom, got %f", c.Zoom())
	}

	now := baseTime.Add(time.Hour)
	c.CenterOn(now)
	if !c.Center().Equal(now) {
		t.Errorf("expected center %s, got %s", now, c.Center())
	}
}

func TestPlanIsIdempotent(t *testing.T) {
	c := newTestController(t)
	c.SetZoom(0.3)
	a := c.Plan(width)
	b := c.Plan(width)
	if !reflect.DeepEqual(a, b) {
		t.Error("consecutive plans differ")
	}
	if c.Drag().Mode != control.DragModeIdle || !c.Center().Equal(baseTime) {
		t.Error("planning changed state")
	}
}
