package ui_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/ui"
)

var baseTime = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func mustClip(t *testing.T, start, end time.Time) *model.ClipRange {
	t.Helper()
	clip, err := model.NewClipRange(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	return clip
}

func TestTickGeometry(t *testing.T) {
	t0 := model.ToSeconds(baseTime)
	window := model.TimeWindow{Start: t0, End: t0 + 800}
	spec := model.TickSpecFor(1)

	ticks := ui.TickGeometry(window, 1, spec)
	if len(ticks) != 161 {
		t.Fatalf("expected 161 ticks (every 5s incl. both ends), got %d", len(ticks))
	}

	majors := 0
	for i, tick := range ticks {
		if tick.X != float64(i*5) {
			t.Fatalf("tick %d at %f, expected %d", i, tick.X, i*5)
		}
		if tick.Major != (i%12 == 0) {
			t.Errorf("tick %d major=%t, unexpected", i, tick.Major)
		}
		if tick.Major {
			majors++
			if expected := model.ClockString(t0 + tick.X); tick.Label != expected {
				t.Errorf("major tick %d labeled '%s', expected '%s'", i, tick.Label, expected)
			}
		} else if tick.Label != "" {
			t.Errorf("minor tick %d labeled '%s'", i, tick.Label)
		}
	}
	if majors != 14 {
		t.Errorf("expected 14 major ticks, got %d", majors)
	}

	t.Run("first tick may be left of the window", func(t *testing.T) {
		offset := model.TimeWindow{Start: t0 + 2, End: t0 + 100}
		ticks := ui.TickGeometry(offset, 1, spec)
		if ticks[0].X != -2 {
			t.Errorf("expected first tick at -2, got %f", ticks[0].X)
		}
	})

	t.Run("major ticks inside the window match the labels", func(t *testing.T) {
		for _, zoom := range []float64{1, 0.3, 0.12, 0.07, 80.0 / 3600} {
			spec := model.TickSpecFor(zoom)
			offset := model.TimeWindow{Start: t0 + 1234.5, End: t0 + 1234.5 + model.PixelsToSeconds(300, zoom)}

			majorXs := []float64{}
			for _, tick := range ui.TickGeometry(offset, zoom, spec) {
				if tick.Major && tick.X >= 0 {
					majorXs = append(majorXs, tick.X)
				}
			}
			labelXs := []float64{}
			for _, label := range ui.LabelGeometry(offset, zoom, spec.Major) {
				if label.X >= 0 {
					labelXs = append(labelXs, label.X)
				}
			}
			if !reflect.DeepEqual(majorXs, labelXs) {
				t.Errorf("zoom %f: major ticks at %v, labels at %v", zoom, majorXs, labelXs)
			}
		}
	})
}

func TestLabelGeometry(t *testing.T) {
	t0 := model.ToSeconds(baseTime)
	window := model.TimeWindow{Start: t0 - 30, End: t0 + 3600}

	// the first label is at t0-900, just left of the window
	labels := ui.LabelGeometry(window, 0.1, 900)
	if len(labels) != 6 {
		t.Fatalf("expected 6 labels, got %d", len(labels))
	}
	for i, label := range labels {
		offset := float64((i - 1) * 900)
		expectedX := (offset + 30) * 0.1
		if label.X < expectedX-1e-9 || label.X > expectedX+1e-9 {
			t.Errorf("label %d at %f, expected %f", i, label.X, expectedX)
		}
		if expected := model.ClockString(t0 + offset); label.Text != expected {
			t.Errorf("label %d reads '%s', expected '%s'", i, label.Text, expected)
		}
	}
}

func TestClipGeometry(t *testing.T) {
	t0 := model.ToSeconds(baseTime)
	window := model.TimeWindow{Start: t0, End: t0 + 800}

	t.Run("nil clip", func(t *testing.T) {
		if (ui.ClipGeometry(window, 1, 800, nil) != ui.ClipMarkers{}) {
			t.Error("expected empty geometry for nil clip")
		}
	})

	t.Run("entirely after", func(t *testing.T) {
		clip := mustClip(t, baseTime.Add(900*time.Second), baseTime.Add(1000*time.Second))
		if (ui.ClipGeometry(window, 1, 800, clip) != ui.ClipMarkers{}) {
			t.Error("expected empty geometry")
		}
	})

	t.Run("entirely before", func(t *testing.T) {
		clip := mustClip(t, baseTime.Add(-100*time.Second), baseTime.Add(-10*time.Second))
		if (ui.ClipGeometry(window, 1, 800, clip) != ui.ClipMarkers{}) {
			t.Error("expected empty geometry")
		}
	})

	t.Run("inside", func(t *testing.T) {
		clip := mustClip(t, baseTime.Add(200*time.Second), baseTime.Add(600*time.Second))
		g := ui.ClipGeometry(window, 1, 800, clip)
		if g.StartX == nil || *g.StartX != 200 {
			t.Errorf("expected start marker at 200, got %v", g.StartX)
		}
		if g.EndX == nil || *g.EndX != 600 {
			t.Errorf("expected end marker at 600, got %v", g.EndX)
		}
		if !g.Band || g.BandFrom != 200 || g.BandTo != 600 {
			t.Errorf("unexpected band %+v", g)
		}
	})

	t.Run("spanning", func(t *testing.T) {
		clip := model.NewClipRangeAround(baseTime, 10000*time.Hour)
		g := ui.ClipGeometry(window, 1, 800, clip)
		if g.StartX != nil || g.EndX != nil {
			t.Error("expected no markers for a clip spanning the window")
		}
		if !g.Band || g.BandFrom != 0 || g.BandTo != 800 {
			t.Errorf("expected band across the full width, got %+v", g)
		}
	})

	t.Run("start off to the left", func(t *testing.T) {
		clip := mustClip(t, baseTime.Add(-200*time.Second), baseTime.Add(300*time.Second))
		g := ui.ClipGeometry(window, 1, 800, clip)
		if g.StartX != nil {
			t.Error("expected no start marker")
		}
		if g.EndX == nil || *g.EndX != 300 || g.BandFrom != 0 || g.BandTo != 300 {
			t.Errorf("unexpected geometry %+v", g)
		}
	})
}

func TestNewDrawPlan(t *testing.T) {
	t0 := model.ToSeconds(baseTime)
	in := ui.PlanInput{
		Window: model.TimeWindow{Start: t0 - 400, End: t0 + 400},
		Zoom:   1,
		Center: baseTime,
		Clip:   mustClip(t, baseTime.Add(-200*time.Second), baseTime.Add(200*time.Second)),
		Width:  800,
	}

	plan := ui.NewDrawPlan(in)
	if plan.CenterX != 400 {
		t.Errorf("expected center at 400, got %f", plan.CenterX)
	}
	if expected := "Timestamp: " + model.TimestampString(baseTime); plan.TimestampLabel != expected {
		t.Errorf("expected '%s', got '%s'", expected, plan.TimestampLabel)
	}
	if (plan.Spec != model.TickSpec{Major: 60, Minor: 5}) {
		t.Errorf("unexpected spec %+v", plan.Spec)
	}
	if len(plan.Labels) == 0 || len(plan.Ticks) == 0 {
		t.Error("expected ticks and labels")
	}

	if again := ui.NewDrawPlan(in); !reflect.DeepEqual(plan, again) {
		t.Error("plan not reproducible for the same input")
	}
}
