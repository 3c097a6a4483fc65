package control_test

import (
	"errors"
	"testing"

	"github.com/ja-he/timeruler/internal/control"
)

func TestEnvDataFromEnvironment(t *testing.T) {
	env := func(m map[string]string) func(string) string {
		return func(k string) string { return m[k] }
	}

	t.Run("explicit home", func(t *testing.T) {
		e := control.EnvDataFromEnvironment(env(map[string]string{
			"TIMERULER_HOME": "/srv/timeruler/",
			"HOME":           "/home/someone",
			"LATITUDE":       "52.5",
			"LONGITUDE":      "13.4",
		}))
		if e.BaseDirPath != "/srv/timeruler" {
			t.Errorf("unexpected base dir '%s'", e.BaseDirPath)
		}
		if e.ConfigFilePath() != "/srv/timeruler/config.yaml" {
			t.Errorf("unexpected config path '%s'", e.ConfigFilePath())
		}
		if e.Latitude != "52.5" || e.Longitude != "13.4" {
			t.Errorf("unexpected coordinates %s/%s", e.Latitude, e.Longitude)
		}
	})

	t.Run("fallback home", func(t *testing.T) {
		e := control.EnvDataFromEnvironment(env(map[string]string{"HOME": "/home/someone"}))
		if e.BaseDirPath != "/home/someone/.config/timeruler" {
			t.Errorf("unexpected base dir '%s'", e.BaseDirPath)
		}
	})
}

func TestCoordinates(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		lat, lon, err := control.EnvData{Latitude: "52.5", Longitude: "-13.4"}.Coordinates()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if lat != 52.5 || lon != -13.4 {
			t.Errorf("unexpected coordinates %f/%f", lat, lon)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, _, err := control.EnvData{Latitude: "52.5"}.Coordinates()
		if !errors.Is(err, control.ErrNoCoordinates) {
			t.Errorf("expected ErrNoCoordinates, got %v", err)
		}
	})

	for name, e := range map[string]control.EnvData{
		"unparseable latitude":   {Latitude: "north", Longitude: "13.4"},
		"unparseable longitude":  {Latitude: "52.5", Longitude: "east"},
		"latitude out of range":  {Latitude: "91", Longitude: "13.4"},
		"longitude out of range": {Latitude: "52.5", Longitude: "-181"},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := e.Coordinates()
			if err == nil {
				t.Error("expected error")
			}
			if errors.Is(err, control.ErrNoCoordinates) {
				t.Error("expected a parse or range error, not ErrNoCoordinates")
			}
		})
	}
}
