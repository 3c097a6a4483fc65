package control

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ja-he/timeruler/internal/ui"
	"github.com/ja-he/timeruler/internal/util"
)

// EnvData represents the environment data.
type EnvData struct {
	BaseDirPath string
	Latitude    string
	Longitude   string
}

// ErrNoCoordinates is returned by EnvData.Coordinates if no location was
// provided.
var ErrNoCoordinates = errors.New("no latitude/longitude provided")

// EnvDataFromEnvironment reads the environment data via the given lookup
// (usually os.Getenv).
//
// The base directory is $TIMERULER_HOME, falling back to
// $HOME/.config/timeruler.
func EnvDataFromEnvironment(getenv func(string) string) EnvData {
	var envData EnvData

	timerulerHome := getenv("TIMERULER_HOME")
	if timerulerHome == "" {
		envData.BaseDirPath = filepath.Join(getenv("HOME"), ".config", "timeruler")
	} else {
		envData.BaseDirPath = strings.TrimRight(timerulerHome, "/")
	}

	envData.Latitude = getenv("LATITUDE")
	envData.Longitude = getenv("LONGITUDE")

	return envData
}

// ConfigFilePath returns the path of the config file.
func (e EnvData) ConfigFilePath() string {
	return filepath.Join(e.BaseDirPath, "config.yaml")
}

// Coordinates parses the latitude and longitude.
func (e EnvData) Coordinates() (lat, lon float64, err error) {
	if e.Latitude == "" || e.Longitude == "" {
		return 0, 0, ErrNoCoordinates
	}
	lat, err = strconv.ParseFloat(e.Latitude, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("could not parse latitude '%s' (%w)", e.Latitude, err)
	}
	lon, err = strconv.ParseFloat(e.Longitude, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("could not parse longitude '%s' (%w)", e.Longitude, err)
	}
	if lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("latitude %f out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf("longitude %f out of range [-180, 180]", lon)
	}
	return lat, lon, nil
}

// ControlData is the state of the TUI host that is not part of the ruler
// itself: overlay visibility, cursor and performance metrics.
type ControlData struct {
	CursorPos ui.MouseCursorPos

	EnvData EnvData

	ShowLog   bool
	ShowHelp  bool
	ShowDebug bool

	RenderTimes          util.MetricsHandler
	EventProcessingTimes util.MetricsHandler
}
