package model

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// SuntimesProvider computes sunrise and sunset for a fixed location.
// Results are cached per day, as computing them is comparatively slow and a
// ruler queries the same few days for every column.
type SuntimesProvider struct {
	Latitude  float64
	Longitude float64

	cache map[dayKey]SunTimes
}

const maxCachedDays = 64

type dayKey struct {
	year  int
	month time.Month
	day   int
}

// SunTimes represents the sunrise and sunset times of a day.
type SunTimes struct {
	Rise, Set time.Time
}

// Get returns the sunrise and sunset times of the (local) day the given time
// falls on.
func (p *SuntimesProvider) Get(t time.Time) SunTimes {
	local := t.Local()
	key := dayKey{local.Year(), local.Month(), local.Day()}
	if st, ok := p.cache[key]; ok {
		return st
	}

	rise, set := sunrise.SunriseSunset(p.Latitude, p.Longitude, key.year, key.month, key.day)
	st := SunTimes{Rise: rise.Local(), Set: set.Local()}

	if p.cache == nil || len(p.cache) >= maxCachedDays {
		p.cache = make(map[dayKey]SunTimes)
	}
	p.cache[key] = st
	return st
}

// IsDaylight returns whether the given time (seconds since the epoch) is
// between sunrise and sunset of its day.
// Polar day and night (for which no sunrise/sunset exists) count as night.
func (p *SuntimesProvider) IsDaylight(seconds float64) bool {
	t := FromSeconds(seconds)
	st := p.Get(t)
	if st.Rise.IsZero() || st.Set.IsZero() {
		return false
	}
	return !t.Before(st.Rise) && t.Before(st.Set)
}
