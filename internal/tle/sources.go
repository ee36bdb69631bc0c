package tle

import "time"

// Source describes one remote element catalog endpoint.
type Source struct {
	Name            string
	URL             string
	RefreshInterval time.Duration
	Enabled         bool
}

// Well-known CelesTrak group endpoints.
var (
	SourceStations = Source{
		Name:            "Space Stations",
		URL:             "https://celestrak.org/NORAD/elements/gp.php?GROUP=stations&FORMAT=tle",
		RefreshInterval: 30 * time.Minute,
		Enabled:         true,
	}
	SourceStarlink = Source{
		Name:            "Starlink",
		URL:             "https://celestrak.org/NORAD/elements/gp.php?GROUP=starlink&FORMAT=tle",
		RefreshInterval: time.Hour,
		Enabled:         true,
	}
	SourceActive = Source{
		Name:            "Active Satellites",
		URL:             "https://celestrak.org/NORAD/elements/gp.php?GROUP=active&FORMAT=tle",
		RefreshInterval: 2 * time.Hour,
		Enabled:         true,
	}
	SourceDebris = Source{
		Name:            "Space Debris",
		URL:             "https://celestrak.org/NORAD/elements/gp.php?SPECIAL=debris&FORMAT=tle",
		RefreshInterval: 3 * time.Hour,
		Enabled:         true,
	}
	SourceWeather = Source{
		Name:            "Weather Satellites",
		URL:             "https://celestrak.org/NORAD/elements/gp.php?GROUP=weather&FORMAT=tle",
		RefreshInterval: time.Hour,
		Enabled:         true,
	}
	SourceGPS = Source{
		Name:            "GPS Constellation",
		URL:             "https://celestrak.org/NORAD/elements/gp.php?GROUP=gps-ops&FORMAT=tle",
		RefreshInterval: 3 * time.Hour,
		Enabled:         true,
	}
)

// DefaultSources is the standard fetch set for the service daemon.
func DefaultSources() []Source {
	return []Source{SourceStations, SourceActive, SourceDebris}
}
