// Package timesource abstracts the wall clock so clock faces can be
// rendered for any instant.
package timesource

import (
	"fmt"
	"strings"
	"time"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System is the host wall clock.
var System Clock = systemClock{}

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// Func adapts a plain function.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// In converts the readings of c to loc. A nil loc keeps c's location.
func In(c Clock, loc *time.Location) Clock {
	if loc == nil {
		return c
	}
	return Func(func() time.Time { return c.Now().In(loc) })
}

// LoadLocation resolves an IANA zone name. The empty string and "Local"
// mean the host zone.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", name, err)
	}
	return loc, nil
}

// Zones is a short list of well known zone names offered for completion.
var Zones = []string{
	"Local",
	"UTC",
	"America/Chicago",
	"America/Los_Angeles",
	"America/New_York",
	"America/Sao_Paulo",
	"Asia/Dubai",
	"Asia/Kolkata",
	"Asia/Shanghai",
	"Asia/Singapore",
	"Asia/Tokyo",
	"Australia/Melbourne",
	"Australia/Sydney",
	"Europe/Berlin",
	"Europe/London",
	"Europe/Paris",
	"Europe/Stockholm",
	"Pacific/Auckland",
}

// Complete returns the zones containing prefix, case-insensitively.
func Complete(prefix string) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	var out []string
	for _, z := range Zones {
		if strings.Contains(strings.ToLower(z), prefix) {
			out = append(out, z)
		}
	}
	return out
}
