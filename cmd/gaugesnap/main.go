package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/roffe/txgauges/pkg/config"
	"github.com/roffe/txgauges/pkg/gauge"
	"github.com/roffe/txgauges/pkg/gauges/analogclock"
	"github.com/roffe/txgauges/pkg/gauges/compass"
	"github.com/roffe/txgauges/pkg/gauges/digitalclock"
	"github.com/roffe/txgauges/pkg/gauges/speedometer"
	"github.com/roffe/txgauges/pkg/paint"
	"github.com/roffe/txgauges/pkg/snapshot"
	"github.com/roffe/txgauges/pkg/timesource"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	out         string
	size        int
	supersample int
	at          string
	location    string
	heading     float64
	speed       float64
	maxSpeed    float64
	limiter     bool
	gauges      string
}

func run(args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var o options
	fs := flag.NewFlagSet("gaugesnap", flag.ContinueOnError)
	fs.StringVar(&o.out, "out", ".", "output directory")
	fs.IntVar(&o.size, "size", 400, "image width and height in pixels")
	fs.IntVar(&o.supersample, "supersample", 2, "render at this multiple and scale down")
	fs.StringVar(&o.at, "time", "", "RFC3339 instant for the clocks, now when empty")
	fs.StringVar(&o.location, "location", cfg.Clock.Location, "time zone of the analog clock")
	fs.Float64Var(&o.heading, "heading", 0, "compass heading in degrees")
	fs.Float64Var(&o.speed, "speed", 0, "speedometer speed")
	fs.Float64Var(&o.maxSpeed, "max", cfg.Speedometer.MaxSpeed, "limiter max speed")
	fs.BoolVar(&o.limiter, "limiter", cfg.Speedometer.Limiter, "engage the limiter")
	fs.StringVar(&o.gauges, "gauges", "clock,compass,digital,speed", "comma separated gauges to render")
	if err := fs.Parse(args); err != nil {
		return err
	}

	clock := timesource.System
	if o.at != "" {
		t, err := time.Parse(time.RFC3339, o.at)
		if err != nil {
			return fmt.Errorf("invalid -time: %w", err)
		}
		clock = timesource.Fixed(t)
	}
	loc, err := timesource.LoadLocation(o.location)
	if err != nil {
		return err
	}

	fonts, err := paint.DefaultFonts()
	if err != nil {
		return err
	}

	painters := map[string]func() gauge.Painter{
		"clock": func() gauge.Painter {
			return analogclock.New(&analogclock.Config{Clock: clock, Location: loc})
		},
		"compass": func() gauge.Painter {
			return compass.New(&compass.Config{Heading: o.heading})
		},
		"digital": func() gauge.Painter {
			return digitalclock.New(&digitalclock.Config{Clock: timesource.In(clock, loc)})
		},
		"speed": func() gauge.Painter {
			s := speedometer.New(&speedometer.Config{
				ScaleMax: cfg.Speedometer.ScaleMax,
				MaxSpeed: o.maxSpeed,
				Limiter:  o.limiter,
			})
			s.SetSpeed(o.speed)
			return s
		},
	}

	if err := os.MkdirAll(o.out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	opts := snapshot.Options{
		Width:       o.size,
		Height:      o.size,
		Supersample: o.supersample,
		Fonts:       fonts,
	}
	for _, name := range strings.Split(o.gauges, ",") {
		name = strings.TrimSpace(name)
		newPainter, ok := painters[name]
		if !ok {
			return fmt.Errorf("unknown gauge %q", name)
		}
		filename := filepath.Join(o.out, name+".png")
		if err := snapshot.WriteFile(filename, newPainter(), opts); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Fprintln(stdout, filename)
	}
	return nil
}
