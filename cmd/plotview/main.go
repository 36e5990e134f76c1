// Command plotview is a terminal plot viewer for measurement signals.
//
// Interaction follows the measurement-viewer conventions: pan mode and
// cursor mode are switched with p/c (or the context menu), x/y/b arm
// constrained zoom gestures in cursor mode, the wheel zooms (centered
// on the cursor line when visible) and q quits.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/dshills/plotview/internal/app"
	"github.com/dshills/plotview/internal/renderer"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  = flag.String("config", "", "TOML settings file")
		sessionPath = flag.String("session", "", "display session file, restored at startup and saved on exit")
		logLevel    = flag.String("log-level", "info", "log level: debug, info, warn, error")
		logFile     = flag.String("log-file", "", "log destination (default: discard; the terminal is in use)")
	)
	flag.Parse()

	log := app.NullLogger
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "plotview: open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		log = app.NewLogger(app.LoggerConfig{
			Level:  app.ParseLogLevel(*logLevel),
			Output: f,
			Prefix: "plotview",
		})
	}

	a, err := app.New(app.Config{
		ConfigPath:  *configPath,
		SessionPath: *sessionPath,
		Logger:      log,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "plotview: %v\n", err)
		return 1
	}

	a.SetSeries(demoSeries())

	if err := a.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "plotview: %v\n", err)
		return 1
	}
	return 0
}

// demoSeries generates placeholder signals until measurement-file
// loading lands.
// TODO: replace with MDF channel extraction once the decoder package
// is ready.
func demoSeries() []renderer.Series {
	const n = 2000

	sine := renderer.Series{Name: "sine"}
	ramp := renderer.Series{Name: "ramp"}
	for i := 0; i < n; i++ {
		t := float64(i) * 0.05
		sine.X = append(sine.X, t)
		sine.Y = append(sine.Y, 50+40*math.Sin(t/4))
		ramp.X = append(ramp.X, t)
		ramp.Y = append(ramp.Y, math.Mod(t, 100))
	}
	return []renderer.Series{sine, ramp}
}
