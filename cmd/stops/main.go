// Command stops loads a stops file and a points document and prints the
// parsed records.
//
// Settings come from the environment, optionally through a .env file:
//
//	ENV          local|development for console logs (default production)
//	LOG_LEVEL    zerolog level (default info)
//	STOPS_FILE   stops file (default stops.csv)
//	POINTS_FILE  points document (default type.csv)
//	DELIMITER    single character delimiter (default ,)
//	BAD_LINES    error|warn|skip (default error)
//	WRITE_DEMO   write demo files to STOPS_FILE and POINTS_FILE first
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/shapestone/shape-stops/internal/config"
	"github.com/shapestone/shape-stops/pkg/stops"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found (using environment variables)")
	}

	cfg := config.LoadFromEnv()
	cfg.InitializeLogging()

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Failed to load stops")
	}
}

func run(cfg *config.Config, w io.Writer) error {
	if cfg.WriteDemo {
		if err := writeDemo(cfg); err != nil {
			return err
		}
	}

	opts := cfg.ReadOptions()

	busStops, err := stops.ReadStopsFile(cfg.StopsFile, opts)
	if err != nil {
		return err
	}
	log.Info().Str("file", cfg.StopsFile).Int("stops", len(busStops)).Msg("Loaded stops")

	for i, s := range busStops {
		fmt.Fprintf(w, "stop %d connections=[%s] at (%s, %s)\n",
			s.Number,
			strings.Join(s.Connections, " "),
			stops.FormatCoordinate(s.Coordinates.Latitude),
			stops.FormatCoordinate(s.Coordinates.Longitude),
		)
		if i > 0 {
			prev := busStops[i-1]
			fmt.Fprintf(w, "  %.6f from stop %d\n", s.Coordinates.Distance(prev.Coordinates), prev.Number)
		}
	}

	doc, err := stops.ReadDocumentFile(cfg.PointsFile, opts)
	if err != nil {
		return err
	}
	log.Info().Str("file", cfg.PointsFile).Int("rows", len(doc.Rows)).Msg("Loaded points")

	fmt.Fprintf(w, "header: %s\n", strings.Join(doc.Header, " | "))
	for _, p := range doc.Rows {
		fmt.Fprintf(w, "point (%s, %s)\n",
			stops.FormatCoordinate(p.Latitude),
			stops.FormatCoordinate(p.Longitude),
		)
	}
	return nil
}

// writeDemo writes the demo stops and points to the configured files.
func writeDemo(cfg *config.Config) error {
	stopsData, err := stops.RenderStops(stops.StopsHeader(), stops.DemoStops())
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.StopsFile, stopsData, 0o644); err != nil {
		return fmt.Errorf("write demo stops: %w", err)
	}

	pointsData, err := stops.DemoDocument().Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.PointsFile, pointsData, 0o644); err != nil {
		return fmt.Errorf("write demo points: %w", err)
	}

	log.Debug().Msgf("Wrote demo files: stops=%s points=%s", cfg.StopsFile, cfg.PointsFile)
	return nil
}
