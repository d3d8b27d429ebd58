package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	radius := flag.Float64("radius", DefaultTrackConfig().Radius, "table radius, in table units")
	density := flag.Float64("density", DefaultTrackConfig().Density, "shading density multiplier")
	res := flag.Int("res", DefaultSamplingConfig().Width, "working grid resolution")
	maxStep := flag.Float64("max-step", DefaultTrackConfig().MaxStep, "maximum distance between consecutive coordinates")
	minSeg := flag.Float64("min-seg", DefaultTrackConfig().MinSegment, "minimum segment length")
	logfile := flag.String("logfile", "", "log file")
	loglevel := flag.String("loglevel", "info", "log level")
	flag.Parse()

	if os.Getenv("DEBUG") != "" {
		loglevel = &[]string{"debug"}[0]
	}

	switch *loglevel {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		fmt.Println("error: unknown log level")
	}

	if logfile != nil && *logfile != "" {
		f, err := os.OpenFile(*logfile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			panic(err)
		}

		log.Logger = log.Output(f)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if len(flag.Args()) == 0 {
		fmt.Println("usage: imagetotrack <convert|trace|preview|stats> ...")
		os.Exit(1)
	}

	scfg := SamplingConfig{Width: *res, Height: *res}
	tcfg := TrackConfig{
		Radius:     *radius,
		Density:    *density,
		MaxStep:    *maxStep,
		MinSegment: *minSeg,
	}

	command := flag.Args()[0]
	args := flag.Args()[1:]

	switch command {
	case "convert":
		if len(args) == 0 {
			fmt.Println("usage: imagetotrack convert <image>")
			os.Exit(1)
		}

		if err := convert(args[0], scfg, tcfg, false); err != nil {
			log.Fatal().Err(err).Msg("convert failed")
		}
	case "trace":
		if len(args) == 0 {
			fmt.Println("usage: imagetotrack trace <image>")
			os.Exit(1)
		}

		if err := convert(args[0], scfg, tcfg, true); err != nil {
			log.Fatal().Err(err).Msg("trace failed")
		}
	case "preview":
		if len(args) < 2 {
			fmt.Println("usage: imagetotrack preview <track.txt> <out.png>")
			os.Exit(1)
		}

		track, err := ReadTrack(args[0])
		if err != nil {
			log.Fatal().Err(err).Msg("preview failed")
		}

		if err := WritePreview(args[1], track, tcfg); err != nil {
			log.Fatal().Err(err).Msg("preview failed")
		}
	case "stats":
		if len(args) == 0 {
			fmt.Println("usage: imagetotrack stats <track.txt>")
			os.Exit(1)
		}

		if err := dumpStats(args[0]); err != nil {
			log.Fatal().Err(err).Msg("stats failed")
		}
	default:
		fmt.Println("error: unknown command")
		os.Exit(1)
	}
}

// convert runs the whole pipeline on one image: sample, generate, write the
// track file and its preview next to the input.
func convert(input string, scfg SamplingConfig, tcfg TrackConfig, trace bool) error {
	start := time.Now()

	grid, err := Sample(input, scfg)
	if err != nil {
		return err
	}

	var track Track
	if trace {
		track, err = GenerateTrace(grid, DefaultEdgeConfig(), tcfg)
	} else {
		track, err = GenerateShading(grid, tcfg)
	}
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(input, filepath.Ext(input))

	if err := WriteTrack(base+".txt", track); err != nil {
		return err
	}

	if err := WritePreview(base+"_preview.png", track, tcfg); err != nil {
		return err
	}

	log.Info().
		Int("points", len(track)).
		Float64("length", Stats(track).Length).
		Dur("elapsed", time.Since(start)).
		Str("track", base+".txt").
		Str("preview", base+"_preview.png").
		Msg("track written")

	return nil
}
