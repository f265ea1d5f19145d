package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/psidex/kiu/internal/batch"
	"github.com/psidex/kiu/internal/config"
	"github.com/psidex/kiu/internal/graphs/formats"
	"github.com/psidex/kiu/internal/lib"
	"github.com/psidex/kiu/internal/sampler"
	"github.com/psidex/kiu/internal/snapshot"
)

const usage = `usage: kiu <command> [flags]

commands:
  render    generate street networks and write them to files
  sample    print sampled points of every path in an SVG or HTML file
  snapshot  screenshot a running site with headless Chrome
  version   print the version
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "render":
		err = render(args)
	case "sample":
		err = sample(args)
	case "snapshot":
		err = snap(args)
	case "version", "-version", "--version":
		fmt.Println(lib.Version)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	cfgPath := fs.String("config", "", "path to a toml, yaml or json config file")
	seed := fs.Int("seed", -1, "first seed to render (defaults to the configured seed)")
	count := fs.Int("count", 1, "number of consecutive seeds to render")
	formatList := fs.String("formats", "", "comma separated output formats: "+strings.Join(formats.Names(), ", "))
	outDir := fs.String("out", "", "directory to write files to")
	workers := fs.Uint("workers", 0, "number of render workers")
	cooldown := fs.Duration("cooldown", 0, "pause between jobs on each worker")
	_ = fs.Parse(args)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	logger := lib.LevelLogger(os.Stderr, cfg.LogLevel)

	if *seed >= 0 {
		cfg.Streets.Seed = *seed
	}
	if *formatList != "" {
		cfg.Output.Formats = strings.Split(*formatList, ",")
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *workers != 0 {
		cfg.Output.Workers = *workers
	}
	if *count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", *count)
	}

	outputs, err := batch.OutputsFor(cfg.Output.Formats)
	if err != nil {
		return err
	}

	seeds := make([]int, *count)
	for i := range seeds {
		seeds[i] = cfg.Streets.Seed + i
	}

	b := batch.NewBatch(batch.Config{
		Base:     cfg.Streets,
		Seeds:    seeds,
		Outputs:  outputs,
		OutDir:   cfg.Output.Dir,
		Workers:  cfg.Output.Workers,
		Cooldown: *cooldown,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := b.Run(); err != nil {
		return err
	}

	done := make(chan batch.Result, 1)
	go func() { done <- b.Wait() }()

	var result batch.Result
	select {
	case result = <-done:
	case <-ctx.Done():
		logger.Warn("Interrupted, stopping workers")
		result = b.Cancel()
	}

	for _, f := range result.Files {
		fmt.Println(f)
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d renders failed", result.Failed)
	}
	return nil
}

func sample(args []string) error {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	x := fs.Float64("x", 0, "pointer x")
	y := fs.Float64("y", 0, "pointer y")
	pointer := fs.Bool("pointer", false, "print the proximity of each path to -x,-y")
	maxDist := fs.Float64("max", sampler.DefaultMaxDistance, "proximity falloff distance")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("expected one file argument")
	}
	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	paths, err := sampler.ExtractPaths(f)
	if err != nil {
		return err
	}

	for i, d := range paths {
		points := sampler.SamplePathPoints(d)
		if *pointer {
			p := sampler.Proximity(points, sampler.Point{X: *x, Y: *y}, *maxDist)
			fmt.Printf("%d\t%.3f\t%d points\n", i, p, len(points))
			continue
		}
		fmt.Printf("%d\t%v\n", i, points)
	}
	return nil
}

func snap(args []string) error {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	url := fs.String("url", "http://127.0.0.1:8080/", "the page to capture")
	out := fs.String("out", "snapshot", "file to write the screenshot to, the image extension is added when missing")
	quality := fs.Int("quality", snapshot.DefaultQuality, "100 captures a png, lower values a jpeg of that quality")
	width := fs.Int64("width", snapshot.DefaultWidth, "viewport width")
	height := fs.Int64("height", snapshot.DefaultHeight, "viewport height")
	x := fs.Float64("x", -1, "pointer x, negative to leave the pointer off the page")
	y := fs.Float64("y", -1, "pointer y")
	wait := fs.Duration("wait", time.Second, "time to let the page settle before capture")
	timeout := fs.Duration("timeout", 30*time.Second, "overall capture timeout")
	logLevel := fs.String("l", "info", "log level")
	_ = fs.Parse(args)

	logger := lib.LevelLogger(os.Stderr, *logLevel)

	cfg := snapshot.DefaultConfig(*url)
	cfg.Width, cfg.Height = *width, *height
	cfg.Wait = lib.DurationFrom(*wait)
	cfg.Timeout = lib.DurationFrom(*timeout)
	cfg.Quality = *quality
	if *x >= 0 && *y >= 0 {
		cfg.Pointer = &sampler.Point{X: *x, Y: *y}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := snapshot.Capture(ctx, cfg)
	if err != nil {
		return err
	}
	filename := *out
	if filepath.Ext(filename) == "" {
		filename += res.Ext
	}
	if err := os.WriteFile(filename, res.Image, 0o644); err != nil {
		return err
	}

	logger.Info("Captured snapshot",
		"file", filename,
		"paths", res.Paths,
		"bytes", res.Bytes,
		"duration", res.Duration,
	)
	return nil
}
