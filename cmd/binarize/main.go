// Package main provides the binarize CLI: decode an image, threshold it,
// write the binary result as PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/born-ml/vision/backend/cpu"
	"github.com/born-ml/vision/vision"
)

const version = "v0.1.0-dev"

func main() {
	var (
		inPath   = flag.String("in", "", "input image (PNG or JPEG)")
		outPath  = flag.String("out", "out.png", "output PNG path")
		method   = flag.String("method", "binary", "threshold method: binary, otsu, triangle")
		value    = flag.Float64("value", 0.5, "normalized threshold in [0, 1] (binary method only)")
		inverted = flag.Bool("invert", false, "invert the foreground/background comparison")
		verbose  = flag.Bool("v", false, "enable debug logging")
		showVer  = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVer {
		fmt.Printf("binarize %s\n", version)
		return
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	if *inPath == "" {
		log.Fatal().Msg("missing required -in flag")
	}

	if err := run(log, *inPath, *outPath, *method, *value, *inverted); err != nil {
		log.Fatal().Err(err).Msg("binarize failed")
	}
}

func run(log zerolog.Logger, inPath, outPath, method string, value float64, inverted bool) error {
	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	decoded, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	backend := cpu.New()
	img, err := vision.FromImage(decoded, backend)
	if err != nil {
		return fmt.Errorf("convert input: %w", err)
	}

	log.Debug().
		Str("format", format).
		Ints("shape", []int(img.Shape())).
		Msg("decoded input image")

	opts := vision.Options{
		Method:   vision.Method(method),
		Inverted: inverted,
		Value:    value,
	}

	start := time.Now()
	bin, err := vision.Threshold(img, opts)
	if err != nil {
		return fmt.Errorf("threshold: %w", err)
	}

	log.Info().
		Str("method", method).
		Bool("inverted", inverted).
		Dur("elapsed", time.Since(start)).
		Msg("thresholded image")

	gray, err := vision.ToGray(bin)
	if err != nil {
		return fmt.Errorf("convert output: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, gray); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	log.Info().Str("path", outPath).Msg("wrote binary image")
	return nil
}
