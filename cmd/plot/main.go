package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"spline-canvas/internal/common"
	"spline-canvas/internal/render"
	"spline-canvas/internal/scene"
	"spline-canvas/internal/spline"
)

const pipeName = "-"

var (
	source      = flag.String("in", "", "CBOR scene file (default: built-in sample scene)")
	destination = flag.String("out", "spline.png", "Output image, or - for stdout")
	dump        = flag.String("dump", "", "Write the effective scene as CBOR to this file")
	width       = flag.Int("width", 640, "Image width")
	height      = flag.Int("height", 480, "Image height")
	samples     = flag.Int("samples", 0, "Sample count (default: from the scene)")
	degree      = flag.Int("degree", -1, "Override the degree and use clamped uniform knots")
	supersample = flag.Int("ss", 2, "Supersampling factor")
	domain      = flag.String("domain", "normalized", "Parameter range: normalized or knots")
	overlay     = flag.Bool("overlay", false, "Draw the interpolating cubic through the control points")
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	s, err := loadScene(*source)
	if err != nil {
		log.Fatal(err)
	}
	if *samples > 0 {
		s.Samples = *samples
	}
	if *degree >= 0 {
		s.Degree = *degree
		s.Knots = spline.ClampedKnots(len(s.Controls), s.Degree)
	}
	if err := s.Validate(); err != nil {
		log.Fatalf("invalid scene: %v", err)
	}

	param, err := parseDomain(*domain)
	if err != nil {
		log.Fatal(err)
	}
	curve, err := s.Spline().Sample(s.Samples, param)
	if err != nil {
		log.Fatal(err)
	}
	var interp []common.Vec2
	if *overlay {
		if interp, err = spline.Interpolate(s.Controls, s.Samples); err != nil {
			log.Fatal(err)
		}
	}

	canvas := render.NewCanvas(*width, *height, *supersample, render.ColorBackground)
	canvas.DrawScene(s, curve, interp)
	if err := writeImage(canvas, *destination); err != nil {
		log.Fatal(err)
	}

	if *dump != "" {
		if err := dumpScene(s, *dump); err != nil {
			log.Fatal(err)
		}
	}
}

func loadScene(path string) (scene.Scene, error) {
	if path == "" {
		return scene.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return scene.Scene{}, fmt.Errorf("unable to open the scene file: %w", err)
	}
	defer f.Close()
	return scene.Decode(f)
}

func parseDomain(name string) (spline.Parametrization, error) {
	for _, p := range []spline.Parametrization{spline.Normalized, spline.KnotDomain} {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown domain %q, want normalized or knots", name)
}

func writeImage(c *render.Canvas, out string) error {
	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("`-` should be used with a pipe for stdout")
		}
		return c.EncodePNG(os.Stdout)
	}
	if err := c.Save(out); err != nil {
		return fmt.Errorf("unable to write the image: %w", err)
	}
	log.Printf("wrote %s", out)
	return nil
}

func dumpScene(s scene.Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
