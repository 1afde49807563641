package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/nfnt/resize"

	tonecurve "github.com/osteele/tone-curve-viz"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "grade":
		if err := runGrade(os.Args[2:]); err != nil {
			fail(err)
		}
	case "auto":
		if err := runAuto(os.Args[2:]); err != nil {
			fail(err)
		}
	case "curve":
		if err := runCurve(os.Args[2:]); err != nil {
			fail(err)
		}
	case "hist":
		if err := runHist(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: tcviz <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  grade -in input.jpg -out output.png -preset grade.toml [-q 90]")
	fmt.Fprintln(os.Stderr, "  auto  -in input.jpg [-max-dim 512] [-preset-out auto.toml] [-out graded.jpg] [-q 90]")
	fmt.Fprintln(os.Stderr, "  curve -preset grade.toml [-out curve.json]")
	fmt.Fprintln(os.Stderr, "  hist  -in input.jpg [-out hist.json]")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

func runGrade(args []string) error {
	fs := flag.NewFlagSet("grade", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output image (.png or .jpg)")
	presetPath := fs.String("preset", "", "TOML parameter preset")
	q := fs.Int("q", 90, "JPEG quality for .jpg output")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}

	params := tonecurve.DefaultParams()
	if *presetPath != "" {
		var err error
		params, err = tonecurve.LoadPreset(*presetPath)
		if err != nil {
			return fmt.Errorf("load preset: %w", err)
		}
	}

	img, err := imgio.Open(*inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	pix, w, h := tonecurve.FromImage(img)
	out, err := tonecurve.Render(pix, w, h, params)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return saveImage(*outPath, out, w, h, *q)
}

func runAuto(args []string) error {
	fs := flag.NewFlagSet("auto", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	maxDim := fs.Int("max-dim", 512, "downscale the analysis copy to this bound, 0 disables")
	presetOut := fs.String("preset-out", "", "write the estimated parameters as a TOML preset")
	outPath := fs.String("out", "", "apply the estimate and write the graded image")
	q := fs.Int("q", 90, "JPEG quality for .jpg output")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}

	img, err := imgio.Open(*inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}

	// The estimate only needs the value distribution, so a downscaled
	// analysis copy is enough and much faster on large sources.
	analysis := img
	if *maxDim > 0 {
		analysis = resize.Thumbnail(uint(*maxDim), uint(*maxDim), img, resize.Bilinear)
	}
	pix, w, h := tonecurve.FromImage(analysis)
	patch := tonecurve.AutoAdjust(tonecurve.Analyze(pix, w, h))

	if err := json.NewEncoder(os.Stdout).Encode(patch); err != nil {
		return err
	}

	params := patch.ApplyTo(tonecurve.DefaultParams())
	if *presetOut != "" {
		if err := tonecurve.SavePreset(*presetOut, params); err != nil {
			return fmt.Errorf("write preset: %w", err)
		}
	}
	if *outPath != "" {
		fullPix, fw, fh := tonecurve.FromImage(img)
		out, err := tonecurve.Render(fullPix, fw, fh, params)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		return saveImage(*outPath, out, fw, fh, *q)
	}
	return nil
}

func runCurve(args []string) error {
	fs := flag.NewFlagSet("curve", flag.ContinueOnError)
	presetPath := fs.String("preset", "", "TOML parameter preset")
	outPath := fs.String("out", "", "output JSON file, stdout if empty")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	params := tonecurve.DefaultParams()
	if *presetPath != "" {
		var err error
		params, err = tonecurve.LoadPreset(*presetPath)
		if err != nil {
			return fmt.Errorf("load preset: %w", err)
		}
	}
	curve := tonecurve.SampleCurve(params)
	return writeJSON(*outPath, curve)
}

func runHist(args []string) error {
	fs := flag.NewFlagSet("hist", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output JSON file, stdout if empty")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}

	img, err := imgio.Open(*inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	pix, w, h := tonecurve.FromImage(img)
	return writeJSON(*outPath, tonecurve.Analyze(pix, w, h))
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if path == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(filepath.Clean(path), append(data, '\n'), 0o644)
}

func saveImage(path string, pix []uint8, w, h, quality int) error {
	img := tonecurve.ToImage(pix, w, h)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return imgio.Save(path, img, imgio.JPEGEncoder(quality))
	case ".png":
		return imgio.Save(path, img, imgio.PNGEncoder())
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
}
