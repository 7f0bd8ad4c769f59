// capture turns rendered frames into documentation artifacts:
// animated GIF clips and timestamped screenshots.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/RosyGameStudio/forge-gpu-sub000/internal/config"
	"github.com/RosyGameStudio/forge-gpu-sub000/pkg/capture"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "gif":
		cmdGif(os.Args[2:])
	case "snap":
		cmdSnap(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`capture - lesson screenshot and GIF helper

Usage:
  capture <command> [options]

Commands:
  gif <frame-dir> [-o out.gif] [-fps N] [-scale F]   Assemble PNG frames into a looping GIF
  snap <raw.rgba> -width W -height H [-dir D]        Convert a raw RGBA readback to a PNG

Examples:
  capture gif build/frames -o docs/orbit.gif -fps 15 -scale 0.5
  capture snap build/frame.rgba -width 1280 -height 720 -dir docs`)
}

func cmdGif(args []string) {
	fs := flag.NewFlagSet("gif", flag.ExitOnError)
	out := fs.String("o", "out.gif", "Output GIF path")
	fps := fs.Float64("fps", 0, "Frames per second (default from config)")
	scale := fs.Float64("scale", 0, "Frame scale factor (default from config)")
	configPath := fs.String("config", "", "Path to config file")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: capture gif <frame-dir> [-o out.gif] [-fps N] [-scale F]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail(err)
	}
	if *fps == 0 {
		*fps = cfg.Capture.FPS
	}
	if *scale == 0 {
		*scale = cfg.Capture.Scale
	}

	if err := capture.AssembleGIF(fs.Arg(0), *out, *fps, *scale); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s\n", *out)
}

func cmdSnap(args []string) {
	fs := flag.NewFlagSet("snap", flag.ExitOnError)
	width := fs.Int("width", 0, "Frame width in pixels")
	height := fs.Int("height", 0, "Frame height in pixels")
	dir := fs.String("dir", ".", "Output directory")
	prefix := fs.String("prefix", "screenshot", "Output filename prefix")
	fs.Parse(args)

	if fs.NArg() != 1 || *width <= 0 || *height <= 0 {
		fmt.Fprintln(os.Stderr, "Usage: capture snap <raw.rgba> -width W -height H [-dir D]")
		os.Exit(1)
	}

	pixels, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fail(err)
	}

	path, err := capture.SaveFramePixels(*dir, *prefix, pixels, *width, *height)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s\n", path)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "capture: %v\n", err)
	os.Exit(1)
}
