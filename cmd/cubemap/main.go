// cubemap converts an equirectangular panorama into the six faces of
// a cube map.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/RosyGameStudio/forge-gpu-sub000/internal/config"
	"github.com/RosyGameStudio/forge-gpu-sub000/internal/logger"
	"github.com/RosyGameStudio/forge-gpu-sub000/pkg/assetpack"
	"github.com/RosyGameStudio/forge-gpu-sub000/pkg/cubemap"
	"github.com/RosyGameStudio/forge-gpu-sub000/pkg/imaging"
)

func main() {
	var (
		size       = flag.Int("size", 0, "Face resolution in pixels (default from config)")
		format     = flag.String("format", "", "Output format: png or ppm (default from config)")
		packPath   = flag.String("pack", "", "Also bundle the faces into an .lpk file")
		configPath = flag.String("config", "", "Path to config file")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: cubemap [flags] <input-image> <output-dir>

Converts an equirectangular (2:1) panorama into six square cube map
faces named px, nx, py, ny, pz, nz.

Flags:`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail(err)
	}
	level := cfg.Logging.Level
	if *debug {
		level = "debug"
	}
	logger.Init(level, cfg.Logging.LogFile)
	defer logger.Sync()

	// An explicit --size 0 must reach validation and be rejected, so
	// only fall back to the config default when the flag was absent.
	sizeSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "size" {
			sizeSet = true
		}
	})
	if !sizeSet {
		*size = cfg.Cubemap.Size
	}
	if *format == "" {
		*format = cfg.Cubemap.Format
	}
	if *format != "png" && *format != "ppm" {
		fail(fmt.Errorf("unsupported output format %q", *format))
	}

	if err := run(flag.Arg(0), flag.Arg(1), *size, *format, *packPath); err != nil {
		fail(err)
	}
}

func run(inputPath, outDir string, size int, format, packPath string) error {
	src, err := imaging.Decode(inputPath)
	if err != nil {
		return err
	}
	logger.Sugar.Debugw("decoded panorama",
		"path", inputPath, "width", src.Width, "height", src.Height)

	faces, err := cubemap.Convert(src, size)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	// One face failing to encode does not stop the others; the faces
	// are independent artifacts. The run still reports failure.
	var failed bool
	paths := make([]string, 0, len(faces))
	for i, face := range faces {
		path := filepath.Join(outDir, cubemap.Faces[i].Code()+"."+format)

		var encErr error
		switch format {
		case "ppm":
			encErr = imaging.EncodePPM(path, face)
		default:
			encErr = imaging.EncodePNG(path, face)
		}
		if encErr != nil {
			fmt.Fprintf(os.Stderr, "cubemap: face %s: %v\n", cubemap.Faces[i], encErr)
			failed = true
			continue
		}
		logger.Sugar.Infow("face written", "face", cubemap.Faces[i].Code(), "path", path)
		paths = append(paths, path)
	}
	if failed {
		return fmt.Errorf("one or more faces failed to encode")
	}

	if packPath != "" {
		if err := writeBundle(packPath, paths); err != nil {
			return err
		}
		logger.Sugar.Infow("bundle written", "path", packPath)
	}
	return nil
}

func writeBundle(packPath string, facePaths []string) error {
	w, err := assetpack.Create(packPath)
	if err != nil {
		return err
	}
	for _, p := range facePaths {
		data, err := os.ReadFile(p)
		if err != nil {
			w.Close()
			return err
		}
		if err := w.Add(filepath.Base(p), data); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "cubemap: %v\n", err)
	os.Exit(1)
}
