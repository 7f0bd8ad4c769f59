// lessonpack is a CLI utility for .lpk lesson asset bundles.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/RosyGameStudio/forge-gpu-sub000/pkg/assetpack"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "create":
		cmdCreate(os.Args[2:])
	case "list", "ls":
		cmdList(os.Args[2:])
	case "extract", "x":
		cmdExtract(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`lessonpack - lesson asset bundle utility

Usage:
  lessonpack <command> [options]

Commands:
  create <bundle.lpk> <file>...        Bundle files
  list <bundle.lpk>                    List bundle contents
  extract <bundle.lpk> [name] [-d dir] Extract one entry, or all

Examples:
  lessonpack create lesson07.lpk build/cubemap/*.png build/sky.spv
  lessonpack list lesson07.lpk
  lessonpack extract lesson07.lpk px.png -d ./out`)
}

func cmdCreate(args []string) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: lessonpack create <bundle.lpk> <file>...")
		os.Exit(1)
	}

	w, err := assetpack.Create(fs.Arg(0))
	if err != nil {
		fail(err)
	}

	for _, path := range fs.Args()[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			w.Close()
			fail(err)
		}
		if err := w.Add(filepath.Base(path), data); err != nil {
			w.Close()
			fail(err)
		}
		fmt.Printf("Added: %s (%d bytes)\n", filepath.Base(path), len(data))
	}

	if err := w.Close(); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s\n", fs.Arg(0))
}

func cmdList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: lessonpack list <bundle.lpk>")
		os.Exit(1)
	}

	a, err := assetpack.Open(fs.Arg(0))
	if err != nil {
		fail(err)
	}
	defer a.Close()

	names := a.List()
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}
	fmt.Fprintf(os.Stderr, "\n(%d entries)\n", len(names))
}

func cmdExtract(args []string) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	dir := fs.String("d", ".", "Output directory")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: lessonpack extract <bundle.lpk> [name] [-d dir]")
		os.Exit(1)
	}

	a, err := assetpack.Open(fs.Arg(0))
	if err != nil {
		fail(err)
	}
	defer a.Close()

	names := a.List()
	if fs.NArg() > 1 {
		names = []string{fs.Arg(1)}
	}

	if err := os.MkdirAll(*dir, 0755); err != nil {
		fail(err)
	}

	for _, name := range names {
		data, err := a.Read(name)
		if err != nil {
			fail(err)
		}
		outPath := filepath.Join(*dir, filepath.Base(name))
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			fail(err)
		}
		fmt.Printf("Extracted: %s (%d bytes)\n", outPath, len(data))
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "lessonpack: %v\n", err)
	os.Exit(1)
}
