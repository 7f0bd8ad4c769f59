// shaderc compiles lesson shaders to SPIR-V: WGSL in-process, GLSL
// through an external glslc.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/RosyGameStudio/forge-gpu-sub000/internal/config"
	"github.com/RosyGameStudio/forge-gpu-sub000/pkg/shaderc"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "compile":
		cmdCompile(os.Args[2:])
	case "check":
		cmdCheck(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`shaderc - lesson shader compiler

Usage:
  shaderc <command> [options]

Commands:
  compile <shader> [-o out.spv] [-header out.h]  Compile one shader to SPIR-V
  check <shader>...                              Syntax-check shaders, write nothing

Supported inputs: .wgsl (compiled in-process), .vert/.frag/.comp/.geom/.tesc/.tese (via glslc).

Examples:
  shaderc compile lessons/07/sky.wgsl
  shaderc compile lessons/07/sky.frag -o build/sky.spv -header build/sky.h
  shaderc check lessons/07/*.wgsl`)
}

func cmdCompile(args []string) {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	out := fs.String("o", "", "Output path (default <input>.spv)")
	header := fs.String("header", "", "Also emit a C header at this path")
	configPath := fs.String("config", "", "Path to config file")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: shaderc compile <shader> [-o out.spv] [-header out.h]")
		os.Exit(1)
	}
	in := fs.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail(err)
	}

	outPath := *out
	if outPath == "" {
		outPath = shaderc.DefaultOutputPath(in)
	}

	if err := shaderc.CompileFile(cfg.Shader.GlslcPath, in, outPath); err != nil {
		fail(err)
	}
	fmt.Printf("Compiled: %s -> %s\n", in, outPath)

	if *header != "" {
		spirv, err := os.ReadFile(outPath)
		if err != nil {
			fail(err)
		}
		if err := shaderc.WriteCHeaderFile(*header, spirv); err != nil {
			fail(err)
		}
		fmt.Printf("Header:   %s\n", *header)
	}
}

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: shaderc check <shader>...")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail(err)
	}

	tmpDir, err := os.MkdirTemp("", "shaderc-check")
	if err != nil {
		fail(err)
	}
	defer os.RemoveAll(tmpDir)

	bad := 0
	for i, in := range fs.Args() {
		scratch := filepath.Join(tmpDir, fmt.Sprintf("check%d.spv", i))
		if err := shaderc.CompileFile(cfg.Shader.GlslcPath, in, scratch); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", in, err)
			bad++
			continue
		}
		fmt.Printf("OK   %s\n", in)
	}

	if bad > 0 {
		fmt.Fprintf(os.Stderr, "\n%d of %d shaders failed\n", bad, fs.NArg())
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "shaderc: %v\n", err)
	os.Exit(1)
}
