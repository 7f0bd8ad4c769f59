// envcheck reports whether this machine can build and run the lessons:
// required tools on PATH and a working OpenGL stack.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/RosyGameStudio/forge-gpu-sub000/pkg/envcheck"
)

func main() {
	skipGL := flag.Bool("skip-gl", false, "Skip the OpenGL probe (headless machines)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: envcheck [-skip-gl]

Checks for the external tools the lesson build needs and probes the
OpenGL driver. Exits nonzero if a required tool is missing or the
graphics probe fails.`)
		flag.PrintDefaults()
	}
	flag.Parse()

	report := envcheck.Run(*skipGL)
	report.Write(os.Stdout)

	if !report.AllFound() || report.GLError != "" {
		os.Exit(1)
	}
}
