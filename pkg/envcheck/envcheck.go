// Package envcheck probes the machine a lesson build runs on: the
// external tools on PATH and the OpenGL stack the lesson binaries
// will target.
package envcheck

import (
	"fmt"
	"io"
	"os/exec"
)

// RequiredTools are the external programs the lesson build invokes.
var RequiredTools = []string{"glslc", "git"}

// ToolInfo reports one PATH lookup.
type ToolInfo struct {
	Name  string
	Path  string
	Found bool
}

// GLInfo holds the strings reported by the driver.
type GLInfo struct {
	Version     string
	Renderer    string
	Vendor      string
	GLSLVersion string
	SDLVersion  string
}

// Report is the full result of an environment probe.
type Report struct {
	Tools   []ToolInfo
	GL      *GLInfo
	GLError string
}

// CheckTools resolves each named program via PATH.
func CheckTools(names []string) []ToolInfo {
	infos := make([]ToolInfo, 0, len(names))
	for _, name := range names {
		path, err := exec.LookPath(name)
		infos = append(infos, ToolInfo{Name: name, Path: path, Found: err == nil})
	}
	return infos
}

// AllFound reports whether every checked tool resolved.
func (r *Report) AllFound() bool {
	for _, t := range r.Tools {
		if !t.Found {
			return false
		}
	}
	return true
}

// Write renders the report as plain text.
func (r *Report) Write(w io.Writer) {
	fmt.Fprintln(w, "External tools:")
	for _, t := range r.Tools {
		if t.Found {
			fmt.Fprintf(w, "  %-8s %s\n", t.Name, t.Path)
		} else {
			fmt.Fprintf(w, "  %-8s MISSING\n", t.Name)
		}
	}

	fmt.Fprintln(w, "Graphics:")
	switch {
	case r.GL != nil:
		fmt.Fprintf(w, "  SDL      %s\n", r.GL.SDLVersion)
		fmt.Fprintf(w, "  OpenGL   %s\n", r.GL.Version)
		fmt.Fprintf(w, "  Renderer %s (%s)\n", r.GL.Renderer, r.GL.Vendor)
		fmt.Fprintf(w, "  GLSL     %s\n", r.GL.GLSLVersion)
	case r.GLError != "":
		fmt.Fprintf(w, "  probe failed: %s\n", r.GLError)
	default:
		fmt.Fprintln(w, "  probe skipped")
	}
}
