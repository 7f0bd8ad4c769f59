// Package shaderc wraps shader compilation for the lesson build.
// WGSL compiles in-process through naga; GLSL stages are handed to an
// external glslc binary.
package shaderc

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gogpu/naga"
)

// ErrUnknownStage indicates the input extension does not map to a
// shader stage glslc can compile.
var ErrUnknownStage = errors.New("unknown shader stage")

// glslStages are the extensions glslc infers a stage from.
var glslStages = map[string]bool{
	".vert": true,
	".frag": true,
	".comp": true,
	".geom": true,
	".tesc": true,
	".tese": true,
}

// CompileWGSL compiles WGSL source to SPIR-V bytes (little-endian
// words).
func CompileWGSL(source string) ([]byte, error) {
	spirv, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compiling WGSL: %w", err)
	}
	return spirv, nil
}

// CompileGLSL invokes glslc on a GLSL stage file, writing SPIR-V to
// outPath. glslcPath may be a bare program name resolved via PATH.
func CompileGLSL(glslcPath, inPath, outPath string) error {
	cmd := exec.Command(glslcPath, inPath, "-o", outPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("glslc %s: %v\n%s", inPath, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// CompileFile compiles one shader source file to SPIR-V at outPath,
// dispatching on extension: .wgsl through naga, the GLSL stage
// extensions through glslc.
func CompileFile(glslcPath, inPath, outPath string) error {
	ext := strings.ToLower(filepath.Ext(inPath))
	switch {
	case ext == ".wgsl":
		src, err := os.ReadFile(inPath)
		if err != nil {
			return err
		}
		spirv, err := CompileWGSL(string(src))
		if err != nil {
			return fmt.Errorf("%s: %w", inPath, err)
		}
		return os.WriteFile(outPath, spirv, 0644)
	case glslStages[ext]:
		return CompileGLSL(glslcPath, inPath, outPath)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStage, inPath)
	}
}

// DefaultOutputPath derives the .spv path for a shader source file.
func DefaultOutputPath(inPath string) string {
	return strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".spv"
}
