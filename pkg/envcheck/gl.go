package envcheck

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// GL context creation must happen on the main thread.
	runtime.LockOSThread()
}

// ProbeGL creates a hidden window with a core-profile context and
// reads back the driver strings. SDL is shut down before returning.
func ProbeGL() (*GLInfo, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}
	defer sdl.Quit()

	// Same profile the lesson binaries request (4.1 core is the max
	// supported on macOS).
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	window, err := sdl.CreateWindow(
		"envcheck",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		64, 64,
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN,
	)
	if err != nil {
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}
	defer window.Destroy()

	ctx, err := window.GLCreateContext()
	if err != nil {
		return nil, fmt.Errorf("GL context creation failed: %w", err)
	}
	defer sdl.GLDeleteContext(ctx)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("loading GL functions: %w", err)
	}

	var ver sdl.Version
	sdl.GetVersion(&ver)

	return &GLInfo{
		Version:     gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer:    gl.GoStr(gl.GetString(gl.RENDERER)),
		Vendor:      gl.GoStr(gl.GetString(gl.VENDOR)),
		GLSLVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		SDLVersion:  fmt.Sprintf("%d.%d.%d", ver.Major, ver.Minor, ver.Patch),
	}, nil
}

// Run probes tools and, unless skipGL is set, the graphics stack.
func Run(skipGL bool) *Report {
	r := &Report{Tools: CheckTools(RequiredTools)}
	if skipGL {
		return r
	}

	info, err := ProbeGL()
	if err != nil {
		r.GLError = err.Error()
		return r
	}
	r.GL = info
	return r
}
