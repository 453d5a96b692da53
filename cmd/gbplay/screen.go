// This file is part of gbcore.
//
// gbcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbcore.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"gbcore"
	"gbcore/hardware/ppu"
	"gbcore/perf"
)

const pixelDepth = 4 // SDL's texture format always carries an alpha byte, even though the core never sets one.

// screen owns the SDL window, renderer and texture, and drives Machine
// forward one frame's worth of T-cycles between each present. Unlike the
// teacher's sdlplay, which services SDL events from a dedicated goroutine
// and talks to the emulated machine over a channel, Machine is not
// goroutine-safe (§5.1), so both the event pump and the step loop run on
// this one goroutine.
type screen struct {
	m *gbcore.Machine

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	rgba []byte // framebuffer widened to RGBA for the texture upload
}

func newScreen(m *gbcore.Machine, scale int) (*screen, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	scr := &screen{m: m, rgba: make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*pixelDepth)}

	w, h := int32(ppu.ScreenWidth*scale), int32(ppu.ScreenHeight*scale)
	window, err := sdl.CreateWindow("gbplay",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	scr.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	scr.renderer = renderer
	renderer.SetLogicalSize(int32(ppu.ScreenWidth), int32(ppu.ScreenHeight))

	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		sdl.TEXTUREACCESS_STREAMING, int32(ppu.ScreenWidth), int32(ppu.ScreenHeight))
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	scr.texture = texture

	return scr, nil
}

func (scr *screen) destroy() {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
}

// run drives the machine forward one frame (targetCycles T-cycles) per
// iteration, uploads the resulting framebuffer, and pumps SDL events until
// the window is closed.
func (scr *screen) run(targetCycles int) {
	frameStart := time.Now()
	frames := 0
	fpsWindow := time.Now()

	for {
		if !scr.pollEvents() {
			return
		}

		if scr.m.State() == gbcore.Ready {
			if err := scr.m.Run(targetCycles); err != nil {
				fmt.Println("gbplay:", err)
				return
			}
		}

		scr.present()

		frames++
		if since := time.Since(fpsWindow); since >= time.Second {
			perf.ReportFPS(float64(frames) / since.Seconds())
			frames = 0
			fpsWindow = time.Now()
		}

		// cap at roughly 60Hz; real hardware paces itself by the PPU's own
		// frame cadence, but nothing here blocks on vsync.
		if elapsed := time.Since(frameStart); elapsed < time.Second/60 {
			time.Sleep(time.Second/60 - elapsed)
		}
		frameStart = time.Now()
	}
}

func (scr *screen) present() {
	src := scr.m.Framebuffer()
	if src == nil {
		return
	}
	for i, j := 0, 0; i < len(src); i, j = i+3, j+4 {
		scr.rgba[j] = src[i]
		scr.rgba[j+1] = src[i+1]
		scr.rgba[j+2] = src[i+2]
		scr.rgba[j+3] = 255
	}

	scr.texture.Update(nil, scr.rgba, ppu.ScreenWidth*pixelDepth)
	scr.renderer.Copy(scr.texture, nil, nil)
	scr.renderer.Present()
}

// pollEvents drains the SDL event queue, translating keyboard events into
// joypad presses/releases via keymap. Returns false once a quit event (or
// the window being closed) has been seen.
func (scr *screen) pollEvents() bool {
	for {
		ev := sdl.PollEvent()
		if ev == nil {
			return true
		}

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			b, ok := keymap[sdl.GetKeyName(ev.Keysym.Sym)]
			if !ok {
				continue
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				scr.m.ButtonDown(b)
			case sdl.KEYUP:
				scr.m.ButtonUp(b)
			}
		}
	}
}
