// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package sdlplay

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// the default number of window pixels for each display pixel
const defaultScale = 10.0

// colour of lit and unlit pixels. in RGB order
var (
	pixelOn  = [3]uint8{0xe0, 0xf0, 0xd0}
	pixelOff = [3]uint8{0x10, 0x20, 0x18}
)

// SdlPlay is a simple SDL implementation of the gui.GUI interface. It is also
// an implementation of the hardware.Redrawer interface.
type SdlPlay struct {
	// the emulated machine. set with a ReqSetPlaymode request
	machine *hardware.Machine

	// user input is sent over the events channel. set with a
	// ReqSetPlaymode request
	events chan userinput.Event

	// feature requests are serviced in the main thread
	featureReq chan featureRequest
	featureErr chan error

	// the display should be redrawn. Redraw() is called by the emulation
	// goroutine so the actual drawing must be deferred to the main thread
	redraw chan bool

	// all audio is handled by the sdlaudio package
	aud *sdlaudio.Audio

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying to
	// the renderer
	pixels []byte

	scale float32
	title string
	state govern.State
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
		redraw:     make(chan bool, 1),
		pixels:     make([]byte, display.Width*display.Height*pixelDepth),
		title:      "Gopher8",
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow(scr.title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is the same size as the display. scaling is applied by the
	// renderer when the texture is copied to the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(display.Width), int32(display.Height))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}
	scr.setPixels(&display.Frame{})

	// a missing audio device is not fatal
	audPrefs, err := sdlaudio.NewPreferences()
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}
	scr.aud, err = sdlaudio.NewAudio(audPrefs)
	if err != nil {
		fmt.Printf("* %v\n", err)
		scr.aud = nil
	}

	if scale <= 0 {
		scale = defaultScale
	}
	scr.setScale(scale)

	// MOUSEMOTION events fill up the event queue pretty quickly and we have no
	// use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	return scr, nil
}

// Destroy implements GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy(output io.Writer) {
	if scr.aud != nil {
		if err := scr.aud.EndMixing(); err != nil {
			output.Write([]byte(err.Error()))
		}
	}

	if err := scr.texture.Destroy(); err != nil {
		output.Write([]byte(err.Error()))
	}
	if err := scr.renderer.Destroy(); err != nil {
		output.Write([]byte(err.Error()))
	}
	if err := scr.window.Destroy(); err != nil {
		output.Write([]byte(err.Error()))
	}

	sdl.Quit()
}

// Redraw implements the hardware.Redrawer interface. The display is not
// redrawn until the next call to Service().
func (scr *SdlPlay) Redraw() {
	select {
	case scr.redraw <- true:
	default:
	}
}

func (scr *SdlPlay) setScale(scale float32) {
	scr.scale = scale
	w := int32(float32(display.Width) * scale)
	h := int32(float32(display.Height) * scale)
	scr.window.SetSize(w, h)
}

func (scr *SdlPlay) setTitle() {
	if scr.state == govern.Paused {
		scr.window.SetTitle(fmt.Sprintf("%s (paused)", scr.title))
	} else {
		scr.window.SetTitle(scr.title)
	}
}

// setPixels converts the display frame to the pixel array
func (scr *SdlPlay) setPixels(f *display.Frame) {
	i := 0
	for y := range f {
		for x := range f[y] {
			c := pixelOff
			if f[y][x] {
				c = pixelOn
			}
			scr.pixels[i] = c[0]
			scr.pixels[i+1] = c[1]
			scr.pixels[i+2] = c[2]
			i += pixelDepth
		}
	}
}

func (scr *SdlPlay) present() error {
	err := scr.texture.Update(nil, scr.pixels, display.Width*pixelDepth)
	if err != nil {
		return err
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}
