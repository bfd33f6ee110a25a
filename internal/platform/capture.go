package platform

import (
	"bytes"
	"errors"
	"image/png"

	"github.com/kbinani/screenshot"
)

// DisplayCapturer grabs the primary display with the screenshot library and
// PNG-encodes the result in memory.
type DisplayCapturer struct{}

// NewCapturer returns the default screen capturer.
func NewCapturer() Capturer {
	return DisplayCapturer{}
}

// DisplayCount reports the number of active displays.
func DisplayCount() int {
	return screenshot.NumActiveDisplays()
}

// CaptureScreen implements Capturer.
func (DisplayCapturer) CaptureScreen() (int, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return 0, errors.New("no active displays found")
	}

	bounds := screenshot.GetDisplayBounds(0)
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}
