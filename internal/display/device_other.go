//go:build !linux

package display

import (
	"errors"
	"fmt"
)

var errNoFramebuffer = errors.New("framebuffer output needs Linux")

func openDevice(path string) (device, error) {
	return nil, fmt.Errorf("open %s: %w", path, errNoFramebuffer)
}
