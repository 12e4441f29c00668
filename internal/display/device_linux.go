//go:build linux

package display

import (
	fb "github.com/gonutz/framebuffer"
)

// fbDevice gives the framebuffer the Close signature device expects.
type fbDevice struct {
	*fb.Device
}

func (d fbDevice) Close() error {
	d.Device.Close()
	return nil
}

func openDevice(path string) (device, error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, err
	}
	return fbDevice{Device: dev}, nil
}
