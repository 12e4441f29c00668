//go:build linux

package system

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// Active VT first, then the current virtual console.
var consolePaths = []string{"/dev/tty", "/dev/tty0"}

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Console switches the Linux virtual console between text and graphics
// mode so a framebuffer picture is not overdrawn by the cursor.
type Console struct {
	Logger logger
}

// EnterGraphics sets KD_GRAPHICS and hides the cursor.
func (c Console) EnterGraphics() error {
	err := setMode(kdGraphics)
	c.report("KD_GRAPHICS set", err)
	cerr := writeVT("\x1b[?25l")
	c.report("cursor hidden", cerr)
	return errors.Join(err, cerr)
}

// Restore shows the cursor and switches back to KD_TEXT.
func (c Console) Restore() error {
	cerr := writeVT("\x1b[?25h")
	c.report("cursor shown", cerr)
	err := setMode(kdText)
	c.report("KD_TEXT set", err)
	return errors.Join(cerr, err)
}

func (c Console) report(done string, err error) {
	if c.Logger == nil {
		return
	}
	if err != nil {
		c.Logger.Errorf("tty", "%v", err)
		return
	}
	c.Logger.Infof("tty", "%s", done)
}

func setMode(mode int) error {
	var lastErr error
	for _, p := range consolePaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err)
			continue
		}
		return nil
	}
	return lastErr
}

func writeVT(s string) error {
	var lastErr error
	for _, p := range consolePaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("write VT: %w", lastErr)
}
