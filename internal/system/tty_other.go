//go:build !linux

package system

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Console is a no-op outside Linux; there is no KD console to switch.
type Console struct {
	Logger logger
}

func (Console) EnterGraphics() error { return nil }
func (Console) Restore() error       { return nil }
