// Package sprite loads the image drawn underneath the fractal.
//
// A load runs on its own goroutine and reports back exactly once over a
// one-shot channel; the caller suspends on that channel until the image is
// ready, the load fails, the timeout fires or the context ends.
package sprite

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DefaultName is the sprite requested when nothing else is configured.
const DefaultName = "Idle (1).png"

// ErrTimeout is returned when the load does not finish within Loader.Timeout.
var ErrTimeout = errors.New("sprite load timed out")

// StatusError reports a non-2xx answer to an HTTP sprite request.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Loader fetches and decodes sprites from files or HTTP(S) URLs.
type Loader struct {
	// Client is used for http and https locators. Nil means http.DefaultClient.
	Client *http.Client

	// Timeout bounds a single Load. Zero waits until the load reports back
	// or the context ends, however long that takes.
	Timeout time.Duration

	Logger logger
}

type loadResult struct {
	img image.Image
	err error
}

// Load resolves locator to a decoded image. Accepted locators are plain
// file paths, file:// URLs and http(s):// URLs.
func (l *Loader) Load(ctx context.Context, locator string) (image.Image, error) {
	loadCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan loadResult, 1)
	go func() {
		img, err := l.fetch(loadCtx, locator)
		done <- loadResult{img: img, err: err}
	}()

	var expired <-chan time.Time
	if l.Timeout > 0 {
		timer := time.NewTimer(l.Timeout)
		defer timer.Stop()
		expired = timer.C
	}

	l.infof("loading %q", locator)
	select {
	case res := <-done:
		if res.err != nil {
			l.errorf("load %q failed: %v", locator, res.err)
			return nil, fmt.Errorf("load sprite %q: %w", locator, res.err)
		}
		b := res.img.Bounds()
		l.infof("loaded %q (%dx%d)", locator, b.Dx(), b.Dy())
		return res.img, nil
	case <-expired:
		l.errorf("load %q timed out after %s", locator, l.Timeout)
		return nil, fmt.Errorf("load sprite %q: %w after %s", locator, ErrTimeout, l.Timeout)
	case <-ctx.Done():
		return nil, fmt.Errorf("load sprite %q: %w", locator, ctx.Err())
	}
}

func (l *Loader) fetch(ctx context.Context, locator string) (image.Image, error) {
	switch {
	case strings.HasPrefix(locator, "http://"), strings.HasPrefix(locator, "https://"):
		return l.fetchHTTP(ctx, locator)
	case strings.HasPrefix(locator, "file://"):
		u, err := url.Parse(locator)
		if err != nil {
			return nil, err
		}
		return openFile(u.Path)
	default:
		return openFile(locator)
	}
}

func (l *Loader) fetchHTTP(ctx context.Context, locator string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, err
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: locator, StatusCode: resp.StatusCode}
	}
	return decode(resp.Body)
}

func openFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(f)
}

func decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

func (l *Loader) infof(format string, args ...interface{}) {
	if l.Logger != nil {
		l.Logger.Infof("sprite", format, args...)
	}
}

func (l *Loader) errorf(format string, args ...interface{}) {
	if l.Logger != nil {
		l.Logger.Errorf("sprite", format, args...)
	}
}
