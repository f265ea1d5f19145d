// Package snapshot drives a headless Chrome against a running site and captures what
// it renders.
package snapshot

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"

	"github.com/psidex/kiu/internal/lib"
	"github.com/psidex/kiu/internal/sampler"
)

const (
	DefaultWidth  = 1100
	DefaultHeight = 900
	// Chrome only encodes PNG at full quality; anything lower is JPEG.
	DefaultQuality = 100
)

type Config struct {
	URL    string
	Width  int64
	Height int64
	// Pointer, when set, is where the mouse is moved before the capture.
	Pointer *sampler.Point
	// Wait gives websocket driven frames time to arrive after navigation.
	Wait    lib.Duration
	Timeout lib.Duration
	Quality int
}

// Ext is the file extension of the image Capture produces for c.Quality.
func (c Config) Ext() string {
	if c.Quality == 100 {
		return ".png"
	}
	return ".jpg"
}

func DefaultConfig(url string) Config {
	return Config{
		URL:     url,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Wait:    lib.DurationFrom(time.Second),
		Timeout: lib.DurationFrom(30 * time.Second),
		Quality: DefaultQuality,
	}
}

func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("snapshot: url is required")
	}
	if !strings.HasPrefix(c.URL, "http://") && !strings.HasPrefix(c.URL, "https://") {
		return errors.Errorf("snapshot: unsupported url %q", c.URL)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("snapshot: invalid viewport %dx%d", c.Width, c.Height)
	}
	if c.Timeout.Duration <= 0 {
		return errors.New("snapshot: timeout must be positive")
	}
	if c.Quality < 0 || c.Quality > 100 {
		return errors.Errorf("snapshot: quality %d out of range", c.Quality)
	}
	return nil
}

type Result struct {
	// Image is PNG encoded at quality 100 and JPEG otherwise, see Config.Ext.
	Image []byte
	Ext   string
	// Paths is the number of street paths found in the rendered document.
	Paths int
	// Bytes is the encoded size of every response the page loaded.
	Bytes    int64
	Duration time.Duration
}

// Capture loads cfg.URL, optionally hovers the pointer, and returns a full page
// screenshot.
func Capture(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	startTime := time.Now()

	timeoutCtx, timeoutCancel := context.WithTimeout(ctx, cfg.Timeout.Duration)
	defer timeoutCancel()

	browserCtx, cancel := chromedp.NewContext(timeoutCtx)
	defer cancel()

	var downloadedBytes atomic.Int64
	countBytesAction := func(ctx context.Context) error {
		chromedp.ListenTarget(ctx, func(ev interface{}) {
			if ev, ok := ev.(*network.EventLoadingFinished); ok {
				downloadedBytes.Add(int64(ev.EncodedDataLength))
			}
		})
		return nil
	}

	actions := []chromedp.Action{
		network.Enable(),
		chromedp.ActionFunc(countBytesAction),
		chromedp.EmulateViewport(cfg.Width, cfg.Height),
		chromedp.Navigate(cfg.URL),
		chromedp.WaitVisible("svg", chromedp.ByQuery),
	}
	if cfg.Pointer != nil {
		actions = append(actions, chromedp.MouseEvent(input.MouseMoved, cfg.Pointer.X, cfg.Pointer.Y))
	}

	var pageSource string
	var image []byte
	actions = append(actions,
		chromedp.Sleep(cfg.Wait.Duration),
		chromedp.ActionFunc(func(ctx context.Context) error {
			node, err := dom.GetDocument().Do(ctx)
			if err != nil {
				return err
			}
			pageSource, err = dom.GetOuterHTML().WithNodeID(node.NodeID).Do(ctx)
			return err
		}),
		chromedp.FullScreenshot(&image, cfg.Quality),
	)

	if err := chromedp.Run(browserCtx, actions...); err != nil {
		return nil, errors.Wrapf(err, "snapshot: capture %s", cfg.URL)
	}

	paths, err := sampler.ExtractPaths(strings.NewReader(pageSource))
	if err != nil {
		return nil, errors.Wrap(err, "snapshot: parse page")
	}

	return &Result{
		Image:    image,
		Ext:      cfg.Ext(),
		Paths:    len(paths),
		Bytes:    downloadedBytes.Load(),
		Duration: time.Since(startTime),
	}, nil
}
