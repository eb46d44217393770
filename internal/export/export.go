// Package export converts rendered resume documents into downloadable PDF
// artifacts using a headless browser print capture.
package export

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 page metrics in inches.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

const defaultTimeout = 60 * time.Second

// printOverrideCSS forces full-opacity color rendering for the duration of
// the capture. Screen previews dim and blur non-selected regions; none of
// that may appear in the exported artifact.
const printOverrideCSS = `* {
  opacity: 1 !important;
  filter: none !important;
  backdrop-filter: none !important;
  -webkit-print-color-adjust: exact !important;
  print-color-adjust: exact !important;
}`

const overrideStyleID = "export-print-override"

var injectOverrideJS = fmt.Sprintf(`(() => {
  const style = document.createElement('style');
  style.id = %q;
  style.textContent = %q;
  document.head.appendChild(style);
})()`, overrideStyleID, printOverrideCSS)

var removeOverrideJS = fmt.Sprintf(`(() => {
  const style = document.getElementById(%q);
  if (style) { style.remove(); }
})()`, overrideStyleID)

// Exporter captures rendered HTML as paginated PDF documents.
type Exporter struct {
	chromePath string
	timeout    time.Duration
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithChromePath points the exporter at a specific browser binary instead of
// the one chromedp discovers.
func WithChromePath(path string) Option {
	return func(e *Exporter) { e.chromePath = path }
}

// WithTimeout overrides the capture timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Exporter) { e.timeout = d }
}

// New creates an Exporter. With no options it uses the CHROME_PATH
// environment variable if set, otherwise browser discovery.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		chromePath: os.Getenv("CHROME_PATH"),
		timeout:    defaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExportPDF renders the HTML document to an A4 PDF. The print override style
// is injected before the capture and removed afterwards on both the success
// and error paths, so a failed capture never leaves the document in its
// print state.
func (e *Exporter) ExportPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, e.timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, fmt.Errorf("failed to create export scratch dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to stage export document: %w", err)
	}

	if err := chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(injectOverrideJS, nil),
	); err != nil {
		return nil, fmt.Errorf("failed to prepare document for export: %w", err)
	}

	defer func() {
		// Cleanup must run even when the capture fails or is cancelled.
		if err := chromedp.Run(runCtx, chromedp.Evaluate(removeOverrideJS, nil)); err != nil {
			log.Printf("[export] failed to remove print override: %v", err)
		}
	}()

	var pdf []byte
	err = chromedp.Run(runCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		var printErr error
		pdf, _, printErr = page.PrintToPDF().
			WithPrintBackground(true).
			WithPaperWidth(paperWidthInches).
			WithPaperHeight(paperHeightInches).
			WithPreferCSSPageSize(true).
			Do(ctx)
		return printErr
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to print document: %w", err)
	}

	return pdf, nil
}
