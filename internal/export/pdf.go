package export

import (
	"context"
	"fmt"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/orajb/cv-craft/internal/render"
	log "github.com/sirupsen/logrus"
	"time"
)

const defaultPrintTimeout = 60 * time.Second

// PDFPrinter prints documents through a headless Chrome.
type PDFPrinter struct {
	chromePath string
	timeout    time.Duration
}

// NewPDFPrinter uses the Chrome binary at chromePath, or looks one up when it is empty.
func NewPDFPrinter(chromePath string) *PDFPrinter {
	return &PDFPrinter{chromePath: chromePath, timeout: defaultPrintTimeout}
}

func (p *PDFPrinter) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

func (p *PDFPrinter) Print(ctx context.Context, doc string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(p.chromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, p.timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, doc).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print PDF: %w", err)
	}
	return pdf, nil
}

// WritePDF prints doc with its layout styles applied and stores it at path.
func (p *PDFPrinter) WritePDF(ctx context.Context, path, doc string, density render.Density, paginate bool) error {
	start := time.Now()
	pdf, err := p.Print(ctx, render.ApplyLayout(doc, density, paginate))
	if err != nil {
		return err
	}
	log.Debugf("printed %s in %v, %d bytes", path, time.Since(start), len(pdf))
	return writeFile(path, pdf)
}
