package rendering

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

// Letter page geometry, inches. Matches the print settings of the mature
// HTML rendering path.
const (
	paperWidthIn       = 8.5
	paperHeightIn      = 11.0
	marginVerticalIn   = 0.5
	marginHorizontalIn = 0.75
)

// printTimeout bounds a single headless-browser print.
const printTimeout = 60 * time.Second

// HTMLRenderer prints a styled HTML document to PDF with headless Chrome.
// Requires Chrome/Chromium to be installed on the system.
type HTMLRenderer struct{}

// Render implements Renderer.
func (r *HTMLRenderer) Render(ctx context.Context, personal types.PersonalInfo, content *types.GeneratedResumeContent) ([]byte, error) {
	html, err := BuildHTML(personal, content)
	if err != nil {
		return nil, err
	}
	return printToPDF(ctx, html)
}

// printToPDF loads the document into a fresh headless browser tab and
// prints it with fixed Letter geometry.
func printToPDF(ctx context.Context, html string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, printTimeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginVerticalIn).
				WithMarginBottom(marginVerticalIn).
				WithMarginLeft(marginHorizontalIn).
				WithMarginRight(marginHorizontalIn).
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "headless browser print failed", Cause: err}
	}

	return pdf, nil
}
