// Package pipeline runs the scrape stages sequentially. There is no
// parallelism anywhere: pages are fetched one at a time with a
// politeness delay, and the single catalog accumulator is owned by the
// caller and mutated only between fetches.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"catalog-scrape/pkg/catalog"
)

// PolitenessDelay is the fixed interval between page fetches. The
// catalog is served by a small shared host; hammering it gets the
// scraper blocked.
const PolitenessDelay = time.Second

// Fetcher is the page-fetch collaborator: given a URL it returns the
// page body, or empty text when the page yields no data.
type Fetcher interface {
	PageText(url string) string
}

// Stage is one pipeline stage, registered explicitly and run in order.
type Stage struct {
	Name string
	Run  func(ctx context.Context) error
}

// Run executes stages in order. The first stage-fatal error stops the
// run; downstream stages are not invoked.
func Run(ctx context.Context, stages []Stage) error {
	for _, stage := range stages {
		log.Printf("stage %s: starting", stage.Name)
		if err := stage.Run(ctx); err != nil {
			return fmt.Errorf("stage %s: %w", stage.Name, err)
		}
		log.Printf("stage %s: done", stage.Name)
	}
	return nil
}

// Sweep fetches each URL in order, parses the page with the given
// features and merges the result into the catalog. A page that fetches
// empty or fails to parse is skipped with a warning; the sweep
// continues. Returns the number of pages that yielded data.
func Sweep(ctx context.Context, fetcher Fetcher, pageURLs []string, features []catalog.Feature, cat *catalog.Catalog) int {
	merged := 0
	for i, pageURL := range pageURLs {
		if ctx.Err() != nil {
			log.Printf("sweep stopped after %d/%d pages: %v", i, len(pageURLs), ctx.Err())
			break
		}
		if i > 0 {
			time.Sleep(PolitenessDelay)
		}

		log.Printf("[%d/%d] fetching %s", i+1, len(pageURLs), pageURL)
		text := fetcher.PageText(pageURL)
		if text == "" {
			log.Printf("[%d/%d] no content, skipping", i+1, len(pageURLs))
			continue
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
		if err != nil {
			log.Printf("[%d/%d] parse failed: %v", i+1, len(pageURLs), err)
			continue
		}

		cat.Merge(catalog.ParsePage(doc, text, features))
		merged++
	}
	return merged
}
