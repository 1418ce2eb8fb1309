// Package fetcher handles downloading and parsing the deals RSS feed.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/mmcdole/gofeed"

	"dealsync/internal/model"
)

// timeLayout is the ISO-8601 form used for pubDate throughout the data file.
const timeLayout = "2006-01-02T15:04:05Z"

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher downloads and parses the deals feed.
type Fetcher struct {
	client HTTPClient
}

// New creates a Fetcher with the given HTTP client.
func New(client HTTPClient) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch downloads the feed at url and returns its entries as listings.
// Entries missing a title or link are dropped here; there is nothing to
// classify or deduplicate on.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]model.Listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "DealSync/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 5*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	feed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	var listings []model.Listing
	for _, item := range feed.Items {
		l := toListing(item)
		if l.Title == "" || l.Link == "" {
			continue
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func toListing(item *gofeed.Item) model.Listing {
	l := model.Listing{
		Title: item.Title,
		Link:  item.Link,
	}
	switch {
	case item.PublishedParsed != nil:
		l.PubDate = item.PublishedParsed.UTC().Format(timeLayout)
	case item.UpdatedParsed != nil:
		l.PubDate = item.UpdatedParsed.UTC().Format(timeLayout)
	}
	return l
}
