// Billboard.com implementation of [ChartSource]
//
// Chart pages are public HTML; rosters are scraped from the chart-result
// markup rather than an API.
package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/models"
	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/shared"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

const (
	billboardBaseURL = "https://www.billboard.com"

	// publishedDateLayout matches the "Week of January 4, 2020" heading.
	publishedDateLayout = "January 2, 2006"

	// billboard.com serves an error page to the default Go user agent.
	browserUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

	defaultRequestsPerMinute = 20
)

// BillboardService implements the ChartSource interface against
// billboard.com chart pages.
type BillboardService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewBillboardService creates a new Billboard chart source.
//
// An empty baseURL selects billboard.com, a nil client selects
// [http.DefaultClient], and a non-positive requestsPerMinute selects the
// default throttle.
func NewBillboardService(baseURL string, client *http.Client, requestsPerMinute int) *BillboardService {
	if baseURL == "" {
		baseURL = billboardBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = defaultRequestsPerMinute
	}

	return &BillboardService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
	}
}

func (s *BillboardService) Name() string {
	return "Billboard"
}

// Resolve returns the published date of the chart week the given date falls
// in. Billboard redirects any date to the nearest chart week, so this is a
// page fetch that keeps only the "Week of" heading.
func (s *BillboardService) Resolve(ctx context.Context, chart models.Chart, date time.Time) (time.Time, error) {
	published, _, err := s.fetchChartPage(ctx, chart, date)
	if err != nil {
		return time.Time{}, err
	}
	return published, nil
}

// Fetch retrieves the chart week the given date falls in with its ordered
// entries.
func (s *BillboardService) Fetch(ctx context.Context, chart models.Chart, date time.Time) (*ChartWeek, error) {
	published, entries, err := s.fetchChartPage(ctx, chart, date)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s at %s", shared.ErrEmptyRoster, chart.Slug(), models.FormatDate(date))
	}

	return &ChartWeek{
		Chart:   chart,
		Date:    published,
		Entries: entries,
	}, nil
}

// fetchChartPage performs a rate-limited GET of one chart page and parses it.
func (s *BillboardService) fetchChartPage(ctx context.Context, chart models.Chart, date time.Time) (time.Time, []ChartEntry, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return time.Time{}, nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	chartURL := fmt.Sprintf("%s/charts/%s/%s/", s.baseURL, chart.Slug(), models.FormatDate(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, chartURL, nil)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("%w: %v", shared.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return time.Time{}, nil, fmt.Errorf("%w: %s returned status %d", shared.ErrSourceUnavailable, chartURL, resp.StatusCode)
	}

	published, entries, err := parseChartPage(resp.Body)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("failed to parse %s: %w", chartURL, err)
	}

	return published, entries, nil
}

// parseChartPage extracts the published date and the ranked entries from a
// billboard.com chart page.
//
// The markup pairs each row's title (h3.c-title.a-no-trucate) with its
// artist credit (span.c-label.a-no-trucate) in document order; the page
// heading carries "Week of <date>" in a c-tagline element.
func parseChartPage(r io.Reader) (time.Time, []ChartEntry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("%w: %v", shared.ErrSourceUnavailable, err)
	}

	var published time.Time
	var titles, artists []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			class := attrValue(n, "class")
			switch {
			case strings.Contains(class, "c-tagline") && published.IsZero():
				text := strings.TrimSpace(nodeText(n))
				if rest, ok := strings.CutPrefix(text, "Week of "); ok {
					if t, err := time.Parse(publishedDateLayout, rest); err == nil {
						published = t.UTC()
					}
				}
			case n.Data == "h3" && strings.Contains(class, "c-title") && strings.Contains(class, "a-no-trucate"):
				titles = append(titles, strings.TrimSpace(nodeText(n)))
			case n.Data == "span" && strings.Contains(class, "c-label") && strings.Contains(class, "a-no-trucate"):
				artists = append(artists, strings.TrimSpace(nodeText(n)))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if published.IsZero() {
		return time.Time{}, nil, fmt.Errorf("%w: chart page has no published date", shared.ErrSourceUnavailable)
	}

	entries := make([]ChartEntry, 0, len(artists))
	for i, artist := range artists {
		entry := ChartEntry{Rank: i + 1, Artist: artist}
		if i < len(titles) {
			entry.Title = titles[i]
		}
		entries = append(entries, entry)
	}

	return published, entries, nil
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// nodeText returns the concatenated text content of a node's subtree.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
