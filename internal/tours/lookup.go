package tours

import (
	"context"
	"strings"

	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/observability"
)

// Lookup produces a compact live-booking summary for the best activity match.
// It is a best-effort enrichment source: every failure degrades to "".
type Lookup struct {
	api    API
	logger *observability.Logger
}

// NewLookup creates a lookup service over an activities source.
func NewLookup(api API, logger *observability.Logger) *Lookup {
	if logger == nil {
		logger = observability.DefaultLogger()
	}
	return &Lookup{api: api, logger: logger.WithComponent("tours.lookup")}
}

// Summary searches for the top matching activity and renders its details as
// a fixed-format text block. Returns "" when nothing matches or any call
// fails.
func (l *Lookup) Summary(ctx context.Context, query string) string {
	results, err := l.api.SearchTours(ctx, query, 1)
	if err != nil {
		l.logger.Warn().Err(err).Str("query", query).Msg("Activity search failed")
		return ""
	}
	if len(results) == 0 {
		return ""
	}

	details, err := l.api.TourDetails(ctx, results[0].ID)
	if err != nil {
		l.logger.Warn().Err(err).Str("tour_id", results[0].ID).Msg("Tour details fetch failed")
		return ""
	}
	if details.Name == "" {
		return ""
	}

	lines := []string{
		"--- LIVE BOOKING DATA (GetYourGuide) ---",
		"Title: " + details.Name,
		"Rating: " + details.Rating,
		"Duration: " + details.Duration,
		"Highlights: " + strings.Join(firstN(details.Highlights, 3), ", "),
		"Inclusions: " + strings.Join(firstN(details.Inclusions, 3), ", "),
		"Price: Check availability for latest pricing.",
		"----------------------------------------",
	}
	return strings.Join(lines, "\n")
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
