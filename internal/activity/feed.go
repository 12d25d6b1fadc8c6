package activity

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"
)

const pollInterval = time.Minute

// feedSource polls an RSS/Atom feed and surfaces the newest item title
// as the status line.
type feedSource struct {
	url      string
	interval time.Duration
	parser   *gofeed.Parser
}

func newFeedSource(url string) *feedSource {
	return &feedSource{
		url:      url,
		interval: pollInterval,
		parser:   gofeed.NewParser(),
	}
}

func (s *feedSource) Listen(ctx context.Context, out chan<- string) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var last string
	for {
		title, err := s.latest(ctx)
		if err == nil && title != "" && title != last {
			last = title
			select {
			case out <- title:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *feedSource) latest(ctx context.Context) (string, error) {
	feed, err := s.parser.ParseURLWithContext(s.url, ctx)
	if err != nil {
		return "", err
	}
	if len(feed.Items) == 0 {
		return "", nil
	}
	return feed.Items[0].Title, nil
}
