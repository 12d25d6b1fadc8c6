// Package activity delivers free-text status updates from an external
// channel into the UI.
package activity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/photogroove/pgroove/internal/config"
)

// DecodeErrText replaces payloads that are not plain JSON strings.
const DecodeErrText = "Pasta status error"

// Source pushes status lines into out until ctx is cancelled or the
// channel ends. Errors end the feed; they never touch gallery state.
type Source interface {
	Listen(ctx context.Context, out chan<- string) error
}

// New builds a source from config. A nil section means no feed.
func New(cfg *config.Activity) (Source, error) {
	if cfg == nil {
		return nil, nil
	}
	switch cfg.Type {
	case "websocket":
		return newWebsocketSource(cfg.URL), nil
	case "feed":
		return newFeedSource(cfg.URL), nil
	default:
		return nil, fmt.Errorf("unknown activity source type %q", cfg.Type)
	}
}

// Decode interprets one raw payload from the channel. Anything that is
// not a JSON string degrades to an error message instead of failing.
func Decode(raw []byte) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return DecodeErrText
	}
	return s
}

// Greeting builds the initial status line from the configured version.
func Greeting(version string) string {
	var v float64
	if err := json.Unmarshal([]byte(version), &v); err != nil {
		return "No pasta version number"
	}
	return fmt.Sprintf("Initializing Pasta v%g", v)
}
