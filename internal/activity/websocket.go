package activity

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"
)

// websocketSource reads JSON payloads pushed over a websocket.
type websocketSource struct {
	url string
}

func newWebsocketSource(url string) *websocketSource {
	return &websocketSource{url: url}
}

func (s *websocketSource) Listen(ctx context.Context, out chan<- string) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", s.url, err)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("reading activity message: %w", err)
		}
		select {
		case out <- Decode(raw):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
