package push

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/hirewire/hirewire/pkg/domain"
)

// State is the connectivity state of the push channel, derived purely from
// the last lifecycle signal. Consumers use it for status display only;
// correctness never depends on it.
type State int

const (
	StateDisconnected State = iota
	StateReconnecting
	StateConnected
)

// StatusEvent is a connectivity signal emitted by the channel.
type StatusEvent struct {
	State  State
	Reason string // set on disconnects
}

// Connected reports whether the signal means the channel is live.
func (s StatusEvent) Connected() bool { return s.State == StateConnected }

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second

	// eventName is the single SSE event type the server emits for
	// notification payloads.
	eventName = "notification"
)

// Channel maintains one long-lived SSE connection to the notification
// stream, reconnecting with capped exponential backoff on unexpected
// disconnects. Raw notifications arrive on Events; lifecycle signals on
// Status. Both channels close when the Open context is cancelled.
type Channel struct {
	streamURL string
	token     string

	// No overall timeout: the stream is long-lived. The dial itself is
	// bounded by the Open context.
	httpClient *http.Client

	events chan domain.Notification
	status chan StatusEvent
}

// New creates a push channel for the given API base URL and bearer token
// (the same token the REST client uses).
func New(baseURL, token string) *Channel {
	return &Channel{
		streamURL:  strings.TrimSuffix(baseURL, "/") + "/api/notifications/stream",
		token:      token,
		httpClient: &http.Client{},
		events:     make(chan domain.Notification, 16),
		status:     make(chan StatusEvent, 16),
	}
}

// Events returns the inbound stream of server-pushed notifications,
// delivered in the order the transport received them.
func (c *Channel) Events() <-chan domain.Notification { return c.events }

// Status returns the stream of connectivity signals.
func (c *Channel) Status() <-chan StatusEvent { return c.status }

// Open starts the connection loop in a goroutine. Cancelling ctx stops the
// loop and closes both channels; no event is delivered after that.
func (c *Channel) Open(ctx context.Context) {
	go c.run(ctx)
}

func (c *Channel) run(ctx context.Context) {
	defer close(c.events)
	defer close(c.status)

	backoff := initialBackoff
	for {
		err := c.stream(ctx, &backoff)
		if ctx.Err() != nil {
			return
		}

		c.sendStatus(ctx, StatusEvent{State: StateDisconnected, Reason: err.Error()})
		c.sendStatus(ctx, StatusEvent{State: StateReconnecting})

		if !sleep(ctx, withJitter(backoff)) {
			return
		}
		backoff = nextBackoff(backoff)
	}
}

// stream dials the SSE endpoint and pumps events until the connection
// breaks. Returns the terminal error; resets backoff once connected.
func (c *Channel) stream(ctx context.Context, backoff *time.Duration) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.streamURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("dial stream: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stream returned HTTP %d", resp.StatusCode)
	}

	*backoff = initialBackoff
	c.sendStatus(ctx, StatusEvent{State: StateConnected})

	var event, data string
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			// Blank line terminates a frame.
			if event == eventName && data != "" {
				c.dispatch(ctx, data)
			}
			event, data = "", ""
		case strings.HasPrefix(line, ":"):
			// Comment / keepalive.
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if data != "" {
				data += "\n"
			}
			data += strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
		// id: and retry: fields are ignored; reconnect timing is ours.
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stream: %w", err)
	}
	return fmt.Errorf("stream closed by server")
}

// dispatch decodes one data payload and forwards it. Malformed payloads are
// dropped: a bad event must never take the channel down.
func (c *Channel) dispatch(ctx context.Context, data string) {
	var n domain.Notification
	if err := json.Unmarshal([]byte(data), &n); err != nil {
		return
	}
	select {
	case c.events <- n:
	case <-ctx.Done():
	}
}

func (c *Channel) sendStatus(ctx context.Context, s StatusEvent) {
	select {
	case c.status <- s:
	case <-ctx.Done():
	}
}

// nextBackoff doubles the delay up to the cap.
func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

// withJitter spreads reconnect attempts over [d/2, d) so clients that lost
// the same server don't stampede it.
func withJitter(d time.Duration) time.Duration {
	half := d / 2
	if half <= 0 {
		return d
	}
	return half + time.Duration(rand.Int63n(int64(half)))
}

// sleep waits for d or until ctx is cancelled; reports whether the full
// wait elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
