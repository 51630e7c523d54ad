// Package realtime implements the websocket transport for an
// OpenAI-realtime-style bidirectional session. It is an opaque event
// source: it dials, decodes raw server events, and writes raw client
// events, without interpreting either beyond the envelope.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/codes"
)

// Connection lifecycle states reported through the state callback.
const (
	StateConnecting   = "connecting"
	StateConnected    = "connected"
	StateDisconnected = "disconnected"
)

const (
	defaultBaseURL = "wss://api.openai.com/v1/realtime"
	defaultModel   = "gpt-4o-realtime-preview-2025-06-03"

	mintEndpoint = "https://api.openai.com/v1/realtime/sessions"
)

// Client is a websocket client for one realtime session. A client may be
// connected at most once at a time; Connect after Close establishes a
// fresh session.
type Client struct {
	connMu sync.Mutex
	conn   *websocket.Conn

	muted atomic.Bool

	model           string
	baseURL         string
	sessionEndpoint string
	clientSecret    func(ctx context.Context) (string, error)
	httpClient      *http.Client
}

// NewClient creates a realtime client. Without options it mints ephemeral
// credentials from the realtime API using OPENAI_API_KEY.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		model:   defaultModel,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithSpanNameFormatter(func(operationName string, request *http.Request) string {
				return fmt.Sprintf("%s %s", request.Method, request.URL.Path)
			}),
		)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect mints credentials, dials the realtime endpoint and starts the
// read loop. The state callback observes connecting before the dial and
// connected after it; a failed dial reports disconnected and returns the
// error.
func (c *Client) Connect(ctx context.Context, opts ...ConnectOption) error {
	options := &ConnectOptions{}
	for _, opt := range opts {
		opt(options)
	}

	reportState := options.ConnectionStateCallback
	if reportState == nil {
		reportState = func(string) {}
	}

	ctx, span := tracer.Start(ctx, "realtime connect")
	defer span.End()

	reportState(StateConnecting)

	secret, err := c.mintClientSecret(ctx)
	if err != nil {
		err = fmt.Errorf("failed to mint client secret: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		reportState(StateDisconnected)
		return err
	}

	dialURL, err := url.Parse(c.baseURL)
	if err != nil {
		reportState(StateDisconnected)
		return fmt.Errorf("invalid realtime base url: %w", err)
	}
	queryParams := dialURL.Query()
	queryParams.Set("model", c.model)
	dialURL.RawQuery = queryParams.Encode()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, dialURL.String(), http.Header{
		"Authorization": {"Bearer " + secret},
		"OpenAI-Beta":   {"realtime=v1"},
	})
	if err != nil {
		err = fmt.Errorf("failed to open realtime websocket: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		reportState(StateDisconnected)
		return err
	}

	c.connMu.Lock()
	c.conn = conn
	c.connMu.Unlock()

	reportState(StateConnected)
	go c.readAndProcessMessages(conn, *options, reportState)

	return nil
}

func (c *Client) mintClientSecret(ctx context.Context) (string, error) {
	if c.clientSecret != nil {
		return c.clientSecret(ctx)
	}

	endpoint := c.sessionEndpoint
	apiKey := ""
	if endpoint == "" {
		key, ok := os.LookupEnv("OPENAI_API_KEY")
		if !ok {
			return "", fmt.Errorf("openai api key not found")
		}
		endpoint = mintEndpoint
		apiKey = key
	}

	body := strings.NewReader(fmt.Sprintf(`{"model":%q}`, c.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("session endpoint returned status %d", resp.StatusCode)
	}

	var parsed struct {
		ClientSecret struct {
			Value string `json:"value"`
		} `json:"client_secret"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode session response: %w", err)
	}
	if parsed.ClientSecret.Value == "" {
		return "", fmt.Errorf("no ephemeral key in session response")
	}

	return parsed.ClientSecret.Value, nil
}

func (c *Client) readAndProcessMessages(conn *websocket.Conn, options ConnectOptions, reportState func(string)) {
	defer func() {
		c.connMu.Lock()
		if c.conn == conn {
			c.conn = nil
		}
		c.connMu.Unlock()
		conn.Close()
		reportState(StateDisconnected)
	}()

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Failed to read realtime websocket message", "error", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var event ServerEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			logger.Warn("Failed to unmarshal realtime message", "error", err)
			continue
		}
		if event.Error != nil {
			logger.Warn("Realtime session reported error",
				"code", event.Error.Code, "message", event.Error.Message)
		}
		if options.ServerEventCallback != nil {
			options.ServerEventCallback(event)
		}
	}
}

// SendEvent writes one raw client event to the session.
func (c *Client) SendEvent(event ClientEvent) error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn == nil {
		return fmt.Errorf("realtime connection not open")
	}
	if err := c.conn.WriteJSON(event); err != nil {
		return fmt.Errorf("failed to write to realtime session: %w", err)
	}
	return nil
}

// SendAudio appends one input audio frame. Frames are dropped silently
// while the client is muted.
func (c *Client) SendAudio(audio []byte) error {
	if c.muted.Load() {
		return nil
	}
	return c.SendEvent(NewInputAudioBufferAppendEvent(audio))
}

// Interrupt requests best-effort cancellation of the in-flight response.
func (c *Client) Interrupt() error {
	return c.SendEvent(NewResponseCancelEvent())
}

// Mute toggles dropping of outbound audio frames.
func (c *Client) Mute(muted bool) error {
	c.muted.Store(muted)
	return nil
}

// Close tears the connection down. The read loop reports the disconnect.
func (c *Client) Close() error {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.conn == nil {
		return nil
	}
	if err := c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")); err != nil {
		c.conn.Close()
		c.conn = nil
		return fmt.Errorf("failed to close realtime websocket: %w", err)
	}
	c.conn.Close()
	c.conn = nil
	return nil
}
