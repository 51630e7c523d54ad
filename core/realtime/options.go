package realtime

import "context"

// ClientOption configures the client at construction time.
type ClientOption func(*Client)

// WithModel overrides the realtime model requested at dial time.
func WithModel(model string) ClientOption {
	return func(c *Client) { c.model = model }
}

// WithBaseURL overrides the realtime websocket endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithSessionEndpoint mints the ephemeral client secret from the given
// HTTP(S) endpoint instead of the realtime API itself. The endpoint is
// expected to respond with a JSON body carrying client_secret.value.
func WithSessionEndpoint(url string) ClientOption {
	return func(c *Client) { c.sessionEndpoint = url }
}

// WithClientSecretProvider supplies ephemeral credentials directly,
// bypassing HTTP minting entirely.
func WithClientSecretProvider(provider func(ctx context.Context) (string, error)) ClientOption {
	return func(c *Client) { c.clientSecret = provider }
}

// ConnectOptions carries per-connection callbacks. All callbacks are
// invoked from the client's single read goroutine, one at a time.
type ConnectOptions struct {
	ServerEventCallback     func(event ServerEvent)
	ConnectionStateCallback func(state string)
}

// ConnectOption configures one Connect call.
type ConnectOption func(*ConnectOptions)

// WithServerEventCallback registers the raw event consumer.
func WithServerEventCallback(callback func(event ServerEvent)) ConnectOption {
	return func(o *ConnectOptions) { o.ServerEventCallback = callback }
}

// WithConnectionStateCallback registers the lifecycle consumer. States are
// StateConnecting, StateConnected and StateDisconnected.
func WithConnectionStateCallback(callback func(state string)) ConnectOption {
	return func(o *ConnectOptions) { o.ConnectionStateCallback = callback }
}
