package events

// KindConnectionStateChanged identifies a transport lifecycle change.
const KindConnectionStateChanged Kind = "connection.state_changed"

// ConnectionState is the transport connection lifecycle state.
type ConnectionState string

const (
	ConnectionDisconnected ConnectionState = "disconnected"
	ConnectionConnecting   ConnectionState = "connecting"
	ConnectionConnected    ConnectionState = "connected"
)

// ConnectionStateChanged marks a transport connection lifecycle change.
type ConnectionStateChanged struct {
	Base
	State ConnectionState
}

// NewConnectionStateChanged creates a connection state changed event.
func NewConnectionStateChanged(state ConnectionState) ConnectionStateChanged {
	return ConnectionStateChanged{Base: NewBase(KindConnectionStateChanged), State: state}
}

// Unclassified carries an event that failed validation or declared an
// unknown type. The apply path drops it after logging.
type Unclassified struct {
	Base
	RawType string
}

// KindUnclassified identifies events that could not be classified.
const KindUnclassified Kind = "unclassified"

// NewUnclassified creates an unclassified event for the given raw type.
func NewUnclassified(rawType string) Unclassified {
	return Unclassified{Base: NewBase(KindUnclassified), RawType: rawType}
}
