package session

import (
	"context"
	"errors"

	"github.com/benkoska/voiceline-core/core/realtime"
)

// ErrNoTransport is returned when connecting a session that was built
// without a transport.
var ErrNoTransport = errors.New("no transport configured")

// Transport is the opaque event source the session drives. The realtime
// client satisfies it; tests substitute their own.
type Transport interface {
	Connect(ctx context.Context, opts ...realtime.ConnectOption) error
	SendEvent(event realtime.ClientEvent) error
	Interrupt() error
	Mute(muted bool) error
	Close() error
}

// transport is the facade used to normalize optional client wiring. Every
// outward operation degrades to a no-op when no client is configured, so
// the merge path stays exercisable without a live connection.
type transport struct {
	client Transport
}

func (t *transport) set(client Transport) {
	if t != nil {
		t.client = client
	}
}

func (t *transport) isConfigured() bool {
	return t != nil && t.client != nil
}

func (t *transport) Connect(ctx context.Context, opts ...realtime.ConnectOption) error {
	if !t.isConfigured() {
		return ErrNoTransport
	}
	return t.client.Connect(ctx, opts...)
}

func (t *transport) SendEvent(event realtime.ClientEvent) error {
	if !t.isConfigured() {
		return nil
	}
	return t.client.SendEvent(event)
}

func (t *transport) Interrupt() error {
	if !t.isConfigured() {
		return nil
	}
	return t.client.Interrupt()
}

func (t *transport) Mute(muted bool) error {
	if !t.isConfigured() {
		return nil
	}
	return t.client.Mute(muted)
}

func (t *transport) Close() error {
	if !t.isConfigured() {
		return nil
	}
	return t.client.Close()
}
