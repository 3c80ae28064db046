package hooks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"git.home.luguber.info/inful/sitegen/internal/config"
	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// NATSPublisher mirrors bus events to a NATS JetStream subject so
// external tooling can react to builds without linking into the
// process.
type NATSPublisher struct {
	conn    *nats.Conn
	js      jetstream.JetStream
	subject string
}

// NewNATSPublisher connects to NATS and ensures the configured stream
// exists.
func NewNATSPublisher(cfg config.NATSConfig) (*NATSPublisher, error) {
	if !cfg.Enabled {
		return nil, fmt.Errorf("nats hooks are disabled")
	}

	conn, err := nats.Connect(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	p := &NATSPublisher{conn: conn, js: js, subject: cfg.Subject}

	if cfg.Stream != "" {
		if err := p.ensureStream(cfg.Stream); err != nil {
			conn.Close()
			return nil, err
		}
	}

	slog.Info("NATS hook publisher initialized", "url", cfg.URL, "subject", cfg.Subject)
	return p, nil
}

func (p *NATSPublisher) ensureStream(stream string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := p.js.Stream(ctx, stream)
	if err == nil {
		return nil
	}

	_, err = p.js.CreateStream(ctx, jetstream.StreamConfig{
		Name:        stream,
		Description: "sitegen build events",
		Subjects:    []string{p.subject + ".>"},
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}
	return nil
}

// Attach subscribes the publisher to every event on bus.
func (p *NATSPublisher) Attach(bus *Bus) {
	bus.SubscribeAll(func(e Event) error {
		if err := p.publish(e); err != nil {
			// Hook delivery is fire-and-forget; log and move on.
			slog.Warn("NATS hook publish failed", "event", e.Name(), "error", err)
		}
		return nil
	})
}

func (p *NATSPublisher) publish(e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return sgerrors.HookPublishFailed(e.Name(), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := p.js.Publish(ctx, p.subject+"."+e.Name(), payload); err != nil {
		return sgerrors.HookPublishFailed(e.Name(), err)
	}
	return nil
}

// Close drains the NATS connection.
func (p *NATSPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
