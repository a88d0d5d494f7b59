// Package nats publishes frozen log collections to a NATS subject
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/ports"
)

const (
	// DefaultSubject is used when no subject is configured
	DefaultSubject = "devcon.logs"

	// FlushTimeout bounds the wait for the server when the caller's context
	// carries no deadline
	FlushTimeout = 5 * time.Second
)

// payload is the message body of one uploaded collection
type payload struct {
	CreatedAt time.Time `json:"created_at"`
	Device    string    `json:"device"`
	ID        string    `json:"id"`
	Lines     []string  `json:"lines"`
}

// Uploader implements ports.LogUploader. It connects on first use so a
// device that boots offline can still start.
type Uploader struct {
	device  string
	subject string
	url     string

	mu sync.Mutex
	nc *nats.Conn
}

var _ ports.LogUploader = (*Uploader)(nil)

// NewUploader creates an uploader for the server at url
func NewUploader(url, subject, device string) *Uploader {
	if subject == "" {
		subject = DefaultSubject
	}
	return &Uploader{device: device, subject: subject, url: url}
}

// Upload publishes the collection and waits for the server to acknowledge
// the flush
func (u *Uploader) Upload(ctx context.Context, collection domain.LogCollection) error {
	nc, err := u.conn()
	if err != nil {
		return err
	}

	data, err := json.Marshal(payload{
		CreatedAt: collection.CreatedAt,
		Device:    u.device,
		ID:        collection.ID,
		Lines:     collection.Lines,
	})
	if err != nil {
		return fmt.Errorf("failed to encode log collection: %w", err)
	}

	msg := &nats.Msg{
		Subject: u.subject,
		Data:    data,
		Header:  make(nats.Header),
	}
	msg.Header.Set("Nats-Msg-Id", collection.ID)

	if err := nc.PublishMsg(msg); err != nil {
		return fmt.Errorf("nats publish %s: %w", u.subject, err)
	}
	// FlushWithContext rejects contexts without a deadline
	flushCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		flushCtx, cancel = context.WithTimeout(ctx, FlushTimeout)
		defer cancel()
	}
	if err := nc.FlushWithContext(flushCtx); err != nil {
		return fmt.Errorf("nats flush: %w", err)
	}

	logging.Logger.Debug("Log collection published", "subject", u.subject, "collection", collection.ID, "bytes", len(data))
	return nil
}

// Close drains the connection if one was opened
func (u *Uploader) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.nc == nil {
		return nil
	}
	err := u.nc.Drain()
	u.nc = nil
	return err
}

func (u *Uploader) conn() (*nats.Conn, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.nc != nil && !u.nc.IsClosed() {
		return u.nc, nil
	}

	nc, err := nats.Connect(u.url,
		nats.Name("devcon-"+u.device),
		nats.Timeout(5*time.Second),
		nats.PingInterval(30*time.Second),
		nats.MaxPingsOutstanding(3),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logging.Logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logging.Logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect %s: %w", u.url, err)
	}
	u.nc = nc
	return nc, nil
}
