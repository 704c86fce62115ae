package valkey

import (
	"context"
	"fmt"
	"strings"
	"time"

	valkeylib "github.com/valkey-io/valkey-go"
)

const connectTimeout = 5 * time.Second

// Config selects the Valkey server backing settings storage and the
// websocket broadcast channel.
type Config struct {
	Address   string
	Password  string
	DB        int
	KeyPrefix string
}

// Client is a valkey-go client bound to one key namespace.
type Client struct {
	inner  valkeylib.Client
	prefix string
}

// NewClient connects and pings the server. The caller owns Close.
func NewClient(cfg Config) (*Client, error) {
	inner, err := valkeylib.NewClient(valkeylib.ClientOption{
		InitAddress: []string{cfg.Address},
		Password:    cfg.Password,
		SelectDB:    cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create valkey client: %w", err)
	}

	c := &Client{inner: inner, prefix: normalizePrefix(cfg.KeyPrefix)}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := c.Ping(ctx); err != nil {
		inner.Close()
		return nil, fmt.Errorf("failed to ping valkey at %s: %w", cfg.Address, err)
	}
	return c, nil
}

func normalizePrefix(prefix string) string {
	if prefix != "" && !strings.HasSuffix(prefix, ":") {
		return prefix + ":"
	}
	return prefix
}

// Inner exposes the command builder for hash and pub/sub calls.
func (c *Client) Inner() valkeylib.Client {
	return c.inner
}

func (c *Client) Close() {
	if c.inner != nil {
		c.inner.Close()
	}
}

// Key joins parts under the namespace, e.g. Key("settings") -> "chatbox:settings".
func (c *Client) Key(parts ...string) string {
	return c.prefix + strings.Join(parts, ":")
}

func (c *Client) Ping(ctx context.Context) error {
	return c.inner.Do(ctx, c.inner.B().Ping().Build()).Error()
}

// IsNil reports a missing key or field.
func IsNil(err error) bool {
	return valkeylib.IsValkeyNil(err)
}
