package remote

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

const defaultTimeout = 30 * time.Second

// Client wraps an http.Client with the cross-cutting pieces a wallet app
// wants on every remote call: optional client-side throttling, structured
// logging and outcome metrics. The zero set of options yields a plain
// client with a default timeout.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	log     *log.Logger
	metrics *Metrics
}

type Option func(*Client)

func New(opts ...Option) *Client {
	c := &Client{
		http: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLimit throttles outgoing requests. A call rejected by the limiter is
// reported as too-many-requests without touching the network.
func WithLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func (c *Client) observe(kind string) {
	if c.metrics != nil {
		c.metrics.calls.WithLabelValues(kind).Inc()
	}
}
