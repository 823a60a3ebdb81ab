package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"syscall"

	"github.com/veloq/walletcore/pkg/outcome"
	"github.com/veloq/walletcore/pkg/outcome/fault"
)

// Call executes a single request function and classifies whatever happens
// into the closed remote fault set. The request runs exactly once: no
// retries, no caching, no backoff. Cancellation of ctx is propagated as a
// cancel outcome, never reported as a fault.
func Call[T any](ctx context.Context, c *Client,
	do func(ctx context.Context) (*http.Response, error)) outcome.Outcome[T] {

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return cancelled[T](c, ctx.Err())
			}
			return failed[T](c, fault.RemoteTooManyRequests)
		}
	}

	resp, err := do(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return cancelled[T](c, ctx.Err())
		}
		if outcome.IsCancellation(err) {
			return cancelled[T](c, err)
		}
		return failed[T](c, classifyTransport(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		var v T
		if decErr := json.NewDecoder(resp.Body).Decode(&v); decErr != nil {
			return failed[T](c, fault.RemoteDecode)
		}
		c.observe("success")
		if c.log != nil {
			c.log.Debug("remote call succeeded", "status", resp.StatusCode)
		}
		return outcome.Success(v)
	}

	return failed[T](c, ForStatus(resp.StatusCode))
}

// GetJSON issues a GET for url on the client and decodes the body into T.
func GetJSON[T any](ctx context.Context, c *Client, url string) outcome.Outcome[T] {
	return Call[T](ctx, c, func(ctx context.Context) (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return c.http.Do(req)
	})
}

// ForStatus maps a non-2xx status code to its remote fault.
func ForStatus(code int) fault.Remote {
	switch {
	case code == http.StatusRequestTimeout:
		return fault.RemoteTimeout
	case code == http.StatusTooManyRequests:
		return fault.RemoteTooManyRequests
	case code >= 500 && code <= 599:
		return fault.RemoteServer
	default:
		return fault.RemoteUnknown
	}
}

func classifyTransport(err error) fault.Remote {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fault.RemoteTimeout
	}
	if outcome.IsDeadline(err) {
		return fault.RemoteTimeout
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fault.RemoteNoRoute
	}
	if errors.Is(err, syscall.EHOSTUNREACH) || errors.Is(err, syscall.ENETUNREACH) {
		return fault.RemoteNoRoute
	}
	return fault.RemoteUnknown
}

func cancelled[T any](c *Client, cause error) outcome.Outcome[T] {
	c.observe("cancel")
	if c.log != nil {
		c.log.Debug("remote call cancelled", "cause", cause)
	}
	return outcome.Cancel[T](cause)
}

func failed[T any](c *Client, f fault.Remote) outcome.Outcome[T] {
	c.observe(f.String())
	if c.log != nil {
		c.log.Warn("remote call failed", "fault", f.String())
	}
	return outcome.Fail[T](f)
}
