package backendimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	bo "github.com/cenkalti/backoff/v4"
	"github.com/twxfilter/twx-catalog/internal/backend"
	"github.com/twxfilter/twx-catalog/internal/ratelimit"
	"github.com/twxfilter/twx-catalog/internal/storage"
	"github.com/twxfilter/twx-catalog/pkg/config"
	"github.com/twxfilter/twx-catalog/pkg/logger"
	"github.com/twxfilter/twx-catalog/pkg/retry"
	"go.uber.org/fx"
)

const configKey = "config"

// persistedConfig mirrors the backend configuration document kept in the
// key-value store.
type persistedConfig struct {
	BackendAddress string `json:"backendAddress"`
}

type Opts struct {
	fx.In

	Config  *config.Config
	Storage storage.Store
	Logger  logger.Logger
}

type ClientImpl struct {
	HTTP    *http.Client
	Storage storage.Store
	Logger  logger.Logger
	Limiter ratelimit.Limiter

	mu      sync.RWMutex
	address string
}

func New(opts Opts) *ClientImpl {
	c := &ClientImpl{
		HTTP:    &http.Client{Timeout: opts.Config.Backend.Timeout},
		Storage: opts.Storage,
		Logger:  opts.Logger,
		Limiter: ratelimit.NewInMemoryLimiter(10, time.Second, 20),
	}

	// A persisted backend address wins over the environment; the user set
	// it at runtime.
	address := opts.Config.Backend.Address
	if data, err := opts.Storage.Get(context.Background(), configKey); err == nil {
		var pc persistedConfig
		if err := json.Unmarshal(data, &pc); err == nil && pc.BackendAddress != "" {
			address = pc.BackendAddress
		}
	}

	if address != "" {
		normalized, err := backend.NormalizeAddress(address)
		if err != nil {
			opts.Logger.Warn("Ignoring invalid backend address", "address", address, "error", err)
		} else {
			c.address = normalized
		}
	}

	return c
}

var _ backend.Client = (*ClientImpl)(nil)

func (c *ClientImpl) Address() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.address
}

func (c *ClientImpl) SetAddress(address string) {
	c.mu.Lock()
	c.address = address
	c.mu.Unlock()
}

func (c *ClientImpl) do(ctx context.Context, method, path string, body, out any) error {
	address := c.Address()
	if address == "" {
		return backend.ErrNotConfigured
	}
	return c.doAt(ctx, address, method, path, body, out)
}

// doAt issues one request against an explicit base address, so probes can
// target a candidate without touching the configured address.
func (c *ClientImpl) doAt(ctx context.Context, address, method, path string, body, out any) error {
	ep := backend.JoinEndpoint(address, path)

	if err := c.Limiter.Wait(ctx, path); err != nil {
		return err
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, ep, payload)
	if err != nil {
		return fmt.Errorf("failed to build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &backend.StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// doWithRetry retries transient failures with backoff. Client-side 4xx
// responses are permanent and fail immediately.
func (c *ClientImpl) doWithRetry(ctx context.Context, method, path string, body, out any) error {
	operation := func() error {
		err := c.do(ctx, method, path, body, out)
		if err == nil {
			return nil
		}
		if errors.Is(err, backend.ErrNotConfigured) {
			return bo.Permanent(err)
		}
		var status *backend.StatusError
		if errors.As(err, &status) && status.Code >= 400 && status.Code < 500 {
			return bo.Permanent(err)
		}
		return err
	}
	return retry.Do(ctx, c.Logger, fmt.Sprintf("%s %s", method, path), operation, retry.DefaultConfig())
}
