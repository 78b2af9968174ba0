package operatorimpl

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twxfilter/twx-catalog/internal/backend"
)

const configKey = "config"

type persistedConfig struct {
	BackendAddress string `json:"backendAddress"`
}

func (o *OperatorImpl) SetBackendAddress(ctx context.Context, address string) error {
	normalized, err := backend.NormalizeAddress(address)
	if err != nil {
		return err
	}

	data, err := json.Marshal(persistedConfig{BackendAddress: normalized})
	if err != nil {
		return fmt.Errorf("failed to encode backend config: %w", err)
	}
	if err := o.Storage.Set(ctx, configKey, data); err != nil {
		return err
	}

	o.Backend.SetAddress(normalized)
	o.Logger.Info("Backend address updated", "address", normalized)
	return nil
}

func (o *OperatorImpl) TestBackend(ctx context.Context, address string) error {
	normalized, err := backend.NormalizeAddress(address)
	if err != nil {
		return err
	}

	// Probe the candidate directly; the configured address never changes,
	// even for the duration of the test.
	return o.Backend.PingAddress(ctx, normalized)
}
