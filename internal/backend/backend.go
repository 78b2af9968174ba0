package backend

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/twxfilter/twx-catalog/internal/domain"
	apperrors "github.com/twxfilter/twx-catalog/pkg/errors"
)

var ErrNotConfigured = errors.New("backend address is not configured")

//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock.go

// Client is the remote catalog backend. Calls return decoded JSON or fail;
// a non-2xx response surfaces as a StatusError.
type Client interface {
	// SyncMedia bulk-upserts items and returns the backend's reconciled
	// view of them (cache paths and sizes filled in).
	SyncMedia(ctx context.Context, items []domain.MediaItem) ([]domain.MediaItem, error)
	DeleteMedia(ctx context.Context, id string) error
	DeleteAllMedia(ctx context.Context) error
	DeleteCachedMedia(ctx context.Context) error
	DeleteCacheFile(ctx context.Context, id string) error
	ListDuplicates(ctx context.Context) ([]domain.DuplicateSet, error)
	// DetectDuplicates runs ad hoc duplicate detection against the supplied
	// list.
	DetectDuplicates(ctx context.Context, items []domain.MediaItem) ([]domain.DuplicateSet, error)
	CatalogIndex(ctx context.Context) ([]string, error)
	CatalogByDate(ctx context.Context, date string) ([]domain.MediaItem, error)
	Ping(ctx context.Context) error
	// PingAddress checks connectivity against an arbitrary normalized
	// address. The configured address is never consulted or changed, so a
	// connectivity test cannot reroute concurrent calls.
	PingAddress(ctx context.Context, address string) error

	Address() string
	SetAddress(address string)
}

// StatusError carries a non-2xx backend response.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d %s", e.Code, e.Status)
}

func (e *StatusError) Unwrap() error {
	return apperrors.ErrBackend
}

var addressPattern = regexp.MustCompile(`^https?://.+$`)

// NormalizeAddress validates a backend address and strips a trailing slash
// so endpoint paths can be joined naively.
func NormalizeAddress(address string) (string, error) {
	if address == "" {
		return "", ErrNotConfigured
	}
	if !addressPattern.MatchString(address) {
		return "", fmt.Errorf("%w: invalid backend address %q", apperrors.ErrValidation, address)
	}
	return strings.TrimSuffix(address, "/"), nil
}

// JoinEndpoint appends an endpoint path to a normalized address.
func JoinEndpoint(address, endpoint string) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return address + endpoint
}
