package collector

import (
	"context"

	"SignalSentinel/internal/model"
)

// Source loads the price series the engine analyzes.
type Source interface {
	Load(ctx context.Context) (model.PriceSeries, error)
	Name() string
}
