package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// StorefrontChecker checks storefront backend availability.
type StorefrontChecker interface {
	HealthCheck(ctx context.Context) error
}
