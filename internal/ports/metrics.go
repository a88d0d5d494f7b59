package ports

import "context"

// MetricsSession tracks one OTA attempt from start to its result code
type MetricsSession interface {
	End(ctx context.Context, resultCode int)
	Start(ctx context.Context)
}

// Counters records monotonically increasing counters
type Counters interface {
	Add(ctx context.Context, name string, delta int64)
}
