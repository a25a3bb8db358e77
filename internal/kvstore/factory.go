package kvstore

import (
	"context"
	"fmt"
)

// Driver identifies a storage backend.
type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverFile     Driver = "file"
	DriverRedis    Driver = "redis"
	DriverPostgres Driver = "postgres"
)

// Options carries the backend-specific settings the factory needs.
type Options struct {
	Driver      Driver
	DataDir     string // file driver
	RedisURL    string // redis driver
	DatabaseURL string // postgres driver
}

// Open selects and connects a Store implementation.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile, "":
		return NewFile(opts.DataDir)
	case DriverRedis:
		return NewRedis(ctx, opts.RedisURL)
	case DriverPostgres:
		return NewPostgres(ctx, opts.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
