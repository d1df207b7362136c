package repository

import (
	"context"
	"errors"
	"time"
)

var (
	ErrUpstreamUnavailable = errors.New("doctor upstream unavailable")
	ErrUpstreamStatus      = errors.New("doctor upstream returned non-success status")
	ErrCacheMiss           = errors.New("payload cache miss")
)

// DoctorSource yields the raw doctor payload, a JSON document.
type DoctorSource interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// PayloadCache stores raw payloads by key.
type PayloadCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
