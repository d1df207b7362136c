package repository

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	domainRepo "doctor-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	payload []byte
	err     error
	calls   int
}

func (s *stubSource) Fetch(ctx context.Context) ([]byte, error) {
	s.calls++
	return s.payload, s.err
}

type memoryCache struct {
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	v, ok := c.data[key]
	if !ok {
		return nil, domainRepo.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = value
	c.ttls[key] = ttl
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestDoctorRepository_NoCache(t *testing.T) {
	source := &stubSource{payload: []byte(`[]`)}
	repo := NewDoctorRepository(source, nil, time.Minute, quietLogger())

	payload, err := repo.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(payload))

	_, _ = repo.Fetch(context.Background())
	assert.Equal(t, 2, source.calls)
}

func TestDoctorRepository_CacheAside(t *testing.T) {
	source := &stubSource{payload: []byte(`[{"name":"Dr. A"}]`)}
	cache := newMemoryCache()
	repo := NewDoctorRepository(source, cache, 5*time.Minute, quietLogger())

	first, err := repo.Fetch(context.Background())
	require.NoError(t, err)
	second, err := repo.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, 5*time.Minute, cache.ttls[doctorPayloadCacheKey])
}

func TestDoctorRepository_FailuresAreNotCached(t *testing.T) {
	source := &stubSource{err: domainRepo.ErrUpstreamStatus}
	cache := newMemoryCache()
	repo := NewDoctorRepository(source, cache, time.Minute, quietLogger())

	_, err := repo.Fetch(context.Background())
	assert.ErrorIs(t, err, domainRepo.ErrUpstreamStatus)
	assert.Empty(t, cache.data)
}

func TestDoctorRepository_CacheErrorsFallBackToSource(t *testing.T) {
	source := &stubSource{payload: []byte(`[]`)}
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	repo := NewDoctorRepository(source, cache, time.Minute, quietLogger())

	payload, err := repo.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(payload))
	assert.Equal(t, 1, source.calls)
}
