package repository

import (
	"context"
	"errors"
	"time"

	domainRepo "doctor-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const doctorPayloadCacheKey = "doctors:payload"

type doctorRepository struct {
	source domainRepo.DoctorSource
	cache  domainRepo.PayloadCache
	ttl    time.Duration
	log    *logrus.Logger
}

// NewDoctorRepository wraps source with cache-aside. cache may be nil.
func NewDoctorRepository(source domainRepo.DoctorSource, cache domainRepo.PayloadCache, ttl time.Duration, log *logrus.Logger) domainRepo.DoctorSource {
	return &doctorRepository{
		source: source,
		cache:  cache,
		ttl:    ttl,
		log:    log,
	}
}

func (r *doctorRepository) Fetch(ctx context.Context) ([]byte, error) {
	if r.cache != nil {
		payload, err := r.cache.Get(ctx, doctorPayloadCacheKey)
		if err == nil {
			r.log.Debug("Doctor payload served from cache")
			return payload, nil
		}
		if !errors.Is(err, domainRepo.ErrCacheMiss) {
			r.log.Warnf("Failed to read doctor payload cache: %+v", err)
		}
	}

	payload, err := r.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, doctorPayloadCacheKey, payload, r.ttl); err != nil {
			r.log.Warnf("Failed to cache doctor payload: %+v", err)
		}
	}

	return payload, nil
}
