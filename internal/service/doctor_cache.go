package service

import (
	"context"
	"encoding/json"
	"time"

	"hms-backend/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	doctorListKey = "doctors:list"

	// Cache failures must never fail the request, so operations get a
	// short deadline of their own.
	cacheTimeout = 2 * time.Second
)

// DoctorListCache caches the composed public doctor listing.
// Mutations of the aggregate invalidate the whole list.
type DoctorListCache interface {
	Get(ctx context.Context) ([]dto.DoctorResponse, bool)
	Set(ctx context.Context, doctors []dto.DoctorResponse)
	Invalidate(ctx context.Context)
}

type redisDoctorListCache struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewDoctorListCache(client *redis.Client, log *logrus.Logger, ttl time.Duration) DoctorListCache {
	return &redisDoctorListCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (c *redisDoctorListCache) Get(ctx context.Context) ([]dto.DoctorResponse, bool) {
	ctx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	payload, err := c.client.Get(ctx, doctorListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read doctor list cache: %+v", err)
		}
		return nil, false
	}

	var doctors []dto.DoctorResponse
	if err := json.Unmarshal(payload, &doctors); err != nil {
		c.log.Warnf("Failed to decode doctor list cache: %+v", err)
		return nil, false
	}
	return doctors, true
}

func (c *redisDoctorListCache) Set(ctx context.Context, doctors []dto.DoctorResponse) {
	ctx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	payload, err := json.Marshal(doctors)
	if err != nil {
		c.log.Warnf("Failed to encode doctor list cache: %+v", err)
		return
	}

	if err := c.client.Set(ctx, doctorListKey, payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write doctor list cache: %+v", err)
	}
}

func (c *redisDoctorListCache) Invalidate(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	if err := c.client.Del(ctx, doctorListKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate doctor list cache: %+v", err)
	}
}
