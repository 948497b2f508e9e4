package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type Memory struct {
	items *gocache.Cache
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		items: gocache.New(ttl, 2*ttl), //nolint:mnd // cleanup twice per ttl
	}
}

func (m *Memory) Get(_ context.Context, key string) (float64, error) {
	v, ok := m.items.Get(key)
	if !ok {
		return 0, ErrMiss
	}

	f, ok := v.(float64)
	if !ok {
		return 0, ErrMiss
	}

	return f, nil
}

func (m *Memory) Set(_ context.Context, key string, value float64, ttl time.Duration) error {
	m.items.Set(key, value, ttl)
	return nil
}

func (m *Memory) Len() int {
	return m.items.ItemCount()
}
