package cache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
)

// memCache mirrors RedisCache's encoding so round-trips are realistic.
type memCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return false, m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (m *memCache) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
	return nil
}

func (m *memCache) InvalidatePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	return nil
}

type item struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestRememberLoadsOnce(t *testing.T) {
	c := newMemCache()
	ctx := context.Background()
	loads := 0
	load := func() ([]item, error) {
		loads++
		return []item{{ID: 1, Name: "Joko"}}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Remember(ctx, c, PrefixBarbers+"all", load)
		if err != nil {
			t.Fatalf("Remember() error = %v", err)
		}
		if len(got) != 1 || got[0].Name != "Joko" {
			t.Fatalf("Remember() = %+v", got)
		}
	}
	if loads != 1 {
		t.Fatalf("loads = %d, want 1", loads)
	}

	Invalidate(ctx, c, PrefixBarbers)
	if _, err := Remember(ctx, c, PrefixBarbers+"all", load); err != nil {
		t.Fatalf("Remember() error = %v", err)
	}
	if loads != 2 {
		t.Fatalf("loads after invalidate = %d, want 2", loads)
	}
}

func TestRememberSurvivesCacheFailure(t *testing.T) {
	c := newMemCache()
	c.getErr = errors.New("redis down")

	got, err := Remember(context.Background(), c, "k", func() (int, error) { return 42, nil })
	if err != nil || got != 42 {
		t.Fatalf("Remember() = %d, %v", got, err)
	}
}

func TestRememberPropagatesLoadError(t *testing.T) {
	boom := errors.New("db down")
	_, err := Remember(context.Background(), Nop{}, "k", func() (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("Remember() error = %v", err)
	}
}
