package store

import (
	"context"
	"sort"
	"sync"
)

// Memory is a Persistence held entirely in memory. Writes are announced to
// active watchers.
type Memory struct {
	mu       sync.Mutex
	data     map[string][]byte
	watchers map[chan Event]struct{}

	// FailWrites makes every Write return the error, for exercising failure
	// paths.
	FailWrites error
}

var _ Persistence = (*Memory)(nil)

// NewMemory returns an empty in-memory Persistence seeded with the given
// key/value pairs.
func NewMemory(seed map[string][]byte) *Memory {
	m := &Memory{
		data:     make(map[string][]byte, len(seed)),
		watchers: make(map[chan Event]struct{}),
	}
	for k, v := range seed {
		m.data[k] = append([]byte(nil), v...)
	}
	return m
}

func (m *Memory) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Write(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	_, existed := m.data[key]
	m.data[key] = append([]byte(nil), data...)
	if !existed {
		m.notify(Event{Type: EventCollectionsInvalidated})
	}
	m.notify(Event{Type: EventCollectionChanged, Collection: key})
	return nil
}

func (m *Memory) Erase(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; !ok {
		return nil
	}
	delete(m.data, key)
	m.notify(Event{Type: EventCollectionsInvalidated})
	return nil
}

func (m *Memory) Keys(_ context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 64)
	m.mu.Lock()
	m.watchers[ch] = struct{}{}
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.watchers, ch)
		close(ch)
		m.mu.Unlock()
	}()
	return ch, nil
}

// notify must be called with mu held.
func (m *Memory) notify(ev Event) {
	for ch := range m.watchers {
		select {
		case ch <- ev:
		default:
		}
	}
}
