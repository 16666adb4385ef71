package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Veraticus/lifedash/internal/model"
)

var baseTime = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

type recordingSaver struct {
	err   error
	saves []model.Snapshot
	mu    sync.Mutex
}

func (r *recordingSaver) Save(_ context.Context, snap model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves = append(r.saves, snap)
	return r.err
}

func (r *recordingSaver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saves)
}

func (r *recordingSaver) last() model.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves[len(r.saves)-1]
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(opts ...Option) (*Store, *recordingSaver) {
	saver := &recordingSaver{}
	base := []Option{
		WithClock(func() time.Time { return baseTime }),
		WithIDGenerator(sequentialIDs()),
		WithSaver(saver),
	}
	return New(append(base, opts...)...), saver
}

func day(n int) time.Time {
	return time.Date(2024, 3, n, 18, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }
