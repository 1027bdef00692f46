package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/rsvp-import/internal/domain"
	"github.com/pkordes/rsvp-import/internal/repo"
)

// ---- fakeGuestRepo ---------------------------------------------------------

// fakeGuestRepo is an in-memory repo.GuestRepo that enforces the same
// unique-hash rule as the guests_hash_key index. The optional hooks run
// before the real behaviour and can inject failures.
type fakeGuestRepo struct {
	mu     sync.Mutex
	stored []domain.GuestRecord

	existsHook func(hash string) (handled bool, exists bool, err error)
	insertHook func(g domain.GuestRecord) error

	existsCalls int
	insertCalls int
}

func (f *fakeGuestRepo) ExistsByHash(_ context.Context, hash string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.existsCalls++
	if f.existsHook != nil {
		if handled, exists, err := f.existsHook(hash); handled {
			return exists, err
		}
	}
	for _, g := range f.stored {
		if g.Hash == hash {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGuestRepo) Insert(_ context.Context, g domain.GuestRecord) (domain.GuestRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertCalls++
	if f.insertHook != nil {
		if err := f.insertHook(g); err != nil {
			return domain.GuestRecord{}, err
		}
	}
	if g.Hash != "" {
		for _, s := range f.stored {
			if s.Hash == g.Hash {
				return domain.GuestRecord{}, domain.ErrDuplicate
			}
		}
	}
	g.ID = uuid.New()
	g.CreatedAt = time.Now()
	f.stored = append(f.stored, g)
	return g, nil
}

func (f *fakeGuestRepo) List(_ context.Context, limit int) ([]domain.GuestRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.GuestRecord{}
	for i := len(f.stored) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.stored[i])
	}
	return out, nil
}

func (f *fakeGuestRepo) ListAll(_ context.Context) ([]domain.GuestRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.GuestRecord{}, f.stored...), nil
}

func (f *fakeGuestRepo) hashes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.stored))
	for i, g := range f.stored {
		out[i] = g.Hash
	}
	return out
}

var _ repo.GuestRepo = (*fakeGuestRepo)(nil)

// ---- mockGuestRepo ---------------------------------------------------------

// mockGuestRepo is a hand-written test double for repo.GuestRepo whose
// behaviour is supplied per test.
type mockGuestRepo struct {
	existsByHash func(ctx context.Context, hash string) (bool, error)
	insert       func(ctx context.Context, g domain.GuestRecord) (domain.GuestRecord, error)
	list         func(ctx context.Context, limit int) ([]domain.GuestRecord, error)
	listAll      func(ctx context.Context) ([]domain.GuestRecord, error)
}

func (m *mockGuestRepo) ExistsByHash(ctx context.Context, hash string) (bool, error) {
	return m.existsByHash(ctx, hash)
}

func (m *mockGuestRepo) Insert(ctx context.Context, g domain.GuestRecord) (domain.GuestRecord, error) {
	return m.insert(ctx, g)
}

func (m *mockGuestRepo) List(ctx context.Context, limit int) ([]domain.GuestRecord, error) {
	return m.list(ctx, limit)
}

func (m *mockGuestRepo) ListAll(ctx context.Context) ([]domain.GuestRecord, error) {
	return m.listAll(ctx)
}

var _ repo.GuestRepo = (*mockGuestRepo)(nil)

// ---- mockCheckRepo ---------------------------------------------------------

type mockCheckRepo struct {
	create func(ctx context.Context, c domain.Check) (domain.Check, error)
	list   func(ctx context.Context) ([]domain.Check, error)
}

func (m *mockCheckRepo) Create(ctx context.Context, c domain.Check) (domain.Check, error) {
	return m.create(ctx, c)
}

func (m *mockCheckRepo) List(ctx context.Context) ([]domain.Check, error) {
	return m.list(ctx)
}

var _ repo.CheckRepo = (*mockCheckRepo)(nil)

// ---- recordingObserver -----------------------------------------------------

type recordingObserver struct {
	mu   sync.Mutex
	rows map[string]int
	runs []string
}

func (o *recordingObserver) ObserveRow(outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.rows == nil {
		o.rows = map[string]int{}
	}
	o.rows[outcome]++
}

func (o *recordingObserver) ObserveRun(result string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.runs = append(o.runs, result)
}
