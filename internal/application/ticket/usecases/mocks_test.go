package usecases

import (
	"context"
	"fmt"
	"sync"

	"hilla/internal/domain/ticket"
	"hilla/internal/shared/errors"
	"hilla/internal/shared/logger"
)

// mockTicketRepository is an in-memory TicketRepository with optional
// function overrides for failure injection.
type mockTicketRepository struct {
	mu       sync.Mutex
	tickets  map[uint]*ticket.Ticket
	comments map[uint][]*ticket.Comment
	ratings  map[uint][]*ticket.Rating
	nextID   uint

	saveFn   func(ctx context.Context, t *ticket.Ticket) error
	updateFn func(ctx context.Context, t *ticket.Ticket) error
}

func newMockTicketRepository() *mockTicketRepository {
	return &mockTicketRepository{
		tickets:  make(map[uint]*ticket.Ticket),
		comments: make(map[uint][]*ticket.Comment),
		ratings:  make(map[uint][]*ticket.Rating),
	}
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, t)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	if err := t.SetID(m.nextID); err != nil {
		return err
	}
	m.tickets[t.ID()] = t
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, t)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tickets[t.ID()]; !ok {
		return errors.NewNotFoundError("ticket not found")
	}
	m.tickets[t.ID()] = t
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tickets, ticketID)
	delete(m.comments, ticketID)
	delete(m.ratings, ticketID)
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tickets[ticketID]
	if !ok {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return t, nil
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*ticket.Ticket, 0, len(m.tickets))
	for _, t := range m.tickets {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockTicketRepository) CountByCategoryID(ctx context.Context, categoryID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, t := range m.tickets {
		if t.Category().ID() == categoryID {
			count++
		}
	}
	return count, nil
}

func (m *mockTicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	if err := c.SetID(m.nextID); err != nil {
		return err
	}
	m.comments[c.TicketID()] = append(m.comments[c.TicketID()], c)
	return nil
}

func (m *mockTicketRepository) CommentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.comments[ticketID], nil
}

func (m *mockTicketRepository) SaveRating(ctx context.Context, r *ticket.Rating) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	if err := r.SetID(m.nextID); err != nil {
		return err
	}
	m.ratings[r.TicketID()] = append(m.ratings[r.TicketID()], r)
	return nil
}

func (m *mockTicketRepository) RatingsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Rating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Newest first, matching the repository ordering contract.
	rs := m.ratings[ticketID]
	out := make([]*ticket.Rating, len(rs))
	for i := range rs {
		out[i] = rs[len(rs)-1-i]
	}
	return out, nil
}

func (m *mockTicketRepository) ListRatings(ctx context.Context) ([]*ticket.Rating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*ticket.Rating
	for _, rs := range m.ratings {
		out = append(out, rs...)
	}
	return out, nil
}

func (m *mockTicketRepository) AverageRatings(ctx context.Context) (map[uint]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[uint]float64)
	for id, rs := range m.ratings {
		if len(rs) == 0 {
			continue
		}
		var sum int
		for _, r := range rs {
			sum += r.Score()
		}
		out[id] = float64(sum) / float64(len(rs))
	}
	return out, nil
}

// mockCategoryRepository stores categories keyed by slug and reports a
// duplicate error on slug collisions, mirroring the unique index.
type mockCategoryRepository struct {
	mu     sync.Mutex
	bySlug map[string]*ticket.Category
	nextID uint

	saveFn func(ctx context.Context, c *ticket.Category) error
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{bySlug: make(map[string]*ticket.Category)}
}

func (m *mockCategoryRepository) Save(ctx context.Context, c *ticket.Category) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, c)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bySlug[c.Slug()]; ok {
		return fmt.Errorf("UNIQUE constraint failed: ticket_categories.slug")
	}
	m.nextID++
	if c.ID() == 0 {
		if err := c.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.bySlug[c.Slug()] = c
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, categoryID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for slug, c := range m.bySlug {
		if c.ID() == categoryID {
			delete(m.bySlug, slug)
			return nil
		}
	}
	return errors.NewNotFoundError("category not found")
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, categoryID uint) (*ticket.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.bySlug {
		if c.ID() == categoryID {
			return c, nil
		}
	}
	return nil, errors.NewNotFoundError("category not found")
}

func (m *mockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*ticket.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.bySlug[slug]
	if !ok {
		return nil, errors.NewNotFoundError("category not found")
	}
	return c, nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*ticket.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*ticket.Category, 0, len(m.bySlug))
	for _, c := range m.bySlug {
		out = append(out, c)
	}
	return out, nil
}

// mockNotifier records answer notifications.
type mockNotifier struct {
	mu    sync.Mutex
	sent  []string
	errFn func() error
}

func (m *mockNotifier) NotifyAnswerPosted(ctx context.Context, email, subject, answer string) error {
	if m.errFn != nil {
		if err := m.errFn(); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, email)
	return nil
}

func (m *mockNotifier) sentTo() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent...)
}

// mockRenderer is a trivial MarkdownRenderer.
type mockRenderer struct{}

func (mockRenderer) ToHTMLSanitized(markdown string) (string, error) {
	return "<p>" + markdown + "</p>", nil
}

// mockSnapshotRunner runs the callback directly; the mocks have no
// real transactions.
type mockSnapshotRunner struct{}

func (mockSnapshotRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// mockStatsCache is an in-memory StatsCache.
type mockStatsCache struct {
	mu    sync.Mutex
	stats *ticket.DashboardStats
	gets  int
	sets  int
}

func (m *mockStatsCache) Get(ctx context.Context) (*ticket.DashboardStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	return m.stats, nil
}

func (m *mockStatsCache) Set(ctx context.Context, stats *ticket.DashboardStats) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	m.stats = stats
	return nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
