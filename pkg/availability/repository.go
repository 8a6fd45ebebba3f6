package availability

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	GetWeekly(ctx context.Context) ([]WeeklyAvailability, error)
	GetCustomForDate(ctx context.Context, date time.Time) ([]CustomAvailability, error)
	// GetCustomForMonth returns the exceptions of the month ordered by date.
	GetCustomForMonth(ctx context.Context, year int, month time.Month) ([]CustomAvailability, error)
}

// MemoryRepository keeps rules loaded from configuration. It is safe for concurrent use.
type MemoryRepository struct {
	mu     sync.RWMutex
	weekly []WeeklyAvailability
	custom map[uuid.UUID]CustomAvailability
}

func NewMemoryRepository(weekly []WeeklyAvailability, custom []CustomAvailability) *MemoryRepository {
	r := &MemoryRepository{
		custom: make(map[uuid.UUID]CustomAvailability, len(custom)),
	}
	for _, w := range weekly {
		r.AddWeekly(w)
	}
	for _, c := range custom {
		r.AddCustom(c)
	}
	return r
}

// AddWeekly stores a weekly rule, assigning an id when it has none.
func (r *MemoryRepository) AddWeekly(rule WeeklyAvailability) WeeklyAvailability {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rule.Id == uuid.Nil {
		rule.Id = uuid.New()
	}
	r.weekly = append(r.weekly, rule)
	return rule
}

// AddCustom stores an exception, assigning an id when it has none.
func (r *MemoryRepository) AddCustom(exception CustomAvailability) CustomAvailability {
	r.mu.Lock()
	defer r.mu.Unlock()

	if exception.Id == uuid.Nil {
		exception.Id = uuid.New()
	}
	r.custom[exception.Id] = exception
	return exception
}

func (r *MemoryRepository) GetWeekly(_ context.Context) ([]WeeklyAvailability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]WeeklyAvailability, len(r.weekly))
	copy(result, r.weekly)
	return result, nil
}

func (r *MemoryRepository) GetCustomForDate(_ context.Context, date time.Time) ([]CustomAvailability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []CustomAvailability
	for _, c := range r.custom {
		if sameDay(c.Date, date) {
			result = append(result, c)
		}
	}
	sortCustom(result)
	return result, nil
}

func (r *MemoryRepository) GetCustomForMonth(_ context.Context, year int, month time.Month) ([]CustomAvailability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]CustomAvailability, 0)
	for _, c := range r.custom {
		if c.Date.Year() == year && c.Date.Month() == month {
			result = append(result, c)
		}
	}
	sortCustom(result)
	return result, nil
}

// sortCustom orders by date, then start time; the map iteration order is random.
func sortCustom(items []CustomAvailability) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.Before(items[j].Date)
		}
		if items[i].StartTime != items[j].StartTime {
			return items[i].StartTime < items[j].StartTime
		}
		return items[i].Id.String() < items[j].Id.String()
	})
}

// Reset drops every rule (useful between tests).
func (r *MemoryRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.weekly = nil
	r.custom = make(map[uuid.UUID]CustomAvailability)
}
