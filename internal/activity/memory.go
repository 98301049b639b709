package activity

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"
)

const memoryCapacity = 10000

// memoryRepository keeps visits in process when no database is configured.
// Data is lost on restart and the oldest visits are dropped past capacity.
type memoryRepository struct {
	mu     sync.RWMutex
	visits []Visit
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (m *memoryRepository) Create(_ context.Context, v *Visit) error {
	if err := v.BeforeCreate(nil); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.visits = append(m.visits, *v)
	if over := len(m.visits) - memoryCapacity; over > 0 {
		m.visits = append([]Visit(nil), m.visits[over:]...)
	}
	return nil
}

func (m *memoryRepository) Recent(_ context.Context, limit, offset int) ([]Visit, error) {
	m.mu.RLock()
	sorted := make([]Visit, len(m.visits))
	copy(sorted, m.visits)
	m.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].VisitedAt.After(sorted[j].VisitedAt.Time)
	})

	if offset >= len(sorted) {
		return []Visit{}, nil
	}
	sorted = sorted[offset:]
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (m *memoryRepository) CountByAction(_ context.Context, since time.Time) ([]ActionCount, error) {
	m.mu.RLock()
	counts := map[Action]int64{}
	for _, v := range m.visits {
		if !v.VisitedAt.Before(since) {
			counts[v.Action]++
		}
	}
	m.mu.RUnlock()

	out := make([]ActionCount, 0, len(counts))
	for a, n := range counts {
		out = append(out, ActionCount{Action: a, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Action < out[j].Action
		}
		return out[i].Count > out[j].Count
	})
	return out, nil
}

func (m *memoryRepository) TopPages(_ context.Context, since time.Time, limit int) ([]PageCount, error) {
	m.mu.RLock()
	counts := map[string]int64{}
	for _, v := range m.visits {
		if v.Action == ActionPageView && !v.VisitedAt.Before(since) {
			counts[v.PagePath]++
		}
	}
	m.mu.RUnlock()

	out := make([]PageCount, 0, len(counts))
	for p, n := range counts {
		out = append(out, PageCount{PagePath: p, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].PagePath < out[j].PagePath
		}
		return out[i].Count > out[j].Count
	})
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryRepository) Students(_ context.Context) ([]StudentRow, error) {
	type acc struct {
		row      StudentRow
		accSum   float64
		accCount int
	}

	m.mu.RLock()
	byHash := map[string]*acc{}
	for _, v := range m.visits {
		if v.NetIDHash == "" {
			continue
		}
		a, ok := byHash[v.NetIDHash]
		if !ok {
			a = &acc{row: StudentRow{NetIDHash: v.NetIDHash, NetIDCipher: v.NetIDCipher}}
			byHash[v.NetIDHash] = a
		}
		a.row.Visits++
		if v.VisitedAt.After(a.row.LastSeen.Time) {
			a.row.LastSeen = v.VisitedAt
		}
		if v.Action == ActionQuizComplete {
			a.row.QuizzesCompleted++
			if pct, ok := accuracyOf(v.Metadata); ok {
				a.accSum += pct
				a.accCount++
			}
		}
	}
	m.mu.RUnlock()

	out := make([]StudentRow, 0, len(byHash))
	for _, a := range byHash {
		if a.accCount > 0 {
			a.row.AverageAccuracy = a.accSum / float64(a.accCount)
		}
		out = append(out, a.row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastSeen.After(out[j].LastSeen.Time) })
	return out, nil
}

func accuracyOf(metadata []byte) (float64, bool) {
	if len(metadata) == 0 {
		return 0, false
	}
	var m struct {
		Accuracy *float64 `json:"accuracy"`
	}
	if err := json.Unmarshal(metadata, &m); err != nil || m.Accuracy == nil {
		return 0, false
	}
	return *m.Accuracy, true
}
