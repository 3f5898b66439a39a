package memory

import (
	"container/heap"
	"sort"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
)

// PriorityBasedMemory is a bounded priority buffer: once full, the entry with
// the minimum novelty is evicted, ties going to the oldest of the tied
// entries. The surviving set is therefore always the capacity highest-novelty
// experiences seen so far.
type PriorityBasedMemory struct {
	capacity int
	seq      uint64
	entries  prioEntries
}

type prioEntry struct {
	exp model.Experience
	seq uint64
}

// prioEntries is a min-heap over (novelty, insertion sequence).
type prioEntries []prioEntry

func (h prioEntries) Len() int { return len(h) }

func (h prioEntries) Less(i, j int) bool {
	if h[i].exp.Novelty != h[j].exp.Novelty {
		return h[i].exp.Novelty < h[j].exp.Novelty
	}
	return h[i].seq < h[j].seq
}

func (h prioEntries) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *prioEntries) Push(x any) { *h = append(*h, x.(prioEntry)) }

func (h *prioEntries) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func NewPriorityBasedMemory(capacity int) (*PriorityBasedMemory, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	return &PriorityBasedMemory{
		capacity: capacity,
		entries:  make(prioEntries, 0, capacity+1),
	}, nil
}

func (m *PriorityBasedMemory) Push(e model.Experience) error {
	if err := e.Validate(); err != nil {
		return err
	}
	heap.Push(&m.entries, prioEntry{exp: e, seq: m.seq})
	m.seq++
	if m.entries.Len() > m.capacity {
		heap.Pop(&m.entries)
	}
	return nil
}

// AsList returns the contents ordered by novelty descending (ties oldest
// first), the intended consumption order for downstream training.
func (m *PriorityBasedMemory) AsList() []model.Experience {
	sorted := append(prioEntries(nil), m.entries...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].exp.Novelty != sorted[j].exp.Novelty {
			return sorted[i].exp.Novelty > sorted[j].exp.Novelty
		}
		return sorted[i].seq < sorted[j].seq
	})
	out := make([]model.Experience, 0, len(sorted))
	for _, entry := range sorted {
		out = append(out, entry.exp)
	}
	return out
}

func (m *PriorityBasedMemory) Size() int { return m.entries.Len() }

func (m *PriorityBasedMemory) Capacity() int { return m.capacity }
