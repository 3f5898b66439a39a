package memory

import "github.com/aravind1338/eecs545-artificial-curiosity/internal/model"

// ListBasedMemory is a FIFO bounded queue: once full, the earliest-inserted
// surviving entry is evicted, so the buffer always holds the capacity most
// recent experiences. It serves as the unprioritized control replay buffer.
type ListBasedMemory struct {
	capacity int
	entries  []model.Experience
}

func NewListBasedMemory(capacity int) (*ListBasedMemory, error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	return &ListBasedMemory{
		capacity: capacity,
		entries:  make([]model.Experience, 0, capacity+1),
	}, nil
}

func (m *ListBasedMemory) Push(e model.Experience) error {
	if err := e.Validate(); err != nil {
		return err
	}
	m.entries = append(m.entries, e)
	if len(m.entries) > m.capacity {
		copy(m.entries, m.entries[1:])
		m.entries = m.entries[:m.capacity]
	}
	return nil
}

// AsList returns the contents in insertion order, oldest first.
func (m *ListBasedMemory) AsList() []model.Experience {
	return append([]model.Experience(nil), m.entries...)
}

func (m *ListBasedMemory) Size() int { return len(m.entries) }

func (m *ListBasedMemory) Capacity() int { return m.capacity }
