package idgen

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"printshop_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const numberLayout = "060102"

// formatNumber renders "{PREFIX}-{YYMMDD}-{NN}"; NN cycles through 10..99.
func formatNumber(prefix string, at time.Time, n uint64) string {
	return fmt.Sprintf("%s-%s-%02d", prefix, at.UTC().Format(numberLayout), 10+(n-1)%90)
}

// UUIDAllocator issues uuid-suffixed ids and per-prefix monotonic numbers.
type UUIDAllocator struct {
	mu   sync.Mutex
	seqs map[string]*atomic.Uint64
}

var _ interfaces.IIDAllocator = (*UUIDAllocator)(nil)

func NewUUIDAllocator() *UUIDAllocator {
	return &UUIDAllocator{seqs: make(map[string]*atomic.Uint64)}
}

func (a *UUIDAllocator) NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func (a *UUIDAllocator) NextNumber(prefix string, at time.Time) string {
	return formatNumber(prefix, at, a.counter(prefix).Add(1))
}

func (a *UUIDAllocator) counter(prefix string) *atomic.Uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	c, ok := a.seqs[prefix]
	if !ok {
		c = &atomic.Uint64{}
		a.seqs[prefix] = c
	}
	return c
}

// SequenceAllocator issues fully predictable ids ("quote-0001", ...). Tests use
// it so expected ids can be written down.
type SequenceAllocator struct {
	mu   sync.Mutex
	ids  map[string]uint64
	nums map[string]uint64
}

var _ interfaces.IIDAllocator = (*SequenceAllocator)(nil)

func NewSequenceAllocator() *SequenceAllocator {
	return &SequenceAllocator{ids: make(map[string]uint64), nums: make(map[string]uint64)}
}

func (a *SequenceAllocator) NewID(prefix string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ids[prefix]++
	return fmt.Sprintf("%s-%04d", prefix, a.ids[prefix])
}

func (a *SequenceAllocator) NextNumber(prefix string, at time.Time) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nums[prefix]++
	return formatNumber(prefix, at, a.nums[prefix])
}
