package ring

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks ring operation counts.
type Statistics struct {
	// Atomic counters for thread-safe updates
	pushes         int64
	pops           int64
	peeks          int64
	rejections     int64
	misses         int64
	rotations      int64
	linearizations int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
	maxSize     int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Push records a successful insertion (either end or interior).
func (s *Statistics) Push() {
	atomic.AddInt64(&s.pushes, 1)
}

// Pop records a successful removal (either end or interior range).
func (s *Statistics) Pop() {
	atomic.AddInt64(&s.pops, 1)
}

// Peek records a non-mutating element access.
func (s *Statistics) Peek() {
	atomic.AddInt64(&s.peeks, 1)
}

// Reject records an insertion refused because the ring was full.
func (s *Statistics) Reject() {
	atomic.AddInt64(&s.rejections, 1)
}

// Miss records a removal or front/back access refused because the ring was empty.
func (s *Statistics) Miss() {
	atomic.AddInt64(&s.misses, 1)
}

// Rotate records a rotation.
func (s *Statistics) Rotate() {
	atomic.AddInt64(&s.rotations, 1)
}

// Linearize records a linearization that actually relaid storage.
func (s *Statistics) Linearize() {
	atomic.AddInt64(&s.linearizations, 1)
}

// UpdateSize updates the current ring size.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.maxSize {
		s.maxSize = size
	}
	s.mu.Unlock()
}

// Pushes returns the total number of successful insertions.
func (s *Statistics) Pushes() int64 {
	return atomic.LoadInt64(&s.pushes)
}

// Pops returns the total number of successful removals.
func (s *Statistics) Pops() int64 {
	return atomic.LoadInt64(&s.pops)
}

// Peeks returns the total number of element accesses.
func (s *Statistics) Peeks() int64 {
	return atomic.LoadInt64(&s.peeks)
}

// Rejections returns the total number of insertions refused on a full ring.
func (s *Statistics) Rejections() int64 {
	return atomic.LoadInt64(&s.rejections)
}

// Misses returns the total number of accesses refused on an empty ring.
func (s *Statistics) Misses() int64 {
	return atomic.LoadInt64(&s.misses)
}

// Rotations returns the total number of rotations.
func (s *Statistics) Rotations() int64 {
	return atomic.LoadInt64(&s.rotations)
}

// Linearizations returns the total number of storage-relaying linearizations.
func (s *Statistics) Linearizations() int64 {
	return atomic.LoadInt64(&s.linearizations)
}

// CurrentSize returns the current number of elements in the ring.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// MaxSize returns the maximum number of elements the ring has held.
func (s *Statistics) MaxSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

// RejectionRate returns the fraction of insertion attempts refused because
// the ring was full (0.0 to 1.0).
func (s *Statistics) RejectionRate() float64 {
	pushes := s.Pushes()
	rejections := s.Rejections()

	attempts := pushes + rejections
	if attempts == 0 {
		return 0.0
	}

	return float64(rejections) / float64(attempts)
}

// MissRate returns the fraction of removal and front/back attempts refused
// because the ring was empty (0.0 to 1.0).
func (s *Statistics) MissRate() float64 {
	pops := s.Pops()
	misses := s.Misses()

	attempts := pops + misses
	if attempts == 0 {
		return 0.0
	}

	return float64(misses) / float64(attempts)
}

// Utilization returns the current ring utilization as a fraction of
// capacity (0.0 to 1.0).
func (s *Statistics) Utilization(capacity int64) float64 {
	if capacity == 0 {
		return 0.0
	}

	currentSize := s.CurrentSize()
	return float64(currentSize) / float64(capacity)
}

// Uptime returns how long the ring has existed.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.pushes, 0)
	atomic.StoreInt64(&s.pops, 0)
	atomic.StoreInt64(&s.peeks, 0)
	atomic.StoreInt64(&s.rejections, 0)
	atomic.StoreInt64(&s.misses, 0)
	atomic.StoreInt64(&s.rotations, 0)
	atomic.StoreInt64(&s.linearizations, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.currentSize = 0
	s.maxSize = 0
	s.mu.Unlock()
}

// StatsSummary is a snapshot of all statistics.
type StatsSummary struct {
	Pushes         int64         `json:"pushes"`
	Pops           int64         `json:"pops"`
	Peeks          int64         `json:"peeks"`
	Rejections     int64         `json:"rejections"`
	Misses         int64         `json:"misses"`
	Rotations      int64         `json:"rotations"`
	Linearizations int64         `json:"linearizations"`
	CurrentSize    int64         `json:"current_size"`
	MaxSize        int64         `json:"max_size"`
	RejectionRate  float64       `json:"rejection_rate"`
	MissRate       float64       `json:"miss_rate"`
	Uptime         time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Pushes:         s.Pushes(),
		Pops:           s.Pops(),
		Peeks:          s.Peeks(),
		Rejections:     s.Rejections(),
		Misses:         s.Misses(),
		Rotations:      s.Rotations(),
		Linearizations: s.Linearizations(),
		CurrentSize:    s.CurrentSize(),
		MaxSize:        s.MaxSize(),
		RejectionRate:  s.RejectionRate(),
		MissRate:       s.MissRate(),
		Uptime:         s.Uptime(),
	}
}
