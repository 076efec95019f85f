package ring

import (
	"fmt"

	"github.com/c360/ringkit/errors"
)

// Ring is a fixed-capacity, double-ended circular buffer over a contiguous
// backing store. Elements are addressed by logical index: the element at
// logical position i lives at physical slot (start+i) mod capacity.
//
// A Ring never grows on its own; capacity is a caller-controlled ceiling and
// exceeding it is a reportable error, not a reallocation trigger.
//
// Rings are single-goroutine containers: no operation may be called
// concurrently with a mutating operation on the same instance without
// external synchronization. Statistics use atomic counters, so reading
// stats from another goroutine is safe.
type Ring[T any] struct {
	items    []T // backing store, len == capacity; exclusively owned
	capacity int
	count    int
	start    int // physical slot of logical index 0; always 0 when empty
	stats    *Statistics
	metrics  *ringMetrics
	opts     *ringOptions[T]
}

// New creates a ring with the given capacity and no elements.
// A capacity of 0 is legal and denotes a permanently-empty, permanently-full
// ring. Returns ErrInvalidCapacity when capacity is negative.
// Stats are ALWAYS collected; Prometheus metrics are optional via WithMetrics().
func New[T any](capacity int, options ...Option[T]) (*Ring[T], error) {
	if capacity < 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity, "Ring", "New",
			fmt.Sprintf("validate capacity %d", capacity))
	}

	opts := applyOptions(options...)

	// Stats are ALWAYS initialized - observability is not optional
	stats := NewStatistics()

	var metrics *ringMetrics
	if opts.metricsReg != nil && opts.metricsName != "" {
		var err error
		metrics, err = newRingMetrics(opts.metricsReg, opts.metricsName)
		if err != nil {
			return nil, errors.WrapTransient(err, "Ring", "New", "metrics registration")
		}
	}

	return &Ring[T]{
		items:    make([]T, capacity),
		capacity: capacity,
		stats:    stats,
		metrics:  metrics,
		opts:     opts,
	}, nil
}

// NewFilled creates a ring with every slot holding a copy of seed, so the
// ring starts full (count == capacity). Returns ErrInvalidCapacity when
// capacity is negative.
func NewFilled[T any](capacity int, seed T, options ...Option[T]) (*Ring[T], error) {
	r, err := New(capacity, options...)
	if err != nil {
		return nil, err
	}

	for i := range r.items {
		r.items[i] = seed
	}
	r.count = capacity

	r.stats.UpdateSize(int64(r.count))
	if r.metrics != nil {
		r.metrics.updateSize(r.count, r.capacity)
	}

	return r, nil
}

// slot maps a logical index to its physical slot. Callers must guarantee
// 0 <= i and count > 0 (which implies capacity > 0); every exported entry
// point bounds-checks before reaching here.
func (r *Ring[T]) slot(i int) int {
	return (r.start + i) % r.capacity
}

// At returns the element at logical position i.
// Returns ErrIndexOutOfRange when i is outside [0, Size()).
func (r *Ring[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= r.count {
		return zero, errors.WrapInvalid(errors.ErrIndexOutOfRange, "Ring", "At",
			fmt.Sprintf("access index %d with size %d", i, r.count))
	}

	r.stats.Peek()
	if r.metrics != nil {
		r.metrics.recordPeek()
	}

	return r.items[r.slot(i)], nil
}

// Set replaces the element at logical position i.
// Returns ErrIndexOutOfRange when i is outside [0, Size()).
func (r *Ring[T]) Set(i int, item T) error {
	if i < 0 || i >= r.count {
		return errors.WrapInvalid(errors.ErrIndexOutOfRange, "Ring", "Set",
			fmt.Sprintf("assign index %d with size %d", i, r.count))
	}

	r.items[r.slot(i)] = item
	return nil
}

// Front returns the first live element.
// Returns ErrBufferEmpty when the ring is empty.
func (r *Ring[T]) Front() (T, error) {
	var zero T
	if r.count == 0 {
		r.stats.Miss()
		if r.metrics != nil {
			r.metrics.recordMiss()
		}
		return zero, errors.WrapInvalid(errors.ErrBufferEmpty, "Ring", "Front", "access first element")
	}

	r.stats.Peek()
	if r.metrics != nil {
		r.metrics.recordPeek()
	}

	return r.items[r.start], nil
}

// Back returns the last live element.
// Returns ErrBufferEmpty when the ring is empty.
func (r *Ring[T]) Back() (T, error) {
	var zero T
	if r.count == 0 {
		r.stats.Miss()
		if r.metrics != nil {
			r.metrics.recordMiss()
		}
		return zero, errors.WrapInvalid(errors.ErrBufferEmpty, "Ring", "Back", "access last element")
	}

	r.stats.Peek()
	if r.metrics != nil {
		r.metrics.recordPeek()
	}

	return r.items[r.slot(r.count-1)], nil
}

// Size returns the current number of elements.
func (r *Ring[T]) Size() int {
	return r.count
}

// Capacity returns the maximum number of elements the ring can hold.
func (r *Ring[T]) Capacity() int {
	return r.capacity
}

// Available returns the number of free slots (capacity minus size).
func (r *Ring[T]) Available() int {
	return r.capacity - r.count
}

// IsEmpty returns true if the ring contains no elements.
func (r *Ring[T]) IsEmpty() bool {
	return r.count == 0
}

// IsFull returns true if the ring is at capacity.
func (r *Ring[T]) IsFull() bool {
	return r.count == r.capacity
}

// IsLinear returns true when the live elements occupy physical slots
// [0, Size()) in logical order, i.e. no wrap-around is in effect.
// An empty ring is vacuously linear.
func (r *Ring[T]) IsLinear() bool {
	return r.count == 0 || r.start == 0
}

// Linearize relays the live elements into physical slots [0, Size()) in
// logical order. A no-op when already linear, O(Size()) otherwise.
// Idempotent.
func (r *Ring[T]) Linearize() {
	if r.IsLinear() {
		return
	}

	fresh := make([]T, r.capacity)
	for i := 0; i < r.count; i++ {
		fresh[i] = r.items[r.slot(i)]
	}
	r.items = fresh
	r.start = 0

	r.stats.Linearize()
}

// Rotate performs a cyclic left-rotation: the element currently at logical
// position newStart becomes logical position 0. Elements are relaid into
// fresh storage, O(Size()). A no-op when newStart is 0.
// Returns ErrIndexOutOfRange when newStart is outside [0, Size()).
func (r *Ring[T]) Rotate(newStart int) error {
	if newStart < 0 || newStart >= r.count {
		return errors.WrapInvalid(errors.ErrIndexOutOfRange, "Ring", "Rotate",
			fmt.Sprintf("rotate to index %d with size %d", newStart, r.count))
	}

	if newStart == 0 {
		return nil
	}

	fresh := make([]T, r.capacity)
	for i := 0; i < r.count; i++ {
		fresh[i] = r.items[r.slot((newStart+i)%r.count)]
	}
	r.items = fresh
	r.start = 0

	r.stats.Rotate()
	return nil
}

// Items returns the logical sequence as a fresh slice snapshot.
// The snapshot does not alias ring storage.
func (r *Ring[T]) Items() []T {
	out := make([]T, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = r.items[r.slot(i)]
	}
	return out
}

// SetCapacity changes the capacity, preserving elements in logical order in
// a freshly allocated backing store. When the new capacity is smaller than
// the current size, the ring truncates from the back and discards the excess
// tail elements. Returns ErrInvalidCapacity when newCapacity is negative.
func (r *Ring[T]) SetCapacity(newCapacity int) error {
	if newCapacity < 0 {
		return errors.WrapInvalid(errors.ErrInvalidCapacity, "Ring", "SetCapacity",
			fmt.Sprintf("validate capacity %d", newCapacity))
	}

	keep := r.count
	if keep > newCapacity {
		keep = newCapacity
	}

	fresh := make([]T, newCapacity)
	for i := 0; i < keep; i++ {
		fresh[i] = r.items[r.slot(i)]
	}

	r.items = fresh
	r.capacity = newCapacity
	r.count = keep
	r.start = 0

	r.stats.UpdateSize(int64(r.count))
	if r.metrics != nil {
		r.metrics.updateSize(r.count, r.capacity)
	}

	return nil
}

// Resize grows or shrinks the element count toward newSize without changing
// capacity. Growing appends copies of fill at the back; shrinking removes
// from the back. Returns ErrInvalidSize when newSize is negative or exceeds
// capacity.
func (r *Ring[T]) Resize(newSize int, fill T) error {
	if newSize < 0 || newSize > r.capacity {
		return errors.WrapInvalid(errors.ErrInvalidSize, "Ring", "Resize",
			fmt.Sprintf("resize to %d with capacity %d", newSize, r.capacity))
	}

	if newSize > r.count {
		for i := r.count; i < newSize; i++ {
			r.items[r.slot(i)] = fill
		}
		r.count = newSize
	} else if newSize < r.count {
		var zero T
		for i := newSize; i < r.count; i++ {
			r.items[r.slot(i)] = zero // Clear for GC
		}
		r.count = newSize
		if r.count == 0 {
			r.start = 0
		}
	}

	r.stats.UpdateSize(int64(r.count))
	if r.metrics != nil {
		r.metrics.updateSize(r.count, r.capacity)
	}

	return nil
}

// Swap exchanges the entire contents of two rings in O(1): storage,
// capacity, count and start all move together. Statistics and metrics stay
// with their instance; observability identity follows the handle, not the
// elements.
func (r *Ring[T]) Swap(other *Ring[T]) {
	if r == other {
		return
	}

	r.items, other.items = other.items, r.items
	r.capacity, other.capacity = other.capacity, r.capacity
	r.count, other.count = other.count, r.count
	r.start, other.start = other.start, r.start

	r.stats.UpdateSize(int64(r.count))
	other.stats.UpdateSize(int64(other.count))
	if r.metrics != nil {
		r.metrics.updateSize(r.count, r.capacity)
	}
	if other.metrics != nil {
		other.metrics.updateSize(other.count, other.capacity)
	}
}

// Clone returns a deep copy of the ring. Live elements are relaid starting
// at physical slot 0, so clones are always linear. The clone gets fresh
// statistics and is not registered for metrics.
func (r *Ring[T]) Clone() *Ring[T] {
	fresh := make([]T, r.capacity)
	for i := 0; i < r.count; i++ {
		fresh[i] = r.items[r.slot(i)]
	}

	stats := NewStatistics()
	stats.UpdateSize(int64(r.count))

	return &Ring[T]{
		items:    fresh,
		capacity: r.capacity,
		count:    r.count,
		start:    0,
		stats:    stats,
		opts:     r.opts,
	}
}

// CopyFrom replaces this ring's capacity, size and elements with deep copies
// from other, relaid starting at physical slot 0. Copying a ring onto
// itself is a no-op. The destination keeps its own statistics and metrics.
func (r *Ring[T]) CopyFrom(other *Ring[T]) {
	if r == other {
		return
	}

	fresh := make([]T, other.capacity)
	for i := 0; i < other.count; i++ {
		fresh[i] = other.items[other.slot(i)]
	}

	r.items = fresh
	r.capacity = other.capacity
	r.count = other.count
	r.start = 0

	r.stats.UpdateSize(int64(r.count))
	if r.metrics != nil {
		r.metrics.updateSize(r.count, r.capacity)
	}
}

// PushBack appends an element at the logical end.
// Returns ErrBufferFull when the ring is at capacity.
func (r *Ring[T]) PushBack(item T) error {
	if r.count == r.capacity {
		r.stats.Reject()
		if r.metrics != nil {
			r.metrics.recordRejection()
		}
		return errors.WrapInvalid(errors.ErrBufferFull, "Ring", "PushBack", "append element")
	}

	r.items[r.slot(r.count)] = item
	r.count++

	r.stats.Push()
	r.stats.UpdateSize(int64(r.count))
	if r.metrics != nil {
		r.metrics.recordPush(r.count, r.capacity)
	}

	return nil
}

// PushFront prepends an element at the logical start.
// Returns ErrBufferFull when the ring is at capacity.
func (r *Ring[T]) PushFront(item T) error {
	if r.count == r.capacity {
		r.stats.Reject()
		if r.metrics != nil {
			r.metrics.recordRejection()
		}
		return errors.WrapInvalid(errors.ErrBufferFull, "Ring", "PushFront", "prepend element")
	}

	r.start = (r.start - 1 + r.capacity) % r.capacity
	r.items[r.start] = item
	r.count++

	r.stats.Push()
	r.stats.UpdateSize(int64(r.count))
	if r.metrics != nil {
		r.metrics.recordPush(r.count, r.capacity)
	}

	return nil
}

// PopBack removes and returns the element at the logical end.
// Returns ErrBufferEmpty when the ring is empty.
func (r *Ring[T]) PopBack() (T, error) {
	var zero T
	if r.count == 0 {
		r.stats.Miss()
		if r.metrics != nil {
			r.metrics.recordMiss()
		}
		return zero, errors.WrapInvalid(errors.ErrBufferEmpty, "Ring", "PopBack", "remove last element")
	}

	idx := r.slot(r.count - 1)
	item := r.items[idx]
	r.items[idx] = zero // Clear for GC
	r.count--
	if r.count == 0 {
		r.start = 0
	}

	r.stats.Pop()
	r.stats.UpdateSize(int64(r.count))
	if r.metrics != nil {
		r.metrics.recordPop(r.count, r.capacity)
	}

	return item, nil
}

// PopFront removes and returns the element at the logical start.
// Returns ErrBufferEmpty when the ring is empty.
func (r *Ring[T]) PopFront() (T, error) {
	var zero T
	if r.count == 0 {
		r.stats.Miss()
		if r.metrics != nil {
			r.metrics.recordMiss()
		}
		return zero, errors.WrapInvalid(errors.ErrBufferEmpty, "Ring", "PopFront", "remove first element")
	}

	item := r.items[r.start]
	r.items[r.start] = zero // Clear for GC
	r.start = (r.start + 1) % r.capacity
	r.count--
	if r.count == 0 {
		r.start = 0
	}

	r.stats.Pop()
	r.stats.UpdateSize(int64(r.count))
	if r.metrics != nil {
		r.metrics.recordPop(r.count, r.capacity)
	}

	return item, nil
}

// Insert places item at logical position pos, shifting elements at
// [pos, Size()) one position toward the back. O(Size()-pos).
// Returns ErrIndexOutOfRange when pos is outside [0, Size()], or
// ErrBufferFull when the ring is at capacity. Either failure leaves the
// ring unchanged.
func (r *Ring[T]) Insert(pos int, item T) error {
	if pos < 0 || pos > r.count {
		return errors.WrapInvalid(errors.ErrIndexOutOfRange, "Ring", "Insert",
			fmt.Sprintf("insert at index %d with size %d", pos, r.count))
	}

	if r.count == r.capacity {
		r.stats.Reject()
		if r.metrics != nil {
			r.metrics.recordRejection()
		}
		return errors.WrapInvalid(errors.ErrBufferFull, "Ring", "Insert", "insert element")
	}

	for i := r.count - 1; i >= pos; i-- {
		r.items[r.slot(i+1)] = r.items[r.slot(i)]
	}
	r.items[r.slot(pos)] = item
	r.count++

	r.stats.Push()
	r.stats.UpdateSize(int64(r.count))
	if r.metrics != nil {
		r.metrics.recordPush(r.count, r.capacity)
	}

	return nil
}

// Erase removes the inclusive logical range [first, last], shifting
// subsequent elements forward to close the gap. O(Size()-last).
// Returns ErrIndexOutOfRange when first < 0, last >= Size() or
// first > last; the ring is left unchanged on failure.
func (r *Ring[T]) Erase(first, last int) error {
	if first < 0 || last >= r.count || first > last {
		return errors.WrapInvalid(errors.ErrIndexOutOfRange, "Ring", "Erase",
			fmt.Sprintf("erase range [%d, %d] with size %d", first, last, r.count))
	}

	removed := last - first + 1
	for i := last + 1; i < r.count; i++ {
		r.items[r.slot(i-removed)] = r.items[r.slot(i)]
	}

	var zero T
	for i := r.count - removed; i < r.count; i++ {
		r.items[r.slot(i)] = zero // Clear for GC
	}

	r.count -= removed
	if r.count == 0 {
		r.start = 0
	}

	r.stats.Pop()
	r.stats.UpdateSize(int64(r.count))
	if r.metrics != nil {
		r.metrics.recordPop(r.count, r.capacity)
	}

	return nil
}

// Clear removes all elements. Capacity and storage are retained so the ring
// can be reused without reallocation.
func (r *Ring[T]) Clear() {
	var zero T
	for i := range r.items {
		r.items[i] = zero
	}
	r.count = 0
	r.start = 0

	r.stats.UpdateSize(0)
	if r.metrics != nil {
		r.metrics.updateSize(0, r.capacity)
	}
}

// EqualFunc reports whether two rings hold the same logical sequence under
// eq. Capacity and physical layout are not part of equality: a linearized
// and a wrapped ring holding the same sequence compare equal.
func (r *Ring[T]) EqualFunc(other *Ring[T], eq func(a, b T) bool) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	if r.count != other.count {
		return false
	}

	for i := 0; i < r.count; i++ {
		if !eq(r.items[r.slot(i)], other.items[other.slot(i)]) {
			return false
		}
	}
	return true
}

// Equal reports whether two rings hold the same logical sequence, compared
// with ==. Two nil rings are equal; a nil and a non-nil ring are not.
func Equal[T comparable](a, b *Ring[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// Stats returns ring statistics (always available for observability).
func (r *Ring[T]) Stats() *Statistics {
	return r.stats
}
