// Package ring provides a generic fixed-capacity double-ended circular buffer
// with built-in statistics tracking and optional Prometheus metrics integration.
//
// # Overview
//
// Ring[T] is a value container over a contiguous backing store of fixed
// capacity, addressed through a logical start offset and an element count.
// It supports O(1) push/pop at both ends, checked random access by logical
// index, interior insertion and range erasure, in-place rotation, and
// linearization (making logical and physical order coincide). Capacity is a
// caller-controlled ceiling: a full ring rejects insertions with an error
// instead of reallocating.
//
// # Quick Start
//
// Basic ring creation:
//
//	r, err := ring.New[int](3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = r.PushBack(1)
//	_ = r.PushBack(2)
//	_ = r.PushBack(3)
//
//	err = r.PushBack(4) // ring is full: errors.ErrBufferFull
//
//	v, _ := r.PopFront() // 1; ring now holds [2, 3]
//	_ = r.PushBack(4)    // succeeds; ring holds [2, 3, 4]
//
// With Prometheus metrics:
//
//	r, err := ring.New[*Sample](1024,
//	    ring.WithMetrics[*Sample](registry, "sample_window"),
//	)
//
// Pre-filled construction:
//
//	r, err := ring.NewFilled[byte](64, 0xff) // full ring, 64 copies of 0xff
//
// # Logical vs Physical Layout
//
// The element at logical position i lives at physical slot
// (start + i) mod capacity. Pushing at the front moves the start backward,
// popping at the front moves it forward; once the live range crosses the end
// of the backing store the ring is wrapped. Wrap-around is invisible through
// the API: indexing, equality and snapshots always follow logical order.
//
//   - IsLinear reports whether the live elements currently occupy physical
//     slots [0, Size()) in logical order. An empty ring is vacuously linear.
//   - Linearize relays the elements so they do; it is idempotent, a no-op
//     when already linear, and O(Size()) otherwise.
//   - Rotate(k) makes the element at logical position k the new logical
//     front, a cyclic left-rotation by k positions.
//   - Items returns a fresh slice snapshot of the logical sequence.
//
// # Failure Semantics
//
// Every operation either fully succeeds or has no observable effect. Errors
// are returned synchronously and classified through the ringkit errors
// package; the sentinels callers are expected to test for are:
//
//	errors.ErrInvalidCapacity  // New, SetCapacity: negative capacity
//	errors.ErrInvalidSize      // Resize: target negative or above capacity
//	errors.ErrIndexOutOfRange  // At, Set, Rotate, Insert, Erase
//	errors.ErrBufferFull       // PushBack, PushFront, Insert
//	errors.ErrBufferEmpty      // Front, Back, PopBack, PopFront
//
// A capacity of 0 is legal: the ring is permanently empty and permanently
// full, every insertion fails with ErrBufferFull and every removal with
// ErrBufferEmpty.
//
// # Ownership
//
// Storage is exclusively owned by one instance. Clone and CopyFrom deep-copy
// the live elements into fresh storage; Swap exchanges the entire state of
// two rings (storage, capacity, count, start) in O(1). SetCapacity always
// allocates a fresh typed backing store and copies element-wise; it never
// reinterprets raw memory. No operation ever leaves two rings sharing a
// backing store.
//
// # Observability Architecture
//
// The package follows the dual-tracking pattern used across RingKit:
//
// Statistics (Always On):
//   - Tracks all operations using atomic counters
//   - Zero configuration required
//   - Available via r.Stats()
//   - Provides computed metrics (rejection rate, miss rate, utilization)
//   - No external dependencies
//
// Prometheus Metrics (Optional):
//   - Enabled via WithMetrics() option
//   - Exports to Prometheus for time-series monitoring
//   - Includes a ring label for instance identification
//   - Standard metric types (Counter, Gauge)
//
// Statistics stay useful without any Prometheus infrastructure, and metrics
// readers never pay the cost of computing derived rates; the two layers
// track independently.
//
// # Concurrency Contract
//
// Rings are single-goroutine containers. No operation is safe to call
// concurrently with any mutating operation on the same instance without
// external synchronization; read-only operations may run concurrently with
// each other. Statistics use atomic counters, so observing stats from a
// monitoring goroutine is always safe. There is no blocking, cancellation
// or timeout concept: every operation completes or fails synchronously on
// the caller's goroutine.
//
// This is a deliberate departure from a locked queue: a ring used as a
// sliding window, scratch deque or bounded history lives inside one owner,
// and an internal mutex would buy nothing but contention. Callers that need
// a cross-goroutine hand-off should wrap the ring or use a channel.
//
// # Performance Characteristics
//
// Operations:
//   - PushBack/PushFront/PopBack/PopFront: O(1)
//   - At/Set/Front/Back/Size/IsFull/IsEmpty/IsLinear: O(1)
//   - Insert(pos, x): O(Size()-pos)
//   - Erase(first, last): O(Size()-last)
//   - Linearize/Rotate/Clone/CopyFrom/SetCapacity/Items: O(Size())
//   - Swap: O(1)
//
// Memory:
//   - Pre-allocated backing store of capacity elements
//   - No allocations during end operations
//   - Linearize and Rotate allocate a fresh backing store when they relay
//
// # Testing
//
// The package includes comprehensive tests:
//
//	go test ./pkg/ring
//
// Benchmarks are available to validate performance:
//
//	go test -bench=. ./pkg/ring
package ring
