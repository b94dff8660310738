// Package frame implements the tagged Frame/FrameSingle data model: a
// closed set of element kinds (spec.md §3.1), each carrying a
// queue.BoundedQueue of that element type. Frame is deliberately a tagged
// variant rather than an erased/boxed buffer — the scheduler's link
// transfer dispatches on the tag and forwards to the wrapped queue,
// preserving typing end to end with no downcasts outside this package.
package frame

//go:generate go run ./internal/gen

import (
	"fmt"

	"github.com/machinefabric/vidmod-go/queue"
)

// Frame is a bounded FIFO of elements of exactly one FrameKind, passed as a
// unit across links. The kind never changes after construction.
type Frame struct {
	kind FrameKind

	u8      *queue.BoundedQueue[uint8]
	u8x1    *queue.BoundedQueue[Array1[uint8]]
	u8x2    *queue.BoundedQueue[Array2[uint8]]
	u16     *queue.BoundedQueue[uint16]
	u16x1   *queue.BoundedQueue[Array1[uint16]]
	u16x2   *queue.BoundedQueue[Array2[uint16]]
	f32     *queue.BoundedQueue[float32]
	f32x1   *queue.BoundedQueue[Array1[float32]]
	f32x2   *queue.BoundedQueue[Array2[float32]]
	rgba8x2 *queue.BoundedQueue[Array2[RGBA8]]
}

// FrameSingle holds exactly one element of a FrameKind, with no queue.
type FrameSingle struct {
	kind FrameKind

	u8      uint8
	u8x1    Array1[uint8]
	u8x2    Array2[uint8]
	u16     uint16
	u16x1   Array1[uint16]
	u16x2   Array2[uint16]
	f32     float32
	f32x1   Array1[float32]
	f32x2   Array2[float32]
	rgba8x2 Array2[RGBA8]
}

// WithCapacity creates a new empty Frame of the given kind and capacity.
func WithCapacity(kind FrameKind, capacity int) *Frame {
	f := &Frame{kind: kind}
	switch kind {
	case KindU8:
		f.u8 = queue.NewBoundedQueue[uint8](capacity)
	case KindU8x1:
		f.u8x1 = queue.NewBoundedQueue[Array1[uint8]](capacity)
	case KindU8x2:
		f.u8x2 = queue.NewBoundedQueue[Array2[uint8]](capacity)
	case KindU16:
		f.u16 = queue.NewBoundedQueue[uint16](capacity)
	case KindU16x1:
		f.u16x1 = queue.NewBoundedQueue[Array1[uint16]](capacity)
	case KindU16x2:
		f.u16x2 = queue.NewBoundedQueue[Array2[uint16]](capacity)
	case KindF32:
		f.f32 = queue.NewBoundedQueue[float32](capacity)
	case KindF32x1:
		f.f32x1 = queue.NewBoundedQueue[Array1[float32]](capacity)
	case KindF32x2:
		f.f32x2 = queue.NewBoundedQueue[Array2[float32]](capacity)
	case KindRGBA8x2:
		f.rgba8x2 = queue.NewBoundedQueue[Array2[RGBA8]](capacity)
	default:
		panic(fmt.Sprintf("frame: with_capacity: unhandled kind %v", kind))
	}
	return f
}

// Kind returns the frame's element kind. It never changes after
// construction.
func (f *Frame) Kind() FrameKind { return f.kind }

// Size returns the number of elements currently queued.
func (f *Frame) Size() int {
	switch f.kind {
	case KindU8:
		return f.u8.Len()
	case KindU8x1:
		return f.u8x1.Len()
	case KindU8x2:
		return f.u8x2.Len()
	case KindU16:
		return f.u16.Len()
	case KindU16x1:
		return f.u16x1.Len()
	case KindU16x2:
		return f.u16x2.Len()
	case KindF32:
		return f.f32.Len()
	case KindF32x1:
		return f.f32x1.Len()
	case KindF32x2:
		return f.f32x2.Len()
	case KindRGBA8x2:
		return f.rgba8x2.Len()
	default:
		panic(fmt.Sprintf("frame: size: unhandled kind %v", f.kind))
	}
}

// Capacity returns the frame's fixed maximum element count.
func (f *Frame) Capacity() int {
	switch f.kind {
	case KindU8:
		return f.u8.Capacity()
	case KindU8x1:
		return f.u8x1.Capacity()
	case KindU8x2:
		return f.u8x2.Capacity()
	case KindU16:
		return f.u16.Capacity()
	case KindU16x1:
		return f.u16x1.Capacity()
	case KindU16x2:
		return f.u16x2.Capacity()
	case KindF32:
		return f.f32.Capacity()
	case KindF32x1:
		return f.f32x1.Capacity()
	case KindF32x2:
		return f.f32x2.Capacity()
	case KindRGBA8x2:
		return f.rgba8x2.Capacity()
	default:
		panic(fmt.Sprintf("frame: capacity: unhandled kind %v", f.kind))
	}
}

func (f *Frame) requireKind(other *Frame) {
	if f.kind != other.kind {
		panic(fmt.Sprintf("frame: kind mismatch: %v vs %v", f.kind, other.kind))
	}
}

// Add appends other's contents onto f, consuming other (other is left
// empty on success, matching BoundedQueue.Append). Reports false without
// modifying either frame if there is not enough room. Panics if the kinds
// differ.
func (f *Frame) Add(other *Frame) bool {
	f.requireKind(other)
	if f.Size()+other.Size() > f.Capacity() {
		return false
	}
	switch f.kind {
	case KindU8:
		f.u8.Append(other.u8)
	case KindU8x1:
		f.u8x1.Append(other.u8x1)
	case KindU8x2:
		f.u8x2.Append(other.u8x2)
	case KindU16:
		f.u16.Append(other.u16)
	case KindU16x1:
		f.u16x1.Append(other.u16x1)
	case KindU16x2:
		f.u16x2.Append(other.u16x2)
	case KindF32:
		f.f32.Append(other.f32)
	case KindF32x1:
		f.f32x1.Append(other.f32x1)
	case KindF32x2:
		f.f32x2.Append(other.f32x2)
	case KindRGBA8x2:
		f.rgba8x2.Append(other.rgba8x2)
	default:
		panic(fmt.Sprintf("frame: add: unhandled kind %v", f.kind))
	}
	return true
}

// AddSingle appends one element if there is room. Reports false (without
// modifying f) if the frame is at capacity. Panics if s's kind differs.
func (f *Frame) AddSingle(s FrameSingle) bool {
	if f.kind != s.kind {
		panic(fmt.Sprintf("frame: kind mismatch: %v vs %v", f.kind, s.kind))
	}
	if f.Size() >= f.Capacity() {
		return false
	}
	switch f.kind {
	case KindU8:
		f.u8.PushBack(s.u8)
	case KindU8x1:
		f.u8x1.PushBack(s.u8x1)
	case KindU8x2:
		f.u8x2.PushBack(s.u8x2)
	case KindU16:
		f.u16.PushBack(s.u16)
	case KindU16x1:
		f.u16x1.PushBack(s.u16x1)
	case KindU16x2:
		f.u16x2.PushBack(s.u16x2)
	case KindF32:
		f.f32.PushBack(s.f32)
	case KindF32x1:
		f.f32x1.PushBack(s.f32x1)
	case KindF32x2:
		f.f32x2.PushBack(s.f32x2)
	case KindRGBA8x2:
		f.rgba8x2.PushBack(s.rgba8x2)
	default:
		panic(fmt.Sprintf("frame: add_single: unhandled kind %v", f.kind))
	}
	return true
}

// Peek returns a new Frame of the same kind and capacity n, containing a
// copy of the first n elements. Ordering and the source frame are
// undisturbed. Panics if n exceeds Size.
func (f *Frame) Peek(n int) *Frame {
	out := WithCapacity(f.kind, n)
	switch f.kind {
	case KindU8:
		for _, v := range f.u8.Peek(n) {
			out.u8.PushBack(v)
		}
	case KindU8x1:
		for _, v := range f.u8x1.Peek(n) {
			out.u8x1.PushBack(v)
		}
	case KindU8x2:
		for _, v := range f.u8x2.Peek(n) {
			out.u8x2.PushBack(v)
		}
	case KindU16:
		for _, v := range f.u16.Peek(n) {
			out.u16.PushBack(v)
		}
	case KindU16x1:
		for _, v := range f.u16x1.Peek(n) {
			out.u16x1.PushBack(v)
		}
	case KindU16x2:
		for _, v := range f.u16x2.Peek(n) {
			out.u16x2.PushBack(v)
		}
	case KindF32:
		for _, v := range f.f32.Peek(n) {
			out.f32.PushBack(v)
		}
	case KindF32x1:
		for _, v := range f.f32x1.Peek(n) {
			out.f32x1.PushBack(v)
		}
	case KindF32x2:
		for _, v := range f.f32x2.Peek(n) {
			out.f32x2.PushBack(v)
		}
	case KindRGBA8x2:
		for _, v := range f.rgba8x2.Peek(n) {
			out.rgba8x2.PushBack(v)
		}
	default:
		panic(fmt.Sprintf("frame: peek: unhandled kind %v", f.kind))
	}
	return out
}

// Remove drains the first n elements into a new Frame of the same kind and
// capacity n. Panics if n exceeds Size.
func (f *Frame) Remove(n int) *Frame {
	out := WithCapacity(f.kind, n)
	switch f.kind {
	case KindU8:
		for _, v := range f.u8.Drain(n) {
			out.u8.PushBack(v)
		}
	case KindU8x1:
		for _, v := range f.u8x1.Drain(n) {
			out.u8x1.PushBack(v)
		}
	case KindU8x2:
		for _, v := range f.u8x2.Drain(n) {
			out.u8x2.PushBack(v)
		}
	case KindU16:
		for _, v := range f.u16.Drain(n) {
			out.u16.PushBack(v)
		}
	case KindU16x1:
		for _, v := range f.u16x1.Drain(n) {
			out.u16x1.PushBack(v)
		}
	case KindU16x2:
		for _, v := range f.u16x2.Drain(n) {
			out.u16x2.PushBack(v)
		}
	case KindF32:
		for _, v := range f.f32.Drain(n) {
			out.f32.PushBack(v)
		}
	case KindF32x1:
		for _, v := range f.f32x1.Drain(n) {
			out.f32x1.PushBack(v)
		}
	case KindF32x2:
		for _, v := range f.f32x2.Drain(n) {
			out.f32x2.PushBack(v)
		}
	case KindRGBA8x2:
		for _, v := range f.rgba8x2.Drain(n) {
			out.rgba8x2.PushBack(v)
		}
	default:
		panic(fmt.Sprintf("frame: remove: unhandled kind %v", f.kind))
	}
	return out
}

// RemoveAll replaces f's contents with an empty Frame of the same kind and
// capacity, returning the former contents.
func (f *Frame) RemoveAll() *Frame {
	old := f.Remove(f.Size())
	return old
}

// RemoveSingle pops one element as a FrameSingle. Reports false (with a
// zero-value FrameSingle) if the frame is empty.
func (f *Frame) RemoveSingle() (FrameSingle, bool) {
	s := FrameSingle{kind: f.kind}
	switch f.kind {
	case KindU8:
		v, ok := f.u8.PopFront()
		s.u8 = v
		return s, ok
	case KindU8x1:
		v, ok := f.u8x1.PopFront()
		s.u8x1 = v
		return s, ok
	case KindU8x2:
		v, ok := f.u8x2.PopFront()
		s.u8x2 = v
		return s, ok
	case KindU16:
		v, ok := f.u16.PopFront()
		s.u16 = v
		return s, ok
	case KindU16x1:
		v, ok := f.u16x1.PopFront()
		s.u16x1 = v
		return s, ok
	case KindU16x2:
		v, ok := f.u16x2.PopFront()
		s.u16x2 = v
		return s, ok
	case KindF32:
		v, ok := f.f32.PopFront()
		s.f32 = v
		return s, ok
	case KindF32x1:
		v, ok := f.f32x1.PopFront()
		s.f32x1 = v
		return s, ok
	case KindF32x2:
		v, ok := f.f32x2.PopFront()
		s.f32x2 = v
		return s, ok
	case KindRGBA8x2:
		v, ok := f.rgba8x2.PopFront()
		s.rgba8x2 = v
		return s, ok
	default:
		panic(fmt.Sprintf("frame: remove_single: unhandled kind %v", f.kind))
	}
}

// Kind returns the single element's kind.
func (s FrameSingle) Kind() FrameKind { return s.kind }

// FromSliceU8 builds a full Frame of kind U8 from v, sized to len(v) —
// the node-author convenience used by sources that already hold a
// complete in-memory batch (e.g. a test fixture).
func FromSliceU8(v []uint8) *Frame {
	f := WithCapacity(KindU8, len(v))
	f.u8 = queue.FromSlice(v)
	return f
}

// FromSliceU16 builds a full Frame of kind U16 from v, sized to len(v).
func FromSliceU16(v []uint16) *Frame {
	f := WithCapacity(KindU16, len(v))
	f.u16 = queue.FromSlice(v)
	return f
}
