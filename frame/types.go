package frame

import "fmt"

// RGBA8 is a packed 4-byte pixel: red, green, blue, alpha, in that memory
// order with no padding.
type RGBA8 struct {
	R, G, B, A uint8
}

// Array1 is a dense 1-D array of T, the Go stand-in for the ndarray
// ArcArray1<T> the original implementation used.
type Array1[T any] struct {
	Data []T
}

// NewArray1 wraps data as a 1-D array.
func NewArray1[T any](data []T) Array1[T] {
	return Array1[T]{Data: data}
}

// Len returns the number of elements along the array's single dimension.
func (a Array1[T]) Len() int { return len(a.Data) }

// Array2 is a dense row-major 2-D array of T, the Go stand-in for the
// ndarray ArcArray2<T> the original implementation used.
type Array2[T any] struct {
	Rows, Cols int
	Data       []T // row-major, len == Rows*Cols
}

// NewArray2 wraps data as a Rows x Cols 2-D array. Panics if len(data) !=
// rows*cols, a programmer error in the caller.
func NewArray2[T any](rows, cols int, data []T) Array2[T] {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("frame: Array2 shape mismatch: %dx%d needs %d elements, got %d",
			rows, cols, rows*cols, len(data)))
	}
	return Array2[T]{Rows: rows, Cols: cols, Data: data}
}

// At returns the element at (row, col).
func (a Array2[T]) At(row, col int) T {
	return a.Data[row*a.Cols+col]
}

// FrameKind identifies the element type carried by a Frame or FrameSingle.
// The set is closed and fixed at build time — see spec.md §3.1.
type FrameKind uint8

const (
	// KindU8 is a buffer of single bytes.
	KindU8 FrameKind = iota
	// KindU8x1 is a 1-D array of bytes.
	KindU8x1
	// KindU8x2 is a 2-D array of bytes.
	KindU8x2
	// KindU16 is a buffer of single uint16s.
	KindU16
	// KindU16x1 is a 1-D array of uint16s.
	KindU16x1
	// KindU16x2 is a 2-D array of uint16s.
	KindU16x2
	// KindF32 is a buffer of single float32s.
	KindF32
	// KindF32x1 is a 1-D array of float32s.
	KindF32x1
	// KindF32x2 is a 2-D array of float32s.
	KindF32x2
	// KindRGBA8x2 is a 2-D array of packed RGBA8 pixels.
	KindRGBA8x2
)

var kindNames = [...]string{
	KindU8:      "U8",
	KindU8x1:    "U8x1",
	KindU8x2:    "U8x2",
	KindU16:     "U16",
	KindU16x1:   "U16x1",
	KindU16x2:   "U16x2",
	KindF32:     "F32",
	KindF32x1:   "F32x1",
	KindF32x2:   "F32x2",
	KindRGBA8x2: "RGBA8x2",
}

// String returns the kind's canonical textual tag, e.g. "U8x2".
func (k FrameKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("FrameKind(%d)", uint8(k))
}

// ParseFrameKind parses a textual tag as produced by String. Unknown tags
// are a fatal configuration error per spec.md §3.3, reported here as an
// error so callers at the manifest-loading boundary can wrap it with
// context before deciding whether to abort.
func ParseFrameKind(s string) (FrameKind, error) {
	for k, name := range kindNames {
		if name == s {
			return FrameKind(k), nil
		}
	}
	return 0, fmt.Errorf("frame: unknown frame kind %q", s)
}

// MarshalText implements encoding.TextMarshaler so FrameKind round-trips
// through YAML/JSON manifests and trace records as its canonical tag.
func (k FrameKind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("frame: invalid frame kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *FrameKind) UnmarshalText(text []byte) error {
	parsed, err := ParseFrameKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
