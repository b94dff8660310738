package frame

// U8Single, U16Single, F32Single and friends construct a FrameSingle of
// the named kind from a bare value — the node-author convenience for
// producing one element at a time without reaching into frame's
// unexported fields.

func U8Single(v uint8) FrameSingle     { return FrameSingle{kind: KindU8, u8: v} }
func U16Single(v uint16) FrameSingle   { return FrameSingle{kind: KindU16, u16: v} }
func F32Single(v float32) FrameSingle  { return FrameSingle{kind: KindF32, f32: v} }

func U8x1Single(v Array1[uint8]) FrameSingle   { return FrameSingle{kind: KindU8x1, u8x1: v} }
func U8x2Single(v Array2[uint8]) FrameSingle   { return FrameSingle{kind: KindU8x2, u8x2: v} }
func U16x1Single(v Array1[uint16]) FrameSingle { return FrameSingle{kind: KindU16x1, u16x1: v} }
func U16x2Single(v Array2[uint16]) FrameSingle { return FrameSingle{kind: KindU16x2, u16x2: v} }
func F32x1Single(v Array1[float32]) FrameSingle { return FrameSingle{kind: KindF32x1, f32x1: v} }
func F32x2Single(v Array2[float32]) FrameSingle { return FrameSingle{kind: KindF32x2, f32x2: v} }
func RGBA8x2Single(v Array2[RGBA8]) FrameSingle { return FrameSingle{kind: KindRGBA8x2, rgba8x2: v} }
