// Command gen emits frame/unwrap_gen.go: one Unwrap<Kind> accessor per
// frame kind for both Frame and FrameSingle. It exists so the unwrap table
// has exactly one arm per kind, generated from a single list below, instead
// of hand-duplicated switch arms that can silently drift out of sync (the
// aliasing bug spec.md §9 calls out — e.g. U8x1 built as a U8x2 variant).
//
// Run via `go generate ./frame/...` from the module root.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"
)

type kindSpec struct {
	// Name is the FrameKind constant suffix, e.g. "U8x2".
	Name string
	// Field is the Frame/FrameSingle struct field holding this kind's data.
	Field string
	// GoType is the element type stored per queue slot / single value.
	GoType string
}

var kinds = []kindSpec{
	{"U8", "u8", "uint8"},
	{"U8x1", "u8x1", "Array1[uint8]"},
	{"U8x2", "u8x2", "Array2[uint8]"},
	{"U16", "u16", "uint16"},
	{"U16x1", "u16x1", "Array1[uint16]"},
	{"U16x2", "u16x2", "Array2[uint16]"},
	{"F32", "f32", "float32"},
	{"F32x1", "f32x1", "Array1[float32]"},
	{"F32x2", "f32x2", "Array2[float32]"},
	{"RGBA8x2", "rgba8x2", "Array2[RGBA8]"},
}

func main() {
	var b bytes.Buffer
	b.WriteString("// Code generated by frame/internal/gen; DO NOT EDIT.\n\n")
	b.WriteString("package frame\n\n")
	b.WriteString("import (\n\t\"fmt\"\n\n\t\"github.com/machinefabric/vidmod-go/queue\"\n)\n\n")

	for _, k := range kinds {
		fmt.Fprintf(&b, "// Unwrap%s returns the underlying queue, panicking if f is not kind %s.\n", k.Name, k.Name)
		fmt.Fprintf(&b, "func (f *Frame) Unwrap%s() *queue.BoundedQueue[%s] {\n", k.Name, k.GoType)
		fmt.Fprintf(&b, "\tif f.kind != Kind%s {\n", k.Name)
		fmt.Fprintf(&b, "\t\tpanic(fmt.Sprintf(\"frame: tried to unwrap %%v as %s\", f.kind))\n", k.Name)
		b.WriteString("\t}\n")
		fmt.Fprintf(&b, "\treturn f.%s\n}\n\n", k.Field)

		fmt.Fprintf(&b, "// Unwrap%s returns the single value, panicking if s is not kind %s.\n", k.Name, k.Name)
		fmt.Fprintf(&b, "func (s FrameSingle) Unwrap%s() %s {\n", k.Name, k.GoType)
		fmt.Fprintf(&b, "\tif s.kind != Kind%s {\n", k.Name)
		fmt.Fprintf(&b, "\t\tpanic(fmt.Sprintf(\"frame: tried to unwrap %%v as %s\", s.kind))\n", k.Name)
		b.WriteString("\t}\n")
		fmt.Fprintf(&b, "\treturn s.%s\n}\n\n", k.Field)
	}

	out, err := format.Source(b.Bytes())
	if err != nil {
		fmt.Fprintln(os.Stderr, "gen: format:", err)
		fmt.Fprintln(os.Stderr, strings.TrimSpace(b.String()))
		os.Exit(1)
	}
	if err := os.WriteFile("unwrap_gen.go", out, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "gen: write:", err)
		os.Exit(1)
	}
}
