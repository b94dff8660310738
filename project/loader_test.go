package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machinefabric/vidmod-go/frame"
	"github.com/machinefabric/vidmod-go/node"
	"github.com/machinefabric/vidmod-go/registry"
)

// countingSource/collectingSink mirror graph's test fixtures, registered
// through a registry so Load can instantiate them by plugin name.

type countingSource struct {
	*node.Buffers
	n, next, outCap int
}

func (s *countingSource) Init() error {
	s.RegisterPullPort("out", frame.KindU16, s.outCap)
	return nil
}

func (s *countingSource) Tick() bool {
	if s.next >= s.n || s.OutbufAvail("out") >= s.outCap {
		return false
	}
	s.OutbufPutSingle("out", frame.U16Single(uint16(s.next)))
	s.next++
	return true
}

func (s *countingSource) Finish() bool { return true }

type collectingSink struct {
	*node.Buffers
	inCap int
	got   []uint16
}

func (s *collectingSink) Init() error {
	s.RegisterPushPort("in", frame.KindU16, s.inCap)
	return nil
}

func (s *collectingSink) Tick() bool {
	v, ok := s.InbufGetSingle("in")
	if !ok {
		return false
	}
	s.got = append(s.got, v.UnwrapU16())
	return true
}

func (s *collectingSink) Finish() bool { return true }

var lastSink *collectingSink

func testRegistry() *registry.Registry {
	reg := registry.New()
	reg.Register("test::CountingSource", func(b *node.Buffers, args map[string]any) (node.Node, error) {
		return &countingSource{Buffers: b, n: 4, outCap: 4}, nil
	}, "")
	reg.Register("test::CollectingSink", func(b *node.Buffers, args map[string]any) (node.Node, error) {
		sink := &collectingSink{Buffers: b, inCap: 4}
		lastSink = sink
		return sink, nil
	}, "")
	return reg
}

func writeManifest(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifestFileName), []byte(body), 0o644))
}

const validManifest = `
nodes:
  src:
    name: test::CountingSource
  sink:
    name: test::CollectingSink
links:
  - from: [src, out]
    to: [sink, in]
`

func TestLoadAndRunDeliversAllElements(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, validManifest)

	p, err := Load(dir, testRegistry())
	require.NoError(t, err)

	require.NoError(t, p.Run())
	assert.Equal(t, []uint16{0, 1, 2, 3}, lastSink.got)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, validManifest+"\nbogus_field: true\n")

	_, err := Load(dir, testRegistry())
	assert.Error(t, err)
}

func TestLoadRejectsUnknownPlugin(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
nodes:
  src:
    name: test::NoSuchPlugin
links: []
`)

	_, err := Load(dir, testRegistry())
	assert.Error(t, err)
}

func TestLoadRejectsLinkToUnknownNode(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
nodes:
  src:
    name: test::CountingSource
links:
  - from: [src, out]
    to: [nosuch, in]
`)

	_, err := Load(dir, testRegistry())
	assert.Error(t, err)
}

func TestLoadInjectsVidmodPath(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
nodes:
  src:
    name: test::PathEcho
links: []
`)

	var seenPath string
	reg := registry.New()
	reg.Register("test::PathEcho", func(b *node.Buffers, args map[string]any) (node.Node, error) {
		seenPath, _ = args["vidmod.path"].(string)
		return &countingSource{Buffers: b, n: 0, outCap: 1}, nil
	}, "")

	_, err := Load(dir, reg)
	require.NoError(t, err)
	assert.Equal(t, dir, seenPath)
}

func TestRunRespectsTickBudget(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, validManifest)

	p, err := Load(dir, testRegistry(), WithTickBudget(1))
	require.NoError(t, err)
	require.NoError(t, p.Run())

	assert.Less(t, len(lastSink.got), 4)
}

func TestRunWritesTraceFile(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, validManifest)
	tracePath := filepath.Join(dir, "trace.cbor")

	p, err := Load(dir, testRegistry(), WithTrace(tracePath))
	require.NoError(t, err)
	require.NoError(t, p.Run())

	info, err := os.Stat(tracePath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
