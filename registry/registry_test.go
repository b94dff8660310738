package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machinefabric/vidmod-go/node"
)

func echoFactory(buffers *node.Buffers, args map[string]any) (node.Node, error) {
	return &stubNode{Buffers: buffers, args: args}, nil
}

type stubNode struct {
	*node.Buffers
	args map[string]any
}

func (s *stubNode) Init() error { return nil }
func (s *stubNode) Tick() bool  { return false }
func (s *stubNode) Finish() bool { return false }

func TestInstantiateUnknownNameIsError(t *testing.T) {
	r := New()
	_, err := r.Instantiate("nope", node.NewBuffers(1), nil)
	assert.Error(t, err)
}

func TestInstantiateRunsFactory(t *testing.T) {
	r := New()
	r.Register("echo", echoFactory, "")

	n, err := r.Instantiate("echo", node.NewBuffers(1), map[string]any{"x": 1.0})
	require.NoError(t, err)

	stub, ok := n.(*stubNode)
	require.True(t, ok)
	assert.Equal(t, 1.0, stub.args["x"])
}

func TestRegisterDuplicateNamePanics(t *testing.T) {
	r := New()
	r.Register("echo", echoFactory, "")
	assert.Panics(t, func() { r.Register("echo", echoFactory, "") })
}

func TestInstantiateValidatesArgsSchema(t *testing.T) {
	r := New()
	schema := `{"type":"object","required":["count"],"properties":{"count":{"type":"number"}}}`
	r.Register("counter", echoFactory, schema)

	_, err := r.Instantiate("counter", node.NewBuffers(1), map[string]any{})
	assert.Error(t, err)

	_, err = r.Instantiate("counter", node.NewBuffers(1), map[string]any{"count": 5.0})
	assert.NoError(t, err)
}

func TestInstantiateWrapsFactoryError(t *testing.T) {
	r := New()
	r.Register("broken", func(b *node.Buffers, args map[string]any) (node.Node, error) {
		return nil, errors.New("boom")
	}, "")

	_, err := r.Instantiate("broken", node.NewBuffers(1), nil)
	assert.Error(t, err)
}

func TestGlobalIsASingleton(t *testing.T) {
	ResetGlobal()
	defer ResetGlobal()

	a := Global()
	b := Global()
	assert.Same(t, a, b)
}
