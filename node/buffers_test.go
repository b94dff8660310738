package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machinefabric/vidmod-go/frame"
)

func TestRegisterDuplicatePortPanics(t *testing.T) {
	b := NewBuffers(1)
	b.RegisterPullPort("out", frame.KindU8, 4)
	assert.Panics(t, func() { b.RegisterPullPort("out", frame.KindU8, 4) })
}

func TestGetPortUnknownNameIsError(t *testing.T) {
	b := NewBuffers(1)
	_, err := b.GetPullPort("nope")
	assert.Error(t, err)
	_, err = b.GetPushPort("nope")
	assert.Error(t, err)
}

func TestAttachValidatesKind(t *testing.T) {
	src := NewBuffers(1)
	src.RegisterPullPort("out", frame.KindU8, 4)
	sink := NewBuffers(2)
	sink.RegisterPushPort("in", frame.KindU16, 4)

	pull, err := src.GetPullPort("out")
	require.NoError(t, err)

	err = sink.AttachPushPort("in", pull)
	assert.Error(t, err)
}

func TestAttachSucceedsOnMatchingKind(t *testing.T) {
	src := NewBuffers(1)
	src.RegisterPullPort("out", frame.KindU8, 4)
	sink := NewBuffers(2)
	sink.RegisterPushPort("in", frame.KindU8, 4)

	pull, err := src.GetPullPort("out")
	require.NoError(t, err)
	push, err := sink.GetPushPort("in")
	require.NoError(t, err)

	assert.NoError(t, sink.AttachPushPort("in", pull))
	assert.NoError(t, src.AttachPullPort("out", push))
}

func TestPullFrameOverdrawPanics(t *testing.T) {
	b := NewBuffers(1)
	b.RegisterPullPort("out", frame.KindU8, 4)
	b.OutbufPut("out", frame.FromSliceU8([]uint8{1, 2}))

	port, err := b.GetPullPort("out")
	require.NoError(t, err)

	assert.Panics(t, func() { b.PullFrame(port, 10) })
}

func TestPushFrameOverflowPanics(t *testing.T) {
	b := NewBuffers(1)
	b.RegisterPushPort("in", frame.KindU8, 2)
	port, err := b.GetPushPort("in")
	require.NoError(t, err)

	assert.Panics(t, func() { b.PushFrame(port, frame.FromSliceU8([]uint8{1, 2, 3})) })
}

func TestOutbufPutPanicsWhenFull(t *testing.T) {
	b := NewBuffers(1)
	b.RegisterPullPort("out", frame.KindU8, 1)
	b.OutbufPut("out", frame.FromSliceU8([]uint8{1}))
	assert.Panics(t, func() { b.OutbufPut("out", frame.FromSliceU8([]uint8{2})) })
}

func TestInbufGetSingleOnEmptyReturnsFalse(t *testing.T) {
	b := NewBuffers(1)
	b.RegisterPushPort("in", frame.KindU8, 4)
	_, ok := b.InbufGetSingle("in")
	assert.False(t, ok)
}

func TestReadyToPushReflectsRemainingCapacity(t *testing.T) {
	b := NewBuffers(1)
	b.RegisterPushPort("in", frame.KindU8, 4)
	port, err := b.GetPushPort("in")
	require.NoError(t, err)

	assert.Equal(t, 4, b.ReadyToPush(port))
	b.PushFrame(port, frame.FromSliceU8([]uint8{1, 2}))
	assert.Equal(t, 2, b.ReadyToPush(port))
}

func TestUnregisteredPortOperationPanics(t *testing.T) {
	b := NewBuffers(1)
	assert.Panics(t, func() { b.OutbufAvail("missing") })
	assert.Panics(t, func() { b.InbufAvail("missing") })
}
