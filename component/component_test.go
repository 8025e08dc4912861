package component_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vortexkit/vortex/component"
	"github.com/vortexkit/vortex/dom"
	"github.com/vortexkit/vortex/dom/fakedom"
	"github.com/vortexkit/vortex/scheduler"
	"github.com/vortexkit/vortex/vnode"
)

type counterData struct{ n int }

func counterDescriptor(sched *scheduler.Scheduler) *component.Descriptor {
	return component.NewDescriptor("div").UsingScheduler(sched).Render(func(c *component.Component) *vnode.VNode {
		n := c.Data().(counterData).n
		return vnode.Element("div").ChildrenText(itoa(n))
	})
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func TestComponentRendersOnCreateAndInvalidate(t *testing.T) {
	doc := fakedom.NewDocument()
	ticker := fakedom.NewTicker()
	sched := scheduler.New(ticker)

	d := counterDescriptor(sched)
	host := d.Create(counterData{n: 1}, nil, nil, doc)
	c := host.(*component.Component)
	c.Attach()

	el := c.Element()
	require.Equal(t, "<div>1</div>", el.InnerHTML())

	host.SetData(counterData{n: 2})
	c.Invalidate()
	require.True(t, ticker.FramePending())
	ticker.FireFrame(1)

	require.Equal(t, "<div>2</div>", el.InnerHTML())
}

func TestComponentDisposeRunsCallbackAndRecycles(t *testing.T) {
	doc := fakedom.NewDocument()
	sched := scheduler.New(fakedom.NewTicker())

	disposed := false
	d := component.NewDescriptor("div").
		UsingScheduler(sched).
		EnableComponentRecycling(4).
		Render(func(c *component.Component) *vnode.VNode { return vnode.Element("div") }).
		Disposed(func(c *component.Component) { disposed = true })

	host := d.Create(nil, nil, nil, doc)
	host.Dispose(false)
	require.True(t, disposed)

	// A recycled instance should be handed back out by the next Create.
	host2 := d.Create(nil, nil, nil, doc)
	require.NotNil(t, host2)
}

func TestComponentKeepAliveDetachesWithoutDisposing(t *testing.T) {
	doc := fakedom.NewDocument()
	sched := scheduler.New(fakedom.NewTicker())

	detached := false
	disposedCalled := false
	d := component.NewDescriptor("div").
		UsingScheduler(sched).
		Render(func(c *component.Component) *vnode.VNode { return vnode.Element("div") }).
		Detached(func(c *component.Component) { detached = true }).
		Disposed(func(c *component.Component) { disposedCalled = true })

	host := d.Create(nil, nil, nil, doc)
	c := host.(*component.Component)
	c.Attach()

	host.Dispose(true)
	require.True(t, detached)
	require.False(t, disposedCalled)
}

var _ dom.Document = (*fakedom.Document)(nil)
