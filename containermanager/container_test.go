package containermanager_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vortexkit/vortex/containermanager"
	"github.com/vortexkit/vortex/dom/fakedom"
	"github.com/vortexkit/vortex/vnode"
)

func TestEnterTransitionFadesInAcrossFrames(t *testing.T) {
	doc := fakedom.NewDocument()
	ticker := fakedom.NewTicker()
	parent := doc.CreateElement("ul")

	cm := containermanager.New(parent, doc, ticker).
		WithEnter(containermanager.NewTransition(100 * time.Millisecond).FadeIn())

	root := vnode.Element("ul").WithManagedContainer(cm).Children(
		vnode.Element("li").ChildrenText("a"),
	)
	vnode.Create(root, nil, doc)

	require.True(t, ticker.FramePending())
	require.Contains(t, parent.InnerHTML(), "opacity: 0.000000")

	ticker.FireFrame(0)
	require.Contains(t, parent.InnerHTML(), "opacity: 0.000000")

	ticker.FireFrame(50)
	require.Contains(t, parent.InnerHTML(), "opacity: 0.500000")

	ticker.FireFrame(100)
	require.Contains(t, parent.InnerHTML(), "opacity: 1.000000")
	require.False(t, ticker.FramePending())
}

func TestLeaveTransitionDelaysRemoval(t *testing.T) {
	doc := fakedom.NewDocument()
	ticker := fakedom.NewTicker()
	parent := doc.CreateElement("ul")

	cm := containermanager.New(parent, doc, ticker).
		WithLeave(containermanager.NewTransition(100 * time.Millisecond).FadeOut())

	li := vnode.Element("li").ChildrenText("a")
	node := cm.CreateChild(li, nil)
	cm.InsertChild(node, nil)
	require.Equal(t, "<li>a</li>", parent.InnerHTML())

	cm.RemoveChild(node)
	require.Equal(t, "<li>a</li>", parent.InnerHTML(), "child stays mounted while the leave transition plays")
	require.True(t, ticker.FramePending())

	ticker.FireFrame(0)
	require.Contains(t, parent.InnerHTML(), "opacity: 1.000000")

	ticker.FireFrame(100)
	require.Equal(t, "", parent.InnerHTML(), "leave transition reaching full progress removes the child")
}

func TestNoTransitionConfiguredActsImmediately(t *testing.T) {
	doc := fakedom.NewDocument()
	ticker := fakedom.NewTicker()
	parent := doc.CreateElement("ul")
	cm := containermanager.New(parent, doc, ticker)

	li := vnode.Element("li").ChildrenText("a")
	node := cm.CreateChild(li, nil)
	cm.InsertChild(node, nil)
	require.Equal(t, "<li>a</li>", parent.InnerHTML())

	cm.RemoveChild(node)
	require.Equal(t, "", parent.InnerHTML())
	require.False(t, ticker.FramePending())
}
