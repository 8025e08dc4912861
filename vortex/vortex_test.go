package vortex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vortexkit/vortex/dom/fakedom"
	"github.com/vortexkit/vortex/vnode"
	"github.com/vortexkit/vortex/vortex"
)

func TestInjectAndUpdate(t *testing.T) {
	doc := fakedom.NewDocument()
	container := doc.CreateElement("div")

	root := vnode.Element("p").ChildrenText("hello")
	h := vortex.Inject(root, container, doc)
	require.Equal(t, "<p>hello</p>", container.InnerHTML())

	h.Update(vnode.Element("p").ChildrenText("world"))
	require.Equal(t, "<p>world</p>", container.InnerHTML())
}

func TestMountHydratesExistingMarkup(t *testing.T) {
	doc := fakedom.NewDocument()
	container := doc.CreateElement("div")

	prerendered := vnode.Element("span").ChildrenText("x")
	node := vnode.Create(prerendered, nil, doc)
	container.AppendChild(node)

	fresh := vnode.Element("span").ChildrenText("x")
	h, err := vortex.Mount(fresh, container, doc)
	require.NoError(t, err)
	require.Equal(t, "<span>x</span>", container.InnerHTML())

	h.Update(vnode.Element("span").ChildrenText("y"))
	require.Equal(t, "<span>y</span>", container.InnerHTML())
}
