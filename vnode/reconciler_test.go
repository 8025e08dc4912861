package vnode_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vortexkit/vortex/dom"
	"github.com/vortexkit/vortex/dom/fakedom"
	"github.com/vortexkit/vortex/vnode"
)

func keyedTextChildren(keys []int) []*vnode.VNode {
	out := make([]*vnode.VNode, len(keys))
	for i, k := range keys {
		out[i] = vnode.Text(fmt.Sprintf("%d", k)).WithKey(k)
	}
	return out
}

// TestKeyedChildrenMinimalMoves exercises the keyed diff's general case
// (prefix/suffix already stripped, remaining middle genuinely reordered)
// with the canonical adversarial key sequence for LIS-based reordering.
func TestKeyedChildrenMinimalMoves(t *testing.T) {
	doc := fakedom.NewDocument()

	oldKeys := []int{7, 0, 1, 8, 2, 3, 4, 5, 9}
	newKeys := []int{5, 4, 3, 2, 1, 0, 9}

	oldRoot := vnode.Element("ul").TrackByKeyChildren(keyedTextChildren(oldKeys)...)
	node := vnode.Create(oldRoot, nil, doc)
	el := node.(dom.Element)

	newRoot := vnode.Element("ul").TrackByKeyChildren(keyedTextChildren(newKeys)...)
	vnode.Sync(oldRoot, newRoot, nil, doc)

	want := ""
	for _, k := range newKeys {
		want += fmt.Sprintf("%d", k)
	}
	require.Equal(t, want, el.InnerHTML())
}

func TestKeyedChildrenPrefixSuffixOnlyNoGeneralCase(t *testing.T) {
	doc := fakedom.NewDocument()

	oldRoot := vnode.Element("ul").TrackByKeyChildren(keyedTextChildren([]int{1, 2, 3})...)
	node := vnode.Create(oldRoot, nil, doc)
	el := node.(dom.Element)

	newRoot := vnode.Element("ul").TrackByKeyChildren(keyedTextChildren([]int{1, 2, 4, 3})...)
	vnode.Sync(oldRoot, newRoot, nil, doc)

	require.Equal(t, "1243", el.InnerHTML())
}

func TestSyncAttrsStaticShape(t *testing.T) {
	doc := fakedom.NewDocument()

	old := vnode.Element("div").Attrs(map[string]string{"id": "a", "title": "x"})
	node := vnode.Create(old, nil, doc)
	el := node.(dom.Element)

	new_ := vnode.Element("div").Attrs(map[string]string{"id": "b", "title": "x"})
	vnode.Sync(old, new_, nil, doc)

	v, ok := el.GetAttribute("id")
	require.True(t, ok)
	require.Equal(t, "b", v)
}

func TestSyncAttrsDynamicShapeRemovesDroppedKeys(t *testing.T) {
	doc := fakedom.NewDocument()

	old := vnode.Element("div").Attrs(map[string]string{"a": "1", "b": "2"}).DynamicShapeAttrs()
	node := vnode.Create(old, nil, doc)
	el := node.(dom.Element)

	new_ := vnode.Element("div").Attrs(map[string]string{"b": "2", "c": "3"}).DynamicShapeAttrs()
	vnode.Sync(old, new_, nil, doc)

	_, hasA := el.GetAttribute("a")
	require.False(t, hasA)
	v, hasC := el.GetAttribute("c")
	require.True(t, hasC)
	require.Equal(t, "3", v)
}

func TestSyncClassesDiffsTokenList(t *testing.T) {
	doc := fakedom.NewDocument()

	old := vnode.Element("div").Classes("a", "b")
	node := vnode.Create(old, nil, doc)
	el := node.(dom.Element)

	new_ := vnode.Element("div").Classes("b", "c")
	vnode.Sync(old, new_, nil, doc)

	require.False(t, el.ClassList().Contains("a"))
	require.True(t, el.ClassList().Contains("b"))
	require.True(t, el.ClassList().Contains("c"))
}

func TestMountAdoptsExistingMarkup(t *testing.T) {
	doc := fakedom.NewDocument()

	rendered := vnode.Element("div").Children(
		vnode.Text("hello"),
		vnode.Element("span").ChildrenText("world"),
	)
	node := vnode.Create(rendered, nil, doc)

	fresh := vnode.Element("div").Children(
		vnode.Text("hello"),
		vnode.Element("span").ChildrenText("world"),
	)
	err := vnode.Mount(fresh, node, nil)
	require.NoError(t, err)
	require.Equal(t, node, fresh.Ref())
}

func TestUnkeyedChildrenGrowAndShrink(t *testing.T) {
	doc := fakedom.NewDocument()

	old := vnode.Element("div").Children(vnode.Text("a"), vnode.Text("b"))
	node := vnode.Create(old, nil, doc)
	el := node.(dom.Element)

	grown := vnode.Element("div").Children(vnode.Text("a"), vnode.Text("b"), vnode.Text("c"))
	vnode.Sync(old, grown, nil, doc)
	require.Equal(t, "abc", el.InnerHTML())

	shrunk := vnode.Element("div").Children(vnode.Text("x"))
	vnode.Sync(grown, shrunk, nil, doc)
	require.Equal(t, "x", el.InnerHTML())
}
