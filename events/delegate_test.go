package events_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vortexkit/vortex/dom"
	"github.com/vortexkit/vortex/dom/fakedom"
	"github.com/vortexkit/vortex/events"
)

func TestDelegateCallsNearestRegisteredAncestor(t *testing.T) {
	doc := fakedom.NewDocument()
	root := doc.CreateElement("div")
	list := doc.CreateElement("ul")
	item := doc.CreateElement("li")
	root.AppendChild(list)
	list.AppendChild(item)

	d := events.NewDelegator(root)

	var listClicks, itemClicks int
	d.On(list, "click", func(dom.Event) { listClicks++ })
	d.On(item, "click", func(dom.Event) { itemClicks++ })

	root.(interface {
		Dispatch(event string, evt dom.Event)
	}).Dispatch("click", fakedom.NewEvent("click", item))

	require.Equal(t, 1, itemClicks, "handler on the event's own target fires")
	require.Equal(t, 1, listClicks, "bubbling continues past a matched node to its ancestors")
}

func TestStopPropagationHaltsBubbling(t *testing.T) {
	doc := fakedom.NewDocument()
	root := doc.CreateElement("div")
	list := doc.CreateElement("ul")
	item := doc.CreateElement("li")
	root.AppendChild(list)
	list.AppendChild(item)

	d := events.NewDelegator(root)

	var listClicks, itemClicks int
	d.On(list, "click", func(dom.Event) { listClicks++ })
	d.On(item, "click", func(ev dom.Event) {
		itemClicks++
		ev.StopPropagation()
	})

	root.(interface {
		Dispatch(event string, evt dom.Event)
	}).Dispatch("click", fakedom.NewEvent("click", item))

	require.Equal(t, 1, itemClicks)
	require.Equal(t, 0, listClicks, "stopping propagation on the inner handler prevents the outer one from firing")
}

func TestRemoveUnregistersHandler(t *testing.T) {
	doc := fakedom.NewDocument()
	root := doc.CreateElement("div")
	item := doc.CreateElement("li")
	root.AppendChild(item)

	d := events.NewDelegator(root)

	var clicks int
	remove := d.On(item, "click", func(dom.Event) { clicks++ })
	remove()

	root.(interface {
		Dispatch(event string, evt dom.Event)
	}).Dispatch("click", fakedom.NewEvent("click", item))

	require.Equal(t, 0, clicks)
}
