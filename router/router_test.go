package router_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vortexkit/vortex/router"
)

func TestRouterDispatchesOnStartAndNavigate(t *testing.T) {
	history := router.NewFakeHistory("/users/42")
	var gotParams map[string]string
	var gotHome, gotNotFound bool

	r := router.New(history).
		Handle("/", func(params map[string]string) { gotHome = true }).
		Handle("/users/:id", func(params map[string]string) { gotParams = params }).
		NotFound(func(path string) { gotNotFound = true })

	r.Start()
	require.Equal(t, map[string]string{"id": "42"}, gotParams)
	require.False(t, gotHome)
	require.False(t, gotNotFound)

	r.Navigate("/")
	require.True(t, gotHome)

	r.Navigate("/nope")
	require.True(t, gotNotFound)
}

func TestRouterStopUnsubscribes(t *testing.T) {
	history := router.NewFakeHistory("/")
	var hits int

	r := router.New(history).Handle("/", func(map[string]string) { hits++ })
	r.Start()
	require.Equal(t, 1, hits)

	r.Stop()
	history.Push("/")
	require.Equal(t, 1, hits, "no further dispatch after Stop")
}

func TestWildcardCapturesRemainingPath(t *testing.T) {
	history := router.NewFakeHistory("/files/a/b/c.txt")
	var captured string

	r := router.New(history).Handle("/files/*path", func(params map[string]string) {
		captured = params["path"]
	})
	r.Start()

	require.Equal(t, "a/b/c.txt", captured)
}

func TestBackNavigatesHistoryStack(t *testing.T) {
	history := router.NewFakeHistory("/")
	var path string
	r := router.New(history).
		Handle("/", func(map[string]string) { path = "/" }).
		Handle("/about", func(map[string]string) { path = "/about" })
	r.Start()

	r.Navigate("/about")
	require.Equal(t, "/about", path)

	history.Back()
	require.Equal(t, "/", path)
}
