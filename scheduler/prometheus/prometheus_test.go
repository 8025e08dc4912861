package prometheus_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	vortexprom "github.com/vortexkit/vortex/scheduler/prometheus"
)

func findFamily(t *testing.T, families []*dto.MetricFamily, name string) *dto.MetricFamily {
	t.Helper()
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	t.Fatalf("metric family %q not found", name)
	return nil
}

func TestObserveFrameIncrementsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := vortexprom.New(vortexprom.WithRegistry(reg))

	m.ObserveFrame(2, 3, 1, 1, 5*time.Millisecond)
	m.ObserveFrame(0, 1, 0, 0, 1*time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	frames := findFamily(t, families, "vortex_scheduler_frames_total")
	require.Equal(t, float64(2), frames.GetMetric()[0].GetCounter().GetValue())

	prioWrites := findFamily(t, families, "vortex_scheduler_priority_writes_total")
	require.Equal(t, float64(2), prioWrites.GetMetric()[0].GetCounter().GetValue())

	plainWrites := findFamily(t, families, "vortex_scheduler_writes_total")
	require.Equal(t, float64(4), plainWrites.GetMetric()[0].GetCounter().GetValue())

	duration := findFamily(t, families, "vortex_scheduler_frame_duration_seconds")
	require.Equal(t, uint64(2), duration.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestObserveClockSetsGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := vortexprom.New(vortexprom.WithRegistry(reg))

	m.ObserveClock(42)

	families, err := reg.Gather()
	require.NoError(t, err)

	clock := findFamily(t, families, "vortex_scheduler_clock")
	require.Equal(t, float64(42), clock.GetMetric()[0].GetGauge().GetValue())
}

func TestNamespaceOptionPrefixesMetricNames(t *testing.T) {
	reg := prometheus.NewRegistry()
	vortexprom.New(vortexprom.WithNamespace("myapp"), vortexprom.WithRegistry(reg))

	families, err := reg.Gather()
	require.NoError(t, err)
	findFamily(t, families, "myapp_scheduler_frames_total")
}
