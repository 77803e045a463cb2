package reactiveprom_test

import (
	"testing"

	"github.com/delaneyj/proxyparty/pkg/reactiveprom"
	"github.com/delaneyj/proxyparty/reactive"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntimeCollector(t *testing.T) {
	rt := reactive.NewRuntime()
	state := rt.Reactive(reactive.NewObject("n", 0)).(*reactive.Proxy)
	rt.Effect(func() error {
		state.Get("n")
		return nil
	})
	state.Set("n", 1)
	rt.Reactive(1)

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(reactiveprom.NewRuntimeCollector(rt, prometheus.Labels{"runtime": "test"})))

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		require.Len(t, mf.GetMetric(), 1)
		m := mf.GetMetric()[0]
		require.Len(t, m.GetLabel(), 1)
		assert.Equal(t, "test", m.GetLabel()[0].GetValue())
		values[mf.GetName()] = m.GetCounter().GetValue()
	}

	assert.Len(t, values, 6)
	assert.Equal(t, 1.0, values["proxyparty_effects_created_total"])
	assert.Equal(t, 2.0, values["proxyparty_effect_runs_total"])
	assert.Equal(t, 2.0, values["proxyparty_tracks_total"])
	assert.Equal(t, 1.0, values["proxyparty_triggers_total"])
	assert.Equal(t, 0.0, values["proxyparty_scheduled_total"])
	assert.Equal(t, 1.0, values["proxyparty_warnings_total"])
}
