package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/cafebazaar/teambubbles/internal/metrics"
)

func TestObserveRenderShouldCountByStatus(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	m.ObserveRender("html", time.Now(), nil)
	m.ObserveRender("html", time.Now(), nil)
	m.ObserveRender("json", time.Now(), errors.New("boom"))

	families, err := registry.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "teambubbles_renders_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			key := ""
			for _, label := range metric.GetLabel() {
				key += label.GetName() + "=" + label.GetValue() + ","
			}
			counts[key] = metric.GetCounter().GetValue()
		}
	}

	require.Equal(t, 2.0, counts["format=html,status=ok,"])
	require.Equal(t, 1.0, counts["format=json,status=error,"])
}

func TestObserveAggregationShouldSetGauges(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	m.ObserveAggregation(12, 4)

	count, err := testutil.GatherAndCount(registry, "teambubbles_teams", "teambubbles_tasks")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestNewShouldRegisterOnGivenRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics.New(registry)

	require.Panics(t, func() {
		metrics.New(registry)
	})
}
