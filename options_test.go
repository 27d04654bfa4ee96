package dynlist

import (
	"testing"

	"github.com/hupe1980/dynlist/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		o := applyOptions(nil)
		assert.Equal(t, NoopMetricsCollector{}, o.metricsCollector)
		assert.NotNil(t, o.logger)
		assert.Equal(t, 0, o.capacityHint)
	})

	t.Run("nil option and nil values fall back", func(t *testing.T) {
		o := applyOptions([]Option{nil, WithLogger(nil), WithMetricsCollector(nil)})
		assert.Equal(t, NoopMetricsCollector{}, o.metricsCollector)
		assert.NotNil(t, o.logger)
	})

	t.Run("capacity hint", func(t *testing.T) {
		assert.Equal(t, 8, applyOptions([]Option{WithCapacityHint(8)}).capacityHint)
		assert.Equal(t, 0, applyOptions([]Option{WithCapacityHint(-1)}).capacityHint)
	})

	t.Run("options survive rebuilds", func(t *testing.T) {
		mc := &BasicMetricsCollector{}
		l := New(WithMetricsCollector(mc), WithCapacityHint(4))

		_, err := l.Add(value.Int(1))
		require.NoError(t, err)
		require.NoError(t, l.Insert(0, value.String("a")))
		_, err = l.Add(value.Int(2))
		require.NoError(t, err)

		assert.Equal(t, int64(2), mc.GetStats().AddCount)
		assert.Equal(t, int64(1), mc.GetStats().RebuildCount)
	})
}
