package main

import (
	"testing"

	"github.com/delaneyj/proxyparty/reactive"
	"github.com/stretchr/testify/assert"
)

func TestWorkloadsTrigger(t *testing.T) {
	for _, cfg := range workloads {
		t.Run(cfg.name, func(t *testing.T) {
			counter := new(int64)
			rt := reactive.NewRuntime()
			step := cfg.setup(rt, cfg.effects, counter)
			assert.Equal(t, int64(cfg.effects), *counter, "every effect runs once on creation")

			*counter = 0
			for i := 0; i < 4; i++ {
				step(i)
			}
			assert.Positive(t, *counter)
			assert.Zero(t, rt.Stats().Warnings)
		})
	}
}

func TestToRow(t *testing.T) {
	headers := []string{"benchmark", "avg", "min"}
	row := toRow(headers)
	assert.Len(t, row, len(headers))
	for i, h := range headers {
		assert.Equal(t, h, row[i])
	}
	assert.Empty(t, toRow(nil))
}
