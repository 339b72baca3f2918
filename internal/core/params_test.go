package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 0.01, Max: 1, HasMin: true, HasMax: true}
	assert.Equal(t, 0.01, c.Clamp(-4))
	assert.Equal(t, 1.0, c.Clamp(1.5))
	assert.Equal(t, 0.5, c.Clamp(0.5))

	open := ParameterControl{Min: 1, HasMin: true}
	assert.Equal(t, 1e9, open.Clamp(1e9))
	assert.Equal(t, 1.0, open.Clamp(0))
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "seed", Value: "42"}}},
		{Name: "B", Params: []Parameter{{Key: "scale", Value: "0.01"}}},
	}}
	p, ok := snap.Lookup("scale")
	assert.True(t, ok)
	assert.Equal(t, "0.01", p.Value)
	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Fields())
	Register("", func(map[string]string) Field { return nil })
	Register("nil-factory", nil)
	assert.Len(t, Fields(), before)
}
