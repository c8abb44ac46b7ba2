package axgeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisNext(t *testing.T) {
	assert.Equal(t, YAxis, XAxis.Next())
	assert.Equal(t, XAxis, YAxis.Next())
	assert.Equal(t, XAxis, XAxis.Next().Next())
}

func TestAxisAtDepth(t *testing.T) {
	tests := []struct {
		name  string
		start Axis
		depth int
		want  Axis
	}{
		{"x root", XAxis, 0, XAxis},
		{"x depth 1", XAxis, 1, YAxis},
		{"x depth 4", XAxis, 4, XAxis},
		{"y root", YAxis, 0, YAxis},
		{"y depth 3", YAxis, 3, XAxis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.AtDepth(tt.depth))
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(2, 5)
	tests := []struct {
		name string
		v    int
		want bool
	}{
		{"below", 1, false},
		{"left edge", 2, true},
		{"inside", 3, true},
		{"right edge", 5, true},
		{"above", 6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.v))
		})
	}
}

func TestRangeIntersectsTouching(t *testing.T) {
	a := NewRange(0.0, 1.0)
	assert.True(t, a.Intersects(NewRange(1.0, 2.0)))
	assert.False(t, a.Intersects(NewRange(1.5, 2.0)))
	assert.True(t, a.Intersects(NewRange(-1.0, 0.0)))
}

func TestRangeGrowAndContainsRange(t *testing.T) {
	g := NewRange(3, 4).Grow(NewRange(-2, 1))
	assert.Equal(t, NewRange(-2, 4), g)
	assert.True(t, g.ContainsRange(NewRange(-2, 4)))
	assert.False(t, g.ContainsRange(NewRange(-3, 0)))
	assert.Equal(t, 6, g.Length())
}

func TestRectGet(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	assert.Equal(t, NewRange(1, 2), r.Get(XAxis))
	assert.Equal(t, NewRange(3, 4), r.Get(YAxis))
	assert.Equal(t, "[1,2]x[3,4]", r.String())
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 10, 0, 10)
	assert.True(t, a.Intersects(NewRect(10, 12, 5, 6)))
	assert.False(t, a.Intersects(NewRect(11, 12, 5, 6)))
	assert.True(t, a.ContainsRect(NewRect(1, 2, 3, 4)))
	assert.Equal(t, NewRect(0, 12, -1, 10), a.Grow(NewRect(11, 12, -1, 0)))
}
