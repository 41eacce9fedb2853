package glove

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate_Identity(t *testing.T) {
	p := Reading{444, 809, 840, 745, 713}

	// Interpolating a pattern with itself is the identity for any factor.
	for _, factor := range []float64{0, 0.25, 0.5, 0.99, 1, -0.5, 1.5} {
		assert.Equal(t, p, Interpolate(p, p, factor), "factor %v", factor)
	}
}

func TestInterpolate(t *testing.T) {
	start := Reading{100, 200, 300, 400, 500}
	end := Reading{200, 100, 300, 500, 400}

	tests := []struct {
		name   string
		factor float64
		want   Reading
	}{
		{
			name:   "factor zero",
			factor: 0,
			want:   start,
		},
		{
			name:   "factor one",
			factor: 1,
			want:   end,
		},
		{
			name:   "halfway",
			factor: 0.5,
			want:   Reading{150, 150, 300, 450, 450},
		},
		{
			name:   "truncates the blended value",
			factor: 0.999,
			want:   Reading{199, 100, 300, 499, 400},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Interpolate(start, end, tt.factor))
		})
	}
}

func TestTransition_Count(t *testing.T) {
	start := Reading{440, 612, 618, 548, 528}
	end := Reading{650, 900, 900, 850, 800}

	for _, steps := range []int{1, 4, 25} {
		tr := NewTransition(start, end, steps)
		assert.Equal(t, steps, tr.Len())

		var readings []Reading
		for {
			r, ok := tr.Next()
			if !ok {
				break
			}
			readings = append(readings, r)
		}
		assert.Len(t, readings, steps, "steps=%d", steps)

		// First eased fraction is 0.5 - 0.5*cos(0) = 0, so the first
		// reading is exactly the start pattern.
		assert.Equal(t, start, readings[0], "steps=%d", steps)

		// The last fraction is (steps-1)/steps < 1, so the final reading
		// stops short of the end pattern.
		assert.NotEqual(t, end, readings[len(readings)-1], "steps=%d", steps)
	}
}

func TestTransition_MonotonicPerChannel(t *testing.T) {
	start := Reading{440, 612, 618, 548, 528}
	end := Reading{650, 900, 900, 850, 800}

	tr := NewTransition(start, end, 25)
	prev, ok := tr.Next()
	require.True(t, ok)
	for {
		r, ok := tr.Next()
		if !ok {
			break
		}
		for i := range NumChannels {
			assert.GreaterOrEqual(t, r[i], prev[i], "channel %d", i)
			assert.LessOrEqual(t, r[i], end[i], "channel %d", i)
		}
		prev = r
	}
}

func TestTransition_NotRestartable(t *testing.T) {
	tr := NewTransition(Reading{0, 0, 0, 0, 0}, Reading{100, 100, 100, 100, 100}, 3)

	for range 3 {
		_, ok := tr.Next()
		require.True(t, ok)
	}

	// Exhausted for good.
	for range 2 {
		_, ok := tr.Next()
		assert.False(t, ok)
	}
}

func TestTransition_StepsFloor(t *testing.T) {
	start := Reading{10, 20, 30, 40, 50}
	tr := NewTransition(start, Reading{500, 500, 500, 500, 500}, 0)
	assert.Equal(t, 1, tr.Len())

	r, ok := tr.Next()
	require.True(t, ok)
	assert.Equal(t, start, r)

	_, ok = tr.Next()
	assert.False(t, ok)
}
