package glove

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testBaseline = []int{440, 612, 618, 548, 528}
	testMaxBend  = []int{650, 900, 900, 850, 800}
)

func TestNewCalibration(t *testing.T) {
	cal, err := NewCalibration(testBaseline, testMaxBend)
	require.NoError(t, err)
	assert.Equal(t, [NumChannels]int{440, 612, 618, 548, 528}, cal.Baseline)
	assert.Equal(t, [NumChannels]int{650, 900, 900, 850, 800}, cal.MaxBend)
}

func TestNewCalibration_WrongLength(t *testing.T) {
	tests := []struct {
		name     string
		baseline []int
		maxBend  []int
	}{
		{
			name:     "short baseline",
			baseline: []int{440, 612, 618, 548},
			maxBend:  testMaxBend,
		},
		{
			name:     "long baseline",
			baseline: []int{440, 612, 618, 548, 528, 500},
			maxBend:  testMaxBend,
		},
		{
			name:     "short max bend",
			baseline: testBaseline,
			maxBend:  []int{650, 900},
		},
		{
			name:     "empty",
			baseline: nil,
			maxBend:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCalibration(tt.baseline, tt.maxBend)
			assert.Error(t, err)
		})
	}
}

func TestDenormalize(t *testing.T) {
	cal, err := NewCalibration(testBaseline, testMaxBend)
	require.NoError(t, err)

	tests := []struct {
		name       string
		normalized []float64
		want       Reading
	}{
		{
			name:       "all straight",
			normalized: []float64{0, 0, 0, 0, 0},
			want:       Reading{440, 612, 618, 548, 528},
		},
		{
			name:       "all fully bent",
			normalized: []float64{1, 1, 1, 1, 1},
			want:       Reading{650, 900, 900, 850, 800},
		},
		{
			name:       "letter A",
			normalized: []float64{0.02, 0.684, 0.787, 0.652, 0.68},
			want:       Reading{444, 809, 840, 745, 713},
		},
		{
			name:       "letter B",
			normalized: []float64{0.42, 0.13, 0.24, 0.26, 0.32},
			want:       Reading{528, 649, 686, 627, 615},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.Denormalize(tt.normalized)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDenormalize_WrongLength(t *testing.T) {
	cal, err := NewCalibration(testBaseline, testMaxBend)
	require.NoError(t, err)

	_, err = cal.Denormalize([]float64{0.1, 0.2, 0.3})
	assert.Error(t, err)

	_, err = cal.Denormalize([]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6})
	assert.Error(t, err)
}

func TestBuildPatterns(t *testing.T) {
	cal, err := NewCalibration(testBaseline, testMaxBend)
	require.NoError(t, err)

	normalized := map[string][]float64{
		"A": {0.02, 0.684, 0.787, 0.652, 0.68},
		"V": {0.26, 0.03, 0.02, 0.95, 0.95},
	}

	patterns, err := BuildPatterns(cal, normalized)
	require.NoError(t, err)
	assert.Len(t, patterns, 2)
	assert.Equal(t, Reading{444, 809, 840, 745, 713}, patterns["A"])

	// Every channel matches round(baseline + n*(maxbend - baseline)).
	for letter, norm := range normalized {
		for i := range NumChannels {
			want := int(math.Round(float64(testBaseline[i]) + norm[i]*float64(testMaxBend[i]-testBaseline[i])))
			assert.Equal(t, want, patterns[letter][i], "letter %s channel %d", letter, i)
		}
	}
}

func TestBuildPatterns_MalformedEntry(t *testing.T) {
	cal, err := NewCalibration(testBaseline, testMaxBend)
	require.NoError(t, err)

	_, err = BuildPatterns(cal, map[string][]float64{
		"A": {0.02, 0.684, 0.787, 0.652, 0.68},
		"Z": {0.1, 0.2}, // Wrong channel count
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Z")
}

func TestReading_String(t *testing.T) {
	assert.Equal(t, "444,809,840,745,713", Reading{444, 809, 840, 745, 713}.String())
	assert.Equal(t, "0,0,0,0,0", Reading{}.String())
	assert.Equal(t, "1023,0,512,1,1023", Reading{1023, 0, 512, 1, 1023}.String())
}
