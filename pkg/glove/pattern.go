package glove

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// NumChannels is the number of flex sensor channels on the glove,
	// ordered thumb, index, middle, ring, pinky.
	NumChannels = 5
	// MaxRaw is the highest raw value the glove's ADC can report.
	MaxRaw = 1023
)

// Reading is one raw sample across all sensor channels.
type Reading [NumChannels]int

// String formats the reading as comma-separated decimals, the same shape
// the glove firmware puts on the wire.
func (r Reading) String() string {
	var b strings.Builder
	for i, v := range r {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Calibration holds the per-channel raw range of the emulated sensors.
type Calibration struct {
	Baseline [NumChannels]int // Raw value with the finger straight
	MaxBend  [NumChannels]int // Raw value fully bent
}

// NewCalibration builds a Calibration from config slices. Both slices must
// have exactly NumChannels entries.
func NewCalibration(baseline, maxBend []int) (Calibration, error) {
	var cal Calibration
	if len(baseline) != NumChannels {
		return cal, fmt.Errorf("calibration baseline has %d entries, expected %d", len(baseline), NumChannels)
	}
	if len(maxBend) != NumChannels {
		return cal, fmt.Errorf("calibration max_bend has %d entries, expected %d", len(maxBend), NumChannels)
	}
	copy(cal.Baseline[:], baseline)
	copy(cal.MaxBend[:], maxBend)
	return cal, nil
}

// Denormalize converts a normalized bend pattern (0..1 per channel) to a raw
// reading using the calibration ranges.
func (c Calibration) Denormalize(normalized []float64) (Reading, error) {
	var r Reading
	if len(normalized) != NumChannels {
		return r, fmt.Errorf("pattern has %d entries, expected %d", len(normalized), NumChannels)
	}
	for i, n := range normalized {
		r[i] = int(math.Round(float64(c.Baseline[i]) + n*float64(c.MaxBend[i]-c.Baseline[i])))
	}
	return r, nil
}

// BuildPatterns derives the raw target reading for every letter in the
// normalized pattern table. Computed once at startup; a pattern with the
// wrong channel count is a configuration error.
func BuildPatterns(cal Calibration, normalized map[string][]float64) (map[string]Reading, error) {
	patterns := make(map[string]Reading, len(normalized))
	for letter, norm := range normalized {
		raw, err := cal.Denormalize(norm)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", letter, err)
		}
		patterns[letter] = raw
	}
	return patterns, nil
}
