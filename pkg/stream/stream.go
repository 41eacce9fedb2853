package stream

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Yigitalp02/asl-glove-simulator/pkg/config"
	"github.com/Yigitalp02/asl-glove-simulator/pkg/glove"
)

// Streamer drives the continuous sample stream: for each letter in the
// configured sequence it holds the letter's pattern, then eases into the
// next letter, cycling forever. Every emitted sample is noised.
type Streamer struct {
	cfg      *config.Config
	dev      glove.Device
	patterns map[string]glove.Reading

	sampleCount int
}

// New derives the raw pattern table from the configuration and validates the
// letter sequence. All configuration errors surface here, before any I/O.
func New(cfg *config.Config, dev glove.Device) (*Streamer, error) {
	cal, err := glove.NewCalibration(cfg.Calibration.Baseline, cfg.Calibration.MaxBend)
	if err != nil {
		return nil, err
	}

	patterns, err := glove.BuildPatterns(cal, cfg.Patterns)
	if err != nil {
		return nil, err
	}

	if len(cfg.Letters) == 0 {
		return nil, fmt.Errorf("letter sequence is empty")
	}
	for _, letter := range cfg.Letters {
		if _, ok := patterns[letter]; !ok {
			return nil, fmt.Errorf("letter %q has no pattern", letter)
		}
	}

	if cfg.Stream.TransitionSteps < 1 {
		return nil, fmt.Errorf("transition_steps must be at least 1, got %d", cfg.Stream.TransitionSteps)
	}
	if cfg.Stream.SamplesPerLetter <= cfg.Stream.TransitionSteps {
		return nil, fmt.Errorf("samples_per_letter (%d) must exceed transition_steps (%d)",
			cfg.Stream.SamplesPerLetter, cfg.Stream.TransitionSteps)
	}
	if cfg.Stream.SampleInterval <= 0 {
		return nil, fmt.Errorf("sample_interval must be positive, got %v", cfg.Stream.SampleInterval)
	}

	return &Streamer{
		cfg:      cfg,
		dev:      dev,
		patterns: patterns,
	}, nil
}

// Patterns returns the derived raw pattern table.
func (s *Streamer) Patterns() map[string]glove.Reading {
	return s.patterns
}

// Run emits samples at the configured rate until the context is cancelled or
// a write fails. Cancellation is the normal stop path and returns nil; a
// broken link returns the write error. Run does not close the device.
func (s *Streamer) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.Stream.SampleInterval)
	defer ticker.Stop()

	letters := s.cfg.Letters
	hold := s.cfg.Stream.SamplesPerLetter - s.cfg.Stream.TransitionSteps
	idx := 0

	for {
		current := letters[idx]
		next := letters[(idx+1)%len(letters)]
		currentPattern := s.patterns[current]
		nextPattern := s.patterns[next]

		// Hold phase: steady pattern, noised.
		for range hold {
			if err := s.emit(ctx, ticker, current, currentPattern); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}

		// Transition phase: eased blend into the next letter.
		log.Printf("transitioning from %s to %s", current, next)
		tr := glove.NewTransition(currentPattern, nextPattern, s.cfg.Stream.TransitionSteps)
		for {
			r, ok := tr.Next()
			if !ok {
				break
			}
			if err := s.emit(ctx, ticker, current, r); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}

		idx = (idx + 1) % len(letters)
	}
}

// emit noises and writes one sample, then waits out the sample interval.
func (s *Streamer) emit(ctx context.Context, ticker *time.Ticker, letter string, r glove.Reading) error {
	noised := glove.AddNoise(r, s.cfg.Stream.NoiseLevel)
	if err := s.dev.Emit(noised); err != nil {
		return fmt.Errorf("emit sample: %w", err)
	}

	s.sampleCount++
	if s.cfg.Stream.ProgressEvery > 0 && s.sampleCount%s.cfg.Stream.ProgressEvery == 0 {
		log.Printf("[%5d] sending %s: %s", s.sampleCount, letter, noised)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ticker.C:
		return nil
	}
}
