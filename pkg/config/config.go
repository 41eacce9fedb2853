package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Serial      SerialConfig         `yaml:"serial"`
	Stream      StreamConfig         `yaml:"stream"`
	Calibration CalibrationConfig    `yaml:"calibration"`
	Patterns    map[string][]float64 `yaml:"patterns"`
	Letters     []string             `yaml:"letters"`
}

// SerialConfig contains serial port configuration.
type SerialConfig struct {
	Port        string        `yaml:"port"`
	BaudRate    int           `yaml:"baud_rate"`
	ReadTimeout time.Duration `yaml:"read_timeout"` // Set defensively on open; this side never reads
}

// StreamConfig contains the timing and shaping of the emitted sample stream.
type StreamConfig struct {
	SampleInterval   time.Duration `yaml:"sample_interval"`    // Delay between samples (20ms = 50Hz nominal)
	SamplesPerLetter int           `yaml:"samples_per_letter"` // Total samples per letter, including transition
	TransitionSteps  int           `yaml:"transition_steps"`   // Eased steps between consecutive letters
	NoiseLevel       int           `yaml:"noise_level"`        // Uniform jitter magnitude per channel
	ProgressEvery    int           `yaml:"progress_every"`     // Log a progress line every N samples (0 = disabled)
}

// CalibrationConfig contains per-channel raw sensor ranges.
// Both arrays are ordered thumb, index, middle, ring, pinky.
type CalibrationConfig struct {
	Baseline []int `yaml:"baseline"` // Raw value with the finger straight
	MaxBend  []int `yaml:"max_bend"` // Raw value fully bent
}

// Default returns a default configuration with sensible values.
// Calibration and pattern tables match the authored targets of the desktop
// app's simulator control panel.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port:        "COM3", // Default for Windows, should be "/dev/ttyACM0" on Linux/Mac
			BaudRate:    115200,
			ReadTimeout: time.Second,
		},
		Stream: StreamConfig{
			SampleInterval:   20 * time.Millisecond, // 50 samples per second
			SamplesPerLetter: 250,                   // ~4 seconds at 50Hz
			TransitionSteps:  25,                    // ~0.5 seconds transition
			NoiseLevel:       8,
			ProgressEvery:    50, // Once per second at the nominal rate
		},
		Calibration: CalibrationConfig{
			Baseline: []int{440, 612, 618, 548, 528},
			MaxBend:  []int{650, 900, 900, 850, 800},
		},
		Patterns: map[string][]float64{
			"A": {0.02, 0.684, 0.787, 0.652, 0.68},
			"B": {0.42, 0.13, 0.24, 0.26, 0.32},
			"C": {0.31, 0.56, 0.70, 0.59, 0.59},
			"D": {0.40, 0.04, 0.74, 0.64, 0.66},
			"E": {0.53, 0.61, 0.81, 0.64, 0.64},
			"F": {0.44, 0.43, 0.13, 0.22, 0.33},
			"I": {0.47, 0.68, 0.74, 0.66, 0.22},
			"K": {0.13, 0.00, 0.35, 0.65, 0.68},
			"O": {0.50, 0.50, 0.58, 0.58, 0.54},
			"S": {0.55, 0.67, 0.74, 0.68, 0.69},
			"T": {0.33, 0.20, 0.67, 0.63, 0.68},
			"V": {0.26, 0.03, 0.02, 0.95, 0.95},
			"W": {0.23, 0.12, 0.11, 0.22, 0.73},
			"X": {0.38, 0.47, 0.71, 0.65, 0.71},
			"Y": {0.00, 0.58, 0.71, 0.65, 0.24},
		},
		Letters: []string{"A", "B", "C", "D", "E", "V", "W", "Y", "I"},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Ensure minimum required fields are set (use defaults if missing)
	cfg.ensureDefaults()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.BaudRate == 0 {
		c.Serial.BaudRate = def.Serial.BaudRate
	}
	if c.Serial.ReadTimeout == 0 {
		c.Serial.ReadTimeout = def.Serial.ReadTimeout
	}

	if c.Stream.SampleInterval == 0 {
		c.Stream.SampleInterval = def.Stream.SampleInterval
	}
	if c.Stream.SamplesPerLetter == 0 {
		c.Stream.SamplesPerLetter = def.Stream.SamplesPerLetter
	}
	if c.Stream.TransitionSteps == 0 {
		c.Stream.TransitionSteps = def.Stream.TransitionSteps
	}
	if c.Stream.NoiseLevel == 0 {
		c.Stream.NoiseLevel = def.Stream.NoiseLevel
	}

	if len(c.Calibration.Baseline) == 0 {
		c.Calibration.Baseline = def.Calibration.Baseline
	}
	if len(c.Calibration.MaxBend) == 0 {
		c.Calibration.MaxBend = def.Calibration.MaxBend
	}

	if len(c.Patterns) == 0 {
		c.Patterns = def.Patterns
	}
	if len(c.Letters) == 0 {
		c.Letters = def.Letters
	}
}
