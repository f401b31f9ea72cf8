package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/ChristianF88/radixsort/generator"
	"github.com/ChristianF88/radixsort/numfile"
)

// ErrNoSuites is returned when a configuration defines no [bench.<name>] table.
var ErrNoSuites = errors.New("no benchmark suites configured")

const (
	DefaultSeed         uint64 = 42
	DefaultRepeats             = 3
	DefaultBaseline            = "std"
	DefaultDistribution        = generator.Normal
)

type GlobalConfig struct {
	Seed     uint64 `toml:"seed"`
	Repeats  int    `toml:"repeats"`
	Baseline string `toml:"baseline"`
}

type OutputConfig struct {
	ReportPath string `toml:"reportPath"`
	PlotPath   string `toml:"plotPath"`
}

// SuiteConfig describes one benchmark suite: every type is timed at every size.
type SuiteConfig struct {
	Types        []string `toml:"types"`
	Sizes        []int    `toml:"sizes"`
	Distribution string   `toml:"distribution"`
	Max          float64  `toml:"max"`
}

type Config struct {
	Global *GlobalConfig           `toml:"global"`
	Output *OutputConfig           `toml:"output"`
	Suites map[string]*SuiteConfig `toml:"bench"`
}

func LoadConfig(configPath string) (*Config, error) {
	configData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(string(configData))
}

// ParseConfig decodes TOML text into a Config with defaults applied.
func ParseConfig(data string) (*Config, error) {
	var rawConfig map[string]any
	if _, err := toml.Decode(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config := &Config{
		Suites: make(map[string]*SuiteConfig),
	}

	for key, value := range rawConfig {
		switch key {
		case "global":
			if globalMap, ok := value.(map[string]any); ok {
				global, err := parseGlobalConfig(globalMap)
				if err != nil {
					return nil, err
				}
				config.Global = global
			}
		case "output":
			if outputMap, ok := value.(map[string]any); ok {
				config.Output = parseOutputConfig(outputMap)
			}
		case "bench":
			if benchMap, ok := value.(map[string]any); ok {
				for name, subValue := range benchMap {
					suiteMap, ok := subValue.(map[string]any)
					if !ok {
						continue
					}
					suite, err := parseSuiteConfig(suiteMap)
					if err != nil {
						return nil, fmt.Errorf("parsing suite %q: %w", name, err)
					}
					config.Suites[name] = suite
				}
			}
		}
	}

	if config.Global == nil {
		config.Global = &GlobalConfig{}
	}
	if config.Output == nil {
		config.Output = &OutputConfig{}
	}
	config.applyDefaults()

	return config, nil
}

func parseGlobalConfig(m map[string]any) (*GlobalConfig, error) {
	config := &GlobalConfig{}
	if v, ok := m["seed"].(int64); ok {
		if v < 0 {
			return nil, fmt.Errorf("seed must not be negative, got %d", v)
		}
		config.Seed = uint64(v)
	}
	if v, ok := m["repeats"].(int64); ok {
		if v < 1 {
			return nil, fmt.Errorf("repeats must be at least 1, got %d", v)
		}
		config.Repeats = int(v)
	}
	if v, ok := m["baseline"].(string); ok {
		config.Baseline = v
	}
	return config, nil
}

func parseOutputConfig(m map[string]any) *OutputConfig {
	config := &OutputConfig{}
	if v, ok := m["reportPath"].(string); ok {
		config.ReportPath = v
	}
	if v, ok := m["plotPath"].(string); ok {
		config.PlotPath = v
	}
	return config
}

func parseSuiteConfig(m map[string]any) (*SuiteConfig, error) {
	config := &SuiteConfig{}
	if v, ok := m["types"].([]any); ok {
		for _, item := range v {
			name, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("types must be strings, got %v", item)
			}
			if _, err := numfile.Width(name); err != nil {
				return nil, err
			}
			config.Types = append(config.Types, name)
		}
	}
	if v, ok := m["sizes"].([]any); ok {
		for _, item := range v {
			size, ok := item.(int64)
			if !ok || size < 0 {
				return nil, fmt.Errorf("sizes must be non-negative integers, got %v", item)
			}
			config.Sizes = append(config.Sizes, int(size))
		}
	}
	if v, ok := m["distribution"].(string); ok {
		if !generator.Valid(v) {
			return nil, fmt.Errorf("%w: %q", generator.ErrUnknownDistribution, v)
		}
		config.Distribution = v
	}
	if v, ok := m["max"].(float64); ok {
		config.Max = v
	} else if i, ok := m["max"].(int64); ok {
		config.Max = float64(i)
	}
	if config.Max < 0 {
		return nil, fmt.Errorf("max must not be negative, got %v", config.Max)
	}
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Global.Seed == 0 {
		c.Global.Seed = DefaultSeed
	}
	if c.Global.Repeats == 0 {
		c.Global.Repeats = DefaultRepeats
	}
	if c.Global.Baseline == "" {
		c.Global.Baseline = DefaultBaseline
	}
	for _, suite := range c.Suites {
		if suite.Distribution == "" {
			suite.Distribution = DefaultDistribution
		}
		if suite.Max == 0 {
			suite.Max = generator.DefaultMax
		}
	}
}

// Validate checks that the configuration can drive a benchmark run.
func (c *Config) Validate() error {
	if len(c.Suites) == 0 {
		return fmt.Errorf("%w (e.g., [bench.suite_name])", ErrNoSuites)
	}
	for _, name := range c.SuiteNames() {
		suite := c.Suites[name]
		if len(suite.Types) == 0 {
			return fmt.Errorf("suite %q: at least one type is required", name)
		}
		if len(suite.Sizes) == 0 {
			return fmt.Errorf("suite %q: at least one size is required", name)
		}
	}
	return nil
}

// SuiteNames returns the suite names in sorted order.
func (c *Config) SuiteNames() []string {
	names := make([]string, 0, len(c.Suites))
	for name := range c.Suites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
