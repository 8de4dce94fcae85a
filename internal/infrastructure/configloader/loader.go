package configloader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"multichain_balance_checker/internal/domain/entity"
	networkdefinition "multichain_balance_checker/internal/infrastructure/network/definition"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatXLSX    = "xlsx"
	FormatParquet = "parquet"
)

const (
	defaultLogLevel      = "info"
	defaultCosmosRESTURL = "https://cosmos-rest.publicnode.com"
	defaultCosmosDenom   = "uatom"
	defaultCosmosExp     = 6

	envPrefix = "BALANCE_CHECKER_"
)

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// OutputConfig controls where and how result files are written.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
}

// NetworkConfig holds configuration for a specific EVM network.
type NetworkConfig struct {
	Name    string `yaml:"name"`    // e.g., "arbitrum_nova"
	Enabled bool   `yaml:"enabled"` // disabled networks get "-" in every row
	RPCURL  string `yaml:"rpcURL"`  // e.g., "https://nova.arbitrum.io/rpc"
}

// CosmosConfig holds the Cosmos REST gateway settings.
type CosmosConfig struct {
	RESTURL  string `yaml:"restURL"`
	Denom    string `yaml:"denom"`
	Exponent int32  `yaml:"exponent"`
}

// MetricsConfig holds the Prometheus textfile export settings.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Config is the top-level configuration structure.
type Config struct {
	Logging  LoggingConfig   `yaml:"logging"`
	Output   OutputConfig    `yaml:"output"`
	Networks []NetworkConfig `yaml:"networks"`
	Cosmos   CosmosConfig    `yaml:"cosmos"`
	Metrics  MetricsConfig   `yaml:"metrics"`
}

// Default returns the configuration with every known network enabled on its public RPC.
func Default() *Config {
	defs := networkdefinition.All()
	networks := make([]NetworkConfig, 0, len(defs))
	for _, def := range defs {
		networks = append(networks, NetworkConfig{Name: def.Identifier, Enabled: true, RPCURL: def.DefaultRPCURL})
	}
	return &Config{
		Logging:  LoggingConfig{Level: defaultLogLevel},
		Output:   OutputConfig{Format: FormatXLSX},
		Networks: networks,
		Cosmos: CosmosConfig{
			RESTURL:  defaultCosmosRESTURL,
			Denom:    defaultCosmosDenom,
			Exponent: defaultCosmosExp,
		},
	}
}

// Load reads the YAML configuration file from the given path and unmarshals it.
// A missing file yields Default(). A .env file in the working directory is loaded first,
// then BALANCE_CHECKER_* variables override the file.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		cfg = Default()
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	applyEnv(cfg)
	return cfg, nil
}

// Save writes cfg as YAML, creating the parent directory when needed.
func Save(path string, cfg *Config) error {
	if err := cfg.normalize(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// Endpoints returns one endpoint per known network, in configuration order.
// Networks the file does not mention are appended disabled in canonical order.
func (c *Config) Endpoints() []entity.NetworkEndpoint {
	seen := make(map[string]bool, len(c.Networks))
	endpoints := make([]entity.NetworkEndpoint, 0, len(networkdefinition.Identifiers()))
	for _, n := range c.Networks {
		def, ok := networkdefinition.Lookup(n.Name)
		if !ok || seen[def.Identifier] {
			continue
		}
		seen[def.Identifier] = true
		rpcURL := n.RPCURL
		if rpcURL == "" {
			rpcURL = def.DefaultRPCURL
		}
		endpoints = append(endpoints, entity.NetworkEndpoint{Definition: def, Enabled: n.Enabled, RPCURL: rpcURL})
	}
	for _, def := range networkdefinition.All() {
		if !seen[def.Identifier] {
			endpoints = append(endpoints, entity.NetworkEndpoint{Definition: def, Enabled: false, RPCURL: def.DefaultRPCURL})
		}
	}
	return endpoints
}

// normalize validates the configuration and fills in defaults.
func (c *Config) normalize() error {
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	switch c.Output.Format {
	case "":
		c.Output.Format = FormatXLSX
	case FormatXLSX, FormatParquet:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Output.Format, FormatXLSX, FormatParquet)
	}

	seen := make(map[string]bool, len(c.Networks))
	for i, n := range c.Networks {
		def, ok := networkdefinition.Lookup(n.Name)
		if !ok {
			return fmt.Errorf("unknown network %q (known: %s)", n.Name, strings.Join(networkdefinition.Identifiers(), ", "))
		}
		if seen[def.Identifier] {
			return fmt.Errorf("duplicate network %q", def.Identifier)
		}
		seen[def.Identifier] = true
		c.Networks[i].Name = def.Identifier
		if c.Networks[i].RPCURL == "" {
			c.Networks[i].RPCURL = def.DefaultRPCURL
		}
	}
	for _, def := range networkdefinition.All() {
		if !seen[def.Identifier] {
			c.Networks = append(c.Networks, NetworkConfig{Name: def.Identifier, Enabled: false, RPCURL: def.DefaultRPCURL})
		}
	}

	if c.Cosmos.RESTURL == "" {
		c.Cosmos.RESTURL = defaultCosmosRESTURL
	}
	if c.Cosmos.Denom == "" {
		c.Cosmos.Denom = defaultCosmosDenom
	}
	if c.Cosmos.Exponent == 0 {
		c.Cosmos.Exponent = defaultCosmosExp
	}
	if c.Cosmos.Exponent < 0 {
		return fmt.Errorf("cosmos exponent must be positive, got %d", c.Cosmos.Exponent)
	}
	return nil
}

// applyEnv overrides file values with BALANCE_CHECKER_* environment variables.
func applyEnv(c *Config) {
	if v, ok := os.LookupEnv(envPrefix + "OUTPUT_DIR"); ok {
		c.Output.Dir = v
	}
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(envPrefix + "COSMOS_REST_URL"); v != "" {
		c.Cosmos.RESTURL = v
	}
	for i, n := range c.Networks {
		if v := os.Getenv(RPCURLEnvVar(n.Name)); v != "" {
			c.Networks[i].RPCURL = v
		}
	}
}

// RPCURLEnvVar is the variable overriding the RPC URL of a network, e.g. BALANCE_CHECKER_ARBITRUM_NOVA_RPC_URL.
func RPCURLEnvVar(identifier string) string {
	return envPrefix + strings.ToUpper(identifier) + "_RPC_URL"
}

func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(".env")
}
