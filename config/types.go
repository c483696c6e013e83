package config

// GenesisConfig describes the one block the chain starts from.
type GenesisConfig struct {
	ChainName      string `yaml:"chain_name"`
	GenesisPayload string `yaml:"genesis_payload"`
}

// ConfigFile is the top-level shape of genesis.yml.
type ConfigFile struct {
	Config GenesisConfig `yaml:"config"`
}
