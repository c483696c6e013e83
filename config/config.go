package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"starchain/logx"
)

// LoadGenesisConfig reads and parses the genesis.yml file
func LoadGenesisConfig(path string) (*GenesisConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open genesis config %s", path)
	}
	defer file.Close()

	var cfgFile ConfigFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfgFile); err != nil {
		return nil, errors.Wrapf(err, "failed to decode genesis config %s", path)
	}
	logx.Info("CONFIG", "Loaded genesis config: ChainName=", cfgFile.Config.ChainName)
	return &cfgFile.Config, nil
}

type ChallengeConfig struct {
	WindowMinutes float64 `ini:"window_minutes"`
}

type MetricsConfig struct {
	ListenAddr string `ini:"listen_addr"`
}

// LoadChallengeConfig reads the ownership-challenge tunables from an .ini file
func LoadChallengeConfig(path string) (*ChallengeConfig, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config %s", path)
	}
	challengeCfg := &ChallengeConfig{}
	if err := cfg.Section("challenge").MapTo(challengeCfg); err != nil {
		return nil, errors.Wrap(err, "failed to map challenge section")
	}
	return challengeCfg, nil
}

// LoadMetricsConfig reads the metrics listener settings from an .ini file
func LoadMetricsConfig(path string) (*MetricsConfig, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config %s", path)
	}
	metricsCfg := &MetricsConfig{}
	if err := cfg.Section("metrics").MapTo(metricsCfg); err != nil {
		return nil, errors.Wrap(err, "failed to map metrics section")
	}
	return metricsCfg, nil
}
