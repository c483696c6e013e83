package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadGenesisConfig(t *testing.T) {
	path := writeTempFile(t, "genesis.yml", `
config:
  chain_name: starchain
  genesis_payload: "Genesis Block"
`)
	cfg, err := LoadGenesisConfig(path)
	if err != nil {
		t.Fatalf("LoadGenesisConfig() error = %v", err)
	}
	if cfg.ChainName != "starchain" {
		t.Errorf("ChainName = %q, want %q", cfg.ChainName, "starchain")
	}
	if cfg.GenesisPayload != "Genesis Block" {
		t.Errorf("GenesisPayload = %q, want %q", cfg.GenesisPayload, "Genesis Block")
	}
}

func TestLoadGenesisConfigMissingFile(t *testing.T) {
	if _, err := LoadGenesisConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadIniSections(t *testing.T) {
	path := writeTempFile(t, "config.ini", `
[challenge]
window_minutes = 5

[metrics]
listen_addr = :9100
`)
	challengeCfg, err := LoadChallengeConfig(path)
	if err != nil {
		t.Fatalf("LoadChallengeConfig() error = %v", err)
	}
	if challengeCfg.WindowMinutes != 5 {
		t.Errorf("WindowMinutes = %v, want 5", challengeCfg.WindowMinutes)
	}

	metricsCfg, err := LoadMetricsConfig(path)
	if err != nil {
		t.Fatalf("LoadMetricsConfig() error = %v", err)
	}
	if metricsCfg.ListenAddr != ":9100" {
		t.Errorf("ListenAddr = %q, want %q", metricsCfg.ListenAddr, ":9100")
	}
}
