// Package config manages global (~/.config/lexmem/config.toml) and
// per-vault (.lexmem/config.toml) configuration for lexmem.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lexmem/lexmem/internal/srs"
)

// GlobalConfig holds user-wide settings.
type GlobalConfig struct {
	Model   ModelConfig   `toml:"model"`
	Session SessionConfig `toml:"session"`
	Output  OutputConfig  `toml:"output"`
}

// ModelConfig tunes the memory model weights. The zero value of any field
// falls back to the stock default on load, so a partial config file stays
// valid across new knobs.
type ModelConfig struct {
	ReactionTimeMs   float64 `toml:"reaction_time_ms"`
	CharTimeMs       float64 `toml:"char_time_ms"`
	SpeedMultiplier  float64 `toml:"speed_multiplier"`
	SpeedWeight      float64 `toml:"speed_weight"`
	BonusWeight      float64 `toml:"bonus_weight"`
	CorrectionWeight float64 `toml:"correction_weight"`
	StreakThreshold  int     `toml:"streak_threshold"`
}

// SessionConfig controls review session defaults.
type SessionConfig struct {
	// DefaultLimit is the working-set size when --limit is not given.
	DefaultLimit int `toml:"default_limit"`
}

type OutputConfig struct {
	Verbose bool `toml:"verbose"`
}

// VaultConfig holds per-vault overrides stored in .lexmem/config.toml.
type VaultConfig struct {
	Name    string        `toml:"name"`
	Model   ModelConfig   `toml:"model"`
	Session SessionConfig `toml:"session"`
}

// DefaultGlobal returns sensible defaults.
func DefaultGlobal() GlobalConfig {
	p := srs.DefaultParams()
	return GlobalConfig{
		Model: ModelConfig{
			ReactionTimeMs:   p.ReactionTimeMs,
			CharTimeMs:       p.CharTimeMs,
			SpeedMultiplier:  p.SpeedMultiplier,
			SpeedWeight:      p.SpeedWeight,
			BonusWeight:      p.BonusWeight,
			CorrectionWeight: p.CorrectionWeight,
			StreakThreshold:  p.StreakThreshold,
		},
		Session: SessionConfig{
			DefaultLimit: 20,
		},
	}
}

// Params converts the model section to srs.Params, substituting the stock
// default for any unset (zero) weight.
func (m ModelConfig) Params() srs.Params {
	p := srs.DefaultParams()
	if m.ReactionTimeMs > 0 {
		p.ReactionTimeMs = m.ReactionTimeMs
	}
	if m.CharTimeMs > 0 {
		p.CharTimeMs = m.CharTimeMs
	}
	if m.SpeedMultiplier > 0 {
		p.SpeedMultiplier = m.SpeedMultiplier
	}
	if m.SpeedWeight > 0 {
		p.SpeedWeight = m.SpeedWeight
	}
	if m.BonusWeight > 0 {
		p.BonusWeight = m.BonusWeight
	}
	if m.CorrectionWeight > 0 {
		p.CorrectionWeight = m.CorrectionWeight
	}
	if m.StreakThreshold > 0 {
		p.StreakThreshold = m.StreakThreshold
	}
	return p
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lexmem", "config.toml"), nil
}

// LoadGlobal loads the global config, applying defaults for any missing values.
func LoadGlobal() (GlobalConfig, error) {
	cfg := DefaultGlobal()

	path, err := GlobalConfigPath()
	if err != nil {
		return cfg, nil // Return defaults if we can't determine home dir.
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // File doesn't exist yet — use defaults.
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: load global: %w", err)
	}
	return cfg, nil
}

// SaveGlobal writes the global config to disk.
func SaveGlobal(cfg GlobalConfig) error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create global config: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// LoadVault loads .lexmem/config.toml from the given vault root.
func LoadVault(root string) (VaultConfig, error) {
	var cfg VaultConfig
	path := filepath.Join(root, ".lexmem", "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: load vault: %w", err)
	}
	return cfg, nil
}

// SaveVault writes the vault config to .lexmem/config.toml.
func SaveVault(root string, cfg VaultConfig) error {
	dir := filepath.Join(root, ".lexmem")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: mkdir vault: %w", err)
	}

	path := filepath.Join(dir, "config.toml")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create vault config: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// VaultDBPath returns the path to the vault's SQLite database.
func VaultDBPath(root string) string {
	return filepath.Join(root, ".lexmem", "lexmem.db")
}

// VaultDirPath returns the path to the vault's .lexmem/ directory.
func VaultDirPath(root string) string {
	return filepath.Join(root, ".lexmem")
}

// VaultLogDirPath returns the directory session logs are written to.
func VaultLogDirPath(root string) string {
	return filepath.Join(root, ".lexmem", "logs")
}

// Load returns the effective config for a vault root: global settings with
// the vault's model and session sections overlaid field by field.
func Load(root string) (GlobalConfig, error) {
	global, err := LoadGlobal()
	if err != nil {
		global = DefaultGlobal()
	}

	vault, err := LoadVault(root)
	if err != nil {
		return global, err
	}

	overlayModel(&global.Model, vault.Model)
	if vault.Session.DefaultLimit > 0 {
		global.Session.DefaultLimit = vault.Session.DefaultLimit
	}
	return global, nil
}

func overlayModel(dst *ModelConfig, src ModelConfig) {
	if src.ReactionTimeMs > 0 {
		dst.ReactionTimeMs = src.ReactionTimeMs
	}
	if src.CharTimeMs > 0 {
		dst.CharTimeMs = src.CharTimeMs
	}
	if src.SpeedMultiplier > 0 {
		dst.SpeedMultiplier = src.SpeedMultiplier
	}
	if src.SpeedWeight > 0 {
		dst.SpeedWeight = src.SpeedWeight
	}
	if src.BonusWeight > 0 {
		dst.BonusWeight = src.BonusWeight
	}
	if src.CorrectionWeight > 0 {
		dst.CorrectionWeight = src.CorrectionWeight
	}
	if src.StreakThreshold > 0 {
		dst.StreakThreshold = src.StreakThreshold
	}
}
