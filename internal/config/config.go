package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode     string `yaml:"mode" env:"GAME_MODE" env-default:"cvc"`
	Policy   string `yaml:"policy" env:"BOT_POLICY" env-default:"classic"`
	Seed     uint64 `yaml:"seed" env:"BOT_SEED" env-default:"0"`
	Matches  int    `yaml:"matches" env:"MATCHES" env-default:"1"`
	// Moves are scripted human moves, fed to every match in PvP and PvC.
	Moves []int `yaml:"moves" env:"MOVES" env-separator:","`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Config) GetMode() (entity.Mode, error) {
	return entity.ParseMode(that.Mode)
}

func (that *Config) GetPolicy() (entity.Policy, error) {
	return entity.ParsePolicy(that.Policy)
}
