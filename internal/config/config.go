package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/tictactoe"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	SessionID string    `yaml:"session-id" env:"SESSION_ID" env-default:""`
	Redis     Redis     `yaml:"redis"`
	Display   Display   `yaml:"display"`
	Indicator Indicator `yaml:"indicator"`
}

type Redis struct {
	Host          string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port          string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	ChannelPrefix string        `yaml:"channel-prefix" env:"REDIS_CHANNEL_PREFIX" env-default:"tictactoe"`
	SnapshotTTL   time.Duration `yaml:"snapshot-ttl" env:"REDIS_SNAPSHOT_TTL" env-default:"1h"`
}

type Display struct {
	IntroPrompt string `yaml:"intro-prompt" env-default:"Click the board to start"`
	FirstPiece  string `yaml:"first-piece" env-default:"First piece: %s"`
	NextPiece   string `yaml:"next-piece" env-default:"Next piece: %s"`
	Winner      string `yaml:"winner" env-default:"Winner: %s"`
	Tie         string `yaml:"tie" env-default:"Tie"`
}

type Indicator struct {
	Neutral     string `yaml:"neutral" env-default:"#FFFFFF"`
	Celebration string `yaml:"celebration" env-default:"#FFD700"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// GameSettings - converts the display and indicator sections into controller settings.
func (that *Config) GameSettings() (tictactoe.Settings, error) {
	neutral, err := entity.ParseRGB(that.Indicator.Neutral)
	if err != nil {
		return tictactoe.Settings{}, fmt.Errorf("neutral indicator: %w", err)
	}

	celebration, err := entity.ParseRGB(that.Indicator.Celebration)
	if err != nil {
		return tictactoe.Settings{}, fmt.Errorf("celebration indicator: %w", err)
	}

	return tictactoe.Settings{
		Messages: tictactoe.Messages{
			IntroPrompt: that.Display.IntroPrompt,
			FirstPiece:  that.Display.FirstPiece,
			NextPiece:   that.Display.NextPiece,
			Winner:      that.Display.Winner,
			Tie:         that.Display.Tie,
		},
		NeutralColor:     neutral,
		CelebrationColor: celebration,
	}, nil
}
