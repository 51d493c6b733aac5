package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log       Log       `yaml:"log"`
	Telegram  Telegram  `yaml:"telegram"`
	Providers Providers `yaml:"providers"`
}

type Telegram struct {
	// Bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789" validate:"required"`
	// Bot username, used to detect mentions in group chats
	Username string `yaml:"username" example:"@my_first_bot" validate:"required"`
	// Long poll timeout in seconds
	PollIntervalSec int `yaml:"poll_interval_sec" example:"2"`
}

type Providers struct {
	Weather Weather `yaml:"weather"`
	Quotes  Quotes  `yaml:"quotes"`
	Jokes   Jokes   `yaml:"jokes"`
	// Timeout in seconds applied to every provider call
	TimeoutSec int `yaml:"timeout_sec" example:"10"`
}

type Weather struct {
	// OpenWeatherMap API key
	APIKey string `yaml:"api_key" validate:"required"`
	// API base url
	BaseURL string `yaml:"base_url" example:"https://api.openweathermap.org/data/2.5/weather"`
}

type Quotes struct {
	// API Ninjas key
	APIKey string `yaml:"api_key" validate:"required"`
	// API base url
	BaseURL string `yaml:"base_url" example:"https://api.api-ninjas.com/v1/quotes"`
}

type Jokes struct {
	// API base url
	BaseURL string `yaml:"base_url" example:"https://icanhazdadjoke.com/"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.Telegram.PollIntervalSec <= 0 {
		result.Telegram.PollIntervalSec = 2
	}
	if result.Providers.TimeoutSec <= 0 {
		result.Providers.TimeoutSec = 10
	}
	if result.Providers.Weather.BaseURL == "" {
		result.Providers.Weather.BaseURL = "https://api.openweathermap.org/data/2.5/weather"
	}
	if result.Providers.Quotes.BaseURL == "" {
		result.Providers.Quotes.BaseURL = "https://api.api-ninjas.com/v1/quotes"
	}
	if result.Providers.Jokes.BaseURL == "" {
		result.Providers.Jokes.BaseURL = "https://icanhazdadjoke.com/"
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
