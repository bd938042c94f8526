package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env-default:"prod"`
	HTTPServer `yaml:"http_server"`

	AdminLogin string `yaml:"admin_login"`
	AdminPass  string `yaml:"admin_pass"`

	Scheduling Scheduling `yaml:"scheduling"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout"  env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout"  env-default:"60s"`
}

type OvertimeTier struct {
	UpToHours  float64 `yaml:"up_to_hours"`
	Multiplier float64 `yaml:"multiplier"`
}

type Scheduling struct {
	// горизонт перебора дат в проверке достижимости
	HorizonDays int `yaml:"horizon_days" env-default:"30"`
	// потолок переработки, если смена его не задаёт
	MaxOvertimeHours float64 `yaml:"max_overtime_hours" env-default:"4"`
	// ступени стоимости переработки; пусто = ступени по умолчанию
	OvertimeTiers []OvertimeTier `yaml:"overtime_tiers"`
}

func MustConfig() *Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/local.yaml"
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
