package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const envPrefix = "CPUSCHED"

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	MaxProcesses          int
	MaxBurst              int
	HistorySize           int
	LogLevel              string
	LogFormat             string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml (if present) once per process.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads configuration from path, or from config.yaml in the working
// directory when path is empty. A missing file leaves the defaults in
// place; CPUSCHED_* environment variables override both.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MaxProcesses:          v.GetInt("scheduler.max_processes"),
		MaxBurst:              v.GetInt("scheduler.max_burst"),
		HistorySize:           v.GetInt("session.history_size"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
	}
	if cfg.RoundRobinTimeQuantum <= 0 {
		cfg.RoundRobinTimeQuantum = 2
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.max_processes", 256)
	v.SetDefault("scheduler.max_burst", 10000)
	v.SetDefault("session.history_size", 50)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Default returns the built-in configuration without touching the
// filesystem or the environment.
func Default() *SchedulerConfig {
	return &SchedulerConfig{
		Port:                  9095,
		RoundRobinTimeQuantum: 2,
		MaxProcesses:          256,
		MaxBurst:              10000,
		HistorySize:           50,
		LogLevel:              "info",
		LogFormat:             "console",
	}
}
