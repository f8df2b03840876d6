package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr      string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN     string        `env:"DATABASE_DSN" envDefault:""`
	SlicerPath      string        `env:"SLICER_PATH" envDefault:"prusa-slicer"`
	WorkspacePath   string        `env:"WORKSPACE_PATH" envDefault:"."`
	SlicerProfile   string        `env:"SLICER_PROFILE" envDefault:"data_files/prusa_config.ini"`
	RatesPath       string        `env:"RATES_PATH" envDefault:"data_files/print_price_evaluator_config.json"`
	SlicerTimeout   time.Duration `env:"SLICER_TIMEOUT" envDefault:"2m"`
	ArchiveInterval time.Duration `env:"ARCHIVE_INTERVAL" envDefault:"1m"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	DatabaseDSN string
}

// SlicerConfig модель настроек работы с внешним слайсером
type SlicerConfig struct {
	ExecPath      string
	WorkspacePath string
	// Профиль печати, передаваемый слайсеру через --load
	ProfilePath string
	// Путь к таблице тарифов печати
	RatesPath string
	Timeout   time.Duration
}

// ArchiveConfig модель настроек фоновой архивации заказов
type ArchiveConfig struct {
	SweepInterval time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server  ServerConfig
	Slicer  SlicerConfig
	Archive ArchiveConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server        = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel      = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN           = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		slicer        = pflag.StringP("slicer", "s", args.SlicerPath, "Path to the slicer executable.")
		workspace     = pflag.StringP("workspace", "w", args.WorkspacePath, "Path to the workspace directory.")
		profile       = pflag.StringP("profile", "p", args.SlicerProfile, "Path to the slicer print profile.")
		rates         = pflag.StringP("rates", "r", args.RatesPath, "Path to the price rates file.")
		slicerTimeout = pflag.DurationP("slicer_timeout", "t", args.SlicerTimeout, "Timeout for a single slicer run.")
		archive       = pflag.DurationP("archive_interval", "i", args.ArchiveInterval, "Interval of the archive sweep.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
		},
		Slicer: SlicerConfig{
			ExecPath:      *slicer,
			WorkspacePath: *workspace,
			ProfilePath:   *profile,
			RatesPath:     *rates,
			Timeout:       *slicerTimeout,
		},
		Archive: ArchiveConfig{
			SweepInterval: *archive,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
		},
		Slicer: SlicerConfig{
			ExecPath:      "prusa-slicer",
			WorkspacePath: ".",
			ProfilePath:   "data_files/prusa_config.ini",
			RatesPath:     "data_files/print_price_evaluator_config.json",
			Timeout:       2 * time.Minute,
		},
		Archive: ArchiveConfig{
			SweepInterval: time.Minute,
		},
	}
}
