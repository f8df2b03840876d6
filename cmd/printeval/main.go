package main

import (
	"fmt"

	"github.com/denmor86/print-evaluator/internal/app"
	"github.com/denmor86/print-evaluator/internal/config"
	"github.com/denmor86/print-evaluator/internal/logger"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// запуск сервиса
	app.Run(config)
}
