package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/denmor86/print-evaluator/internal/config"
	"github.com/denmor86/print-evaluator/internal/logger"
	"github.com/denmor86/print-evaluator/internal/network/router"
	"github.com/denmor86/print-evaluator/internal/pricing"
	"github.com/denmor86/print-evaluator/internal/services"
	"github.com/denmor86/print-evaluator/internal/slicer"
	"github.com/denmor86/print-evaluator/internal/storage"
	"github.com/denmor86/print-evaluator/internal/worker"
)

func Run(config config.Config) {

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// пути профиля слайсера и таблицы тарифов заданы относительно рабочей директории
	slicerConfig := config.Slicer
	slicerConfig.ProfilePath = filepath.Join(config.Slicer.WorkspacePath, config.Slicer.ProfilePath)

	// таблица тарифов загружается один раз и далее не изменяется
	rates, err := pricing.LoadRateTable(filepath.Join(config.Slicer.WorkspacePath, config.Slicer.RatesPath))
	if err != nil {
		logger.Panic("can't load rate table:", err)
	}

	database, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't create database:", err)
	}
	defer database.Close()
	if err := database.Initialize(ctx); err != nil {
		logger.Panic("can't initialize database:", err)
	}
	ordersStorage := storage.NewOrdersStorage(database)

	// слайсер должен быть доступен при старте
	prusa := slicer.NewPrusaSlicer(slicerConfig)
	if err := prusa.Ping(ctx); err != nil {
		logger.Panic("slicer is unreachable:", err)
	}

	// Создание и запуск воркера архивации
	archiver := worker.NewArchiveWorker(ordersStorage, config.Archive.SweepInterval)
	archiver.Start(ctx)

	evaluation := services.NewEvaluation(ordersStorage, prusa, rates)
	orders := services.NewOrders(ordersStorage, archiver)

	router := router.NewRouter(config, orders, evaluation)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting server config:", config,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	archiver.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
