package router

import (
	"path/filepath"

	"github.com/denmor86/print-evaluator/internal/config"
	"github.com/denmor86/print-evaluator/internal/network/handlers"
	"github.com/denmor86/print-evaluator/internal/network/middleware"
	"github.com/denmor86/print-evaluator/internal/services"
	"github.com/denmor86/print-evaluator/internal/slicer"
	"github.com/go-chi/chi/v5"
)

type Router struct {
	Config    config.Config
	Orders    services.OrdersService
	Evaluator services.EvaluationService
}

func NewRouter(config config.Config, orders services.OrdersService, evaluator services.EvaluationService) *Router {
	return &Router{
		Config:    config,
		Orders:    orders,
		Evaluator: evaluator,
	}
}

func (router *Router) HandleRouter() chi.Router {
	receivedDir := filepath.Join(router.Config.Slicer.WorkspacePath, slicer.ReceivedOrdersDir)
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Get("/backendstatus", handlers.BackendStatusHandler())
		r.Get("/orders", handlers.GetOrdersHandler(router.Orders))
		r.Put("/orders/modify", handlers.ModifyOrderHandler(router.Orders))
		r.Get("/completed_orders", handlers.GetArchivedOrdersHandler(router.Orders))
		r.Get("/websocket_evaluation", handlers.UploadHandler(router.Evaluator, receivedDir))
	})
	return r
}
