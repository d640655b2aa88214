// Package itinerary provides the subcontractor itinerary bounded context module.
// It exposes subcontractors and their sub-itinerary items stored in Notion.
package itinerary

import (
	apphttp "itinerary_backend/internal/http"
	"itinerary_backend/internal/itinerary/handler"
	"itinerary_backend/internal/itinerary/service"
	"itinerary_backend/platform/config"
	"itinerary_backend/platform/logger"
	"itinerary_backend/platform/validator"
)

// Module is the itinerary bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the itinerary module with all its dependencies.
func NewModule(store service.RecordStore, cfg config.ItineraryConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(store, cfg, log)
	h := handler.New(svc, val, log)

	log.Info("itinerary module initialized", "taskLookupConcurrency", cfg.GetTaskLookupConcurrency())

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "itinerary"
}

// Service returns the itinerary service for external use.
func (m *Module) Service() ItineraryService {
	return m.service
}

// RegisterRoutes mounts itinerary routes at the engine root, where the
// client application expects them.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Root.GET("/subcontractors/", m.handler.ListSubcontractors)
	ctx.Root.GET("/subcontractors/:id/items/", m.handler.ListItems)
	ctx.Root.PUT("/itinerary/:item_id/:status/", m.handler.UpdateStatus)
	ctx.Root.DELETE("/itinerary/:item_id/", m.handler.ArchiveItem)
	ctx.Root.POST("/sub-itinerary/:subcontractor_id/:task_id/:status/", m.handler.CreateItem)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
