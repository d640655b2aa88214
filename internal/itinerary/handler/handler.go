package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"itinerary_backend/internal/itinerary/service"
	"itinerary_backend/internal/itinerary/transport"
	"itinerary_backend/platform/httpkit"
	"itinerary_backend/platform/logger"
	"itinerary_backend/platform/validator"
)

// Handler handles HTTP requests for subcontractors and sub-itinerary items.
type Handler struct {
	svc *service.Service
	val *validator.Validator
	log *logger.Logger
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgStatusUpdated    = "item status updated successfully"
	msgItemCreated      = "sub-itinerary item created successfully"
	msgItemArchived     = "item archived successfully"
)

// New creates a new itinerary handler.
func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

// ListSubcontractors returns all subcontractors as {id, name}.
// GET /subcontractors/
func (h *Handler) ListSubcontractors(c *gin.Context) {
	var req transport.ListSubcontractorsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.ListSubcontractors(c.Request.Context(), req.Name)
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListItems returns the sub-itinerary items linked to a subcontractor.
// GET /subcontractors/:id/items/
func (h *Handler) ListItems(c *gin.Context) {
	var req transport.SubcontractorItemsRequest
	if !h.bindURI(c, &req) {
		return
	}

	result, err := h.svc.ListItemsBySubcontractor(c.Request.Context(), canonicalID(req.SubcontractorID))
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, result)
}

// UpdateStatus sets the status label of an item.
// PUT /itinerary/:item_id/:status/
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req transport.UpdateItemStatusRequest
	if !h.bindURI(c, &req) {
		return
	}

	err := h.svc.UpdateItemStatus(c.Request.Context(), canonicalID(req.ItemID), req.Status)
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, httpkit.MessageResponse{Message: msgStatusUpdated})
}

// CreateItem creates a sub-itinerary item for a subcontractor and task.
// POST /sub-itinerary/:subcontractor_id/:task_id/:status/
func (h *Handler) CreateItem(c *gin.Context) {
	var req transport.CreateItineraryItemRequest
	if !h.bindURI(c, &req) {
		return
	}

	id, err := h.svc.CreateItineraryItem(c.Request.Context(), canonicalID(req.SubcontractorID), canonicalID(req.TaskID), req.Status)
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, httpkit.MessageResponse{Message: msgItemCreated, ID: id})
}

// ArchiveItem archives an item.
// DELETE /itinerary/:item_id/
func (h *Handler) ArchiveItem(c *gin.Context) {
	var req transport.ArchiveItemRequest
	if !h.bindURI(c, &req) {
		return
	}

	err := h.svc.ArchiveItem(c.Request.Context(), canonicalID(req.ItemID))
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, httpkit.MessageResponse{Message: msgItemArchived})
}

func (h *Handler) bindURI(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindUri(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return false
	}
	return true
}

// canonicalID rewrites page ids given without dashes into the dashed form
// relation payloads use. Anything that is not a UUID is returned unchanged.
func canonicalID(id string) string {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return id
	}
	return parsed.String()
}
