package handlers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"items-api/internal/logging"
	"items-api/internal/services"
	"items-api/pkg/lambda"
)

// ItemHandler serves the four item operations for Lambda and for gin
type ItemHandler struct {
	itemService      services.ItemService
	logger           *logrus.Logger
	strictValidation bool
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService services.ItemService, logger *logrus.Logger, strictValidation bool) *ItemHandler {
	return &ItemHandler{
		itemService:      itemService,
		logger:           logger,
		strictValidation: strictValidation,
	}
}

// HandleCreate stores the item described by the request body
func (h *ItemHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if err := h.itemService.CreateItem(ctx, req.Body); err != nil {
		return h.failure(ctx, req, "CreateItem", "", err), nil
	}

	return h.success(ctx, req, "CreateItem", "", http.StatusOK, MessageResponse{Message: msgItemCreated}), nil
}

// HandleGet returns the stored record for the path id
func (h *ItemHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParam("id")

	record, err := h.itemService.GetItem(ctx, id)
	if err != nil {
		if isNotFoundError(err) {
			return h.success(ctx, req, "GetItem", id, http.StatusNotFound, MessageResponse{Message: msgItemNotFound}), nil
		}
		return h.failure(ctx, req, "GetItem", id, err), nil
	}

	return h.success(ctx, req, "GetItem", id, http.StatusOK, record), nil
}

// HandleUpdate sets the name of the item at the path id and returns the
// attributes that changed
func (h *ItemHandler) HandleUpdate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParam("id")

	attrs, err := h.itemService.UpdateItem(ctx, id, req.Body)
	if err != nil {
		return h.failure(ctx, req, "UpdateItem", id, err), nil
	}

	return h.success(ctx, req, "UpdateItem", id, http.StatusOK, attrs), nil
}

// HandleDelete removes the item at the path id. A missing id is answered
// with 400 directly.
func (h *ItemHandler) HandleDelete(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParam("id")
	if id == "" {
		h.entry(ctx, req, "DeleteItem", id).
			WithField("status_code", http.StatusBadRequest).
			Warn(services.MsgDeleteMissingPathID)
		return lambda.NewJSONResponse(http.StatusBadRequest, ErrorResponse{Error: services.MsgDeleteMissingPathID}), nil
	}

	if err := h.itemService.DeleteItem(ctx, id); err != nil {
		return h.failure(ctx, req, "DeleteItem", id, err), nil
	}

	return h.success(ctx, req, "DeleteItem", id, http.StatusOK, MessageResponse{Message: msgItemDeleted}), nil
}

// HealthCheck reports whether the item store is reachable
func (h *ItemHandler) HealthCheck(ctx context.Context) error {
	return h.itemService.HealthCheck(ctx)
}

func (h *ItemHandler) success(ctx context.Context, req *lambda.Request, op, id string, status int, body any) *lambda.Response {
	h.entry(ctx, req, op, id).WithField("status_code", status).Info("request completed")
	return lambda.NewJSONResponse(status, body)
}

func (h *ItemHandler) failure(ctx context.Context, req *lambda.Request, op, id string, err error) *lambda.Response {
	status := statusForError(err, h.strictValidation)

	entry := h.entry(ctx, req, op, id).WithField("status_code", status).WithError(err)
	if services.IsValidationError(err) {
		entry.Warn("request rejected")
	} else {
		entry.Error("request failed")
	}

	return lambda.NewJSONResponse(status, ErrorResponse{Error: err.Error()})
}

func (h *ItemHandler) entry(ctx context.Context, req *lambda.Request, op, id string) *logrus.Entry {
	fields := logrus.Fields{"operation": op}
	if id != "" {
		fields["item_id"] = id
	}
	if req != nil && req.RequestID != "" {
		fields["request_id"] = req.RequestID
	}
	return logging.WithLambdaContext(ctx, h.logger.WithFields(fields))
}
