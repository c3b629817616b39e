package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/skillscan/api/http/presenter"
	"github.com/artem13815/skillscan/pkg/keywords"
)

// ExtractionsHandler exposes the extraction history.
type ExtractionsHandler struct{ svc keywords.UseCase }

func NewExtractionsHandler(svc keywords.UseCase) *ExtractionsHandler {
	return &ExtractionsHandler{svc: svc}
}

// List возвращает последние извлечения, новые первыми.
// @Summary  List extractions
// @Tags     extractions
// @Produce  json
// @Param    limit  query int false "Page size (1..200)" default(50)
// @Param    offset query int false "Offset" default(0)
// @Security BearerAuth
// @Success  200 {object} map[string]any
// @Failure  401 {object} presenter.ErrorResponse
// @Failure  503 {object} presenter.ErrorResponse
// @Router   /api/v1/extractions [get]
func (h *ExtractionsHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, defaultPageLimit)
	items, err := h.svc.List(c.UserContext(), limit, offset)
	if err != nil {
		return historyError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}

// Get возвращает одно извлечение по id.
// @Summary  Get extraction
// @Tags     extractions
// @Produce  json
// @Param    id path string true "Extraction ID (uuid)"
// @Security BearerAuth
// @Success  200 {object} keywords.Extraction
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  401 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Failure  503 {object} presenter.ErrorResponse
// @Router   /api/v1/extractions/{id} [get]
func (h *ExtractionsHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid extraction id")
	}
	e, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return historyError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, e)
}

func historyError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, keywords.ErrHistoryDisabled):
		return presenter.Error(c, http.StatusServiceUnavailable, "extraction history is disabled")
	case errors.Is(err, keywords.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "extraction not found")
	default:
		return presenter.Error(c, http.StatusInternalServerError, "failed to load extraction history")
	}
}
