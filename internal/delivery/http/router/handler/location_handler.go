package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"sakny/internal/delivery/http/response"
	domainerrors "sakny/internal/domain/errors"
	"sakny/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LocationHandler serves the read-only governorate/city reference data.
type LocationHandler struct {
	uc     usecase.LocationUsecase
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListGovernorates returns every governorate ordered by id.
func (h *LocationHandler) ListGovernorates(c echo.Context) error {
	governorates, err := h.uc.ListGovernorates(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*governorateResponse, 0, len(governorates))
	for _, gov := range governorates {
		items = append(items, toGovernorateResponse(gov))
	}

	return response.Success(c, http.StatusOK, items, "Governorates retrieved successfully")
}

// ListCities returns the cities of the governorate named in the path.
func (h *LocationHandler) ListCities(c echo.Context) error {
	governorateID, err := strconv.Atoi(c.Param("id"))
	if err != nil || governorateID < 1 {
		return domainerrors.ErrValidationFailed.WithDetails("governorate id must be a positive integer")
	}

	cities, err := h.uc.ListCities(c.Request().Context(), governorateID)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*cityResponse, 0, len(cities))
	for _, city := range cities {
		items = append(items, toCityResponse(city))
	}

	return response.Success(c, http.StatusOK, items, "Cities retrieved successfully")
}
