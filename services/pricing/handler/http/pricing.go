package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kirimkilat/kirimkilat/internal/pkg/logger"
	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
	nrpkg "github.com/kirimkilat/kirimkilat/internal/pkg/newrelic"
	"github.com/kirimkilat/kirimkilat/internal/utils"
	"github.com/kirimkilat/kirimkilat/services/pricing"
)

// PricingHandler handles HTTP requests for pricing operations
type PricingHandler struct {
	pricingUC pricing.PricingUC
}

// NewPricingHandler creates a new pricing HTTP handler
func NewPricingHandler(pricingUC pricing.PricingUC) *PricingHandler {
	return &PricingHandler{
		pricingUC: pricingUC,
	}
}

// Quote handles quote requests from the order service
func (h *PricingHandler) Quote(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Pricing.Quote")

	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.pricingUC.Quote(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to calculate quote",
			logger.String("client_ip", c.RealIP()),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to calculate quote: "+err.Error())
	}

	if result.Rejected() {
		return utils.UnprocessableEntityResponse(c, result.Rejection.Message, result.Rejection)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Quote calculated successfully", result.Quote)
}

// ListServiceAreas returns every service area for administrative tooling
func (h *PricingHandler) ListServiceAreas(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Pricing.ListServiceAreas")

	areas, err := h.pricingUC.ListServiceAreas(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list service areas: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service areas retrieved successfully", areas)
}

// GetServiceArea returns a single service area
func (h *PricingHandler) GetServiceArea(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Pricing.GetServiceArea")

	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid service area ID")
	}

	area, err := h.pricingUC.GetServiceArea(c.Request().Context(), areaID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return utils.NotFoundResponse(c, "Service area not found")
		}
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to get service area: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service area retrieved successfully", area)
}

// CreateServiceArea creates a new service area
func (h *PricingHandler) CreateServiceArea(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Pricing.CreateServiceArea")

	var area models.ServiceArea
	if err := c.Bind(&area); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	created, err := h.pricingUC.CreateServiceArea(c.Request().Context(), &area)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to create service area: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Service area created successfully", created)
}

// UpdateServiceArea replaces a service area
func (h *PricingHandler) UpdateServiceArea(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Pricing.UpdateServiceArea")

	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid service area ID")
	}

	var area models.ServiceArea
	if err := c.Bind(&area); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	area.ID = areaID

	updated, err := h.pricingUC.UpdateServiceArea(c.Request().Context(), &area)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		if strings.Contains(err.Error(), "not found") {
			return utils.NotFoundResponse(c, "Service area not found")
		}
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to update service area: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service area updated successfully", updated)
}

// DeactivateServiceArea soft-deletes a service area
func (h *PricingHandler) DeactivateServiceArea(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Pricing.DeactivateServiceArea")

	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid service area ID")
	}

	if err := h.pricingUC.DeactivateServiceArea(c.Request().Context(), areaID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return utils.NotFoundResponse(c, "Service area not found")
		}
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to deactivate service area: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service area deactivated successfully", nil)
}
