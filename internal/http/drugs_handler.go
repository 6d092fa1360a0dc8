package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openpdst/dst-service/internal/domain/dto"
	"github.com/openpdst/dst-service/internal/domain/model"
	"github.com/openpdst/dst-service/internal/i18n"
	"github.com/openpdst/dst-service/internal/middleware"
	"github.com/openpdst/dst-service/internal/repository"
	"github.com/openpdst/dst-service/internal/service"
)

// DrugsHandler provides HTTP handlers for the drug reference store.
type DrugsHandler struct {
	drugs service.DrugService
}

// NewDrugsHandler creates a new drug reference handler.
func NewDrugsHandler(drugs service.DrugService) *DrugsHandler {
	return &DrugsHandler{drugs: drugs}
}

// ListDrugs handles GET /api/drugs requests.
//
// @Summary      List drug references
// @Description  Returns the drug reference panel. Pass available=true to restrict the list to drugs the laboratory currently stocks.
// @Tags         Drugs
// @Produce      json
// @Param        available query bool false "Only available drugs"
// @Success      200 {object} dto.SuccessResponse "Drug references"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/drugs [get]
func (h *DrugsHandler) ListDrugs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	availableOnly := c.Query("available") == "true"
	drugs, err := h.drugs.List(c.Request.Context(), availableOnly)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(drugs)
}

// GetDrug handles GET /api/drugs/:drug_id requests.
//
// @Summary      Get one drug reference
// @Description  Returns the reference record for a single drug.
// @Tags         Drugs
// @Produce      json
// @Param        drug_id path string true "Drug identifier" example(inh)
// @Success      200 {object} dto.SuccessResponse "Drug reference"
// @Failure      404 {object} dto.ErrorResponse "Drug not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/drugs/{drug_id} [get]
func (h *DrugsHandler) GetDrug(c *gin.Context) {
	builder := NewResponseBuilder(c)

	drug, err := h.drugs.Get(c.Request.Context(), c.Param("drug_id"))
	if err != nil {
		if errors.Is(err, repository.ErrDrugNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyDrugNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}
	builder.SuccessOK(drug)
}

// CreateDrug handles POST /api/drugs requests.
//
// @Summary      Add a drug reference
// @Description  Adds a new drug to the reference store.
// @Tags         Drugs
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateDrugRequest true "Drug reference"
// @Success      201 {object} dto.SuccessResponse "Created drug reference"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - drug already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/drugs [post]
func (h *DrugsHandler) CreateDrug(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreateDrugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	drug := &model.DrugReference{
		DrugID:                req.DrugID,
		Name:                  req.Name,
		MolecularWeight:       req.MolecularWeight,
		Diluent:               req.Diluent,
		CriticalConcentration: req.CriticalConcentration,
		Available:             req.Available,
	}
	if err := h.drugs.Create(c.Request.Context(), drug); err != nil {
		if errors.Is(err, service.ErrDrugExists) {
			builder.Error(http.StatusConflict, i18n.ErrKeyConflict, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	h.auditDrugChange(c, "Drug reference created", drug.DrugID)
	builder.SuccessCreated(drug)
}

// UpdateDrugAvailability handles PATCH /api/drugs/:drug_id/availability.
//
// @Summary      Update drug availability
// @Description  Marks a drug as available or unavailable for testing.
// @Tags         Drugs
// @Accept       json
// @Produce      json
// @Param        drug_id path string true "Drug identifier" example(inh)
// @Param        request body dto.UpdateDrugAvailabilityRequest true "Availability flag"
// @Success      200 {object} dto.SuccessResponse "Updated"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Drug not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/drugs/{drug_id}/availability [patch]
func (h *DrugsHandler) UpdateDrugAvailability(c *gin.Context) {
	builder := NewResponseBuilder(c)
	drugID := c.Param("drug_id")

	var req dto.UpdateDrugAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.drugs.UpdateAvailability(c.Request.Context(), drugID, *req.Available); err != nil {
		if errors.Is(err, repository.ErrDrugNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyDrugNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	h.auditDrugChange(c, "Drug availability updated", drugID)
	builder.SuccessOK(map[string]interface{}{
		"drug_id":   drugID,
		"available": *req.Available,
	})
}

func (h *DrugsHandler) auditDrugChange(c *gin.Context, message, drugID string) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, model.ActionDrugsUpdate, message, map[string]interface{}{
				"drug_id": drugID,
			})
		}
	}
}
