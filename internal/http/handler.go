package http

import (
	"errors"
	"io"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/openpdst/dst-service/internal/dilution"
	"github.com/openpdst/dst-service/internal/domain/dto"
	"github.com/openpdst/dst-service/internal/domain/model"
	"github.com/openpdst/dst-service/internal/i18n"
	"github.com/openpdst/dst-service/internal/middleware"
	"github.com/openpdst/dst-service/internal/repository"
	"github.com/openpdst/dst-service/internal/service"
)

// Handler provides HTTP handlers for the dilution calculation routes.
type Handler struct {
	protocol service.ProtocolService
	batch    service.BatchService
}

// NewHandler creates a new Handler instance.
func NewHandler(protocol service.ProtocolService, batch service.BatchService) *Handler {
	return &Handler{
		protocol: protocol,
		batch:    batch,
	}
}

// calcError maps calculation and lookup failures to HTTP responses.
// Validation and unit errors are client errors; an infeasible
// preparation is reported separately so the front end can suggest the
// stock pathway.
func calcError(builder *ResponseBuilder, err error) {
	var validationErr *dto.ValidationError
	var infeasibleErr *dilution.InfeasiblePreparationError

	switch {
	case errors.As(err, &validationErr):
		builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
	case errors.Is(err, repository.ErrDrugNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyDrugNotFound, err)
	case errors.As(err, &infeasibleErr):
		builder.ErrorWithMessage(http.StatusUnprocessableEntity, infeasibleErr.Error(), err)
	case dilution.IsInputError(err):
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// StageOne handles POST /api/calculate/stage-one requests.
//
// @Summary      Stage-one calculation (weighing instruction)
// @Description  Resolves the drug, applies the potency correction and returns the estimated amount of drug to weigh out for the requested preparation volume.
// @Tags         Calculation
// @Accept       json
// @Produce      json
// @Param        request body dto.StageOneRequest true "Stage-one parameters"
// @Success      200 {object} dto.SuccessResponse{data=dto.StageOneResponse} "Weighing instruction"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Drug not found"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/calculate/stage-one [post]
func (h *Handler) StageOne(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.StageOneRequest](c)
	if err != nil {
		calcError(builder, err)
		return
	}

	resp, err := h.protocol.StageOne(c.Request.Context(), req)
	if err != nil {
		calcError(builder, err)
		return
	}
	builder.SuccessOK(resp)
}

// StageTwo handles POST /api/calculate/stage-two requests.
//
// @Summary      Stage-two calculation (final dilution instructions)
// @Description  Takes the actually weighed mass and returns the complete dilution instruction set, including stock, working solution and intermediate dilution volumes where applicable.
// @Tags         Calculation
// @Accept       json
// @Produce      json
// @Param        request body dto.StageTwoRequest true "Stage-two parameters"
// @Success      200 {object} dto.SuccessResponse{data=dto.StageTwoResponse} "Dilution instructions"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Drug not found"
// @Failure      422 {object} dto.ErrorResponse "Infeasible preparation"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/calculate/stage-two [post]
func (h *Handler) StageTwo(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.StageTwoRequest](c)
	if err != nil {
		calcError(builder, err)
		return
	}

	resp, err := h.protocol.StageTwo(c.Request.Context(), req)
	if err != nil {
		calcError(builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, model.ActionStageTwo, "Dilution calculation completed", map[string]interface{}{
				"drug_id": req.DrugID,
				"pathway": string(resp.Pathway),
			})
		}
	}
	builder.SuccessOK(resp)
}

// Batch handles POST /api/batch requests.
//
// @Summary      Batch calculation from CSV
// @Description  Processes a semicolon-separated batch file where every row is a multi-drug run. Upload the file as multipart form field "file" or post the CSV as the raw request body. Failed drugs are reported in place without aborting the batch.
// @Tags         Calculation
// @Accept       mpfd
// @Produce      json
// @Param        file formData file false "Batch CSV file"
// @Success      200 {object} dto.SuccessResponse{data=dto.BatchResponse} "Batch results"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed batch file"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/batch [post]
func (h *Handler) Batch(c *gin.Context) {
	builder := NewResponseBuilder(c)

	reader, closeFn, err := batchReader(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	defer closeFn()

	resp, err := h.batch.Process(c.Request.Context(), reader)
	if err != nil {
		calcError(builder, err)
		return
	}
	builder.SuccessOK(resp)
}

// batchReader returns the batch payload: the uploaded "file" form field
// when present, the raw request body otherwise.
func batchReader(c *gin.Context) (io.Reader, func(), error) {
	file, _, err := c.Request.FormFile("file")
	if err == nil {
		return file, func() { _ = file.Close() }, nil
	}
	if c.Request.Body == nil {
		return nil, nil, errors.New("empty batch payload")
	}
	return c.Request.Body, func() {}, nil
}

// ConvertUnit handles POST /api/units/convert requests.
//
// @Summary      Convert between measurement units
// @Description  Converts a value between two units of the same dimension (mass, volume, concentration or molecular weight).
// @Tags         Units
// @Accept       json
// @Produce      json
// @Param        request body dto.ConvertUnitRequest true "Conversion request"
// @Success      200 {object} dto.SuccessResponse{data=dto.ConvertUnitResponse} "Converted value"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown or mismatched units"
// @Router       /api/units/convert [post]
func (h *Handler) ConvertUnit(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ConvertUnitRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	value, err := dilution.Normalize(req.Value, dilution.Unit(req.From), dilution.Unit(req.To))
	if err != nil {
		calcError(builder, err)
		return
	}
	builder.SuccessOK(dto.ConvertUnitResponse{Value: value, Unit: req.To})
}

// ListUnits handles GET /api/units requests.
//
// @Summary      List supported measurement units
// @Description  Returns the supported units grouped by dimension.
// @Tags         Units
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Supported units by dimension"
// @Router       /api/units [get]
func (h *Handler) ListUnits(c *gin.Context) {
	builder := NewResponseBuilder(c)
	units := map[string][]dilution.Unit{
		"mass":             dilution.SupportedUnits(dilution.CanonicalMass),
		"volume":           dilution.SupportedUnits(dilution.CanonicalVolume),
		"concentration":    dilution.SupportedUnits(dilution.CanonicalConcentration),
		"molecular_weight": dilution.SupportedUnits(dilution.CanonicalMolecularWeight),
	}
	for _, group := range units {
		sort.Slice(group, func(i, j int) bool { return group[i] < group[j] })
	}
	builder.SuccessOK(units)
}
