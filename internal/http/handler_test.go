package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openpdst/dst-service/internal/dilution"
	"github.com/openpdst/dst-service/internal/domain/dto"
	"github.com/openpdst/dst-service/internal/mocks"
	"github.com/openpdst/dst-service/internal/repository"
)

func setupCalcRouter(protocol *mocks.MockProtocolService, batch *mocks.MockBatchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(protocol, batch)
	api := router.Group("/api")
	api.POST("/calculate/stage-one", handler.StageOne)
	api.POST("/calculate/stage-two", handler.StageTwo)
	api.POST("/batch", handler.Batch)
	api.POST("/units/convert", handler.ConvertUnit)
	api.GET("/units", handler.ListUnits)
	return router
}

func TestHandler_StageOne(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *mocks.MockProtocolService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful calculation",
			body: `{"drug_id": "inh", "purchased_molecular_weight": 137.14, "stock_volume": 10}`,
			setupMock: func(m *mocks.MockProtocolService) {
				m.On("StageOne", mock.Anything, mock.AnythingOfType("*dto.StageOneRequest")).
					Return(&dto.StageOneResponse{
						DrugID:          "inh",
						DrugName:        "Isoniazid (INH)",
						Protocol:        "who-2022",
						Pathway:         "direct",
						Potency:         1.0,
						EstimatedWeight: 0.84,
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing stock volume fails validation",
			body:           `{"drug_id": "inh", "purchased_molecular_weight": 137.14}`,
			setupMock:      func(m *mocks.MockProtocolService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative molecular weight fails validation",
			body:           `{"drug_id": "inh", "purchased_molecular_weight": -1, "stock_volume": 10}`,
			setupMock:      func(m *mocks.MockProtocolService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "purchased_molecular_weight",
		},
		{
			name: "unknown drug",
			body: `{"drug_id": "nope", "purchased_molecular_weight": 137.14, "stock_volume": 10}`,
			setupMock: func(m *mocks.MockProtocolService) {
				m.On("StageOne", mock.Anything, mock.AnythingOfType("*dto.StageOneRequest")).
					Return(nil, repository.ErrDrugNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "internal error",
			body: `{"drug_id": "inh", "purchased_molecular_weight": 137.14, "stock_volume": 10}`,
			setupMock: func(m *mocks.MockProtocolService) {
				m.On("StageOne", mock.Anything, mock.AnythingOfType("*dto.StageOneRequest")).
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			protocolService := new(mocks.MockProtocolService)
			tt.setupMock(protocolService)
			router := setupCalcRouter(protocolService, new(mocks.MockBatchService))

			req := httptest.NewRequest(http.MethodPost, "/api/calculate/stage-one", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp.Data.(map[string]interface{})
				assert.Equal(t, "inh", data["drug_id"])
				assert.InDelta(t, 0.84, data["estimated_weight_mg"], 1e-9)
			} else if tt.expectedError != "" {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Contains(t, resp.Message, tt.expectedError)
			}
			protocolService.AssertExpectations(t)
		})
	}
}

func TestHandler_StageTwo(t *testing.T) {
	validBody := `{
		"drug_id": "inh",
		"purchased_molecular_weight": 137.14,
		"stock_volume": 10,
		"actual_weight": 0.86,
		"mgit_tubes": 2
	}`

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *mocks.MockProtocolService)
		expectedStatus int
	}{
		{
			name: "successful calculation",
			body: validBody,
			setupMock: func(m *mocks.MockProtocolService) {
				m.On("StageTwo", mock.Anything, mock.AnythingOfType("*dto.StageTwoRequest")).
					Return(&dto.StageTwoResponse{
						DrugID:   "inh",
						DrugName: "Isoniazid (INH)",
						Protocol: "who-2022",
						Result: &dilution.Result{
							Pathway:               dilution.PathwayDirect,
							Potency:               1.0,
							EstimatedWeight:       0.84,
							ActualWeight:          0.86,
							Tubes:                 2,
							WorkingSolutionVolume: 0.6,
							WorkingSolutionConc:   8.4,
							DiluentVolume:         10.238,
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing actual weight fails validation",
			body:           `{"drug_id": "inh", "purchased_molecular_weight": 137.14, "stock_volume": 10}`,
			setupMock:      func(m *mocks.MockProtocolService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "infeasible preparation",
			body: validBody,
			setupMock: func(m *mocks.MockProtocolService) {
				m.On("StageTwo", mock.Anything, mock.AnythingOfType("*dto.StageTwoRequest")).
					Return(nil, &dilution.InfeasiblePreparationError{Quantity: "working_solution_diluent_volume", Value: -0.4})
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "domain input error",
			body: validBody,
			setupMock: func(m *mocks.MockProtocolService) {
				m.On("StageTwo", mock.Anything, mock.AnythingOfType("*dto.StageTwoRequest")).
					Return(nil, &dilution.DomainError{Field: "stock_factor_target", Value: 0.5, Reason: "must be at least 1"})
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			protocolService := new(mocks.MockProtocolService)
			tt.setupMock(protocolService)
			router := setupCalcRouter(protocolService, new(mocks.MockBatchService))

			req := httptest.NewRequest(http.MethodPost, "/api/calculate/stage-two", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp.Data.(map[string]interface{})
				assert.Equal(t, "direct", data["pathway"])
				assert.InDelta(t, 0.6, data["working_solution_volume_ml"], 1e-9)
			}
			if tt.expectedStatus == http.StatusUnprocessableEntity {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeInfeasible, resp.Error)
			}
			protocolService.AssertExpectations(t)
		})
	}
}

func TestHandler_Batch_RawBody(t *testing.T) {
	batchService := new(mocks.MockBatchService)
	batchService.On("Process", mock.Anything, mock.Anything).
		Return(&dto.BatchResponse{
			Rows:      []dto.BatchRowResponse{{RowID: "1", Drugs: []dto.BatchDrugResult{}}},
			RowCount:  1,
			DrugCount: 0,
		}, nil)
	router := setupCalcRouter(new(mocks.MockProtocolService), batchService)

	csv := "1;run;inh;0.1;137.14;;10;;;0.86;2;\n"
	req := httptest.NewRequest(http.MethodPost, "/api/batch", strings.NewReader(csv))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["row_count"])
	batchService.AssertExpectations(t)
}

func TestHandler_Batch_MultipartUpload(t *testing.T) {
	batchService := new(mocks.MockBatchService)
	batchService.On("Process", mock.Anything, mock.Anything).
		Return(&dto.BatchResponse{RowCount: 2, DrugCount: 4}, nil)
	router := setupCalcRouter(new(mocks.MockProtocolService), batchService)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "batch.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("1;run;inh,rif;0.1,1.0;137.14,822.94;;10,10;;;0.86,8.5;2,2;\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/batch", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	batchService.AssertExpectations(t)
}

func TestHandler_Batch_ServiceError(t *testing.T) {
	batchService := new(mocks.MockBatchService)
	batchService.On("Process", mock.Anything, mock.Anything).
		Return(nil, &dto.ValidationError{Field: "row 1", Message: "expected 12 fields"})
	router := setupCalcRouter(new(mocks.MockProtocolService), batchService)

	req := httptest.NewRequest(http.MethodPost, "/api/batch", strings.NewReader("bad"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "expected 12 fields")
	batchService.AssertExpectations(t)
}

func TestHandler_ConvertUnit(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedValue  float64
		expectedUnit   string
	}{
		{
			name:           "mg to ug",
			body:           `{"value": 1.5, "from": "mg", "to": "ug"}`,
			expectedStatus: http.StatusOK,
			expectedValue:  1500,
			expectedUnit:   "ug",
		},
		{
			name:           "L to mL",
			body:           `{"value": 0.01, "from": "L", "to": "mL"}`,
			expectedStatus: http.StatusOK,
			expectedValue:  10,
			expectedUnit:   "mL",
		},
		{
			name:           "unknown unit",
			body:           `{"value": 1, "from": "stones", "to": "mg"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "dimension mismatch",
			body:           `{"value": 1, "from": "mg", "to": "mL"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing fields",
			body:           `{"value": 1}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	router := setupCalcRouter(new(mocks.MockProtocolService), new(mocks.MockBatchService))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/units/convert", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp.Data.(map[string]interface{})
				assert.InDelta(t, tt.expectedValue, data["value"], 1e-9)
				assert.Equal(t, tt.expectedUnit, data["unit"])
			}
		})
	}
}

func TestHandler_ListUnits(t *testing.T) {
	router := setupCalcRouter(new(mocks.MockProtocolService), new(mocks.MockBatchService))

	req := httptest.NewRequest(http.MethodGet, "/api/units", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	for _, dimension := range []string{"mass", "volume", "concentration", "molecular_weight"} {
		assert.Contains(t, data, dimension)
		assert.NotEmpty(t, data[dimension])
	}
}
