package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpdst/dst-service/internal/domain/dto"
	"github.com/openpdst/dst-service/internal/i18n"
	"github.com/openpdst/dst-service/internal/middleware"
)

func TestRequestBuilder_Bind(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		body         string
		expectedDrug string
		expectError  bool
	}{
		{
			name:         "valid request",
			body:         `{"drug_id": "inh", "purchased_molecular_weight": 137.14, "stock_volume": 10}`,
			expectedDrug: "inh",
			expectError:  false,
		},
		{
			name:        "invalid JSON",
			body:        `{"drug_id": invalid}`,
			expectError: true,
		},
		{
			name:        "empty body",
			body:        ``,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			c.Request = req

			builder := NewRequestBuilder(c)
			var request dto.StageOneRequest
			err := builder.Bind(&request)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedDrug, request.DrugID)
			}
		})
	}
}

func TestUnmarshalFromBytes(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		expectError bool
	}{
		{
			name:        "valid conversion request",
			data:        `{"value": 1.5, "from": "mg", "to": "ug"}`,
			expectError: false,
		},
		{
			name:        "malformed JSON",
			data:        `{"value": }`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := UnmarshalFromBytes[dto.ConvertUnitRequest]([]byte(tt.data))
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, req)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 1.5, req.Value)
				assert.Equal(t, "mg", req.From)
			}
		})
	}
}

func TestUnmarshalFromReader(t *testing.T) {
	reader := strings.NewReader(`{"drug_id": "rif", "purchased_molecular_weight": 822.94, "stock_volume": 5}`)
	req, err := UnmarshalFromReader[dto.StageOneRequest](reader)
	require.NoError(t, err)
	assert.Equal(t, "rif", req.DrugID)
	assert.Equal(t, 822.94, req.PurchasedMolecularWeight)
}

func TestBuildRequestAndValidate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid request passes validation",
			body:        `{"drug_id": "inh", "purchased_molecular_weight": 137.14, "stock_volume": 10}`,
			expectError: false,
		},
		{
			name:        "validation failure",
			body:        `{"drug_id": "inh", "purchased_molecular_weight": -1, "stock_volume": 10}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			c.Request = req

			parsed, err := BuildRequestAndValidate[dto.StageOneRequest](c)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "inh", parsed.DrugID)
			}
		})
	}
}

func TestResponseBuilder_ErrorWithKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(string(middleware.RequestIDKey), "req-123")

	builder := NewResponseBuilder(c)
	builder.Error(http.StatusNotFound, i18n.ErrKeyDrugNotFound, assert.AnError)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
	assert.Equal(t, "Drug not found in reference table", resp.Message)
}

func TestResponseBuilder_ErrorWithCustomMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	builder := NewResponseBuilder(c)
	builder.ErrorWithMessage(http.StatusBadRequest, "stock_volume: must be greater than zero", assert.AnError)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
	assert.Equal(t, "stock_volume: must be greater than zero", resp.Message)
}

func TestResponseBuilder_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	builder := NewResponseBuilder(c)
	builder.SuccessOK(map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "world", data["hello"])
}

func TestMarshalJSON(t *testing.T) {
	data, err := MarshalJSON(dto.ConvertUnitResponse{Value: 1500, Unit: "ug"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"value":1500`)
}

func TestMarshalToWriter(t *testing.T) {
	var buf bytes.Buffer
	err := MarshalToWriter(&buf, dto.ConvertUnitResponse{Value: 1500, Unit: "ug"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"unit":"ug"`)
}
