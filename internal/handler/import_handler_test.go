package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbel-hq/rostering-api/internal/dto"
	appErrors "github.com/bimbel-hq/rostering-api/pkg/errors"
)

type importServiceMock struct {
	previewResp *dto.ImportPreviewResponse
	commitResp  *dto.ImportCommitResponse
	commitErr   error
	reportBody  []byte

	commitID string
}

func (m *importServiceMock) Preview(_ context.Context, req *dto.ImportPreviewRequest) (*dto.ImportPreviewResponse, error) {
	return m.previewResp, nil
}

func (m *importServiceMock) Commit(_ context.Context, previewID string) (*dto.ImportCommitResponse, error) {
	m.commitID = previewID
	if m.commitErr != nil {
		return nil, m.commitErr
	}
	return m.commitResp, nil
}

func (m *importServiceMock) Report(_ context.Context, previewID string) ([]byte, error) {
	return m.reportBody, nil
}

func TestImportHandlerPreview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &importServiceMock{previewResp: &dto.ImportPreviewResponse{PreviewID: "pv-1", WritableRows: 3}}
	handler := NewImportHandler(mock)

	body, _ := json.Marshal(dto.ImportPreviewRequest{Kind: "student", WeekID: "2026-W01", Text: "header\nrow"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/imports/preview", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Preview(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Data dto.ImportPreviewResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "pv-1", envelope.Data.PreviewID)
}

func TestImportHandlerPreviewInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewImportHandler(&importServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/imports/preview", bytes.NewReader([]byte(`invalid`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Preview(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportHandlerCommitExpired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &importServiceMock{commitErr: appErrors.Clone(appErrors.ErrPreviewExpired, "")}
	handler := NewImportHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/imports/pv-9/commit", nil)
	c.Params = gin.Params{{Key: "id", Value: "pv-9"}}

	handler.Commit(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "pv-9", mock.commitID)
}

func TestImportHandlerReportServesCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &importServiceMock{reportBody: []byte("email,name\nalice@x.com,Alice\n")}
	handler := NewImportHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/imports/pv-1/report", nil)
	c.Params = gin.Params{{Key: "id", Value: "pv-1"}}

	handler.Report(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "alice@x.com")
}
