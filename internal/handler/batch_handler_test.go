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
	"github.com/bimbel-hq/rostering-api/internal/models"
)

type batchServiceMock struct {
	resp *dto.BatchUpdateResponse
	err  error
	got  *dto.BatchUpdateRequest
}

func (m *batchServiceMock) Apply(_ context.Context, req *dto.BatchUpdateRequest) (*dto.BatchUpdateResponse, error) {
	m.got = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func TestBatchHandlerApply(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &batchServiceMock{resp: &dto.BatchUpdateResponse{
		WeekID: "2026-W01",
		Mutations: []models.BatchMutation{
			{Key: "alice@x.com", BusyScheduleArr: []int64{2, 7}, Type: models.KindStudent},
		},
	}}
	handler := NewBatchHandler(mock)

	body, _ := json.Marshal(dto.BatchUpdateRequest{
		WeekID: "2026-W01",
		Toggles: []dto.SlotToggle{
			{Key: "alice@x.com", Slot: 7, Busy: true},
		},
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPut, "/busy/batch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Apply(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mock.got)
	assert.Equal(t, "2026-W01", mock.got.WeekID)

	var envelope struct {
		Data dto.BatchUpdateResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Mutations, 1)
	assert.Equal(t, []int64{2, 7}, envelope.Data.Mutations[0].BusyScheduleArr)
}

func TestBatchHandlerApplyInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewBatchHandler(&batchServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPut, "/busy/batch", bytes.NewReader([]byte(`invalid`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Apply(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
