package handler

import (
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
	appErrors "github.com/bimbel-hq/rostering-api/pkg/errors"
)

type availabilityServiceMock struct {
	gridResp   *dto.AvailabilityGridResponse
	gridErr    error
	rosterResp *dto.RosterResponse

	gridWeekID string
	gridGroup  []string
	rosterKind models.PersonKind
}

func (m *availabilityServiceMock) Grid(_ context.Context, weekID string, group []string) (*dto.AvailabilityGridResponse, error) {
	m.gridWeekID = weekID
	m.gridGroup = group
	if m.gridErr != nil {
		return nil, m.gridErr
	}
	return m.gridResp, nil
}

func (m *availabilityServiceMock) Roster(_ context.Context, weekID string, kind models.PersonKind, incompleteOnly bool) (*dto.RosterResponse, error) {
	m.rosterKind = kind
	return m.rosterResp, nil
}

func TestAvailabilityHandlerGrid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &availabilityServiceMock{gridResp: &dto.AvailabilityGridResponse{WeekID: "2026-W01"}}
	handler := NewAvailabilityHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/availability/grid?weekId=2026-W01&group=p-1,%20p-2", nil)

	handler.Grid(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2026-W01", mock.gridWeekID)
	assert.Equal(t, []string{"p-1", "p-2"}, mock.gridGroup)

	var envelope struct {
		Data dto.AvailabilityGridResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "2026-W01", envelope.Data.WeekID)
}

func TestAvailabilityHandlerGridNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &availabilityServiceMock{gridErr: appErrors.Clone(appErrors.ErrNotFound, "person p-9 not found in roster")}
	handler := NewAvailabilityHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/availability/grid?weekId=2026-W01&group=p-9", nil)

	handler.Grid(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAvailabilityHandlerRosterPassesKind(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &availabilityServiceMock{rosterResp: &dto.RosterResponse{WeekID: "2026-W01"}}
	handler := NewAvailabilityHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/availability/roster?weekId=2026-W01&kind=teacher&incomplete=true", nil)

	handler.Roster(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.KindTeacher, mock.rosterKind)
}
