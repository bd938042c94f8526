package request

import (
	"context"
	"encoding/json"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"react-golang/internal/service/scheduling"
	"react-golang/internal/storage"
)

type MockOvertimeStorage struct {
	mock.Mock
}

func (m *MockOvertimeStorage) GetScheduleItem(ctx context.Context, id string) (storage.ScheduleItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(storage.ScheduleItem), args.Error(1)
}

func (m *MockOvertimeStorage) ListShifts(ctx context.Context) ([]storage.Shift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Shift), args.Error(1)
}

func (m *MockOvertimeStorage) AppendOvertime(ctx context.Context, itemID string, rec storage.OvertimeRecord) error {
	args := m.Called(ctx, itemID, rec)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
}

func doRequest(handler http.HandlerFunc, id, body string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Post("/api/schedule/{id}/overtime", handler)

	req := httptest.NewRequest(http.MethodPost, "/api/schedule/"+id+"/overtime", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequestOvertime_Success(t *testing.T) {
	item := storage.ScheduleItem{
		ID:      "po-1-step-1",
		EndDate: time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC),
	}
	shifts := []storage.Shift{
		{ID: "shift-1", IsActive: true, Timing: storage.ShiftTiming{OvertimeAllowed: true, MaxOvertimeHours: 4}},
	}

	mockStorage := new(MockOvertimeStorage)
	mockStorage.On("GetScheduleItem", mock.Anything, "po-1-step-1").Return(item, nil)
	mockStorage.On("ListShifts", mock.Anything).Return(shifts, nil)
	mockStorage.On("AppendOvertime", mock.Anything, "po-1-step-1", mock.Anything).Return(nil)

	handler := RequestOvertime(discardLogger(), mockStorage, scheduling.DefaultOvertimePolicy())

	rec := doRequest(handler, "po-1-step-1", `{"hours":2,"reason":"горящий заказ"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var out storage.OvertimeRecord
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "po-1-step-1", out.ScheduleItemID)
	assert.Equal(t, "shift-1", out.ShiftID)
	assert.Equal(t, 2.0, out.PlannedOvertimeHours)
	assert.Equal(t, 1.25, out.CostMultiplier)
	assert.Equal(t, storage.OvertimePlanned, out.Status)

	mockStorage.AssertCalled(t, "AppendOvertime", mock.Anything, "po-1-step-1", mock.Anything)
}

// часы сверх лимита смены — 422 и никакой записи
func TestRequestOvertime_PolicyViolation(t *testing.T) {
	item := storage.ScheduleItem{ID: "po-1-step-1"}
	shifts := []storage.Shift{
		{ID: "shift-1", IsActive: true, Timing: storage.ShiftTiming{OvertimeAllowed: true, MaxOvertimeHours: 4}},
	}

	mockStorage := new(MockOvertimeStorage)
	mockStorage.On("GetScheduleItem", mock.Anything, "po-1-step-1").Return(item, nil)
	mockStorage.On("ListShifts", mock.Anything).Return(shifts, nil)

	handler := RequestOvertime(discardLogger(), mockStorage, scheduling.DefaultOvertimePolicy())

	rec := doRequest(handler, "po-1-step-1", `{"hours":5,"reason":"не успеваем"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var out map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "policy_violation", out["error"])

	mockStorage.AssertNotCalled(t, "AppendOvertime", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestOvertime_OvertimeForbiddenByShift(t *testing.T) {
	item := storage.ScheduleItem{ID: "po-1-step-1"}
	shifts := []storage.Shift{
		{ID: "shift-1", IsActive: true, Timing: storage.ShiftTiming{OvertimeAllowed: false}},
	}

	mockStorage := new(MockOvertimeStorage)
	mockStorage.On("GetScheduleItem", mock.Anything, "po-1-step-1").Return(item, nil)
	mockStorage.On("ListShifts", mock.Anything).Return(shifts, nil)

	handler := RequestOvertime(discardLogger(), mockStorage, scheduling.DefaultOvertimePolicy())

	rec := doRequest(handler, "po-1-step-1", `{"hours":1,"reason":"хоть часик"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRequestOvertime_ItemNotFound(t *testing.T) {
	mockStorage := new(MockOvertimeStorage)
	mockStorage.On("GetScheduleItem", mock.Anything, "no-such-item").
		Return(storage.ScheduleItem{}, assert.AnError)

	handler := RequestOvertime(discardLogger(), mockStorage, scheduling.DefaultOvertimePolicy())

	rec := doRequest(handler, "no-such-item", `{"hours":2}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
