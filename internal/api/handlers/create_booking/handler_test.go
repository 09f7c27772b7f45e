package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	gotReq createBooking.Request
	resp   *createBooking.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func createdResponse() *createBooking.Response {
	return &createBooking.Response{
		Appointment: &domain.Appointment{
			ID:           42,
			BookingCode:  "GLOWSALON-A1B2C3",
			CustomerName: "Ivan Petrov",
			Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Time:         "14:00",
			Status:       domain.StatusPending,
			ServiceName:  "Haircut",
			ServicePrice: 50,
		},
		Time12: "2:00 PM",
	}
}

func TestHandler_Handle(t *testing.T) {
	t.Run("accepts slug field in the body", func(t *testing.T) {
		uc := &fakeUseCase{resp: createdResponse()}
		h := NewHandler(uc, noopLogger{})

		body := `{"slug":"glow-salon","serviceId":5,"customerName":"Ivan Petrov","date":"2026-03-02","time":"2:00 PM"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "glow-salon", uc.gotReq.Slug)
		assert.Equal(t, int64(5), uc.gotReq.ServiceID)

		var resp CreateBookingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "GLOWSALON-A1B2C3", resp.BookingCode)
		assert.Equal(t, "2:00 PM", resp.Time)
	})

	t.Run("rejects unknown body fields", func(t *testing.T) {
		uc := &fakeUseCase{resp: createdResponse()}
		h := NewHandler(uc, noopLogger{})

		body := `{"businessSlug":"glow-salon","serviceId":5,"customerName":"Ivan Petrov","date":"2026-03-02","time":"2:00 PM"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("slot taken maps to 409", func(t *testing.T) {
		uc := &fakeUseCase{err: createBooking.ErrSlotTaken}
		h := NewHandler(uc, noopLogger{})

		body := `{"slug":"glow-salon","serviceId":5,"customerName":"Ivan Petrov","date":"2026-03-02","time":"2:00 PM"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
