package stream_day_indicator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers"
	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/internal/schedule"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	windows      schedule.WindowTable
	slotHeightPx float64
	granularity  int
	interval     time.Duration
	logger       Logger
}

func NewHandler(windows schedule.WindowTable, slotHeightPx float64, granularityMinutes int, logger Logger) *Handler {
	if slotHeightPx <= 0 {
		slotHeightPx = domain.DefaultSlotHeightPx
	}
	if granularityMinutes <= 0 {
		granularityMinutes = domain.DefaultGranularityMinutes
	}
	return &Handler{
		windows:      windows,
		slotHeightPx: slotHeightPx,
		granularity:  granularityMinutes,
		interval:     schedule.DefaultIndicatorInterval,
		logger:       logger,
	}
}

// indicatorEvent payload одного SSE события
type indicatorEvent struct {
	IndicatorTop *float64 `json:"indicatorTop"`
}

// Handle GET /api/v1/day-schedule/indicator
// Query params: date (required, YYYY-MM-DD)
//
// Server-Sent Events: позиция индикатора текущего времени отправляется
// сразу и затем каждые 30 секунд, пока клиент не закроет соединение.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /day-schedule/indicator - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /day-schedule/indicator - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /day-schedule/indicator - ResponseWriter does not support flushing")
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	layout := schedule.NewLayout(h.windows.ResolveDayWindow(date), h.slotHeightPx, h.granularity)

	h.logger.Info("GET /day-schedule/indicator - Stream started: date=%s", dateStr)

	err = schedule.Tick(r.Context(), h.interval, func(now time.Time) error {
		payload, err := json.Marshal(indicatorEvent{IndicatorTop: layout.CurrentTimeIndicatorTop(now, date)})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})

	// Закрытие соединения клиентом — штатное завершение потока
	if err != nil && !errors.Is(err, context.Canceled) {
		h.logger.Warn("GET /day-schedule/indicator - Stream ended with error: date=%s, error=%v", dateStr, err)
		return
	}

	h.logger.Info("GET /day-schedule/indicator - Stream closed: date=%s", dateStr)
}
