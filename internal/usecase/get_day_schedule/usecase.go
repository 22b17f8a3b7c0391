package get_day_schedule

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/internal/schedule"
)

// UseCase use case построения дневной сетки записей для админки
type UseCase struct {
	apiClient    BookingAPIClient
	windows      schedule.WindowTable
	slotHeightPx float64
	granularity  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apiClient BookingAPIClient,
	windows schedule.WindowTable,
	slotHeightPx float64,
	granularityMinutes int,
	logger Logger,
) *UseCase {
	if slotHeightPx <= 0 {
		slotHeightPx = domain.DefaultSlotHeightPx
	}
	if granularityMinutes <= 0 {
		granularityMinutes = domain.DefaultGranularityMinutes
	}
	return &UseCase{
		apiClient:    apiClient,
		windows:      windows,
		slotHeightPx: slotHeightPx,
		granularity:  granularityMinutes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения дневной сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: date=%s, barber=%v", req.Date.Format(domain.DateFormat), req.BarberID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySchedule: validation failed: %v", err)
		return nil, err
	}

	// Барберы и записи не зависят друг от друга: запрашиваем параллельно,
	// первая же ошибка отменяет второй запрос
	var (
		barbers      []domain.Barber
		appointments []*domain.Appointment
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		barbers, err = uc.apiClient.GetBarbers(gCtx)
		if err != nil {
			return fmt.Errorf("failed to get barbers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		appointments, err = uc.apiClient.GetAppointmentsForDay(gCtx, req.Date, req.BarberID)
		if err != nil {
			return fmt.Errorf("failed to get appointments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("GetDaySchedule: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if req.BarberID != nil {
		barbers = filterBarber(barbers, *req.BarberID)
		if len(barbers) == 0 {
			uc.logger.Warn("GetDaySchedule: barber id=%d not found", *req.BarberID)
			return nil, ErrBarberNotFound
		}
	}

	window := uc.windows.ResolveDayWindow(req.Date)
	layout := schedule.NewLayout(window, uc.slotHeightPx, uc.granularity)

	columns := uc.buildColumns(layout, barbers, appointments)

	rows := schedule.GenerateSlots(window, uc.granularity)
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Display
	}

	now := uc.timeProvider.Now()

	uc.logger.Info("GetDaySchedule: %d columns, %d appointments for date=%s",
		len(columns), len(appointments), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:         req.Date,
		Window:       window,
		SlotHeightPx: layout.SlotHeightPx,
		PxPerMinute:  layout.PxPerMinute,
		RowLabels:    labels,
		Columns:      columns,
		IndicatorTop: layout.CurrentTimeIndicatorTop(now, req.Date),
	}, nil
}

// buildColumns раскладывает записи по колонкам барберов с геометрией.
// Отмененные записи в сетке не показываются, блокировки — показываются.
// Записи без барбера на персональную сетку не попадают.
func (uc *UseCase) buildColumns(layout schedule.Layout, barbers []domain.Barber, appointments []*domain.Appointment) []BarberColumn {
	byBarber := make(map[int64][]AppointmentBox, len(barbers))
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if appt.BarberID == nil {
			uc.logger.Warn("GetDaySchedule: appointment id=%d has no barber, skipping", appt.ID)
			continue
		}
		box := layout.LayoutAppointment(appt)
		byBarber[*appt.BarberID] = append(byBarber[*appt.BarberID], AppointmentBox{
			Appointment: appt,
			Top:         box.Top,
			Height:      box.Height,
		})
	}

	columns := make([]BarberColumn, 0, len(barbers))
	for _, barber := range barbers {
		columns = append(columns, BarberColumn{
			BarberID:     barber.ID,
			BarberName:   barber.Name,
			PhotoURL:     barber.PhotoURL,
			Appointments: byBarber[barber.ID],
		})
	}
	return columns
}

func filterBarber(barbers []domain.Barber, barberID int64) []domain.Barber {
	for _, b := range barbers {
		if b.ID == barberID {
			return []domain.Barber{b}
		}
	}
	return nil
}
