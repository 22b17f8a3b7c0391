package get_day_schedule

import (
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/internal/service/appointments/models"
	getDaySchedule "github.com/Evelo00/barbershop-Front-sub000/internal/usecase/get_day_schedule"
)

// DayScheduleResponse HTTP response model: дневная сетка, готовая к
// отрисовке без вычислений на клиенте
type DayScheduleResponse struct {
	Date         string         `json:"date"`
	StartHour    float64        `json:"startHour"`
	EndHour      float64        `json:"endHour"`
	SlotHeightPx float64        `json:"slotHeightPx"`
	PxPerMinute  float64        `json:"pxPerMinute"`
	RowLabels    []string       `json:"rowLabels"`
	Columns      []BarberColumn `json:"columns"`
	IndicatorTop *float64       `json:"indicatorTop,omitempty"`
}

// BarberColumn колонка сетки одного барбера
type BarberColumn struct {
	BarberID     int64            `json:"barberId"`
	BarberName   string           `json:"barberName"`
	PhotoURL     *string          `json:"photoUrl,omitempty"`
	Appointments []AppointmentBox `json:"appointments"`
}

// AppointmentBox запись с вычисленной геометрией
type AppointmentBox struct {
	models.AppointmentResponse
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string, barberID *int64) (*getDaySchedule.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getDaySchedule.Request{
		Date:     date,
		BarberID: barberID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	columns := make([]BarberColumn, len(resp.Columns))
	for i, col := range resp.Columns {
		boxes := make([]AppointmentBox, len(col.Appointments))
		for j, box := range col.Appointments {
			boxes[j] = AppointmentBox{
				AppointmentResponse: models.FromDomainAppointment(box.Appointment),
				Top:                 box.Top,
				Height:              box.Height,
			}
		}
		columns[i] = BarberColumn{
			BarberID:     col.BarberID,
			BarberName:   col.BarberName,
			PhotoURL:     col.PhotoURL,
			Appointments: boxes,
		}
	}

	return &DayScheduleResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		StartHour:    resp.Window.StartHour,
		EndHour:      resp.Window.EndHour,
		SlotHeightPx: resp.SlotHeightPx,
		PxPerMinute:  resp.PxPerMinute,
		RowLabels:    resp.RowLabels,
		Columns:      columns,
		IndicatorTop: resp.IndicatorTop,
	}
}
