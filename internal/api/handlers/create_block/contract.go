package create_block

import (
	"context"

	"github.com/Evelo00/barbershop-Front-sub000/internal/service/appointments/models"
)

type AppointmentsService interface {
	CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
