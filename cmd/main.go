package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers/cancel_appointment"
	clearDraftHandler "github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers/clear_draft"
	createAppointmentHandler "github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers/create_appointment"
	createBlockHandler "github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers/create_block"
	createDraftHandler "github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers/create_draft"
	getAvailableSlotsHandler "github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers/get_available_slots"
	getBarbersHandler "github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers/get_barbers"
	getClientAppointmentsHandler "github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers/get_client_appointments"
	getDayScheduleHandler "github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers/get_day_schedule"
	getDraftHandler "github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers/get_draft"
	getServicesHandler "github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers/get_services"
	streamDayIndicatorHandler "github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers/stream_day_indicator"
	updateAppointmentHandler "github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers/update_appointment"
	updateDraftHandler "github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers/update_draft"
	"github.com/Evelo00/barbershop-Front-sub000/internal/api/middleware"
	"github.com/Evelo00/barbershop-Front-sub000/internal/config"
	availabilityCache "github.com/Evelo00/barbershop-Front-sub000/internal/infra/cache/availability"
	draftRepo "github.com/Evelo00/barbershop-Front-sub000/internal/infra/storage/draft"
	"github.com/Evelo00/barbershop-Front-sub000/internal/integrations/bookingapi"
	"github.com/Evelo00/barbershop-Front-sub000/internal/schedule"
	appointmentsService "github.com/Evelo00/barbershop-Front-sub000/internal/service/appointments"
	catalogService "github.com/Evelo00/barbershop-Front-sub000/internal/service/catalog"
	draftsService "github.com/Evelo00/barbershop-Front-sub000/internal/service/drafts"
	createAppointmentUC "github.com/Evelo00/barbershop-Front-sub000/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/Evelo00/barbershop-Front-sub000/internal/usecase/get_available_slots"
	getDayScheduleUC "github.com/Evelo00/barbershop-Front-sub000/internal/usecase/get_day_schedule"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/dbmetrics"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/logger"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/metrics"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/txmanager"
)

// Черновики, не обновлявшиеся сутки, считаются брошенными
const draftMaxAgeHours = 24

// windowTable конвертирует недельные часы из конфига в таблицу окон
func windowTable(w config.WeekHours) schedule.WindowTable {
	day := func(d config.DayHours) schedule.Window {
		return schedule.Window{StartHour: d.Start, EndHour: d.End}
	}
	return schedule.NewWindowTable(
		day(w.Sunday), day(w.Monday), day(w.Tuesday), day(w.Wednesday),
		day(w.Thursday), day(w.Friday), day(w.Saturday),
	)
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting barbershop front service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (черновики бронирований)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент backend API бронирований
	apiClient := bookingapi.NewClient(
		cfg.BookingAPI.URL,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		apiClient = apiClient.WithMetrics(metricsCollector)
	}
	log.Info("BookingAPI client initialized (url=%s, timeout=%ds)", cfg.BookingAPI.URL, cfg.BookingAPI.Timeout)

	// Инициализируем Redis кеш доступности (если включен)
	var availCache *availabilityCache.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		availCache = availabilityCache.New(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		log.Info("Availability cache enabled (address=%s, ttl=%ds)", cfg.Redis.Address, cfg.Redis.TTLSeconds)
	}

	// Инициализируем репозиторий черновиков и transaction manager
	var (
		draftRepository *draftRepo.Repository
		txMgr           *txmanager.TransactionManager
	)
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		draftRepository = draftRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		draftRepository = draftRepo.NewRepository(db)
		txMgr = txmanager.NewFromSQLDB(db)
	}

	// Периодическая чистка брошенных черновиков
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-cleanupCtx.Done():
				return
			case <-ticker.C:
				deleted, err := draftRepository.DeleteExpired(cleanupCtx, draftMaxAgeHours)
				if err != nil {
					log.Error("Draft cleanup failed: %v", err)
					continue
				}
				if deleted > 0 {
					log.Info("Draft cleanup: %d expired drafts removed", deleted)
				}
			}
		}
	}()

	// Таблицы рабочих окон: публичная витрина и админка различаются
	publicWindows := windowTable(cfg.Schedule.PublicHours)
	adminWindows := windowTable(cfg.Schedule.AdminHours)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(apiClient, log)
	draftsSvc := draftsService.NewService(draftRepository, log)

	var appointmentsCache appointmentsService.AvailabilityCache
	if availCache != nil {
		appointmentsCache = availCache
	}
	appointmentsSvc := appointmentsService.NewService(apiClient, appointmentsCache, log)

	// Кеш для use cases (интерфейсы принимают nil)
	var slotsCache getAvailableSlotsUC.AvailabilityCache
	var createCache createAppointmentUC.AvailabilityCache
	if availCache != nil {
		slotsCache = availCache
		createCache = availCache
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		apiClient,
		slotsCache,
		publicWindows,
		cfg.Schedule.GranularityMinutes,
		log,
	)
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		apiClient,
		adminWindows,
		cfg.Schedule.SlotHeightPx,
		cfg.Schedule.GranularityMinutes,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		apiClient,
		draftRepository,
		txMgr,
		createCache,
		publicWindows,
		log,
	)

	// Инициализируем handlers
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getBarbers := getBarbersHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	createDraft := createDraftHandler.NewHandler(draftsSvc, log)
	getDraft := getDraftHandler.NewHandler(draftsSvc, log)
	updateDraft := updateDraftHandler.NewHandler(draftsSvc, log)
	clearDraft := clearDraftHandler.NewHandler(draftsSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	streamDayIndicator := streamDayIndicatorHandler.NewHandler(
		adminWindows, cfg.Schedule.SlotHeightPx, cfg.Schedule.GranularityMinutes, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	createBlock := createBlockHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг и барберов
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbers", getBarbers.Handle).Methods(http.MethodGet)

	// Доступные слоты для записи
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Черновики мастера бронирования
	api.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{draftId}", updateDraft.Handle).Methods(http.MethodPut)
	api.HandleFunc("/drafts/{draftId}", clearDraft.Handle).Methods(http.MethodDelete)

	// Создание записи (подтверждение черновика или прямое)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// История записей клиента
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Админка (требует роль admin) ---
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminOnly)

	// Дневная сетка записей
	admin.HandleFunc("/day-schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// Индикатор текущего времени (Server-Sent Events)
	admin.HandleFunc("/day-schedule/indicator", streamDayIndicator.Handle).Methods(http.MethodGet)

	// Редактирование и отмена записей
	admin.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Блокировки интервалов барберов
	admin.HandleFunc("/blocks", createBlock.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
