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

	activateShiftHandler "github.com/agendafacil/AF-SchedulingService/internal/api/handlers/activate_shift"
	createAppointmentHandler "github.com/agendafacil/AF-SchedulingService/internal/api/handlers/create_appointment"
	createShiftHandler "github.com/agendafacil/AF-SchedulingService/internal/api/handlers/create_shift"
	deactivateShiftHandler "github.com/agendafacil/AF-SchedulingService/internal/api/handlers/deactivate_shift"
	deleteShiftHandler "github.com/agendafacil/AF-SchedulingService/internal/api/handlers/delete_shift"
	getAppointmentHandler "github.com/agendafacil/AF-SchedulingService/internal/api/handlers/get_appointment"
	getBookableTimesHandler "github.com/agendafacil/AF-SchedulingService/internal/api/handlers/get_bookable_times"
	listAppointmentsHandler "github.com/agendafacil/AF-SchedulingService/internal/api/handlers/list_appointments"
	listShiftsHandler "github.com/agendafacil/AF-SchedulingService/internal/api/handlers/list_shifts"
	updateAppointmentStatusHandler "github.com/agendafacil/AF-SchedulingService/internal/api/handlers/update_appointment_status"
	"github.com/agendafacil/AF-SchedulingService/internal/api/middleware"
	"github.com/agendafacil/AF-SchedulingService/internal/config"
	appointmentRepo "github.com/agendafacil/AF-SchedulingService/internal/infra/storage/appointment"
	shiftRepo "github.com/agendafacil/AF-SchedulingService/internal/infra/storage/shift"
	catalogClient "github.com/agendafacil/AF-SchedulingService/internal/integrations/catalog"
	slotGenClient "github.com/agendafacil/AF-SchedulingService/internal/integrations/slotgen"
	appointmentsService "github.com/agendafacil/AF-SchedulingService/internal/service/appointments"
	shiftsService "github.com/agendafacil/AF-SchedulingService/internal/service/shifts"
	activateShiftUC "github.com/agendafacil/AF-SchedulingService/internal/usecase/activate_shift"
	createAppointmentUC "github.com/agendafacil/AF-SchedulingService/internal/usecase/create_appointment"
	createShiftUC "github.com/agendafacil/AF-SchedulingService/internal/usecase/create_shift"
	getBookableTimesUC "github.com/agendafacil/AF-SchedulingService/internal/usecase/get_bookable_times"
	"github.com/agendafacil/AF-SchedulingService/pkg/dbmetrics"
	"github.com/agendafacil/AF-SchedulingService/pkg/logger"
	"github.com/agendafacil/AF-SchedulingService/pkg/metrics"
	"github.com/agendafacil/AF-SchedulingService/pkg/simpletxmanager"
	"github.com/agendafacil/AF-SchedulingService/pkg/txmanager"
	"github.com/agendafacil/AF-SchedulingService/pkg/tznorm"
)

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

	log.Info("Starting AF-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Нормализатор отображаемого времени
	normalizer := tznorm.New(cfg.Scheduling.DisplayOffsetHours)
	log.Info("Display time normalizer initialized (offset=%dh)", cfg.Scheduling.DisplayOffsetHours)

	// Инициализируем интеграционных клиентов
	slotGen := slotGenClient.NewClient(
		cfg.SlotGenerator.URL,
		time.Duration(cfg.SlotGenerator.Timeout)*time.Second,
		log,
	)
	catalog := catalogClient.NewClient(
		cfg.Catalog.URL,
		time.Duration(cfg.Catalog.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (SlotGenerator=%s timeout=%ds, Catalog=%s timeout=%ds)",
		cfg.SlotGenerator.URL, cfg.SlotGenerator.Timeout, cfg.Catalog.URL, cfg.Catalog.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		shiftRepository       *shiftRepo.Repository
		appointmentRepository *appointmentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		shiftRepository = shiftRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		shiftRepository = shiftRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	shiftSvc := shiftsService.NewService(shiftRepository, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, normalizer, log)

	// Инициализируем use cases
	createShiftUseCase := createShiftUC.NewUseCase(
		shiftRepository,
		txMgr,
		log,
	)
	activateShiftUseCase := activateShiftUC.NewUseCase(
		shiftRepository,
		txMgr,
		log,
	)
	getBookableTimesUseCase := getBookableTimesUC.NewUseCase(
		shiftRepository,
		appointmentRepository,
		catalog,
		slotGen,
		normalizer,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		shiftRepository,
		catalog,
		txMgr,
		normalizer,
		log,
	)

	// Инициализируем handlers
	createShift := createShiftHandler.NewHandler(createShiftUseCase, log)
	activateShift := activateShiftHandler.NewHandler(activateShiftUseCase, log)
	deactivateShift := deactivateShiftHandler.NewHandler(shiftSvc, log)
	deleteShift := deleteShiftHandler.NewHandler(shiftSvc, log)
	listShifts := listShiftsHandler.NewHandler(shiftSvc, log)
	getBookableTimes := getBookableTimesHandler.NewHandler(getBookableTimesUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)

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

	// Список смен заведения
	api.HandleFunc("/establishments/{establishmentId}/shifts",
		listShifts.Handle).Methods(http.MethodGet)

	// Доступные для записи времена
	api.HandleFunc("/establishments/{establishmentId}/bookable-times",
		getBookableTimes.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Смены ---
	// Создание смены
	protected.HandleFunc("/establishments/{establishmentId}/shifts",
		createShift.Handle).Methods(http.MethodPost)

	// Активация смены (с проверкой конфликтов дней недели)
	protected.HandleFunc("/shifts/{shiftId}/activate", activateShift.Handle).Methods(http.MethodPatch)

	// Деактивация смены (без проверок)
	protected.HandleFunc("/shifts/{shiftId}/deactivate", deactivateShift.Handle).Methods(http.MethodPatch)

	// Удаление смены
	protected.HandleFunc("/shifts/{shiftId}", deleteShift.Handle).Methods(http.MethodDelete)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Обновление статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/status",
		updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// Список записей заведения
	protected.HandleFunc("/establishments/{establishmentId}/appointments",
		listAppointments.Handle).Methods(http.MethodGet)

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
