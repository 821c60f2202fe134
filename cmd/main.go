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

	cancelBookingHandler "github.com/m04kA/CMS-SchedulingService/internal/api/handlers/cancel_booking"
	checkScheduleHandler "github.com/m04kA/CMS-SchedulingService/internal/api/handlers/check_schedule"
	createBookingHandler "github.com/m04kA/CMS-SchedulingService/internal/api/handlers/create_booking"
	generateSeriesHandler "github.com/m04kA/CMS-SchedulingService/internal/api/handlers/generate_series"
	getAssigneeBookingsHandler "github.com/m04kA/CMS-SchedulingService/internal/api/handlers/get_assignee_bookings"
	getBookingHandler "github.com/m04kA/CMS-SchedulingService/internal/api/handlers/get_booking"
	getSeriesHandler "github.com/m04kA/CMS-SchedulingService/internal/api/handlers/get_series"
	updateBookingStatusHandler "github.com/m04kA/CMS-SchedulingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/CMS-SchedulingService/internal/api/middleware"
	"github.com/m04kA/CMS-SchedulingService/internal/config"
	bookingRepo "github.com/m04kA/CMS-SchedulingService/internal/infra/storage/booking"
	unavailabilityRepo "github.com/m04kA/CMS-SchedulingService/internal/infra/storage/unavailability"
	catalogServiceClient "github.com/m04kA/CMS-SchedulingService/internal/integrations/catalogservice"
	bookingsService "github.com/m04kA/CMS-SchedulingService/internal/service/bookings"
	pricingService "github.com/m04kA/CMS-SchedulingService/internal/service/pricing"
	checkScheduleUC "github.com/m04kA/CMS-SchedulingService/internal/usecase/check_schedule"
	createBookingUC "github.com/m04kA/CMS-SchedulingService/internal/usecase/create_booking"
	generateSeriesUC "github.com/m04kA/CMS-SchedulingService/internal/usecase/generate_series"
	"github.com/m04kA/CMS-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/CMS-SchedulingService/pkg/logger"
	"github.com/m04kA/CMS-SchedulingService/pkg/metrics"
	"github.com/m04kA/CMS-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/CMS-SchedulingService/pkg/txmanager"
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

	log.Info("Starting CMS-SchedulingService...")
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

	// Инициализируем клиент каталога услуг
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog service client initialized (url=%s, timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		unavailRepository *unavailabilityRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		unavailRepository = unavailabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		unavailRepository = unavailabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	pricingSvc := pricingService.NewService(catalogClient, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		unavailRepository,
		pricingSvc,
		txMgr,
		log,
	)

	generateSeriesUseCase := generateSeriesUC.NewUseCase(createBookingUseCase, log)

	checkScheduleUseCase := checkScheduleUC.NewUseCase(
		bookingRepository,
		unavailRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	generateSeries := generateSeriesHandler.NewHandler(generateSeriesUseCase, log)
	checkSchedule := checkScheduleHandler.NewHandler(checkScheduleUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getSeries := getSeriesHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getAssigneeBookings := getAssigneeBookingsHandler.NewHandler(bookingSvc, log)

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

	// Консультативная проверка интервала расписания
	api.HandleFunc("/schedule/check", checkSchedule.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Генерация повторяющейся серии
	protected.HandleFunc("/bookings/series", generateSeries.Handle).Methods(http.MethodPost)

	// Получение серии по ID группы
	protected.HandleFunc("/bookings/series/{groupId}", getSeries.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Переход статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Расписания исполнителей ---
	// Расписание сотрудника
	protected.HandleFunc("/staff/{staffId}/bookings", getAssigneeBookings.HandleStaff).Methods(http.MethodGet)

	// Расписание бригады
	protected.HandleFunc("/teams/{teamId}/bookings", getAssigneeBookings.HandleTeam).Methods(http.MethodGet)

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
