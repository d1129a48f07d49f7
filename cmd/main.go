package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addRoomHandler "github.com/m04kA/HLB-AdminService/internal/api/handlers/add_room"
	blockDateHandler "github.com/m04kA/HLB-AdminService/internal/api/handlers/block_date"
	blockedDatesCalendarHandler "github.com/m04kA/HLB-AdminService/internal/api/handlers/blocked_dates_calendar"
	createRoomTypeHandler "github.com/m04kA/HLB-AdminService/internal/api/handlers/create_room_type"
	deleteContactMessageHandler "github.com/m04kA/HLB-AdminService/internal/api/handlers/delete_contact_message"
	deleteGalleryImageHandler "github.com/m04kA/HLB-AdminService/internal/api/handlers/delete_gallery_image"
	deleteRoomTypeHandler "github.com/m04kA/HLB-AdminService/internal/api/handlers/delete_room_type"
	getRoomOverviewHandler "github.com/m04kA/HLB-AdminService/internal/api/handlers/get_room_overview"
	listBlockedDatesHandler "github.com/m04kA/HLB-AdminService/internal/api/handlers/list_blocked_dates"
	listContactMessagesHandler "github.com/m04kA/HLB-AdminService/internal/api/handlers/list_contact_messages"
	listGalleryHandler "github.com/m04kA/HLB-AdminService/internal/api/handlers/list_gallery"
	listRoomTypesHandler "github.com/m04kA/HLB-AdminService/internal/api/handlers/list_room_types"
	unblockDateHandler "github.com/m04kA/HLB-AdminService/internal/api/handlers/unblock_date"
	updateRoomStatusHandler "github.com/m04kA/HLB-AdminService/internal/api/handlers/update_room_status"
	uploadGalleryImageHandler "github.com/m04kA/HLB-AdminService/internal/api/handlers/upload_gallery_image"
	"github.com/m04kA/HLB-AdminService/internal/api/middleware"
	"github.com/m04kA/HLB-AdminService/internal/config"
	dateStoreClient "github.com/m04kA/HLB-AdminService/internal/integrations/datestore"
	roomStoreClient "github.com/m04kA/HLB-AdminService/internal/integrations/roomstore"
	siteStoreClient "github.com/m04kA/HLB-AdminService/internal/integrations/sitestore"
	blockedDatesService "github.com/m04kA/HLB-AdminService/internal/service/blockeddates"
	contactsService "github.com/m04kA/HLB-AdminService/internal/service/contacts"
	galleryService "github.com/m04kA/HLB-AdminService/internal/service/gallery"
	roomsService "github.com/m04kA/HLB-AdminService/internal/service/rooms"
	getRoomOverviewUC "github.com/m04kA/HLB-AdminService/internal/usecase/get_room_overview"
	updateRoomStatusUC "github.com/m04kA/HLB-AdminService/internal/usecase/update_room_status"
	"github.com/m04kA/HLB-AdminService/pkg/logger"
	"github.com/m04kA/HLB-AdminService/pkg/metrics"
	"github.com/m04kA/HLB-AdminService/pkg/storemetrics"
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

	log.Info("Starting HLB-AdminService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Транспорт исходящих запросов к хранилищам (с метриками или без)
	var roomTransport, dateTransport, siteTransport http.RoundTripper
	if cfg.Metrics.Enabled {
		roomTransport = storemetrics.Wrap(nil, metricsCollector, "room_store")
		dateTransport = storemetrics.Wrap(nil, metricsCollector, "date_store")
		siteTransport = storemetrics.Wrap(nil, metricsCollector, "site_store")
		log.Info("Store metrics collection enabled")
	}

	// Инициализируем интеграционных клиентов
	roomClient := roomStoreClient.NewClient(
		cfg.RoomStore.URL,
		time.Duration(cfg.RoomStore.Timeout)*time.Second,
		roomTransport,
		log,
	)
	dateClient := dateStoreClient.NewClient(
		cfg.DateStore.URL,
		time.Duration(cfg.DateStore.Timeout)*time.Second,
		dateTransport,
		log,
	)
	siteClient := siteStoreClient.NewClient(
		cfg.SiteStore.URL,
		time.Duration(cfg.SiteStore.Timeout)*time.Second,
		siteTransport,
		log,
	)
	log.Info("Integration clients initialized (RoomStore=%s timeout=%ds, DateStore=%s timeout=%ds, SiteStore=%s timeout=%ds)",
		cfg.RoomStore.URL, cfg.RoomStore.Timeout, cfg.DateStore.URL, cfg.DateStore.Timeout,
		cfg.SiteStore.URL, cfg.SiteStore.Timeout)

	// Инициализируем сервисы
	roomsSvc := roomsService.NewService(roomClient, log)
	blockedDatesSvc := blockedDatesService.NewService(dateClient, log)
	gallerySvc := galleryService.NewService(siteClient, log)
	contactsSvc := contactsService.NewService(siteClient, log)

	// Инициализируем use cases
	getRoomOverviewUseCase := getRoomOverviewUC.NewUseCase(roomClient, log)
	updateRoomStatusUseCase := updateRoomStatusUC.NewUseCase(roomClient, log)

	// Инициализируем handlers
	listRoomTypes := listRoomTypesHandler.NewHandler(roomsSvc, log)
	getRoomOverview := getRoomOverviewHandler.NewHandler(getRoomOverviewUseCase, log)
	createRoomType := createRoomTypeHandler.NewHandler(roomsSvc, log)
	deleteRoomType := deleteRoomTypeHandler.NewHandler(roomsSvc, log)
	addRoom := addRoomHandler.NewHandler(roomsSvc, log)
	updateRoomStatus := updateRoomStatusHandler.NewHandler(updateRoomStatusUseCase, log)
	listBlockedDates := listBlockedDatesHandler.NewHandler(blockedDatesSvc, log)
	blockedDatesCalendar := blockedDatesCalendarHandler.NewHandler(blockedDatesSvc, log)
	blockDate := blockDateHandler.NewHandler(blockedDatesSvc, log)
	unblockDate := unblockDateHandler.NewHandler(blockedDatesSvc, log)
	listGallery := listGalleryHandler.NewHandler(gallerySvc, log)
	uploadGalleryImage := uploadGalleryImageHandler.NewHandler(gallerySvc, log)
	deleteGalleryImage := deleteGalleryImageHandler.NewHandler(gallerySvc, log)
	listContactMessages := listContactMessagesHandler.NewHandler(contactsSvc, log)
	deleteContactMessage := deleteContactMessageHandler.NewHandler(contactsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Список типов комнат и сводка доступности
	api.HandleFunc("/room-types", listRoomTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/room-types/overview", getRoomOverview.Handle).Methods(http.MethodGet)

	// Заблокированные даты и календарь для date-picker
	api.HandleFunc("/blocked-dates", listBlockedDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/blocked-dates/calendar", blockedDatesCalendar.Handle).Methods(http.MethodGet)

	// Галерея сайта
	api.HandleFunc("/gallery", listGallery.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен администратора)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.JWTSecret, log))
		log.Info("Admin authentication enabled")
	}

	// --- Типы комнат ---
	protected.HandleFunc("/room-types", createRoomType.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/room-types/{roomTypeId}", deleteRoomType.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/room-types/{roomTypeId}/rooms", addRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/room-types/{roomTypeId}/rooms/{number}/status", updateRoomStatus.Handle).Methods(http.MethodPut)

	// --- Заблокированные даты ---
	protected.HandleFunc("/blocked-dates", blockDate.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/blocked-dates/{id}", unblockDate.Handle).Methods(http.MethodDelete)

	// --- Галерея ---
	protected.HandleFunc("/gallery", uploadGalleryImage.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/gallery/{id}", deleteGalleryImage.Handle).Methods(http.MethodDelete)

	// --- Сообщения обратной связи ---
	protected.HandleFunc("/contact-messages", listContactMessages.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/contact-messages/{id}", deleteContactMessage.Handle).Methods(http.MethodDelete)

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
