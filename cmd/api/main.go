package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/config"
	appHTTP "github.com/absensi-dosen/absensi-backend-go/internal/handler/http"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/cron"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/database"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/jwt"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/storage"
	"github.com/absensi-dosen/absensi-backend-go/internal/repository/postgresql"
	attendanceService "github.com/absensi-dosen/absensi-backend-go/internal/service/attendance"
	serviceAuth "github.com/absensi-dosen/absensi-backend-go/internal/service/auth"
	clarificationService "github.com/absensi-dosen/absensi-backend-go/internal/service/clarification"
	"github.com/absensi-dosen/absensi-backend-go/internal/service/file"
	"github.com/absensi-dosen/absensi-backend-go/internal/service/leave"
	reportService "github.com/absensi-dosen/absensi-backend-go/internal/service/report"
	"github.com/absensi-dosen/absensi-backend-go/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migrations.Apply(ctx, db.Pool); err != nil {
			log.Fatal("Failed to apply migrations: ", err)
		}
	}

	lecturerRepo := postgresql.NewLecturerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	clarificationRepo := postgresql.NewClarificationRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	transactor := postgresql.NewTransactor(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}
	fileService := file.NewFileService(fileStorage)

	reportCache := reportService.NewCache(cfg.Policy.ReportCacheTTL)

	authService := serviceAuth.NewAuthService(lecturerRepo, JWTService)
	leaveService := leave.NewLeaveService(transactor, lecturerRepo, attendanceRepo, leaveRequestRepo)
	clarificationSvc := clarificationService.NewClarificationService(transactor, clarificationRepo, attendanceRepo, cfg.Policy.ForgotAttendanceQuota)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, lecturerRepo, leaveService, clarificationSvc)
	reportSvc := reportService.NewReportService(reportRepo, reportCache, logger)

	scheduler := cron.NewScheduler(ctx)
	cron.NewReportJobs(reportCache, cfg.Policy.ReportPruneInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Env:            cfg.App.Env,
		FrontendOrigin: cfg.App.FrontendOrigin,
		LogLevel:       cfg.SlogLevel(),
	}, JWTService, appHTTP.Handlers{
		Auth:          appHTTP.NewAuthHandler(authService),
		User:          appHTTP.NewUserHandler(authService),
		Attendance:    appHTTP.NewAttendanceHandler(attendanceSvc, clarificationSvc),
		Clarification: appHTTP.NewClarificationHandler(clarificationSvc, fileService),
		Leave:         appHTTP.NewLeaveHandler(leaveService, fileService),
		Report:        appHTTP.NewReportHandler(reportSvc),
		File:          appHTTP.NewFileHandler(fileService),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:              port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
}
