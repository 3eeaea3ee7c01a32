package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"learning_portal_backend/internal/config"
	"learning_portal_backend/internal/controller"
	"learning_portal_backend/internal/repository"
	"learning_portal_backend/internal/service"
	"learning_portal_backend/pkg/configwatcher"
	"learning_portal_backend/pkg/database"
	"learning_portal_backend/pkg/logger"
	"learning_portal_backend/pkg/monitoring"
	"learning_portal_backend/pkg/security"
	"learning_portal_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	services       *services
	cron           *cron.Cron
	tracerProvider *sdktrace.TracerProvider
	stopWatcher    context.CancelFunc
}

type repositories struct {
	user         *repository.UserRepository
	course       *repository.CourseRepository
	enrollment   *repository.EnrollmentRepository
	content      *repository.ContentRepository
	progress     *repository.ProgressRepository
	assignment   *repository.AssignmentRepository
	submission   *repository.SubmissionRepository
	message      *repository.MessageRepository
	notification *repository.NotificationRepository
	reminderLog  *repository.ReminderLogRepository
}

type services struct {
	notifier     *service.Notifier
	policy       *service.Policy
	storage      *service.StorageService
	auth         *service.AuthService
	admin        *service.AdminService
	course       *service.CourseService
	enrollment   *service.EnrollmentService
	content      *service.ContentService
	progress     *service.ProgressService
	assignment   *service.AssignmentService
	submission   *service.SubmissionService
	message      *service.MessageService
	notification *service.NotificationService
	dashboard    *service.DashboardService
	reminder     *service.ReminderService
}

type controllers struct {
	auth         *controller.AuthController
	admin        *controller.AdminController
	course       *controller.CourseController
	enrollment   *controller.EnrollmentController
	content      *controller.ContentController
	progress     *controller.ProgressController
	assignment   *controller.AssignmentController
	submission   *controller.SubmissionController
	message      *controller.MessageController
	notification *controller.NotificationController
	dashboard    *controller.DashboardController
	upload       *controller.UploadController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		course:       repository.NewCourseRepository(db),
		enrollment:   repository.NewEnrollmentRepository(db),
		content:      repository.NewContentRepository(db),
		progress:     repository.NewProgressRepository(db),
		assignment:   repository.NewAssignmentRepository(db),
		submission:   repository.NewSubmissionRepository(db),
		message:      repository.NewMessageRepository(db),
		notification: repository.NewNotificationRepository(db),
		reminderLog:  repository.NewReminderLogRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	mailer := service.NewMailer(&cfg.Mail)
	notifier := service.NewNotifier(repos.notification, mailer)
	policy := service.NewPolicy(cfg.Policy)

	return &services{
		notifier: notifier,
		policy:   policy,
		storage:  service.NewStorageService(cfg),
		auth:     service.NewAuthService(repos.user, notifier, cfg),
		admin:    service.NewAdminService(repos.user, repos.course, repos.enrollment, notifier),
		course:   service.NewCourseService(repos.course, repos.enrollment),
		enrollment: service.NewEnrollmentService(
			repos.enrollment,
			repos.course,
			notifier,
		),
		content:  service.NewContentService(repos.content, repos.course, repos.progress),
		progress: service.NewProgressService(repos.progress, repos.content),
		assignment: service.NewAssignmentService(
			repos.assignment,
			repos.course,
			repos.enrollment,
			repos.submission,
			notifier,
		),
		submission: service.NewSubmissionService(
			repos.submission,
			repos.assignment,
			repos.course,
			notifier,
			policy,
		),
		message: service.NewMessageService(
			repos.message,
			repos.user,
			repos.course,
			repos.enrollment,
			policy,
		),
		notification: service.NewNotificationService(repos.notification),
		dashboard: service.NewDashboardService(
			repos.user,
			repos.course,
			repos.enrollment,
			repos.assignment,
			repos.submission,
		),
		reminder: service.NewReminderService(
			repos.assignment,
			repos.enrollment,
			repos.reminderLog,
			notifier,
			rdb,
			&cfg.Reminder,
		),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		admin:        controller.NewAdminController(s.admin),
		course:       controller.NewCourseController(s.course),
		enrollment:   controller.NewEnrollmentController(s.enrollment, s.course),
		content:      controller.NewContentController(s.content),
		progress:     controller.NewProgressController(s.progress),
		assignment:   controller.NewAssignmentController(s.assignment),
		submission:   controller.NewSubmissionController(s.submission, s.storage),
		message:      controller.NewMessageController(s.message),
		notification: controller.NewNotificationController(s.notification),
		dashboard:    controller.NewDashboardController(s.dashboard),
		upload:       controller.NewUploadController(s.storage, s.auth),
		health:       controller.NewHealthController(db, a.Redis),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if cfg.RateLimit.MaxRequests > 0 && window > 0 {
		router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))
	}

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks schedules the reminder sweep and starts watching the
// config file so policy switches apply without a restart.
func (a *App) startBackgroundTasks(s *services) {
	cfg := a.Config

	a.cron = cron.New()
	if cfg.Reminder.Enabled {
		if _, err := s.reminder.Schedule(a.cron, cfg.Reminder.Schedule); err != nil {
			logger.Log.Error("Failed to schedule reminder sweep",
				zap.String("schedule", cfg.Reminder.Schedule),
				zap.Error(err))
		} else {
			logger.Log.Info("Reminder sweep scheduled", zap.String("schedule", cfg.Reminder.Schedule))
		}
	}
	a.cron.Start()

	configFile := cfg.File()
	if _, err := os.Stat(configFile); err != nil {
		logger.Log.Info("Config file not found, hot reload disabled", zap.String("file", configFile))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.stopWatcher = cancel
	go func() {
		err := configwatcher.WatchConfig(ctx, configFile, a.reloadConfig)
		if err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

func (a *App) reloadConfig(newCfg *config.Config) {
	a.services.policy.Set(newCfg.Policy)
	logger.Log.Info("Policy reloaded",
		zap.Bool("require_course_membership", newCfg.Policy.RequireCourseMembership),
		zap.Bool("enforce_grade_range", newCfg.Policy.EnforceGradeRange),
		zap.Float64("min_grade", newCfg.Policy.MinGrade),
		zap.Float64("max_grade", newCfg.Policy.MaxGrade))
}

// NewApp builds the application. When cfg.MigrateOnly is set it returns after
// the schema migration, without a router.
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}
	if cfg.MigrateOnly {
		return app
	}

	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			// the portal runs without redis, only the sweep lock is lost
			logger.Log.Error("Failed to initialize redis", zap.Error(err))
		} else {
			app.Redis = rdb
		}
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(&cfg.Tracing)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracerProvider = tp
		}
	}

	monitoring.Init()

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, app.Redis)
	app.services = services
	if err := services.auth.EnsureAdmin(cfg.Seed); err != nil {
		logger.Log.Error("Failed to seed admin account", zap.Error(err))
	}
	controllers := app.initControllers(services, db)

	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", filepath.Clean(cfg.Storage.LocalPath))
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	if a.stopWatcher != nil {
		a.stopWatcher()
	}
	if a.cron != nil {
		<-a.cron.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.closeClients(ctx)

	logger.Log.Info("Server exiting")
}

// closeClients flushes pending spans and releases the redis pool.
func (a *App) closeClients(ctx context.Context) {
	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis client", zap.Error(err))
		}
	}
}
