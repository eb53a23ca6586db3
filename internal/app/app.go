package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizkey_backend/internal/config"
	"quizkey_backend/internal/controller"
	"quizkey_backend/internal/repository"
	"quizkey_backend/internal/service"
	"quizkey_backend/pkg/database"
	"quizkey_backend/pkg/logger"
	"quizkey_backend/pkg/monitoring"
	"quizkey_backend/pkg/security"
	"quizkey_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	license     *repository.LicenseRepository
	progress    *repository.ProgressRepository
	session     *repository.SessionRepository
	bookmark    *repository.BookmarkRepository
	wrongAnswer *repository.WrongAnswerRepository
	setting     *repository.SettingRepository
}

type services struct {
	license     *service.LicenseService
	progress    *service.ProgressService
	session     *service.SessionService
	bookmark    *service.BookmarkService
	wrongAnswer *service.WrongAnswerService
	setting     *service.SettingService
	admin       *service.AdminService
}

type controllers struct {
	license     *controller.LicenseController
	progress    *controller.ProgressController
	session     *controller.SessionController
	bookmark    *controller.BookmarkController
	wrongAnswer *controller.WrongAnswerController
	admin       *controller.AdminController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 热加载配置时回调各订阅方
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Config reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		license:     repository.NewLicenseRepository(db),
		progress:    repository.NewProgressRepository(db),
		session:     repository.NewSessionRepository(db),
		bookmark:    repository.NewBookmarkRepository(db),
		wrongAnswer: repository.NewWrongAnswerRepository(db),
		setting:     repository.NewSettingRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.license = service.NewLicenseService(repos.license, rdb, cfg)
	s.progress = service.NewProgressService(repos.progress)
	s.session = service.NewSessionService(repos.session, s.progress)
	s.bookmark = service.NewBookmarkService(repos.bookmark)
	s.wrongAnswer = service.NewWrongAnswerService(repos.wrongAnswer)
	s.setting = service.NewSettingService(repos.setting)
	s.admin = service.NewAdminService(s.setting, cfg)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		license:     controller.NewLicenseController(s.license),
		progress:    controller.NewProgressController(s.progress),
		session:     controller.NewSessionController(s.session),
		bookmark:    controller.NewBookmarkController(s.bookmark),
		wrongAnswer: controller.NewWrongAnswerController(s.wrongAnswer),
		admin:       controller.NewAdminController(s.admin, s.license, s.setting),
		health:      controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("quizkey-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, services, cfg)

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
