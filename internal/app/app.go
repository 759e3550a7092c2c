package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"course_track_backend/internal/config"
	"course_track_backend/internal/controller"
	"course_track_backend/internal/middleware"
	"course_track_backend/internal/repository"
	"course_track_backend/internal/service"
	"course_track_backend/pkg/configwatcher"
	"course_track_backend/pkg/logger"
	"course_track_backend/pkg/monitoring"
	"course_track_backend/pkg/security"
	"course_track_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine

	configPath string
	services   *services
	tp         shutdowner
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

type repositories struct {
	course   *repository.CourseRepository
	settings *repository.SettingsRepository
}

type services struct {
	media    *service.MediaService
	schedule *service.ScheduleService
	course   *service.CourseService
}

type controllers struct {
	course   *controller.CourseController
	settings *controller.SettingsController
	health   *controller.HealthController
}

func (a *App) initRepositories(cfg *config.Config) *repositories {
	return &repositories{
		course:   repository.NewCourseRepository(cfg.Storage.DataDir),
		settings: repository.NewSettingsRepository(cfg.Storage.DataDir),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.media = service.NewMediaService(cfg.Media.Extensions)
	s.schedule = service.NewScheduleService(repos.course, s.media)
	s.course = service.NewCourseService(repos.course, s.schedule, s.media, service.NewOSPlayer(cfg.Player.Command))

	return s
}

func (a *App) initControllers(s *services, repos *repositories) *controllers {
	return &controllers{
		course:   controller.NewCourseController(s.course),
		settings: controller.NewSettingsController(repos.settings),
		health:   controller.NewHealthController(repos.course),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window()))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startConfigWatcher 热更新 CORS 白名单等运行时可调项
func (a *App) startConfigWatcher() {
	configFile := filepath.Join(a.configPath, "config.yaml")
	if _, err := os.Stat(configFile); err != nil {
		return
	}
	go configwatcher.WatchConfig(configFile, func(cfg *config.Config) {
		a.Config.CORS = cfg.CORS
		a.Config.RateLimit = cfg.RateLimit
	})
}

func NewApp(cfg *config.Config, configPath string) *App {
	logger.InitLogger(cfg.Server.Mode, cfg.Storage.LogDir)

	logger.Log.Info("Logger initialized successfully")

	app := &App{
		Config:     cfg,
		configPath: configPath,
	}

	repos := app.initRepositories(cfg)
	repos.course.Load(time.Now())
	logger.Log.Info("Course document loaded",
		zap.String("path", repos.course.Path()),
		zap.Int("courses", len(repos.course.All())))

	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, repos)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("course-track", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tp = tp
	}

	app.registerRoutes(router, controllers)

	// 可选的前端静态资源
	if cfg.Storage.StaticDir != "" {
		router.Static("/app", cfg.Storage.StaticDir)
	}

	app.startConfigWatcher()

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "debug":
		return gin.DebugMode
	case "test":
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

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

	if a.tp != nil {
		if err := a.tp.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
