package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/openmusic/server/internal/cron"
	"github.com/openmusic/server/internal/db"
	"github.com/openmusic/server/internal/handler"
	"github.com/openmusic/server/internal/middleware"
	"github.com/openmusic/server/internal/repository"
	"github.com/openmusic/server/internal/service"
	"github.com/openmusic/server/pkg/config"
	"github.com/openmusic/server/pkg/crypto"
	"github.com/openmusic/server/pkg/jwt"
	"github.com/openmusic/server/pkg/limiter"
	"github.com/openmusic/server/pkg/logger"

	"github.com/openmusic/server/migrations"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Output: os.Stdout,
	})
	log.Info("starting openmusic server")

	ctx := context.Background()

	pool, err := db.NewPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal("failed to connect to postgres", logger.Error(err))
	}
	defer pool.Close()
	log.Info("database connected")

	if err := runMigrations(cfg, log); err != nil {
		log.Fatal("failed to run migrations", logger.Error(err))
	}

	tokens := jwt.NewManager(&jwt.Config{
		Secret:        cfg.JWT.Secret,
		Issuer:        cfg.JWT.Issuer,
		TokenExpiry:   cfg.JWT.TokenExpiry,
		RefreshExpiry: cfg.JWT.RefreshExpiry,
	})

	svcs := initServices(pool, tokens, log)

	cronManager := cron.NewCronManager(svcs.cleanup, cfg.Cleanup.Schedule, log)
	if err := cronManager.Start(); err != nil {
		log.Fatal("failed to start cron manager", logger.Error(err))
	}
	defer cronManager.Stop()

	router := setupRouter(cfg, svcs, tokens, log)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("HTTP server listening", logger.Int("port", cfg.Server.HTTPPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", logger.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down openmusic server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced to shutdown", logger.Error(err))
	}

	log.Info("openmusic server stopped")
}

// services 聚合全部服务层实例
type services struct {
	albums         *service.AlbumService
	songs          *service.SongService
	users          *service.UserService
	auth           *service.AuthService
	playlists      *service.PlaylistService
	collaborations *service.CollaborationService
	cleanup        *service.CleanupService
}

func initServices(pool *pgxpool.Pool, tokens *jwt.Manager, log logger.Logger) *services {
	// 初始化仓储层
	albumRepo := repository.NewAlbumRepository(pool)
	songRepo := repository.NewSongRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	authRepo := repository.NewAuthRepository(pool)
	playlistRepo := repository.NewPlaylistRepository(pool)
	playlistSongRepo := repository.NewPlaylistSongRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)
	collaborationRepo := repository.NewCollaborationRepository(pool)

	// 初始化服务层
	hasher := crypto.NewPasswordHasher()
	userService := service.NewUserService(userRepo, hasher)
	collaborationService := service.NewCollaborationService(collaborationRepo)

	return &services{
		albums:         service.NewAlbumService(albumRepo),
		songs:          service.NewSongService(songRepo),
		users:          userService,
		auth:           service.NewAuthService(authRepo, userService, tokens),
		playlists:      service.NewPlaylistService(playlistRepo, playlistSongRepo, activityRepo, collaborationService),
		collaborations: collaborationService,
		cleanup:        service.NewCleanupService(authRepo, tokens.GetRefreshExpiryTime(), log),
	}
}

func runMigrations(cfg *config.Config, log logger.Logger) error {
	migrator, err := db.NewMigrator(cfg.Postgres.DSN(), migrations.FS, ".")
	if err != nil {
		return err
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		return err
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return err
	}
	log.Info("migrations applied", logger.Int("version", int(version)), logger.Bool("dirty", dirty))
	return nil
}

func setupRouter(cfg *config.Config, svcs *services, tokens *jwt.Manager, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(log))
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	albumHandler := handler.NewAlbumHandler(svcs.albums)
	router.POST("/albums", albumHandler.CreateAlbum)
	router.GET("/albums/:id", albumHandler.GetAlbum)
	router.PUT("/albums/:id", albumHandler.UpdateAlbum)
	router.DELETE("/albums/:id", albumHandler.DeleteAlbum)

	songHandler := handler.NewSongHandler(svcs.songs)
	router.POST("/songs", songHandler.CreateSong)
	router.GET("/songs", songHandler.GetSongs)
	router.GET("/songs/:id", songHandler.GetSong)
	router.PUT("/songs/:id", songHandler.UpdateSong)
	router.DELETE("/songs/:id", songHandler.DeleteSong)

	userHandler := handler.NewUserHandler(svcs.users)
	router.POST("/users", userHandler.Register)
	router.GET("/users/:id", userHandler.GetUser)

	authHandler := handler.NewAuthHandler(svcs.auth)
	authRoutes := router.Group("/authentications")
	if cfg.Redis.Enabled {
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rl := limiter.NewRateLimiter(client)
		authRoutes.Use(middleware.RateLimit(rl, 30, time.Minute, log))
	}
	authRoutes.POST("", authHandler.Login)
	authRoutes.PUT("", authHandler.Refresh)
	authRoutes.DELETE("", authHandler.Logout)

	authed := router.Group("/")
	authed.Use(middleware.Auth(tokens, log))
	{
		playlistHandler := handler.NewPlaylistHandler(svcs.playlists, svcs.songs)
		authed.POST("/playlists", playlistHandler.CreatePlaylist)
		authed.GET("/playlists", playlistHandler.GetPlaylists)
		authed.DELETE("/playlists/:id", playlistHandler.DeletePlaylist)
		authed.POST("/playlists/:id/songs", playlistHandler.AddSongToPlaylist)
		authed.GET("/playlists/:id/songs", playlistHandler.GetPlaylistSongs)
		authed.DELETE("/playlists/:id/songs", playlistHandler.DeleteSongFromPlaylist)
		authed.GET("/playlists/:id/activities", playlistHandler.GetPlaylistActivities)

		collaborationHandler := handler.NewCollaborationHandler(svcs.collaborations, svcs.playlists, svcs.users)
		authed.POST("/collaborations", collaborationHandler.AddCollaboration)
		authed.DELETE("/collaborations", collaborationHandler.DeleteCollaboration)
	}

	return router
}
