package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/quillhq/quill-api/internal/api"
	"github.com/quillhq/quill-api/internal/api/middleware"
	"github.com/quillhq/quill-api/internal/config"
	"github.com/quillhq/quill-api/internal/platform/logger"
	"github.com/quillhq/quill-api/internal/platform/postgres"
	"github.com/quillhq/quill-api/internal/platform/storage"
	"github.com/quillhq/quill-api/internal/service/auth"
	"github.com/quillhq/quill-api/internal/store"
	"github.com/quillhq/quill-api/internal/usecase"
)

// application holds the initialized dependencies of the server process.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	postStore store.PostStore

	jwtService auth.JWTService
	uploader   *storage.GCSUploader

	authHandler    *api.AuthHandler
	userHandler    *api.UserHandler
	postHandler    *api.PostHandler
	uploadHandler  *api.UploadHandler
	authMiddleware *middleware.AuthMiddleware
}

// newApplication loads configuration, connects to the database, applies
// migrations, and wires every layer together.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)

	db, err := setupDatabase(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := postgres.RunMigrations(db); err != nil {
		return nil, err
	}
	log.Info("database migrations applied")

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create jwt service: %w", err)
	}
	hasher := auth.NewBcryptHasher()

	uploader, err := storage.NewGCSUploader(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create file uploader: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, log)
	postStore := postgres.NewPostgresPostStore(db, log)

	app := &application{
		config:     cfg,
		logger:     log,
		db:         db,
		userStore:  userStore,
		postStore:  postStore,
		jwtService: jwtService,
		uploader:   uploader,
	}

	app.authHandler = api.NewAuthHandler(
		usecase.NewLogin(userStore, hasher, jwtService),
		usecase.NewSignup(userStore, hasher, jwtService),
	)
	app.userHandler = api.NewUserHandler(
		usecase.NewCreateUser(userStore, hasher),
		usecase.NewGetUser(userStore),
		usecase.NewListUsers(userStore),
		usecase.NewUpdateUser(userStore),
		usecase.NewDeleteUser(userStore),
		uploader,
	)
	app.postHandler = api.NewPostHandler(
		usecase.NewCreatePost(postStore, userStore),
		usecase.NewGetPost(postStore, userStore),
		usecase.NewGetMyPosts(postStore, userStore),
		usecase.NewListPosts(postStore, userStore),
		usecase.NewUpdatePost(postStore, userStore),
		usecase.NewDeletePost(postStore),
		uploader,
	)
	app.uploadHandler = api.NewUploadHandler(uploader)
	app.authMiddleware = middleware.NewAuthMiddleware(jwtService, userStore)

	return app, nil
}

// setupDatabase opens the connection pool and verifies connectivity.
func setupDatabase(ctx context.Context, cfg *config.Config, log *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established")
	return db, nil
}

// cleanup releases the application's long-lived resources.
func (app *application) cleanup() {
	if err := app.uploader.Close(); err != nil {
		app.logger.Error("failed to close uploader", slog.String("error", err.Error()))
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", slog.String("error", err.Error()))
	}
}
