package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fplanhq/fplan/internal/config"
	"github.com/fplanhq/fplan/internal/domain/activity"
	"github.com/fplanhq/fplan/internal/domain/calendar"
	"github.com/fplanhq/fplan/internal/domain/focus"
	"github.com/fplanhq/fplan/internal/domain/goal"
	"github.com/fplanhq/fplan/internal/domain/plan"
	"github.com/fplanhq/fplan/internal/domain/workspace"
	"github.com/fplanhq/fplan/internal/rpc"
	"github.com/fplanhq/fplan/internal/sqlite"
	"github.com/fplanhq/fplan/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logWriter := io.Writer(os.Stdout)
	if logPath := os.Getenv("FPLAN_LOG_PATH"); logPath != "" {
		fileWriter, file, err := newLogFileWriter(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	workspaceRepo := sqlite.NewWorkspaceRepository(db)
	planRepo := sqlite.NewPlanRepository(db)
	goalRepo := sqlite.NewGoalRepository(db)
	eventRepo := sqlite.NewEventRepository(db)
	reminderRepo := sqlite.NewReminderRepository(db)
	sessionRepo := sqlite.NewFocusSessionRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	workspaceSvc := workspace.NewService(workspaceRepo, logger)
	activitySvc := activity.NewService(activityRepo, logger)
	planSvc := plan.NewService(planRepo, activityRepo, logger)
	goalSvc := goal.NewService(goalRepo, planRepo, activityRepo, logger)
	calendarSvc := calendar.NewService(eventRepo, reminderRepo, activityRepo, logger)
	focusSvc := focus.NewService(sessionRepo, activityRepo, time.Now, logger)

	handler := rpc.NewHandler(workspaceSvc, planSvc, goalSvc, calendarSvc, focusSvc, activitySvc)

	var authMiddleware func(http.Handler) http.Handler
	if cfg.Auth.Enabled {
		authMiddleware = transport.AuthMiddleware(&apiTokenResolver{db: db})
	} else {
		logger.Warn("authentication disabled, all requests run as local user")
		authMiddleware = transport.LocalUserMiddleware("local")
	}

	router := transport.NewServer(handler, authMiddleware)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

const (
	maxLogSizeBytes  = 6 * 1024 * 1024
	keepLogSizeBytes = 5 * 1024 * 1024
)

type logFileWriter struct {
	path string
	file *os.File
	mu   sync.Mutex
}

func newLogFileWriter(path string) (*logFileWriter, *os.File, error) {
	if err := ensureLogDir(path); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	writer := &logFileWriter{path: path, file: file}
	if err := writer.truncateIfNeeded(); err != nil {
		return nil, nil, err
	}
	return writer, file, nil
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (w *logFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.file.Write(p)
	if err != nil {
		return n, err
	}
	if err := w.truncateIfNeeded(); err != nil {
		return n, err
	}
	return n, nil
}

func (w *logFileWriter) truncateIfNeeded() error {
	info, err := w.file.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	if size <= maxLogSizeBytes {
		return nil
	}

	buf := make([]byte, keepLogSizeBytes)
	if _, err := w.file.Seek(size-keepLogSizeBytes, io.SeekStart); err != nil {
		return err
	}
	n, err := w.file.Read(buf)
	if err != nil && err != io.EOF {
		return err
	}
	buf = buf[:n]

	if err := w.file.Truncate(0); err != nil {
		return err
	}
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.file.Write(buf); err != nil {
		return err
	}
	_, err = w.file.Seek(0, io.SeekEnd)
	return err
}

type apiTokenResolver struct {
	db *sqlite.DB
}

func (r *apiTokenResolver) ResolveUser(ctx context.Context, token string) (string, error) {
	hash := hashToken(token)
	var userID string
	err := r.db.QueryRowContext(ctx, `SELECT user_id FROM api_tokens WHERE token_hash = ?`, hash).Scan(&userID)
	if err != nil || userID == "" {
		return "", fmt.Errorf("unauthorized: invalid token")
	}
	_, _ = r.db.ExecContext(ctx, `UPDATE api_tokens SET last_used = CURRENT_TIMESTAMP WHERE token_hash = ?`, hash)
	return userID, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
