package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"blog-backend/internal/config"
)

// Setup routes the standard logger to stdout and a rotating, dated log
// file under the configured directory.
func Setup(cfg *config.Config) error {
	logDir := cfg.Logger.Directory
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	name := fmt.Sprintf("blog-backend-%s.log", time.Now().Format("2006-01-02"))
	rotating := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, name),
		MaxSize:    cfg.Logger.Rotation.MaxSize,
		MaxBackups: cfg.Logger.Rotation.MaxBackups,
		MaxAge:     cfg.Logger.Rotation.MaxAge,
		Compress:   cfg.Logger.Rotation.Compress,
	}

	log.SetOutput(io.MultiWriter(os.Stdout, rotating))
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	setLevel(cfg.Logger.Level)

	log.Printf("Logging initialized: writing to %s", rotating.Filename)
	return nil
}
