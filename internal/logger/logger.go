package logger

import (
	"github.com/orajb/cv-craft/internal/config"
	"github.com/orajb/cv-craft/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const ErrorTypeField = "error_type"

const (
	ErrorTypeDb     = "db"
	ErrorTypeAiApi  = "ai_api"
	ErrorTypeRender = "render"
	ErrorTypeExport = "export"
	ErrorTypeFetch  = "fetch"
)

var (
	logFile  *os.File
	hookOnce sync.Once
)

// Setup points the standard logger at the configured file. It may be called
// again; the previous file is closed and the error hook stays registered once.
func Setup(cfg config.LoggerConfig) {

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}

	file, err := os.OpenFile(filepath.Join(cfg.OutputDir, cfg.OutputFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	Cleanup()
	logFile = file

	var output io.Writer = logFile
	if !cfg.Quiet {
		output = io.MultiWriter(os.Stderr, logFile)
	}
	log.SetOutput(output)

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000 -0700",
	})
	log.SetLevel(level(cfg.LogLevel))

	hookOnce.Do(func() {
		log.AddHook(&errorCountHook{counter: metrics.ErrorsCounter})
		log.Debug("Error counting hook enabled")
	})
}

func level(l config.LogLevel) log.Level {
	switch l {
	case config.LevelInfo:
		return log.InfoLevel
	case config.LevelDebug:
		return log.DebugLevel
	case config.LevelWarning:
		return log.WarnLevel
	case config.LevelError:
		return log.ErrorLevel
	case config.LevelFatal:
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

func Cleanup() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// errorCountHook counts error entries by their error type field.
type errorCountHook struct {
	counter *prometheus.CounterVec
}

func (h *errorCountHook) Levels() []log.Level {
	return []log.Level{log.PanicLevel, log.FatalLevel, log.ErrorLevel}
}

func (h *errorCountHook) Fire(entry *log.Entry) error {
	errorType, _ := entry.Data[ErrorTypeField].(string)
	if errorType == "" {
		errorType = "unknown"
	}
	h.counter.WithLabelValues(errorType).Inc()
	return nil
}
