package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide logger. Replaced by Init at startup; the
// default console logger keeps early failures and tests visible.
var Logger *zap.SugaredLogger

func init() {
	InitLogger(DefaultConfig())
}

// Config controls log destination, rotation and level.
type Config struct {
	Filename   string        // log file path, empty means console only
	MaxSize    int           // max size of a single log file, MB
	MaxBackups int           // rotated files kept
	MaxAge     int           // days rotated files are kept
	Compress   bool          // gzip rotated files
	Level      zapcore.Level // minimum level
	Console    bool          // also write to stdout/stderr
}

func DefaultConfig() Config {
	return Config{
		MaxSize:    10,
		MaxBackups: 10,
		MaxAge:     30,
		Compress:   true,
		Level:      zapcore.InfoLevel,
		Console:    true,
	}
}

// InitLogger builds the global logger. With a filename all levels go to the
// rotating file; otherwise info and below go to stdout, errors to stderr.
func InitLogger(config Config) {
	encoder := getEncoder()

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})
	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl < zapcore.ErrorLevel && lvl >= config.Level
	})

	var cores []zapcore.Core

	if config.Filename != "" {
		fileWriter := getLogWriter(config)
		fileCore := zapcore.NewCore(encoder, fileWriter, zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= config.Level
		}))
		cores = append(cores, fileCore)
		config.Console = false
	}

	if config.Console {
		stdoutCore := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), lowPriority)
		stderrCore := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), highPriority)
		cores = append(cores, stdoutCore, stderrCore)
	}

	core := zapcore.NewTee(cores...)
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	Logger = logger.Sugar()
}

// Init sets up the logger from a filename and a textual level.
func Init(filename, level string) {
	config := DefaultConfig()
	config.Filename = filename
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		panic(err)
	}
	config.Level = l
	InitLogger(config)
}

// Close flushes any buffered log entries.
func Close() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

func getEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func getLogWriter(config Config) zapcore.WriteSyncer {
	lumberJackLogger := &lumberjack.Logger{
		Filename:   config.Filename,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}
	return zapcore.AddSync(lumberJackLogger)
}
