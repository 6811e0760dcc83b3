package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// 未调用 InitLog 时使用的默认 logger，库代码和测试可以直接打日志
var logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})

func InitLog(appName string, logLevel string) {
	InitLogTo(os.Stdout, appName, logLevel)
}

// InitLogTo 输出到指定 writer，批量模式下 stdout 用于结果输出
func InitLogTo(w io.Writer, appName string, logLevel string) {
	l := log.New(w)
	l.SetPrefix(appName)
	l.SetReportTimestamp(true)
	l.SetTimeFormat(time.DateTime)
	l.SetReportCaller(true)
	// 跳过本包的包装函数，显示真正的调用位置
	l.SetCallerOffset(1)
	l.SetLevel(ParseLevel(logLevel))
	logger = l
}

// ParseLevel 默认为 info 级别
func ParseLevel(logLevel string) log.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func Fatal(format string, args ...any) {
	logger.Fatalf(format, args...)
}

func Info(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warn(format string, args ...any) {
	logger.Warnf(format, args...)
}

func Error(format string, args ...any) {
	logger.Errorf(format, args...)
}

func Debug(format string, args ...any) {
	logger.Debugf(format, args...)
}
