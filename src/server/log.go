package server

import (
	"io"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/fetcher/src/config"
)

// levelHook 将日志写入writer，仅处理阈值以上的级别
// 控制台与日志文件各自使用一个hook，logger自身的输出被丢弃
type levelHook struct {
	writer    io.Writer
	formatter log.Formatter
	levels    []log.Level
}

func (h *levelHook) Levels() []log.Level {
	return h.levels
}

func (h *levelHook) Fire(entry *log.Entry) error {
	b, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.writer.Write(b)
	return err
}

func newLogger(console io.Writer, verbosity config.Level, file io.Writer, logLevel config.Level) *log.Logger {
	var logger = log.New()
	logger.SetOutput(io.Discard)
	logger.SetReportCaller(true)

	logger.AddHook(&levelHook{
		writer: console,
		formatter: &log.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
			// 调用位置只写入日志文件
			CallerPrettyfier: func(*runtime.Frame) (string, string) {
				return "", ""
			},
		},
		levels: verbosity.Levels(),
	})
	logger.AddHook(&levelHook{
		writer: file,
		formatter: &log.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		},
		levels: logLevel.Levels(),
	})

	// 取两者中更详细的级别，避免日志在到达hook之前被过滤
	level := verbosity.LogrusLevel()
	if l := logLevel.LogrusLevel(); l > level {
		level = l
	}
	logger.SetLevel(level)
	return logger
}

func (s *Server) initLog() error {
	f, err := os.OpenFile(s.config.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	s.logFile = f
	s.logger = newLogger(os.Stderr, s.config.Verbosity, f, s.config.LogLevel)
	return nil
}
