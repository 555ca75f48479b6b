package config

import (
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
)

var ErrInvalidLevel = errors.New("invalid log level")

// 输出阈值，按严重程度递增排列，LevelQuiet高于LevelError，任何日志都不会通过
// 零值不是合法级别
type Level uint8

const (
	LevelDebug Level = iota + 1
	LevelInfo
	LevelWarn
	LevelError
	LevelQuiet
)

var levelNames = map[Level]string{
	LevelQuiet: "quiet",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

// 可接受的级别名称，用于帮助信息
var LevelNames = []string{"quiet", "debug", "info", "warn", "error"}

// ParseLevel 解析级别名称，不区分大小写
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for l, n := range levelNames {
		if n == name {
			return l, nil
		}
	}
	return 0, ErrInvalidLevel
}

func (l Level) String() string {
	if n, ok := levelNames[l]; ok {
		return n
	}
	return "invalid"
}

func (l Level) Valid() bool {
	return l >= LevelDebug && l <= LevelQuiet
}

// LogrusLevel 对应的logger阈值，LevelQuiet映射为PanicLevel（hook本身不处理任何级别）
func (l Level) LogrusLevel() log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelInfo:
		return log.InfoLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	}
	return log.PanicLevel
}

// Levels 返回不低于阈值的所有logrus级别，供hook使用
func (l Level) Levels() []log.Level {
	var levels []log.Level
	for _, ll := range log.AllLevels {
		if l.Allows(ll) {
			levels = append(levels, ll)
		}
	}
	return levels
}

// Allows 判断ll级别的日志能否通过阈值
func (l Level) Allows(ll log.Level) bool {
	if !l.Valid() || l == LevelQuiet {
		return false
	}
	return fromLogrus(ll) >= l
}

func fromLogrus(ll log.Level) Level {
	switch ll {
	case log.TraceLevel, log.DebugLevel:
		return LevelDebug
	case log.InfoLevel:
		return LevelInfo
	case log.WarnLevel:
		return LevelWarn
	}
	return LevelError
}
