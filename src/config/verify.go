package config

import (
	"github.com/andrewyi/fetcher/src/enum"
	"github.com/andrewyi/fetcher/src/validator"
)

// Verify 在下载开始前检查配置，返回第一个失败的结果
// 检查顺序：输入文件、日志文件、输出目录、verbosity、log_level
// 此时日志尚未初始化，由调用方将结果输出到stderr
func Verify(cfg Config) (validator.Outcome, error) {
	checks := []struct {
		path     string
		mode     enum.AccessMode
		mimeType string
	}{
		{cfg.InputFile, enum.AccessRead, enum.MimeTextPlain},
		{cfg.LogFile, enum.AccessWrite, ""},
		{cfg.OutputDir, enum.AccessWrite, ""},
	}
	for _, c := range checks {
		outcome, err := validator.VerifyPath(c.path, c.mode, c.mimeType)
		if err != nil {
			return validator.Outcome{}, err
		}
		if !outcome.OK() {
			return outcome, nil
		}
	}

	if !cfg.Verbosity.Valid() {
		return validator.Outcome{Code: enum.ExitConfig, Message: "Error: Invalid verbosity level\n"}, nil
	}
	if !cfg.LogLevel.Valid() {
		return validator.Outcome{Code: enum.ExitConfig, Message: "Error: Invalid log level\n"}, nil
	}

	return validator.Outcome{Code: enum.ExitOK, Message: "File is fine"}, nil
}
