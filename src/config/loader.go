package config

import (
	"github.com/andrewyi/fetcher/src/util"
)

// LoadFile 读取args指定的配置文件（未指定时使用默认路径）
// 文件不存在或无法解析时返回空的Partial，不在此处校验取值
func LoadFile(args Partial) Partial {
	filePath := DefaultConfigFile
	if args.ConfigFile != nil {
		filePath = *args.ConfigFile
	}

	v, err := util.ReadConfig(filePath)
	if err != nil {
		return Partial{}
	}

	get := func(key string) *string {
		if !v.IsSet(key) {
			return nil
		}
		return String(v.GetString(key))
	}

	return Partial{
		InputFile:  get(KeyInputFile),
		OutputDir:  get(KeyOutputDir),
		Verbosity:  get(KeyVerbosity),
		LogLevel:   get(KeyLogLevel),
		LogFile:    get(KeyLogFile),
		ConfigFile: get(KeyConfigFile),
	}
}
