package config

// Merge 逐字段合并，优先级：命令行 > 配置文件 > 内置默认值
// quiet参数覆盖所有来源的verbosity；无法识别的级别名称得到零值，由Verify拒绝
func Merge(args, file Partial) Config {
	cfg := Default()

	pickString(&cfg.InputFile, args.InputFile, file.InputFile)
	pickString(&cfg.OutputDir, args.OutputDir, file.OutputDir)
	pickLevel(&cfg.Verbosity, args.Verbosity, file.Verbosity)
	if args.Quiet {
		cfg.Verbosity = LevelQuiet
	}
	pickLevel(&cfg.LogLevel, args.LogLevel, file.LogLevel)
	pickString(&cfg.LogFile, args.LogFile, file.LogFile)
	pickString(&cfg.ConfigFile, args.ConfigFile, file.ConfigFile)

	return cfg
}

func pick(arg, file *string) *string {
	if arg != nil {
		return arg
	}
	return file
}

func pickString(dst *string, arg, file *string) {
	if v := pick(arg, file); v != nil {
		*dst = *v
	}
}

func pickLevel(dst *Level, arg, file *string) {
	if v := pick(arg, file); v != nil {
		l, _ := ParseLevel(*v)
		*dst = l
	}
}
