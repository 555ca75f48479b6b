package config

// 配置项名称，命令行参数与配置文件共用
const (
	KeyInputFile  = "input_file"
	KeyOutputDir  = "output_dir"
	KeyVerbosity  = "verbosity"
	KeyQuiet      = "quiet"
	KeyLogLevel   = "log_level"
	KeyLogFile    = "log_file"
	KeyConfigFile = "config_file"
)

// 内置默认值
const (
	DefaultInputFile  = "test/fixtures/sample_input.txt"
	DefaultOutputDir  = "."
	DefaultVerbosity  = LevelWarn
	DefaultLogLevel   = LevelWarn
	DefaultLogFile    = "logs/general.log"
	DefaultConfigFile = "config/configuration.yaml"
)

// 合并后的最终配置，所有字段都有确定的值，由Merge生成后只读
type Config struct {
	InputFile  string
	OutputDir  string
	Verbosity  Level
	LogLevel   Level
	LogFile    string
	ConfigFile string
}

// 内置默认配置
func Default() Config {
	return Config{
		InputFile:  DefaultInputFile,
		OutputDir:  DefaultOutputDir,
		Verbosity:  DefaultVerbosity,
		LogLevel:   DefaultLogLevel,
		LogFile:    DefaultLogFile,
		ConfigFile: DefaultConfigFile,
	}
}

// 单一来源（命令行或配置文件）的配置，nil表示未设置
// 级别字段保存原始名称，由Merge负责转换
type Partial struct {
	InputFile  *string
	OutputDir  *string
	Verbosity  *string
	LogLevel   *string
	LogFile    *string
	ConfigFile *string

	// 仅命令行可设置
	Quiet bool
}

// 用于填充Partial字段
func String(s string) *string {
	return &s
}
