package server

import (
	"errors"
	"strings"

	"gopkg.in/urfave/cli.v1"

	"github.com/andrewyi/fetcher/src/config"
)

var ErrExclusiveVerbosity = errors.New("argument -q/--quiet: not allowed with argument -v/--verbosity")

var levelChoices = "[" + strings.Join(config.LevelNames, ", ") + "]"

// Flags 不设置默认值，未指定的参数由配置文件或内置默认值补全
func Flags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  config.KeyInputFile + ", i",
			Usage: "input file: plain text list of urls, one per line",
		},
		cli.StringFlag{
			Name:  config.KeyOutputDir + ", o",
			Usage: "output directory: downloaded files will be written here",
		},
		cli.StringFlag{
			Name:  config.KeyVerbosity + ", v",
			Usage: "verbosity level for screen output: " + levelChoices,
		},
		cli.BoolFlag{
			Name:  config.KeyQuiet + ", q",
			Usage: "no output to screen, same as --verbosity quiet",
		},
		cli.StringFlag{
			Name:  config.KeyLogLevel + ", l",
			Usage: "verbosity level for log output: " + levelChoices,
		},
		cli.StringFlag{
			Name:  config.KeyLogFile + ", f",
			Usage: "file to write logs to",
		},
		cli.StringFlag{
			Name:  config.KeyConfigFile + ", c",
			Usage: "file to read config from, yaml format",
		},
	}
}

// ParseArgs 将命令行参数转换为Partial，只有显式给出的参数才会被设置
func ParseArgs(ctx *cli.Context) (config.Partial, error) {
	quiet := ctx.Bool(config.KeyQuiet)
	if quiet && ctx.IsSet(config.KeyVerbosity) {
		return config.Partial{}, ErrExclusiveVerbosity
	}

	get := func(key string) *string {
		if !ctx.IsSet(key) {
			return nil
		}
		return config.String(strings.TrimSpace(ctx.String(key)))
	}

	return config.Partial{
		InputFile:  get(config.KeyInputFile),
		OutputDir:  get(config.KeyOutputDir),
		Verbosity:  get(config.KeyVerbosity),
		LogLevel:   get(config.KeyLogLevel),
		LogFile:    get(config.KeyLogFile),
		ConfigFile: get(config.KeyConfigFile),
		Quiet:      quiet,
	}, nil
}
