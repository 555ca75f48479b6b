package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/andrewyi/fetcher/src/config"
	"github.com/andrewyi/fetcher/src/core"
	"github.com/andrewyi/fetcher/src/downloader"
	"github.com/andrewyi/fetcher/src/enum"
	"github.com/andrewyi/fetcher/src/filestorage"
)

// 便于测试替换
var (
	verifyConfig = config.Verify
	runDownloads = core.Run
)

type Server struct {
	ctx     context.Context
	cancel  context.CancelFunc
	logger  *log.Logger
	logFile *os.File
	config  config.Config

	downloader downloader.Downloader
	storage    filestorage.FileStorage
}

func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Configure 合并命令行、配置文件与默认值并进行校验
// 校验失败时返回cli.ExitCoder，由cli负责输出到stderr并以对应退出码结束进程
// 此时日志尚未初始化，不能使用logger
func Configure(args config.Partial) (config.Config, error) {
	cfg := config.Merge(args, config.LoadFile(args))

	outcome, err := verifyConfig(cfg)
	if err != nil {
		return cfg, cli.NewExitError(fmt.Sprintf("Unexpected error: %v", err), enum.ExitIOErr)
	}
	if !outcome.OK() {
		return cfg, cli.NewExitError(strings.TrimRight(outcome.Message, "\n"), outcome.Code)
	}
	return cfg, nil
}

func (s *Server) Start(ctx *cli.Context) error {
	args, err := ParseArgs(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), enum.ExitUsage)
	}

	cfg, err := Configure(args)
	if err != nil {
		return err
	}
	s.config = cfg

	if err = s.initLog(); err != nil {
		return cli.NewExitError(fmt.Sprintf("fail to open log file, err: %v", err), enum.ExitCantCreat)
	}
	defer s.Stop()

	s.logger.WithFields(log.Fields{
		config.KeyInputFile:  cfg.InputFile,
		config.KeyOutputDir:  cfg.OutputDir,
		config.KeyVerbosity:  cfg.Verbosity,
		config.KeyLogLevel:   cfg.LogLevel,
		config.KeyLogFile:    cfg.LogFile,
		config.KeyConfigFile: cfg.ConfigFile,
	}).Debug("configuration resolved")

	s.downloader = downloader.NewSimpleDownloader(downloader.DefaultTimeout)
	s.storage = filestorage.NewSimpleFileStorage(cfg.OutputDir)

	summary, err := runDownloads(s.ctx, s.logger, cfg.InputFile, s.downloader, s.storage)
	if err != nil {
		if errors.Is(err, core.ErrInputFile) {
			return cli.NewExitError(err.Error(), enum.ExitIOErr)
		}
		return err
	}

	s.logger.WithFields(log.Fields{
		"total":     summary.Total,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
	}).Info("all urls processed")
	return nil
}

func (s *Server) Stop() {
	s.cancel()
	if s.logFile != nil {
		s.logFile.Close()
		s.logFile = nil
	}
}
