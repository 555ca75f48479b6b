package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/fetcher/src/downloader"
	"github.com/andrewyi/fetcher/src/filestorage"
	"github.com/andrewyi/fetcher/src/util"
)

var ErrInputFile = errors.New("input file unusable")

// 单次运行的处理统计，空行不计入
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

// Run 逐行读取输入文件并依次下载，单个url失败不会中断整个流程
// 只有输入文件无法打开或读取时才返回错误（此时已经通过了校验，理论上不会发生）
func Run(ctx context.Context, logger *log.Logger, inputFile string,
	d downloader.Downloader, s filestorage.FileStorage) (Summary, error) {

	var summary Summary

	file, err := os.Open(inputFile)
	if err != nil {
		logger.WithError(err).WithField("input_file", inputFile).Error("fail to open input file")
		return summary, fmt.Errorf("%w: %v", ErrInputFile, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)

	for scanner.Scan() {
		URL := strings.TrimSpace(scanner.Text())
		if URL == "" {
			logger.Debug("skip blank line")
			continue
		}

		summary.Total++
		if ProcessLine(ctx, logger, URL, d, s) {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}
	if err = scanner.Err(); err != nil {
		logger.WithError(err).WithField("input_file", inputFile).Error("fail to read input file")
		return summary, fmt.Errorf("%w: %v", ErrInputFile, err)
	}

	return summary, nil
}

// ProcessLine 下载单个url并写入文件，返回是否成功
func ProcessLine(ctx context.Context, logger *log.Logger, URL string,
	d downloader.Downloader, s filestorage.FileStorage) bool {

	entry := logger.WithField("url", URL)
	entry.Info("loading")

	res, err := d.Download(ctx, URL)
	if err != nil {
		entry.WithError(err).Error("fail to download")
		return false
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		entry.WithField("status", res.StatusCode).Warn("fail to download, unexpected status")
		return false
	}

	fileName, err := util.FileName(URL)
	if err != nil {
		entry.WithError(err).Error("fail to generate file name")
		return false
	}

	entry = entry.WithField("file", fileName)
	entry.WithField("status", res.StatusCode).Info("writing file")
	written, err := s.Store(fileName, res)
	if err != nil {
		entry.WithError(err).Error("fail to store content")
		return false
	}
	entry.WithField("bytes", written).Debug("done")
	return true
}
