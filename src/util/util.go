package util

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var ErrEmptyFileName = errors.New("empty file name")

// ReadConfig 读取配置文件，返回viper实例以便调用方区分"未设置"与"零值"
// 扩展名不在viper支持范围内（或没有扩展名）时一律按yaml解析，例如fetcher.conf
func ReadConfig(filePath string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(filePath)
	if !supportedExt(filepath.Ext(filePath)) {
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return v, nil
}

func supportedExt(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, e := range viper.SupportedExts {
		if e == ext {
			return true
		}
	}
	return false
}

var (
	hostReplacer = strings.NewReplacer(".", "_", ":", "_")
	pathReplacer = strings.NewReplacer("/", "_")
)

// FileName 根据url生成文件名：host中的.和:替换为_，再拼接上/替换为_的path
// 例如 http://example.com:8080/img/a.png -> example_com_8080_img_a.png
func FileName(u string) (string, error) {
	oURL, err := url.Parse(u)
	if err != nil {
		return "", err
	}
	name := hostReplacer.Replace(oURL.Host) + pathReplacer.Replace(oURL.Path)
	if name == "" {
		return "", ErrEmptyFileName
	}
	return name, nil
}
