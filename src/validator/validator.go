// 检查输入、输出路径是否可用
// 写权限的判断不依赖os层面的access查询（ACL、挂载参数下不可靠），而是真实地创建、删除一个探测文件
package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/andrewyi/fetcher/src/enum"
)

// 路径检查结果，Code沿用sysexits退出码，0表示成功且不会用于任何失败
type Outcome struct {
	Code    int
	Message string
}

func (o Outcome) OK() bool {
	return o.Code == enum.ExitOK
}

var fileIsFine = Outcome{Code: enum.ExitOK, Message: "File is fine"}

// VerifyPath 检查path能否按mode访问
// 读：expectedType非空时还要比较文件的内容类型；写：只检查path的上级目录
// 返回error表示环境异常（而非校验失败），由调用方终止程序
func VerifyPath(path string, mode enum.AccessMode, expectedType string) (Outcome, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Outcome{}, fmt.Errorf("fail to resolve path %s, err: %w", path, err)
	}

	switch mode {
	case enum.AccessRead:
		return verifyRead(path, abs, expectedType)
	case enum.AccessWrite:
		return verifyWrite(path, abs)
	}
	return Outcome{}, fmt.Errorf("unsupported access mode: %s", mode)
}

func verifyRead(path, abs, expectedType string) (Outcome, error) {
	info, err := os.Stat(abs)
	if err != nil {
		return Outcome{enum.ExitNoInput, fmt.Sprintf("Not a valid path: %s\n", path)}, nil
	}
	if !info.Mode().IsRegular() {
		return Outcome{enum.ExitNoInput, fmt.Sprintf("Not a valid file: %s\n", path)}, nil
	}

	f, err := os.Open(abs)
	if err != nil {
		if os.IsPermission(err) {
			return Outcome{enum.ExitNoPerm, fmt.Sprintf("No permission to read file: %s\n", path)}, nil
		}
		return Outcome{}, fmt.Errorf("fail to open %s, err: %w", path, err)
	}
	defer f.Close()

	if expectedType == "" {
		return fileIsFine, nil
	}

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return Outcome{}, fmt.Errorf("fail to detect file type of %s, err: %w", path, err)
	}
	if !matchType(mtype, expectedType) {
		probed := mediaType(mtype.String())
		return Outcome{enum.ExitIOErr, fmt.Sprintf("Wrong file type \"%s\": %s\n", probed, path)}, nil
	}
	return fileIsFine, nil
}

// mimetype会把文本细分为text/csv等子类型，需沿着父类型逐级比较
func matchType(mtype *mimetype.MIME, expectedType string) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is(expectedType) {
			return true
		}
	}
	return false
}

func verifyWrite(path, abs string) (Outcome, error) {
	dir := filepath.Dir(abs)
	shown := filepath.Dir(path)

	info, err := os.Stat(dir)
	if err != nil {
		return Outcome{enum.ExitCantCreat, fmt.Sprintf("Not a valid path for output: %s\n", shown)}, nil
	}
	if !info.IsDir() {
		return Outcome{enum.ExitCantCreat, fmt.Sprintf("Not a directory: %s\n", shown)}, nil
	}

	probe := filepath.Join(dir, ".probe-"+uuid.NewString())
	f, err := os.OpenFile(probe, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsPermission(err) {
			return Outcome{enum.ExitNoPerm, fmt.Sprintf("No permission to write to directory: %s\n", shown)}, nil
		}
		return Outcome{}, fmt.Errorf("fail to probe directory %s, err: %w", shown, err)
	}
	f.Close()
	if err = os.Remove(probe); err != nil {
		return Outcome{}, fmt.Errorf("fail to remove probe file in %s, err: %w", shown, err)
	}
	return fileIsFine, nil
}

// "text/plain; charset=utf-8" -> "text/plain"
func mediaType(s string) string {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
