package enum

// 退出码沿用sysexits.h的定义
const (
	ExitOK        = 0
	ExitUsage     = 64 // command line usage error
	ExitNoInput   = 66 // cannot open input
	ExitCantCreat = 73 // can't create output file
	ExitIOErr     = 74 // input/output error
	ExitNoPerm    = 77 // permission denied
	ExitConfig    = 78 // configuration error
)

// 路径校验时要求的访问方式
type AccessMode uint8

const (
	AccessRead AccessMode = iota
	AccessWrite
)

func (m AccessMode) String() string {
	switch m {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	}
	return "unknown"
}

const (
	// 输入文件必须是纯文本
	MimeTextPlain = "text/plain"

	// 写文件时每次写入的块大小
	ChunkSize = 4096
)
