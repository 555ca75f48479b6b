package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/urfave/cli.v1"

	"github.com/andrewyi/fetcher/src/config"
	"github.com/andrewyi/fetcher/src/core"
	"github.com/andrewyi/fetcher/src/downloader"
	"github.com/andrewyi/fetcher/src/filestorage"
	"github.com/andrewyi/fetcher/src/validator"
)

func newApp(action cli.ActionFunc) *cli.App {
	app := cli.NewApp()
	app.Name = "fetcher"
	app.HideVersion = true
	app.Flags = Flags()
	app.Action = action
	return app
}

func parse(t *testing.T, argv ...string) (config.Partial, error) {
	t.Helper()
	var (
		p    config.Partial
		perr error
	)
	app := newApp(func(ctx *cli.Context) error {
		p, perr = ParseArgs(ctx)
		return nil
	})
	require.NoError(t, app.Run(append([]string{"fetcher"}, argv...)))
	return p, perr
}

func TestParseArgsUnset(t *testing.T) {
	p, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, config.Partial{}, p)
}

func TestParseArgsShortAndLong(t *testing.T) {
	p, err := parse(t,
		"-i", " urls.txt ",
		"--output_dir", "out",
		"-v", "DEBUG",
		"--log_level", "error",
		"-f", "run.log",
		"-c", "conf.yaml",
	)
	require.NoError(t, err)
	assert.Equal(t, config.Partial{
		InputFile:  config.String("urls.txt"),
		OutputDir:  config.String("out"),
		Verbosity:  config.String("DEBUG"),
		LogLevel:   config.String("error"),
		LogFile:    config.String("run.log"),
		ConfigFile: config.String("conf.yaml"),
	}, p)
}

func TestParseArgsQuiet(t *testing.T) {
	p, err := parse(t, "-q")
	require.NoError(t, err)
	assert.True(t, p.Quiet)
	assert.Nil(t, p.Verbosity)
	assert.Equal(t, config.LevelQuiet, config.Merge(p, config.Partial{}).Verbosity)
}

func TestParseArgsQuietExcludesVerbosity(t *testing.T) {
	_, err := parse(t, "-q", "--verbosity", "info")
	assert.ErrorIs(t, err, ErrExclusiveVerbosity)
}

type fixture struct {
	dir    string
	input  string
	out    string
	logDir string
}

func newFixture(t *testing.T, urls ...string) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:    dir,
		input:  filepath.Join(dir, "urls.txt"),
		out:    filepath.Join(dir, "out"),
		logDir: filepath.Join(dir, "logs"),
	}
	require.NoError(t, os.Mkdir(f.logDir, 0755))
	require.NoError(t, os.WriteFile(f.input, []byte(strings.Join(urls, "\n")+"\n"), 0644))
	return f
}

func (f fixture) args() config.Partial {
	return config.Partial{
		InputFile:  config.String(f.input),
		OutputDir:  config.String(f.out),
		LogFile:    config.String(filepath.Join(f.logDir, "general.log")),
		ConfigFile: config.String(filepath.Join(f.dir, "missing.yaml")),
	}
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	coder, ok := err.(cli.ExitCoder)
	require.True(t, ok, "expected cli.ExitCoder, got %T", err)
	return coder.ExitCode()
}

func TestConfigure(t *testing.T) {
	f := newFixture(t, "http://example.com/a.png")

	cfg, err := Configure(f.args())
	require.NoError(t, err)
	assert.Equal(t, f.input, cfg.InputFile)
	assert.Equal(t, config.LevelWarn, cfg.Verbosity)
}

func TestConfigureUsesConfigFile(t *testing.T) {
	f := newFixture(t, "http://example.com/a.png")
	conf := filepath.Join(f.dir, "conf.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("verbosity: info\nlog_level: debug\n"), 0644))

	args := f.args()
	args.ConfigFile = config.String(conf)
	cfg, err := Configure(args)
	require.NoError(t, err)
	assert.Equal(t, config.LevelInfo, cfg.Verbosity)
	assert.Equal(t, config.LevelDebug, cfg.LogLevel)
	assert.Equal(t, conf, cfg.ConfigFile)
}

func TestConfigureFailures(t *testing.T) {
	f := newFixture(t, "http://example.com/a.png")

	args := f.args()
	args.InputFile = config.String(f.dir)
	_, err := Configure(args)
	assert.Equal(t, 66, exitCode(t, err))
	assert.Equal(t, "Not a valid file: "+f.dir, err.Error())

	args = f.args()
	args.OutputDir = config.String(filepath.Join(f.dir, "a", "b"))
	_, err = Configure(args)
	assert.Equal(t, 73, exitCode(t, err))

	args = f.args()
	args.Verbosity = config.String("shout")
	_, err = Configure(args)
	assert.Equal(t, 78, exitCode(t, err))
}

func TestNewLoggerThresholds(t *testing.T) {
	var console, file bytes.Buffer
	logger := newLogger(&console, config.LevelWarn, &file, config.LevelDebug)

	logger.Debug("debug message")
	logger.Warn("warn message")

	assert.NotContains(t, console.String(), "debug message")
	assert.Contains(t, console.String(), "warn message")
	assert.Contains(t, file.String(), "debug message")
	assert.Contains(t, file.String(), "warn message")
}

func TestNewLoggerCallerOnlyInFile(t *testing.T) {
	var console, file bytes.Buffer
	logger := newLogger(&console, config.LevelInfo, &file, config.LevelInfo)

	logger.Info("hello")

	assert.Contains(t, console.String(), "hello")
	assert.Contains(t, console.String(), "time=")
	assert.NotContains(t, console.String(), "func=")
	assert.NotContains(t, console.String(), "file=")
	assert.Contains(t, file.String(), "func=")
	assert.Contains(t, file.String(), "server_test.go")
}

func TestNewLoggerQuiet(t *testing.T) {
	var console, file bytes.Buffer
	logger := newLogger(&console, config.LevelQuiet, &file, config.LevelError)

	logger.Warn("warn message")
	logger.WithField("url", "http://example.com").Error("error message")

	assert.Empty(t, console.String())
	assert.NotContains(t, file.String(), "warn message")
	assert.Contains(t, file.String(), "error message")
	assert.Equal(t, log.ErrorLevel, logger.GetLevel())
}

func TestStart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "png")
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL+"/a.png", srv.URL+"/missing.png")
	logFile := filepath.Join(f.logDir, "general.log")

	app := newApp(NewServer().Start)
	err := app.Run([]string{"fetcher",
		"-i", f.input,
		"-o", f.out,
		"-q",
		"-l", "info",
		"-f", logFile,
		"-c", filepath.Join(f.dir, "missing.yaml"),
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(f.out)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	content, err := os.ReadFile(filepath.Join(f.out, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "png", string(content))

	logged, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "status=404")
	assert.Contains(t, string(logged), "all urls processed")
}

func TestStartExitCodes(t *testing.T) {
	var stderr bytes.Buffer
	oldExiter, oldWriter := cli.OsExiter, cli.ErrWriter
	cli.OsExiter = func(int) {}
	cli.ErrWriter = &stderr
	t.Cleanup(func() {
		cli.OsExiter, cli.ErrWriter = oldExiter, oldWriter
		verifyConfig, runDownloads = config.Verify, core.Run
	})

	cases := []struct {
		name    string
		extra   []string
		verify  func(config.Config) (validator.Outcome, error)
		run     func(context.Context, *log.Logger, string, downloader.Downloader, filestorage.FileStorage) (core.Summary, error)
		code    int
		message string
	}{
		{
			name:    "quiet with verbosity",
			extra:   []string{"-q", "-v", "info"},
			code:    64,
			message: ErrExclusiveVerbosity.Error(),
		},
		{
			name:  "missing input",
			extra: []string{"-q", "-i", "does-not-exist.txt"},
			code:  66,
		},
		{
			name:  "environment failure during verification",
			extra: []string{"-q"},
			verify: func(config.Config) (validator.Outcome, error) {
				return validator.Outcome{}, errors.New("read-only file system")
			},
			code:    74,
			message: "Unexpected error: read-only file system",
		},
		{
			name:  "input file unreadable at download time",
			extra: []string{"-q"},
			run: func(context.Context, *log.Logger, string, downloader.Downloader, filestorage.FileStorage) (core.Summary, error) {
				return core.Summary{}, fmt.Errorf("%w: gone", core.ErrInputFile)
			},
			code: 74,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			verifyConfig, runDownloads = config.Verify, core.Run
			if c.verify != nil {
				verifyConfig = c.verify
			}
			if c.run != nil {
				runDownloads = c.run
			}

			f := newFixture(t, "http://example.com/a.png")
			argv := []string{"fetcher",
				"-i", f.input,
				"-o", f.out,
				"-f", filepath.Join(f.logDir, "general.log"),
				"-c", filepath.Join(f.dir, "missing.yaml"),
			}
			argv = append(argv, c.extra...)

			err := newApp(NewServer().Start).Run(argv)
			require.Error(t, err)
			assert.Equal(t, c.code, exitCode(t, err))
			if c.message != "" {
				assert.Equal(t, c.message, err.Error())
			}
		})
	}
}
