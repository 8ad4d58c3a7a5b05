package runtime

import (
	"fmt"
	"io"
	"os"

	"githelper.dev/githelper/internal/config"
	"githelper.dev/githelper/internal/git"
	"githelper.dev/githelper/internal/tui"
	"githelper.dev/githelper/pkg/githelper"
)

// Options are the global command-line settings
type Options struct {
	RepoDir    string
	ConfigPath string
	LogFile    string
	Verbose    bool
	Out        io.Writer
}

// Context provides access to the repository and output for commands
type Context struct {
	Repo   *githelper.Repository
	Splog  *tui.Splog
	Config *config.Config
}

// NewContext loads configuration and sets up logging without binding a
// repository. Commands that create repositories, like clone, start here.
func NewContext(opts Options) (*Context, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		var err error
		configPath, err = config.GetConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logFile := opts.LogFile
	if logFile == "" {
		logFile = cfg.LogFile
	}
	if logFile == "" {
		logFile = tui.GetLogFilePath()
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	splog, err := tui.NewSplogWithConfig(out, logFile)
	if err != nil {
		return nil, err
	}

	if opts.Verbose || cfg.Verbose {
		githelper.EnableVerboseMode()
	}
	if githelper.IsVerbose() {
		splog.SetDebug(true)
	}

	return &Context{Splog: splog, Config: cfg}, nil
}

// GetContext returns a context bound to the repository selected by opts.
// Without an explicit directory, the repository containing the current
// directory is used.
func GetContext(opts Options) (*Context, error) {
	ctx, err := NewContext(opts)
	if err != nil {
		return nil, err
	}

	repoDir, err := resolveRepoDir(opts.RepoDir)
	if err != nil {
		_ = ctx.Close()
		return nil, err
	}

	repo, err := githelper.New(repoDir, ctx.RepositoryOptions()...)
	if err != nil {
		_ = ctx.Close()
		return nil, err
	}
	ctx.Repo = repo
	return ctx, nil
}

// RepositoryOptions returns the options every repository created by a
// command shares
func (c *Context) RepositoryOptions() []githelper.Option {
	return []githelper.Option{githelper.WithLogger(c.Splog)}
}

// Close releases the log file
func (c *Context) Close() error {
	return c.Splog.Close()
}

func resolveRepoDir(repoDir string) (string, error) {
	if repoDir != "" {
		return repoDir, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	if root, err := git.FindRepoRoot(wd); err == nil {
		return root, nil
	}
	return wd, nil
}
