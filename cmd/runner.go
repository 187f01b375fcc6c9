package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/plseed/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		loginCommand, generateCommand, historyCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// configure loads the config file, applies flag overrides and sets the log level.
//
// The default config path is optional and an empty path skips the file. Any other path passed explicitly must exist.
func (r *Runner) configure(cmd *cli.Command) error {
	shared.SetVerbose(r.logger, cmd.Bool("verbose"))

	path := cmd.String("config")
	if path == "" {
		r.logger.Debug("no config file, using defaults")
	} else if _, err := os.Stat(path); err == nil {
		config, err := shared.LoadConfig(path)
		if err != nil {
			return err
		}
		r.config = config
		r.logger.Debug("loaded config", "path", path)
	} else if cmd.IsSet("config") {
		return fmt.Errorf("%w: %s", shared.ErrMissingConfig, path)
	}

	overrides := []struct {
		flag   string
		target *string
	}{
		{"host", &r.config.Server.Host},
		{"email", &r.config.Credentials.Email},
		{"password", &r.config.Credentials.Password},
		{"tracks", &r.config.Input.Tracks},
		{"playlists", &r.config.Input.Playlists},
		{"journal", &r.config.Journal.Path},
	}
	for _, o := range overrides {
		if cmd.IsSet(o.flag) {
			*o.target = cmd.String(o.flag)
		}
	}

	return r.config.Validate()
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	output = append(output, '\n')
	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// progress writes a progress line; a failed write is logged and the run goes on.
func (r *Runner) progress(format string, args ...any) {
	if err := r.writePlain(format, args...); err != nil {
		r.logger.Warn("failed to print progress", "error", err)
	}
}
