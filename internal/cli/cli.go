package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/passivetree/internal/app"
	"github.com/katalvlaran/passivetree/optimizer"
	"github.com/katalvlaran/passivetree/profile"
)

// Exit codes.
const (
	ExitRuntime = 1
	ExitUsage   = 2
)

// EnvPrefix prefixes every environment variable read by Parse.
const EnvPrefix = "TREEOPT_"

// ExitError carries the exit code for a failure.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Env holds the environment defaults; flags override them.
type Env struct {
	Tree      string `env:"TREE"`
	Profile   string `env:"PROFILE"`
	Builds    string `env:"BUILDS"`
	Refine    int    `env:"REFINE" envDefault:"0"`
	Workers   int    `env:"WORKERS" envDefault:"4"`
	Format    string `env:"FORMAT" envDefault:"text"`
	Out       string `env:"OUT"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// LoadDotEnv loads path into the process environment when the file exists.
// Variables already set win.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &ExitError{Code: ExitUsage, Message: fmt.Sprintf("load %s: %v", path, err)}
	}

	return nil
}

// ParseEnv reads TREEOPT_* variables from environ, or from the process
// environment when environ is nil.
func ParseEnv(environ map[string]string) (Env, error) {
	var e Env
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}

	return e, nil
}

// Parse processes command line arguments over the environment defaults. It
// returns the config, whether the program should exit cleanly, or an
// ExitError.
func Parse(args []string, output io.Writer, environ map[string]string) (*app.Config, bool, error) {
	defaults, err := ParseEnv(environ)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("treeopt", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
treeopt - budgeted passive tree optimiser.

Usage:
  treeopt -tree TREE.json -profile BUILDS.hcl [options]
  treeopt -tree TREE.json -list-keystones

Every option may also be set with a TREEOPT_<NAME> environment variable,
for example TREEOPT_LOG_LEVEL=debug. A .env file in the working directory
is read first.

Options:
`)
		flagSet.PrintDefaults()
	}

	tree := flagSet.String("tree", defaults.Tree, "Path to the passive tree JSON.")
	prof := flagSet.String("profile", defaults.Profile, "Path to the build profile (.hcl, .yaml or .yml).")
	builds := flagSet.String("build", defaults.Builds, "Comma separated build names to run; all builds when empty.")
	refine := flagSet.Int("refine", defaults.Refine, "Leaf swap refinement rounds after greedy allocation.")
	workers := flagSet.Int("workers", defaults.Workers, "Number of builds optimised concurrently.")
	format := flagSet.String("format", defaults.Format, "Output format. Options: 'text' or 'json'.")
	out := flagSet.String("out", defaults.Out, "Output file; stdout when empty.")
	logLevel := flagSet.String("log-level", defaults.LogLevel, "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormat := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'console' or 'json'.")
	listKeystones := flagSet.Bool("list-keystones", false, "List the tree's keystones grouped by role and exit.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}

		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}
	if *tree == "" && *prof == "" && !*listKeystones {
		flagSet.Usage()

		return nil, true, nil
	}

	cfg, err := app.NewConfig(app.Config{
		TreePath:      *tree,
		ProfilePath:   *prof,
		Builds:        splitList(*builds),
		Refine:        *refine,
		Workers:       *workers,
		Format:        *format,
		OutPath:       *out,
		LogLevel:      *logLevel,
		LogFormat:     *logFormat,
		ListKeystones: *listKeystones,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	return cfg, false, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// usageErrors are failures caused by what the user asked for rather than by
// the run itself.
var usageErrors = []error{
	app.ErrConfig,
	optimizer.ErrInvalidConfig,
	profile.ErrUnsupportedFormat,
	profile.ErrDecode,
	profile.ErrNoBuilds,
	profile.ErrDuplicateName,
	profile.ErrBuildNotFound,
}

// Code maps err to a process exit code: the ExitError code when err is one,
// ExitUsage for configuration and profile errors, ExitRuntime otherwise and
// 0 for nil.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	for _, target := range usageErrors {
		if errors.Is(err, target) {
			return ExitUsage
		}
	}

	return ExitRuntime
}
