package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/splitkit/pkg/config"
	"github.com/dmitrymomot/splitkit/pkg/entry"
	"github.com/dmitrymomot/splitkit/pkg/i18n"
	"github.com/dmitrymomot/splitkit/pkg/logger"
	"github.com/dmitrymomot/splitkit/pkg/requestid"
)

// ErrRejected is returned when a checked record fails validation.
var ErrRejected = errors.New("record rejected")

type app struct {
	cfg        Config
	log        *slog.Logger
	validator  *entry.Validator
	translator *i18n.Translator

	environ  map[string]string
	logOut   io.Writer
	envFiles []string
	lang     string
	format   string
	output   string
}

// Option adjusts the command before it runs.
type Option func(*app)

// WithEnvironment reads settings from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(a *app) { a.environ = vars }
}

// WithLogOutput redirects logs, which go to stderr by default.
func WithLogOutput(w io.Writer) Option {
	return func(a *app) { a.logOut = w }
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the splitcheck command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{logOut: os.Stderr}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:           "splitcheck",
		Short:         "Validate profiles, groups and expense splits",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.Context())
		},
	}

	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "load settings from these .env files")
	root.PersistentFlags().StringVar(&a.lang, "lang", "", "message language (default SPLITKIT_DEFAULT_LANG)")

	root.AddCommand(
		checkCmd(a, entry.KindProfile, "Validate a user profile", checkRecord(a, (*entry.Validator).ValidateProfile)),
		checkCmd(a, entry.KindGroup, "Validate a group and its members", checkRecord(a, (*entry.Validator).ValidateGroup)),
		checkCmd(a, entry.KindExpense, "Validate an expense and its splits", checkRecord(a, (*entry.Validator).ValidateExpense)),
		rulesCmd(a),
		serveCmd(a),
	)
	return root
}

func (a *app) init(ctx context.Context) error {
	loadOpts := []config.Option{config.WithPrefix(EnvPrefix)}
	switch {
	case a.environ != nil:
		loadOpts = append(loadOpts, config.WithEnvironment(a.environ))
	case len(a.envFiles) > 0:
		loadOpts = append(loadOpts, config.WithEnvFiles(a.envFiles...))
	}
	if err := config.Load(&a.cfg, loadOpts...); err != nil {
		return err
	}

	a.log = logger.New(
		logger.WithEnvironment(a.cfg.Env, "splitcheck"),
		logger.WithLevelName(a.cfg.LogLevel),
		logger.WithOutput(a.logOut),
		logger.WithContextExtractors(requestid.LogExtractor()),
	)

	policy, err := a.cfg.Policy.Policy()
	if err != nil {
		return err
	}
	a.validator, err = entry.New(policy, entry.WithLogger(a.log))
	if err != nil {
		return err
	}

	a.translator, err = i18n.Default(ctx,
		i18n.WithDefaultLanguage(a.cfg.DefaultLang),
		i18n.WithLogger(a.log.With(logger.Component("i18n"))),
	)
	if err != nil {
		return err
	}
	if a.lang == "" {
		a.lang = a.translator.DefaultLanguage()
	}
	return nil
}
