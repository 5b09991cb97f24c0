package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/hsutools/internal/config"
	"github.com/harrison/hsutools/internal/display"
	"github.com/harrison/hsutools/internal/docx"
	"github.com/harrison/hsutools/internal/filelock"
	"github.com/harrison/hsutools/internal/i18n"
	"github.com/harrison/hsutools/internal/logger"
	"github.com/harrison/hsutools/internal/s2tw"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// deps are the external capabilities the commands use. Tests replace them.
type deps struct {
	interactive func() bool
	confirm     func(title string, lang i18n.Lang) (bool, error)
	input       func(title string) (string, error)
	newEngine   func(profile string) (s2tw.Transformer, error)
	newDocx     func() *docx.Converter
}

func defaultDeps() deps {
	return deps{
		interactive: stdinIsTerminal,
		confirm:     huhConfirm,
		input:       huhInput,
		newEngine:   s2tw.NewOpenCC,
		newDocx:     docx.NewConverter,
	}
}

// session is the state shared by the subcommands of one invocation.
// It is filled in by the root command's PersistentPreRunE.
type session struct {
	deps

	lang   i18n.Lang
	yes    bool
	cfg    *config.Config
	log    *logger.ConsoleLogger
	out    io.Writer
	errOut io.Writer
}

// tr formats a catalog message in the session language.
func (s *session) tr(key string, args i18n.Args) string {
	return s.lang.Tr(key, args)
}

// proceed asks for confirmation unless --yes was given or stdin is not a terminal.
func (s *session) proceed(key string) (bool, error) {
	if s.yes || !s.interactive() {
		return true, nil
	}
	return s.confirm(s.tr(key, nil), s.lang)
}

// more renders the preview trailer for n hidden entries.
func (s *session) more(n int) string {
	return s.tr("common.more", i18n.Args{"count": n})
}

// reportFailures prints per-item failures as a warning on stderr.
func (s *session) reportFailures(failures []error) {
	if len(failures) == 0 {
		return
	}
	title := s.tr("common.failures", i18n.Args{"count": len(failures)})
	display.FailureWarning(title, failures).Display(s.errOut)
}

// NewRootCommand creates and returns the root cobra command for hsutools.
// lang localizes help text; --lang, HSU_LANG, and the config file select the
// language of messages at run time.
func NewRootCommand(lang i18n.Lang) *cobra.Command {
	return newRootCommand(lang, defaultDeps())
}

func newRootCommand(lang i18n.Lang, d deps) *cobra.Command {
	s := &session{deps: d, lang: lang}

	cmd := &cobra.Command{
		Use:     "hsutools",
		Short:   lang.Tr("app.help", nil),
		Long:    lang.Tr("app.help", nil),
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringP("lang", "l", "", lang.Tr("option.lang", nil))
	cmd.PersistentFlags().String("config", "", lang.Tr("option.config", nil))
	cmd.PersistentFlags().String("log-level", "", lang.Tr("option.log_level", nil))
	cmd.PersistentFlags().BoolP("yes", "y", false, lang.Tr("option.yes", nil))

	cmd.AddCommand(newResizeCommand(s))
	cmd.AddCommand(newS2TWCommand(s))
	cmd.AddCommand(newRenameCommand(s))
	cmd.AddCommand(newTopdfCommand(s))

	return cmd
}

// setup loads configuration, merges global flags, and builds the logger.
func (s *session) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	s.out = cmd.OutOrStdout()
	s.errOut = cmd.ErrOrStderr()
	s.yes, _ = flags.GetBool("yes")

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	configPath, _ := flags.GetString("config")
	cfg, _, err := config.Discover(cwd, configPath)
	if err != nil {
		return err
	}

	var langFlag, levelFlag *string
	if flags.Changed("lang") {
		v, _ := flags.GetString("lang")
		langFlag = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		levelFlag = &v
	}
	cfg.MergeWithFlags(langFlag, levelFlag)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	switch {
	case langFlag != nil:
		s.lang = i18n.Normalize(*langFlag)
	case os.Getenv(i18n.EnvVar) != "":
		s.lang = i18n.Normalize(os.Getenv(i18n.EnvVar))
	case cfg.Lang != "":
		s.lang = cfg.Language()
	}

	s.cfg = cfg
	s.log = logger.NewConsoleLogger(s.errOut, cfg.LogLevel)
	return nil
}

// ignoreNames returns the -i values when given, otherwise the configured names.
func (s *session) ignoreNames(cmd *cobra.Command) []string {
	if cmd.Flags().Changed("ignore") {
		names, _ := cmd.Flags().GetStringSlice("ignore")
		return names
	}
	return s.cfg.IgnoreNames
}

// lockTree takes the advisory tree lock for path, mapping contention to a
// localized error.
func (s *session) lockTree(path string) (*filelock.FileLock, error) {
	lock, err := filelock.AcquireTree(path)
	if err != nil {
		if errors.Is(err, filelock.ErrLocked) {
			return nil, fmt.Errorf("%s: %w", s.tr("common.locked", i18n.Args{"path": path}), filelock.ErrLocked)
		}
		return nil, err
	}
	return lock, nil
}
