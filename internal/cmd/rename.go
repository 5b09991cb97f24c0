package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/hsutools/internal/display"
	"github.com/harrison/hsutools/internal/i18n"
	"github.com/harrison/hsutools/internal/renamer"
)

func newRenameCommand(s *session) *cobra.Command {
	lang := s.lang
	cmd := &cobra.Command{
		Use:   "rename",
		Short: lang.Tr("rename.help", nil),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(s, cmd)
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("path", ".", lang.Tr("rename.path", nil))
	cmd.Flags().String("find", "", lang.Tr("rename.find", nil))
	cmd.Flags().String("replace", "", lang.Tr("rename.replace", nil))
	cmd.Flags().Bool("include-dirs", false, lang.Tr("rename.include_dirs", nil))
	cmd.Flags().Bool("include-hidden", false, lang.Tr("rename.include_hidden", nil))
	cmd.Flags().StringSliceP("ignore", "i", nil, lang.Tr("rename.ignore", nil))

	return cmd
}

// renameTexts reads --find and --replace, prompting for missing values on a terminal.
func renameTexts(s *session, cmd *cobra.Command) (string, string, error) {
	flags := cmd.Flags()
	find, _ := flags.GetString("find")
	replace, _ := flags.GetString("replace")

	if !s.interactive() {
		return find, replace, nil
	}

	var err error
	if find == "" {
		if find, err = s.input(s.tr("rename.prompt_find", nil)); err != nil {
			return "", "", err
		}
	}
	if !flags.Changed("replace") {
		if replace, err = s.input(s.tr("rename.prompt_replace", nil)); err != nil {
			return "", "", err
		}
	}
	return find, replace, nil
}

func runRename(s *session, cmd *cobra.Command) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("path")
	includeDirs, _ := flags.GetBool("include-dirs")
	includeHidden, _ := flags.GetBool("include-hidden")

	find, replace, err := renameTexts(s, cmd)
	if err != nil {
		return err
	}

	lock, err := s.lockTree(path)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	ops, err := renamer.Plan(path, renamer.Options{
		Find:          find,
		Replace:       replace,
		IncludeDirs:   includeDirs,
		IgnoreNames:   s.ignoreNames(cmd),
		IncludeHidden: includeHidden,
	})
	if err != nil {
		return err
	}
	if len(ops) == 0 {
		fmt.Fprintln(s.out, s.tr("rename.none_found", i18n.Args{"text": find}))
		return nil
	}

	lines := make([]string, 0, len(ops))
	for _, op := range ops {
		lines = append(lines, fmt.Sprintf("%s → %s", filepath.Base(op.OldPath), filepath.Base(op.NewPath)))
	}
	display.Preview{
		Header: s.tr("rename.preview_header", i18n.Args{"count": len(ops)}) + "\n" +
			s.tr("rename.find_replace", i18n.Args{"find": find, "replace": replace}),
		Lines: lines,
		More:  s.more,
	}.Display(s.out)

	ok, err := s.proceed("rename.confirm")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.out, s.tr("common.cancelled", nil))
		return nil
	}

	done, failures := renamer.Apply(ops)
	for _, op := range done {
		s.log.LogDebug(fmt.Sprintf("renamed %s -> %s", op.OldPath, op.NewPath))
	}

	if len(done) == 0 {
		fmt.Fprintln(s.out, s.tr("rename.none_updated", nil))
	} else {
		display.Success(s.out, s.tr("rename.success", i18n.Args{"count": len(done)}))
	}
	s.reportFailures(failures)
	return nil
}
