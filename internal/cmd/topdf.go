package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/hsutools/internal/display"
	"github.com/harrison/hsutools/internal/docx"
	"github.com/harrison/hsutools/internal/i18n"
)

func newTopdfCommand(s *session) *cobra.Command {
	lang := s.lang
	cmd := &cobra.Command{
		Use:   "topdf",
		Short: lang.Tr("topdf.help", nil),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTopdf(s, cmd)
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("path", ".", lang.Tr("topdf.path", nil))
	cmd.Flags().Bool("include-hidden", false, lang.Tr("topdf.include_hidden", nil))
	cmd.Flags().StringSliceP("ignore", "i", nil, lang.Tr("topdf.ignore", nil))

	return cmd
}

func runTopdf(s *session, cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("path")
	includeHidden, _ := cmd.Flags().GetBool("include-hidden")

	opts := docx.Options{
		IgnoreNames:   s.ignoreNames(cmd),
		IncludeHidden: includeHidden,
	}

	converter := s.newDocx()
	if s.cfg.Topdf.SofficePath != "" {
		converter.SofficePath = s.cfg.Topdf.SofficePath
	}
	converter.Timeout = s.cfg.Topdf.Timeout
	converter.Logger = s.log
	if _, err := converter.Binary(); err != nil {
		return err
	}

	docs, err := docx.FindDocuments(path, opts)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Fprintln(s.out, s.tr("topdf.none", nil))
		return nil
	}

	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, filepath.Base(d))
	}
	display.Preview{
		Header: s.tr("topdf.preview", i18n.Args{"count": len(docs)}),
		Lines:  names,
		More:   s.more,
	}.Display(s.out)

	ok, err := s.proceed("topdf.confirm")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.out, s.tr("common.cancelled", nil))
		return nil
	}

	progress := display.NewProgressIndicator(s.out, len(docs))
	progress.Start(s.tr("topdf.start", nil))
	opts.OnFile = func(current, total int, path string) {
		progress.Step(path)
	}

	result, err := converter.ConvertDirectory(cmd.Context(), path, opts)
	if err != nil {
		return err
	}

	if len(result.Converted) == 0 {
		fmt.Fprintln(s.out, s.tr("topdf.none_converted", nil))
	} else {
		progress.Complete(s.tr("topdf.success", i18n.Args{"count": len(result.Converted)}))
	}
	s.reportFailures(result.Failed)
	return nil
}
