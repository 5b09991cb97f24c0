package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/hsutools/internal/display"
	"github.com/harrison/hsutools/internal/fileutil"
	"github.com/harrison/hsutools/internal/i18n"
	"github.com/harrison/hsutools/internal/s2tw"
)

func newS2TWCommand(s *session) *cobra.Command {
	lang := s.lang
	cmd := &cobra.Command{
		Use:   "s2tw",
		Short: lang.Tr("s2tw.help", nil),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runS2TW(s, cmd)
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("path", ".", lang.Tr("s2tw.path", nil))
	cmd.Flags().StringSlice("ext", nil, lang.Tr("s2tw.ext", nil))
	cmd.Flags().Bool("no-content", false, lang.Tr("s2tw.no_content", nil))
	cmd.Flags().Bool("no-names", false, lang.Tr("s2tw.no_names", nil))
	cmd.Flags().Bool("no-backup", false, lang.Tr("s2tw.no_backup", nil))
	cmd.Flags().String("backup-dir", "", lang.Tr("s2tw.backup_dir", nil))
	cmd.Flags().Bool("include-hidden", false, lang.Tr("s2tw.include_hidden", nil))
	cmd.Flags().StringSliceP("ignore", "i", nil, lang.Tr("s2tw.ignore", nil))

	return cmd
}

func s2twOptions(s *session, cmd *cobra.Command) s2tw.Options {
	flags := cmd.Flags()
	sc := s.cfg.S2TW

	opts := s2tw.DefaultOptions()
	if len(sc.Extensions) > 0 {
		opts.Extensions = sc.Extensions
	}
	opts.CreateBackups = sc.CreateBackups
	opts.BackupDir = sc.BackupDir
	opts.BackupSuffix = sc.BackupSuffix
	opts.IgnoreNames = s.ignoreNames(cmd)

	if flags.Changed("ext") {
		opts.Extensions, _ = flags.GetStringSlice("ext")
	}
	if noContent, _ := flags.GetBool("no-content"); noContent {
		opts.ConvertContent = false
	}
	if noNames, _ := flags.GetBool("no-names"); noNames {
		opts.ConvertNames = false
	}
	if noBackup, _ := flags.GetBool("no-backup"); noBackup {
		opts.CreateBackups = false
	}
	if flags.Changed("backup-dir") {
		opts.BackupDir, _ = flags.GetString("backup-dir")
	}
	opts.IncludeHidden, _ = flags.GetBool("include-hidden")
	return opts
}

func runS2TW(s *session, cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("path")
	opts := s2twOptions(s, cmd)

	engine, err := s.newEngine(s.cfg.S2TW.Profile)
	if err != nil {
		return err
	}
	converter := s2tw.NewConverter(engine).WithLogger(s.log)

	lock, err := s.lockTree(path)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	candidates, err := s2twCandidates(path, opts)
	if err != nil {
		return err
	}
	display.Preview{
		Header: s.tr("s2tw.preview", i18n.Args{"path": path, "count": len(candidates)}),
		Lines:  candidates,
		More:   s.more,
	}.Display(s.out)

	ok, err := s.proceed("s2tw.confirm")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.out, s.tr("common.cancelled", nil))
		return nil
	}

	start := time.Now()
	results, stats, err := converter.ConvertTree(path, opts)
	if err != nil {
		return fmt.Errorf("s2tw %s: %w", path, err)
	}

	var failures []error
	for _, r := range results {
		s.log.LogConversionResult(r)
		if r.Failed() {
			failures = append(failures, fmt.Errorf("%s: %s", r.Path, r.Error))
		}
	}
	s.log.LogConversionSummary(stats, time.Since(start))

	fmt.Fprintln(s.out, s.tr("s2tw.stats", i18n.Args{
		"content": stats.FilesContentModified,
		"files":   stats.FilesRenamed,
		"dirs":    stats.DirsRenamed,
		"backups": stats.FilesBackedUp,
		"errors":  stats.Errors,
	}))
	if stats.Total() == 0 {
		fmt.Fprintln(s.out, s.tr("s2tw.none", nil))
	} else {
		display.Success(s.out, s.tr("s2tw.success", i18n.Args{"count": stats.Total()}))
	}
	s.reportFailures(failures)
	return nil
}

// s2twCandidates lists the files a conversion of path may touch, relative to path.
func s2twCandidates(path string, opts s2tw.Options) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{filepath.Base(path)}, nil
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = s2tw.DefaultTextExtensions
	}
	scan, err := fileutil.ScanDirectory(path, fileutil.ScanOptions{
		Extensions:    exts,
		Recursive:     true,
		IgnoreNames:   opts.IgnoreNames,
		IncludeHidden: opts.IncludeHidden,
	})
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(scan.Files))
	for _, f := range scan.Files {
		rel, err := filepath.Rel(root, f)
		if err != nil {
			rel = f
		}
		lines = append(lines, rel)
	}
	return lines, nil
}
