package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/hsutools/internal/display"
	"github.com/harrison/hsutools/internal/i18n"
	"github.com/harrison/hsutools/internal/imaging"
)

func newResizeCommand(s *session) *cobra.Command {
	lang := s.lang
	cmd := &cobra.Command{
		Use:   "resize",
		Short: lang.Tr("resize.help", nil),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResize(s, cmd)
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("input", ".", lang.Tr("resize.input", nil))
	cmd.Flags().String("output", "", lang.Tr("resize.output", nil))
	cmd.Flags().Int("width", 0, lang.Tr("resize.width", nil))
	cmd.Flags().Int("height", 0, lang.Tr("resize.height", nil))
	cmd.Flags().Int("max-width", 0, lang.Tr("resize.max_width", nil))
	cmd.Flags().Int("max-height", 0, lang.Tr("resize.max_height", nil))
	cmd.Flags().Float64("scale", 0, lang.Tr("resize.scale", nil))
	cmd.Flags().Bool("keep-aspect", true, lang.Tr("resize.keep_aspect", nil))
	cmd.Flags().Bool("allow-upscale", false, lang.Tr("resize.allow_upscale", nil))
	cmd.Flags().Int("quality", imaging.DefaultQuality, lang.Tr("resize.quality", nil))
	cmd.Flags().String("format", "", lang.Tr("resize.format", nil))
	cmd.Flags().String("suffix", "", lang.Tr("resize.suffix", nil))
	cmd.Flags().Bool("overwrite", false, lang.Tr("resize.overwrite", nil))
	cmd.Flags().Bool("recursive", false, lang.Tr("resize.recursive", nil))
	cmd.Flags().Bool("include-hidden", false, lang.Tr("resize.include_hidden", nil))
	cmd.Flags().StringSliceP("ignore", "i", nil, lang.Tr("resize.ignore", nil))

	return cmd
}

// resizeOptions merges the resize config section with explicitly set flags.
func resizeOptions(s *session, cmd *cobra.Command) (string, imaging.ResizeOptions, error) {
	flags := cmd.Flags()
	rc := s.cfg.Resize

	intFlag := func(name string, dst *int) {
		if flags.Changed(name) {
			*dst, _ = flags.GetInt(name)
		}
	}
	boolFlag := func(name string, dst *bool) {
		if flags.Changed(name) {
			*dst, _ = flags.GetBool(name)
		}
	}
	stringFlag := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}

	// Sizing flags replace the configured sizing as a group.
	for _, name := range []string{"width", "height", "max-width", "max-height", "scale"} {
		if flags.Changed(name) {
			rc.Width, rc.Height, rc.MaxWidth, rc.MaxHeight, rc.Scale = 0, 0, 0, 0, 0
			break
		}
	}

	intFlag("width", &rc.Width)
	intFlag("height", &rc.Height)
	intFlag("max-width", &rc.MaxWidth)
	intFlag("max-height", &rc.MaxHeight)
	if flags.Changed("scale") {
		rc.Scale, _ = flags.GetFloat64("scale")
	}
	boolFlag("keep-aspect", &rc.KeepAspect)
	boolFlag("allow-upscale", &rc.AllowUpscale)
	intFlag("quality", &rc.Quality)
	stringFlag("format", &rc.Format)
	stringFlag("suffix", &rc.Suffix)
	boolFlag("recursive", &rc.Recursive)

	if rc.Quality < 1 || rc.Quality > 100 {
		return "", imaging.ResizeOptions{}, errors.New(s.tr("resize.bad_quality", nil))
	}

	input, _ := flags.GetString("input")
	output, _ := flags.GetString("output")
	overwrite, _ := flags.GetBool("overwrite")
	includeHidden, _ := flags.GetBool("include-hidden")

	return input, imaging.ResizeOptions{
		Directive: imaging.SizingDirective{
			Width:        rc.Width,
			Height:       rc.Height,
			MaxWidth:     rc.MaxWidth,
			MaxHeight:    rc.MaxHeight,
			Scale:        rc.Scale,
			KeepAspect:   rc.KeepAspect,
			AllowUpscale: rc.AllowUpscale,
		},
		OutputDir:     output,
		Quality:       rc.Quality,
		Format:        rc.Format,
		Suffix:        rc.Suffix,
		Overwrite:     overwrite,
		Recursive:     rc.Recursive,
		IncludeHidden: includeHidden,
		IgnoreNames:   s.ignoreNames(cmd),
	}, nil
}

func runResize(s *session, cmd *cobra.Command) error {
	input, opts, err := resizeOptions(s, cmd)
	if err != nil {
		return err
	}
	if err := opts.Directive.Validate(); err != nil {
		if errors.Is(err, imaging.ErrNoSizing) {
			return fmt.Errorf("%s: %w", s.tr("resize.need_size", nil), err)
		}
		return err
	}

	var progress *display.ProgressIndicator
	opts.Logger = s.log
	opts.OnImage = func(current, total int, path string) {
		if progress == nil {
			progress = display.NewProgressIndicator(s.out, total)
			progress.Start(s.tr("resize.start", nil))
		}
		progress.Step(path)
	}

	written, err := imaging.ResizeImages(input, opts)
	if err != nil {
		return fmt.Errorf("resize %s: %w", input, err)
	}

	if len(written) == 0 || progress == nil {
		fmt.Fprintln(s.out, s.tr("resize.none", nil))
		return nil
	}

	output := opts.OutputDir
	if output == "" {
		output = filepath.Join(input, imaging.DefaultOutputDirName)
	}
	progress.Complete(s.tr("resize.success", i18n.Args{"count": len(written), "output": output}))
	return nil
}
