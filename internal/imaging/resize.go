package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/harrison/hsutools/internal/filelock"
	"github.com/harrison/hsutools/internal/fileutil"
	"github.com/harrison/hsutools/internal/models"
)

// DefaultQuality is the JPEG quality used when ResizeOptions.Quality is zero.
const DefaultQuality = 90

// DefaultOutputDirName is the directory created under the input directory
// when no output directory is given.
const DefaultOutputDirName = "resized"

// ErrUnsupportedFormat is returned for an output format that cannot be encoded.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ImageExtensions lists the file extensions picked up by ResizeImages.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

var formatExtensions = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"gif":  ".gif",
	"bmp":  ".bmp",
	"tiff": ".tiff",
}

// Logger receives per-image diagnostics. It is satisfied by logger.ConsoleLogger.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

type noopLogger struct{}

func (noopLogger) LogDebug(string) {}
func (noopLogger) LogWarn(string)  {}

// ResizeOptions configures ResizeImages.
type ResizeOptions struct {
	Directive     SizingDirective
	OutputDir     string // empty means <input>/resized
	Quality       int    // JPEG quality, clamped to 1..100; 0 selects DefaultQuality
	Format        string // jpeg, png, gif, bmp or tiff; empty keeps the source format
	Suffix        string // appended to the file stem
	Overwrite     bool
	Recursive     bool
	IncludeHidden bool
	IgnoreNames   []string

	Logger Logger
	// OnImage is called before each image is processed.
	OnImage func(current, total int, path string)
}

// NormalizeFormat canonicalizes an output format name. The empty string is
// returned unchanged and means "keep the source format".
func NormalizeFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	switch f {
	case "":
		return "", nil
	case "jpg", "jpeg":
		return "jpeg", nil
	case "tif", "tiff":
		return "tiff", nil
	case "png", "gif", "bmp":
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (use jpeg, png, gif, bmp or tiff)", ErrUnsupportedFormat, format)
}

// formatForExt returns the encoder used for a source extension. Sources that
// cannot be encoded (webp) are written as png.
func formatForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	}
	return "png"
}

func clampQuality(q int) int {
	if q == 0 {
		return DefaultQuality
	}
	return max(1, min(100, q))
}

// ResizeImages resizes every image under inputDir and writes the results to
// the output directory, mirroring the input layout. It returns the written
// paths in processing order.
//
// Invalid options fail before any file is read. Images that cannot be decoded
// or written are logged and skipped, as are destinations that already exist
// unless Overwrite is set.
func ResizeImages(inputDir string, opts ResizeOptions) ([]string, error) {
	if err := opts.Directive.Validate(); err != nil {
		return nil, err
	}
	format, err := NormalizeFormat(opts.Format)
	if err != nil {
		return nil, err
	}
	quality := clampQuality(opts.Quality)
	log := opts.Logger
	if log == nil {
		log = noopLogger{}
	}

	input, err := filepath.Abs(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", inputDir, err)
	}
	output := opts.OutputDir
	if output == "" {
		output = filepath.Join(input, DefaultOutputDirName)
	}
	if output, err = filepath.Abs(output); err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", opts.OutputDir, err)
	}

	scan, err := fileutil.ScanDirectory(input, fileutil.ScanOptions{
		Extensions:    ImageExtensions,
		Recursive:     opts.Recursive,
		IgnoreNames:   opts.IgnoreNames,
		IncludeHidden: opts.IncludeHidden,
	})
	if err != nil {
		return nil, err
	}
	for _, scanErr := range scan.Errors {
		log.LogWarn(scanErr.Error())
	}

	files := make([]string, 0, len(scan.Files))
	for _, f := range scan.Files {
		// Earlier output inside the input tree is not resized again.
		if !within(output, f) {
			files = append(files, f)
		}
	}

	written := make([]string, 0, len(files))
	for i, src := range files {
		if opts.OnImage != nil {
			opts.OnImage(i+1, len(files), src)
		}

		dst, err := destinationPath(input, output, src, opts.Suffix, format)
		if err != nil {
			log.LogWarn(err.Error())
			continue
		}
		if !opts.Overwrite {
			if _, err := os.Stat(dst); err == nil {
				log.LogDebug(fmt.Sprintf("skip %s: %s exists", src, dst))
				continue
			}
		}

		size, err := resizeFile(src, dst, opts.Directive, quality)
		if err != nil {
			log.LogWarn(fmt.Sprintf("failed to resize %s: %v", src, err))
			continue
		}
		log.LogDebug(fmt.Sprintf("%s -> %s (%s)", src, dst, size))
		written = append(written, dst)
	}

	return written, nil
}

// destinationPath builds <output>/<relative parent>/<stem><suffix><ext>.
func destinationPath(input, output, src, suffix, format string) (string, error) {
	rel, err := filepath.Rel(input, src)
	if err != nil {
		return "", fmt.Errorf("failed to relate %s to %s: %w", src, input, err)
	}

	ext := filepath.Ext(src)
	stem := strings.TrimSuffix(filepath.Base(src), ext)
	switch {
	case format != "":
		ext = formatExtensions[format]
	case formatForExt(ext) == "png" && !strings.EqualFold(ext, ".png"):
		ext = ".png"
	}

	return filepath.Join(output, filepath.Dir(rel), stem+suffix+ext), nil
}

func resizeFile(src, dst string, d SizingDirective, quality int) (models.Dimension, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return models.Dimension{}, err
	}

	img, srcFormat, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return models.Dimension{}, fmt.Errorf("decode: %w", err)
	}
	if srcFormat == "jpeg" {
		img = applyOrientation(img, readOrientation(bytes.NewReader(data)))
	}

	b := img.Bounds()
	target := ComputeTargetSize(models.Dimension{Width: b.Dx(), Height: b.Dy()}, d)
	if target.Width != b.Dx() || target.Height != b.Dy() {
		img = resize.Resize(uint(target.Width), uint(target.Height), img, resize.Lanczos3)
	}

	format := formatForExt(filepath.Ext(dst))
	var buf bytes.Buffer
	if err := encode(&buf, img, format, quality); err != nil {
		return models.Dimension{}, fmt.Errorf("encode %s: %w", format, err)
	}

	if err := filelock.AtomicWrite(dst, buf.Bytes(), 0644); err != nil {
		return models.Dimension{}, err
	}
	return target, nil
}

func encode(w io.Writer, img image.Image, format string, quality int) error {
	switch format {
	case "jpeg":
		return jpeg.Encode(w, flatten(img), &jpeg.Options{Quality: quality})
	case "gif":
		return gif.Encode(w, img, &gif.Options{NumColors: 256})
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "png":
		return png.Encode(w, img)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// flatten composes img over a white background, since JPEG has no alpha.
func flatten(img image.Image) image.Image {
	if opaque, ok := img.(interface{ Opaque() bool }); ok && opaque.Opaque() {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
