package imaging

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func writeJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	img := image.NewGray(image.Rect(0, 0, w, h))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, nil))
}

func imageSize(t *testing.T, path string) (int, int, string) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height, format
}

func TestResizeImages_DefaultOutput(t *testing.T) {
	input := t.TempDir()
	writePNG(t, filepath.Join(input, "a.png"), 200, 100)
	writeJPEG(t, filepath.Join(input, "b.jpg"), 400, 300)
	require.NoError(t, os.WriteFile(filepath.Join(input, "notes.txt"), []byte("x"), 0644))

	written, err := ResizeImages(input, ResizeOptions{
		Directive: SizingDirective{Scale: 0.5},
	})
	require.NoError(t, err)

	out := filepath.Join(input, DefaultOutputDirName)
	assert.Equal(t, []string{filepath.Join(out, "a.png"), filepath.Join(out, "b.jpg")}, written)

	w, h, format := imageSize(t, written[0])
	assert.Equal(t, [2]int{100, 50}, [2]int{w, h})
	assert.Equal(t, "png", format)

	w, h, format = imageSize(t, written[1])
	assert.Equal(t, [2]int{200, 150}, [2]int{w, h})
	assert.Equal(t, "jpeg", format)
}

func TestResizeImages_BoundingBoxNoUpscale(t *testing.T) {
	input := t.TempDir()
	output := t.TempDir()
	writePNG(t, filepath.Join(input, "wide.png"), 300, 100)
	writePNG(t, filepath.Join(input, "small.png"), 50, 40)

	written, err := ResizeImages(input, ResizeOptions{
		Directive: SizingDirective{MaxWidth: 150, MaxHeight: 150, KeepAspect: true},
		OutputDir: output,
	})
	require.NoError(t, err)
	require.Len(t, written, 2)

	w, h, _ := imageSize(t, filepath.Join(output, "small.png"))
	assert.Equal(t, [2]int{50, 40}, [2]int{w, h})

	w, h, _ = imageSize(t, filepath.Join(output, "wide.png"))
	assert.Equal(t, [2]int{150, 50}, [2]int{w, h})
}

func TestResizeImages_FormatAndSuffix(t *testing.T) {
	input := t.TempDir()
	output := t.TempDir()
	writePNG(t, filepath.Join(input, "photo.png"), 40, 20)

	written, err := ResizeImages(input, ResizeOptions{
		Directive: SizingDirective{Width: 20, KeepAspect: true},
		OutputDir: output,
		Format:    "JPG",
		Suffix:    "_small",
		Quality:   150,
	})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(output, "photo_small.jpg")}, written)

	w, h, format := imageSize(t, written[0])
	assert.Equal(t, [2]int{20, 10}, [2]int{w, h})
	assert.Equal(t, "jpeg", format)
}

func TestResizeImages_SkipExisting(t *testing.T) {
	input := t.TempDir()
	output := t.TempDir()
	writePNG(t, filepath.Join(input, "a.png"), 20, 20)
	existing := filepath.Join(output, "a.png")
	require.NoError(t, os.WriteFile(existing, []byte("keep"), 0644))

	opts := ResizeOptions{
		Directive: SizingDirective{Scale: 0.5},
		OutputDir: output,
	}
	written, err := ResizeImages(input, opts)
	require.NoError(t, err)
	assert.Empty(t, written)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))

	opts.Overwrite = true
	written, err = ResizeImages(input, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{existing}, written)
	w, h, _ := imageSize(t, existing)
	assert.Equal(t, [2]int{10, 10}, [2]int{w, h})
}

func TestResizeImages_Recursive(t *testing.T) {
	input := t.TempDir()
	writePNG(t, filepath.Join(input, "top.png"), 20, 20)
	writePNG(t, filepath.Join(input, "sub", "deep.png"), 20, 20)
	writePNG(t, filepath.Join(input, ".hidden", "h.png"), 20, 20)

	opts := ResizeOptions{Directive: SizingDirective{Scale: 0.5}}

	written, err := ResizeImages(input, opts)
	require.NoError(t, err)
	assert.Len(t, written, 1)

	opts.Recursive = true
	opts.Overwrite = true
	written, err = ResizeImages(input, opts)
	require.NoError(t, err)

	out := filepath.Join(input, DefaultOutputDirName)
	assert.ElementsMatch(t, []string{
		filepath.Join(out, "sub", "deep.png"),
		filepath.Join(out, "top.png"),
	}, written)

	// Output written inside the input tree is not picked up again.
	written, err = ResizeImages(input, opts)
	require.NoError(t, err)
	assert.Len(t, written, 2)
}

func TestResizeImages_BrokenImageSkipped(t *testing.T) {
	input := t.TempDir()
	output := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(input, "broken.png"), []byte("not an image"), 0644))
	writePNG(t, filepath.Join(input, "good.png"), 10, 10)

	var seen []string
	written, err := ResizeImages(input, ResizeOptions{
		Directive: SizingDirective{Scale: 2, AllowUpscale: true},
		OutputDir: output,
		OnImage: func(current, total int, path string) {
			assert.Equal(t, 2, total)
			seen = append(seen, filepath.Base(path))
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"broken.png", "good.png"}, seen)
	require.Equal(t, []string{filepath.Join(output, "good.png")}, written)

	w, h, _ := imageSize(t, written[0])
	assert.Equal(t, [2]int{20, 20}, [2]int{w, h})
}

func TestResizeImages_InvalidOptions(t *testing.T) {
	input := t.TempDir()
	writePNG(t, filepath.Join(input, "a.png"), 10, 10)

	tests := []struct {
		name string
		opts ResizeOptions
		want error
	}{
		{name: "no sizing", opts: ResizeOptions{}, want: ErrNoSizing},
		{name: "negative width", opts: ResizeOptions{Directive: SizingDirective{Width: -1}}, want: ErrInvalidSizing},
		{name: "webp output", opts: ResizeOptions{Directive: SizingDirective{Scale: 1}, Format: "webp"}, want: ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResizeImages(input, tt.opts)
			assert.ErrorIs(t, err, tt.want)
			assert.NoDirExists(t, filepath.Join(input, DefaultOutputDirName))
		})
	}

	_, err := ResizeImages(filepath.Join(input, "missing"), ResizeOptions{Directive: SizingDirective{Scale: 1}})
	assert.Error(t, err)
}

func TestNormalizeFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: ""},
		{in: "JPG", want: "jpeg"},
		{in: ".jpeg", want: "jpeg"},
		{in: "tif", want: "tiff"},
		{in: "png", want: "png"},
		{in: "bmp", want: "bmp"},
		{in: "gif", want: "gif"},
		{in: "webp", wantErr: true},
		{in: "heic", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDestinationPath(t *testing.T) {
	in := filepath.Join(string(filepath.Separator), "in")
	out := filepath.Join(string(filepath.Separator), "out")

	tests := []struct {
		name   string
		src    string
		suffix string
		format string
		want   string
	}{
		{name: "same format", src: "a.JPG", want: "a.JPG"},
		{name: "suffix", src: "a.png", suffix: "_s", want: "a_s.png"},
		{name: "forced format", src: "a.png", format: "jpeg", want: "a.jpg"},
		{name: "webp becomes png", src: "a.webp", want: "a.png"},
		{name: "nested", src: filepath.Join("x", "y", "a.gif"), want: filepath.Join("x", "y", "a.gif")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := destinationPath(in, out, filepath.Join(in, tt.src), tt.suffix, tt.format)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(out, tt.want), got)
		})
	}
}

func TestApplyOrientation(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, red)
	src.SetRGBA(1, 0, blue)

	tests := []struct {
		orientation int
		size        image.Point
		redAt       image.Point
		blueAt      image.Point
	}{
		{orientation: 2, size: image.Pt(2, 1), redAt: image.Pt(1, 0), blueAt: image.Pt(0, 0)},
		{orientation: 3, size: image.Pt(2, 1), redAt: image.Pt(1, 0), blueAt: image.Pt(0, 0)},
		{orientation: 4, size: image.Pt(2, 1), redAt: image.Pt(0, 0), blueAt: image.Pt(1, 0)},
		{orientation: 5, size: image.Pt(1, 2), redAt: image.Pt(0, 0), blueAt: image.Pt(0, 1)},
		{orientation: 6, size: image.Pt(1, 2), redAt: image.Pt(0, 0), blueAt: image.Pt(0, 1)},
		{orientation: 7, size: image.Pt(1, 2), redAt: image.Pt(0, 1), blueAt: image.Pt(0, 0)},
		{orientation: 8, size: image.Pt(1, 2), redAt: image.Pt(0, 1), blueAt: image.Pt(0, 0)},
	}

	for _, tt := range tests {
		got := applyOrientation(src, tt.orientation)
		assert.Equal(t, tt.size, got.Bounds().Size(), "orientation %d", tt.orientation)
		assert.Equal(t, red, got.At(tt.redAt.X, tt.redAt.Y), "orientation %d", tt.orientation)
		assert.Equal(t, blue, got.At(tt.blueAt.X, tt.blueAt.Y), "orientation %d", tt.orientation)
	}

	assert.Same(t, src, applyOrientation(src, 1))
}

func TestReadOrientationWithoutExif(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.jpg")
	writeJPEG(t, path, 4, 4)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, 1, readOrientation(f))
}
