// Package display provides terminal output helpers: progress lines,
// warnings, and change previews.
//
// # Progress Indicators
//
//	progress := display.NewProgressIndicator(os.Stdout, len(files))
//	progress.Start("Resizing images:")
//	for _, file := range files {
//	    progress.Step(file)
//	}
//	progress.Complete("Resized 3 image(s).")
//
// # Previews
//
//	display.Preview{
//	    Header: "Found 12 entry(s) to rename:",
//	    Lines:  lines,
//	    More:   func(n int) string { return fmt.Sprintf("... and %d more", n) },
//	}.Display(os.Stdout)
//
// # Warnings
//
//	display.FailureWarning("2 item(s) failed:", errs).Display(os.Stderr)
//
// Colors (cyan progress, green checkmarks, yellow warnings) are only written
// when the destination is a terminal and NO_COLOR is unset. All functions
// accept io.Writer for testability.
package display
