// Command export renders every test case to a BMP file for visual
// inspection. Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/bmp"

	"seehuhn.de/go/raster/bitmap"
	"seehuhn.de/go/raster/pixfmt"
	"seehuhn.de/go/raster/testcases"
)

func main() {
	outDir := flag.String("o", filepath.Join("testdata", "out"), "output directory")
	format := flag.String("format", "rgb24", "pixel format (rgb24 or bgrx32)")
	verbose := flag.Bool("v", false, "log bitmap operations")
	flag.Parse()

	if *verbose {
		bitmap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var f pixfmt.Format
	switch *format {
	case "rgb24":
		f = pixfmt.RGB24
	case "bgrx32":
		f = pixfmt.BGRX32
	default:
		fmt.Fprintf(os.Stderr, "unknown pixel format %q\n", *format)
		os.Exit(2)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := filepath.Join(*outDir, category+"_"+tc.Name+".bmp")
			if err := render(name, &tc, f); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	}
}

func render(name string, tc *testcases.TestCase, format pixfmt.Format) (err error) {
	b := bitmap.Alloc(tc.Width, tc.Height, format)
	b.Clear(tc.Background)
	tc.Draw(b)

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return bmp.Encode(f, b)
}
