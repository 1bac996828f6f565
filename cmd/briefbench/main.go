// Command briefbench detects keypoints in an image, computes descriptors on
// every available backend, and checks that all backends agree byte for byte.
//
// Usage:
//
//	briefbench -image scene.png [-runs 20] [-orientation] [-match other.png]
//	briefbench -image scene.png -pattern generated_32.i
//
// With -pattern the pixel tests are read from one of OpenCV's generated
// BRIEF tables, and reference extractors (OpenCV, when built with the
// opencv tag) join the comparison. The exit status is 1 when any backend
// or reference diverges from the sequential backend.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"

	"github.com/gogpu/brief"
	_ "github.com/gogpu/brief/gpu" // enable the GPU backend
	"github.com/gogpu/brief/internal/detect"
	"github.com/gogpu/brief/internal/match"
)

var errDivergence = errors.New("backends diverge")

// detector finds keypoints in a grayscale image.
type detector func(img *image.Gray, cfg detect.FASTConfig) ([]brief.Keypoint, error)

// detectors maps -detector values to implementations.
var detectors = map[string]detector{
	"fast": func(img *image.Gray, cfg detect.FASTConfig) ([]brief.Keypoint, error) {
		return detect.FAST(img, cfg), nil
	},
}

// reference computes descriptors outside this module for comparison.
type reference func(img *image.Gray, kps []brief.Keypoint, cfg config) (*brief.Descriptors, error)

// references maps names to reference extractors. They only run with
// -pattern, since they use OpenCV's tables.
var references = map[string]reference{}

type config struct {
	image       string
	other       string
	runs        int
	orientation bool
	size        int
	backends    string
	detector    string
	pattern     string
	fast        detect.FASTConfig
}

func main() {
	var (
		cfg     config
		verbose bool
	)
	cfg.fast = detect.DefaultFASTConfig()
	flag.StringVar(&cfg.image, "image", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
	flag.StringVar(&cfg.other, "match", "", "second image to match against")
	flag.IntVar(&cfg.runs, "runs", 10, "timed runs per backend")
	flag.BoolVar(&cfg.orientation, "orientation", true, "rotate tests by keypoint orientation")
	flag.IntVar(&cfg.size, "size", brief.DefaultDescriptorSize, "descriptor size in bytes (16, 32, 64)")
	flag.StringVar(&cfg.backends, "backends", "", "comma-separated backends (default: all registered)")
	flag.StringVar(&cfg.pattern, "pattern", "", "OpenCV generated_N.i table to use instead of the built-in pattern")
	flag.StringVar(&cfg.detector, "detector", "fast", "keypoint detector ("+strings.Join(detectorNames(), ", ")+")")
	flag.IntVar(&cfg.fast.Threshold, "threshold", cfg.fast.Threshold, "FAST intensity threshold")
	flag.IntVar(&cfg.fast.MaxKeypoints, "max", 5000, "keep at most this many keypoints (0 = all)")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	if cfg.image == "" && flag.NArg() > 0 {
		cfg.image = flag.Arg(0)
	}
	if cfg.image == "" {
		flag.Usage()
		os.Exit(2)
	}
	if verbose {
		brief.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	err := run(cfg)
	if errors.Is(err, errDivergence) {
		log.Print(err)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("briefbench: %v", err)
	}
}

func detectorNames() []string {
	names := make([]string, 0, len(detectors))
	for name := range detectors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func run(cfg config) error {
	p := message.NewPrinter(language.English)
	cfg.fast.Oriented = cfg.orientation

	detectFn, ok := detectors[cfg.detector]
	if !ok {
		return fmt.Errorf("unknown detector %q", cfg.detector)
	}

	opts := []brief.Option{
		brief.WithOrientation(cfg.orientation),
		brief.WithDescriptorSize(cfg.size),
	}
	if cfg.pattern != "" {
		pat, err := loadPattern(cfg.pattern)
		if err != nil {
			return err
		}
		opts = append(opts, brief.WithPattern(pat))
	}

	gray, err := loadGray(cfg.image)
	if err != nil {
		return err
	}
	kps, err := detectFn(gray, cfg.fast)
	if err != nil {
		return fmt.Errorf("detect: %w", err)
	}
	p.Printf("%s: %dx%d, %d keypoints\n", cfg.image, gray.Rect.Dx(), gray.Rect.Dy(), len(kps))

	names := brief.AvailableBackends()
	if cfg.backends != "" {
		names = strings.Split(cfg.backends, ",")
	}
	if !slices.Contains(names, brief.BackendSequential) {
		names = append([]string{brief.BackendSequential}, names...)
	}

	sum := brief.NewPrefixSum(gray)
	results := make(map[string]*brief.Descriptors, len(names))
	for _, name := range names {
		d, times, err := benchBackend(name, cfg, opts, sum, kps)
		if err != nil {
			return err
		}
		results[name] = d
		mean, std := stat.MeanStdDev(times, nil)
		p.Printf("%-12s %8.3f ms ± %.3f  (%d descriptors, %d runs)\n", name, mean, std, d.Rows(), len(times))
	}

	ref := results[brief.BackendSequential]
	var diverged []string
	for _, name := range names {
		if r, c := ref.FirstDifference(results[name]); r >= 0 {
			p.Printf("%-12s DIVERGES at descriptor %d byte %d\n", name, r, c)
			diverged = append(diverged, name)
		}
	}

	checked := len(names)
	for _, name := range referenceNames() {
		if cfg.pattern == "" {
			p.Printf("%-12s skipped: needs -pattern\n", name)
			continue
		}
		d, err := references[name](gray, slices.Clone(kps), cfg)
		if err != nil {
			return fmt.Errorf("reference %s: %w", name, err)
		}
		checked++
		if r, c := ref.FirstDifference(d); r >= 0 {
			p.Printf("%-12s DIVERGES at descriptor %d byte %d\n", name, r, c)
			diverged = append(diverged, name)
			continue
		}
		p.Printf("%-12s matches (%d descriptors)\n", name, d.Rows())
	}

	if cfg.other != "" {
		if err := reportMatches(p, cfg, opts, detectFn, ref); err != nil {
			return err
		}
	}

	if len(diverged) > 0 {
		return fmt.Errorf("%w: %s", errDivergence, strings.Join(diverged, ", "))
	}
	p.Printf("all %d backends agree\n", checked)
	return nil
}

// benchBackend computes descriptors cfg.runs times and returns the last
// result with per-run durations in milliseconds.
func benchBackend(name string, cfg config, opts []brief.Option, sum *brief.PrefixSum, kps []brief.Keypoint) (*brief.Descriptors, []float64, error) {
	ext, err := brief.NewExtractor(append(slices.Clip(opts), brief.WithBackend(name))...)
	if err != nil {
		return nil, nil, fmt.Errorf("backend %s: %w", name, err)
	}
	defer ext.Close()

	runs := max(cfg.runs, 1)
	times := make([]float64, 0, runs)
	var d *brief.Descriptors
	buf := make([]brief.Keypoint, len(kps))
	for range runs {
		copy(buf, kps)
		start := time.Now()
		d, err = ext.ComputePrefixSum(sum, buf)
		if err != nil {
			return nil, nil, fmt.Errorf("backend %s: %w", name, err)
		}
		times = append(times, float64(time.Since(start).Microseconds())/1000)
	}
	return d, times, nil
}

func reportMatches(p *message.Printer, cfg config, opts []brief.Option, detectFn detector, ref *brief.Descriptors) error {
	gray, err := loadGray(cfg.other)
	if err != nil {
		return err
	}
	kps, err := detectFn(gray, cfg.fast)
	if err != nil {
		return fmt.Errorf("detect %s: %w", cfg.other, err)
	}
	other, err := brief.Compute(gray, kps, opts...)
	if err != nil {
		return fmt.Errorf("describe %s: %w", cfg.other, err)
	}

	matches := match.Reciprocal(ref, other)
	dists := make([]float64, len(matches))
	for i, m := range matches {
		dists[i] = float64(m.Distance)
	}
	p.Printf("%s: %d descriptors, %d reciprocal matches", cfg.other, other.Rows(), len(matches))
	if len(dists) > 0 {
		p.Printf(", mean distance %.1f bits", stat.Mean(dists, nil))
	}
	p.Printf("\n")
	return nil
}

func referenceNames() []string {
	names := make([]string, 0, len(references))
	for name := range references {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func loadPattern(path string) (brief.Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return brief.Pattern{}, err
	}
	defer f.Close()

	pat, err := brief.ParseOpenCVPattern(f)
	if err != nil {
		return brief.Pattern{}, fmt.Errorf("%s: %w", path, err)
	}
	return pat, nil
}

func loadGray(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	brief.Logger().Debug("briefbench: loaded image", "path", path, "format", format)
	return brief.ToGray(img), nil
}
