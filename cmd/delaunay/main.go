// Command delaunay triangulates sites, conforms triangulations to constraint
// lines and computes Voronoi diagrams.
//
// Input is GeoJSON (.geojson, .json), SVG (.svg), or text lines of "x y"
// points with groups separated by blank lines (anything else, or "-" for
// stdin). Output is GeoJSON, SVG or PNG.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/internal/config"
	"github.com/osuushi/delaunay/internal/dbg"
	"github.com/osuushi/delaunay/internal/input"
	"github.com/osuushi/delaunay/internal/output"
	"github.com/osuushi/delaunay/internal/render"
	"github.com/osuushi/delaunay/quadedge"
	"github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red("error:"), err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	tolerance  float64
	split      string
	maxIter    int
	format     string
	out        string
	show       bool
	labels     bool
	verbose    bool
	debug      bool
	input      string
}

// Result of one command, ready to be written in any format
type result struct {
	subdiv      *quadedge.Subdivision
	cdt         *advanced.ConformingDelaunayTriangulator
	cells       []quadedge.VoronoiCell
	constraints []geom.LineSegment
}

func run(args []string, stdout, stderr io.Writer) error {
	app := kingpin.New("delaunay", "Delaunay triangulation, conforming Delaunay triangulation and Voronoi diagrams.")
	app.Writer(stderr)
	app.Terminate(nil)
	// Usage has been printed by the time Parse returns
	helped := false
	app.HelpFlag.PreAction(func(*kingpin.ParseContext) error {
		helped = true
		return nil
	})

	var opts options
	app.Flag("config", "YAML configuration file. Flags override its values.").Short('c').StringVar(&opts.configPath)
	app.Flag("tolerance", "Distance below which sites are merged.").Short('t').Default("-1").Float64Var(&opts.tolerance)
	app.Flag("split", "Split point strategy: nonencroaching or midpoint.").StringVar(&opts.split)
	app.Flag("max-iterations", "Maximum constraint enforcement passes.").Default("0").IntVar(&opts.maxIter)
	app.Flag("format", "Output format: geojson, svg or png.").Short('f').StringVar(&opts.format)
	app.Flag("out", "Output file. Defaults to stdout, except for png.").Short('o').StringVar(&opts.out)
	app.Flag("show", "Show a PNG rendering in the terminal (iTerm only).").BoolVar(&opts.show)
	app.Flag("labels", "Label vertices in renderings.").BoolVar(&opts.labels)
	app.Flag("verbose", "Log progress to stderr.").Short('v').BoolVar(&opts.verbose)
	app.Flag("debug", "Keep partial results when constraint enforcement gives up.").BoolVar(&opts.debug)

	triangulateCmd := app.Command("triangulate", "Delaunay triangulation of all input points.")
	triangulateCmd.Arg("input", "Input file.").Required().StringVar(&opts.input)
	conformCmd := app.Command("conform", "Conforming Delaunay triangulation of sites and constraints.")
	conformCmd.Arg("input", "Input file.").Required().StringVar(&opts.input)
	voronoiCmd := app.Command("voronoi", "Voronoi diagram of all input points.")
	voronoiCmd.Arg("input", "Input file.").Required().StringVar(&opts.input)

	command, err := app.Parse(args)
	if helped || (app.HelpCommand != nil && command == app.HelpCommand.FullCommand()) {
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := opts.config()
	if err != nil {
		return err
	}
	logger := zap.NewNop()
	if opts.verbose {
		logger = newVerboseLogger(stderr)
	}
	defer logger.Sync()

	in, err := input.ReadFile(opts.input)
	if err != nil {
		return err
	}
	logger.Info("read input",
		zap.Int("sites", len(in.Sites)),
		zap.Int("constraints", len(in.Constraints)))

	var res result
	switch command {
	case triangulateCmd.FullCommand():
		res, err = triangulate(in, cfg)
	case conformCmd.FullCommand():
		res, err = conform(in, cfg, logger)
	case voronoiCmd.FullCommand():
		res, err = voronoi(in, cfg)
	}
	if err != nil {
		var enforcementErr *advanced.ConstraintEnforcementError
		if opts.verbose && errors.As(err, &enforcementErr) {
			logger.Debug("enforcement state", zap.String("dump", dbg.Dump(enforcementErr)))
		}
		return err
	}

	if err := write(res, cfg, opts.out, stdout); err != nil {
		return err
	}
	if opts.show {
		if err := show(res, cfg, stdout); err != nil {
			return err
		}
	}
	fmt.Fprintln(stderr, aurora.Green("done:"), summary(res))
	return nil
}

// Development logger writing to w rather than the process's stderr.
func newVerboseLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core, zap.Development())
}

// Loads the config file, if any, and applies the flags over it.
func (opts options) config() (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}
	if opts.tolerance >= 0 {
		cfg.Tolerance = opts.tolerance
	}
	if opts.split != "" {
		cfg.Split = opts.split
	}
	if opts.maxIter > 0 {
		cfg.MaxIterations = opts.maxIter
	}
	if opts.format != "" {
		cfg.Format = opts.format
	}
	cfg.Debug = cfg.Debug || opts.debug
	cfg.Labels = cfg.Labels || opts.labels
	return cfg, errors.Wrap(cfg.Validate(), "invalid configuration")
}

func triangulate(in *input.Input, cfg config.Config) (result, error) {
	b := advanced.NewDelaunayBuilder()
	b.SetSites(in.AllCoordinates())
	b.SetTolerance(cfg.Tolerance)
	subdiv, err := b.Subdivision()
	return result{subdiv: subdiv}, err
}

func conform(in *input.Input, cfg config.Config, logger *zap.Logger) (result, error) {
	splitFinder, err := cfg.SplitPointFinder()
	if err != nil {
		return result{}, err
	}
	b := advanced.NewConformingBuilder()
	b.SetSites(in.Sites)
	b.SetConstraints(in.Constraints)
	b.SetTolerance(cfg.Tolerance)
	b.SetSplitPointFinder(splitFinder)
	b.SetMaxSplitIterations(cfg.MaxIterations)
	b.SetDebug(cfg.Debug)
	b.SetLogger(logger)

	cdt, err := b.Triangulator()
	if err != nil {
		return result{}, err
	}
	res := result{subdiv: cdt.Subdivision(), cdt: cdt}
	for _, seg := range cdt.ConstraintSegments() {
		logger.Debug("constraint segment",
			zap.String("name", dbg.ColorName(seg)),
			zap.Stringer("segment", seg))
		res.constraints = append(res.constraints, seg.LineSegment())
	}
	return res, nil
}

func voronoi(in *input.Input, cfg config.Config) (result, error) {
	coords := in.AllCoordinates()
	b := advanced.NewVoronoiBuilder()
	b.SetSites(coords)
	b.SetTolerance(cfg.Tolerance)
	clip := geom.NewEnvelope(coords...)
	clip.ExpandBy(advanced.DefaultClipMargin(clip) * cfg.ClipExpand)
	b.SetClipEnvelope(clip)

	subdiv, err := b.Subdivision()
	if err != nil {
		return result{}, err
	}
	cells, err := b.Diagram()
	return result{subdiv: subdiv, cells: cells}, err
}

func (res result) scene(cfg config.Config) render.Scene {
	scene := render.Scene{Constraints: res.constraints, Labels: cfg.Labels}
	if res.cells != nil {
		scene.Cells = res.cells
	} else {
		scene.Subdivision = res.subdiv
	}
	return scene
}

func write(res result, cfg config.Config, outPath string, stdout io.Writer) error {
	if cfg.Format == "png" {
		if outPath == "" {
			return errors.New("png output needs --out")
		}
		scene := res.scene(cfg)
		return render.SavePNG(outPath, scene, render.FitScale(scene.Envelope(), cfg.ImageSize))
	}

	if outPath == "" {
		return encode(res, cfg, stdout)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	// svgo drops write errors, so they are collected by the buffer instead
	buf := bufio.NewWriter(f)
	if err := encode(res, cfg, buf); err != nil {
		f.Close()
		return err
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		return errors.Wrap(err, "writing output")
	}
	return errors.Wrap(f.Close(), "closing output")
}

func encode(res result, cfg config.Config, w io.Writer) error {
	switch cfg.Format {
	case "svg":
		scene := res.scene(cfg)
		render.WriteSVG(w, scene, render.FitScale(scene.Envelope(), cfg.ImageSize))
		return nil
	default:
		var fc *geojson.FeatureCollection
		if res.cells != nil {
			fc = output.Voronoi(res.cells)
		} else {
			fc = output.Triangulation(res.subdiv, res.cdt)
		}
		return output.Write(w, fc)
	}
}

func show(res result, cfg config.Config, stdout io.Writer) error {
	path := filepath.Join(os.TempDir(), "delaunay.png")
	scene := res.scene(cfg)
	if err := render.SavePNG(path, scene, render.FitScale(scene.Envelope(), cfg.ImageSize)); err != nil {
		return err
	}
	return render.Show(path, stdout)
}

func summary(res result) string {
	if res.cells != nil {
		return fmt.Sprintf("%d cells", len(res.cells))
	}
	s := fmt.Sprintf("%d vertices, %d triangles", len(res.subdiv.Vertices(false)), len(res.subdiv.Triangles()))
	if res.cdt != nil {
		s += fmt.Sprintf(", %d constraint segments", len(res.constraints))
	}
	return s
}
