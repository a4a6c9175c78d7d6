package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/genricoloni/vidmode/internal/config"
	"github.com/genricoloni/vidmode/internal/display"
	"github.com/genricoloni/vidmode/internal/domain"
	"github.com/genricoloni/vidmode/internal/engine"
	"github.com/genricoloni/vidmode/internal/pattern"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// openBackend is replaced in tests
var openBackend = func(logger *zap.Logger) (domain.DisplayManager, error) {
	return display.NewPlatformBackend(logger)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printMainUsage(stdout)
		return 0
	}

	switch args[0] {
	case "list":
		return runList(args[1:], stdout, stderr)
	case "current":
		return runCurrent(args[1:], stdout, stderr)
	case "set":
		return runSet(args[1:], stdout, stderr)
	case "main":
		return runMain(args[1:], stdout, stderr)
	case "at":
		return runAt(args[1:], stdout, stderr)
	case "match":
		return runMatch(args[1:], stdout, stderr)
	case "pattern":
		return runPattern(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		printMainUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printMainUsage(stderr)
		return 2
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: modectl <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list                List displays and their modes")
	fmt.Fprintln(w, "  current             Show the active mode of a display")
	fmt.Fprintln(w, "  set                 Switch a display to a mode")
	fmt.Fprintln(w, "  main                Show the primary display")
	fmt.Fprintln(w, "  at                  Show the display containing a point")
	fmt.Fprintln(w, "  match               Switch the primary display to the best mode for a frame rate")
	fmt.Fprintln(w, "  pattern             Render a test card for a mode")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'modectl <command> --help' for command-specific options.")
}

// newLogger writes warnings to stderr, or everything with -v
func newLogger(stderr io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(stderr), level))
}

// session is an initialized backend for one command
type session struct {
	logger *zap.Logger
	dm     domain.DisplayManager
}

func open(stderr io.Writer, verbose bool) (*session, int) {
	logger := newLogger(stderr, verbose)
	dm, err := openBackend(logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, 1
	}
	if !dm.Initialize() {
		fmt.Fprintln(stderr, "Error: display discovery failed")
		_ = dm.Close()
		return nil, 1
	}
	return &session{logger: logger, dm: dm}, 0
}

func (s *session) close(stderr io.Writer) {
	if err := s.dm.Close(); err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}
}

func (s *session) mode(display, mode int) (domain.VideoMode, bool) {
	for _, d := range s.dm.Displays() {
		if d.ID != display {
			continue
		}
		if m, ok := d.Mode(mode); ok {
			return *m, true
		}
	}
	return domain.VideoMode{}, false
}

// resolveDisplay maps -1 to the primary display
func (s *session) resolveDisplay(display int, stderr io.Writer) (int, bool) {
	if display < 0 {
		display = s.dm.GetMainDisplay()
	}
	if !s.dm.IsValidDisplay(display) {
		fmt.Fprintf(stderr, "Error: no display %d\n", display)
		return 0, false
	}
	return display, true
}

func parseFlags(fs *flag.FlagSet, args []string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0, false
		}
		return 2, false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "Unexpected arguments: %v\n", fs.Args())
		return 2, false
	}
	return 0, true
}

func runList(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "Verbose logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: modectl list [-v]")
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	s, code := open(stderr, *verbose)
	if s == nil {
		return code
	}
	defer s.close(stderr)

	for _, d := range s.dm.Displays() {
		current := s.dm.GetCurrentDisplayMode(d.ID)
		fmt.Fprintf(stdout, "Display %d: %s\n", d.ID, d.Name)
		for _, id := range d.ModeIDs() {
			marker := " "
			if id == current {
				marker = "*"
			}
			fmt.Fprintf(stdout, " %s %3d  %s\n", marker, id, d.Modes[id])
		}
	}
	return 0
}

func runCurrent(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("current", flag.ContinueOnError)
	fs.SetOutput(stderr)
	display := fs.Int("display", -1, "Display id (default: primary)")
	verbose := fs.Bool("v", false, "Verbose logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: modectl current [-display N] [-v]")
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	s, code := open(stderr, *verbose)
	if s == nil {
		return code
	}
	defer s.close(stderr)

	id, ok := s.resolveDisplay(*display, stderr)
	if !ok {
		return 1
	}
	current := s.dm.GetCurrentDisplayMode(id)
	mode, ok := s.mode(id, current)
	if !ok {
		fmt.Fprintf(stderr, "Error: current mode of display %d unknown\n", id)
		return 1
	}
	fmt.Fprintf(stdout, "%d %s\n", current, mode)
	return 0
}

func runSet(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	fs.SetOutput(stderr)
	display := fs.Int("display", -1, "Display id (default: primary)")
	mode := fs.Int("mode", -1, "Mode id, as printed by list")
	verbose := fs.Bool("v", false, "Verbose logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: modectl set -mode M [-display N] [-v]")
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if *mode < 0 {
		fs.Usage()
		return 2
	}

	s, code := open(stderr, *verbose)
	if s == nil {
		return code
	}
	defer s.close(stderr)

	id, ok := s.resolveDisplay(*display, stderr)
	if !ok {
		return 1
	}
	if !s.dm.IsValidDisplayMode(id, *mode) {
		fmt.Fprintf(stderr, "Error: no mode %d on display %d\n", *mode, id)
		return 1
	}
	if !s.dm.SetDisplayMode(id, *mode) {
		fmt.Fprintf(stderr, "Error: failed to switch display %d to mode %d\n", id, *mode)
		return 1
	}
	m, _ := s.mode(id, *mode)
	fmt.Fprintf(stdout, "Display %d switched to %s\n", id, m)
	return 0
}

func runMain(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "Verbose logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: modectl main [-v]")
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	s, code := open(stderr, *verbose)
	if s == nil {
		return code
	}
	defer s.close(stderr)

	id := s.dm.GetMainDisplay()
	if id == domain.NoDisplay {
		fmt.Fprintln(stderr, "Error: no primary display")
		return 1
	}
	fmt.Fprintln(stdout, id)
	return 0
}

func runAt(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("at", flag.ContinueOnError)
	fs.SetOutput(stderr)
	x := fs.Int("x", 0, "Horizontal desktop coordinate")
	y := fs.Int("y", 0, "Vertical desktop coordinate")
	verbose := fs.Bool("v", false, "Verbose logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: modectl at -x X -y Y [-v]")
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	s, code := open(stderr, *verbose)
	if s == nil {
		return code
	}
	defer s.close(stderr)

	id := s.dm.GetDisplayFromPoint(*x, *y)
	if id == domain.NoDisplay {
		fmt.Fprintf(stderr, "Error: no display at %d,%d\n", *x, *y)
		return 1
	}
	fmt.Fprintln(stdout, id)
	return 0
}

func runMatch(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("match", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fps := fs.Float64("fps", 0, "Content frame rate, e.g. 23.976")
	verbose := fs.Bool("v", false, "Verbose logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: modectl match -fps F [-v]")
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if *fps <= 0 {
		fs.Usage()
		return 2
	}

	logger := newLogger(stderr, *verbose)
	dm, err := openBackend(logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// no input and no restore: the new mode outlives the command
	eng := engine.NewEngine(logger, config.NewAppConfig(logger), dm, nil, nil)
	defer func() {
		if err := dm.Close(); err != nil {
			fmt.Fprintf(stderr, "Warning: %v\n", err)
		}
	}()

	if err := eng.Capture(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := eng.MatchRefreshRate(*fps); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	primary := dm.GetMainDisplay()
	s := &session{logger: logger, dm: dm}
	current := dm.GetCurrentDisplayMode(primary)
	m, _ := s.mode(primary, current)
	fmt.Fprintf(stdout, "Display %d: %d %s\n", primary, current, m)
	return 0
}

func runPattern(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pattern", flag.ContinueOnError)
	fs.SetOutput(stderr)
	display := fs.Int("display", -1, "Display id (default: primary)")
	mode := fs.Int("mode", -1, "Mode id (default: current)")
	out := fs.String("out", "", "Output file, format from extension (default: <tmp>/vidmode/pattern-<mode>.png)")
	verbose := fs.Bool("v", false, "Verbose logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: modectl pattern [-display N] [-mode M] [-out FILE] [-v]")
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	s, code := open(stderr, *verbose)
	if s == nil {
		return code
	}
	defer s.close(stderr)

	id, ok := s.resolveDisplay(*display, stderr)
	if !ok {
		return 1
	}
	modeID := *mode
	if modeID < 0 {
		modeID = s.dm.GetCurrentDisplayMode(id)
	}
	m, ok := s.mode(id, modeID)
	if !ok {
		fmt.Fprintf(stderr, "Error: no mode %d on display %d\n", modeID, id)
		return 1
	}

	path := *out
	if path == "" {
		path = filepath.Join(os.TempDir(), "vidmode", "pattern-"+strconv.Itoa(modeID)+".png")
	}

	r := pattern.NewRenderer(s.logger)
	img, err := r.Render(m)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	saved, err := r.Save(img, path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, saved)
	return 0
}
