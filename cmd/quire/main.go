// Command quire is a small terminal text editor.
//
//	quire [-backend tea|tcell] [-log FILE] [FILE]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/iw2rmb/quire"
	"github.com/iw2rmb/quire/editor"
	"github.com/iw2rmb/quire/internal/terminal"
)

type options struct {
	backend  string
	logPath  string
	fileName string
	version  bool
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opt options
	fs := flag.NewFlagSet("quire", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opt.backend, "backend", "tea", "terminal backend: tea or tcell")
	fs.StringVar(&opt.logPath, "log", "", "write debug logs to `FILE`")
	fs.BoolVar(&opt.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return opt, err
	}
	switch opt.backend {
	case "tea", "tcell":
	default:
		return opt, fmt.Errorf("unknown backend %q", opt.backend)
	}
	if fs.NArg() > 1 {
		return opt, errors.New("at most one file name")
	}
	opt.fileName = fs.Arg(0)
	return opt, nil
}

func newLogger(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), f.Close, nil
}

func run(ctx context.Context, opt options) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdin and stdout must be a terminal")
	}

	logger, closeLog, err := newLogger(opt.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("start", slog.String("version", quire.Version()), slog.String("backend", opt.backend), slog.String("file", opt.fileName))
	ed := editor.New(editor.Config{FileName: opt.fileName, Logger: logger})

	if opt.backend == "tcell" {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		if err := s.Init(); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}
		return terminal.Run(ctx, ed, s)
	}

	p := tea.NewProgram(editor.NewModel(ed), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func main() {
	opt, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "quire:", err)
		os.Exit(2)
	}
	if opt.version {
		fmt.Println(quire.VersionTag())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	if err := run(ctx, opt); err != nil {
		fmt.Fprintln(os.Stderr, "quire:", err)
		os.Exit(1)
	}
}
