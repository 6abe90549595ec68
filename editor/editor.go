package editor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/iw2rmb/quire/buffer"
)

// Mode is the editor's input mode.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeSavePrompt
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSearch:
		return "search"
	case ModeSavePrompt:
		return "save-prompt"
	default:
		return "unknown"
	}
}

const (
	helpMessage   = "HELP: Ctrl-F = find | Ctrl-S = save | Ctrl-Q = quit"
	searchPrompt  = "Search (Esc to cancel, Arrows to navigate): "
	savePrompt    = "Save as: "
	savedMessage  = "File saved successfully."
	saveError     = "Error writing file!"
	saveAborted   = "Save aborted."
	openErrFormat = "ERR: Could not open file: %s"
	quitWarning   = "WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit."
)

// Editor is the shell around a View: it routes commands according to the
// current mode and owns the status, message and command bars.
type Editor struct {
	cfg Config
	log *slog.Logger

	view *View
	size Size
	mode Mode

	prompt   commandBar
	message  messageBar
	quitLeft int
	quit     bool
}

// New creates an editor and, when cfg.FileName is set, loads that file. A
// failed load leaves an empty buffer and an error message on the message bar.
func New(cfg Config) *Editor {
	cfg = cfg.withDefaults()
	e := &Editor{
		cfg:      cfg,
		log:      cfg.Logger,
		view:     NewView(buffer.New("", buffer.Options{FS: cfg.FS})),
		quitLeft: cfg.QuitTimes,
	}
	e.setMessage(helpMessage)
	if cfg.FileName != "" {
		if err := e.view.Load(cfg.FileName); err != nil {
			e.log.Warn("load failed", slog.String("path", cfg.FileName), slog.Any("err", err))
			e.setMessage(fmt.Sprintf(openErrFormat, cfg.FileName))
		} else {
			e.log.Info("loaded", slog.String("path", cfg.FileName), slog.Int("lines", e.view.Buffer().Height()))
		}
	}
	return e
}

func (e *Editor) View() *View { return e.view }
func (e *Editor) Mode() Mode { return e.mode }
func (e *Editor) Size() Size { return e.size }
func (e *Editor) ShouldQuit() bool { return e.quit }
func (e *Editor) KeyMap() KeyMap { return e.cfg.KeyMap }
func (e *Editor) Style() Style { return *e.cfg.Style }

// Message returns the message bar text, or "" once it has expired.
func (e *Editor) Message() string {
	return e.message.current(e.cfg.Now(), e.cfg.MessageTTL)
}

// Handle processes one command.
func (e *Editor) Handle(cmd Command) {
	if cmd.Kind == CommandResize {
		e.Resize(cmd.Size)
		return
	}
	switch e.mode {
	case ModeSearch:
		e.handleSearch(cmd)
	case ModeSavePrompt:
		e.handleSavePrompt(cmd)
	default:
		e.handleNormal(cmd)
	}
}

// Resize lays out the view above the status and bottom bars.
func (e *Editor) Resize(size Size) {
	e.size = Size{Width: max(size.Width, 0), Height: max(size.Height, 0)}
	e.view.Resize(Size{Width: e.size.Width, Height: max(e.size.Height-2, 0)})
}

func (e *Editor) handleNormal(cmd Command) {
	if cmd.Kind == CommandQuit {
		e.handleQuit()
		return
	}
	e.resetQuit()

	switch {
	case cmd.Kind == CommandMove:
		e.view.HandleMove(cmd.Dir)
	case cmd.isEdit():
		e.view.HandleEdit(cmd)
	case cmd.Kind == CommandSearch:
		e.setMode(ModeSearch)
	case cmd.Kind == CommandSave:
		if e.view.Buffer().FileInfo().HasPath() {
			e.save("")
		} else {
			e.setMode(ModeSavePrompt)
		}
	default:
		e.log.Debug("ignored command", slog.String("mode", e.mode.String()), slog.String("cmd", cmd.Kind.String()))
	}
}

func (e *Editor) handleQuit() {
	if !e.view.Buffer().IsDirty() || e.quitLeft <= 1 {
		e.quit = true
		return
	}
	e.quitLeft--
	e.setMessage(fmt.Sprintf(quitWarning, e.quitLeft))
}

func (e *Editor) resetQuit() {
	if e.quitLeft != e.cfg.QuitTimes {
		e.quitLeft = e.cfg.QuitTimes
		e.setMessage("")
	}
}

func (e *Editor) handleSearch(cmd Command) {
	switch cmd.Kind {
	case CommandDismiss:
		e.view.DismissSearch()
		e.setMode(ModeNormal)
	case CommandEnter:
		e.view.ExitSearch()
		e.setMode(ModeNormal)
	case CommandInsert, CommandBackspace, CommandDelete:
		e.prompt.handleEdit(cmd)
		e.view.Search(e.prompt.Value())
	case CommandMove:
		switch cmd.Dir {
		case DirRight, DirDown:
			e.view.SearchNext()
		case DirLeft, DirUp:
			e.view.SearchPrev()
		}
	}
}

func (e *Editor) handleSavePrompt(cmd Command) {
	switch cmd.Kind {
	case CommandDismiss:
		e.setMode(ModeNormal)
		e.setMessage(saveAborted)
	case CommandEnter:
		name := e.prompt.Value()
		e.setMode(ModeNormal)
		if name == "" {
			e.setMessage(saveAborted)
			return
		}
		e.save(name)
	case CommandInsert, CommandBackspace, CommandDelete:
		e.prompt.handleEdit(cmd)
	}
}

// save writes the buffer; to "" means its current file.
func (e *Editor) save(to string) {
	var err error
	if to == "" {
		err = e.view.Save()
	} else {
		err = e.view.SaveAs(to)
	}
	path := e.view.Buffer().FileInfo().Path()
	if to != "" {
		path = to
	}
	if err != nil {
		e.log.Warn("save failed", slog.String("path", path), slog.Any("err", err), slog.Bool("no_path", errors.Is(err, buffer.ErrNoPath)))
		e.setMessage(saveError)
		return
	}
	e.log.Info("saved", slog.String("path", path))
	e.setMessage(savedMessage)
}

func (e *Editor) setMode(m Mode) {
	if m == e.mode {
		return
	}
	e.log.Debug("mode", slog.String("from", e.mode.String()), slog.String("to", m.String()))
	switch m {
	case ModeSearch:
		e.view.EnterSearch()
		e.prompt = newCommandBar(searchPrompt)
	case ModeSavePrompt:
		e.prompt = newCommandBar(savePrompt)
	default:
		e.prompt = commandBar{}
	}
	e.mode = m
}

func (e *Editor) setMessage(text string) {
	e.message.set(text, e.cfg.Now())
}
