package editor

import (
	"log/slog"
	"time"

	"github.com/iw2rmb/quire/buffer"
)

// Config configures an Editor. Zero values pick the defaults noted below.
type Config struct {
	// File to open at startup; empty starts an unnamed buffer.
	FileName string

	// File I/O for load and save. Default: buffer.OSFileSystem.
	FS buffer.FileSystem

	// Consecutive quit presses needed to leave with unsaved changes.
	// Default: 3.
	QuitTimes int
	// How long a message stays on the message bar. Default: 5s.
	MessageTTL time.Duration

	KeyMap KeyMap // default: DefaultKeyMap()
	Style  *Style // default: DefaultStyle()

	Logger *slog.Logger     // default: discards everything
	Now    func() time.Time // default: time.Now
}

const (
	defaultQuitTimes  = 3
	defaultMessageTTL = 5 * time.Second
)

func (c Config) withDefaults() Config {
	if c.FS == nil {
		c.FS = buffer.OSFileSystem{}
	}
	if c.QuitTimes <= 0 {
		c.QuitTimes = defaultQuitTimes
	}
	if c.MessageTTL <= 0 {
		c.MessageTTL = defaultMessageTTL
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Style == nil {
		st := DefaultStyle()
		c.Style = &st
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}
