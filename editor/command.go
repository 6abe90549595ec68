package editor

// Direction is a caret movement.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start
	DirEnd  // line end
	DirPageUp
	DirPageDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirHome:
		return "home"
	case DirEnd:
		return "end"
	case DirPageUp:
		return "pageup"
	case DirPageDown:
		return "pagedown"
	default:
		return "unknown"
	}
}

// CommandKind identifies what a Command asks the editor to do.
type CommandKind uint8

const (
	CommandMove CommandKind = iota
	CommandInsert
	CommandBackspace
	CommandDelete
	CommandEnter
	CommandSave
	CommandSearch
	CommandDismiss
	CommandQuit
	CommandResize
)

func (k CommandKind) String() string {
	switch k {
	case CommandMove:
		return "move"
	case CommandInsert:
		return "insert"
	case CommandBackspace:
		return "backspace"
	case CommandDelete:
		return "delete"
	case CommandEnter:
		return "enter"
	case CommandSave:
		return "save"
	case CommandSearch:
		return "search"
	case CommandDismiss:
		return "dismiss"
	case CommandQuit:
		return "quit"
	case CommandResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Command is an input event decoded by a front end. Only the field matching
// Kind is meaningful: Dir for CommandMove, Rune for CommandInsert and Size
// for CommandResize.
type Command struct {
	Kind CommandKind
	Dir  Direction
	Rune rune
	Size Size
}

func MoveCommand(dir Direction) Command { return Command{Kind: CommandMove, Dir: dir} }
func InsertCommand(r rune) Command { return Command{Kind: CommandInsert, Rune: r} }
func ResizeCommand(size Size) Command { return Command{Kind: CommandResize, Size: size} }

// isEdit reports whether c changes text.
func (c Command) isEdit() bool {
	switch c.Kind {
	case CommandInsert, CommandBackspace, CommandDelete, CommandEnter:
		return true
	}
	return false
}
