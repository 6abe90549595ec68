// Package editor is the interactive layer of quire: the View that maps the
// buffer onto the screen, the Editor shell with its normal, search and
// save-prompt modes, and a Bubble Tea front end.
//
// Front ends decode input into Commands, pass them to Editor.Handle, and
// draw Editor.Frame.
package editor
