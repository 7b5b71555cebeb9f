package imgtug

import (
	"github.com/datatug/imgtug/pkg/imgtug/navigator"
	"github.com/gdamore/tcell/v2"
)

// command is a key that changes the view rather than the navigation state.
type command int

const (
	cmdNone command = iota
	cmdHelp
	cmdRawXMP
	cmdYank
	cmdCloseView
)

func translateKey(ev *tcell.EventKey) (navigator.Event, command) {
	switch ev.Key() {
	case tcell.KeyUp:
		return navigator.MoveUp, cmdNone
	case tcell.KeyDown:
		return navigator.MoveDown, cmdNone
	case tcell.KeyEnter:
		return navigator.Activate, cmdNone
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyLeft:
		return navigator.Ascend, cmdNone
	case tcell.KeyHome:
		return navigator.Home, cmdNone
	case tcell.KeyEnd:
		return navigator.End, cmdNone
	case tcell.KeyCtrlC:
		return navigator.Quit, cmdNone
	case tcell.KeyF1:
		return navigator.None, cmdHelp
	case tcell.KeyEscape:
		return navigator.None, cmdCloseView
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return navigator.Quit, cmdNone
		case 'k':
			return navigator.MoveUp, cmdNone
		case 'j':
			return navigator.MoveDown, cmdNone
		case '?':
			return navigator.None, cmdHelp
		case 'x':
			return navigator.None, cmdRawXMP
		case 'y':
			return navigator.None, cmdYank
		}
	}
	return navigator.None, cmdNone
}
