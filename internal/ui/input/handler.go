package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/stigen/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action and queues it. Keys
// without a binding queue nothing.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if action := ih.Translate(ev); action != nil {
			ih.actionChan <- action
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
	}
}

// Translate maps a key to the action it triggers in the current mode. Keys
// without a binding return nil.
func (ih *InputHandler) Translate(ev *tcell.EventKey) statepkg.Action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return statepkg.QuitAction{}
	case tcell.KeyCtrlZ:
		return statepkg.SuspendAction{}
	}

	mode := statepkg.ModeBrowse
	if ih.state != nil {
		mode = ih.state.Mode
	}

	switch mode {
	case statepkg.ModeSearch:
		return translateSearch(ev)
	case statepkg.ModeSettings:
		return translateSettings(ev)
	default:
		return translateBrowse(ev)
	}
}

func translateBrowse(ev *tcell.EventKey) statepkg.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return statepkg.NavigateUpAction{}
	case tcell.KeyDown:
		return statepkg.NavigateDownAction{}
	case tcell.KeyEnter:
		return statepkg.LaunchAction{}
	case tcell.KeyEscape:
		return statepkg.ClearFilterAction{}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
			return nil
		}
		switch ev.Rune() {
		case '/':
			return statepkg.SearchStartAction{}
		case 's', 'S':
			return statepkg.SettingsStartAction{}
		case 'q', 'Q':
			return statepkg.QuitAction{}
		}
	}
	return nil
}

func translateSearch(ev *tcell.EventKey) statepkg.Action {
	switch ev.Key() {
	case tcell.KeyEscape:
		return statepkg.SearchCancelAction{}
	case tcell.KeyEnter:
		return statepkg.SearchCommitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return statepkg.SearchBackspaceAction{}
	case tcell.KeyRune:
		if r, ok := textRune(ev); ok {
			return statepkg.SearchCharAction{Char: r}
		}
	}
	return nil
}

func translateSettings(ev *tcell.EventKey) statepkg.Action {
	switch ev.Key() {
	case tcell.KeyEscape:
		return statepkg.SettingsCancelAction{}
	case tcell.KeyEnter:
		return statepkg.SettingsCommitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return statepkg.SettingsBackspaceAction{}
	case tcell.KeyRune:
		if r, ok := textRune(ev); ok {
			return statepkg.SettingsCharAction{Char: r}
		}
	}
	return nil
}

// textRune reports the rune of a key event that should be typed into a text
// field. Alt/Ctrl chords and non-printable runes are ignored.
func textRune(ev *tcell.EventKey) (rune, bool) {
	if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
		return 0, false
	}
	r := ev.Rune()
	if !unicode.IsPrint(r) {
		return 0, false
	}
	return r, true
}
