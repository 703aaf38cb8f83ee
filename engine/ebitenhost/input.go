package ebitenhost

import (
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/plus3/ecsdemos/engine"
)

var keymap = map[ebiten.Key]engine.KeyCode{
	ebiten.KeyA: engine.KeyA, ebiten.KeyB: engine.KeyB, ebiten.KeyC: engine.KeyC,
	ebiten.KeyD: engine.KeyD, ebiten.KeyE: engine.KeyE, ebiten.KeyF: engine.KeyF,
	ebiten.KeyG: engine.KeyG, ebiten.KeyH: engine.KeyH, ebiten.KeyI: engine.KeyI,
	ebiten.KeyJ: engine.KeyJ, ebiten.KeyK: engine.KeyK, ebiten.KeyL: engine.KeyL,
	ebiten.KeyM: engine.KeyM, ebiten.KeyN: engine.KeyN, ebiten.KeyO: engine.KeyO,
	ebiten.KeyP: engine.KeyP, ebiten.KeyQ: engine.KeyQ, ebiten.KeyR: engine.KeyR,
	ebiten.KeyS: engine.KeyS, ebiten.KeyT: engine.KeyT, ebiten.KeyU: engine.KeyU,
	ebiten.KeyV: engine.KeyV, ebiten.KeyW: engine.KeyW, ebiten.KeyX: engine.KeyX,
	ebiten.KeyY: engine.KeyY, ebiten.KeyZ: engine.KeyZ,

	ebiten.KeyDigit0: engine.KeyDigit0, ebiten.KeyDigit1: engine.KeyDigit1,
	ebiten.KeyDigit2: engine.KeyDigit2, ebiten.KeyDigit3: engine.KeyDigit3,
	ebiten.KeyDigit4: engine.KeyDigit4, ebiten.KeyDigit5: engine.KeyDigit5,
	ebiten.KeyDigit6: engine.KeyDigit6, ebiten.KeyDigit7: engine.KeyDigit7,
	ebiten.KeyDigit8: engine.KeyDigit8, ebiten.KeyDigit9: engine.KeyDigit9,

	ebiten.KeySpace:     engine.KeySpace,
	ebiten.KeyEnter:     engine.KeyEnter,
	ebiten.KeyEscape:    engine.KeyEscape,
	ebiten.KeyBackspace: engine.KeyBackspace,
	ebiten.KeyTab:       engine.KeyTab,

	ebiten.KeyArrowLeft:  engine.KeyArrowLeft,
	ebiten.KeyArrowRight: engine.KeyArrowRight,
	ebiten.KeyArrowUp:    engine.KeyArrowUp,
	ebiten.KeyArrowDown:  engine.KeyArrowDown,

	ebiten.KeyShiftLeft:    engine.KeyShiftLeft,
	ebiten.KeyShiftRight:   engine.KeyShiftRight,
	ebiten.KeyControlLeft:  engine.KeyControlLeft,
	ebiten.KeyControlRight: engine.KeyControlRight,
	ebiten.KeyAltLeft:      engine.KeyAltLeft,
	ebiten.KeyAltRight:     engine.KeyAltRight,
	ebiten.KeyMetaLeft:     engine.KeySuperLeft,
	ebiten.KeyMetaRight:    engine.KeySuperRight,

	ebiten.KeyBracketLeft:  engine.KeyBracketLeft,
	ebiten.KeyBracketRight: engine.KeyBracketRight,
	ebiten.KeyBackquote:    engine.KeyBackquote,
	ebiten.KeyBackslash:    engine.KeyBackslash,
	ebiten.KeyComma:        engine.KeyComma,
	ebiten.KeyEqual:        engine.KeyEqual,
	ebiten.KeyMinus:        engine.KeyMinus,
	ebiten.KeyPeriod:       engine.KeyPeriod,
	ebiten.KeyQuote:        engine.KeyQuote,
	ebiten.KeySemicolon:    engine.KeySemicolon,
	ebiten.KeySlash:        engine.KeySlash,

	ebiten.KeyDelete:   engine.KeyDelete,
	ebiten.KeyInsert:   engine.KeyInsert,
	ebiten.KeyHome:     engine.KeyHome,
	ebiten.KeyEnd:      engine.KeyEnd,
	ebiten.KeyPageUp:   engine.KeyPageUp,
	ebiten.KeyPageDown: engine.KeyPageDown,
	ebiten.KeyCapsLock: engine.KeyCapsLock,

	ebiten.KeyF1: engine.KeyF1, ebiten.KeyF2: engine.KeyF2, ebiten.KeyF3: engine.KeyF3,
	ebiten.KeyF4: engine.KeyF4, ebiten.KeyF5: engine.KeyF5, ebiten.KeyF6: engine.KeyF6,
	ebiten.KeyF7: engine.KeyF7, ebiten.KeyF8: engine.KeyF8, ebiten.KeyF9: engine.KeyF9,
	ebiten.KeyF10: engine.KeyF10, ebiten.KeyF11: engine.KeyF11, ebiten.KeyF12: engine.KeyF12,
}

var mousemap = map[ebiten.MouseButton]engine.MouseButton{
	ebiten.MouseButtonLeft:   engine.MouseButtonLeft,
	ebiten.MouseButtonRight:  engine.MouseButtonRight,
	ebiten.MouseButtonMiddle: engine.MouseButtonMiddle,
	ebiten.MouseButton3:      engine.MouseButtonBack,
	ebiten.MouseButton4:      engine.MouseButtonForward,
}

// inputState copies Ebitengine's input into the app's resources.
type inputState struct {
	log      *zap.Logger
	keyboard *engine.Keyboard
	mouse    *engine.MouseButtons
	drops    *engine.Events[engine.FileDragAndDrop]

	keys []ebiten.Key
}

func newInputState(app *engine.App, log *zap.Logger) *inputState {
	return &inputState{
		log:      log,
		keyboard: engine.Resource[engine.Keyboard](app),
		mouse:    engine.Resource[engine.MouseButtons](app),
		drops:    engine.Resource[engine.Events[engine.FileDragAndDrop]](app),
	}
}

func (in *inputState) poll(window *engine.Window, keyboardCaptured bool) {
	if !ebiten.IsFocused() || keyboardCaptured {
		in.keyboard.ReleaseAll()
	} else {
		in.pollKeys()
	}
	in.pollMouse()

	x, y := ebiten.CursorPosition()
	if fx, fy := float64(x), float64(y); window.Contains(fx, fy) {
		window.SetCursorPosition(fx, fy)
	} else {
		window.ClearCursorPosition()
	}

	in.pollDrops()
}

func (in *inputState) pollKeys() {
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if code, ok := keymap[k]; ok {
			in.keyboard.Press(code)
		}
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		if code, ok := keymap[k]; ok {
			in.keyboard.Release(code)
		}
	}
}

func (in *inputState) pollMouse() {
	for eb, button := range mousemap {
		if inpututil.IsMouseButtonJustPressed(eb) {
			in.mouse.Press(button)
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			in.mouse.Release(button)
		}
	}
}

// pollDrops sends one DroppedFile event per top-level entry of the drop.
func (in *inputState) pollDrops() {
	files := ebiten.DroppedFiles()
	if files == nil {
		return
	}
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		in.log.Warn("read dropped files", zap.Error(err))
		return
	}
	for _, e := range entries {
		in.drops.Send(engine.FileDragAndDrop{Kind: engine.DroppedFile, Path: e.Name()})
	}
}
