package ebitenengine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/e0328eric/dioteko"
)

type keyPair struct {
	key dioteko.Key
	eb  ebiten.Key
}

var keyPairs = []keyPair{
	{dioteko.KeyApostrophe, ebiten.KeyQuote},
	{dioteko.KeyComma, ebiten.KeyComma},
	{dioteko.KeyMinus, ebiten.KeyMinus},
	{dioteko.KeyPeriod, ebiten.KeyPeriod},
	{dioteko.KeySlash, ebiten.KeySlash},
	{dioteko.KeySemicolon, ebiten.KeySemicolon},
	{dioteko.KeyEqual, ebiten.KeyEqual},
	{dioteko.KeyLeftBracket, ebiten.KeyBracketLeft},
	{dioteko.KeyBackslash, ebiten.KeyBackslash},
	{dioteko.KeyRightBracket, ebiten.KeyBracketRight},
	{dioteko.KeyGrave, ebiten.KeyBackquote},

	{dioteko.KeySpace, ebiten.KeySpace},
	{dioteko.KeyEscape, ebiten.KeyEscape},
	{dioteko.KeyEnter, ebiten.KeyEnter},
	{dioteko.KeyTab, ebiten.KeyTab},
	{dioteko.KeyBackspace, ebiten.KeyBackspace},
	{dioteko.KeyInsert, ebiten.KeyInsert},
	{dioteko.KeyDelete, ebiten.KeyDelete},
	{dioteko.KeyRight, ebiten.KeyArrowRight},
	{dioteko.KeyLeft, ebiten.KeyArrowLeft},
	{dioteko.KeyDown, ebiten.KeyArrowDown},
	{dioteko.KeyUp, ebiten.KeyArrowUp},
	{dioteko.KeyPageUp, ebiten.KeyPageUp},
	{dioteko.KeyPageDown, ebiten.KeyPageDown},
	{dioteko.KeyHome, ebiten.KeyHome},
	{dioteko.KeyEnd, ebiten.KeyEnd},
	{dioteko.KeyCapsLock, ebiten.KeyCapsLock},
	{dioteko.KeyScrollLock, ebiten.KeyScrollLock},
	{dioteko.KeyNumLock, ebiten.KeyNumLock},
	{dioteko.KeyPrintScreen, ebiten.KeyPrintScreen},
	{dioteko.KeyPause, ebiten.KeyPause},

	{dioteko.KeyLeftShift, ebiten.KeyShiftLeft},
	{dioteko.KeyLeftControl, ebiten.KeyControlLeft},
	{dioteko.KeyLeftAlt, ebiten.KeyAltLeft},
	{dioteko.KeyLeftSuper, ebiten.KeyMetaLeft},
	{dioteko.KeyRightShift, ebiten.KeyShiftRight},
	{dioteko.KeyRightControl, ebiten.KeyControlRight},
	{dioteko.KeyRightAlt, ebiten.KeyAltRight},
	{dioteko.KeyRightSuper, ebiten.KeyMetaRight},
	{dioteko.KeyMenu, ebiten.KeyContextMenu},

	{dioteko.KeyKpDecimal, ebiten.KeyNumpadDecimal},
	{dioteko.KeyKpDivide, ebiten.KeyNumpadDivide},
	{dioteko.KeyKpMultiply, ebiten.KeyNumpadMultiply},
	{dioteko.KeyKpSubtract, ebiten.KeyNumpadSubtract},
	{dioteko.KeyKpAdd, ebiten.KeyNumpadAdd},
	{dioteko.KeyKpEnter, ebiten.KeyNumpadEnter},
	{dioteko.KeyKpEqual, ebiten.KeyNumpadEqual},

	{dioteko.KeyA, ebiten.KeyA},
	{dioteko.KeyB, ebiten.KeyB},
	{dioteko.KeyC, ebiten.KeyC},
	{dioteko.KeyD, ebiten.KeyD},
	{dioteko.KeyE, ebiten.KeyE},
	{dioteko.KeyF, ebiten.KeyF},
	{dioteko.KeyG, ebiten.KeyG},
	{dioteko.KeyH, ebiten.KeyH},
	{dioteko.KeyI, ebiten.KeyI},
	{dioteko.KeyJ, ebiten.KeyJ},
	{dioteko.KeyK, ebiten.KeyK},
	{dioteko.KeyL, ebiten.KeyL},
	{dioteko.KeyM, ebiten.KeyM},
	{dioteko.KeyN, ebiten.KeyN},
	{dioteko.KeyO, ebiten.KeyO},
	{dioteko.KeyP, ebiten.KeyP},
	{dioteko.KeyQ, ebiten.KeyQ},
	{dioteko.KeyR, ebiten.KeyR},
	{dioteko.KeyS, ebiten.KeyS},
	{dioteko.KeyT, ebiten.KeyT},
	{dioteko.KeyU, ebiten.KeyU},
	{dioteko.KeyV, ebiten.KeyV},
	{dioteko.KeyW, ebiten.KeyW},
	{dioteko.KeyX, ebiten.KeyX},
	{dioteko.KeyY, ebiten.KeyY},
	{dioteko.KeyZ, ebiten.KeyZ},

	{dioteko.KeyZero, ebiten.KeyDigit0},
	{dioteko.KeyOne, ebiten.KeyDigit1},
	{dioteko.KeyTwo, ebiten.KeyDigit2},
	{dioteko.KeyThree, ebiten.KeyDigit3},
	{dioteko.KeyFour, ebiten.KeyDigit4},
	{dioteko.KeyFive, ebiten.KeyDigit5},
	{dioteko.KeySix, ebiten.KeyDigit6},
	{dioteko.KeySeven, ebiten.KeyDigit7},
	{dioteko.KeyEight, ebiten.KeyDigit8},
	{dioteko.KeyNine, ebiten.KeyDigit9},

	{dioteko.KeyKp0, ebiten.KeyNumpad0},
	{dioteko.KeyKp1, ebiten.KeyNumpad1},
	{dioteko.KeyKp2, ebiten.KeyNumpad2},
	{dioteko.KeyKp3, ebiten.KeyNumpad3},
	{dioteko.KeyKp4, ebiten.KeyNumpad4},
	{dioteko.KeyKp5, ebiten.KeyNumpad5},
	{dioteko.KeyKp6, ebiten.KeyNumpad6},
	{dioteko.KeyKp7, ebiten.KeyNumpad7},
	{dioteko.KeyKp8, ebiten.KeyNumpad8},
	{dioteko.KeyKp9, ebiten.KeyNumpad9},

	{dioteko.KeyF1, ebiten.KeyF1},
	{dioteko.KeyF2, ebiten.KeyF2},
	{dioteko.KeyF3, ebiten.KeyF3},
	{dioteko.KeyF4, ebiten.KeyF4},
	{dioteko.KeyF5, ebiten.KeyF5},
	{dioteko.KeyF6, ebiten.KeyF6},
	{dioteko.KeyF7, ebiten.KeyF7},
	{dioteko.KeyF8, ebiten.KeyF8},
	{dioteko.KeyF9, ebiten.KeyF9},
	{dioteko.KeyF10, ebiten.KeyF10},
	{dioteko.KeyF11, ebiten.KeyF11},
	{dioteko.KeyF12, ebiten.KeyF12},
}

var (
	toEbitenKey   map[dioteko.Key]ebiten.Key
	fromEbitenKey map[ebiten.Key]dioteko.Key
)

func init() {
	toEbitenKey = make(map[dioteko.Key]ebiten.Key, len(keyPairs))
	fromEbitenKey = make(map[ebiten.Key]dioteko.Key, len(keyPairs))
	for _, p := range keyPairs {
		toEbitenKey[p.key] = p.eb
		fromEbitenKey[p.eb] = p.key
	}
}

// mouseButtons maps button codes to Ebitengine buttons. Side and extra share
// Ebitengine's back and forward buttons.
var mouseButtons = map[dioteko.MouseButton]ebiten.MouseButton{
	dioteko.MouseButtonLeft:    ebiten.MouseButtonLeft,
	dioteko.MouseButtonRight:   ebiten.MouseButtonRight,
	dioteko.MouseButtonMiddle:  ebiten.MouseButtonMiddle,
	dioteko.MouseButtonSide:    ebiten.MouseButton3,
	dioteko.MouseButtonExtra:   ebiten.MouseButton4,
	dioteko.MouseButtonForward: ebiten.MouseButton4,
	dioteko.MouseButtonBack:    ebiten.MouseButton3,
}
