package dioteko

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Key is a keyboard key, using the engine's key codes.
type Key int32

const (
	KeyNull Key = 0

	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	KeyZero         Key = 48
	KeyOne          Key = 49
	KeyTwo          Key = 50
	KeyThree        Key = 51
	KeyFour         Key = 52
	KeyFive         Key = 53
	KeySix          Key = 54
	KeySeven        Key = 55
	KeyEight        Key = 56
	KeyNine         Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGrave        Key = 96

	KeySpace        Key = 32
	KeyEscape       Key = 256
	KeyEnter        Key = 257
	KeyTab          Key = 258
	KeyBackspace    Key = 259
	KeyInsert       Key = 260
	KeyDelete       Key = 261
	KeyRight        Key = 262
	KeyLeft         Key = 263
	KeyDown         Key = 264
	KeyUp           Key = 265
	KeyPageUp       Key = 266
	KeyPageDown     Key = 267
	KeyHome         Key = 268
	KeyEnd          Key = 269
	KeyCapsLock     Key = 280
	KeyScrollLock   Key = 281
	KeyNumLock      Key = 282
	KeyPrintScreen  Key = 283
	KeyPause        Key = 284
	KeyF1           Key = 290
	KeyF2           Key = 291
	KeyF3           Key = 292
	KeyF4           Key = 293
	KeyF5           Key = 294
	KeyF6           Key = 295
	KeyF7           Key = 296
	KeyF8           Key = 297
	KeyF9           Key = 298
	KeyF10          Key = 299
	KeyF11          Key = 300
	KeyF12          Key = 301
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
	KeyMenu         Key = 348

	KeyKp0        Key = 320
	KeyKp1        Key = 321
	KeyKp2        Key = 322
	KeyKp3        Key = 323
	KeyKp4        Key = 324
	KeyKp5        Key = 325
	KeyKp6        Key = 326
	KeyKp7        Key = 327
	KeyKp8        Key = 328
	KeyKp9        Key = 329
	KeyKpDecimal  Key = 330
	KeyKpDivide   Key = 331
	KeyKpMultiply Key = 332
	KeyKpSubtract Key = 333
	KeyKpAdd      Key = 334
	KeyKpEnter    Key = 335
	KeyKpEqual    Key = 336
)

var keyNames = map[Key]string{
	KeyNull:         "NULL",
	KeyApostrophe:   "APOSTROPHE",
	KeyComma:        "COMMA",
	KeyMinus:        "MINUS",
	KeyPeriod:       "PERIOD",
	KeySlash:        "SLASH",
	KeySemicolon:    "SEMICOLON",
	KeyEqual:        "EQUAL",
	KeyLeftBracket:  "LEFT_BRACKET",
	KeyBackslash:    "BACKSLASH",
	KeyRightBracket: "RIGHT_BRACKET",
	KeyGrave:        "GRAVE",
	KeySpace:        "SPACE",
	KeyEscape:       "ESCAPE",
	KeyEnter:        "ENTER",
	KeyTab:          "TAB",
	KeyBackspace:    "BACKSPACE",
	KeyInsert:       "INSERT",
	KeyDelete:       "DELETE",
	KeyRight:        "RIGHT",
	KeyLeft:         "LEFT",
	KeyDown:         "DOWN",
	KeyUp:           "UP",
	KeyPageUp:       "PAGE_UP",
	KeyPageDown:     "PAGE_DOWN",
	KeyHome:         "HOME",
	KeyEnd:          "END",
	KeyCapsLock:     "CAPS_LOCK",
	KeyScrollLock:   "SCROLL_LOCK",
	KeyNumLock:      "NUM_LOCK",
	KeyPrintScreen:  "PRINT_SCREEN",
	KeyPause:        "PAUSE",
	KeyLeftShift:    "LEFT_SHIFT",
	KeyLeftControl:  "LEFT_CONTROL",
	KeyLeftAlt:      "LEFT_ALT",
	KeyLeftSuper:    "LEFT_SUPER",
	KeyRightShift:   "RIGHT_SHIFT",
	KeyRightControl: "RIGHT_CONTROL",
	KeyRightAlt:     "RIGHT_ALT",
	KeyRightSuper:   "RIGHT_SUPER",
	KeyMenu:         "MENU",
	KeyKpDecimal:    "KP_DECIMAL",
	KeyKpDivide:     "KP_DIVIDE",
	KeyKpMultiply:   "KP_MULTIPLY",
	KeyKpSubtract:   "KP_SUBTRACT",
	KeyKpAdd:        "KP_ADD",
	KeyKpEnter:      "KP_ENTER",
	KeyKpEqual:      "KP_EQUAL",
}

var keysByName map[string]Key

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune(k))
	}
	digits := []string{"ZERO", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE"}
	for i, d := range digits {
		keyNames[KeyZero+Key(i)] = d
		keyNames[KeyKp0+Key(i)] = fmt.Sprintf("KP_%d", i)
	}
	for i := 0; i < 12; i++ {
		keyNames[KeyF1+Key(i)] = fmt.Sprintf("F%d", i+1)
	}
	keysByName = make(map[string]Key, len(keyNames))
	for k, n := range keyNames {
		keysByName[n] = k
	}
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}

// ParseKey maps a key name such as "ESCAPE", "left-shift" or "f1" to its Key.
func ParseKey(name string) (Key, error) {
	norm := strings.ToUpper(strings.TrimSpace(name))
	norm = strings.ReplaceAll(norm, "-", "_")
	norm = strings.TrimPrefix(norm, "KEY_")
	if k, ok := keysByName[norm]; ok {
		return k, nil
	}
	return KeyNull, fmt.Errorf("unknown key %q", name)
}

// UnmarshalYAML decodes a key name.
func (k *Key) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("key: %w", err)
	}
	parsed, err := ParseKey(name)
	if err != nil {
		return fmt.Errorf("key line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes the key as its name.
func (k Key) MarshalYAML() (any, error) {
	return k.String(), nil
}

// MouseButton identifies a mouse button.
type MouseButton int32

const (
	MouseButtonLeft    MouseButton = iota // primary (left) mouse button
	MouseButtonRight                      // secondary (right) mouse button
	MouseButtonMiddle                     // middle mouse button (scroll wheel click)
	MouseButtonSide                       // side button
	MouseButtonExtra                      // extra button
	MouseButtonForward                    // forward navigation button
	MouseButtonBack                       // back navigation button
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonSide:
		return "side"
	case MouseButtonExtra:
		return "extra"
	case MouseButtonForward:
		return "forward"
	case MouseButtonBack:
		return "back"
	default:
		return fmt.Sprintf("MouseButton(%d)", int32(b))
	}
}

// ParseMouseButton resolves a button name as returned by String.
// Matching is case-insensitive.
func ParseMouseButton(name string) (MouseButton, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b := MouseButtonLeft; b <= MouseButtonBack; b++ {
		if b.String() == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown mouse button %q", name)
}
