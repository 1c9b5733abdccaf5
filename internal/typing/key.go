// Package typing implements the typing session state machine and its sampler.
package typing

import "unicode"

// KeyCode identifies the kind of key that was pressed.
type KeyCode int

// Key codes understood by a Session.
const (
	KeyRune KeyCode = iota
	KeyBackspace
	KeyShift
	KeyControl
	KeyAlt
	KeyMeta
	KeyTab
	KeyCapsLock
	KeyEscape
	// KeyOther is any other named key (enter, arrows, delete, ...).
	KeyOther
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

// Modifier flags. Shift is deliberately absent: it only changes the rune.
const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModMeta
)

// Key is a single key press.
type Key struct {
	Code KeyCode
	Rune rune
	Mods Modifier
}

// RuneKey returns a printable key press for r.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// BackspaceKey returns a backspace key press.
func BackspaceKey() Key {
	return Key{Code: KeyBackspace}
}

// Ignored reports whether the key never reaches the session logic. Named
// keys such as enter or the arrows are not ignored: they start the timer
// without editing the input.
func (k Key) Ignored() bool {
	if k.Mods != 0 {
		return true
	}
	switch k.Code {
	case KeyBackspace, KeyOther:
		return false
	case KeyRune:
		return !unicode.IsPrint(k.Rune)
	default:
		return true
	}
}

func (k Key) isRune() bool {
	return k.Code == KeyRune
}

func (k Key) isBackspace() bool {
	return k.Code == KeyBackspace
}
