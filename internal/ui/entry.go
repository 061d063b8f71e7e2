package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is an entry widget that only accepts digits.
type NumericalEntry struct {
	widget.Entry
}

// NewNumericalEntry creates a new entry that filters out non-digit runes.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune ignores anything that is not a digit.
func (e *NumericalEntry) TypedRune(r rune) {
	if r >= '0' && r <= '9' {
		e.Entry.TypedRune(r)
	}
}

// TypedShortcut filters pasted content so only numeric text gets through.
func (e *NumericalEntry) TypedShortcut(shortcut fyne.Shortcut) {
	paste, ok := shortcut.(*fyne.ShortcutPaste)
	if !ok {
		e.Entry.TypedShortcut(shortcut)
		return
	}

	for _, r := range paste.Clipboard.Content() {
		if r < '0' || r > '9' {
			return
		}
	}
	e.Entry.TypedShortcut(shortcut)
}

// Keyboard requests the number pad on mobile devices.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// PhoneEntry is an entry widget restricted to characters found in phone numbers.
type PhoneEntry struct {
	widget.Entry
}

// NewPhoneEntry creates a new entry for dial-able numbers.
func NewPhoneEntry() *PhoneEntry {
	entry := &PhoneEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

func isPhoneRune(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	switch r {
	case '+', '-', ' ', '(', ')':
		return true
	}
	return false
}

// TypedRune ignores anything a phone number cannot contain.
func (e *PhoneEntry) TypedRune(r rune) {
	if isPhoneRune(r) {
		e.Entry.TypedRune(r)
	}
}

// TypedShortcut filters pasted content to phone number characters.
func (e *PhoneEntry) TypedShortcut(shortcut fyne.Shortcut) {
	paste, ok := shortcut.(*fyne.ShortcutPaste)
	if !ok {
		e.Entry.TypedShortcut(shortcut)
		return
	}

	for _, r := range paste.Clipboard.Content() {
		if !isPhoneRune(r) {
			return
		}
	}
	e.Entry.TypedShortcut(shortcut)
}

// Keyboard requests the number pad on mobile devices.
func (e *PhoneEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
