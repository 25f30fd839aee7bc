// Package input defines the hex-keypad input contract between the outer
// presentation loop and the chip8 core: "the currently depressed hex key,
// if any." The core never imports this package — it only sees a
// *chip8.Keypad that the outer loop keeps in sync with a Source each tick.
package input

// Source reports the currently depressed hex key, 0x0-0xF, or nil if none
// is held. Implementations are not required to debounce or queue — the
// chip8 core already treats input as a single-slot mailbox.
type Source interface {
	Current() *byte
}

// QWERTYLayout is the documented host-key to CHIP-8 hex-key mapping for an
// English keyboard: rows 1234/QWER/ASDF/ZXCV map to CHIP-8 keys
// 123C/456D/789E/A0BF. It's part of the outer shell, not the core, per
// spec.md §6 — display/window code decides how host key codes plumb into
// this table.
var QWERTYLayout = map[byte]string{
	0x1: "1", 0x2: "2", 0x3: "3", 0xC: "4",
	0x4: "Q", 0x5: "W", 0x6: "E", 0xD: "R",
	0x7: "A", 0x8: "S", 0x9: "D", 0xE: "F",
	0xA: "Z", 0x0: "X", 0xB: "C", 0xF: "V",
}
