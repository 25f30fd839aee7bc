package chip8

import "github.com/pkg/errors"

// Memory layout, see https://en.wikipedia.org/wiki/CHIP-8
//
//	+---------------+= 0xFFF (4095) End Chip-8 RAM
//	|               |
//	| 0x200 to 0xFFF|
//	|     Chip-8    |
//	| Program / Data|
//	|     Space     |
//	|               |
//	+---------------+= 0x200 (512) Start of most Chip-8 programs
//	| 0x000 to 0x1FF|
//	| Reserved for  |
//	|  interpreter  |
//	+---------------+= 0x000 (0) Begin Chip-8 RAM. We store font data here.
const (
	memSize       = 4096
	programStart  = 0x200
	maxProgramLen = 0xFFF - programStart + 1
	fontStart     = 0x000
	fontBytesLen  = 16 * 5
)

// fontSet is the canonical COSMAC VIP hex glyph table, four pixels wide in
// the high nibble of each byte, sixteen 5-byte glyphs for digits 0-F laid
// out contiguously. This departs from some community font tables at digits
// C and D, which round their bottom/top serif off to the wrong nibble.
var fontSet = [fontBytesLen]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// loadFontSet installs the hex font at mem[0x00:0x4F]. Called once, at
// construction; Reset leaves the font region untouched.
func (vm *VM) loadFontSet() {
	copy(vm.memory[fontStart:], fontSet[:])
}

// loadProgram copies rom into memory starting at programStart and records
// the end address used to bound-check jump targets. Rejects ROMs too large
// to fit in 0x200-0xFFF.
func (vm *VM) loadProgram(rom []byte) error {
	if len(rom) > maxProgramLen {
		return errors.Errorf("rom too large: %d bytes, max %d", len(rom), maxProgramLen)
	}
	n := copy(vm.memory[programStart:], rom)
	vm.programEnd = uint16(programStart + n - 1)
	if n == 0 {
		vm.programEnd = programStart
	}
	return nil
}
