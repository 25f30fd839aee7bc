package chip8

import "time"

const (
	maxCallDepth = 16
	tickInterval = time.Second / 60
)

// timer is an 8-bit countdown value ticking at 60Hz, tracked by wall-clock
// comparison rather than a background goroutine: a Step call only samples
// time.Now, so a stalled caller must still catch the timer up by however
// many 60Hz intervals actually elapsed, not just one.
type timer struct {
	value    byte
	lastTick time.Time
}

func (t *timer) tick(now time.Time) {
	if t.value == 0 {
		return
	}
	elapsed := now.Sub(t.lastTick)
	if elapsed < tickInterval {
		return
	}
	ticks := elapsed / tickInterval
	if ticks > time.Duration(t.value) {
		ticks = time.Duration(t.value)
	}
	t.value -= byte(ticks)
	t.lastTick = t.lastTick.Add(ticks * tickInterval)
}

func (t *timer) load(v byte, now time.Time) {
	t.value = v
	t.lastTick = now
}

// VM is the CHIP-8 core: memory, registers, stack, timers, PC, and the
// fetch/decode/execute cycle. It owns the framebuffer and reads the keypad
// but does not own the keypad — the outer loop writes it between steps.
type VM struct {
	memory     [memSize]byte
	v          [16]byte
	i          uint16
	pc         uint16
	stack      []uint16
	programEnd uint16

	delay timer
	sound timer

	fb Framebuffer

	// waitReg holds the destination register of an in-flight FX0A, or -1
	// when no wait is pending. FX0A does not advance PC until a key is
	// observed, so Step must remember which register to fill in on the
	// step that finally sees one.
	waitReg int

	// now is the wall-clock source for timer ticking. Defaults to
	// time.Now; tests substitute a deterministic clock.
	now func() time.Time

	// classicBNNN selects which of the two documented BNNN behaviors
	// 0xB000 uses: true advances PC by an extra 2 after the V0-relative
	// jump (matching this era's Go/Rust implementations of the opcode),
	// false is the plain PC = V0+NNN jump most other interpreters use.
	classicBNNN bool
}

// Option configures a VM at construction time.
type Option func(*VM)

// WithClassicBNNN selects BNNN's jump arithmetic: classic (the default)
// lands on V0+NNN+2, non-classic lands on V0+NNN. See the classicBNNN field
// doc and opcodes.go's 0xB000 case.
func WithClassicBNNN(classic bool) Option {
	return func(vm *VM) { vm.classicBNNN = classic }
}

// NewVM constructs a VM with the hex font installed and no program loaded.
// Load a program with LoadProgram before calling Step.
func NewVM(opts ...Option) *VM {
	vm := &VM{
		pc:          programStart,
		stack:       make([]uint16, 0, maxCallDepth),
		waitReg:     -1,
		now:         time.Now,
		classicBNNN: true,
	}
	for _, opt := range opts {
		opt(vm)
	}
	vm.loadFontSet()
	return vm
}

// LoadProgram copies rom into memory starting at 0x200 and records the
// program's end address, used to bound-check jump targets. Rejects ROMs
// longer than 3584 bytes.
func (vm *VM) LoadProgram(rom []byte) error {
	return vm.loadProgram(rom)
}

// Reset clears dynamic state — V0-VF, I, PC, SP/stack, timers, and the
// loaded program's memory range — but preserves the program's shape (end address)
// and the font, matching spec.md's reset() contract. The caller must
// LoadProgram again to actually restore bytes.
func (vm *VM) Reset() {
	for addr := uint16(programStart); addr <= vm.programEnd; addr++ {
		vm.memory[addr] = 0
	}
	vm.v = [16]byte{}
	vm.i = 0
	vm.pc = programStart
	vm.stack = vm.stack[:0]
	vm.delay = timer{}
	vm.sound = timer{}
	vm.waitReg = -1
	vm.fb.Clear()
}

// Framebuffer returns a read-only view of the 64x32 pixel grid for the
// display sink to snapshot. The CPU remains the sole mutator.
func (vm *VM) Framebuffer() *Framebuffer {
	return &vm.fb
}

// DelayTimer reports the delay timer's current value.
func (vm *VM) DelayTimer() byte { return vm.delay.value }

// SoundTimer reports the sound timer's current value.
func (vm *VM) SoundTimer() byte { return vm.sound.value }

// PC reports the current program counter, for debug dumps.
func (vm *VM) PC() uint16 { return vm.pc }

// SP reports the current call-stack depth, for debug dumps.
func (vm *VM) SP() int { return len(vm.stack) }

// Register reads general-purpose register Vn, for debug dumps.
func (vm *VM) Register(n int) byte { return vm.v[n] }

// I reports the current index register, for debug dumps.
func (vm *VM) I() uint16 { return vm.i }

// Step ticks the timers, then fetches, decodes, and executes exactly one
// instruction, advancing PC per its semantics. redrew is true iff the
// executed instruction was DRW (DXYN), so callers can skip
// re-blitting the framebuffer on no-op frames.
func (vm *VM) Step(keypad *Keypad) (redrew bool, err error) {
	now := vm.now()
	vm.delay.tick(now)
	vm.sound.tick(now)

	if vm.waitReg >= 0 {
		if key := keypad.Current(); key != nil {
			vm.v[vm.waitReg] = *key
			vm.waitReg = -1
			vm.pc += 2
		}
		return false, nil
	}

	instr, err := vm.fetch()
	if err != nil {
		return false, err
	}
	return vm.execute(instr, keypad)
}

func (vm *VM) fetch() (uint16, error) {
	if int(vm.pc)+1 >= memSize {
		return 0, newExecErr(ErrFailedToReadInstruction, 0)
	}
	return uint16(vm.memory[vm.pc])<<8 | uint16(vm.memory[vm.pc+1]), nil
}

func (vm *VM) isValidJumpAddr(addr uint16) bool {
	return addr >= programStart && addr <= vm.programEnd
}
