package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/coredump8/chippy8/internal/audio"
	"github.com/coredump8/chippy8/internal/chip8"
	"github.com/coredump8/chippy8/internal/display"
)

var (
	scaleFlag     int
	clockHzFlag   int
	beepAssetDir  string
	quirkBNNNFlag bool
)

// runCmd runs the chippy8 virtual machine against a ROM file and exits when
// the window is closed or the core reports a terminal error.
var runCmd = &cobra.Command{
	Use:   "run path/to/rom",
	Short: "run the chippy8 emulator against a ROM file",
	Args:  cobra.ExactArgs(1),
	RunE:  runChippy8,
}

func init() {
	runCmd.Flags().IntVar(&scaleFlag, "scale", 12, "pixels per CHIP-8 pixel")
	runCmd.Flags().IntVar(&clockHzFlag, "clock-hz", 540, "CPU steps per second")
	runCmd.Flags().StringVar(&beepAssetDir, "assets", "assets", "directory containing beep.mp3")
	runCmd.Flags().BoolVar(&quirkBNNNFlag, "quirk-bnnn", true,
		"use classic BNNN semantics (PC = V0+NNN+2) instead of PC = V0+NNN")
}

func runChippy8(cmd *cobra.Command, args []string) error {
	pathToROM := args[0]

	rom, err := os.ReadFile(pathToROM)
	if err != nil {
		return errors.Wrapf(err, "reading rom %q", pathToROM)
	}

	vm := chip8.NewVM(chip8.WithClassicBNNN(quirkBNNNFlag))
	if err := vm.LoadProgram(rom); err != nil {
		return errors.Wrapf(err, "loading rom %q", pathToROM)
	}

	win, err := display.NewWindow(scaleFlag)
	if err != nil {
		return errors.Wrap(err, "creating display window")
	}

	relay := audio.NewRelay(beepAssetDir + "/beep.mp3")
	go relay.Run()
	defer relay.Close()

	keypad := &chip8.Keypad{}
	ticker := time.NewTicker(time.Second / time.Duration(clockHzFlag))
	defer ticker.Stop()

	prevSound := vm.SoundTimer()
	for range ticker.C {
		if win.Closed() {
			fmt.Println("exit signal detected, gracefully shutting down...")
			return nil
		}

		win.PollInput()
		keypad.Set(win.Current())

		redrew, err := vm.Step(keypad)
		if err != nil {
			return errors.Wrap(err, "stepping chip8 core")
		}
		if redrew {
			win.Draw(vm.Framebuffer())
		}

		soundNow := vm.SoundTimer()
		if prevSound > 0 && soundNow == 0 {
			select {
			case relay.Events() <- struct{}{}:
			default:
			}
		}
		prevSound = soundNow
	}

	return nil
}
