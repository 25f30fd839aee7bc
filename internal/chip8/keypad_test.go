package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func byteP(b byte) *byte { return &b }

func TestKeypadSetAndCurrent(t *testing.T) {
	var kp Keypad
	require.Nil(t, kp.Current())

	kp.Set(byteP(0x7))
	require.NotNil(t, kp.Current())
	require.Equal(t, byte(0x7), *kp.Current())

	kp.Set(nil)
	require.Nil(t, kp.Current())
}
