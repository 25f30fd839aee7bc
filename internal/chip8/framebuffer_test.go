package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFramebufferClear(t *testing.T) {
	var fb Framebuffer
	fb.XORBlit([]byte{0xFF}, 0, 0)
	fb.Clear()

	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			require.Equal(t, byte(0), fb.At(x, y), "pixel (%d,%d) should be 0 after Clear", x, y)
		}
	}
}

func TestFramebufferXORBlitTogglesPixels(t *testing.T) {
	var fb Framebuffer
	collision := fb.XORBlit([]byte{0x80}, 0, 0)
	require.False(t, collision)
	require.Equal(t, byte(1), fb.At(0, 0))

	// Drawing the same sprite again erases it and reports collision.
	collision = fb.XORBlit([]byte{0x80}, 0, 0)
	require.True(t, collision)
	require.Equal(t, byte(0), fb.At(0, 0))
}

func TestFramebufferXORBlitWrapsOnEntry(t *testing.T) {
	var fb Framebuffer
	fb.XORBlit([]byte{0x80}, byte(fb.Width()), byte(fb.Height()))
	require.Equal(t, byte(1), fb.At(0, 0), "coordinates should wrap modulo framebuffer size on entry")
}

func TestFramebufferXORBlitClipsNotWraps(t *testing.T) {
	var fb Framebuffer
	collision := fb.XORBlit([]byte{0xFF}, 62, 0)
	require.False(t, collision)
	require.Equal(t, byte(1), fb.At(62, 0))
	require.Equal(t, byte(1), fb.At(63, 0))
	require.Equal(t, byte(0), fb.At(0, 0), "sprite bits running past the edge must clip, not wrap to column 0")
	require.Equal(t, byte(0), fb.At(1, 0))
}

func TestFramebufferXORBlitClipsBottomEdge(t *testing.T) {
	var fb Framebuffer
	sprite := []byte{0x80, 0x80, 0x80}
	fb.XORBlit(sprite, 0, byte(fb.Height()-1))
	require.Equal(t, byte(1), fb.At(0, fb.Height()-1))
	require.Equal(t, byte(0), fb.At(0, 0), "rows running past the bottom edge must clip, not wrap to row 0")
}
