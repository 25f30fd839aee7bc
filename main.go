package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/coredump8/chippy8/cmd"
)

func main() {
	// pixelgl needs access to the main thread so this pattern is suggested
	pixelgl.Run(cmd.Execute)
}
