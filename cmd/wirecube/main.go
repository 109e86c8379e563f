// Command wirecube spins a wireframe cube about the Y axis at a quarter
// turn per second.
//
// It renders through GLFW and OpenGL by default; build with -tags sdl to
// draw through an SDL2 renderer instead.
package main

import (
	"os"

	"wirecube/internal/app"
	"wirecube/internal/config"
	"wirecube/internal/scene"
)

func main() {
	cfg := config.Default()
	os.Exit(app.Run(cfg, scene.NewWireCube(cfg)))
}
