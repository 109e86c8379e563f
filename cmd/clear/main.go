// Command clear opens the window and fills every frame with solid red.
package main

import (
	"image/color"
	"os"

	"wirecube/internal/app"
	"wirecube/internal/config"
	"wirecube/internal/scene"
)

func main() {
	cfg := config.Default()
	cfg.Background = color.RGBA{R: 0xff, A: 0xff}
	os.Exit(app.Run(cfg, scene.NewClear(cfg)))
}
