// Command vertices draws the eight corners of the cube as points.
package main

import (
	"os"

	"wirecube/internal/app"
	"wirecube/internal/config"
	"wirecube/internal/scene"
)

func main() {
	cfg := config.Default()
	os.Exit(app.Run(cfg, scene.NewVertices(cfg)))
}
