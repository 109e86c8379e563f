// Command point draws a single cube corner through the perspective divide.
package main

import (
	"os"

	"wirecube/internal/app"
	"wirecube/internal/config"
	"wirecube/internal/scene"
)

func main() {
	cfg := config.Default()
	os.Exit(app.Run(cfg, scene.NewPoint(cfg)))
}
