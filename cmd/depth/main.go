// Command depth draws the four corners of a square as it moves away from
// the eye, showing them converge on the centre.
package main

import (
	"os"

	"wirecube/internal/app"
	"wirecube/internal/config"
	"wirecube/internal/scene"
)

func main() {
	cfg := config.Default()
	os.Exit(app.Run(cfg, scene.NewDepth(cfg)))
}
