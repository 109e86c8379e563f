// Package app is the entry point shared by the demo programs: it opens the
// host, runs the render loop until quit and tears everything down again.
package app

import (
	"log"
	"os"
	"runtime"

	"wirecube/internal/config"
	"wirecube/internal/frame"
	"wirecube/internal/host"
)

func init() {
	// GLFW and SDL must be driven from the main thread.
	runtime.LockOSThread()
}

var logger = log.New(os.Stderr, "wirecube: ", log.LstdFlags)

type opener func(config.Config) (host.Host, error)

// Run shows scene in a window built from cfg until the user closes it. It
// returns the process exit code: 0 after a clean shutdown, 1 if the window
// or renderer could not be set up.
func Run(cfg config.Config, scene frame.Scene) int {
	return run(cfg, scene, openHost)
}

func run(cfg config.Config, scene frame.Scene, open opener) int {
	if err := cfg.Validate(); err != nil {
		logger.Println("invalid config:", err)
		return 1
	}

	h, err := open(cfg)
	if err != nil {
		logger.Println(err)
		return 1
	}
	defer h.Close()

	loop := frame.New(cfg, h, h, h)
	frames := loop.Run(scene)
	logger.Printf("quit after %d frames", frames)
	return 0
}
