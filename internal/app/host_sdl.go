//go:build sdl

package app

import (
	"wirecube/internal/config"
	"wirecube/internal/host"
	"wirecube/internal/host/sdlhost"
)

func openHost(cfg config.Config) (host.Host, error) {
	h, err := sdlhost.Open(cfg)
	if err != nil {
		return nil, err
	}
	return h, nil
}
