//go:build !sdl

package app

import (
	"wirecube/internal/config"
	"wirecube/internal/host"
	"wirecube/internal/host/glhost"
)

func openHost(cfg config.Config) (host.Host, error) {
	h, err := glhost.Open(cfg)
	if err != nil {
		return nil, err
	}
	return h, nil
}
