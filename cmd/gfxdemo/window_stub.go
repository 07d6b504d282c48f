//go:build !cgo

package main

import (
	"github.com/pkg/errors"

	"rdl/gfx"
)

func runWindow(fb frameStore, c *gfx.Canvas, step func(tick uint64) error, cfg config) error {
	return errors.New("gfxdemo: preview window requires cgo; use -headless")
}
