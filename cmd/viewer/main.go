//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"tilegen/internal/app"
	_ "tilegen/internal/methods/biome"
	_ "tilegen/internal/methods/bsp"
	_ "tilegen/internal/methods/cellular"
	_ "tilegen/internal/methods/roomplacement"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg.Method, cfg.Set.Map(), cfg.Width, cfg.Length, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}
	defer session.Close()

	game := app.New(session, cfg)
	size := session.Grid().Size()

	ebiten.SetWindowTitle("tilegen: " + session.Method().Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
