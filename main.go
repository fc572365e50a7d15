package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ledgehop/common"
)

func main() {
	levelName := flag.String("level", "", "level name in levels/ (basename, .yaml optional)")
	debug := flag.Bool("debug", false, "draw physics shapes and movement state")
	backend := flag.String("backend", "", "physics backend: chipmunk or resolv")
	watch := flag.Bool("watch", false, "hot reload prefabs and levels from disk")
	flag.Parse()

	game, err := NewGame(Options{
		Level:   *levelName,
		Backend: *backend,
		Debug:   *debug,
		Watch:   *watch,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth*2, common.BaseHeight*2)
	ebiten.SetWindowTitle(game.spec.Title)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
