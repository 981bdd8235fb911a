package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/disintegrate/content"
	"github.com/milk9111/disintegrate/prefabs"
)

func main() {
	effectName := flag.String("effect", prefabs.DefaultEffect, "effect prefab in prefabs/ (embedded copy used when absent)")
	imagePath := flag.String("image", "", "PNG/JPEG/GIF to disintegrate instead of the card")
	seed := flag.Uint64("seed", 0, "particle seed (0 seeds from the clock)")
	debug := flag.Bool("debug", false, "enable debug overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	var img image.Image
	if *imagePath != "" {
		var err error
		if img, err = content.LoadImage(*imagePath); err != nil {
			log.Fatal(err)
		}
	}

	game, err := NewGame(*effectName, img, *seed, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("disintegrate")
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
