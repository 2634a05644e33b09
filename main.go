package main

import (
	"errors"
	"log"
	"snowman/assets"
	"snowman/client"
	"snowman/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Llongfile)

	cfg, err := utils.ReadTOML("config.toml")
	if err != nil {
		log.Fatal(err)
	}
	resolutionConfig := cfg.UI.Resolution
	log.Printf("%+v", resolutionConfig)

	fsys, err := assets.Open(cfg.Assets.Dir)
	if err != nil {
		log.Fatal(err)
	}
	lib, err := assets.Load(fsys, assets.DefaultManifest)
	if err != nil {
		log.Fatal(err)
	}
	gpuAssets, err := client.LoadAssets(lib, assets.DefaultManifest)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(resolutionConfig.X, resolutionConfig.Y)
	ebiten.SetWindowTitle(cfg.UI.Title)
	ebiten.SetMaxTPS(cfg.Game.TPS)

	game := client.NewGame(gpuAssets, cfg)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, client.ErrQuit) {
		log.Fatal(err)
	}
}
