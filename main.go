package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/timberjack/common"
	"github.com/milk9111/timberjack/ecs/entity"
	"github.com/milk9111/timberjack/prefabs"
)

func main() {
	// Flag defaults come from the environment or a .env file.
	common.LoadEnv()

	debug := flag.Bool("debug", common.EnvBool("TIMBERJACK_DEBUG", false), "enable debug overlay")
	money := flag.Int("money", common.EnvInt("TIMBERJACK_MONEY", entity.NoStartMoney), "starting money; negative keeps player.yaml")
	forest := flag.String("forest", common.EnvString("TIMBERJACK_FOREST", ""), "forest prefab in prefabs/ (default forest.yaml)")
	watch := flag.Bool("watch", common.EnvBool("TIMBERJACK_WATCH", false), "reload prefabs when files under -prefabs change")
	mute := flag.Bool("mute", common.EnvBool("TIMBERJACK_MUTE", false), "disable sound")
	flag.StringVar(&prefabs.Dir, "prefabs", common.EnvString("TIMBERJACK_PREFABS", prefabs.Dir), "directory checked for prefab overrides")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("timberjack")

	game, err := NewGame(Options{
		Forest:     *forest,
		Debug:      *debug,
		StartMoney: *money,
		Watch:      *watch,
		Mute:       *mute,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
