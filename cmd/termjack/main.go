// Command termjack runs the lumberjack in a terminal.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/timberjack/audio"
	"github.com/milk9111/timberjack/common"
	"github.com/milk9111/timberjack/ecs/entity"
	"github.com/milk9111/timberjack/ecs/system"
	"github.com/milk9111/timberjack/prefabs"
)

func main() {
	common.LoadEnv()

	forestName := flag.String("forest", common.EnvString("TIMBERJACK_FOREST", ""), "forest prefab in prefabs/ (default forest.yaml)")
	money := flag.Int("money", common.EnvInt("TIMBERJACK_MONEY", entity.NoStartMoney), "starting money; negative keeps player.yaml")
	mute := flag.Bool("mute", common.EnvBool("TIMBERJACK_MUTE", false), "disable sound")
	logPath := flag.String("log", common.EnvString("TERMJACK_LOG", "termjack.log"), "log file; the terminal is taken by the game")
	flag.StringVar(&prefabs.Dir, "prefabs", common.EnvString("TIMBERJACK_PREFABS", prefabs.Dir), "directory checked for prefab overrides")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	forest, err := entity.NewForest(entity.Options{
		Forest:     *forestName,
		StartMoney: *money,
		Width:      common.BaseWidth,
		Height:     common.BaseHeight,
	})
	if err != nil {
		log.Fatal(err)
	}

	var sound system.SoundPlayer
	if !*mute {
		spk, err := audio.NewSpeaker(-1)
		if err != nil {
			// Non-fatal, the game runs without sound.
			log.Printf("audio: %v", err)
		} else {
			defer spk.Close()
			sound = spk
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	NewGame(screen, forest, sound).Run()
}
