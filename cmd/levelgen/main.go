// Command levelgen prints generated level layouts as JSON.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/config"
	"github.com/milk9111/hopper/levels"
)

func main() {
	configPath := flag.String("config", "", "TOML config supplying window and level sizes")
	seed := flag.Uint64("seed", 1, "generator seed")
	count := flag.Int("n", 1, "number of layouts to print")
	obstacles := flag.Int("obstacles", -1, "override level.obstacle_count")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *obstacles >= 0 {
		cfg.Level.ObstacleCount = *obstacles
	}

	gen := levels.NewGenerator(cfg.LevelParams(), *seed)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for i := 0; i < *count; i++ {
		lvl := gen.Generate(common.Rect{})
		if err := lvl.Validate(); err != nil {
			log.Fatalf("layout %d: %v", i, err)
		}
		if err := enc.Encode(lvl); err != nil {
			log.Fatal(err)
		}
	}
}
