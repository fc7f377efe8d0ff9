package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/reversi/internal/engine"
	"github.com/hailam/reversi/internal/textproto"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	depth      = flag.Int("depth", engine.DefaultDepth, "search depth")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	eng := engine.NewEngine()
	eng.SetDepth(*depth)
	eng.OnInfo = func(info engine.SearchInfo) {
		log.Printf("[AI] %s depth %d move %s score %d nodes %d time %v",
			info.Side, info.Depth, info.Move, info.Score, info.Nodes, info.Time)
	}

	protocol := textproto.New(eng, os.Stdin, os.Stdout)
	if err := protocol.Run(); err != nil {
		log.Printf("read error: %v", err)
	}
}
