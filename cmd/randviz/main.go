//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"randviz/internal/app"
	"randviz/internal/core"
	_ "randviz/internal/sims/montecarlo"
	_ "randviz/internal/sims/randomwalk"

	"github.com/hajimehoshi/ebiten/v2"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("load env config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	var overrides kvList
	flag.Var(&overrides, "set", "sim parameter override in key=value form (repeatable)")
	list := flag.Bool("list", false, "list available sims and their parameters")
	flag.Parse()

	if *list {
		printSims()
		return
	}

	if cfg.ResolveSeed() {
		log.Printf("[INFO] no seed provided, using %d", cfg.Seed)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	params := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("bad -set value %q, want key=value", kv)
		}
		params[parts[0]] = parts[1]
	}

	sim := factory(params)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("randviz — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func printSims() {
	names := make([]string, 0, len(core.Sims()))
	for name := range core.Sims() {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
		lister, ok := core.Sims()[name](nil).(core.ParameterLister)
		if !ok {
			continue
		}
		for _, p := range lister.Parameters() {
			fmt.Printf("  %-10s %-6s default %-8s %s\n", p.Key, p.Type, p.Default, p.Description)
		}
	}
}
