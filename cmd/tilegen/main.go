package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"tilegen/internal/analysis"
	"tilegen/internal/app"
	"tilegen/internal/core"
	_ "tilegen/internal/methods/biome"
	_ "tilegen/internal/methods/bsp"
	_ "tilegen/internal/methods/cellular"
	_ "tilegen/internal/methods/roomplacement"
	"tilegen/internal/render"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tilegen: ")

	method := flag.String("method", "rooms", "generation method to run")
	width := flag.Int("w", 64, "grid width")
	length := flag.Int("l", 64, "grid length")
	seed := flag.Int64("seed", 1337, "generation seed (overrides -set seed=...)")
	list := flag.Bool("list", false, "list registered methods and exit")
	params := flag.Bool("params", false, "print the resolved parameters and exit")
	animate := flag.Bool("animate", false, "print the grid after every step")
	rate := flag.Int("rate", 10, "steps per second when animating")
	timeout := flag.Duration("timeout", 0, "abort generation after this long (0 disables)")
	legend := flag.Bool("legend", true, "print the glyph legend")
	var overrides app.KeyValues
	flag.Var(&overrides, "set", "method override in key=value form (repeatable)")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(core.Names(), "\n"))
		return
	}

	cfg := overrides.Map()
	cfg["seed"] = strconv.FormatInt(*seed, 10)
	m, err := core.New(*method, cfg)
	if err != nil {
		log.Fatalf("%v (available: %s)", err, strings.Join(core.Names(), ", "))
	}

	if *params {
		if p, ok := m.(core.ParameterProvider); ok {
			fmt.Println(p.Parameters())
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	grid := core.NewGrid(*width, *length)
	start := time.Now()
	steps := 0
	var runErr error
	pacer := core.NewPacer(*rate)
	for step, err := range core.Steps(ctx, m, grid) {
		if step.Phase == core.PhaseDone {
			runErr = err
			break
		}
		steps++
		if !*animate {
			continue
		}
		fmt.Printf("\x1b[H\x1b[2J%s step %d (%s #%d)\n", m.Name(), steps, step.Phase, step.Index)
		if err := render.WriteASCII(os.Stdout, grid); err != nil {
			log.Fatal(err)
		}
		// Cancellation surfaces through the generator on its next step.
		_ = pacer.Wait(ctx)
	}
	elapsed := time.Since(start)

	if err := render.WriteASCII(os.Stdout, grid); err != nil {
		log.Fatal(err)
	}
	if *legend {
		fmt.Println(render.Legend(grid))
	}

	var rooms []core.Rect
	if rl, ok := m.(core.RoomLister); ok {
		rooms = rl.Rooms()
	}
	fmt.Println(analysis.Summarize(grid, rooms))

	outcome := core.OutcomeOf(runErr)
	fmt.Printf("outcome: %s after %d steps in %s\n", outcome, steps, elapsed.Round(time.Microsecond))
	if runErr != nil {
		fmt.Printf("detail: %v\n", runErr)
	}
	if outcome == core.OutcomeInvalid || outcome == core.OutcomeFailed {
		os.Exit(1)
	}
}
