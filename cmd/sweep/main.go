package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"tilegen/internal/analysis"
	"tilegen/internal/core"
	_ "tilegen/internal/methods/bsp"
	_ "tilegen/internal/methods/roomplacement"
)

type roomSet struct {
	method   string
	maxRooms int
	minSize  int
	maxSize  int
	margin   int
}

func (p roomSet) String() string {
	return fmt.Sprintf("%s rooms=%d size=%d..%d margin=%d", p.method, p.maxRooms, p.minSize, p.maxSize, p.margin)
}

func (p roomSet) config(seed int64) map[string]string {
	return map[string]string{
		"seed":      strconv.FormatInt(seed, 10),
		"max_rooms": strconv.Itoa(p.maxRooms),
		"min_w":     strconv.Itoa(p.minSize),
		"min_h":     strconv.Itoa(p.minSize),
		"max_w":     strconv.Itoa(p.maxSize),
		"max_h":     strconv.Itoa(p.maxSize),
		"margin":    strconv.Itoa(p.margin),
	}
}

type job struct {
	params roomSet
	seed   int64
}

type runResult struct {
	params    roomSet
	placed    int
	reachable int
	steps     int
	shortfall bool
	err       error
}

type summary struct {
	params     roomSet
	runs       int
	shortfalls int
	placed     int
	requested  int
	connected  int
	steps      int
}

func (s summary) placementRate() float64 {
	if s.requested == 0 {
		return 1
	}
	return float64(s.placed) / float64(s.requested)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("sweep: ")

	seeds := flag.Int("seeds", 20, "seeds to run per parameter set")
	width := flag.Int("w", 64, "grid width")
	length := flag.Int("l", 64, "grid length")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "parameter sets to list in the ranking")
	flag.Parse()

	var sets []roomSet
	for _, method := range []string{"rooms", "bsp"} {
		for _, rooms := range []int{4, 8, 16} {
			for _, size := range []struct{ min, max int }{{4, 8}, {6, 12}, {8, 16}} {
				for _, margin := range []int{1, 2, 3} {
					sets = append(sets, roomSet{method: method, maxRooms: rooms, minSize: size.min, maxSize: size.max, margin: margin})
				}
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets x %d seeds (%d workers, %dx%d grid)\n", len(sets), *seeds, *workers, *width, *length)

	jobs := make(chan job)
	results := make(chan runResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			grid := core.NewGrid(*width, *length)
			for j := range jobs {
				results <- runScenario(grid, j)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			for s := 0; s < *seeds; s++ {
				jobs <- job{params: params, seed: int64(s + 1)}
			}
		}
		close(jobs)
	}()

	start := time.Now()
	byParams := make(map[roomSet]*summary, len(sets))
	for res := range results {
		if res.err != nil {
			log.Printf("%s: %v", res.params, res.err)
			continue
		}
		sum, ok := byParams[res.params]
		if !ok {
			sum = &summary{params: res.params}
			byParams[res.params] = sum
		}
		sum.runs++
		sum.placed += res.placed
		sum.requested += res.params.maxRooms
		sum.steps += res.steps
		if res.shortfall {
			sum.shortfalls++
		}
		if res.placed > 0 && res.reachable == res.placed {
			sum.connected++
		}
	}
	elapsed := time.Since(start)

	all := make([]summary, 0, len(byParams))
	for _, s := range byParams {
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].placementRate() != all[j].placementRate() {
			return all[i].placementRate() > all[j].placementRate()
		}
		return all[i].params.String() < all[j].params.String()
	})

	fmt.Printf("\nCompleted %d parameter sets in %s\n", len(all), elapsed.Round(time.Millisecond))
	for i, s := range all {
		if i >= *top {
			break
		}
		fmt.Printf("#%d %s\n    placed %.1f%%, shortfalls %d/%d, fully connected %d/%d, mean steps %.1f\n",
			i+1, s.params, 100*s.placementRate(), s.shortfalls, s.runs, s.connected, s.runs, float64(s.steps)/float64(max(s.runs, 1)))
	}

	if len(all) > 0 {
		s := all[len(all)-1]
		fmt.Printf("\nLowest placement: %s at %.1f%% (%d shortfalls)\n", s.params, 100*s.placementRate(), s.shortfalls)
	}
}

// runScenario reuses grid across jobs; every method clears it before painting.
func runScenario(grid *core.Grid, j job) runResult {
	res := runResult{params: j.params}
	m, err := core.New(j.params.method, j.params.config(j.seed))
	if err != nil {
		res.err = err
		return res
	}
	for step, err := range core.Steps(context.Background(), m, grid) {
		if step.Phase == core.PhaseDone {
			var short *core.ShortfallError
			switch {
			case errors.As(err, &short):
				res.shortfall = true
			case err != nil:
				res.err = err
				return res
			}
			continue
		}
		res.steps++
	}
	rooms := m.(core.RoomLister).Rooms()
	res.placed = len(rooms)
	res.reachable = analysis.RoomsReachable(grid, rooms)
	return res
}
