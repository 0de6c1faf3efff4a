// Command pomcp-tiger runs the POMCP planner against the Tiger problem benchmark
// domain, either as a single interactive episode or as a batch of episodes reported
// with summary statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"github.com/google/uuid"
	"github.com/janpfeifer/must"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/patrickemami/pomcp-go/internal/config"
	"github.com/patrickemami/pomcp-go/internal/models/tiger"
	"github.com/patrickemami/pomcp-go/internal/pomcp"
	"github.com/patrickemami/pomcp-go/internal/ui/beliefview"
	"github.com/patrickemami/pomcp-go/internal/ui/spinning"
)

var (
	flagConfig      = flag.String("config", "", "Path to a YAML planner config file. If empty, DefaultConfig is used.")
	flagEpisodes    = flag.Int("episodes", 1, "Number of episodes to run.")
	flagMaxSteps    = flag.Int("max_steps", 100, "Max real steps per episode before it's cut off.")
	flagSeed        = flag.Uint64("seed", 42, "RNG seed for the planner and the Tiger model.")
	flagWatchConfig = flag.Bool("watch_config", false, "Hot-reload --config between episodes.")
	flagQuiet       = flag.Bool("quiet", false, "Suppress per-step belief rendering.")

	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *flagEpisodes <= 0 {
		klog.Fatalf("Invalid --episodes=%d", *flagEpisodes)
	}

	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	if exc := exceptions.Try(func() { run() }); exc != nil {
		klog.Exitf("pomcp-tiger: %+v", exc)
	}
}

func run() {
	plannerConfig, watcher := loadInitialConfig()
	if watcher != nil {
		defer watcher.Close()
	}

	if *flagEpisodes == 1 {
		episodeID := uuid.NewString()
		reward := runEpisode(episodeID, plannerConfig, !*flagQuiet)
		fmt.Printf("episode %s: total reward = %.3f\n", episodeID, reward)
		return
	}

	runBatch(plannerConfig, watcher)
}

func loadInitialConfig() (pomcp.Config, *config.Watcher) {
	if *flagConfig == "" {
		return pomcp.DefaultConfig(), nil
	}
	if *flagWatchConfig {
		w := must.M1(config.NewWatcher(*flagConfig))
		return w.Current().ToPlannerConfig(), w
	}
	f := must.M1(config.Load(*flagConfig))
	return f.ToPlannerConfig(), nil
}

func runBatch(initial pomcp.Config, watcher *config.Watcher) {
	bar := progressbar.Default(int64(*flagEpisodes), "running episodes")
	var totalReward float64
	start := time.Now()

	cfg := initial
	for i := 0; i < *flagEpisodes; i++ {
		if watcher != nil {
			cfg = watcher.Current().ToPlannerConfig()
		}
		episodeID := uuid.NewString()
		totalReward += runEpisode(episodeID, cfg, false)
		must.M(bar.Add(1))
	}

	elapsed := time.Since(start)
	fmt.Printf("\n%s episodes in %s (%s per episode), mean reward = %.3f\n",
		humanize.Comma(int64(*flagEpisodes)), elapsed, elapsed/time.Duration(*flagEpisodes),
		totalReward/float64(*flagEpisodes))
}

// runEpisode plans and executes one Tiger episode to completion or until --max_steps
// real steps elapse, returning the accumulated real reward.
func runEpisode(episodeID string, plannerConfig pomcp.Config, render bool) float64 {
	model := tiger.New(*flagSeed)
	planner := pomcp.New[tiger.State, tiger.Observation, tiger.InfoState](model, plannerConfig, *flagSeed)

	var totalReward float64
	for step := 0; step < *flagMaxSteps; step++ {
		s := spinning.New(globalCtx)
		action, err := planner.SelectAction()
		s.Done()
		if err != nil {
			klog.Errorf("episode %s: select_action failed at step %d: %+v", episodeID, step, err)
			break
		}

		state := planner.Root().Particles()[0]
		result, ok := model.GenerateStep(state, action)
		if !ok {
			klog.Fatalf("episode %s: model rejected action %v at step %d", episodeID, action, step)
		}
		totalReward += result.Reward

		if render {
			renderBelief(episodeID, step, planner, action)
		}

		depleted := planner.Update(result)
		if depleted {
			klog.Warningf("episode %s: belief depleted at step %d, resetting planner", episodeID, step)
			planner.Reset()
		}
		if result.IsTerminal {
			break
		}
	}
	return totalReward
}

func renderBelief(episodeID string, step int, planner *pomcp.Planner[tiger.State, tiger.Observation, tiger.InfoState], action pomcp.Action) {
	root := planner.Root()
	counts := map[string]int{}
	for _, s := range root.Particles() {
		counts[s.String()]++
	}
	var hist []beliefview.ParticleCount
	for label, count := range counts {
		hist = append(hist, beliefview.ParticleCount{Label: label, Count: count})
	}
	fmt.Println(beliefview.Render(
		fmt.Sprintf("episode %s step %d: took action %s", episodeID, step, tiger.ActionName(action)),
		hist, nil,
	))
}
