// Package config loads planner configuration from a YAML file and optionally
// watches it for changes, for use by cmd/pomcp-tiger and similar drivers.
package config

import (
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"

	"github.com/patrickemami/pomcp-go/internal/pomcp"
)

// File is the on-disk shape of a planner configuration file. Durations are given in
// seconds to keep the YAML free of Go-specific duration syntax.
type File struct {
	NumStartStates         int     `yaml:"num_start_states"`
	MinParticleCount       int     `yaml:"min_particle_count"`
	MaxParticleCount       int     `yaml:"max_particle_count"`
	NumSims                int     `yaml:"num_sims"`
	MaximumDepth           int     `yaml:"maximum_depth"`
	ActionSelectionSeconds float64 `yaml:"action_selection_timeout_seconds"`
	UCBCoefficient         float32 `yaml:"ucb_coefficient"`
	Discount               float32 `yaml:"discount"`
	StepSize               float32 `yaml:"step_size"`
}

// ToPlannerConfig converts f to a pomcp.Config, leaving zero-valued fields at the
// pomcp.DefaultConfig() values rather than forcing callers to specify everything.
func (f File) ToPlannerConfig() pomcp.Config {
	cfg := pomcp.DefaultConfig()
	if f.NumStartStates > 0 {
		cfg.NumStartStates = f.NumStartStates
	}
	if f.MinParticleCount > 0 {
		cfg.MinParticleCount = f.MinParticleCount
	}
	if f.MaxParticleCount > 0 {
		cfg.MaxParticleCount = f.MaxParticleCount
	}
	if f.NumSims > 0 {
		cfg.NumSims = f.NumSims
	}
	if f.MaximumDepth > 0 {
		cfg.MaximumDepth = f.MaximumDepth
	}
	if f.ActionSelectionSeconds > 0 {
		cfg.ActionSelectionTimeout = time.Duration(f.ActionSelectionSeconds * float64(time.Second))
	}
	if f.UCBCoefficient > 0 {
		cfg.UCBCoefficient = f.UCBCoefficient
	}
	if f.Discount > 0 {
		cfg.Discount = f.Discount
	}
	if f.StepSize > 0 {
		cfg.StepSize = f.StepSize
	}
	return cfg
}

// Load reads and parses a YAML configuration file at path.
func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, errors.Wrapf(err, "reading config file %q", path)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, errors.Wrapf(err, "parsing config file %q", path)
	}
	return f, nil
}

// Watcher reloads a config File from disk whenever it changes, handing the new value
// to the caller via Current. Reloads are snapshotted: a caller mid-episode keeps using
// the File returned by Current at the start of that episode, only picking up the new
// value on its next call (spec §6.1 config discipline — config changes never take
// effect mid-batch).
type Watcher struct {
	mu      sync.Mutex
	path    string
	current File
	watcher *fsnotify.Watcher
}

// NewWatcher loads path once synchronously, then starts watching it in the background.
func NewWatcher(path string) (*Watcher, error) {
	initial, err := Load(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating config file watcher")
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "watching config file %q", path)
	}

	w := &Watcher{path: path, current: initial, watcher: fsw}
	go w.watch()
	return w, nil
}

func (w *Watcher) watch() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			reloaded, err := Load(w.path)
			if err != nil {
				klog.Errorf("config: reload of %q failed, keeping previous config: %+v", w.path, err)
				continue
			}
			w.mu.Lock()
			w.current = reloaded
			w.mu.Unlock()
			klog.Infof("config: reloaded %q", w.path)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			klog.Errorf("config: watcher error on %q: %+v", w.path, err)
		}
	}
}

// Current returns the most recently loaded File. Safe for concurrent use.
func (w *Watcher) Current() File {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Close stops watching the file.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
