// ytdesk-cli is the headless front-end: it downloads the URLs given on the
// command line and prints the same progress/completion events the GUI log
// pane shows.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ytdesk/ytdesk/internal/config"
	"github.com/ytdesk/ytdesk/internal/download"
	"github.com/ytdesk/ytdesk/internal/model"
	"github.com/ytdesk/ytdesk/internal/platform"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file")
		kindFlag   = flag.String("kind", string(model.KindVideo), "media kind: audio, video or image")
		baseDir    = flag.String("base", "", "base directory (overrides config)")
		jobs       = flag.Int("jobs", 0, "max concurrent downloads (overrides config)")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: ytdesk-cli [flags] URL [URL...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	kind, err := model.ParseKind(*kindFlag)
	if err != nil {
		log.Fatalf("invalid -kind: %v", err)
	}

	cfg, err := config.LoadFileConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *baseDir != "" {
		cfg.BaseDir = *baseDir
	}
	if *jobs > 0 {
		cfg.MaxParallel = *jobs
	}

	layout := platform.NewLayout(cfg.BaseDir)
	if missing := layout.MissingBinaries(); len(missing) > 0 {
		log.Fatalf("missing dependencies: %v (place them under %s or on PATH)", missing, layout.BinDir())
	}

	runner := download.NewRunner(layout, cfg.RunnerConfig())

	// Print every event the workers emit; the channel outlives the workers
	// so this goroutine simply stops with the process. Lines are labeled
	// with the request's display title so parallel downloads stay readable.
	go func() {
		for ev := range runner.Events() {
			label := ev.RequestID[:8]
			if req, ok := runner.Get(ev.RequestID); ok {
				label = req.GetDisplayTitle()
			}
			log.Printf("[%s] %s", label, ev.Message)
		}
	}()

	// A failed URL must not cancel the others, so the group carries no
	// shared context; failures are counted instead.
	var g errgroup.Group
	g.SetLimit(cfg.MaxParallel)

	var failed atomic.Int32
	for _, url := range flag.Args() {
		url := url
		g.Go(func() error {
			if err := runner.Run(context.Background(), url, kind); err != nil {
				failed.Add(1)
			}
			return nil
		})
	}

	g.Wait()
	if failed.Load() > 0 {
		os.Exit(1)
	}
}
