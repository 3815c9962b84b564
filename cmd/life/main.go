package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"lifegrid/internal/app"
	"lifegrid/internal/tui"

	"github.com/gdamore/tcell/v2"
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
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	var overrides kvList
	flag.Var(&overrides, "set", "setting override in key=value form (repeatable)")
	flag.Parse()

	kv, err := app.ParseOverrides(overrides)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.FromMap(kv); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	engine, err := cfg.Engine()
	if err != nil {
		log.Fatalf("load grid: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.TUI {
		if err := app.Run(ctx, engine, cfg, app.PrintFrame(os.Stdout, cfg.TextStyle())); err != nil {
			log.Fatal(err)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	if err := tui.Run(ctx, screen, engine, cfg); err != nil {
		log.Fatal(err)
	}
}
