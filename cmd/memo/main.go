package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/decred/slog"

	"github.com/ik5/voicememo/session"
	"github.com/ik5/voicememo/store"
)

type app struct {
	cfg   *config
	log   slog.Logger
	store *store.Store
}

func (a *app) sessionOptions() []session.Option {
	return []session.Option{
		session.WithTickInterval(a.cfg.tickInterval()),
		session.WithHoldDuration(a.cfg.holdDuration()),
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: memo [-cfg file] <command> [args]\n\ncommands:\n")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-9s %s\n", name, commands[name].usage)
	}
}

func _main() error {
	cfgFileFlag := flag.String("cfg", defaultCfgFile, "Config file")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		return errors.New("no command given")
	}
	cmd, ok := commands[flag.Arg(0)]
	if !ok {
		usage()
		return fmt.Errorf("unknown command %q", flag.Arg(0))
	}

	cfg, err := readConfig(*cfgFileFlag)
	if err != nil {
		return err
	}

	log, bknd, err := initLogging(cfg)
	if err != nil {
		return err
	}
	defer bknd.Close()

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return err
	}
	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := &app{cfg: cfg, log: log, store: st}
	log.Debugf("Running %s", flag.Arg(0))

	return cmd.run(ctx, a, flag.Args()[1:])
}

func main() {
	if err := _main(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
