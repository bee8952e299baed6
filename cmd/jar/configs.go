package main

import (
	"os"

	"github.com/jarstore/go-jar/store"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Y     bool   `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	Color bool   `cli:"name=color desc='force colored output'"`
	State string `cli:"name=state desc='path to the jar state file (default $JAR_STATE or jar.state.json)'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) open() *store.Store {
	return store.Open(cfg.State)
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// colorEnabled turns color on when forced by -color, or when writing
// straight to a terminal.
func (cfg *MainConfig) colorEnabled() bool {
	if cfg.Color {
		return true
	}
	if cfg.Out != "" && cfg.Out != "-" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}
