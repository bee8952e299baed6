package main

import (
	"fmt"
	"os"

	"github.com/jarstore/go-jar/codec"
	"github.com/jarstore/go-jar/jardiff"

	"github.com/scott-cotton/cli"
)

type DiffConfig struct {
	MainConfig *MainConfig
	Diff       *cli.Command
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithSynopsis("diff from.json to.json").
		WithDescription("Show a line diff of two jar documents after canonicalization").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	from, err := canonical(args[0])
	if err != nil {
		return err
	}
	to, err := canonical(args[1])
	if err != nil {
		return err
	}
	diffs := jardiff.Lines(from, to)
	if err := jardiff.Format(cc.Out, diffs, cfg.MainConfig.colorEnabled()); err != nil {
		return err
	}
	if !jardiff.Equal(diffs) {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// canonical parses file as a jar document and re-renders it, so both sides
// of the diff share formatting and key quoting.
func canonical(file string) ([]byte, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	nodes, err := codec.Unmarshal(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return codec.MarshalIndent(nodes)
}
