package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jarstore/go-jar"
	"github.com/jarstore/go-jar/codec"

	"github.com/scott-cotton/cli"
)

type ImportConfig struct {
	MainConfig *MainConfig
	Import     *cli.Command

	Merge bool `cli:"name=merge desc='apply the document as a JSON merge patch instead of replacing the tree'"`
}

func ImportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ImportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Import, "import").
		WithSynopsis("import [-merge] [file]").
		WithDescription("Replace (or merge-patch) the jar from a JSON or YAML document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return imprt(cfg, cc, args)
		})
}

func imprt(cfg *ImportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Import.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: import takes at most one file argument", cli.ErrUsage)
	}
	if cfg.Merge && cfg.MainConfig.Y {
		return fmt.Errorf("%w: -merge applies to JSON documents only", cli.ErrUsage)
	}
	data, err := readArg(args)
	if err != nil {
		return err
	}
	st := cfg.MainConfig.open()
	err = st.Update(func(j *jar.Jar) error {
		switch {
		case cfg.Merge:
			return j.MergeImport(data)
		case cfg.MainConfig.Y:
			nodes, err := codec.UnmarshalYAML(data)
			if err != nil {
				return err
			}
			j.Nodes = nodes
			return nil
		default:
			return j.Import(data)
		}
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, "imported")
	return nil
}

func readArg(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", args[0], err)
	}
	return d, nil
}
