package main

import (
	"fmt"

	"github.com/jarstore/go-jar"
	"github.com/jarstore/go-jar/codec"

	"github.com/scott-cotton/cli"
)

type ExportConfig struct {
	MainConfig *MainConfig
	Export     *cli.Command
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Export, "export").
		WithSynopsis("export [-o file] [-y]").
		WithDescription("Write the jar as a plain JSON (or YAML) document; expressions export their raw formula").
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
}

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Export.Parse(cc, args); err != nil {
		return err
	}
	st := cfg.MainConfig.open()
	return st.View(func(j *jar.Jar) error {
		var (
			d   []byte
			err error
		)
		if cfg.MainConfig.Y {
			d, err = codec.MarshalYAML(j.Nodes)
		} else {
			d, err = codec.MarshalIndent(j.Nodes)
		}
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
		if !cfg.MainConfig.Y {
			fmt.Fprintln(cc.Out)
		}
		return nil
	})
}
