package main

import (
	"fmt"

	"github.com/jarstore/go-jar"
	"github.com/jarstore/go-jar/codec"

	"github.com/scott-cotton/cli"
)

type GetConfig struct {
	MainConfig *MainConfig
	Get        *cli.Command
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get path").
		WithDescription("Print the exported value at a dotted path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	st := cfg.MainConfig.open()
	return st.View(func(j *jar.Jar) error {
		n := j.Get(args[0])
		if n == nil {
			return fmt.Errorf("not found: %s", args[0])
		}
		d, err := codec.MarshalNode(n)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, string(d))
		return nil
	})
}
