package main

import (
	"fmt"

	"github.com/jarstore/go-jar"

	"github.com/scott-cotton/cli"
)

type DelConfig struct {
	MainConfig *MainConfig
	Del        *cli.Command
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DelConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Del, "del").
		WithAliases("rm", "delete").
		WithSynopsis("del path").
		WithDescription("Delete the node at a dotted path; siblings keep their order and names").
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
}

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: del requires one argument, a dotted path", cli.ErrUsage)
	}
	st := cfg.MainConfig.open()
	return st.Update(func(j *jar.Jar) error {
		n := j.Get(args[0])
		if n == nil {
			return fmt.Errorf("not found: %s", args[0])
		}
		j.Delete(n.ID)
		fmt.Fprintf(cc.Out, "deleted %s\n", args[0])
		return nil
	})
}
