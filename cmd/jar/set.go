package main

import (
	"fmt"

	"github.com/jarstore/go-jar"

	"github.com/scott-cotton/cli"
)

type SetConfig struct {
	MainConfig *MainConfig
	Set        *cli.Command

	Type string `cli:"name=t aliases=type desc='value type: text|number|boolean|dictionary|list|expression (default text)'"`
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [-t type] path [value]").
		WithDescription("Deep-set a value at a dotted path, creating missing dictionaries").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: set requires a path and an optional value", cli.ErrUsage)
	}
	req := &jar.TriggerRequest{Key: args[0], Type: cfg.Type}
	if len(args) == 2 {
		req.Value = args[1]
	}
	var ack string
	st := cfg.MainConfig.open()
	err = st.Update(func(j *jar.Jar) error {
		var err error
		ack, err = j.Trigger(req)
		return err
	})
	if err != nil {
		return err
	}
	if ack == "" {
		return fmt.Errorf("blocked: %s conflicts with an existing value", req.Key)
	}
	fmt.Fprintln(cc.Out, ack)
	return nil
}
