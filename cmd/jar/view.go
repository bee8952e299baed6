package main

import (
	"github.com/jarstore/go-jar"
	"github.com/jarstore/go-jar/render"

	"github.com/scott-cotton/cli"
)

type ViewConfig struct {
	MainConfig *MainConfig
	View       *cli.Command

	IDs bool `cli:"name=ids desc='show node ids for identity-addressed edits'"`
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v", "ls").
		WithSynopsis("view [-ids]").
		WithDescription("Render the jar tree; expressions show their computed value").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.View.Parse(cc, args); err != nil {
		return err
	}
	st := cfg.MainConfig.open()
	return st.View(func(j *jar.Jar) error {
		return render.Render(cc.Out, j.Nodes, &render.Options{
			Color:   cfg.MainConfig.colorEnabled(),
			ShowIDs: cfg.IDs,
		})
	})
}
