package main

import (
	"fmt"
	"net/http"

	"github.com/jarstore/go-jar/system/jard/server"

	"github.com/scott-cotton/cli"
)

type ServeConfig struct {
	MainConfig *MainConfig
	Serve      *cli.Command

	Port int    `cli:"name=port desc='HTTP server port (default 8460)'"`
	Name string `cli:"name=name desc='jar name used for the export artifact'"`
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve [-port n] [-name jar]").
		WithDescription("Run the jar trigger server over HTTP").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Serve.Parse(cc, args); err != nil {
		return err
	}
	if cfg.Port == 0 {
		cfg.Port = 8460
	}
	st := cfg.MainConfig.open()
	srv := server.New(&server.Spec{
		Store:   st,
		JarName: cfg.Name,
	})
	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Fprintf(cc.Out, "serving jar from %s on %s\n", st.Path(), addr)
	return http.ListenAndServe(addr, srv)
}
