package main

import (
	"fmt"
	"strings"

	"github.com/jarstore/go-jar"
	"github.com/jarstore/go-jar/formula"
	"github.com/jarstore/go-jar/ir/dotpath"

	"github.com/scott-cotton/cli"
)

type EvalConfig struct {
	MainConfig *MainConfig
	Eval       *cli.Command
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval (path | formula)").
		WithDescription("Evaluate an expression node at a path, or a formula given inline").
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
}

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires a path or a formula", cli.ErrUsage)
	}
	arg := strings.Join(args, " ")
	st := cfg.MainConfig.open()
	return st.View(func(j *jar.Jar) error {
		var (
			res     formula.Result
			evalErr error
		)
		if dotpath.Valid(arg) && j.Get(arg) != nil {
			res, evalErr = j.EvalPath(arg)
		} else {
			res, evalErr = j.Eval(arg)
		}
		fmt.Fprintln(cc.Out, res.String())
		return evalErr
	})
}
