// Package debug provides env-var gated trace logging for jar internals.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Eval   bool
	Mutate bool
	Store  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Eval = boolEnv("JAR_DEBUG_EVAL")
	d.Mutate = boolEnv("JAR_DEBUG_MUTATE")
	d.Store = boolEnv("JAR_DEBUG_STORE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool {
	return d.Eval
}
func Mutate() bool {
	return d.Mutate
}
func Store() bool {
	return d.Store
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
