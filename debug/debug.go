// Package debug gates diagnostic logging on TUP_DEBUG_* environment
// variables, read once at process start.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Check bool
	Eval  bool
	Codec bool
}

var d *debug

func init() {
	d = &debug{}
	d.Check = boolEnv("TUP_DEBUG_CHECK")
	d.Eval = boolEnv("TUP_DEBUG_EVAL")
	d.Codec = boolEnv("TUP_DEBUG_CODEC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Check() bool {
	return d.Check
}
func Eval() bool {
	return d.Eval
}
func Codec() bool {
	return d.Codec
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
