// Package eval evaluates expressions over bound tuples. Attribute names
// become the expression environment, so a tuple bound to a schema with
// attributes NAME and AGE can be matched with expressions like
// `AGE > 100 && NAME != ""`.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/tuple-format/go-tuple/debug"
	"github.com/signadot/tuple-format/go-tuple/schema"
)

// Env returns the expression environment of a bound tuple: one entry per
// attribute, named by the attribute.
func Env(b *schema.Bound) map[string]any {
	s := b.Schema()
	res := make(map[string]any, s.Len())
	for i, name := range s.Attributes() {
		v, _ := b.At(i)
		res[name] = v
	}
	return res
}

func exprOpts(b *schema.Bound) []expr.Option {
	return []expr.Option{
		expr.Function("attr", func(params ...any) (any, error) {
			return b.Value(params[0].(string))
		},
			new(func(string) any)),
		expr.Function("tuplestr", func(params ...any) (any, error) {
			return b.AsTuple().String(), nil
		},
			new(func() string)),
	}
}

// Eval compiles and runs expression against b's environment.
func Eval(b *schema.Bound, expression string) (any, error) {
	if debug.Eval() {
		debug.Logf("eval %q on %s\n", expression, b)
	}
	prg, err := expr.Compile(expression, exprOpts(b)...)
	if err != nil {
		return nil, err
	}
	return expr.Run(prg, Env(b))
}

// Match evaluates expression against b's environment and requires a
// boolean result.
func Match(b *schema.Bound, expression string) (bool, error) {
	if debug.Eval() {
		debug.Logf("match %q on %s\n", expression, b)
	}
	prg, err := expr.Compile(expression, append(exprOpts(b), expr.AsBool())...)
	if err != nil {
		return false, err
	}
	res, err := expr.Run(prg, Env(b))
	if err != nil {
		return false, err
	}
	v, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("eval: expression returned %T, want bool", res)
	}
	return v, nil
}

// Select returns the bound tuples for which expression matches.
func Select(bs []*schema.Bound, expression string) ([]*schema.Bound, error) {
	var res []*schema.Bound
	for _, b := range bs {
		ok, err := Match(b, expression)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, b)
		}
	}
	return res, nil
}
