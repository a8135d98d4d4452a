package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/turing/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens an interactive starlark REPL on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()
		thread := &starlark.Thread{
			Name: "tap " + what,
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

func toStringDict(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}

// Eval evaluates a single starlark expression against globals.
func Eval(expr string, globals map[string]any) (starlark.Value, error) {
	thread := &starlark.Thread{
		Name: "eval",
	}
	return starlark.EvalOptions(fileOptions, thread, "<expr>", expr, toStringDict(globals))
}
