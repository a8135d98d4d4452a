package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads CUE files lazily, validating each against an optional schema.
// Earlier files take precedence in AssignFirst.
type Loader struct {
	paths    []string
	getRoots func() ([]root, error)
}

type root struct {
	value cue.Value
	path  string
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		paths: filePaths,
		getRoots: sync.OnceValues(func() ([]root, error) {
			return loadRoots(filePaths, schemaSrc)
		}),
	}
}

func loadRoots(filePaths []string, schemaSrc string) (ret []root, err error) {
	ctx := cuecontext.New()

	var schema cue.Value
	if schemaSrc != "" {
		schema = ctx.CompileString("close({" + schemaSrc + "})")
		if err := schema.Err(); err != nil {
			return nil, fmt.Errorf("compile schema: %w", err)
		}
	}

	for _, filePath := range filePaths {
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		value := ctx.CompileBytes(content, cue.Filename(filePath))
		if err := value.Err(); err != nil {
			return nil, err
		}
		if schema.Exists() {
			value = schema.Unify(value)
			if err := value.Validate(cue.Concrete(true)); err != nil {
				return nil, fmt.Errorf("%s: %w", filePath, err)
			}
		}
		ret = append(ret, root{
			value: value,
			path:  filePath,
		})
	}

	return ret, nil
}

func (l Loader) Paths() []string {
	return l.paths
}

// IterCueValues yields the value at path from every file that defines it.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		if l.getRoots == nil {
			return
		}
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, r := range roots {
			value := r.value.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if !yield(&value, nil) {
				return
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
