package cmds

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeFor[error]()

type Command struct {
	Name        string
	Func        reflect.Value
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Func wraps fn as a command. Arguments of fn are taken from the following command line words;
// pointer arguments are optional.
func Func(fn any) *Command {
	value := reflect.ValueOf(fn)
	if value.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	switch value.Type().NumOut() {
	case 0:
	case 1:
		if value.Type().Out(0) != errorType {
			panic(fmt.Errorf("must return error, got %v", value.Type().Out(0)))
		}
	default:
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	return &Command{
		Func: value,
	}
}

func (c *Command) call(args []string) (rest []string, err error) {
	fnType := c.Func.Type()
	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := parseArg(fnType.In(i), args)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	rets := c.Func.Call(callArgs)
	if len(rets) > 0 && !rets[0].IsNil() {
		return nil, rets[0].Interface().(error)
	}
	return args, nil
}
