package runs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
