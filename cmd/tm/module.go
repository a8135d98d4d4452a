package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/runs"
	"github.com/reusee/turing/tmconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs tmconfigs.Module
	Runs    runs.Module
	Debugs  debugs.Module
}
