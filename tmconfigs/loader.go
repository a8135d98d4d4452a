package tmconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
)

//go:embed schema.cue
var Schema string

var configFiles = cmds.Collect[string]("-config")

var filenames = []string{
	"tm.cue",
	".tm.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := append([]string(nil), *configFiles...)
	paths = append(paths, discover()...)
	if len(paths) > 0 {
		logger.Info("config files", "paths", paths)
	}
	return configs.NewLoader(paths, Schema)
}

// discover lists existing config files, most specific directory first.
func discover() (paths []string) {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
