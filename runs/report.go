package runs

import (
	"io"

	"gopkg.in/yaml.v3"
)

type Report struct {
	Job    string   `yaml:"job"`
	Output []string `yaml:"output,flow"`
	Tape   []string `yaml:"tape,flow"`
	State  string   `yaml:"state"`
	Cursor int      `yaml:"cursor"`
	Steps  int      `yaml:"steps"`
	Error  string   `yaml:"error,omitempty"`
}

func WriteYAML(w io.Writer, reports []*Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return err
	}
	return enc.Close()
}
