package tmconfigs

import (
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/machine"
	"github.com/reusee/turing/runs"
	"github.com/reusee/turing/vars"
)

type RuleSpec struct {
	From  string `json:"from"`
	Read  string `json:"read"`
	Write string `json:"write"`
	Move  string `json:"move"`
	To    string `json:"to"`
}

type JobSpec struct {
	Blank  string     `json:"blank"`
	Halt   string     `json:"halt"`
	Rules  []RuleSpec `json:"rules"`
	Tape   []string   `json:"tape"`
	State  string     `json:"state"`
	Cursor *int       `json:"cursor"`
}

func (s JobSpec) Job(name string) (job runs.Job, err error) {
	rules := make([]machine.Rule[string, string], 0, len(s.Rules))
	for i, spec := range s.Rules {
		move, err := machine.ParseDirection(spec.Move)
		if err != nil {
			return job, fmt.Errorf("job %s: rule %d: %w", name, i, err)
		}
		rules = append(rules, machine.Rule[string, string]{
			From:  spec.From,
			Read:  spec.Read,
			Write: spec.Write,
			Move:  move,
			To:    spec.To,
		})
	}
	program, err := machine.NewProgram(s.Blank, s.Halt, rules...)
	if err != nil {
		return job, fmt.Errorf("job %s: %w", name, err)
	}
	return runs.Job{
		Name:    name,
		Program: program,
		Tape:    s.Tape,
		State:   s.State,
		Cursor:  vars.DerefOrZero(s.Cursor),
	}, nil
}

type Jobs map[string]runs.Job

func (j Jobs) Names() []string {
	return slices.Sorted(maps.Keys(j))
}

type LoadJobs func() (Jobs, error)

func (Module) LoadJobs(
	loader configs.Loader,
) LoadJobs {
	return func() (Jobs, error) {
		jobs := make(Jobs)
		for specs, err := range configs.All[map[string]JobSpec](loader, "jobs") {
			if err != nil {
				return nil, err
			}
			for _, name := range slices.Sorted(maps.Keys(specs)) {
				if _, ok := jobs[name]; ok {
					// defined by an earlier file
					continue
				}
				job, err := specs[name].Job(name)
				if err != nil {
					return nil, err
				}
				jobs[name] = job
			}
		}
		return jobs, nil
	}
}
