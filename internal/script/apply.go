package script

import (
	"fmt"

	"github.com/rs/zerolog"

	"quarkprop/scene"
)

// StepResult records one applied step.
type StepResult struct {
	Index  int
	Node   string
	Path   string
	Op     string
	Before any
	After  any
}

func (r StepResult) String() string {
	target := r.Path
	if r.Node != "" {
		target = r.Node + "." + r.Path
	}
	return fmt.Sprintf("#%d %s %s: %v -> %v", r.Index, r.Op, target, r.Before, r.After)
}

// Report lists the nodes a run created and the steps it applied.
type Report struct {
	Created []string
	Steps   []StepResult
}

// Runner applies scripts to scenes.
type Runner struct {
	log zerolog.Logger
}

type Option func(*Runner)

// WithLogger sets the logger used for per-step debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Runner) { r.log = l }
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{log: zerolog.Nop()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Apply runs s against sc with a silent runner.
func Apply(sc *scene.Scene, s *Script) (*Report, error) {
	return NewRunner().Apply(sc, s)
}

// Apply prepares the listed nodes and then runs every step in order. It stops
// at the first failing step; the report covers the steps applied before it.
func (r *Runner) Apply(sc *scene.Scene, s *Script) (*Report, error) {
	if sc == nil || s == nil {
		return nil, fmt.Errorf("apply script: nil scene or script")
	}
	rep := &Report{}

	for _, ns := range s.Nodes {
		created, err := r.prepare(sc, ns)
		if err != nil {
			return rep, err
		}
		if created {
			rep.Created = append(rep.Created, ns.Name)
		}
	}

	for i := range s.Steps {
		st := &s.Steps[i]
		res, err := r.step(sc, i, st)
		if err != nil {
			r.log.Warn().Err(err).Int("step", i).Str("path", st.Path).Msg("step failed")
			return rep, fmt.Errorf("step %d (%s %s): %w", i, st.Op, st.Path, err)
		}
		r.log.Debug().
			Int("step", i).
			Str("node", st.Node).
			Str("path", st.Path).
			Str("op", st.Op).
			Interface("before", res.Before).
			Interface("after", res.After).
			Msg("applied")
		rep.Steps = append(rep.Steps, res)
	}

	r.log.Info().Int("steps", len(rep.Steps)).Int("created", len(rep.Created)).Msg("script applied")
	return rep, nil
}

func (r *Runner) prepare(sc *scene.Scene, ns NodeState) (bool, error) {
	n := sc.Find(ns.Name)
	created := false
	if n == nil {
		var ok bool
		n, ok = sc.AddNode(ns.Name)
		if !ok {
			return false, fmt.Errorf("add node %q: %w", ns.Name, ErrSceneFull)
		}
		created = true
		r.log.Debug().Str("node", ns.Name).Str("id", n.ID().String()).Msg("node created")
	}
	if len(ns.Euler) == 3 {
		n.Basis().SetEuler(vec(ns.Euler))
	}
	if len(ns.Origin) == 3 {
		n.Origin().Set(vec(ns.Origin))
	}
	if ns.Layers != nil {
		n.Layers().Set(*ns.Layers)
	}
	if ns.Visible != nil {
		n.Visible().Set(*ns.Visible)
	}
	return created, nil
}

func (r *Runner) step(sc *scene.Scene, i int, st *Step) (StepResult, error) {
	res := StepResult{Index: i, Node: st.Node, Path: st.Path, Op: st.Op}
	t, err := Resolve(sc, st.Node, st.Path)
	if err != nil {
		return res, err
	}
	res.Before = t.Get()
	if st.Op == OpCall {
		err = t.Call(st.Method, st.Args)
	} else {
		err = t.Apply(st.Op, &st.Value)
	}
	if err != nil {
		return res, err
	}
	res.After = t.Get()
	return res, nil
}
