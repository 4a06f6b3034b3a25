// Package script loads YAML property-edit scripts and applies them to a
// scene through the property handles of its nodes and camera.
//
// A script lists initial node states and a sequence of steps. Each step names
// a node, a dotted property path and an operation:
//
//	nodes:
//	  - name: cube
//	    origin: [0, 1, 0]
//	steps:
//	  - node: cube
//	    path: basis.x.z
//	    op: add
//	    value: 0.5
//	  - path: camera.fov
//	    op: set
//	    value: 1.2
//	  - node: cube
//	    path: basis
//	    op: call
//	    method: rotate
//	    args: [0, 1, 0, 1.5708]
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"quarkprop/variant"
)

var (
	ErrUnknownNode   = errors.New("unknown node")
	ErrUnknownPath   = errors.New("unknown property path")
	ErrUnsupportedOp = errors.New("unsupported operation")
	ErrBadValue      = errors.New("bad value")
	ErrSceneFull     = errors.New("scene is full")
)

// Operations accepted in a step.
const (
	OpSet    = "set"
	OpAdd    = "add"
	OpSub    = "sub"
	OpMul    = "mul"
	OpDiv    = "div"
	OpInc    = "inc"
	OpDec    = "dec"
	OpOr     = "or"
	OpAnd    = "and"
	OpXor    = "xor"
	OpAndNot = "andnot"
	OpShl    = "shl"
	OpShr    = "shr"
	OpNot    = "not"
	OpCall   = "call"
)

// Script is a parsed property-edit script.
type Script struct {
	Nodes []NodeState `yaml:"nodes" validate:"dive"`
	Steps []Step      `yaml:"steps" validate:"required,min=1,dive"`
}

// NodeState is the initial state of a node. The node is created when the
// scene has no node of that name.
type NodeState struct {
	Name    string         `yaml:"name" validate:"required"`
	Origin  []variant.Real `yaml:"origin" validate:"omitempty,len=3"`
	Euler   []variant.Real `yaml:"euler" validate:"omitempty,len=3"`
	Layers  *uint32        `yaml:"layers"`
	Visible *bool          `yaml:"visible"`
}

// Step is one operation on one property.
type Step struct {
	Node   string         `yaml:"node"`
	Path   string         `yaml:"path" validate:"required"`
	Op     string         `yaml:"op" validate:"required,oneof=set add sub mul div inc dec or and xor andnot shl shr not call"`
	Value  yaml.Node      `yaml:"value" validate:"-"`
	Method string         `yaml:"method" validate:"required_if=Op call"`
	Args   []variant.Real `yaml:"args"`
}

var validate = validator.New()

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a script. Unknown keys are rejected.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse script: empty document")
		}
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("validate script: %w", err)
	}
	return &s, nil
}
