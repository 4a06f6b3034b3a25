package script

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"quarkprop/scene"
	"quarkprop/variant"
)

const editScript = `
nodes:
  - name: cube
    origin: [0, 1, 0]
    layers: 1
  - name: lamp
    visible: false
steps:
  - node: cube
    path: origin.y
    op: add
    value: 2
  - node: cube
    path: basis.x.z
    op: set
    value: 0.5
  - node: cube
    path: layers
    op: shl
    value: 3
  - node: cube
    path: layers
    op: or
    value: 1
  - node: lamp
    path: visible
    op: not
  - path: camera.fov
    op: set
    value: 10
  - node: cube
    path: clip.d
    op: set
    value: 4
  - node: cube
    path: origin
    op: mul
    value: 2
`

func TestApplyScript(t *testing.T) {
	s, err := Parse([]byte(editScript))
	require.NoError(t, err)
	require.Len(t, s.Steps, 8)

	sc := scene.CreateScene(4)
	rep, err := Apply(sc, s)
	require.NoError(t, err)
	assert.Equal(t, []string{"cube", "lamp"}, rep.Created)
	require.Len(t, rep.Steps, 8)

	cube := sc.Find("cube")
	require.NotNil(t, cube)
	assert.Equal(t, variant.V3(0, 6, 0), cube.GetOrigin())
	assert.Equal(t, variant.V3(1, 0, 0.5), cube.GetBasis().GetX())
	assert.Equal(t, uint32(9), cube.GetLayers())
	assert.Equal(t, variant.Real(4), cube.GetClipPlane().D)

	lamp := sc.Find("lamp")
	require.NotNil(t, lamp)
	assert.True(t, lamp.IsVisible())

	assert.Less(t, sc.Camera.GetFOV(), variant.Real(variant.Pi))

	first := rep.Steps[0]
	assert.Equal(t, variant.Real(1), first.Before)
	assert.Equal(t, variant.Real(3), first.After)
	assert.Contains(t, first.String(), "cube.origin.y")
}

func TestApplyExistingNodeNotRecreated(t *testing.T) {
	sc := scene.CreateScene(2)
	_, ok := sc.AddNode("cube")
	require.True(t, ok)

	s, err := Parse([]byte(editScript))
	require.NoError(t, err)
	rep, err := Apply(sc, s)
	require.NoError(t, err)
	assert.Equal(t, []string{"lamp"}, rep.Created)
	assert.Equal(t, 2, sc.Len())
}

func TestApplySceneFull(t *testing.T) {
	s, err := Parse([]byte(editScript))
	require.NoError(t, err)

	_, err = Apply(scene.CreateScene(1), s)
	assert.ErrorIs(t, err, ErrSceneFull)
}

func TestCallMethods(t *testing.T) {
	s, err := Parse([]byte(`
nodes:
  - name: cube
steps:
  - node: cube
    path: basis
    op: call
    method: scale
    args: [2, 3, 4]
  - node: cube
    path: transform
    op: call
    method: translate
    args: [1, 2, 3]
  - node: cube
    path: basis.quaternion
    op: set
    value: [0, 0, 0, 1]
`))
	require.NoError(t, err)

	sc := scene.CreateScene(1)
	_, err = Apply(sc, s)
	require.NoError(t, err)

	cube := sc.Find("cube")
	assert.Equal(t, variant.V3(1, 2, 3), cube.GetOrigin())
	assert.True(t, cube.GetBasis().IsEqualApprox(variant.BasisIdentity()), "quaternion set replaces the scaled rotation")
}

func TestCallScaleMethods(t *testing.T) {
	s, err := Parse([]byte(`
nodes:
  - name: cube
steps:
  - node: cube
    path: basis
    op: call
    method: euler_scale
    args: [0, 0.5, 0, 2, 2, 2]
  - node: cube
    path: basis
    op: call
    method: scale_ortho
    args: [1, 1, 1]
`))
	require.NoError(t, err)

	sc := scene.CreateScene(1)
	_, err = Apply(sc, s)
	require.NoError(t, err)

	b := sc.Find("cube").GetBasis()
	assert.InDelta(t, 0.5, float64(b.GetEulerNormalized().Y), 1e-4)
	scale := b.GetScale()
	assert.InDelta(t, 2, float64(scale.X), 1e-4)
	assert.InDelta(t, 2, float64(scale.Z), 1e-4)
}

func TestBindPaths(t *testing.T) {
	sc := scene.CreateScene(1)
	n, _ := sc.AddNode("cube")

	for _, path := range []string{
		"transform", "transform.origin.x", "transform.basis.y.z",
		"origin", "origin.z",
		"basis", "basis.x", "basis.column2.y", "basis.quaternion", "basis.quaternion.w",
		"clip", "clip.normal", "clip.normal.y", "clip.d",
		"layers", "visible", "look_target",
	} {
		tg, err := Bind(n, path)
		require.NoError(t, err, path)
		assert.Equal(t, path, tg.Path())
	}

	for _, path := range []string{"", "origin.w", "basis.x.z.y", "clip.d.x", "layers.x", "scale"} {
		_, err := Bind(n, path)
		assert.ErrorIs(t, err, ErrUnknownPath, path)
	}

	w, err := Bind(n, "basis.quaternion.w")
	require.NoError(t, err)
	assert.Equal(t, variant.Real(1), w.Get())
}

func TestBindCamera(t *testing.T) {
	sc := scene.CreateScene(0)

	tg, err := Resolve(sc, "", "camera.position.z")
	require.NoError(t, err)
	assert.Equal(t, variant.Real(3), tg.Get())

	require.NoError(t, tg.Apply(OpInc, nil))
	assert.Equal(t, variant.Real(4), sc.Camera.GetPosition().Z)

	_, err = Resolve(sc, "", "camera.zoom")
	assert.ErrorIs(t, err, ErrUnknownPath)
}

func TestWriteOnlyTarget(t *testing.T) {
	sc := scene.CreateScene(1)
	n, _ := sc.AddNode("cube")

	tg, err := Bind(n, "look_target")
	require.NoError(t, err)
	assert.Nil(t, tg.Get())

	var v yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("[1, 0, 0]"), &v))
	require.NoError(t, tg.Apply(OpSet, v.Content[0]))
	assert.False(t, n.GetBasis().IsEqualApprox(variant.BasisIdentity()))

	assert.ErrorIs(t, tg.Apply(OpAdd, v.Content[0]), ErrUnsupportedOp)
}

func TestStepErrors(t *testing.T) {
	cases := []struct {
		name string
		step string
		want error
	}{
		{"unknown node", "{node: ghost, path: origin, op: set, value: [1, 2, 3]}", ErrUnknownNode},
		{"unknown path", "{node: cube, path: origin.w, op: set, value: 1}", ErrUnknownPath},
		{"bool add", "{node: cube, path: visible, op: add, value: 1}", ErrUnsupportedOp},
		{"real or", "{node: cube, path: origin.x, op: or, value: 1}", ErrUnsupportedOp},
		{"short vector", "{node: cube, path: origin, op: set, value: [1, 2]}", ErrBadValue},
		{"missing value", "{node: cube, path: origin.x, op: set}", ErrBadValue},
		{"not a number", "{node: cube, path: origin.x, op: set, value: high}", ErrBadValue},
		{"no such method", "{node: cube, path: basis, op: call, method: explode}", ErrUnsupportedOp},
		{"wrong arity", "{node: cube, path: basis, op: call, method: rotate, args: [1]}", ErrBadValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := "nodes: [{name: cube}]\nsteps:\n  - {node: cube, path: layers, op: inc}\n  - " + tc.step + "\n"
			s, err := Parse([]byte(doc))
			require.NoError(t, err)

			sc := scene.CreateScene(1)
			rep, err := Apply(sc, s)
			require.ErrorIs(t, err, tc.want)
			require.NotNil(t, rep)
			assert.Len(t, rep.Steps, 1)
			assert.Equal(t, uint32(2), sc.Find("cube").GetLayers())
		})
	}
}

func TestParseValidation(t *testing.T) {
	var verrs validator.ValidationErrors

	_, err := Parse([]byte("steps: [{node: a, path: origin}]"))
	require.Error(t, err)
	assert.ErrorAs(t, err, &verrs)

	_, err = Parse([]byte("steps: [{node: a, path: origin, op: pow}]"))
	assert.ErrorAs(t, err, &verrs)

	_, err = Parse([]byte("steps: [{node: a, path: basis, op: call}]"))
	assert.ErrorAs(t, err, &verrs)

	_, err = Parse([]byte("nodes: [{name: a, origin: [1]}]\nsteps: [{path: camera.fov, op: inc}]"))
	assert.ErrorAs(t, err, &verrs)

	_, err = Parse([]byte("steps: []"))
	assert.ErrorAs(t, err, &verrs)

	_, err = Parse([]byte("steps: [{path: camera.fov, op: inc, colour: red}]"))
	assert.Error(t, err)

	_, err = Parse(nil)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(editScript), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Nodes, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunnerLogs(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	s, err := Parse([]byte(editScript))
	require.NoError(t, err)
	_, err = r.Apply(scene.CreateScene(2), s)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"message":"applied"`)
	assert.Contains(t, buf.String(), `"path":"basis.x.z"`)
	assert.Contains(t, buf.String(), `"message":"script applied"`)
}
