package main

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quarkprop/internal/script"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeScript(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "edit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func setX(v int) string {
	return fmt.Sprintf(`
nodes:
  - name: cube
    layers: 5
steps:
  - node: cube
    path: origin.x
    op: set
    value: %d
`, v)
}

func TestRunCommand(t *testing.T) {
	path := writeScript(t, t.TempDir(), setX(2)+`
  - path: camera.near
    op: mul
    value: 2
`)
	out, err := execute(t, "run", path, "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "created cube")
	assert.Contains(t, out, "#0 set cube.origin.x: 0 -> 2")
	assert.Contains(t, out, "#1 mul camera.near: 0.05 -> 0.1")
	assert.Contains(t, out, "applied 2 steps")
}

func TestRunCommandStepError(t *testing.T) {
	path := writeScript(t, t.TempDir(), setX(1)+`
  - node: cube
    path: origin.w
    op: set
    value: 1
`)
	out, err := execute(t, "run", path)
	require.ErrorIs(t, err, script.ErrUnknownPath)
	assert.Contains(t, out, "applied 1 steps")
}

func TestRootFlags(t *testing.T) {
	path := writeScript(t, t.TempDir(), setX(1))

	_, err := execute(t, "run", path, "--log-format", "xml")
	assert.Error(t, err)

	_, err = execute(t, "run", path, "--log-level", "loud")
	assert.Error(t, err)

	_, err = execute(t, "run", path, "--nodes", "0")
	assert.ErrorIs(t, err, script.ErrSceneFull)

	_, err = execute(t, "run")
	assert.Error(t, err)
}

func TestInspectCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, setX(3))
	frame := filepath.Join(dir, "frame.png")

	out, err := execute(t, "inspect", path, "--out", frame, "--width", "64", "--height", "32")
	require.NoError(t, err)
	assert.Contains(t, out, "cube.layers: 00000101")
	assert.Contains(t, out, "cube.visible: true")
	assert.Contains(t, out, "camera.fov: 1.00")

	assertPNG(t, frame, 64, 32)
}

func assertPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, w, img.Bounds().Dx())
	assert.Equal(t, h, img.Bounds().Dy())
}

func TestDescribeCommand(t *testing.T) {
	out, err := execute(t, "describe")
	require.NoError(t, err)

	assert.Regexp(t, `Node\.GetOrigin\s+method owner=scene\.Node`, out)
	assert.Regexp(t, `Vector3\.Length\s+const method owner=variant\.Vector3`, out)
	assert.Regexp(t, `Lerp\s+func owner=-`, out)
	assert.Regexp(t, `BasisFromQuaternion\s+func owner=- arg=variant\.Quaternion ret=variant\.Basis`, out)
	assert.Regexp(t, `\(none\)\s+<none>`, out)
	assert.Regexp(t, `Node\.Name\s+yes\s+no`, out)
	assert.Regexp(t, `Node\.Origin\s+yes\s+yes`, out)
	assert.Regexp(t, `Node\.LookTarget\s+no\s+yes`, out)
	assert.Regexp(t, `Camera\.ViewBasis\s+yes\s+no`, out)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "propctl dev"), out)
	assert.Contains(t, out, "commit: unknown")
}

type chanWriter chan string

func (c chanWriter) Write(p []byte) (int, error) {
	c <- string(p)
	return len(p), nil
}

func waitFor(t *testing.T, out chanWriter, want string) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case s := <-out:
			if strings.Contains(s, want) {
				return
			}
		case <-timeout:
			t.Fatalf("no output containing %q", want)
		}
	}
}

func TestWatchReapplies(t *testing.T) {
	path := writeScript(t, t.TempDir(), setX(2))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := make(chanWriter, 64)
	done := make(chan error, 1)
	opts := &options{capacity: 4, log: zerolog.Nop()}
	go func() { done <- watchScript(ctx, opts, path, out) }()

	waitFor(t, out, "-> 2")
	require.NoError(t, os.WriteFile(path, []byte(setX(7)), 0o644))
	waitFor(t, out, "-> 7")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
