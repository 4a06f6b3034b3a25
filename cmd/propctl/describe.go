package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"quarkprop/property"
	"quarkprop/scene"
	"quarkprop/variant"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "List accessor signatures and handle capabilities of the scene types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return describe(cmd.OutOrStdout())
		},
	}
}

type capability struct {
	name        string
	read, write bool
}

type accessor struct {
	name string
	fn   any
	free bool
}

func (a accessor) signature() property.Signature {
	if a.free {
		return property.DescribeFunc(a.fn)
	}
	return property.DescribeMethod(a.fn)
}

func accessors() []accessor {
	return []accessor{
		{name: "Node.GetOrigin", fn: (*scene.Node).GetOrigin},
		{name: "Node.SetOrigin", fn: (*scene.Node).SetOrigin},
		{name: "Node.LookAt", fn: (*scene.Node).LookAt},
		{name: "Camera.SetFOV", fn: (*scene.Camera).SetFOV},
		{name: "Vector3.Length", fn: variant.Vector3.Length},
		{name: "Basis.GetEuler", fn: variant.Basis.GetEuler},
		{name: "Lerp", fn: variant.Lerp, free: true},
		{name: "BasisFromQuaternion", fn: variant.BasisFromQuaternion, free: true},
		{name: "(none)", fn: nil, free: true},
	}
}

func capabilities() []capability {
	sc := scene.CreateScene(1)
	n, _ := sc.AddNode("node")
	cam := &sc.Camera
	return []capability{
		{"Node.Name", property.CanRead[string](n.Name()), property.CanWrite[string](n.Name())},
		{"Node.Origin", property.CanRead[variant.Vector3](n.Origin()), property.CanWrite[variant.Vector3](n.Origin())},
		{"Node.Origin.ReadOnly", property.CanRead[variant.Vector3](n.Origin().ReadOnly()), property.CanWrite[variant.Vector3](n.Origin().ReadOnly())},
		{"Node.Basis.X", property.CanRead[variant.Vector3](n.Basis().X()), property.CanWrite[variant.Vector3](n.Basis().X())},
		{"Node.LookTarget", property.CanRead[variant.Vector3](n.LookTarget()), property.CanWrite[variant.Vector3](n.LookTarget())},
		{"Camera.FOV", property.CanRead[variant.Real](cam.FOV()), property.CanWrite[variant.Real](cam.FOV())},
		{"Camera.ViewBasis", property.CanRead[variant.Basis](cam.ViewBasis()), property.CanWrite[variant.Basis](cam.ViewBasis())},
	}
}

func describe(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACCESSOR\tSIGNATURE")
	fmt.Fprintln(w, "--------\t---------")
	for _, a := range accessors() {
		fmt.Fprintf(w, "%s\t%s\n", a.name, a.signature())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "HANDLE\tREAD\tWRITE")
	fmt.Fprintln(w, "------\t----\t-----")
	for _, c := range capabilities() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.name, yesNo(c.read), yesNo(c.write))
	}
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
