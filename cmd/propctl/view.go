//go:build !tinygo

package main

import (
	"github.com/spf13/cobra"

	"quarkprop/display"
	"quarkprop/gfx"
	"quarkprop/internal/buildinfo"
	"quarkprop/scene"
	"quarkprop/variant"
)

func init() {
	platformCommands = append(platformCommands, newViewCmd)
}

func newViewCmd(opts *options) *cobra.Command {
	var (
		width, height int
		scale         float64
		spin          float64
		ticks         uint64
	)
	cmd := &cobra.Command{
		Use:   "view <script.yaml>",
		Short: "Apply a script and show the live readouts in a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, _, err := runScript(opts, args[0])
			if err != nil {
				return err
			}
			fb := display.NewFramebuffer(width, height)
			in := sceneInspector(sc)
			orbit := scene.OrbitController{
				Target: sc.Camera.GetTarget(),
				Radius: sc.Camera.GetPosition().DistanceTo(sc.Camera.GetTarget()),
			}
			v := gfx.NewViewer(fb, scale, func() error {
				if spin != 0 {
					orbit.Rotate(variant.Real(spin), 0)
					orbit.Apply(&sc.Camera)
				}
				return in.Draw(fb)
			})
			v.SetTickLimit(ticks)
			opts.log.Info().Int("rows", in.Len()).Float64("scale", scale).Msg("opening viewer")
			return v.Run("propctl (" + buildinfo.Short() + ")")
		},
	}
	cmd.Flags().IntVar(&width, "width", 160, "framebuffer width in pixels")
	cmd.Flags().IntVar(&height, "height", 120, "framebuffer height in pixels")
	cmd.Flags().Float64Var(&scale, "scale", 3, "window scale factor")
	cmd.Flags().Float64Var(&spin, "spin", 0, "camera orbit speed in radians per tick")
	cmd.Flags().Uint64Var(&ticks, "ticks", 0, "close after N ticks (0 = run until closed)")
	return cmd
}
