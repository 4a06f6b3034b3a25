package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"quarkprop/display"
	"quarkprop/property"
	"quarkprop/scene"
	"quarkprop/variant"
)

func newInspectCmd(opts *options) *cobra.Command {
	var (
		out           string
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "inspect <script.yaml>",
		Short: "Apply a script and print or render the resulting readouts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, _, err := runScript(opts, args[0])
			if err != nil {
				return err
			}
			in := sceneInspector(sc)
			for _, line := range in.Lines() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			if out == "" {
				return nil
			}
			fb := display.NewFramebuffer(width, height)
			if err := in.Draw(fb); err != nil {
				return fmt.Errorf("draw: %w", err)
			}
			if err := writePNG(out, fb); err != nil {
				return err
			}
			opts.log.Info().Str("path", out).Int("rows", in.Len()).Msg("frame written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the rendered readouts to this PNG file")
	cmd.Flags().IntVar(&width, "width", 320, "frame width in pixels")
	cmd.Flags().IntVar(&height, "height", 240, "frame height in pixels")
	return cmd
}

// sceneInspector adds readouts for the camera and every live node.
func sceneInspector(sc *scene.Scene) *display.Inspector {
	in := display.NewInspector()
	display.Readout(in, "camera.fov", sc.Camera.FOV(), "%.2f")
	display.Readout(in, "camera.position", sc.Camera.Position(), "")
	sc.Each(func(_ int, n *scene.Node) bool {
		name := n.GetName()
		display.Readout(in, name+".origin", n.Origin(), "")
		display.Readout(in, name+".euler", property.ViewOf(n.Basis(), variant.Basis.GetEuler), "")
		display.Readout(in, name+".layers", n.Layers(), "%08b")
		display.Readout(in, name+".visible", n.Visible(), "%t")
		return true
	})
	return in
}

func writePNG(path string, fb *display.Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, fb.RGBA()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
