package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/arl/wiretile"
	"github.com/arl/wiretile/draw"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render TILING OUTPNG",
	Short: "render a tiling to a PNG image",
	Long: `Read a tiling from file and rasterize its wires and cells
into a PNG image.`,
	Run: doRender,
}

var widthVal int

func init() {
	RootCmd.AddCommand(renderCmd)

	renderCmd.Flags().IntVar(&widthVal, "width", 1600, "image width in pixels")
}

func doRender(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		fmt.Println("missing TILING and/or OUTPNG")
		cmd.Usage()
		os.Exit(-1)
	}

	f, err := os.Open(args[0])
	check(err)
	defer f.Close()

	t, err := wiretile.Load(f)
	check(err)

	img := draw.Render(t, widthVal)

	out, err := os.Create(args[1])
	check(err)
	defer out.Close()
	check(png.Encode(out, img))
	fmt.Printf("tiling rendered to '%s'\n", args[1])
}
