package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arl/wiretile"
)

// infosCmd represents the infos command
var infosCmd = &cobra.Command{
	Use:   "infos TILING",
	Short: "show infos about a tiling",
	Long: `Read a tiling from file, validate its settings then print
informations on standard output.`,
	Run: doInfos,
}

func init() {
	RootCmd.AddCommand(infosCmd)
}

func doInfos(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("missing TILING file")
		cmd.Usage()
		os.Exit(-1)
	}

	f, err := os.Open(args[0])
	check(err)
	defer f.Close()

	t, err := wiretile.Load(f)
	check(err)

	s := t.Settings()
	fmt.Printf("settings: angles %g/%g deg, %d Y wires, pitches %g/%g/%g cm\n",
		s.AngleU, s.AngleV, s.NumYWires, s.WirePitchU, s.WirePitchV, s.WirePitchY)
	fmt.Printf("face: z [%g, %g] cm, height %g cm\n",
		t.FaceZMin(), t.FaceZMax(), t.MaxHeight())
	fmt.Printf("wires: %d U, %d V, %d Y\n",
		len(t.Wires(wiretile.PlaneU)),
		len(t.Wires(wiretile.PlaneV)),
		len(t.Wires(wiretile.PlaneY)))

	var total float64
	nvmin, nvmax := -1, -1
	for _, c := range t.Cells() {
		total += c.Area
		if nvmin == -1 || len(c.Vertices) < nvmin {
			nvmin = len(c.Vertices)
		}
		if len(c.Vertices) > nvmax {
			nvmax = len(c.Vertices)
		}
	}
	fmt.Printf("cells: %d, total area %g cm2, %d to %d vertices\n",
		len(t.Cells()), total, nvmin, nvmax)
}
