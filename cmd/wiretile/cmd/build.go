package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arl/wiretile"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build OUTFILE",
	Short: "build the wire-cell tiling of a detector face",
	Long: `Build the cell tiling of a detector face from its settings.
The tiling (wire planes and cell polygons) is saved to OUTFILE in YAML
format, readable with 'wiretile infos' and 'wiretile render'.`,
	Run: doBuild,
}

var (
	cfgVal     string
	verboseVal bool
)

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&cfgVal, "config", "wiretile.yml", "detector settings")
	buildCmd.Flags().BoolVar(&verboseVal, "verbose", false, "dump the build log")
}

func doBuild(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("missing OUTFILE")
		cmd.Usage()
		os.Exit(-1)
	}
	out := args[0]

	s := wiretile.DefaultSettings()
	if err := fileExists(cfgVal); err == nil {
		check(unmarshalYAMLFile(cfgVal, &s))
	}

	ctx := wiretile.NewBuildContext(true)
	t, err := wiretile.New(s, ctx)
	check(err)

	f, err := os.Create(out)
	check(err)
	defer f.Close()
	check(t.Save(f))

	if verboseVal {
		ctx.DumpLog("build log:")
	}
	fmt.Printf("tiling saved to '%s' (%d U, %d V, %d Y wires, %d cells) in %v\n",
		out,
		len(t.Wires(wiretile.PlaneU)),
		len(t.Wires(wiretile.PlaneV)),
		len(t.Wires(wiretile.PlaneY)),
		len(t.Cells()),
		ctx.AccumulatedTime(wiretile.TimerBuildTotal))
}
