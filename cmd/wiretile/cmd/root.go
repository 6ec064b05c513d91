package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "wiretile",
	Short: "build wire-cell tilings",
	Long: `This is the command-line application accompanying wiretile:
	- build wire-cell tilings of a detector face from its parameters,
	- save them to files (usable in 'wiretile'),
	- easily tweak detector settings (YAML files),
	- show info about generated tilings, render them to PNG.`,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
