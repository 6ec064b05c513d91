package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/wiretile"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a detector settings file",
	Long: `Create a detector settings file in YAML format, prefilled with default values.

If FILE is not provided, 'wiretile.yml' is used`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "wiretile.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if ok, err := confirmIfExists(path,
			fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path)); !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}

		s := wiretile.DefaultSettings()
		check(marshalYAMLFile(path, &s))
		fmt.Printf("detector settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
