package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pipegen/pkg/generator"
)

var frameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "List the frameworks with a registered generator",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Supported frameworks (in detection priority order):")
		for _, name := range generator.Registered() {
			fmt.Printf("  • %s\n", name)
		}
	},
}

func init() {
	rootCmd.AddCommand(frameworksCmd)
}
