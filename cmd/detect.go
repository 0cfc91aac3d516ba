package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pipegen/cmd/ui/detection"
	"pipegen/pkg/util"
)

var (
	detectFramework string
	detectJSON      bool
)

var detectCmd = &cobra.Command{
	Use:   "detect [PROJECT_PATH]",
	Short: "Detect the project framework without generating files",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDetect,
}

func init() {
	detectCmd.Flags().StringVar(&detectFramework, "framework", "", "Force a specific framework instead of detecting")
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "Emit the detection result as JSON")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	projectPath := "."
	if len(args) > 0 {
		projectPath = args[0]
	}

	projectPath, err := util.ValidateProjectPath(projectPath)
	if err != nil {
		return err
	}

	det, err := detectProject(projectPath, detectFramework)
	if err != nil {
		return err
	}

	if detectJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(det)
	}

	fmt.Println(detection.Render(det))
	return nil
}
