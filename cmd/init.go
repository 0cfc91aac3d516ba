package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pipegen/cmd/flags"
	"pipegen/cmd/ui/detection"
	"pipegen/pkg/config"
	"pipegen/pkg/detector"
	"pipegen/pkg/generator"
	"pipegen/pkg/util"
)

var (
	initFramework string
	initPlatforms string
	initOutput    string
	initForce     bool
	initJSON      bool
	initYes       bool

	cloudProviderFlag  = flags.NewCloudProviderFlag(config.DefaultProvider)
	deploymentTypeFlag = flags.NewDeploymentTypeFlag(config.DefaultDeploymentType)
)

var initCmd = &cobra.Command{
	Use:   "init [PROJECT_PATH]",
	Short: "Detect the project framework and generate CI/CD pipeline files",
	Long: `Detect the project framework and generate CI/CD pipeline files.

The project directory is scanned for ecosystem markers (package.json,
pyproject.toml, pom.xml, ...), the matching generator renders one pipeline
file per requested CI platform plus shared artifacts (Dockerfile,
docker-compose.yml, CICD_README.md), and everything is written under the
project root. Re-running with identical inputs produces identical files.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initFramework, "framework", "", "Force a specific framework instead of detecting")
	initCmd.Flags().StringVar(&initPlatforms, "platforms", strings.Join(config.DefaultPlatforms, ","), "Comma-separated CI platforms: jenkins,gitlab,github")
	initCmd.Flags().VarP(cloudProviderFlag, "cloud-provider", "c", "Cloud provider: local, aws, azure, gcp")
	initCmd.Flags().VarP(deploymentTypeFlag, "deployment-type", "d", "Deployment type: webapp, instance")
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "", "Output directory (defaults to the project path)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing generated files")
	initCmd.Flags().BoolVar(&initJSON, "json", false, "Emit the detection result and file list as JSON")
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Skip the interactive confirmation")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	projectPath := "."
	if len(args) > 0 {
		projectPath = args[0]
	}

	projectPath, err := util.ValidateProjectPath(projectPath)
	if err != nil {
		return err
	}

	fileCfg, err := config.LoadFile(projectPath)
	if err != nil {
		return err
	}

	cfg, err := resolveDeployment(deploymentInputs{
		provider:     cloudProviderFlag.String(),
		deployType:   deploymentTypeFlag.String(),
		platforms:    strings.Split(initPlatforms, ","),
		providerSet:  cmd.Flags().Changed("cloud-provider"),
		typeSet:      cmd.Flags().Changed("deployment-type"),
		platformsSet: cmd.Flags().Changed("platforms"),
	}, fileCfg)
	if err != nil {
		return err
	}

	det, err := detectProject(projectPath, initFramework)
	if err != nil {
		return err
	}

	outputRoot := projectPath
	switch {
	case initOutput != "":
		outputRoot = initOutput
	case fileCfg != nil && fileCfg.Output != "":
		outputRoot = filepath.Join(projectPath, fileCfg.Output)
	}

	interactive := !initYes && !initJSON && term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		confirmed, err := detection.ConfirmGeneration(det)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println(endingMsgStyle.Render("Generation skipped."))
			return nil
		}
	} else if !initJSON {
		fmt.Println(detection.Render(det))
	}

	sets, err := generator.Dispatch(det, cfg, projectPath)
	if err != nil {
		return err
	}

	written, err := generator.WriteArtifacts(outputRoot, sets, initForce)
	if err != nil {
		return err
	}

	if initJSON {
		return json.NewEncoder(os.Stdout).Encode(struct {
			Detection      detector.Detection `json:"detection"`
			GeneratedFiles []string           `json:"generated_files"`
		}{det, written})
	}

	fmt.Println(endingMsgStyle.Render(fmt.Sprintf("Generated %d files:", len(written))))
	for _, path := range written {
		fmt.Printf("  ✓ %s\n", path)
	}
	return nil
}

// deploymentInputs carries the flag values together with whether each flag
// was set explicitly, so config-file values only fill the gaps left by
// unset flags.
type deploymentInputs struct {
	provider     string
	deployType   string
	platforms    []string
	providerSet  bool
	typeSet      bool
	platformsSet bool
}

// resolveDeployment merges flag values with the optional project config
// file. Explicit flags win; file values win over built-in defaults.
func resolveDeployment(in deploymentInputs, fileCfg *config.FileConfig) (config.DeploymentConfig, error) {
	if fileCfg != nil {
		if fileCfg.CloudProvider != "" && !in.providerSet {
			in.provider = fileCfg.CloudProvider
		}
		if fileCfg.DeploymentType != "" && !in.typeSet {
			in.deployType = fileCfg.DeploymentType
		}
		if len(fileCfg.Platforms) > 0 && !in.platformsSet {
			in.platforms = fileCfg.Platforms
		}
	}

	return config.Resolve(in.provider, in.deployType, in.platforms)
}

// detectProject extracts signals and classifies them, honoring an explicit
// framework override.
func detectProject(projectPath, frameworkOverride string) (detector.Detection, error) {
	sig, err := detector.Extract(projectPath)
	if err != nil {
		return detector.Detection{}, err
	}

	var det detector.Detection
	if frameworkOverride != "" {
		det, err = detector.ClassifyAs(frameworkOverride, sig)
	} else {
		det, err = detector.Classify(sig)
	}
	if err != nil {
		var derr *detector.DetectionError
		if errors.As(err, &derr) {
			derr.Root = projectPath
		}
		return detector.Detection{}, err
	}
	return det, nil
}
