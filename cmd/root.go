package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	// Register the per-framework generators.
	_ "pipegen/pkg/generator/dotnet"
	_ "pipegen/pkg/generator/gradle"
	_ "pipegen/pkg/generator/maven"
	_ "pipegen/pkg/generator/node"
	_ "pipegen/pkg/generator/python"
)

const Version = "1.0.0"

var (
	logoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	endingMsgStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	errorMsgStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

const Logo = `
██████╗ ██╗██████╗ ███████╗ ██████╗ ███████╗███╗   ██╗
██╔══██╗██║██╔══██╗██╔════╝██╔════╝ ██╔════╝████╗  ██║
██████╔╝██║██████╔╝█████╗  ██║  ███╗█████╗  ██╔██╗ ██║
██╔═══╝ ██║██╔═══╝ ██╔══╝  ██║   ██║██╔══╝  ██║╚██╗██║
██║     ██║██║     ███████╗╚██████╔╝███████╗██║ ╚████║
╚═╝     ╚═╝╚═╝     ╚══════╝ ╚═════╝ ╚══════╝╚═╝  ╚═══╝
`

var rootCmd = &cobra.Command{
	Use:   "pipegen",
	Short: "Generate CI/CD pipelines from your project's framework",
	Long: logoStyle.Render(Logo) + `
Pipegen inspects a project directory, detects its ecosystem (language,
package manager, test framework, web framework) and generates CI/CD pipeline
files for Jenkins, GitLab CI and GitHub Actions, plus a Dockerfile and
deployment docs for your cloud provider of choice.

Supported ecosystems: Python, Node.js, Maven, Gradle and .NET.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMsgStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}
