package dotnet

import (
	"embed"
	"fmt"
	"text/template"

	"pipegen/pkg/config"
	"pipegen/pkg/detector"
	"pipegen/pkg/generator"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Generator produces CI/CD artifacts for .NET projects
type Generator struct {
	source *generator.TemplateSource
}

func init() {
	generator.Register(detector.DotNet, func() generator.Generator {
		return New()
	})
}

func New() *Generator {
	return &Generator{source: generator.NewTemplateSource(templates, "templates/*.tmpl")}
}

func (g *Generator) Framework() detector.Framework {
	return detector.DotNet
}

func (g *Generator) TemplateSet() (*template.Template, error) {
	return g.source.TemplateSet()
}

func (g *Generator) SharedTemplates() []generator.TemplateRef {
	return generator.SharedTemplateRefs()
}

func (g *Generator) Templates(platform config.Platform) []generator.TemplateRef {
	return generator.PlatformTemplates(platform)
}

func (g *Generator) ExtraContext(det detector.Detection, cfg config.DeploymentConfig, projectPath string) (map[string]any, error) {
	version := det.LanguageVersion
	if version == "" {
		version = "8.0"
	}

	projectType := det.Meta["project_type"]
	if projectType == "" {
		projectType = "console"
	}

	baseImage := fmt.Sprintf("mcr.microsoft.com/dotnet/runtime:%s", version)
	if projectType == "web" || det.WebFramework != "" {
		baseImage = fmt.Sprintf("mcr.microsoft.com/dotnet/aspnet:%s", version)
	}

	return map[string]any{
		"dotnet_version":    version,
		"project_type":      projectType,
		"build_command":     "dotnet build --configuration Release --no-restore",
		"test_command":      "dotnet test --configuration Release --no-build",
		"publish_command":   "dotnet publish --configuration Release --output out",
		"docker_base_image": baseImage,
		"docker_port":       8080,
	}, nil
}
