package gradle

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

// Generator produces CI/CD artifacts for Gradle projects
type Generator struct {
	source *generator.TemplateSource
}

func init() {
	generator.Register(detector.Gradle, func() generator.Generator {
		return New()
	})
}

func New() *Generator {
	return &Generator{source: generator.NewTemplateSource(templates, "templates/*.tmpl")}
}

func (g *Generator) Framework() detector.Framework {
	return detector.Gradle
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
		version = "17"
	}

	gradleCmd := "gradle"
	usesWrapper := det.Meta["uses_wrapper"] == "true"
	if usesWrapper {
		gradleCmd = "./gradlew"
	}

	return map[string]any{
		"java_version":      version,
		"build_command":     gradleCmd + " build -x test",
		"test_command":      gradleCmd + " test",
		"uses_wrapper":      usesWrapper,
		"uses_kotlin_dsl":   det.Meta["kotlin_dsl"] == "true",
		"docker_base_image": fmt.Sprintf("eclipse-temurin:%s-jre", version),
		"docker_port":       8080,
	}, nil
}
