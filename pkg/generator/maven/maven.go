package maven

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

// Generator produces CI/CD artifacts for Maven projects
type Generator struct {
	source *generator.TemplateSource
}

func init() {
	generator.Register(detector.Maven, func() generator.Generator {
		return New()
	})
}

func New() *Generator {
	return &Generator{source: generator.NewTemplateSource(templates, "templates/*.tmpl")}
}

func (g *Generator) Framework() detector.Framework {
	return detector.Maven
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

	mvn := "mvn"
	usesWrapper := det.Meta["uses_wrapper"] == "true"
	if usesWrapper {
		mvn = "./mvnw"
	}

	packaging := det.Meta["packaging"]
	if packaging == "" {
		packaging = "jar"
	}

	return map[string]any{
		"java_version":      version,
		"build_command":     mvn + " -B package -DskipTests",
		"test_command":      mvn + " -B test",
		"uses_wrapper":      usesWrapper,
		"packaging":         packaging,
		"docker_base_image": fmt.Sprintf("eclipse-temurin:%s-jre", version),
		"docker_port":       8080,
	}, nil
}
