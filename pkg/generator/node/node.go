package node

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"pipegen/pkg/config"
	"pipegen/pkg/detector"
	"pipegen/pkg/generator"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Generator produces CI/CD artifacts for Node.js projects
type Generator struct {
	source *generator.TemplateSource
}

func init() {
	generator.Register(detector.Node, func() generator.Generator {
		return New()
	})
}

func New() *Generator {
	return &Generator{source: generator.NewTemplateSource(templates, "templates/*.tmpl")}
}

func (g *Generator) Framework() detector.Framework {
	return detector.Node
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
		version = "20"
	}

	return map[string]any{
		"node_version":      version,
		"install_command":   installCommand(det.PackageManager),
		"build_command":     buildCommand(det.PackageManager, projectPath),
		"test_command":      testCommand(det.PackageManager),
		"docker_base_image": fmt.Sprintf("node:%s-alpine", version),
		"docker_port":       frameworkPort(det.WebFramework),
	}, nil
}

func installCommand(packageManager string) string {
	switch packageManager {
	case "pnpm":
		return "pnpm install --frozen-lockfile"
	case "yarn":
		return "yarn install --frozen-lockfile"
	case "bun":
		return "bun install"
	default:
		return "npm ci"
	}
}

// buildCommand returns the build invocation, or "" when package.json has no
// build script.
func buildCommand(packageManager, projectPath string) string {
	if !hasScript(projectPath, "build") {
		return ""
	}
	switch packageManager {
	case "pnpm":
		return "pnpm run build"
	case "yarn":
		return "yarn build"
	case "bun":
		return "bun run build"
	default:
		return "npm run build"
	}
}

func testCommand(packageManager string) string {
	switch packageManager {
	case "pnpm":
		return "pnpm test"
	case "yarn":
		return "yarn test"
	case "bun":
		return "bun test"
	default:
		return "npm test"
	}
}

func frameworkPort(webFramework string) int {
	if webFramework == "fastify" {
		return 8080
	}
	return 3000
}

func hasScript(projectPath, name string) bool {
	data, err := os.ReadFile(filepath.Join(projectPath, "package.json"))
	if err != nil {
		return false
	}
	var pkg struct {
		Scripts map[string]string `json:"scripts"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return false
	}
	_, ok := pkg.Scripts[name]
	return ok
}
