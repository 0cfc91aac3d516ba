package python

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"pipegen/pkg/config"
	"pipegen/pkg/detector"
	"pipegen/pkg/generator"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Generator produces CI/CD artifacts for Python projects
type Generator struct {
	source *generator.TemplateSource
}

func init() {
	generator.Register(detector.Python, func() generator.Generator {
		return New()
	})
}

func New() *Generator {
	return &Generator{source: generator.NewTemplateSource(templates, "templates/*.tmpl")}
}

func (g *Generator) Framework() detector.Framework {
	return detector.Python
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
		version = "3.11"
	}

	appModule := detectAppModule(projectPath)

	return map[string]any{
		"python_version":    version,
		"app_module":        appModule,
		"install_command":   installCommand(det.PackageManager),
		"test_command":      testCommand(det.TestFramework),
		"build_package":     isLibrary(projectPath),
		"wsgi_entrypoint":   wsgiEntrypoint(det.WebFramework, appModule),
		"docker_base_image": fmt.Sprintf("python:%s-slim", version),
		"docker_port":       frameworkPort(det.WebFramework),
	}, nil
}

func installCommand(packageManager string) string {
	switch packageManager {
	case "uv":
		return "uv sync"
	case "pdm":
		return "pdm install --prod"
	case "poetry":
		return "poetry install --no-interaction"
	case "pipenv":
		return "pipenv install --deploy"
	default:
		return "pip install -r requirements.txt"
	}
}

func testCommand(testFramework string) string {
	if testFramework == "unittest" {
		return "python -m unittest discover"
	}
	return "pytest"
}

func frameworkPort(webFramework string) int {
	if webFramework == "flask" {
		return 5000
	}
	return 8000
}

func wsgiEntrypoint(webFramework, appModule string) string {
	switch webFramework {
	case "django":
		return appModule + ".wsgi:application"
	case "fastapi":
		return "main:app"
	case "flask":
		return "app:app"
	default:
		return appModule + ":app"
	}
}

// detectAppModule finds the main application package: a directory carrying
// an __init__.py, preferring the conventional names.
func detectAppModule(projectPath string) string {
	isModule := func(rel string) bool {
		_, err := os.Stat(filepath.Join(projectPath, rel, "__init__.py"))
		return err == nil
	}

	for _, candidate := range []string{"app", "src", "cli", filepath.Base(projectPath)} {
		if isModule(candidate) {
			return candidate
		}
	}

	skip := map[string]bool{"tests": true, "test": true, "docs": true, "scripts": true, "venv": true, ".venv": true, "templates": true, "node_modules": true}
	entries, err := os.ReadDir(projectPath)
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() && !skip[entry.Name()] && isModule(entry.Name()) {
				return entry.Name()
			}
		}
	}

	return "app"
}

// isLibrary reports whether the project builds a distributable package
// rather than a deployable application.
func isLibrary(projectPath string) bool {
	if _, err := os.Stat(filepath.Join(projectPath, "setup.py")); err == nil {
		return true
	}
	content, err := os.ReadFile(filepath.Join(projectPath, "pyproject.toml"))
	return err == nil && strings.Contains(string(content), "[build-system]")
}
