package generator

import (
	"text/template"

	"pipegen/pkg/config"
	"pipegen/pkg/detector"
)

// TemplateRef names a template in a generator's template set together with
// the relative path its rendered output is written to. Output paths are
// stable across reruns so generation stays idempotent.
type TemplateRef struct {
	Name       string // template name inside the generator's template set
	OutputPath string // output path relative to the output root
}

// Artifact is one rendered output file.
type Artifact struct {
	Path    string // relative output path
	Content []byte
}

// ArtifactSet is the ordered artifact list produced for one platform.
// Platform is empty for the shared, platform-independent set.
type ArtifactSet struct {
	Platform  config.Platform
	Artifacts []Artifact
}

// Generator is the per-framework contract: which templates apply to an
// ecosystem and which extra variables it contributes. Extras are additive
// only; redefining a base context key is a dispatch-time error.
type Generator interface {
	// Framework returns the framework this generator serves
	Framework() detector.Framework

	// SharedTemplates returns the platform-independent templates
	// (container build file, compose file, deployment README)
	SharedTemplates() []TemplateRef

	// Templates returns the pipeline templates for one CI platform
	Templates(platform config.Platform) []TemplateRef

	// ExtraContext returns framework-specific template variables
	ExtraContext(det detector.Detection, cfg config.DeploymentConfig, projectPath string) (map[string]any, error)

	// TemplateSet returns the generator's parsed template set
	TemplateSet() (*template.Template, error)
}

// PlatformTemplates maps a CI platform to its conventional pipeline file.
// Every framework emits the same pipeline filenames; the content differs.
func PlatformTemplates(platform config.Platform) []TemplateRef {
	switch platform {
	case config.PlatformJenkins:
		return []TemplateRef{{Name: "Jenkinsfile.tmpl", OutputPath: "Jenkinsfile"}}
	case config.PlatformGitLab:
		return []TemplateRef{{Name: "gitlab-ci.yml.tmpl", OutputPath: ".gitlab-ci.yml"}}
	case config.PlatformGitHub:
		return []TemplateRef{{Name: "github-ci.yml.tmpl", OutputPath: ".github/workflows/ci.yml"}}
	}
	return nil
}

// SharedTemplateRefs is the shared artifact set every framework produces.
func SharedTemplateRefs() []TemplateRef {
	return []TemplateRef{
		{Name: "Dockerfile.tmpl", OutputPath: "Dockerfile"},
		{Name: "docker-compose.yml.tmpl", OutputPath: "docker-compose.yml"},
		{Name: "README.md.tmpl", OutputPath: "CICD_README.md"},
	}
}
