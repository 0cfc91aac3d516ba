package generator

import (
	"path/filepath"

	"pipegen/pkg/config"
	"pipegen/pkg/detector"
)

// BaseContext builds the template variables shared by every generator:
// detection result fields plus deployment configuration.
func BaseContext(det detector.Detection, cfg config.DeploymentConfig, projectPath string) map[string]any {
	projectName := filepath.Base(projectPath)
	if projectName == "." || projectName == string(filepath.Separator) || projectName == "" {
		projectName = "my-app"
	}

	platforms := make([]string, 0, len(cfg.Platforms))
	for _, p := range cfg.Platforms {
		platforms = append(platforms, string(p))
	}

	return map[string]any{
		"project_name":     projectName,
		"framework":        string(det.Framework),
		"language":         det.Language,
		"language_version": det.LanguageVersion,
		"package_manager":  det.PackageManager,
		"test_framework":   det.TestFramework,
		"web_framework":    det.WebFramework,
		"cloud_provider":   string(cfg.Provider),
		"deployment_type":  string(cfg.Type),
		"platforms":        platforms,
	}
}

// MergeContext merges generator extras into the base context. The merge is
// strictly additive: a key present in both sources fails loudly instead of
// being silently overwritten.
func MergeContext(base, extra map[string]any) (map[string]any, error) {
	merged := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		if _, exists := merged[k]; exists {
			return nil, &ContextCollisionError{Key: k}
		}
		merged[k] = v
	}
	return merged, nil
}
