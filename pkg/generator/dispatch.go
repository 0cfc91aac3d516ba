package generator

import (
	"text/template"

	"pipegen/pkg/config"
	"pipegen/pkg/detector"
)

// Dispatch looks up the generator for the detected framework, merges the
// template context, and renders one shared artifact set plus one set per
// requested platform, in platform order. Rendering is fully deterministic:
// identical inputs produce byte-identical artifacts.
func Dispatch(det detector.Detection, cfg config.DeploymentConfig, projectPath string) ([]ArtifactSet, error) {
	gen, err := ForFramework(det.Framework)
	if err != nil {
		return nil, err
	}

	extra, err := gen.ExtraContext(det, cfg, projectPath)
	if err != nil {
		return nil, err
	}

	ctx, err := MergeContext(BaseContext(det, cfg, projectPath), extra)
	if err != nil {
		return nil, err
	}

	tmpl, err := gen.TemplateSet()
	if err != nil {
		return nil, err
	}

	shared, err := renderSet(tmpl, gen.SharedTemplates(), ctx, "")
	if err != nil {
		return nil, err
	}

	sets := []ArtifactSet{shared}
	for _, platform := range cfg.Platforms {
		set, err := renderSet(tmpl, gen.Templates(platform), ctx, platform)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func renderSet(tmpl *template.Template, refs []TemplateRef, ctx map[string]any, platform config.Platform) (ArtifactSet, error) {
	set := ArtifactSet{Platform: platform}
	for _, ref := range refs {
		content, err := render(tmpl, ref.Name, ctx)
		if err != nil {
			return ArtifactSet{}, err
		}
		set.Artifacts = append(set.Artifacts, Artifact{Path: ref.OutputPath, Content: content})
	}
	return set, nil
}
