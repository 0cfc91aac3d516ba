package detector

import (
	"regexp"
	"strings"
)

func dotnetRule() Rule {
	return Rule{
		Framework: DotNet,
		Match: func(sig *RawSignals) bool {
			return sig.HasExt(".csproj") || sig.HasExt(".sln")
		},
		Classify: classifyDotNet,
	}
}

func classifyDotNet(sig *RawSignals) Detection {
	det := Detection{
		Framework: DotNet,
		Language:  "dotnet",
		Meta:      map[string]string{},
	}

	projects := sig.FilesWithExt(".csproj")
	if len(projects) > 0 {
		det.Signals = append(det.Signals, projects[0])
	}
	if solutions := sig.FilesWithExt(".sln"); len(solutions) > 0 {
		det.Signals = append(det.Signals, solutions[0])
		det.Meta["has_solution"] = "true"
	}

	var project string
	if len(projects) > 0 {
		project = sig.Read(projects[0])
	}

	det.PackageManager = "dotnet"
	det.LanguageVersion = dotnetVersion(project, det.Meta)
	det.TestFramework = dotnetTestFramework(sig, projects, det.Meta)
	det.WebFramework = dotnetWebFramework(project)

	if strings.Contains(project, "Microsoft.NET.Sdk.Web") {
		det.Meta["project_type"] = "web"
	} else if strings.Contains(project, "Microsoft.NET.Sdk.Worker") {
		det.Meta["project_type"] = "worker"
	} else if strings.Contains(project, "<OutputType>Library</OutputType>") {
		det.Meta["project_type"] = "library"
	} else {
		det.Meta["project_type"] = "console"
	}

	return det
}

var dotnetTargetRes = []*regexp.Regexp{
	regexp.MustCompile(`<TargetFramework>net(\d+\.\d+)</TargetFramework>`),
	regexp.MustCompile(`<TargetFramework>netcoreapp(\d+\.\d+)</TargetFramework>`),
	regexp.MustCompile(`<TargetFrameworks?>net(\d+\.\d+)`),
}

func dotnetVersion(project string, meta map[string]string) string {
	for _, re := range dotnetTargetRes {
		if m := re.FindStringSubmatch(project); m != nil {
			return m[1]
		}
	}
	meta["defaulted_language_version"] = "true"
	return "8.0"
}

func dotnetTestFramework(sig *RawSignals, projects []string, meta map[string]string) string {
	for _, proj := range projects {
		content := strings.ToLower(sig.Read(proj))
		switch {
		case strings.Contains(content, "xunit"):
			return "xunit"
		case strings.Contains(content, "nunit"):
			return "nunit"
		case strings.Contains(content, "mstest"):
			return "mstest"
		}
	}
	meta["defaulted_test_framework"] = "true"
	return "xunit"
}

func dotnetWebFramework(project string) string {
	lower := strings.ToLower(project)
	switch {
	case strings.Contains(lower, "microsoft.aspnetcore.components") && strings.Contains(lower, "webassembly"):
		return "blazor-wasm"
	case strings.Contains(lower, "microsoft.aspnetcore.components"):
		return "blazor-server"
	case strings.Contains(lower, "microsoft.aspnetcore"), strings.Contains(lower, "microsoft.net.sdk.web"):
		return "aspnetcore"
	}
	return ""
}
