package detector

import (
	"regexp"
	"strings"

	"gopkg.in/ini.v1"
)

func pythonRule() Rule {
	return Rule{
		Framework: Python,
		Match: func(sig *RawSignals) bool {
			return sig.HasAny("requirements.txt", "pyproject.toml", "setup.py", "Pipfile") || sig.HasExt(".py")
		},
		Classify: classifyPython,
	}
}

func classifyPython(sig *RawSignals) Detection {
	det := Detection{
		Framework: Python,
		Language:  "python",
		Meta:      map[string]string{},
	}

	for _, marker := range []string{"requirements.txt", "pyproject.toml", "setup.py", "Pipfile", "manage.py"} {
		if sig.Has(marker) {
			det.Signals = append(det.Signals, marker)
		}
	}
	if len(det.Signals) == 0 && sig.HasExt(".py") {
		det.Signals = append(det.Signals, ".py sources")
	}

	det.PackageManager = pythonPackageManager(sig)
	det.LanguageVersion = pythonVersion(sig, det.Meta)
	det.TestFramework = pythonTestFramework(sig, det.Meta)
	det.WebFramework = pythonWebFramework(sig)

	return det
}

func pythonPackageManager(sig *RawSignals) string {
	switch {
	case sig.Has("uv.lock"):
		return "uv"
	case sig.Has("pdm.lock"):
		return "pdm"
	case sig.Has("poetry.lock"):
		return "poetry"
	case sig.Has("Pipfile"):
		return "pipenv"
	case sig.Has("requirements.txt"):
		return "pip"
	case strings.Contains(sig.Read("pyproject.toml"), "[tool.poetry]"):
		return "poetry"
	default:
		return "pip"
	}
}

func pythonVersion(sig *RawSignals, meta map[string]string) string {
	if sig.Has(".python-version") {
		if v := normalizeVersion(strings.TrimSpace(sig.Read(".python-version"))); v != "" {
			return v
		}
	}

	if content := sig.Read("runtime.txt"); content != "" {
		if v := extractVersion(content, `python-(\d+\.\d+(?:\.\d+)?)`); v != "" {
			return v
		}
	}

	if content := sig.Read("pyproject.toml"); content != "" {
		if v := extractVersion(content, `python\s*=\s*["'][\^~>=]*(\d+\.\d+)`); v != "" {
			return v
		}
	}

	if content := sig.Read("setup.py"); content != "" {
		if v := extractVersion(content, `python_requires\s*=\s*["'][>=~]*(\d+\.\d+)`); v != "" {
			return v
		}
	}

	meta["defaulted_language_version"] = "true"
	return "3.11"
}

func pythonTestFramework(sig *RawSignals, meta map[string]string) string {
	if sig.Has("pytest.ini") {
		return "pytest"
	}

	if strings.Contains(sig.Read("pyproject.toml"), "[tool.pytest") {
		return "pytest"
	}

	// setup.cfg carries pytest config in a [tool:pytest] (or legacy [pytest]) section
	if content := sig.Read("setup.cfg"); content != "" {
		if f, err := ini.Load([]byte(content)); err == nil {
			for _, section := range f.SectionStrings() {
				if section == "tool:pytest" || section == "pytest" {
					return "pytest"
				}
			}
		}
	}

	if pythonDependencies(sig)["pytest"] {
		return "pytest"
	}

	meta["defaulted_test_framework"] = "true"
	return "pytest"
}

func pythonWebFramework(sig *RawSignals) string {
	deps := pythonDependencies(sig)

	// Priority order mirrors how specific these frameworks are as dependencies.
	switch {
	case deps["fastapi"]:
		return "fastapi"
	case deps["flask"]:
		return "flask"
	case deps["django"]:
		return "django"
	}

	if sig.Has("manage.py") {
		return "django"
	}
	return ""
}

var (
	pyprojectNameRe = regexp.MustCompile(`["']([a-z0-9\-_]+)["']`)
	pipfileNameRe   = regexp.MustCompile(`(?m)^([a-z0-9\-_]+)\s*=`)
	reqSpecRe       = regexp.MustCompile(`[=<>~!\[;]`)
)

// pythonDependencies collects lowercase package names from the common Python
// dependency files.
func pythonDependencies(sig *RawSignals) map[string]bool {
	deps := map[string]bool{}

	for _, file := range []string{"requirements.txt", "requirements-dev.txt"} {
		for _, line := range strings.Split(sig.Read(file), "\n") {
			line = strings.ToLower(strings.TrimSpace(line))
			if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-r") {
				continue
			}
			pkg := strings.TrimSpace(reqSpecRe.Split(line, 2)[0])
			if pkg != "" {
				deps[pkg] = true
			}
		}
	}

	if content := sig.Read("Pipfile"); content != "" {
		for _, m := range pipfileNameRe.FindAllStringSubmatch(strings.ToLower(content), -1) {
			deps[m[1]] = true
		}
	}

	if content := sig.Read("pyproject.toml"); content != "" {
		for _, m := range pyprojectNameRe.FindAllStringSubmatch(strings.ToLower(content), -1) {
			deps[m[1]] = true
		}
	}

	return deps
}
