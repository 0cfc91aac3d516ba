package detector

import (
	"encoding/json"
	"regexp"
	"strings"
)

func nodeRule() Rule {
	return Rule{
		Framework: Node,
		Match: func(sig *RawSignals) bool {
			return sig.Has("package.json")
		},
		Classify: classifyNode,
	}
}

// packageJSON is the subset of package.json detection cares about
type packageJSON struct {
	Scripts      map[string]string `json:"scripts"`
	Dependencies map[string]string `json:"dependencies"`
	DevDeps      map[string]string `json:"devDependencies"`
	PeerDeps     map[string]string `json:"peerDependencies"`
	Engines      map[string]string `json:"engines"`
}

func classifyNode(sig *RawSignals) Detection {
	det := Detection{
		Framework: Node,
		Language:  "node",
		Meta:      map[string]string{},
		Signals:   []string{"package.json"},
	}

	pkg := readPackageJSON(sig)
	deps := nodeDependencies(pkg)

	det.PackageManager = nodePackageManager(sig)
	det.LanguageVersion = nodeVersion(sig, pkg, det.Meta)
	det.TestFramework = nodeTestFramework(deps, det.Meta)
	det.WebFramework = nodeWebFramework(deps)

	for _, lockfile := range []string{"pnpm-lock.yaml", "yarn.lock", "package-lock.json"} {
		if sig.Has(lockfile) {
			det.Signals = append(det.Signals, lockfile)
			break
		}
	}

	return det
}

func readPackageJSON(sig *RawSignals) *packageJSON {
	content := sig.Read("package.json")
	if content == "" {
		return nil
	}
	var pkg packageJSON
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return nil
	}
	return &pkg
}

func nodeDependencies(pkg *packageJSON) map[string]bool {
	deps := map[string]bool{}
	if pkg == nil {
		return deps
	}
	for _, m := range []map[string]string{pkg.Dependencies, pkg.DevDeps, pkg.PeerDeps} {
		for name := range m {
			deps[name] = true
		}
	}
	return deps
}

func nodePackageManager(sig *RawSignals) string {
	switch {
	case sig.Has("pnpm-lock.yaml"):
		return "pnpm"
	case sig.Has("yarn.lock"):
		return "yarn"
	case sig.Has("bun.lockb"):
		return "bun"
	default:
		return "npm"
	}
}

var nodeMajorRe = regexp.MustCompile(`(\d+)`)

func nodeVersion(sig *RawSignals, pkg *packageJSON, meta map[string]string) string {
	if sig.Has(".nvmrc") {
		return strings.TrimPrefix(strings.TrimSpace(sig.Read(".nvmrc")), "v")
	}
	if sig.Has(".node-version") {
		return strings.TrimPrefix(strings.TrimSpace(sig.Read(".node-version")), "v")
	}

	if pkg != nil {
		// engines carries ranges like ">=18.0.0" or "^20"; the major is enough
		if engine, ok := pkg.Engines["node"]; ok {
			if m := nodeMajorRe.FindStringSubmatch(engine); m != nil {
				return m[1]
			}
		}
	}

	meta["defaulted_language_version"] = "true"
	return "20"
}

func nodeTestFramework(deps map[string]bool, meta map[string]string) string {
	switch {
	case deps["jest"]:
		return "jest"
	case deps["vitest"]:
		return "vitest"
	case deps["mocha"]:
		return "mocha"
	}
	meta["defaulted_test_framework"] = "true"
	return "jest"
}

func nodeWebFramework(deps map[string]bool) string {
	switch {
	case deps["next"]:
		return "nextjs"
	case deps["@nestjs/core"]:
		return "nestjs"
	case deps["express"]:
		return "express"
	case deps["fastify"]:
		return "fastify"
	case deps["koa"]:
		return "koa"
	}
	return ""
}
