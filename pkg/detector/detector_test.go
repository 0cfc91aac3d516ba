package detector_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pipegen/pkg/detector"
)

// Test helper to create temporary test project directories
func createTestProject(t *testing.T, files map[string]string) string {
	t.Helper()
	tmpDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tmpDir, path)
		dir := filepath.Dir(fullPath)

		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}

		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write file %s: %v", fullPath, err)
		}
	}

	return tmpDir
}

func detect(t *testing.T, files map[string]string) detector.Detection {
	t.Helper()
	projectPath := createTestProject(t, files)
	det, err := detector.Detect(projectPath)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	return det
}

func TestPythonDetection(t *testing.T) {
	tests := []struct {
		name            string
		files           map[string]string
		expectedPM      string
		expectedVersion string
		expectedTest    string
		expectedWeb     string
	}{
		{
			name: "pip with fastapi",
			files: map[string]string{
				"requirements.txt": "fastapi==0.110.0\nuvicorn[standard]>=0.29\npytest==8.1.1\n",
				"main.py":          "app = None",
			},
			expectedPM:      "pip",
			expectedVersion: "3.11",
			expectedTest:    "pytest",
			expectedWeb:     "fastapi",
		},
		{
			name: "poetry with version constraint",
			files: map[string]string{
				"pyproject.toml": "[project]\nname = \"svc\"\nrequires-python = \">=3.12\"\ndependencies = [\"flask\"]\n",
				"poetry.lock":    "",
			},
			expectedPM:      "poetry",
			expectedVersion: "3.12",
			expectedTest:    "pytest",
			expectedWeb:     "flask",
		},
		{
			name: "pipenv django",
			files: map[string]string{
				"Pipfile":   "[packages]\ndjango = \"*\"\n",
				"manage.py": "#!/usr/bin/env python",
			},
			expectedPM:      "pipenv",
			expectedVersion: "3.11",
			expectedTest:    "pytest",
			expectedWeb:     "django",
		},
		{
			name: "uv lockfile wins over requirements",
			files: map[string]string{
				"uv.lock":          "",
				"requirements.txt": "fastapi\n",
				".python-version":  "3.13.1\n",
			},
			expectedPM:      "uv",
			expectedVersion: "3.13",
			expectedTest:    "pytest",
			expectedWeb:     "fastapi",
		},
		{
			name: "pytest config in setup.cfg",
			files: map[string]string{
				"setup.py":  "from setuptools import setup\nsetup(python_requires='>=3.10')",
				"setup.cfg": "[metadata]\nname = pkg\n\n[tool:pytest]\ntestpaths = tests\n",
			},
			expectedPM:      "pip",
			expectedVersion: "3.10",
			expectedTest:    "pytest",
			expectedWeb:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det := detect(t, tt.files)

			if det.Framework != detector.Python {
				t.Fatalf("Expected framework %s, got %s", detector.Python, det.Framework)
			}
			if det.Language != "python" {
				t.Errorf("Expected language python, got %s", det.Language)
			}
			if det.PackageManager != tt.expectedPM {
				t.Errorf("Expected package manager %s, got %s", tt.expectedPM, det.PackageManager)
			}
			if det.LanguageVersion != tt.expectedVersion {
				t.Errorf("Expected version %s, got %s", tt.expectedVersion, det.LanguageVersion)
			}
			if det.TestFramework != tt.expectedTest {
				t.Errorf("Expected test framework %s, got %s", tt.expectedTest, det.TestFramework)
			}
			if det.WebFramework != tt.expectedWeb {
				t.Errorf("Expected web framework %q, got %q", tt.expectedWeb, det.WebFramework)
			}
		})
	}
}

func TestPythonDefaultedVersionMarked(t *testing.T) {
	det := detect(t, map[string]string{"requirements.txt": "flask\n"})

	if det.LanguageVersion != "3.11" {
		t.Errorf("Expected fallback version 3.11, got %s", det.LanguageVersion)
	}
	if det.Meta["defaulted_language_version"] != "true" {
		t.Errorf("Expected defaulted_language_version meta to be set, got %v", det.Meta)
	}
}

func TestNodeDetection(t *testing.T) {
	tests := []struct {
		name            string
		files           map[string]string
		expectedPM      string
		expectedVersion string
		expectedTest    string
		expectedWeb     string
	}{
		{
			name: "npm express with jest",
			files: map[string]string{
				"package.json": `{"dependencies": {"express": "^4.19.0"}, "devDependencies": {"jest": "^29.0.0"}}`,
			},
			expectedPM:      "npm",
			expectedVersion: "20",
			expectedTest:    "jest",
			expectedWeb:     "express",
		},
		{
			name: "pnpm nextjs with vitest",
			files: map[string]string{
				"package.json":   `{"dependencies": {"next": "^14.0.0"}, "devDependencies": {"vitest": "^1.4.0"}}`,
				"pnpm-lock.yaml": "lockfileVersion: '9.0'",
			},
			expectedPM:      "pnpm",
			expectedVersion: "20",
			expectedTest:    "vitest",
			expectedWeb:     "nextjs",
		},
		{
			name: "yarn with nvmrc version",
			files: map[string]string{
				"package.json": `{"dependencies": {"fastify": "^4.26.0"}}`,
				"yarn.lock":    "",
				".nvmrc":       "v22\n",
			},
			expectedPM:      "yarn",
			expectedVersion: "22",
			expectedTest:    "jest",
			expectedWeb:     "fastify",
		},
		{
			name: "engines node range",
			files: map[string]string{
				"package.json": `{"engines": {"node": ">=18.0.0"}, "dependencies": {"koa": "^2.15.0"}}`,
			},
			expectedPM:      "npm",
			expectedVersion: "18",
			expectedTest:    "jest",
			expectedWeb:     "koa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det := detect(t, tt.files)

			if det.Framework != detector.Node {
				t.Fatalf("Expected framework %s, got %s", detector.Node, det.Framework)
			}
			if det.PackageManager != tt.expectedPM {
				t.Errorf("Expected package manager %s, got %s", tt.expectedPM, det.PackageManager)
			}
			if det.LanguageVersion != tt.expectedVersion {
				t.Errorf("Expected version %s, got %s", tt.expectedVersion, det.LanguageVersion)
			}
			if det.TestFramework != tt.expectedTest {
				t.Errorf("Expected test framework %s, got %s", tt.expectedTest, det.TestFramework)
			}
			if det.WebFramework != tt.expectedWeb {
				t.Errorf("Expected web framework %q, got %q", tt.expectedWeb, det.WebFramework)
			}
		})
	}
}

func TestMavenDetection(t *testing.T) {
	pom := `<project>
  <properties>
    <java.version>21</java.version>
  </properties>
  <dependencies>
    <dependency>
      <groupId>org.springframework.boot</groupId>
      <artifactId>spring-boot-starter-web</artifactId>
    </dependency>
    <dependency>
      <groupId>org.junit.jupiter</groupId>
      <artifactId>junit-jupiter</artifactId>
    </dependency>
  </dependencies>
</project>`

	det := detect(t, map[string]string{
		"pom.xml": pom,
		"mvnw":    "#!/bin/sh",
	})

	if det.Framework != detector.Maven {
		t.Fatalf("Expected framework %s, got %s", detector.Maven, det.Framework)
	}
	if det.PackageManager != "maven" {
		t.Errorf("Expected package manager maven, got %s", det.PackageManager)
	}
	if det.LanguageVersion != "21" {
		t.Errorf("Expected version 21, got %s", det.LanguageVersion)
	}
	if det.TestFramework != "junit5" {
		t.Errorf("Expected test framework junit5, got %s", det.TestFramework)
	}
	if det.WebFramework != "spring-boot" {
		t.Errorf("Expected web framework spring-boot, got %s", det.WebFramework)
	}
	if det.Meta["uses_wrapper"] != "true" {
		t.Errorf("Expected uses_wrapper meta for mvnw, got %v", det.Meta)
	}
}

func TestMavenPackaging(t *testing.T) {
	tests := []struct {
		name     string
		pom      string
		expected string
	}{
		{
			name:     "war packaging",
			pom:      "<project>\n  <packaging>war</packaging>\n</project>",
			expected: "war",
		},
		{
			name:     "no packaging element",
			pom:      "<project></project>",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det := detect(t, map[string]string{"pom.xml": tt.pom})
			if det.Meta["packaging"] != tt.expected {
				t.Errorf("Expected packaging meta %q, got %q", tt.expected, det.Meta["packaging"])
			}
		})
	}
}

func TestGradleDetection(t *testing.T) {
	tests := []struct {
		name            string
		files           map[string]string
		expectedVersion string
		expectedTest    string
		kotlinDSL       bool
	}{
		{
			name: "groovy dsl with sourceCompatibility",
			files: map[string]string{
				"build.gradle": "sourceCompatibility = '11'\ndependencies { testImplementation 'junit:junit:4.13' }",
				"gradlew":      "#!/bin/sh",
			},
			expectedVersion: "11",
			expectedTest:    "junit4",
		},
		{
			name: "kotlin dsl with toolchain",
			files: map[string]string{
				"build.gradle.kts": "java { toolchain { languageVersion.set(JavaLanguageVersion.of(21)) } }\ndependencies { testImplementation(\"org.junit.jupiter:junit-jupiter\") }",
			},
			expectedVersion: "21",
			expectedTest:    "junit5",
			kotlinDSL:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det := detect(t, tt.files)

			if det.Framework != detector.Gradle {
				t.Fatalf("Expected framework %s, got %s", detector.Gradle, det.Framework)
			}
			if det.LanguageVersion != tt.expectedVersion {
				t.Errorf("Expected version %s, got %s", tt.expectedVersion, det.LanguageVersion)
			}
			if det.TestFramework != tt.expectedTest {
				t.Errorf("Expected test framework %s, got %s", tt.expectedTest, det.TestFramework)
			}
			if got := det.Meta["kotlin_dsl"] == "true"; got != tt.kotlinDSL {
				t.Errorf("Expected kotlin_dsl=%v, got %v", tt.kotlinDSL, got)
			}
		})
	}
}

func TestDotNetDetection(t *testing.T) {
	csproj := `<Project Sdk="Microsoft.NET.Sdk.Web">
  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
  </PropertyGroup>
  <ItemGroup>
    <PackageReference Include="xunit" Version="2.7.0" />
  </ItemGroup>
</Project>`

	det := detect(t, map[string]string{"Api.csproj": csproj})

	if det.Framework != detector.DotNet {
		t.Fatalf("Expected framework %s, got %s", detector.DotNet, det.Framework)
	}
	if det.LanguageVersion != "8.0" {
		t.Errorf("Expected version 8.0, got %s", det.LanguageVersion)
	}
	if det.TestFramework != "xunit" {
		t.Errorf("Expected test framework xunit, got %s", det.TestFramework)
	}
	if det.WebFramework != "aspnetcore" {
		t.Errorf("Expected web framework aspnetcore, got %s", det.WebFramework)
	}
	if det.Meta["project_type"] != "web" {
		t.Errorf("Expected project_type web, got %s", det.Meta["project_type"])
	}
}

// Polyglot directories resolve by rule order, not by marker count.
func TestRuleOrdering(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		expected detector.Framework
	}{
		{
			name: "python beats node",
			files: map[string]string{
				"requirements.txt": "flask\n",
				"package.json":     `{"dependencies": {"express": "^4.0.0"}}`,
			},
			expected: detector.Python,
		},
		{
			name: "node beats maven",
			files: map[string]string{
				"package.json": `{}`,
				"pom.xml":      "<project></project>",
			},
			expected: detector.Node,
		},
		{
			name: "maven beats gradle",
			files: map[string]string{
				"pom.xml":      "<project></project>",
				"build.gradle": "",
			},
			expected: detector.Maven,
		},
		{
			name: "gradle beats dotnet",
			files: map[string]string{
				"build.gradle": "",
				"App.csproj":   "<Project></Project>",
			},
			expected: detector.Gradle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det := detect(t, tt.files)
			if det.Framework != tt.expected {
				t.Errorf("Expected framework %s, got %s", tt.expected, det.Framework)
			}
		})
	}
}

func TestReorderedRulesChangeWinner(t *testing.T) {
	projectPath := createTestProject(t, map[string]string{
		"requirements.txt": "flask\n",
		"package.json":     `{}`,
	})

	sig, err := detector.Extract(projectPath)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	rules := detector.DefaultRules()
	// node first
	rules[0], rules[1] = rules[1], rules[0]

	det, err := detector.ClassifyWith(rules, sig)
	if err != nil {
		t.Fatalf("ClassifyWith failed: %v", err)
	}
	if det.Framework != detector.Node {
		t.Errorf("Expected reordered rules to pick %s, got %s", detector.Node, det.Framework)
	}
}

func TestDetectionError(t *testing.T) {
	projectPath := createTestProject(t, map[string]string{
		"README.md": "# nothing to see",
	})

	_, err := detector.Detect(projectPath)
	if err == nil {
		t.Fatal("Expected detection error for unrecognized project")
	}

	var derr *detector.DetectionError
	if !errors.As(err, &derr) {
		t.Fatalf("Expected *DetectionError, got %T", err)
	}
	if derr.Root != projectPath {
		t.Errorf("Expected error root %s, got %s", projectPath, derr.Root)
	}
	if !strings.Contains(err.Error(), "--framework") {
		t.Errorf("Expected error to mention the --framework override, got %q", err.Error())
	}
}

func TestExtractErrors(t *testing.T) {
	t.Run("nonexistent path", func(t *testing.T) {
		_, err := detector.Extract(filepath.Join(t.TempDir(), "missing"))
		var perr *detector.PathError
		if !errors.As(err, &perr) {
			t.Fatalf("Expected *PathError, got %T (%v)", err, err)
		}
	})

	t.Run("path is a file", func(t *testing.T) {
		projectPath := createTestProject(t, map[string]string{"app.py": ""})
		_, err := detector.Extract(filepath.Join(projectPath, "app.py"))
		var perr *detector.PathError
		if !errors.As(err, &perr) {
			t.Fatalf("Expected *PathError, got %T (%v)", err, err)
		}
	})
}

func TestClassifyAs(t *testing.T) {
	projectPath := createTestProject(t, map[string]string{
		"package.json":     `{"dependencies": {"express": "^4.0.0"}}`,
		"requirements.txt": "flask\n",
	})

	sig, err := detector.Extract(projectPath)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	t.Run("forces the named framework", func(t *testing.T) {
		det, err := detector.ClassifyAs("node", sig)
		if err != nil {
			t.Fatalf("ClassifyAs failed: %v", err)
		}
		if det.Framework != detector.Node {
			t.Errorf("Expected framework %s, got %s", detector.Node, det.Framework)
		}
	})

	t.Run("normalizes the name", func(t *testing.T) {
		det, err := detector.ClassifyAs("  Python ", sig)
		if err != nil {
			t.Fatalf("ClassifyAs failed: %v", err)
		}
		if det.Framework != detector.Python {
			t.Errorf("Expected framework %s, got %s", detector.Python, det.Framework)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := detector.ClassifyAs("cobol", sig)
		if err == nil {
			t.Fatal("Expected error for unknown framework name")
		}
		if !strings.Contains(err.Error(), "supported:") {
			t.Errorf("Expected error to list supported frameworks, got %q", err.Error())
		}
	})
}

// Markers buried in dependency or build output directories must not count.
func TestScanSkipsVendoredDirectories(t *testing.T) {
	projectPath := createTestProject(t, map[string]string{
		"node_modules/flask/setup.py":      "",
		".venv/lib/app/requirements.txt":   "flask\n",
		"dist/package.json":                `{}`,
		"target/classes/pom.xml":           "<project></project>",
		"README.md":                        "docs",
	})

	_, err := detector.Detect(projectPath)
	var derr *detector.DetectionError
	if !errors.As(err, &derr) {
		t.Fatalf("Expected *DetectionError for project with only vendored markers, got %v", err)
	}
}

func TestFrameworksOrder(t *testing.T) {
	expected := []string{"python", "node", "maven", "gradle", "dotnet"}
	got := detector.Frameworks()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d frameworks, got %d: %v", len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Expected framework %d to be %s, got %s", i, expected[i], got[i])
		}
	}
}
