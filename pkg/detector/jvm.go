package detector

import (
	"regexp"
	"strings"
)

var mavenPackagingRe = regexp.MustCompile(`<packaging>([a-z-]+)</packaging>`)

func mavenRule() Rule {
	return Rule{
		Framework: Maven,
		Match: func(sig *RawSignals) bool {
			return sig.Has("pom.xml")
		},
		Classify: classifyMaven,
	}
}

func classifyMaven(sig *RawSignals) Detection {
	det := Detection{
		Framework: Maven,
		Language:  "java",
		Meta:      map[string]string{},
		Signals:   []string{"pom.xml"},
	}

	pom := sig.Read("pom.xml")

	det.PackageManager = "maven"
	det.LanguageVersion = javaVersionFromPom(pom, det.Meta)
	det.TestFramework = jvmTestFramework(pom, det.Meta)
	det.WebFramework = jvmWebFramework(pom)

	if sig.Has("mvnw") {
		det.Signals = append(det.Signals, "mvnw")
		det.Meta["uses_wrapper"] = "true"
	}
	if strings.Contains(pom, "<modules>") {
		det.Meta["multi_module"] = "true"
	}
	if m := mavenPackagingRe.FindStringSubmatch(pom); m != nil {
		det.Meta["packaging"] = m[1]
	}

	return det
}

func gradleRule() Rule {
	return Rule{
		Framework: Gradle,
		Match: func(sig *RawSignals) bool {
			return sig.HasAny("build.gradle", "build.gradle.kts")
		},
		Classify: classifyGradle,
	}
}

func classifyGradle(sig *RawSignals) Detection {
	det := Detection{
		Framework: Gradle,
		Language:  "java",
		Meta:      map[string]string{},
	}

	var script string
	if sig.Has("build.gradle") {
		script = sig.Read("build.gradle")
		det.Signals = append(det.Signals, "build.gradle")
	} else {
		script = sig.Read("build.gradle.kts")
		det.Signals = append(det.Signals, "build.gradle.kts")
		det.Meta["kotlin_dsl"] = "true"
	}

	det.PackageManager = "gradle"
	det.LanguageVersion = javaVersionFromGradle(script, det.Meta)
	det.TestFramework = jvmTestFramework(script, det.Meta)
	det.WebFramework = jvmWebFramework(script)

	if sig.Has("gradlew") {
		det.Signals = append(det.Signals, "gradlew")
		det.Meta["uses_wrapper"] = "true"
	}
	if sig.HasAny("settings.gradle", "settings.gradle.kts") {
		content := sig.Read("settings.gradle") + sig.Read("settings.gradle.kts")
		if strings.Contains(content, "include") {
			det.Meta["multi_module"] = "true"
		}
	}

	return det
}

func javaVersionFromPom(pom string, meta map[string]string) string {
	for _, pattern := range []string{
		`<maven\.compiler\.source>(\d+)`,
		`<maven\.compiler\.target>(\d+)`,
		`<java\.version>(\d+)`,
		`<release>(\d+)</release>`,
	} {
		if v := extractVersion(pom, pattern); v != "" {
			return v
		}
	}
	meta["defaulted_language_version"] = "true"
	return "17"
}

func javaVersionFromGradle(script string, meta map[string]string) string {
	for _, pattern := range []string{
		`sourceCompatibility\s*=\s*["']?(\d+)`,
		`JavaVersion\.VERSION_(\d+)`,
		`languageVersion\.set\(JavaLanguageVersion\.of\((\d+)\)\)`,
		`JavaLanguageVersion\.of\((\d+)\)`,
	} {
		if v := extractVersion(script, pattern); v != "" {
			return v
		}
	}
	meta["defaulted_language_version"] = "true"
	return "17"
}

// jvmTestFramework inspects a pom.xml or gradle build script for the test
// dependency it declares.
func jvmTestFramework(buildFile string, meta map[string]string) string {
	lower := strings.ToLower(buildFile)
	switch {
	case strings.Contains(lower, "junit-jupiter") || strings.Contains(lower, "junit5"):
		return "junit5"
	case strings.Contains(lower, "testng"):
		return "testng"
	case strings.Contains(lower, "spock"):
		return "spock"
	case strings.Contains(lower, "junit"):
		return "junit4"
	}
	meta["defaulted_test_framework"] = "true"
	return "junit5"
}

func jvmWebFramework(buildFile string) string {
	lower := strings.ToLower(buildFile)
	switch {
	case strings.Contains(lower, "spring-boot") || strings.Contains(lower, "org.springframework.boot"):
		return "spring-boot"
	case strings.Contains(lower, "quarkus"):
		return "quarkus"
	case strings.Contains(lower, "micronaut"):
		return "micronaut"
	}
	return ""
}
