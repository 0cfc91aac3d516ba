package detector

// Framework identifies a supported project ecosystem.
type Framework string

const (
	Python Framework = "python"
	Node   Framework = "node"
	Maven  Framework = "maven"
	Gradle Framework = "gradle"
	DotNet Framework = "dotnet"
)

// Detection represents the result of framework detection.
// Framework is always set on a successful detection; the remaining fields are
// best-effort and may carry documented defaults (recorded in Meta) or stay
// empty when nothing could be inferred.
type Detection struct {
	Framework       Framework         `json:"framework"`
	Language        string            `json:"language"`
	LanguageVersion string            `json:"language_version,omitempty"`
	PackageManager  string            `json:"package_manager,omitempty"`
	TestFramework   string            `json:"test_framework,omitempty"`
	WebFramework    string            `json:"web_framework,omitempty"`
	Signals         []string          `json:"signals"`
	Meta            map[string]string `json:"meta,omitempty"`
}
