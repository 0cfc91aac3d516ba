package config

// Defaults applied when neither flags nor a project config file say otherwise.
const (
	DefaultProvider       = ProviderLocal
	DefaultDeploymentType = DeployWebApp
)

// DefaultPlatforms is the platform list used when none is requested.
var DefaultPlatforms = []string{string(PlatformJenkins)}

// FileName is the optional per-project configuration file.
const FileName = ".pipegen.yaml"
