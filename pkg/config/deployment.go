package config

import (
	"fmt"
	"strings"
)

// CloudProvider is the closed set of deployment targets pipelines are
// generated for.
type CloudProvider string

const (
	ProviderLocal CloudProvider = "local"
	ProviderAWS   CloudProvider = "aws"
	ProviderAzure CloudProvider = "azure"
	ProviderGCP   CloudProvider = "gcp"
)

// AllowedProviders lists every valid cloud provider value, in display order.
var AllowedProviders = []string{
	string(ProviderLocal),
	string(ProviderAWS),
	string(ProviderAzure),
	string(ProviderGCP),
}

// DeploymentType is the shape of the deployed artifact: a managed web
// service or a general-purpose VM/container instance.
type DeploymentType string

const (
	DeployWebApp   DeploymentType = "webapp"
	DeployInstance DeploymentType = "instance"
)

// AllowedDeploymentTypes lists every valid deployment type value.
var AllowedDeploymentTypes = []string{
	string(DeployWebApp),
	string(DeployInstance),
}

// Platform identifies a CI platform a pipeline file is generated for.
type Platform string

const (
	PlatformJenkins Platform = "jenkins"
	PlatformGitLab  Platform = "gitlab"
	PlatformGitHub  Platform = "github"
)

// AllowedPlatforms lists every valid CI platform value.
var AllowedPlatforms = []string{
	string(PlatformJenkins),
	string(PlatformGitLab),
	string(PlatformGitHub),
}

// ValidationError reports a value outside one of the closed enumerations.
// The message always lists the allowed values.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s '%s' (allowed values: %s)", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// DeploymentConfig is a validated, immutable deployment configuration.
// Invalid enum values cannot pass Resolve, so generators never see them.
type DeploymentConfig struct {
	Provider  CloudProvider
	Type      DeploymentType
	Platforms []Platform
}

// Resolve validates and normalizes raw user input into a DeploymentConfig.
// Values are trimmed and lowercased before comparison, platforms are
// deduplicated preserving first-seen order, and an empty platform list is
// legal: it means "shared artifacts only", not "all platforms".
func Resolve(rawProvider, rawType string, rawPlatforms []string) (DeploymentConfig, error) {
	provider, err := ParseCloudProvider(rawProvider)
	if err != nil {
		return DeploymentConfig{}, err
	}

	deployType, err := ParseDeploymentType(rawType)
	if err != nil {
		return DeploymentConfig{}, err
	}

	seen := map[Platform]bool{}
	platforms := []Platform{}
	for _, raw := range rawPlatforms {
		if fold(raw) == "" {
			continue
		}
		platform, err := ParsePlatform(raw)
		if err != nil {
			return DeploymentConfig{}, err
		}
		if !seen[platform] {
			seen[platform] = true
			platforms = append(platforms, platform)
		}
	}

	return DeploymentConfig{
		Provider:  provider,
		Type:      deployType,
		Platforms: platforms,
	}, nil
}

// ParseCloudProvider normalizes and validates a cloud provider string.
func ParseCloudProvider(raw string) (CloudProvider, error) {
	value := fold(raw)
	for _, allowed := range AllowedProviders {
		if value == allowed {
			return CloudProvider(value), nil
		}
	}
	return "", &ValidationError{Field: "cloud_provider", Value: strings.TrimSpace(raw), Allowed: AllowedProviders}
}

// ParseDeploymentType normalizes and validates a deployment type string.
func ParseDeploymentType(raw string) (DeploymentType, error) {
	value := fold(raw)
	for _, allowed := range AllowedDeploymentTypes {
		if value == allowed {
			return DeploymentType(value), nil
		}
	}
	return "", &ValidationError{Field: "deployment_type", Value: strings.TrimSpace(raw), Allowed: AllowedDeploymentTypes}
}

// ParsePlatform normalizes and validates a CI platform string.
func ParsePlatform(raw string) (Platform, error) {
	value := fold(raw)
	for _, allowed := range AllowedPlatforms {
		if value == allowed {
			return Platform(value), nil
		}
	}
	return "", &ValidationError{Field: "platform", Value: strings.TrimSpace(raw), Allowed: AllowedPlatforms}
}

func fold(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
