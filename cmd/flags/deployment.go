package flags

import (
	"pipegen/pkg/config"
)

// CloudProviderFlag is a pflag.Value constrained to the closed cloud
// provider set. Validation happens at flag-parse time so an invalid value
// never reaches generation.
type CloudProviderFlag struct {
	value config.CloudProvider
}

func NewCloudProviderFlag(defaultValue config.CloudProvider) *CloudProviderFlag {
	return &CloudProviderFlag{value: defaultValue}
}

func (f *CloudProviderFlag) String() string { return string(f.value) }

func (f *CloudProviderFlag) Type() string { return "CloudProvider" }

func (f *CloudProviderFlag) Set(raw string) error {
	provider, err := config.ParseCloudProvider(raw)
	if err != nil {
		return err
	}
	f.value = provider
	return nil
}

func (f *CloudProviderFlag) Value() config.CloudProvider { return f.value }

// DeploymentTypeFlag is a pflag.Value constrained to the closed deployment
// type set.
type DeploymentTypeFlag struct {
	value config.DeploymentType
}

func NewDeploymentTypeFlag(defaultValue config.DeploymentType) *DeploymentTypeFlag {
	return &DeploymentTypeFlag{value: defaultValue}
}

func (f *DeploymentTypeFlag) String() string { return string(f.value) }

func (f *DeploymentTypeFlag) Type() string { return "DeploymentType" }

func (f *DeploymentTypeFlag) Set(raw string) error {
	deployType, err := config.ParseDeploymentType(raw)
	if err != nil {
		return err
	}
	f.value = deployType
	return nil
}

func (f *DeploymentTypeFlag) Value() config.DeploymentType { return f.value }
