package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"pipegen/pkg/config"
)

func defaultInputs() deploymentInputs {
	return deploymentInputs{
		provider:   string(config.DefaultProvider),
		deployType: string(config.DefaultDeploymentType),
		platforms:  config.DefaultPlatforms,
	}
}

func TestResolveDeployment_DefaultsWithoutFile(t *testing.T) {
	cfg, err := resolveDeployment(defaultInputs(), nil)
	if err != nil {
		t.Fatalf("resolveDeployment failed: %v", err)
	}

	if cfg.Provider != config.ProviderLocal {
		t.Errorf("Expected default provider local, got %s", cfg.Provider)
	}
	if cfg.Type != config.DeployWebApp {
		t.Errorf("Expected default deployment type webapp, got %s", cfg.Type)
	}
	if !reflect.DeepEqual(cfg.Platforms, []config.Platform{config.PlatformJenkins}) {
		t.Errorf("Expected default platforms [jenkins], got %v", cfg.Platforms)
	}
}

func TestResolveDeployment_FileFillsUnsetFlags(t *testing.T) {
	fileCfg := &config.FileConfig{
		CloudProvider:  "aws",
		DeploymentType: "instance",
		Platforms:      []string{"gitlab", "github"},
	}

	cfg, err := resolveDeployment(defaultInputs(), fileCfg)
	if err != nil {
		t.Fatalf("resolveDeployment failed: %v", err)
	}

	if cfg.Provider != config.ProviderAWS {
		t.Errorf("Expected file provider aws, got %s", cfg.Provider)
	}
	if cfg.Type != config.DeployInstance {
		t.Errorf("Expected file deployment type instance, got %s", cfg.Type)
	}
	if !reflect.DeepEqual(cfg.Platforms, []config.Platform{config.PlatformGitLab, config.PlatformGitHub}) {
		t.Errorf("Expected file platforms [gitlab github], got %v", cfg.Platforms)
	}
}

func TestResolveDeployment_FlagsBeatFile(t *testing.T) {
	fileCfg := &config.FileConfig{
		CloudProvider:  "aws",
		DeploymentType: "instance",
		Platforms:      []string{"gitlab"},
	}

	tests := []struct {
		name     string
		inputs   deploymentInputs
		expected config.DeploymentConfig
	}{
		{
			name: "explicit provider wins",
			inputs: deploymentInputs{
				provider:    "gcp",
				deployType:  "webapp",
				platforms:   []string{"jenkins"},
				providerSet: true,
			},
			expected: config.DeploymentConfig{
				Provider:  config.ProviderGCP,
				Type:      config.DeployInstance,
				Platforms: []config.Platform{config.PlatformGitLab},
			},
		},
		{
			name: "explicit deployment type wins",
			inputs: deploymentInputs{
				provider:   "local",
				deployType: "webapp",
				platforms:  []string{"jenkins"},
				typeSet:    true,
			},
			expected: config.DeploymentConfig{
				Provider:  config.ProviderAWS,
				Type:      config.DeployWebApp,
				Platforms: []config.Platform{config.PlatformGitLab},
			},
		},
		{
			name: "explicit platforms win",
			inputs: deploymentInputs{
				provider:     "local",
				deployType:   "webapp",
				platforms:    []string{"github"},
				platformsSet: true,
			},
			expected: config.DeploymentConfig{
				Provider:  config.ProviderAWS,
				Type:      config.DeployInstance,
				Platforms: []config.Platform{config.PlatformGitHub},
			},
		},
		{
			name: "all flags explicit ignores file entirely",
			inputs: deploymentInputs{
				provider:     "azure",
				deployType:   "webapp",
				platforms:    []string{"jenkins"},
				providerSet:  true,
				typeSet:      true,
				platformsSet: true,
			},
			expected: config.DeploymentConfig{
				Provider:  config.ProviderAzure,
				Type:      config.DeployWebApp,
				Platforms: []config.Platform{config.PlatformJenkins},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := resolveDeployment(tt.inputs, fileCfg)
			if err != nil {
				t.Fatalf("resolveDeployment failed: %v", err)
			}
			if !reflect.DeepEqual(cfg, tt.expected) {
				t.Errorf("Expected %+v, got %+v", tt.expected, cfg)
			}
		})
	}
}

func TestResolveDeployment_PartialFileConfig(t *testing.T) {
	// a file setting only the provider must not disturb the other defaults
	fileCfg := &config.FileConfig{CloudProvider: "gcp"}

	cfg, err := resolveDeployment(defaultInputs(), fileCfg)
	if err != nil {
		t.Fatalf("resolveDeployment failed: %v", err)
	}

	if cfg.Provider != config.ProviderGCP {
		t.Errorf("Expected file provider gcp, got %s", cfg.Provider)
	}
	if cfg.Type != config.DeployWebApp {
		t.Errorf("Expected default deployment type webapp, got %s", cfg.Type)
	}
	if !reflect.DeepEqual(cfg.Platforms, []config.Platform{config.PlatformJenkins}) {
		t.Errorf("Expected default platforms [jenkins], got %v", cfg.Platforms)
	}
}

func TestResolveDeployment_FileInvalidValueRejected(t *testing.T) {
	fileCfg := &config.FileConfig{CloudProvider: "digitalocean"}

	_, err := resolveDeployment(defaultInputs(), fileCfg)
	if err == nil {
		t.Fatal("Expected validation error for invalid file provider")
	}
}

func TestResolveDeployment_FromProjectFile(t *testing.T) {
	dir := t.TempDir()
	content := "cloud_provider: azure\ndeployment_type: instance\nplatforms:\n  - github\n"
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	fileCfg, err := config.LoadFile(dir)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	cfg, err := resolveDeployment(defaultInputs(), fileCfg)
	if err != nil {
		t.Fatalf("resolveDeployment failed: %v", err)
	}

	expected := config.DeploymentConfig{
		Provider:  config.ProviderAzure,
		Type:      config.DeployInstance,
		Platforms: []config.Platform{config.PlatformGitHub},
	}
	if !reflect.DeepEqual(cfg, expected) {
		t.Errorf("Expected %+v, got %+v", expected, cfg)
	}
}
