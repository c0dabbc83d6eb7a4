package cliconfig

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

var ErrCredentialNotFound = fmt.Errorf("credential not found")

// Credential is a saved API key/secret pair for one BankHub host.
type Credential struct {
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
}

type CLIConfig struct {
	// Credentials is keyed by API host.
	Credentials map[string]*Credential `yaml:"credentials"`
}

func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting user home directory: %w", err)
	}
	return filepath.Join(home, ".bankhub", "config.yaml"), nil
}

func Load() (*CLIConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file '%s': %w", path, err)
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file '%s': %w", path, err)
	}
	if cfg.Credentials == nil {
		cfg.Credentials = make(map[string]*Credential)
	}
	return &cfg, nil
}

func Save(cfg *CLIConfig) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating config directory '%s': %w", dir, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file '%s': %w", path, err)
	}
	return nil
}

// GetCredential returns the saved credential for the given server URL,
// matched by host.
func (c *CLIConfig) GetCredential(server string) (*Credential, error) {
	host, err := hostOf(server)
	if err != nil {
		return nil, err
	}
	cred, ok := c.Credentials[host]
	if !ok {
		return nil, ErrCredentialNotFound
	}
	return cred, nil
}

// SetCredential stores a credential for the given server URL, matched by
// host.
func (c *CLIConfig) SetCredential(server string, cred *Credential) error {
	host, err := hostOf(server)
	if err != nil {
		return err
	}
	if c.Credentials == nil {
		c.Credentials = make(map[string]*Credential)
	}
	c.Credentials[host] = cred
	return nil
}

func hostOf(server string) (string, error) {
	u, err := url.Parse(server)
	if err != nil {
		return "", fmt.Errorf("parsing server URL '%s': %w", server, err)
	}
	if u.Host == "" {
		// bare host without scheme
		return server, nil
	}
	return u.Host, nil
}
