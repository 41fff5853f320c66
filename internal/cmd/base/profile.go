package base

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/matforge/recordlists-go/pkg/serverapi"
)

// DefaultProfileName is the profile file looked up in the user's home
// directory when no -profile flag is given.
const DefaultProfileName = ".matforge.hcl"

// EnvProfile points at a profile file, overriding the default location but
// not an explicit -profile flag.
const EnvProfile = "MATFORGE_PROFILE"

// profileFile is the root of a profile document. The server block maps
// directly onto the transport configuration.
//
//	server {
//	  base_url   = "https://mi.example.com/mi_servicelayer"
//	  tls_verify = true
//	}
type profileFile struct {
	Server *serverapi.Config `hcl:"server,block"`
}

// resolveConfig builds the server configuration for a CLI invocation.
//
// Sources, later ones overriding earlier ones:
//
//  1. a .env file in the working directory (loaded into the environment,
//     existing variables win)
//  2. the HCL profile: the -profile flag, else $MATFORGE_PROFILE, else
//     ~/.matforge.hcl when that file exists
//  3. MATFORGE_* environment variables
//
// Credentials are usually kept out of the profile and supplied through the
// environment.
func resolveConfig(fs afero.Fs, profilePath string) (*serverapi.Config, error) {
	// Missing .env files are the normal case.
	_ = godotenv.Load()

	cfg := serverapi.DefaultConfig()

	path, required, err := profileLocation(fs, profilePath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		loaded, err := loadProfile(fs, path)
		if err != nil {
			if required {
				return nil, err
			}
		} else if loaded.Server != nil {
			cfg = loaded.Server
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// profileLocation picks the profile file to read. The returned bool reports
// whether a read failure is fatal: an explicitly named profile must load,
// the default one is best effort.
func profileLocation(fs afero.Fs, explicit string) (string, bool, error) {
	if explicit != "" {
		return explicit, true, nil
	}
	if fromEnv := os.Getenv(EnvProfile); fromEnv != "" {
		return fromEnv, true, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, nil
	}
	path := filepath.Join(home, DefaultProfileName)
	if ok, _ := afero.Exists(fs, path); ok {
		return path, false, nil
	}
	return "", false, nil
}

func loadProfile(fs afero.Fs, path string) (*profileFile, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	var profile profileFile
	if err := hclsimple.Decode(path, src, nil, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return &profile, nil
}

func applyEnvOverrides(cfg *serverapi.Config) error {
	if v := os.Getenv("MATFORGE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("MATFORGE_API_TOKEN"); v != "" {
		cfg.APIToken = v
	}
	if v := os.Getenv("MATFORGE_USERNAME"); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv("MATFORGE_PASSWORD"); v != "" {
		cfg.Password = v
	}
	if v := os.Getenv("MATFORGE_APPLICATION_NAME"); v != "" {
		cfg.ApplicationName = v
	}
	if v := os.Getenv("MATFORGE_TLS_VERIFY"); v != "" {
		verify, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid MATFORGE_TLS_VERIFY value %q: %w", v, err)
		}
		cfg.TLSVerify = &verify
	}
	if v := os.Getenv("MATFORGE_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid MATFORGE_TIMEOUT value %q: %w", v, err)
		}
		cfg.Timeout = timeout
	}
	return nil
}
