package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/selectkit/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
// By default it writes the global ~/.selectkit/config.yaml (or the --config path).
// With --project it writes .selectkit.yaml in the current directory instead.
func NewConfigInitCmd() *cobra.Command {
	var (
		force   bool
		project bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

The global file lives at ~/.selectkit/config.yaml ($SELECTKIT_HOME and
$SELECTKIT_CONFIG move it). A project file, .selectkit.yaml, is found by
walking up from the working directory and overrides whole sections of the
global file.`,
		Example: `  # Create global configuration
  selectkit config init

  # Create a project overlay in the current directory
  selectkit config init --project

  # Create configuration, overwriting existing
  selectkit config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := initTargetPath(cmd, project)
			if err != nil {
				return err
			}
			return initConfigFile(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&project, "project", false, "create "+config.ProjectConfigName+" in the current directory")

	return cmd
}

func initTargetPath(cmd *cobra.Command, project bool) (string, error) {
	if project {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		return filepath.Join(cwd, config.ProjectConfigName), nil
	}
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}
	return config.GetConfigPath(), nil
}

// initConfigFile writes the default configuration to path.
func initConfigFile(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	cfg := config.Default()
	cfg.SetConfigPath(path)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)

	return nil
}
