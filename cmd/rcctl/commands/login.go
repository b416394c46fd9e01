package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rcontrol-io/rc-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		apiKey      string
		tokenURL    string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the Resource Controller",
		Long:  "Store an API endpoint and API key for subsequent commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get API endpoint
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				_, _ = os.Stdout.WriteString("API endpoint: ")
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)
			}

			if apiEndpoint == "" {
				return ErrAPIEndpointRequired
			}

			// Get API key, hidden from the terminal
			if apiKey == "" {
				apiKey = viper.GetString("apikey")
			}

			if apiKey == "" {
				_, _ = os.Stdout.WriteString("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = string(byteKey)

				_, _ = os.Stdout.WriteString("\n")
			}

			if apiKey == "" {
				return ErrAPIKeyRequired
			}

			viper.Set("api", apiEndpoint)
			viper.Set("apikey", apiKey)
			if tokenURL != "" {
				viper.Set("token_url", tokenURL)
			}

			// Verify the credentials before persisting them
			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.ResourceInstances().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to connect to API: %w", err)
			}

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully logged in to %s\n", apiEndpoint)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint URL")
	cmd.Flags().StringVar(&apiKey, "apikey", "", "API key (prompted if not given)")
	cmd.Flags().StringVar(&tokenURL, "token-url", "", "token service URL")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out from the Resource Controller",
		Long:  "Clear the stored API key and token",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("apikey", "")
			viper.Set("token", "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = os.Stdout.WriteString("Successfully logged out\n")

			return nil
		},
	}
}

// saveConfig persists the stored settings to the config file.
func saveConfig() error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".rcctl")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	settings := map[string]string{
		"api":       viper.GetString("api"),
		"apikey":    viper.GetString("apikey"),
		"token":     viper.GetString("token"),
		"token_url": viper.GetString("token_url"),
		"output":    viper.GetString("output"),
	}

	for key, value := range settings {
		if value == "" {
			delete(settings, key)
		}
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file holds the API key.
	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
