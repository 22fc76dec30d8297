package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/session"
)

func newLoginCmd() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store an API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(server)
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "server URL (default: from config)")
	return cmd
}

func runLogin(serverFlag string) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Operator email: ")
	operator, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	operator = strings.TrimSpace(operator)
	if operator == "" {
		return fmt.Errorf("operator email is required")
	}

	fmt.Print("API key: ")
	key, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("API key is required")
	}

	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	token, err := session.NewStore(database).Create(operator)
	if err != nil {
		return err
	}

	cfg, err := loadCLIConfig()
	if err != nil {
		cfg = CLIConfig{}
	}
	cfg.APIKey = key
	cfg.SessionToken = token
	if serverFlag != "" {
		cfg.ServerURL = serverFlag
	}
	if err := saveCLIConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("✓ Logged in.")
	return nil
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCLIConfig()
			if err != nil {
				return err
			}

			if cfg.SessionToken != "" {
				database, err := openDB()
				if err != nil {
					return err
				}
				defer closeDB(database)
				if err := session.NewStore(database).Destroy(cfg.SessionToken); err != nil {
					fmt.Fprintf(os.Stderr, "warning: %v\n", err)
				}
			}

			cfg.APIKey = ""
			cfg.SessionToken = ""
			if err := saveCLIConfig(cfg); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}
