package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tradelog/journal"
)

// The session is a single stored username, nothing more. It exists so the
// journal greets its owner and backups carry the name along.

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Start a journal session",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the journal session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session user",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	username := strings.TrimSpace(args[0])
	if username == "" {
		return fmt.Errorf("username is required")
	}

	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	if err := l.SetPref(journal.PrefUser, username); err != nil {
		return err
	}

	fmt.Printf("✓ Logged in as %s\n", username)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	if err := l.DeletePref(journal.PrefUser); err != nil {
		return err
	}

	fmt.Println("✓ Logged out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	user, err := l.GetPref(journal.PrefUser)
	if err != nil {
		return err
	}
	if user == "" {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Println(user)
	return nil
}
