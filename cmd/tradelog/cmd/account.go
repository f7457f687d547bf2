package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradelog/analytics"
	"tradelog/journal"
	"tradelog/pkg/id"
	"tradelog/report"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage trading accounts",
	Long: `Create, list, edit and delete trading accounts.

Examples:
  tradelog account add --name "Main" --class Standard --balance 1000
  tradelog account list
  tradelog account edit <account-id> --balance 1500
  tradelog account delete <account-id>`,
}

var accountAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new account",
	Args:  cobra.NoArgs,
	RunE:  runAccountAdd,
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts with their performance",
	Args:  cobra.NoArgs,
	RunE:  runAccountList,
}

var accountEditCmd = &cobra.Command{
	Use:   "edit <account-id>",
	Short: "Edit an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountEdit,
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete <account-id>",
	Short: "Delete an account and all its trades",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountDelete,
}

var (
	accName    string
	accClass   string
	accBalance float64
)

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountAddCmd)
	accountCmd.AddCommand(accountListCmd)
	accountCmd.AddCommand(accountEditCmd)
	accountCmd.AddCommand(accountDeleteCmd)

	for _, c := range []*cobra.Command{accountAddCmd, accountEditCmd} {
		c.Flags().StringVar(&accName, "name", "", "account name")
		c.Flags().StringVar(&accClass, "class", string(analytics.Standard), "account class (Standard or Cent)")
		c.Flags().Float64Var(&accBalance, "balance", 0, "initial balance")
	}
	accountAddCmd.MarkFlagRequired("name")
}

func runAccountAdd(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	a := journal.Account{
		ID:             id.New("acc"),
		Name:           accName,
		Class:          analytics.AccountClass(accClass),
		InitialBalance: accBalance,
		CreatedAt:      time.Now().UTC(),
	}
	if err := journal.ValidateAccount(a); err != nil {
		return err
	}
	if err := l.CreateAccount(a); err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	fmt.Printf("✓ Account created: %s (%s)\n", a.Name, a.ID)
	return nil
}

func runAccountList(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	accounts, err := l.ListAccounts()
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}
	if len(accounts) == 0 {
		fmt.Println("No accounts yet. Create one with: tradelog account add")
		return nil
	}

	for _, a := range accounts {
		trades, err := l.ListTrades(journal.Filter{AccountID: a.ID})
		if err != nil {
			return fmt.Errorf("list trades: %w", err)
		}
		s := analytics.Stats(journal.Inputs(trades), a.InitialBalance)

		fmt.Printf("%s  [%s]  %s\n", a.Name, a.Class, a.ID)
		fmt.Printf("  Balance:  %s (initial %s)\n",
			report.FormatCurrency(s.Balance, a.Class),
			report.FormatCurrency(a.InitialBalance, a.Class))
		fmt.Printf("  Growth:   %+.2f%%   Win Rate: %.1f%%   Trades: %d\n",
			s.Growth, s.WinRate, s.Total)
		fmt.Println()
	}
	return nil
}

func runAccountEdit(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	a, err := l.GetAccount(args[0])
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("name") {
		a.Name = accName
	}
	if cmd.Flags().Changed("class") {
		a.Class = analytics.AccountClass(accClass)
	}
	if cmd.Flags().Changed("balance") {
		a.InitialBalance = accBalance
	}

	if err := journal.ValidateAccount(a); err != nil {
		return err
	}
	if err := l.UpdateAccount(a); err != nil {
		return fmt.Errorf("update account: %w", err)
	}

	fmt.Printf("✓ Account updated: %s\n", a.ID)
	return nil
}

func runAccountDelete(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	if err := l.DeleteAccount(args[0]); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	fmt.Printf("✓ Account and its trades deleted: %s\n", args[0])
	return nil
}
