package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge-racer/internal/account"
	"github.com/vovakirdan/dodge-racer/internal/platform/tui"
	"github.com/vovakirdan/dodge-racer/internal/registry"
	"github.com/vovakirdan/dodge-racer/internal/storage"
)

var (
	flagUsername string
	flagEmail    string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	Long: `Create a player account. The e-mail address identifies you and must
be unique. Missing values are prompted for; the password is never echoed.

Examples:
  racer register
  racer register --username alice --email alice@example.com`,
	Args: cobra.NoArgs,
	Run:  runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with e-mail and password",
	Long: `Sign in. The account stays signed in between runs until 'racer logout'.

Examples:
  racer login
  racer login --email alice@example.com`,
	Args: cobra.NoArgs,
	Run:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Args:  cobra.NoArgs,
	Run:   runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in player and their best scores",
	Args:  cobra.NoArgs,
	Run:   runWhoami,
}

func init() {
	registerCmd.Flags().StringVar(&flagUsername, "username", "", "Display name")
	for _, c := range []*cobra.Command{registerCmd, loginCmd} {
		c.Flags().StringVar(&flagEmail, "email", "", "E-mail address")
	}
}

// prompter reads answers from stdin. Passwords are read without echo when
// stdin is a terminal.
type prompter struct {
	in *bufio.Reader
}

func newPrompter() *prompter {
	return &prompter{in: bufio.NewReader(os.Stdin)}
}

func (p *prompter) line(label, preset string) (string, error) {
	if preset != "" {
		return preset, nil
	}
	fmt.Print(label + ": ")
	s, err := p.in.ReadString('\n')
	if err != nil && s == "" {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

func (p *prompter) secret(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		s, err := p.in.ReadString('\n')
		if err != nil && s == "" {
			return "", err
		}
		return strings.TrimRight(s, "\r\n"), nil
	}
	fmt.Print(label + ": ")
	b, err := term.ReadPassword(fd)
	fmt.Println()
	return string(b), err
}

// openAccounts opens the database and builds an account service that
// prints its notices to stdout.
func openAccounts() (*storage.Store, *account.Service) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	return store, account.NewService(store, account.WithNotifier(tui.LineNotifier{W: os.Stdout}))
}

// exitOnAccountError ends the command on failure. Refusals were already
// shown as notices, so only unexpected errors are printed.
func exitOnAccountError(store *storage.Store, err error) {
	if err == nil {
		return
	}
	store.Close()
	switch {
	case errors.Is(err, account.ErrInvalidInput),
		errors.Is(err, account.ErrPasswordMismatch),
		errors.Is(err, account.ErrEmailTaken),
		errors.Is(err, account.ErrInvalidCredentials):
		os.Exit(1)
	default:
		fail("%v", err)
	}
}

func runRegister(_ *cobra.Command, _ []string) {
	p := newPrompter()
	username, err := p.line("Username", flagUsername)
	if err != nil {
		fail("reading username: %v", err)
	}
	email, err := p.line("E-mail", flagEmail)
	if err != nil {
		fail("reading e-mail: %v", err)
	}
	password, err := p.secret("Password")
	if err != nil {
		fail("reading password: %v", err)
	}
	confirm, err := p.secret("Confirm password")
	if err != nil {
		fail("reading password: %v", err)
	}

	store, accounts := openAccounts()
	defer store.Close()

	_, err = accounts.Register(username, email, password, confirm)
	exitOnAccountError(store, err)
}

func runLogin(_ *cobra.Command, _ []string) {
	p := newPrompter()
	email, err := p.line("E-mail", flagEmail)
	if err != nil {
		fail("reading e-mail: %v", err)
	}
	password, err := p.secret("Password")
	if err != nil {
		fail("reading password: %v", err)
	}

	store, accounts := openAccounts()
	defer store.Close()

	_, err = accounts.Login(email, password)
	exitOnAccountError(store, err)
}

func runLogout(_ *cobra.Command, _ []string) {
	store, accounts := openAccounts()
	defer store.Close()

	exitOnAccountError(store, accounts.Logout())
}

func runWhoami(_ *cobra.Command, _ []string) {
	store, accounts := openAccounts()
	defer store.Close()

	profile, err := accounts.Profile(gameIDs())
	if errors.Is(err, account.ErrNotSignedIn) {
		fmt.Println("Not signed in.")
		fmt.Println("Run 'racer login' or 'racer register'.")
		return
	}
	if err != nil {
		store.Close()
		fail("%v", err)
	}

	fmt.Printf("[%s] %s <%s>\n", profile.Initial, profile.User.DisplayName, profile.User.ID)
	fmt.Println()
	for _, g := range registry.List() {
		fmt.Printf("  %-16s best %d\n", g.Title, profile.Bests[g.ID])
	}
}
