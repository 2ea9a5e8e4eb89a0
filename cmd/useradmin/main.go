// Command useradmin creates backoffice accounts. Registration over the API
// is open, so operators seeding a fresh deployment can also do it here
// without the HTTP server running.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/grafibook/automotora/internal/server/config"
	"github.com/grafibook/automotora/internal/server/models"
	"github.com/grafibook/automotora/internal/server/password"
	"github.com/grafibook/automotora/internal/server/repositories/repomanager"
	"github.com/grafibook/automotora/internal/shared"
)

// test seam for term.ReadPassword
var readPassword = term.ReadPassword

func promptPassword(prompt string) ([]byte, error) {
	fmt.Print(prompt)
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return nil, err
	}
	return pw, nil
}

func run(ctx context.Context, dsn, username string) error {

	pw, err := promptPassword("Enter password: ")
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(pw)

	confirm, err := promptPassword("Repeat password: ")
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(confirm)

	if !bytes.Equal(pw, confirm) {
		return fmt.Errorf("passwords do not match")
	}
	if len(pw) == 0 {
		return fmt.Errorf("password must not be empty")
	}

	rm, err := repomanager.NewPostgresRepositoryManager(dsn)
	if err != nil {
		return err
	}
	defer rm.Close()

	hasher := password.NewHasher(password.DefaultParams())
	hash, err := hasher.Hash(string(pw))
	if err != nil {
		return err
	}

	user, err := rm.Users().Create(ctx, &models.User{Username: username, PasswordHash: hash})
	if err != nil {
		return err
	}

	fmt.Printf("created user %q (id=%d)\n", user.Username, user.ID)
	return nil
}

func main() {

	defaults := &config.Config{}
	defaults.LoadDefaults()

	dsn := flag.String("d", defaults.DatabaseDSN, "database DSN")
	username := flag.String("u", "", "username to create")
	flag.Parse()

	if *username == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), *dsn, *username); err != nil {
		log.Fatalf("%v", err)
	}
}
