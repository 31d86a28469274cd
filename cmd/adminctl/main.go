// adminctl manages SalaryWatch admin credentials out-of-band. The HTTP API
// deliberately exposes no endpoint for credential changes, so rotating the
// default password happens here, directly against the database file.
//
// Usage:
//
//	adminctl [-d database.sqlite] [-u admin] rotate
//	adminctl [-d database.sqlite] seed
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/salarywatch/backend/internal/admins"
	"github.com/salarywatch/backend/internal/app"
)

// readPassword is a seam for term.ReadPassword.
var readPassword = term.ReadPassword

func main() {
	var (
		dsn      = flag.String("d", "database.sqlite", "database path")
		username = flag.String("u", admins.DefaultUsername, "admin username")
	)
	flag.Parse()

	action := flag.Arg(0)
	if action == "" {
		action = "rotate"
	}

	ctx := context.Background()

	db, err := app.InitDatabase(ctx, *dsn)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	switch action {
	case "seed":
		if err := admins.SeedDefault(ctx, db); err != nil {
			log.Fatalf("seed error: %v", err)
		}
		fmt.Println("Default admin account ensured")

	case "rotate":
		service := admins.NewService(admins.NewSQLiteRepository(db))

		password, err := getPassword(os.Stdout, "Enter new password: ")
		if err != nil {
			log.Fatalf("reading password: %v", err)
		}
		confirm, err := getPassword(os.Stdout, "Confirm new password: ")
		if err != nil {
			log.Fatalf("reading password: %v", err)
		}
		if !bytes.Equal(password, confirm) {
			log.Fatal("passwords do not match")
		}
		if len(password) == 0 {
			log.Fatal("password must not be empty")
		}

		if err := service.RotatePassword(ctx, *username, string(password)); err != nil {
			log.Fatalf("rotating password for %q: %v", *username, err)
		}
		fmt.Printf("Password updated for %s\n", *username)

	default:
		log.Fatalf("unknown action %q (want rotate or seed)", action)
	}
}

// getPassword prints a prompt to w and reads a password from the user's
// terminal without echo. A newline is printed after the read to keep the
// UI tidy.
func getPassword(w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
