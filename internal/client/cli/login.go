package cli

import (
	"context"
	"flag"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("login", flag.ContinueOnError)
	useGoogle := flags.Bool("google", false, "sign in via Google")
	credential := flags.String("credential", "", "ready Google ID token")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *useGoogle || *credential != "" {
		return c.runGoogleLogin(ctx, *credential)
	}

	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	user, err := c.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Logged in as %s (%s)\n", user.Username, user.Email)
	c.io.Println()
	c.io.Println("Your session has been saved.")

	return nil
}

// runGoogleLogin обменивает Google ID token на сессию Pitchmate.
// Если готовый credential не передан, запускаем локальный browser flow.
func (c *Cli) runGoogleLogin(ctx context.Context, credential string) error {
	c.io.Println("=== Google Sign-In ===")
	c.io.Println()

	if credential == "" {
		var err error
		credential, err = c.googleFlow.Obtain(ctx)
		if err != nil {
			return err
		}
	}

	c.io.Println("Exchanging Google credential...")

	user, err := c.authService.GoogleLogin(ctx, credential)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Logged in as %s (%s)\n", user.Username, user.Email)

	return nil
}
