package cli

import (
	"context"
	"time"

	"github.com/pitchmate/pitchmate/internal/client/session"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	if !c.session.IsAuthenticated() {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'pitchmate login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")

	if user := c.session.User(); user != nil {
		c.io.Printf("Username: %s\n", user.Username)
		c.io.Printf("Email:    %s\n", user.Email)
		if user.SkillLevel != "" {
			c.io.Printf("Skill:    %s\n", user.SkillLevel)
		}
	}

	// Показываем срок действия из самого токена
	expiresAt, err := session.TokenExpiry(c.session.AccessToken())
	if err != nil {
		return nil
	}

	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))

	remaining := time.Until(expiresAt)
	if remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. It will be refreshed on the next request.")
	}

	return nil
}

func (c *Cli) runWhoami(ctx context.Context) error {
	if _, err := c.requireUser(); err != nil {
		return err
	}

	c.io.Println("Fetching profile...")

	user, err := c.authService.CurrentUser(ctx)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("ID:       %s\n", user.ID)
	c.io.Printf("Username: %s\n", user.Username)
	c.io.Printf("Email:    %s\n", user.Email)
	if user.SkillLevel != "" {
		c.io.Printf("Skill:    %s\n", user.SkillLevel)
	}
	if user.ProfileImg != "" {
		c.io.Printf("Photo:    %s\n", user.ProfileImg)
	}

	return nil
}
