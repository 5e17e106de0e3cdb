package cli

import (
	"context"
	"fmt"
	"strings"

	clientapi "github.com/pitchmate/pitchmate/internal/client/api"
	"github.com/pitchmate/pitchmate/internal/validation"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword(fmt.Sprintf("Password (min %d chars): ", validation.MinPasswordLen))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirmPassword, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	prompt := fmt.Sprintf("Skill level (%s): ", strings.Join(validation.SkillLevels, "/"))
	skillLevel, err := c.io.ReadInput(prompt)
	if err != nil {
		return fmt.Errorf("failed to read skill level: %w", err)
	}

	imagePath, err := c.io.ReadInput("Profile photo path (optional, press Enter to skip): ")
	if err != nil {
		return fmt.Errorf("failed to read photo path: %w", err)
	}

	c.io.Println()
	c.io.Println("Registering...")

	params := clientapi.RegisterParams{
		Username:   username,
		Email:      email,
		Password:   password,
		SkillLevel: skillLevel,
	}

	user, err := c.authService.Register(ctx, params, imagePath)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID:  %s\n", user.ID)
	c.io.Printf("Username: %s\n", user.Username)
	c.io.Println()
	c.io.Println("You are signed in. Run 'pitchmate feed' to browse matches.")

	return nil
}
