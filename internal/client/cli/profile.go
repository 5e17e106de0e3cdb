package cli

import (
	"context"
	"flag"
	"fmt"

	clientapi "github.com/pitchmate/pitchmate/internal/client/api"
)

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: pitchmate profile update [--username NAME] [--skill LEVEL] [--image PATH]")
	}

	switch args[0] {
	case "update":
		return c.runProfileUpdate(ctx, args[1:])
	default:
		return fmt.Errorf("unknown profile subcommand: %s", args[0])
	}
}

func (c *Cli) runProfileUpdate(ctx context.Context, args []string) error {
	if _, err := c.requireUser(); err != nil {
		return err
	}

	flags := flag.NewFlagSet("profile update", flag.ContinueOnError)
	username := flags.String("username", "", "new username")
	skill := flags.String("skill", "", "new skill level (Beginner/Intermediate/Advanced)")
	image := flags.String("image", "", "path to new profile photo")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *username == "" && *skill == "" && *image == "" {
		return fmt.Errorf("nothing to update. Pass --username, --skill or --image")
	}

	c.io.Println("Updating profile...")

	params := clientapi.UpdateUserParams{
		Username:   *username,
		SkillLevel: *skill,
	}

	user, err := c.authService.UpdateProfile(ctx, params, *image)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Profile updated!")
	c.io.Printf("Username: %s\n", user.Username)
	if user.SkillLevel != "" {
		c.io.Printf("Skill:    %s\n", user.SkillLevel)
	}

	return nil
}
