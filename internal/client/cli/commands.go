package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду. Перед сетевыми командами сессия уже
// восстановлена из хранилища (см. cmd/pitchmate).
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "whoami":
		return c.runWhoami(ctx)
	case "feed":
		return c.runFeed(ctx, args)
	case "match":
		return c.runMatch(ctx, args)
	case "like":
		return c.runLike(ctx, args)
	case "comments":
		return c.runComments(ctx, args)
	case "comment":
		return c.runAddComment(ctx, args)
	case "profile":
		return c.runProfile(ctx, args)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
