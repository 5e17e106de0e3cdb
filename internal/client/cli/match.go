package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pitchmate/pitchmate/pkg/api"
)

func (c *Cli) runMatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: pitchmate match <create|show|update|delete|join|leave|teams> [id]")
	}

	sub := args[0]
	rest := args[1:]

	switch sub {
	case "create":
		return c.runMatchCreate(ctx)
	case "show":
		return c.runMatchShow(ctx, rest)
	case "update":
		return c.runMatchUpdate(ctx, rest)
	case "delete":
		return c.runMatchDelete(ctx, rest)
	case "join":
		return c.runMatchJoin(ctx, rest)
	case "leave":
		return c.runMatchLeave(ctx, rest)
	case "teams":
		return c.runMatchTeams(ctx, rest)
	default:
		return fmt.Errorf("unknown match subcommand: %s", sub)
	}
}

// requirePostID достает обязательный ID матча из аргументов
func requirePostID(args []string, usage string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("missing match ID. Usage: %s", usage)
	}
	return args[0], nil
}

func (c *Cli) runMatchCreate(ctx context.Context) error {
	user, err := c.requireUser()
	if err != nil {
		return err
	}

	c.io.Println("=== New Match ===")
	c.io.Println()

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}

	location, err := c.io.ReadInput("Location: ")
	if err != nil {
		return fmt.Errorf("failed to read location: %w", err)
	}

	date, err := c.io.ReadInput("Date (YYYY-MM-DD): ")
	if err != nil {
		return fmt.Errorf("failed to read date: %w", err)
	}

	kickoff, err := c.io.ReadInput("Kick-off time (HH:MM): ")
	if err != nil {
		return fmt.Errorf("failed to read time: %w", err)
	}

	content, err := c.io.ReadInput("Description: ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	when, err := parseMatchTime(date, kickoff)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Publishing...")

	post := api.Post{
		Owner:    user.ID,
		Title:    title,
		Location: location,
		Date:     when,
		Content:  content,
	}

	created, err := c.postsService.Create(ctx, post)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Match published!")
	c.io.Printf("ID: %s\n", created.ID)
	c.io.Println()
	c.io.Printf("Share it: pitchmate match show %s\n", created.ID)

	return nil
}

func (c *Cli) runMatchShow(ctx context.Context, args []string) error {
	postID, err := requirePostID(args, "pitchmate match show <id>")
	if err != nil {
		return err
	}

	c.io.Println("Loading match...")

	post, err := c.postsService.Get(ctx, postID)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("=== Match Details ===")
	c.io.Println()
	c.io.Printf("Title:    %s\n", post.Title)
	c.io.Printf("Where:    %s\n", post.Location)
	c.io.Printf("When:     %s\n", post.Date)
	if post.Content != "" {
		c.io.Printf("Details:  %s\n", post.Content)
	}
	c.io.Printf("Likes:    %d\n", post.LikesNumber)

	participants, err := c.postsService.Participants(ctx, post)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Participants (%d):\n", len(post.ParticipantsIDs))
	if len(participants) == 0 {
		c.io.Println("  Nobody has joined yet.")
	}
	for _, p := range participants {
		if p.SkillLevel != "" {
			c.io.Printf("  - %s (%s)\n", p.Username, p.SkillLevel)
		} else {
			c.io.Printf("  - %s\n", p.Username)
		}
	}

	return nil
}

func (c *Cli) runMatchUpdate(ctx context.Context, args []string) error {
	user, err := c.requireUser()
	if err != nil {
		return err
	}

	postID, err := requirePostID(args, "pitchmate match update <id>")
	if err != nil {
		return err
	}

	current, err := c.postsService.Get(ctx, postID)
	if err != nil {
		return err
	}
	if current.Owner != user.ID {
		return fmt.Errorf("only the match owner can update it")
	}

	c.io.Println("=== Update Match (press Enter to keep current value) ===")
	c.io.Println()

	title, err := c.io.ReadInput(fmt.Sprintf("Title [%s]: ", current.Title))
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title == "" {
		title = current.Title
	}

	location, err := c.io.ReadInput(fmt.Sprintf("Location [%s]: ", current.Location))
	if err != nil {
		return fmt.Errorf("failed to read location: %w", err)
	}
	if location == "" {
		location = current.Location
	}

	content, err := c.io.ReadInput("Description (Enter to keep): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}
	if content == "" {
		content = current.Content
	}

	updated := *current
	updated.Title = title
	updated.Location = location
	updated.Content = content

	if _, err := c.postsService.Update(ctx, postID, updated); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Match updated!")

	return nil
}

func (c *Cli) runMatchDelete(ctx context.Context, args []string) error {
	if _, err := c.requireUser(); err != nil {
		return err
	}

	postID, err := requirePostID(args, "pitchmate match delete <id>")
	if err != nil {
		return err
	}

	ok, err := c.io.Confirm(fmt.Sprintf("Delete match %s?", postID))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		c.io.Println("Canceled.")
		return nil
	}

	if err := c.postsService.Delete(ctx, postID); err != nil {
		return err
	}

	c.io.Println("✓ Match deleted.")
	return nil
}

func (c *Cli) runMatchJoin(ctx context.Context, args []string) error {
	user, err := c.requireUser()
	if err != nil {
		return err
	}

	postID, err := requirePostID(args, "pitchmate match join <id>")
	if err != nil {
		return err
	}

	post, err := c.postsService.Join(ctx, postID, user.ID)
	if err != nil {
		return err
	}

	c.io.Printf("✓ You are in! %d player(s) signed up for %q.\n", len(post.ParticipantsIDs), post.Title)
	return nil
}

func (c *Cli) runMatchLeave(ctx context.Context, args []string) error {
	user, err := c.requireUser()
	if err != nil {
		return err
	}

	postID, err := requirePostID(args, "pitchmate match leave <id>")
	if err != nil {
		return err
	}

	post, err := c.postsService.Leave(ctx, postID, user.ID)
	if err != nil {
		return err
	}

	c.io.Printf("✓ You left %q. %d player(s) remaining.\n", post.Title, len(post.ParticipantsIDs))
	return nil
}

func (c *Cli) runMatchTeams(ctx context.Context, args []string) error {
	if _, err := c.requireUser(); err != nil {
		return err
	}

	postID, err := requirePostID(args, "pitchmate match teams <id>")
	if err != nil {
		return err
	}

	c.io.Println("Splitting teams...")

	teams, err := c.postsService.Teams(ctx, postID)
	if err != nil {
		return err
	}

	return c.render(teamsTemplate, teams)
}

// parseMatchTime склеивает дату и время матча в RFC3339
func parseMatchTime(date, kickoff string) (string, error) {
	t, err := time.Parse("2006-01-02 15:04", date+" "+kickoff)
	if err != nil {
		return "", fmt.Errorf("invalid date/time, expected YYYY-MM-DD and HH:MM: %w", err)
	}
	return t.UTC().Format(time.RFC3339), nil
}
