package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runComments(ctx context.Context, args []string) error {
	postID, err := requirePostID(args, "pitchmate comments <id>")
	if err != nil {
		return err
	}

	c.io.Println("Loading comments...")

	comments, err := c.postsService.Comments(ctx, postID)
	if err != nil {
		return err
	}

	return c.render(commentsTemplate, comments)
}

func (c *Cli) runAddComment(ctx context.Context, args []string) error {
	user, err := c.requireUser()
	if err != nil {
		return err
	}

	postID, err := requirePostID(args, "pitchmate comment <id> <text>")
	if err != nil {
		return err
	}

	text := strings.TrimSpace(strings.Join(args[1:], " "))
	if text == "" {
		// Без текста в аргументах спрашиваем интерактивно
		text, err = c.io.ReadInput("Comment: ")
		if err != nil {
			return fmt.Errorf("failed to read comment: %w", err)
		}
	}

	if _, err := c.postsService.AddComment(ctx, postID, user.ID, text); err != nil {
		return err
	}

	c.io.Println("✓ Comment added.")
	return nil
}

func (c *Cli) runLike(ctx context.Context, args []string) error {
	user, err := c.requireUser()
	if err != nil {
		return err
	}

	postID, err := requirePostID(args, "pitchmate like <id>")
	if err != nil {
		return err
	}

	post, err := c.postsService.Like(ctx, postID, user.ID)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Liked %q (%d like(s)).\n", post.Title, post.LikesNumber)
	return nil
}
