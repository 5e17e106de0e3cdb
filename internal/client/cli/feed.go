package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/pitchmate/pitchmate/internal/client/storage"
)

func (c *Cli) runFeed(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("feed", flag.ContinueOnError)
	mine := flags.Bool("mine", false, "show only my matches")
	offline := flags.Bool("offline", false, "render the last cached feed")
	clearCache := flags.Bool("clear-cache", false, "drop the cached feed snapshot")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *clearCache {
		if err := c.postsService.ClearCache(ctx); err != nil {
			return err
		}
		c.io.Println("✓ Feed cache cleared.")
		return nil
	}

	if *offline {
		return c.renderCachedFeed(ctx)
	}

	owner := ""
	if *mine {
		user, err := c.requireUser()
		if err != nil {
			return err
		}
		owner = user.ID
	}

	c.io.Println("Loading matches...")

	posts, err := c.postsService.Feed(ctx, owner)
	if err != nil {
		return err
	}

	return c.render(feedTemplate, posts)
}

// renderCachedFeed рисует ленту из локального снимка без сети
func (c *Cli) renderCachedFeed(ctx context.Context) error {
	feed, err := c.postsService.CachedFeed(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrFeedNotCached) {
			return fmt.Errorf("no cached feed yet. Run 'pitchmate feed' online first")
		}
		return fmt.Errorf("failed to load cached feed: %w", err)
	}

	fetchedAt := time.Unix(feed.FetchedAt, 0)
	c.io.Printf("Cached feed from %s\n", fetchedAt.Format(time.RFC3339))

	return c.render(feedTemplate, feed.Posts)
}
