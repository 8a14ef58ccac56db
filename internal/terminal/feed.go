package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pronet/internal/domains/post"
)

// feed walks the post sequence newest first, pausing on each entry for
// interaction: like/comment on other members' posts, delete on own.
func (a *App) feed(ctx context.Context) error {
	posts, err := a.c.Posts.Feed(ctx)
	if err != nil {
		return err
	}

	clearScreen(a.out)
	header(a.out, "FEED")

	if len(posts) == 0 {
		fmt.Fprintln(a.out, "\nNo posts yet. Be the first to publish!")
		return a.pressEnter()
	}

	fmt.Fprintf(a.out, "\n%d post(s) in total\n", len(posts))

	me, _ := a.c.Session.Current()
	for i, p := range posts {
		renderPost(a.out, i+1, p)

		if p.AuthorUsername == me {
			fmt.Fprintln(a.out, "\n   Your post | 1 - Delete | ENTER - Continue")
			choice, err := a.line("   Option: ")
			if err != nil {
				return err
			}
			if choice == "1" {
				if err := a.deletePost(ctx, p.ID); err != nil {
					return err
				}
			}
			continue
		}

		fmt.Fprintln(a.out, "\n   1 - Like | 2 - Comment | ENTER - Continue")
		choice, err := a.line("   Option: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			if err := a.toggleLike(ctx, p.ID, me); err != nil {
				return err
			}
		case "2":
			if err := a.commentOn(ctx, p.ID, me); err != nil {
				return err
			}
		}
	}

	return a.pressEnter()
}

func (a *App) toggleLike(ctx context.Context, postID int, me string) error {
	updated, err := a.c.Posts.ToggleLike(ctx, postID, me)
	if errors.Is(err, post.ErrPostNotFound) {
		fmt.Fprintln(a.out, "   That post no longer exists.")
		return nil
	}
	if err != nil {
		return err
	}
	if updated.LikedBy(me) {
		fmt.Fprintln(a.out, "   Post liked!")
	} else {
		fmt.Fprintln(a.out, "   Like removed.")
	}
	return nil
}

func (a *App) commentOn(ctx context.Context, postID int, me string) error {
	text, err := a.line("\n   Your comment (max 200 characters): ")
	if err != nil {
		return err
	}

	_, err = a.c.Posts.AddComment(ctx, postID, me, text)
	switch {
	case errors.Is(err, post.ErrCommentTooShort):
		fmt.Fprintln(a.out, "   Comment too short.")
	case errors.Is(err, post.ErrPostNotFound):
		fmt.Fprintln(a.out, "   That post no longer exists.")
	case err != nil:
		return err
	default:
		fmt.Fprintln(a.out, "   Comment added!")
	}
	return nil
}

func (a *App) deletePost(ctx context.Context, postID int) error {
	sure, err := a.in.Confirm("   Are you sure?")
	if err != nil {
		return err
	}
	if !sure {
		fmt.Fprintln(a.out, "   Deletion cancelled.")
		return nil
	}

	me, _ := a.c.Session.Current()
	if err := a.c.Posts.Delete(ctx, postID, me); err != nil {
		fmt.Fprintln(a.out, "   Could not delete:", err)
		return nil
	}
	fmt.Fprintln(a.out, "   Post deleted.")
	return nil
}

// newPost collects a multi-line post. An empty line asks whether to
// publish; typing CANCEL on its own line aborts. Input stops once the
// draft reaches the length cap.
func (a *App) newPost(ctx context.Context) error {
	clearScreen(a.out)
	header(a.out, "NEW POST")
	fmt.Fprintln(a.out, "\n(Max 500 characters)")
	fmt.Fprintln(a.out, "(Empty line to publish, CANCEL on its own line to abort)")
	fmt.Fprintln(a.out)

	// Body lines come through untrimmed so indentation survives; only a
	// genuinely empty line triggers the publish prompt.
	var lines []string
	for {
		line, err := a.in.Line("")
		if err != nil {
			return err
		}
		if strings.EqualFold(strings.TrimSpace(line), "CANCEL") {
			fmt.Fprintln(a.out, "Post cancelled.")
			return a.pressEnter()
		}
		if line == "" {
			publish, err := a.in.Confirm("Publish now?")
			if err != nil {
				return err
			}
			if publish {
				break
			}
			lines = append(lines, "")
			continue
		}
		lines = append(lines, line)
		if len(strings.Join(lines, "\n")) >= post.MaxContentLength {
			break
		}
	}

	me, _ := a.c.Session.Current()
	created, err := a.c.Posts.Create(ctx, me, strings.Join(lines, "\n"))
	if errors.Is(err, post.ErrContentTooShort) {
		fmt.Fprintln(a.out, "A post must have at least 5 characters.")
		return a.pressEnter()
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nPost #%d published!\n", created.ID)
	return a.pressEnter()
}
