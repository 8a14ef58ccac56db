package terminal

import (
	"context"
	"errors"
	"fmt"

	"pronet/internal/domains/user"
)

// profile renders a member profile. The owner gets an edit submenu;
// anyone else gets an offer to connect.
func (a *App) profile(ctx context.Context, username string) error {
	u, err := a.c.Users.Get(ctx, username)
	if errors.Is(err, user.ErrUserNotFound) {
		fmt.Fprintln(a.out, "User not found.")
		return a.pressEnter()
	}
	if err != nil {
		return err
	}

	conns, err := a.c.Connections.ConnectionsOf(ctx, u.Username)
	if err != nil {
		return err
	}

	clearScreen(a.out)
	header(a.out, "MEMBER PROFILE")
	fmt.Fprintf(a.out, "\nName:  %s (@%s)\n", u.Name, u.Username)
	fmt.Fprintf(a.out, "Email: %s\n", u.Email)
	fmt.Fprintf(a.out, "Title: %s\n", u.Title)
	fmt.Fprintf(a.out, "Bio:   %s\n", u.Bio)
	fmt.Fprintf(a.out, "Member since: %s\n", u.CreatedAt.Format("02/01/2006 15:04"))
	fmt.Fprintf(a.out, "\nConnections: %d\n", len(conns))
	fmt.Fprintf(a.out, "Followers:   %d\n", len(u.Followers))
	fmt.Fprintf(a.out, "Following:   %d\n", len(u.Following))

	// Recent posts come from the per-author index.
	posts, err := a.c.Posts.PostsByAuthor(ctx, u.Username)
	if err != nil {
		return err
	}
	if len(posts) > 0 {
		fmt.Fprintf(a.out, "\nRecent posts (%d total):\n", len(posts))
		for i, p := range posts {
			if i == 3 {
				break
			}
			renderPost(a.out, i+1, p)
		}
	}

	me, _ := a.c.Session.Current()
	if u.Username == me {
		return a.editProfileMenu(ctx)
	}
	return a.offerConnection(ctx, u.Username)
}

func (a *App) editProfileMenu(ctx context.Context) error {
	rule(a.out)
	fmt.Fprintln(a.out, "1 - Edit profile")
	fmt.Fprintln(a.out, "2 - Back")

	choice, err := a.line("\nChoose an option: ")
	if err != nil {
		return err
	}
	if choice != "1" {
		return nil
	}
	return a.editProfile(ctx)
}

// editProfile updates title or bio. Blank input leaves the field
// unchanged.
func (a *App) editProfile(ctx context.Context) error {
	me, _ := a.c.Session.Current()
	u, err := a.c.Users.Get(ctx, me)
	if err != nil {
		return err
	}

	clearScreen(a.out)
	header(a.out, "EDIT PROFILE")
	fmt.Fprintf(a.out, "\n1 - Professional title: %s\n", u.Title)
	fmt.Fprintf(a.out, "2 - Bio: %s\n", u.Bio)
	fmt.Fprintln(a.out, "3 - Back")

	choice, err := a.line("\nWhat do you want to edit? ")
	if err != nil {
		return err
	}

	var req user.UpdateProfileRequest
	switch choice {
	case "1":
		title, err := a.line("\nNew professional title: ")
		if err != nil {
			return err
		}
		req.Title = title
	case "2":
		bio, err := a.line("\nNew bio (max 200 characters): ")
		if err != nil {
			return err
		}
		req.Bio = bio
	default:
		return nil
	}

	if _, err := a.c.Users.UpdateProfile(ctx, me, req); err != nil {
		fmt.Fprintln(a.out, "Update failed:", err)
	} else {
		fmt.Fprintln(a.out, "Profile updated.")
	}
	return a.pressEnter()
}

// search looks members up by name or username. A single foreign match
// gets a connect offer, mirroring how people actually use the screen.
func (a *App) search(ctx context.Context) error {
	clearScreen(a.out)
	header(a.out, "SEARCH MEMBERS")

	term, err := a.line("\nName or username to search: ")
	if err != nil {
		return err
	}
	if term == "" {
		fmt.Fprintln(a.out, "Type something to search for.")
		return a.pressEnter()
	}

	results, err := a.c.Users.Search(ctx, term)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintf(a.out, "\nNo members found matching %q.\n", term)
		return a.pressEnter()
	}

	fmt.Fprintf(a.out, "\n%d member(s) found:\n\n", len(results))
	for i, u := range results {
		renderUserLine(a.out, i+1, u)
	}

	me, _ := a.c.Session.Current()
	if len(results) == 1 && results[0].Username != me {
		return a.offerConnection(ctx, results[0].Username)
	}
	return a.pressEnter()
}

// offerConnection proposes a connection unless one already exists.
func (a *App) offerConnection(ctx context.Context, target string) error {
	me, _ := a.c.Session.Current()
	if target == me {
		return nil
	}
	if connected, _ := a.c.Connections.Connected(ctx, me, target); connected {
		fmt.Fprintln(a.out, "\nYou are already connected.")
		return a.pressEnter()
	}

	want, err := a.in.Confirm(fmt.Sprintf("\nConnect with @%s?", target))
	if err != nil {
		return err
	}
	if !want {
		return nil
	}

	if err := a.c.Connections.Connect(ctx, me, target); err != nil {
		fmt.Fprintln(a.out, "Could not connect:", err)
	} else {
		fmt.Fprintln(a.out, "Connection added!")
	}
	return a.pressEnter()
}

// connections lists the current user's connections with their titles
// and connection counts.
func (a *App) connections(ctx context.Context) error {
	me, _ := a.c.Session.Current()
	conns, err := a.c.Connections.ConnectionsOf(ctx, me)
	if err != nil {
		return err
	}

	clearScreen(a.out)
	header(a.out, "MY CONNECTIONS")

	if len(conns) == 0 {
		fmt.Fprintln(a.out, "\nYou have no connections yet.")
		fmt.Fprintln(a.out, "Use the member search to meet people!")
		return a.pressEnter()
	}

	fmt.Fprintf(a.out, "\nYou have %d connection(s):\n\n", len(conns))
	for i, username := range conns {
		u, err := a.c.Users.Get(ctx, username)
		if err != nil {
			continue
		}
		theirConns, _ := a.c.Connections.ConnectionsOf(ctx, username)
		fmt.Fprintf(a.out, "%d. %s (@%s)\n", i+1, u.Name, u.Username)
		fmt.Fprintf(a.out, "   %s\n", u.Title)
		fmt.Fprintf(a.out, "   %d connection(s)\n\n", len(theirConns))
	}
	return a.pressEnter()
}
