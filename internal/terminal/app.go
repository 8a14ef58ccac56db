package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"pronet/internal/config"
	"pronet/internal/domains/user"
	"pronet/pkg/container"
)

// errQuit unwinds the menu loops when the user chooses to exit.
var errQuit = errors.New("quit")

// App drives the interactive session: one strict request/response loop,
// one actor. All engine access goes through the container services; the
// app itself only prompts, renders and retries.
type App struct {
	cfg *config.Config
	c   *container.Container
	in  Prompter
	out io.Writer
}

func New(c *container.Container, in Prompter, out io.Writer) *App {
	return &App{
		cfg: c.Config,
		c:   c,
		in:  in,
		out: out,
	}
}

// Run blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.welcome()

	for {
		var err error
		if a.c.Session.IsAuthenticated() {
			err = a.memberMenu(ctx)
		} else {
			err = a.anonymousMenu(ctx)
		}
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out, "\nThanks for using", a.cfg.App.Name+". See you soon!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) welcome() {
	clearScreen(a.out)
	divider(a.out)
	fmt.Fprintf(a.out, "  Welcome to %s - your professional network\n", a.cfg.App.Name)
	divider(a.out)
	fmt.Fprintln(a.out)
}

// anonymousMenu handles one round of the unauthenticated menu.
func (a *App) anonymousMenu(ctx context.Context) error {
	clearScreen(a.out)
	header(a.out, a.cfg.App.Name)
	a.degradedBanner()
	fmt.Fprintln(a.out, "\n1 - Register")
	fmt.Fprintln(a.out, "2 - Login")
	fmt.Fprintln(a.out, "3 - Exit")

	choice, err := a.line("\nChoose an option: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return a.register(ctx)
	case "2":
		return a.login(ctx)
	case "3":
		return errQuit
	default:
		fmt.Fprintln(a.out, "Invalid option.")
		return a.pressEnter()
	}
}

// memberMenu handles one round of the authenticated menu.
func (a *App) memberMenu(ctx context.Context) error {
	me, _ := a.c.Session.Current()
	current, err := a.c.Users.Get(ctx, me)
	if err != nil {
		return err
	}

	clearScreen(a.out)
	header(a.out, fmt.Sprintf("%s - welcome, %s", a.cfg.App.Name, current.Name))
	a.degradedBanner()
	fmt.Fprintln(a.out, "\n1 - My profile")
	fmt.Fprintln(a.out, "2 - Search members")
	fmt.Fprintln(a.out, "3 - Browse all members")
	fmt.Fprintln(a.out, "4 - My connections")
	fmt.Fprintln(a.out, "5 - Feed")
	fmt.Fprintln(a.out, "6 - New post")
	fmt.Fprintln(a.out, "7 - Logout")

	choice, err := a.line("\nChoose an option: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return a.profile(ctx, me)
	case "2":
		return a.search(ctx)
	case "3":
		return a.browseMembers(ctx)
	case "4":
		return a.connections(ctx)
	case "5":
		return a.feed(ctx)
	case "6":
		return a.newPost(ctx)
	case "7":
		return a.logout()
	default:
		fmt.Fprintln(a.out, "Invalid option.")
		return a.pressEnter()
	}
}

// register walks the signup flow, re-prompting each field until it
// passes. Validation failures never propagate - they are rendered and
// the same prompt is issued again.
func (a *App) register(ctx context.Context) error {
	clearScreen(a.out)
	header(a.out, "NEW MEMBER REGISTRATION")

	var req user.RegisterRequest

	for {
		username, err := a.line("\nUsername: ")
		if err != nil {
			return err
		}
		if ok, reason := user.ValidateUsername(username); !ok {
			fmt.Fprintln(a.out, reason)
			continue
		}
		if _, err := a.c.Users.Get(ctx, username); err == nil {
			fmt.Fprintln(a.out, "Username already taken, try another.")
			continue
		}
		req.Username = username
		break
	}

	for {
		email, err := a.line("\nEmail: ")
		if err != nil {
			return err
		}
		if !user.ValidateEmail(email) {
			fmt.Fprintln(a.out, "Invalid email, use the form you@example.com")
			continue
		}
		if taken, _ := a.c.Users.EmailInUse(ctx, email); taken {
			fmt.Fprintln(a.out, "Email already registered.")
			continue
		}
		req.Email = email
		break
	}

	for {
		password, err := a.line("\nPassword: ")
		if err != nil {
			return err
		}
		if ok, reason := user.ValidatePassword(password); !ok {
			fmt.Fprintln(a.out, reason)
			fmt.Fprintln(a.out, "Requirements: at least 6 characters, 1 uppercase, 1 number")
			continue
		}
		confirmation, err := a.line("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirmation {
			fmt.Fprintln(a.out, "Passwords do not match.")
			continue
		}
		req.Password = password
		break
	}

	for {
		name, err := a.line("\nFull name: ")
		if err != nil {
			return err
		}
		if len([]rune(name)) < 3 {
			fmt.Fprintln(a.out, "Name must have at least 3 characters.")
			continue
		}
		req.Name = name
		break
	}

	title, err := a.line("Professional title (e.g. Software Developer): ")
	if err != nil {
		return err
	}
	req.Title = title

	bio, err := a.line("Bio (max 200 characters): ")
	if err != nil {
		return err
	}
	req.Bio = bio

	created, err := a.c.Users.Register(ctx, req)
	if err != nil {
		fmt.Fprintln(a.out, "Registration failed:", err)
		return a.pressEnter()
	}

	fmt.Fprintf(a.out, "\nRegistration complete. Welcome, %s!\n", created.Name)
	return a.pressEnter()
}

func (a *App) login(ctx context.Context) error {
	clearScreen(a.out)
	header(a.out, "LOGIN")

	username, err := a.line("\nUsername: ")
	if err != nil {
		return err
	}
	password, err := a.line("Password: ")
	if err != nil {
		return err
	}

	u, err := a.c.Users.Authenticate(ctx, username, password)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		fmt.Fprintln(a.out, "User not found.")
		return a.pressEnter()
	case errors.Is(err, user.ErrWrongPassword):
		fmt.Fprintln(a.out, "Wrong password.")
		return a.pressEnter()
	case err != nil:
		return err
	}

	a.c.Session.Login(u.Username)
	fmt.Fprintf(a.out, "\nWelcome back, %s!\n", u.Name)
	return a.pressEnter()
}

func (a *App) logout() error {
	sure, err := a.in.Confirm("\nAre you sure you want to log out?")
	if err != nil {
		return err
	}
	if !sure {
		return nil
	}

	me, _ := a.c.Session.Current()
	a.c.Session.Logout()
	fmt.Fprintf(a.out, "\nGoodbye, @%s!\n", me)
	return a.pressEnter()
}

// degradedBanner warns when the last write-through save failed and the
// session is running on in-memory state only.
func (a *App) degradedBanner() {
	if a.c.Coordinator.Degraded() {
		fmt.Fprintln(a.out, "!! WARNING: storage is unavailable, recent changes may not be saved")
	}
}

// line prompts for one trimmed field. The post composer is the only
// flow that reads the prompter directly, because there raw whitespace
// is meaningful.
func (a *App) line(label string) (string, error) {
	s, err := a.in.Line(label)
	return strings.TrimSpace(s), err
}

func (a *App) pressEnter() error {
	_, err := a.in.Line("\nPress ENTER to continue...")
	return err
}
