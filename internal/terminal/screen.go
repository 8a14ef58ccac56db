package terminal

import (
	"fmt"
	"io"
	"strings"

	"pronet/internal/domains/post"
	"pronet/internal/domains/user"
	"pronet/internal/shared/utils"
)

const screenWidth = 60

// clearScreen resets the terminal. Harmless when the writer is not a
// real terminal (tests capture it as plain bytes).
func clearScreen(out io.Writer) {
	fmt.Fprint(out, "\033[H\033[2J")
}

func header(out io.Writer, title string) {
	divider(out)
	fmt.Fprintln(out, title)
	divider(out)
}

func divider(out io.Writer) {
	fmt.Fprintln(out, strings.Repeat("=", screenWidth))
}

func rule(out io.Writer) {
	fmt.Fprintln(out, strings.Repeat("-", screenWidth))
}

// renderUserLine prints one member row for search results and the
// paginated browse screen.
func renderUserLine(out io.Writer, index int, u *user.User) {
	fmt.Fprintf(out, "%d. %s (@%s)\n", index, u.Name, u.Username)
	fmt.Fprintf(out, "   %s\n", u.Title)
	fmt.Fprintf(out, "   %s\n\n", utils.Truncate(u.Bio, 50))
}

// renderPost prints a full feed entry including its comment thread.
func renderPost(out io.Writer, index int, p *post.Post) {
	rule(out)
	fmt.Fprintf(out, "%d. %s (@%s)\n", index, p.AuthorName, p.AuthorUsername)
	fmt.Fprintf(out, "   %s\n", p.CreatedAt.Format("02/01/2006 15:04"))
	fmt.Fprintf(out, "\n   %s\n\n", p.Content)
	fmt.Fprintf(out, "   Likes: %d | Comments: %d\n", p.LikeCount(), p.CommentCount())
	for _, c := range p.Comments {
		fmt.Fprintf(out, "     %s (@%s): %s\n", c.AuthorName, c.AuthorUsername, c.Text)
	}
}
