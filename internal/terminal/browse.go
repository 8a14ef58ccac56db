package terminal

import (
	"context"
	"fmt"
	"strconv"

	"pronet/internal/shared/pagination"
)

// browseMembers pages through the whole directory, a fixed number of
// records per page. Navigation: n(ext), p(revious), a global record
// number to open a profile, x to leave.
func (a *App) browseMembers(ctx context.Context) error {
	members, err := a.c.Users.List(ctx)
	if err != nil {
		return err
	}

	pager := pagination.New(members, a.cfg.Feed.PageSize)

	for {
		clearScreen(a.out)
		header(a.out, "ALL MEMBERS")
		fmt.Fprintf(a.out, "\nPage %d of %d (%d members)\n\n",
			pager.PageIndex()+1, pager.PageCount(), pager.Total())

		start, _ := pager.Bounds()
		for i, u := range pager.Page() {
			renderUserLine(a.out, start+i+1, u)
		}

		rule(a.out)
		fmt.Fprintln(a.out, "n - next page | p - previous page | number - view profile | x - back")

		choice, err := a.line("\nChoose: ")
		if err != nil {
			return err
		}

		switch choice {
		case "n":
			if !pager.Next() {
				fmt.Fprintln(a.out, "Already on the last page.")
				if err := a.pressEnter(); err != nil {
					return err
				}
			}
		case "p":
			if !pager.Prev() {
				fmt.Fprintln(a.out, "Already on the first page.")
				if err := a.pressEnter(); err != nil {
					return err
				}
			}
		case "x", "":
			return nil
		default:
			n, convErr := strconv.Atoi(choice)
			if convErr != nil {
				fmt.Fprintln(a.out, "Invalid option.")
				if err := a.pressEnter(); err != nil {
					return err
				}
				continue
			}
			selected, ok := pager.Select(n)
			if !ok {
				fmt.Fprintf(a.out, "No member with number %d.\n", n)
				if err := a.pressEnter(); err != nil {
					return err
				}
				continue
			}
			if err := a.profile(ctx, selected.Username); err != nil {
				return err
			}
		}
	}
}
