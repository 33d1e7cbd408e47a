package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/asemenova/toolshare/internal/client/api"
)

// homeView shows the public landing page: current announcements, and for
// signed-in users an unread-notification reminder.
func (a *App) homeView(ctx context.Context, _ []string) error {
	items, err := a.backend.PublicAnnouncements(ctx)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No announcements.")
	} else {
		fmt.Fprintln(a.out, "Announcements:")
		for _, it := range items {
			fmt.Fprintf(a.out, "  [%s] %s\n", fmtTime(it.CreateTime), it.Title)
			if it.Content != "" {
				fmt.Fprintf(a.out, "      %s\n", truncate(it.Content, 120))
			}
		}
	}

	if a.session.IsLoggedIn() {
		n, err := a.backend.UnreadCount(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			fmt.Fprintf(a.out, "You have %d unread notification(s). Type 'notifications' to read them.\n", n)
		}
	}
	return nil
}

// toolsView browses the catalog. Optional arguments filter the listing:
// the first is a keyword, the second a category.
func (a *App) toolsView(ctx context.Context, args []string) error {
	var q api.ToolQuery
	if len(args) > 0 {
		q.Keyword = args[0]
	}
	if len(args) > 1 {
		q.Category = args[1]
	}

	tools, err := a.backend.ListTools(ctx, q)
	if err != nil {
		return err
	}
	if len(tools) == 0 {
		fmt.Fprintln(a.out, "No tools found.")
		return nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSTATUS\tLOCATION\tOWNER")
	for _, t := range tools {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Name, t.Category, t.Status, t.Location, t.OwnerNickname)
	}
	return w.Flush()
}

// toolDetailView shows one listing with its reviews. With the "borrow"
// subcommand it files a borrow request instead:
//
//	tool <id>
//	tool <id> borrow [remark...]
func (a *App) toolDetailView(ctx context.Context, args []string) error {
	id, err := parseID(args, "tool <id> [borrow [remark...]]")
	if err != nil {
		return err
	}

	if len(args) > 1 && args[1] == "borrow" {
		return a.borrowTool(ctx, id, strings.Join(args[2:], " "))
	}

	tool, err := a.backend.GetTool(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "#%d %s (%s)\n", tool.ID, tool.Name, tool.Status)
	if tool.Description != "" {
		fmt.Fprintln(a.out, tool.Description)
	}
	fmt.Fprintf(a.out, "Category: %s  Condition: %s  Location: %s\n",
		tool.Category, tool.ToolCondition, tool.Location)
	if tool.OwnerNickname != "" {
		fmt.Fprintln(a.out, "Owner:", tool.OwnerNickname)
	}

	reviews, err := a.backend.ToolReviews(ctx, id)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		fmt.Fprintln(a.out, "No reviews yet.")
		return nil
	}
	fmt.Fprintln(a.out, "Reviews:")
	for _, r := range reviews {
		fmt.Fprintf(a.out, "  %s %s: %s\n", stars(r.Rating), r.ReviewerNickname, truncate(r.Content, 100))
	}
	return nil
}

func (a *App) borrowTool(ctx context.Context, toolID int64, remark string) error {
	if !a.session.IsLoggedIn() {
		fmt.Fprintln(a.out, "Please log in before borrowing.")
		return nil
	}
	rec, err := a.backend.ApplyBorrow(ctx, api.BorrowApplication{ToolID: toolID, Remark: remark})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Borrow request #%d filed; waiting for the owner's approval.\n", rec.ID)
	return nil
}

// rankingsView prints the community points leaderboard.
func (a *App) rankingsView(ctx context.Context, _ []string) error {
	users, err := a.backend.PointsRanking(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No rankings yet.")
		return nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "RANK\tMEMBER\tPOINTS")
	for i, u := range users {
		name := u.Nickname
		if name == "" {
			name = u.Username
		}
		fmt.Fprintf(w, "%d\t%s\t%d\n", i+1, name, u.Points)
	}
	return w.Flush()
}
