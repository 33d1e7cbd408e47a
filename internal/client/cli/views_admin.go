package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/asemenova/toolshare/internal/client/api"
	"github.com/asemenova/toolshare/internal/client/models"
)

// dashboardView prints the marketplace activity summary.
func (a *App) dashboardView(ctx context.Context, _ []string) error {
	stats, err := a.backend.Dashboard(ctx)
	if err != nil {
		return err
	}

	w := newTable(a.out)
	fmt.Fprintf(w, "Members\t%d\n", stats.TotalUsers)
	fmt.Fprintf(w, "Listings\t%d\n", stats.TotalTools)
	fmt.Fprintf(w, "Awaiting review\t%d\n", stats.PendingAuditCount)
	fmt.Fprintf(w, "Active borrows\t%d\n", stats.ActiveBorrows)
	fmt.Fprintf(w, "Borrows total\t%d\n", stats.TotalBorrows)
	return w.Flush()
}

// usersView manages member accounts:
//
//	users
//	users enable <id>
//	users disable <id>
func (a *App) usersView(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "enable":
			id, err := parseID(args[1:], "users enable <id>")
			if err != nil {
				return err
			}
			if err := a.backend.UpdateUserStatus(ctx, id, models.UserStatusActive); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "User #%d enabled.\n", id)
			return nil
		case "disable":
			id, err := parseID(args[1:], "users disable <id>")
			if err != nil {
				return err
			}
			if err := a.backend.UpdateUserStatus(ctx, id, models.UserStatusDisabled); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "User #%d disabled.\n", id)
			return nil
		}
	}

	users, err := a.backend.AdminUsers(ctx)
	if err != nil {
		return err
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tUSERNAME\tNICKNAME\tROLE\tPOINTS\tSTATUS")
	for _, u := range users {
		status := "active"
		if u.Status == models.UserStatusDisabled {
			status = "disabled"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", u.ID, u.Username, u.Nickname, u.Role, u.Points, status)
	}
	return w.Flush()
}

// auditView reviews listings:
//
//	audit
//	audit approve <id>
//	audit reject <id> [reason...]
//	audit offline <id>
func (a *App) auditView(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "approve":
			id, err := parseID(args[1:], "audit approve <id>")
			if err != nil {
				return err
			}
			if err := a.backend.AuditTool(ctx, id, api.AuditRequest{Action: "approve"}); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Listing #%d approved.\n", id)
			return nil
		case "reject":
			id, err := parseID(args[1:], "audit reject <id> [reason...]")
			if err != nil {
				return err
			}
			reason := strings.Join(args[2:], " ")
			if reason == "" {
				fmt.Fprintln(a.out, "A rejection needs a reason: audit reject <id> <reason...>")
				return nil
			}
			if err := a.backend.AuditTool(ctx, id, api.AuditRequest{Action: "reject", Reason: reason}); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Listing #%d rejected.\n", id)
			return nil
		case "offline":
			id, err := parseID(args[1:], "audit offline <id>")
			if err != nil {
				return err
			}
			if err := a.backend.OfflineTool(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Listing #%d taken offline.\n", id)
			return nil
		}
	}

	tools, err := a.backend.AdminTools(ctx)
	if err != nil {
		return err
	}
	if len(tools) == 0 {
		fmt.Fprintln(a.out, "No listings.")
		return nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tNAME\tOWNER\tSTATUS\tCREATED")
	for _, t := range tools {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.Name, t.OwnerNickname, t.Status, fmtTime(t.CreateTime))
	}
	return w.Flush()
}

// announcementsView manages site announcements:
//
//	announcements
//	announcements add
//	announcements edit <id>
//	announcements delete <id>
func (a *App) announcementsView(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "add":
			return a.addAnnouncement(ctx)
		case "edit":
			id, err := parseID(args[1:], "announcements edit <id>")
			if err != nil {
				return err
			}
			return a.editAnnouncement(ctx, id)
		case "delete":
			id, err := parseID(args[1:], "announcements delete <id>")
			if err != nil {
				return err
			}
			if err := a.backend.DeleteAnnouncement(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Announcement #%d deleted.\n", id)
			return nil
		}
	}

	items, err := a.backend.AdminAnnouncements(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No announcements.")
		return nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tTITLE\tCREATED\tUPDATED")
	for _, it := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", it.ID, it.Title, fmtTime(it.CreateTime), fmtTime(it.UpdateTime))
	}
	return w.Flush()
}

func (a *App) addAnnouncement(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Fprintln(a.out, "A title is required.")
		return nil
	}
	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}

	item, err := a.backend.CreateAnnouncement(ctx, api.AnnouncementRequest{Title: title, Content: content})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Announcement #%d published.\n", item.ID)
	return nil
}

func (a *App) editAnnouncement(ctx context.Context, id int64) error {
	title, err := getSimpleText(a.reader, "New title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Fprintln(a.out, "A title is required.")
		return nil
	}
	content, err := GetMultiline(a.reader, "New content", a.out)
	if err != nil {
		return err
	}

	if err := a.backend.UpdateAnnouncement(ctx, id, api.AnnouncementRequest{Title: title, Content: content}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Announcement #%d updated.\n", id)
	return nil
}
