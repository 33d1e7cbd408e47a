package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/asemenova/toolshare/internal/client/api"
)

// publishView interactively creates a listing. New listings enter the
// audit queue; they become visible once an administrator approves them.
func (a *App) publishView(ctx context.Context, _ []string) error {
	name, err := getSimpleText(a.reader, "Tool name", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Fprintln(a.out, "A name is required.")
		return nil
	}
	description, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category", a.out)
	if err != nil {
		return err
	}
	condition, err := getSimpleText(a.reader, "Condition (e.g. like new, worn)", a.out)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Pickup location", a.out)
	if err != nil {
		return err
	}

	tool, err := a.backend.PublishTool(ctx, api.ToolRequest{
		Name:          name,
		Description:   description,
		Category:      category,
		ToolCondition: condition,
		Location:      location,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Listing #%d submitted for review.\n", tool.ID)
	return nil
}

// myToolsView manages the caller's own listings:
//
//	my-tools
//	my-tools edit <id>
//	my-tools delete <id>
func (a *App) myToolsView(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "edit":
			id, err := parseID(args[1:], "my-tools edit <id>")
			if err != nil {
				return err
			}
			return a.editTool(ctx, id)
		case "delete":
			id, err := parseID(args[1:], "my-tools delete <id>")
			if err != nil {
				return err
			}
			if err := a.backend.DeleteTool(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Listing #%d deleted.\n", id)
			return nil
		}
	}

	tools, err := a.backend.MyTools(ctx)
	if err != nil {
		return err
	}
	if len(tools) == 0 {
		fmt.Fprintln(a.out, "You have no listings. Type 'publish' to share a tool.")
		return nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSTATUS\tCREATED")
	for _, t := range tools {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Category, t.Status, fmtTime(t.CreateTime))
	}
	return w.Flush()
}

func (a *App) editTool(ctx context.Context, id int64) error {
	current, err := a.backend.GetTool(ctx, id)
	if err != nil {
		return err
	}

	// empty input keeps the current value
	prompt := func(label, cur string) (string, error) {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, cur), a.out)
		if err != nil {
			return "", err
		}
		if v == "" {
			return cur, nil
		}
		return v, nil
	}

	req := api.ToolRequest{Images: current.Images}
	if req.Name, err = prompt("Tool name", current.Name); err != nil {
		return err
	}
	if req.Description, err = prompt("Description", current.Description); err != nil {
		return err
	}
	if req.Category, err = prompt("Category", current.Category); err != nil {
		return err
	}
	if req.ToolCondition, err = prompt("Condition", current.ToolCondition); err != nil {
		return err
	}
	if req.Location, err = prompt("Pickup location", current.Location); err != nil {
		return err
	}

	if err := a.backend.UpdateTool(ctx, id, req); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Listing #%d updated; it goes back through review.\n", id)
	return nil
}

// borrowsView tracks requests the user filed as a borrower:
//
//	borrows
//	borrows pickup <id>
//	borrows return <id>
//	borrows review <id>
func (a *App) borrowsView(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "pickup":
			id, err := parseID(args[1:], "borrows pickup <id>")
			if err != nil {
				return err
			}
			if err := a.backend.PickupBorrow(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Marked as picked up. Enjoy!")
			return nil
		case "return":
			id, err := parseID(args[1:], "borrows return <id>")
			if err != nil {
				return err
			}
			if err := a.backend.ReturnBorrow(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Marked as returned. You can leave a review with 'borrows review <id>'.")
			return nil
		case "review":
			id, err := parseID(args[1:], "borrows review <id>")
			if err != nil {
				return err
			}
			return a.reviewBorrow(ctx, id)
		}
	}

	recs, err := a.backend.MyBorrows(ctx)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "You have no borrow requests.")
		return nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tTOOL\tOWNER\tSTATUS\tAPPLIED")
	for _, r := range recs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.ID, r.ToolName, r.OwnerNickname, r.Status, fmtTime(r.ApplyTime))
	}
	return w.Flush()
}

func (a *App) reviewBorrow(ctx context.Context, recordID int64) error {
	ratingStr, err := getSimpleText(a.reader, "Rating (1-5)", a.out)
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(ratingStr)
	if err != nil || rating < 1 || rating > 5 {
		fmt.Fprintln(a.out, "Rating must be a number from 1 to 5.")
		return nil
	}
	content, err := GetMultiline(a.reader, "Your review", a.out)
	if err != nil {
		return err
	}

	if _, err := a.backend.CreateReview(ctx, api.ReviewRequest{
		BorrowRecordID: recordID,
		Rating:         rating,
		Content:        content,
	}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Thanks for the review!")
	return nil
}

// requestsView handles requests filed against the user's tools:
//
//	requests
//	requests approve <id>
//	requests reject <id>
func (a *App) requestsView(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "approve":
			id, err := parseID(args[1:], "requests approve <id>")
			if err != nil {
				return err
			}
			if err := a.backend.ApproveBorrow(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Request approved; the borrower can pick the tool up.")
			return nil
		case "reject":
			id, err := parseID(args[1:], "requests reject <id>")
			if err != nil {
				return err
			}
			if err := a.backend.RejectBorrow(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Request rejected.")
			return nil
		}
	}

	recs, err := a.backend.ReceivedBorrows(ctx)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "No incoming borrow requests.")
		return nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tTOOL\tBORROWER\tSTATUS\tAPPLIED\tREMARK")
	for _, r := range recs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.ToolName, r.BorrowerNickname, r.Status, fmtTime(r.ApplyTime), truncate(r.Remark, 40))
	}
	return w.Flush()
}

// profileView shows and edits the user's own record:
//
//	profile
//	profile edit
//	profile points
//	profile reviews
func (a *App) profileView(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "edit":
			return a.editProfile(ctx)
		case "points":
			return a.pointsHistory(ctx)
		case "reviews":
			return a.myReviews(ctx)
		}
	}

	p := a.session.Profile()
	if p == nil {
		fmt.Fprintln(a.out, "Profile is not loaded yet.")
		return nil
	}
	fmt.Fprintf(a.out, "Username: %s\nNickname: %s\nPhone: %s\nRole: %s\nPoints: %d\n",
		p.Username, p.Nickname, p.Phone, p.Role, p.Points)
	return nil
}

func (a *App) editProfile(ctx context.Context) error {
	nickname, err := getSimpleText(a.reader, "New nickname (empty to keep)", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "New phone (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if nickname == "" && phone == "" {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}

	if err := a.session.UpdateProfile(ctx, api.ProfileUpdate{Nickname: nickname, Phone: phone}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

func (a *App) pointsHistory(ctx context.Context) error {
	recs, err := a.backend.MyPoints(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Current balance: %d point(s)\n", a.session.Points())
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "No point history yet.")
		return nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "WHEN\tPOINTS\tREASON")
	for _, r := range recs {
		fmt.Fprintf(w, "%s\t%+d\t%s\n", fmtTime(r.CreateTime), r.Points, r.Description)
	}
	return w.Flush()
}

func (a *App) myReviews(ctx context.Context) error {
	reviews, err := a.backend.MyReviews(ctx)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		fmt.Fprintln(a.out, "You have not written any reviews.")
		return nil
	}
	for _, r := range reviews {
		fmt.Fprintf(a.out, "%s tool #%d: %s\n", stars(r.Rating), r.ToolID, truncate(r.Content, 100))
	}
	return nil
}

// notificationsView lists the inbox:
//
//	notifications
//	notifications read <id>
//	notifications read-all
func (a *App) notificationsView(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "read":
			id, err := parseID(args[1:], "notifications read <id>")
			if err != nil {
				return err
			}
			if err := a.backend.MarkNotificationRead(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Marked as read.")
			return nil
		case "read-all":
			if err := a.backend.MarkAllNotificationsRead(ctx); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "All notifications marked as read.")
			return nil
		}
	}

	items, err := a.backend.Notifications(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No notifications.")
		return nil
	}
	for _, n := range items {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s #%d [%s] %s\n", marker, n.ID, fmtTime(n.CreateTime), n.Title)
		if n.Content != "" {
			fmt.Fprintf(a.out, "     %s\n", truncate(n.Content, 120))
		}
	}
	return nil
}
