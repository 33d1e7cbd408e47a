package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/asemenova/toolshare/internal/client/models"
)

func TestToolDetailView_ShowsToolAndReviews(t *testing.T) {
	backend := &fakeBackend{
		tool: &models.Tool{ID: 12, Name: "Cordless drill", Status: models.ToolAvailable, Location: "Shed 4"},
		reviews: []models.Review{
			{Rating: 5, ReviewerNickname: "Alice", Content: "great tool"},
		},
	}
	a, out := newDispatchApp(&fakeSessionService{}, backend, &fakeGuard{})

	if err := a.toolDetailView(context.Background(), []string{"12"}); err != nil {
		t.Fatalf("toolDetailView err: %v", err)
	}
	if backend.calls[0] != "GetTool(12)" || backend.calls[1] != "ToolReviews(12)" {
		t.Fatalf("calls: %v", backend.calls)
	}
	if !strings.Contains(out.String(), "Cordless drill") || !strings.Contains(out.String(), "great tool") {
		t.Fatalf("output: %q", out.String())
	}
}

func TestToolDetailView_BorrowRequiresLogin(t *testing.T) {
	backend := &fakeBackend{}
	a, out := newDispatchApp(&fakeSessionService{}, backend, &fakeGuard{})

	if err := a.toolDetailView(context.Background(), []string{"12", "borrow"}); err != nil {
		t.Fatalf("toolDetailView err: %v", err)
	}
	if len(backend.calls) != 0 {
		t.Fatalf("anonymous borrow must not hit the server: %v", backend.calls)
	}
	if !strings.Contains(out.String(), "Please log in before borrowing.") {
		t.Fatalf("output: %q", out.String())
	}
}

func TestToolDetailView_BorrowFilesRequest(t *testing.T) {
	backend := &fakeBackend{}
	a, out := newDispatchApp(&fakeSessionService{loggedIn: true}, backend, &fakeGuard{})

	args := []string{"12", "borrow", "need", "it", "saturday"}
	if err := a.toolDetailView(context.Background(), args); err != nil {
		t.Fatalf("toolDetailView err: %v", err)
	}
	if len(backend.calls) != 1 || backend.calls[0] != "ApplyBorrow(12)" {
		t.Fatalf("calls: %v", backend.calls)
	}
	if !strings.Contains(out.String(), "Borrow request #7 filed") {
		t.Fatalf("output: %q", out.String())
	}
}

func TestToolDetailView_BadID(t *testing.T) {
	a, _ := newDispatchApp(&fakeSessionService{}, &fakeBackend{}, &fakeGuard{})
	if err := a.toolDetailView(context.Background(), nil); err == nil {
		t.Fatalf("want usage error without id")
	}
	if err := a.toolDetailView(context.Background(), []string{"twelve"}); err == nil {
		t.Fatalf("want usage error for non-numeric id")
	}
}

func TestHomeView_UnreadReminderOnlyWhenSignedIn(t *testing.T) {
	backend := &fakeBackend{unread: 3}
	a, _ := newDispatchApp(&fakeSessionService{}, backend, &fakeGuard{})

	if err := a.homeView(context.Background(), nil); err != nil {
		t.Fatalf("homeView err: %v", err)
	}
	for _, c := range backend.calls {
		if c == "UnreadCount" {
			t.Fatalf("anonymous home must not query notifications: %v", backend.calls)
		}
	}

	backend2 := &fakeBackend{unread: 3}
	a2, out2 := newDispatchApp(&fakeSessionService{loggedIn: true}, backend2, &fakeGuard{})
	if err := a2.homeView(context.Background(), nil); err != nil {
		t.Fatalf("homeView err: %v", err)
	}
	if !strings.Contains(out2.String(), "3 unread notification(s)") {
		t.Fatalf("output: %q", out2.String())
	}
}

func TestBorrowsView_Transitions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "pickup", args: []string{"pickup", "5"}, want: "PickupBorrow(5)"},
		{name: "return", args: []string{"return", "5"}, want: "ReturnBorrow(5)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{}
			a, _ := newDispatchApp(&fakeSessionService{loggedIn: true}, backend, &fakeGuard{})
			if err := a.borrowsView(context.Background(), tt.args); err != nil {
				t.Fatalf("borrowsView err: %v", err)
			}
			if len(backend.calls) != 1 || backend.calls[0] != tt.want {
				t.Fatalf("calls: %v, want %s", backend.calls, tt.want)
			}
		})
	}
}

func TestBorrowsView_ReviewPrompts(t *testing.T) {
	backend := &fakeBackend{}
	a, out := newDispatchApp(&fakeSessionService{loggedIn: true}, backend, &fakeGuard{})
	stubInputs(t, []string{"5"}, nil)
	// GetMultiline reads from a.reader directly
	a.reader = bufio.NewReader(strings.NewReader("lovely drill\n\n"))

	if err := a.borrowsView(context.Background(), []string{"review", "9"}); err != nil {
		t.Fatalf("borrowsView err: %v", err)
	}
	if len(backend.calls) != 1 || backend.calls[0] != "CreateReview(9,5)" {
		t.Fatalf("calls: %v", backend.calls)
	}
	if !strings.Contains(out.String(), "Thanks for the review!") {
		t.Fatalf("output: %q", out.String())
	}
}

func TestBorrowsView_ReviewRejectsBadRating(t *testing.T) {
	backend := &fakeBackend{}
	a, out := newDispatchApp(&fakeSessionService{loggedIn: true}, backend, &fakeGuard{})
	stubInputs(t, []string{"11"}, nil)

	if err := a.borrowsView(context.Background(), []string{"review", "9"}); err != nil {
		t.Fatalf("borrowsView err: %v", err)
	}
	if len(backend.calls) != 0 {
		t.Fatalf("invalid rating must not reach the server: %v", backend.calls)
	}
	if !strings.Contains(out.String(), "Rating must be a number from 1 to 5.") {
		t.Fatalf("output: %q", out.String())
	}
}

func TestRequestsView_ApproveReject(t *testing.T) {
	backend := &fakeBackend{}
	a, _ := newDispatchApp(&fakeSessionService{loggedIn: true}, backend, &fakeGuard{})

	if err := a.requestsView(context.Background(), []string{"approve", "3"}); err != nil {
		t.Fatalf("requestsView err: %v", err)
	}
	if err := a.requestsView(context.Background(), []string{"reject", "4"}); err != nil {
		t.Fatalf("requestsView err: %v", err)
	}
	if backend.calls[0] != "ApproveBorrow(3)" || backend.calls[1] != "RejectBorrow(4)" {
		t.Fatalf("calls: %v", backend.calls)
	}
}

func TestNotificationsView_ReadCommands(t *testing.T) {
	backend := &fakeBackend{}
	a, _ := newDispatchApp(&fakeSessionService{loggedIn: true}, backend, &fakeGuard{})

	if err := a.notificationsView(context.Background(), []string{"read", "8"}); err != nil {
		t.Fatalf("notificationsView err: %v", err)
	}
	if err := a.notificationsView(context.Background(), []string{"read-all"}); err != nil {
		t.Fatalf("notificationsView err: %v", err)
	}
	if backend.calls[0] != "MarkNotificationRead(8)" || backend.calls[1] != "MarkAllNotificationsRead" {
		t.Fatalf("calls: %v", backend.calls)
	}
}

func TestUsersView_EnableDisable(t *testing.T) {
	backend := &fakeBackend{}
	a, _ := newDispatchApp(&fakeSessionService{loggedIn: true, admin: true}, backend, &fakeGuard{})

	if err := a.usersView(context.Background(), []string{"disable", "2"}); err != nil {
		t.Fatalf("usersView err: %v", err)
	}
	if err := a.usersView(context.Background(), []string{"enable", "2"}); err != nil {
		t.Fatalf("usersView err: %v", err)
	}
	if backend.calls[0] != "UpdateUserStatus(2,0)" || backend.calls[1] != "UpdateUserStatus(2,1)" {
		t.Fatalf("calls: %v", backend.calls)
	}
}

func TestAuditView_RejectNeedsReason(t *testing.T) {
	backend := &fakeBackend{}
	a, out := newDispatchApp(&fakeSessionService{loggedIn: true, admin: true}, backend, &fakeGuard{})

	if err := a.auditView(context.Background(), []string{"reject", "6"}); err != nil {
		t.Fatalf("auditView err: %v", err)
	}
	if len(backend.calls) != 0 {
		t.Fatalf("reject without reason must not reach the server: %v", backend.calls)
	}
	if !strings.Contains(out.String(), "needs a reason") {
		t.Fatalf("output: %q", out.String())
	}

	if err := a.auditView(context.Background(), []string{"reject", "6", "poor", "photos"}); err != nil {
		t.Fatalf("auditView err: %v", err)
	}
	if len(backend.calls) != 1 || backend.calls[0] != "AuditTool(6,reject)" {
		t.Fatalf("calls: %v", backend.calls)
	}
}

func TestAuditView_ApproveAndOffline(t *testing.T) {
	backend := &fakeBackend{}
	a, _ := newDispatchApp(&fakeSessionService{loggedIn: true, admin: true}, backend, &fakeGuard{})

	if err := a.auditView(context.Background(), []string{"approve", "6"}); err != nil {
		t.Fatalf("auditView err: %v", err)
	}
	if err := a.auditView(context.Background(), []string{"offline", "7"}); err != nil {
		t.Fatalf("auditView err: %v", err)
	}
	if backend.calls[0] != "AuditTool(6,approve)" || backend.calls[1] != "OfflineTool(7)" {
		t.Fatalf("calls: %v", backend.calls)
	}
}

func TestProfileView_EditSendsUpdate(t *testing.T) {
	sess := &fakeSessionService{loggedIn: true}
	a, out := newDispatchApp(sess, &fakeBackend{}, &fakeGuard{})
	stubInputs(t, []string{"New Nick", "555-0101"}, nil)

	if err := a.profileView(context.Background(), []string{"edit"}); err != nil {
		t.Fatalf("profileView err: %v", err)
	}
	if len(sess.updates) != 1 {
		t.Fatalf("want 1 update, got %d", len(sess.updates))
	}
	if sess.updates[0].Nickname != "New Nick" || sess.updates[0].Phone != "555-0101" {
		t.Fatalf("update mismatch: %+v", sess.updates[0])
	}
	if !strings.Contains(out.String(), "Profile updated.") {
		t.Fatalf("output: %q", out.String())
	}
}

func TestProfileView_EditWithNoChanges(t *testing.T) {
	sess := &fakeSessionService{loggedIn: true}
	a, out := newDispatchApp(sess, &fakeBackend{}, &fakeGuard{})
	stubInputs(t, []string{"", ""}, nil)

	if err := a.profileView(context.Background(), []string{"edit"}); err != nil {
		t.Fatalf("profileView err: %v", err)
	}
	if len(sess.updates) != 0 {
		t.Fatalf("empty edit must not send an update: %+v", sess.updates)
	}
	if !strings.Contains(out.String(), "Nothing to change.") {
		t.Fatalf("output: %q", out.String())
	}
}
