// Package cli is the interactive shell of the toolshare client. Each
// command corresponds to a navigable view; every view switch runs through
// the navigation guard first, so protected and admin views behave exactly
// like their web counterparts: anonymous users are routed through login and
// returned to where they were headed, non-admins are bounced home, and an
// expired session drops the user back at the login prompt.
package cli
