package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nightowlapp/nightowl/internal/query"
)

func (a *App) register(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fullName, err := GetSimpleText(a.reader, "Full name (optional)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	nickname, err := GetSimpleText(a.reader, "Nickname (optional)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	md := map[string]string{}
	if fullName != "" {
		md["full_name"] = fullName
	}
	if nickname != "" {
		md["nickname"] = nickname
	}

	session, err := a.svc.SignUp(ctx, email, password, md)
	if err != nil {
		fmt.Fprintf(a.out, "Registration unsuccessful: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", session.User.Email)
}

func (a *App) login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	session, err := a.svc.SignIn(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", session.User.Email)
}

func (a *App) logout(ctx context.Context) {
	a.svc.SignOut(ctx)
	fmt.Fprintln(a.out, "Logged out")
}

func (a *App) whoami(ctx context.Context) {
	session := a.svc.GetSession()
	if session == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	fmt.Fprintf(a.out, "%s (%s)\n", session.User.Email, session.User.ID)
}

func (a *App) showProfile(ctx context.Context) {
	state := a.syncer.Snapshot()
	switch {
	case state.Loading:
		fmt.Fprintln(a.out, "Loading...")
	case state.Error != "":
		fmt.Fprintln(a.out, state.Error)
	case state.Profile == nil:
		fmt.Fprintln(a.out, "Not logged in")
	default:
		p := state.Profile
		fmt.Fprintf(a.out, "Name:     %s\n", p.FullName)
		fmt.Fprintf(a.out, "Nickname: %s\n", p.Nickname)
		fmt.Fprintf(a.out, "Email:    %s\n", p.Email)
		if p.Bio != nil {
			fmt.Fprintf(a.out, "Bio:      %s\n", *p.Bio)
		}
		if p.Age != nil {
			fmt.Fprintf(a.out, "Age:      %d\n", *p.Age)
		}
		if p.Location != nil {
			fmt.Fprintf(a.out, "Location: %s\n", *p.Location)
		}
	}
}

// editProfile prompts for the editable fields; an empty answer keeps the
// current value.
func (a *App) editProfile(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}

	patch := query.ProfilePatch{}

	if v, err := GetSimpleText(a.reader, "Full name (empty to keep)", a.out); err == nil && v != "" {
		patch.FullName = &v
	}
	if v, err := GetSimpleText(a.reader, "Nickname (empty to keep)", a.out); err == nil && v != "" {
		patch.Nickname = &v
	}
	if v, err := GetSimpleText(a.reader, "Bio (empty to keep)", a.out); err == nil && v != "" {
		patch.Bio = &v
	}
	if v, err := GetSimpleText(a.reader, "Age (empty to keep)", a.out); err == nil && v != "" {
		age, convErr := strconv.Atoi(v)
		if convErr != nil {
			fmt.Fprintln(a.out, "Age must be a number")
			return
		}
		patch.Age = &age
	}
	if v, err := GetSimpleText(a.reader, "Location (empty to keep)", a.out); err == nil && v != "" {
		patch.Location = &v
	}

	if patch.IsZero() {
		fmt.Fprintln(a.out, "Nothing to update")
		return
	}

	if err := a.syncer.Update(ctx, patch); err != nil {
		fmt.Fprintf(a.out, "Update unsuccessful: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Profile updated")
}
