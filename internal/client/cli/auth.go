package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/terrabond/terrabond-cli/internal/client/guard"
	"github.com/terrabond/terrabond-cli/internal/client/models"
	"github.com/terrabond/terrabond-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline
var getList = GetList

// Login prompts for credentials and authenticates against the auth service.
// A successful login moves the REPL to the feed; a rejected one prints the
// server's message and leaves the session untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	code, err := getSimpleText(a.reader, "2FA code (empty if disabled)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.LoginRequest{Email: email, Password: string(password), TwoFactorCode: code}
	if err := a.auth.Login(ctx, req); err != nil {
		printErr(err)
		return err
	}

	printlnFn("Logged in.")
	a.route = guard.RouteFeed
	return nil
}

// Register prompts for the registration form. The password is entered twice
// and must match before any request is sent, as on the signup page.
func (a *App) Register(ctx context.Context) error {
	req := models.RegisterRequest{}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Email", &req.Email},
		{"Username", &req.Username},
		{"First name", &req.FirstName},
		{"Last name", &req.LastName},
		{"Date of birth (YYYY-MM-DD)", &req.DateOfBirth},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	gender, err := getSimpleText(a.reader, "Gender (MALE/FEMALE/OTHER/PREFER_NOT_TO_SAY)", os.Stdout)
	if err != nil {
		return err
	}
	req.Gender = models.Gender(gender)

	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		printlnFn("Passwords do not match.")
		return fmt.Errorf("password confirmation mismatch")
	}
	req.Password = string(password)

	if err := a.auth.Register(ctx, req); err != nil {
		printErr(err)
		return err
	}

	printlnFn("Account created, you are now logged in.")
	a.route = guard.RouteFeed
	return nil
}

// Logout ends the session. The session manager notifies the server in the
// background and clears local state unconditionally; the navigator callback
// moves the REPL back to the login route.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the cached session user and, when the token carries an exp
// claim, the session expiry.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.auth.CurrentUser()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	printlnFn(fmt.Sprintf("%s <%s>", displayName(*u), u.Email))
	printlnFn("Roles:", rolesString(u.Roles))
	if u.TwoFactorEnabled {
		printlnFn("2FA: enabled")
	}
	if u.FaceVerified {
		printlnFn("Face verified: yes")
	}
	if exp, ok := a.auth.TokenExpiry(); ok {
		printlnFn("Session expires", exp.Format("02/01/2006 15:04"))
	}
	return nil
}

// TwoFactor toggles two-factor authentication and refreshes the cached user
// so the session snapshot reflects the new setting.
func (a *App) TwoFactor(ctx context.Context, enable bool) error {
	var (
		msg string
		err error
	)
	if enable {
		msg, err = a.authAPI.Enable2FA(ctx)
	} else {
		msg, err = a.authAPI.Disable2FA(ctx)
	}
	if err != nil {
		printErr(err)
		return err
	}
	printlnFn(msg)

	if u := a.auth.CurrentUser(); u != nil {
		u.TwoFactorEnabled = enable
		if err := a.auth.UpdateStoredUser(ctx, *u); err != nil {
			a.log.Warn(ctx, "persisting 2FA flag", "error", err)
		}
	}
	return nil
}

// RegisterFace submits a face encoding for biometric login. The encoding is
// pasted as text; capture is out of scope for a terminal client.
func (a *App) RegisterFace(ctx context.Context) error {
	data, err := getMultiline(a.reader, "Face encoding data", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.authAPI.RegisterFace(ctx, data)
	if err != nil {
		printErr(err)
		return err
	}
	printlnFn(msg)

	if u := a.auth.CurrentUser(); u != nil {
		u.FaceVerified = true
		if err := a.auth.UpdateStoredUser(ctx, *u); err != nil {
			a.log.Warn(ctx, "persisting face flag", "error", err)
		}
	}
	return nil
}

func rolesString(roles []models.Role) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}
