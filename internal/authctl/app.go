package authctl

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/filex"
	"github.com/dmitrijs2005/gatekeeper/internal/server/services"
)

// ErrUsage is returned for an unknown command or missing arguments.
var ErrUsage = errors.New("usage")

const usage = `usage: authctl [-c config.json] [-d dsn] [-qr dir] <command> [args]

commands:
  init <handle>               create the first administrator
  add <handle>                create a user with a time-code credential
  list                        list users
  info <handle>               show one user
  delete <handle>             delete a user and everything they own
  grant <handle> download|admin
  revoke <handle> download|admin
  kick <handle>               terminate the user's sessions
  disable <handle>
  enable <handle>
  codes <handle>              issue a fresh batch of backup codes
`

// Admin is the subset of the admin service the commands need.
type Admin interface {
	ListUsers(ctx context.Context) ([]services.UserInfo, error)
	UserInfo(ctx context.Context, handle string) (services.UserInfo, error)
	RevokeAll(ctx context.Context, handle string) (int64, error)
	Disable(ctx context.Context, handle string) error
	Enable(ctx context.Context, handle string) error
	SetDownload(ctx context.Context, handle string, allowed bool) error
	SetAdmin(ctx context.Context, handle string, admin bool) error
	DeleteUser(ctx context.Context, handle string) error
	RegenerateBackupCodes(ctx context.Context, handle string) ([]string, error)
	Bootstrap(ctx context.Context, handle string, admin bool) (services.Provisioned, error)
}

type App struct {
	admin Admin
	out   io.Writer
	// qrDir receives the provisioning QR code when set.
	qrDir string
}

func NewApp(admin Admin, out io.Writer) *App {
	return &App{admin: admin, out: out}
}

// Invocation is a parsed command line.
type Invocation struct {
	// Flags is handed to config.Load.
	Flags   []string
	Command []string
	QRDir   string
}

// SplitArgs separates the store flags from the command and its arguments.
func SplitArgs(args []string) (Invocation, error) {
	var inv Invocation
	fs := flag.NewFlagSet("authctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.String("c", "", "")
	fs.String("config", "", "")
	fs.String("d", "", "")
	fs.String("v", "", "")
	fs.StringVar(&inv.QRDir, "qr", "", "")
	if err := fs.Parse(args); err != nil {
		return Invocation{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	inv.Command = fs.Args()
	inv.Flags = args[:len(args)-len(inv.Command)]
	return inv, nil
}

func Usage(w io.Writer) {
	fmt.Fprint(w, usage)
}

// Run executes one command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "list":
		return a.list(ctx)
	case "init":
		return withHandle(rest, func(h string) error { return a.initAdmin(ctx, h) })
	case "add":
		return withHandle(rest, func(h string) error { return a.add(ctx, h, false) })
	case "info":
		return withHandle(rest, func(h string) error { return a.info(ctx, h) })
	case "delete":
		return withHandle(rest, func(h string) error {
			return a.done(a.admin.DeleteUser(ctx, h), "deleted %s", h)
		})
	case "grant", "revoke":
		if len(rest) != 2 {
			return ErrUsage
		}
		return a.flag(ctx, rest[0], rest[1], cmd == "grant")
	case "kick":
		return withHandle(rest, func(h string) error {
			n, err := a.admin.RevokeAll(ctx, h)
			return a.done(err, "terminated %d session(s) for %s", n, h)
		})
	case "disable":
		return withHandle(rest, func(h string) error {
			return a.done(a.admin.Disable(ctx, h), "disabled %s", h)
		})
	case "enable":
		return withHandle(rest, func(h string) error {
			return a.done(a.admin.Enable(ctx, h), "enabled %s", h)
		})
	case "codes":
		return withHandle(rest, func(h string) error {
			codes, err := a.admin.RegenerateBackupCodes(ctx, h)
			if err != nil {
				return err
			}
			a.printCodes(codes)
			return nil
		})
	}
	return ErrUsage
}

func withHandle(args []string, fn func(string) error) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return fn(args[0])
}

func (a *App) done(err error, format string, args ...any) error {
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, format+"\n", args...)
	return nil
}

// initAdmin refuses to run once any user exists.
func (a *App) initAdmin(ctx context.Context, handle string) error {
	users, err := a.admin.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return errors.New("already initialised: users exist")
	}
	return a.add(ctx, handle, true)
}

func (a *App) add(ctx context.Context, handle string, admin bool) error {
	p, err := a.admin.Bootstrap(ctx, handle, admin)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created %s (%s)\n", handle, p.UserID)
	fmt.Fprintf(a.out, "authenticator secret: %s\n", p.TOTP.Secret)
	fmt.Fprintf(a.out, "provisioning uri:     %s\n", p.TOTP.URI)
	if a.qrDir != "" && len(p.TOTP.QRCode) > 0 {
		path, err := filex.WriteSecret(a.qrDir, handle+".png", p.TOTP.QRCode)
		if err != nil {
			return fmt.Errorf("qr code: %w", err)
		}
		fmt.Fprintf(a.out, "qr code:              %s\n", path)
	}
	a.printCodes(p.BackupCodes)
	return nil
}

func (a *App) printCodes(codes []string) {
	fmt.Fprintln(a.out, "backup codes (shown once):")
	for _, c := range codes {
		fmt.Fprintf(a.out, "  %s\n", c)
	}
}

func (a *App) flag(ctx context.Context, handle, name string, value bool) error {
	var err error
	switch name {
	case "download":
		err = a.admin.SetDownload(ctx, handle, value)
	case "admin":
		err = a.admin.SetAdmin(ctx, handle, value)
	default:
		return ErrUsage
	}
	return a.done(err, "%s %s: %t", handle, name, value)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func stamp(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func (a *App) list(ctx context.Context) error {
	users, err := a.admin.ListUsers(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "HANDLE\tMETHOD\tADMIN\tDOWNLOAD\tCODES\tLAST LOGIN\tSTATUS")
	for _, u := range users {
		status := u.Status
		if status == "" {
			status = "ok"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			u.Handle, u.Method, yesNo(u.IsAdmin), yesNo(u.CanDownload),
			u.RemainingBackupCodes, stamp(u.LastLoginAt), status)
	}
	return tw.Flush()
}

func (a *App) info(ctx context.Context, handle string) error {
	u, err := a.admin.UserInfo(ctx, handle)
	if err != nil {
		return err
	}
	var since *time.Time
	if u.LiveSession != nil {
		since = &u.LiveSession.CreatedAt
	}
	status := u.Status
	if status == "" {
		status = "ok"
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "handle\t%s\n", u.Handle)
	fmt.Fprintf(tw, "user id\t%s\n", u.UserID)
	fmt.Fprintf(tw, "method\t%s\n", u.Method)
	fmt.Fprintf(tw, "credential\t%s\n", yesNo(u.HasCredential))
	fmt.Fprintf(tw, "admin\t%s\n", yesNo(u.IsAdmin))
	fmt.Fprintf(tw, "download\t%s\n", yesNo(u.CanDownload))
	fmt.Fprintf(tw, "disabled\t%s\n", yesNo(u.Disabled))
	fmt.Fprintf(tw, "recovery contact\t%s\n", yesNo(u.RecoveryEnabled))
	fmt.Fprintf(tw, "backup codes left\t%d\n", u.RemainingBackupCodes)
	fmt.Fprintf(tw, "created\t%s\n", stamp(&u.CreatedAt))
	fmt.Fprintf(tw, "last login\t%s\n", stamp(u.LastLoginAt))
	fmt.Fprintf(tw, "session since\t%s\n", stamp(since))
	fmt.Fprintf(tw, "status\t%s\n", status)
	return tw.Flush()
}

// WithQRDir makes add and init write the provisioning QR code as a PNG.
func (a *App) WithQRDir(dir string) *App {
	a.qrDir = dir
	return a
}
