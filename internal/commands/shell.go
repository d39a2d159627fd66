package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/accounts"
	"github.com/bankist-dev/bankist/internal/audit"
	"github.com/bankist-dev/bankist/internal/model"
	"github.com/bankist-dev/bankist/internal/session"
	"github.com/bankist-dev/bankist/internal/view"
)

const shellHelp = `Commands:
  login <user> <pin>       log in to an account
  logout                   end the session
  transfer <to> <amount>   send money to another account
  loan <amount>            request a loan
  close <user> <pin>       close the current account
  sort                     toggle sorting movements by amount
  show                     redraw the current account
  accounts                 list usernames
  help                     show this help
  quit                     leave the shell
`

func newShellCommand(opts *globalOptions) *cobra.Command {
	var seedPath string
	var auditPath string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive banking session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if seedPath != "" {
				cfg.Seed.Path = seedPath
			}
			if auditPath != "" {
				cfg.Audit.Path = auditPath
			}

			logger, err := opts.newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}

			seed, err := accounts.Seed(cfg.Seed.Path)
			if err != nil {
				return fmt.Errorf("loading seed: %w", err)
			}
			store, err := accounts.NewStore(seed)
			if err != nil {
				return fmt.Errorf("seeding store: %w", err)
			}
			logger.WithField("accounts", store.Len()).Debug("store seeded")

			sh := &shell{
				out:     cmd.OutOrStdout(),
				store:   store,
				session: session.New(store),
				render:  newRenderer(cfg),
				log:     logger,
				audit:   audit.NewRecorder(cfg.Audit.Path),
				sorted:  cfg.Display.Sorted,
			}
			return sh.run(cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "accounts CSV to start from (built-in accounts when empty)")
	cmd.Flags().StringVar(&auditPath, "audit", "", "append an audit row per operation to this CSV file")

	return cmd
}

// shell is a line-oriented front end over one Session.
type shell struct {
	out     io.Writer
	store   *accounts.Store
	session *session.Session
	render  *view.Renderer
	log     *logrus.Logger
	audit   *audit.Recorder
	sorted  bool
}

func (sh *shell) run(in io.Reader) error {
	if err := sh.show(); err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, "> ")
		if !scanner.Scan() {
			break
		}
		quit, err := sh.exec(scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	fmt.Fprintln(sh.out)
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// exec runs one command line. It returns quit=true when the shell should
// stop. Rejections are reported to the user; only I/O failures are errors.
func (sh *shell) exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprint(sh.out, shellHelp)
		return false, nil
	case "show":
		return false, sh.show()
	case "accounts":
		return false, view.Accounts(sh.out, sh.store.All())
	case "sort":
		sh.sorted = !sh.sorted
		return false, sh.show()
	case "logout":
		user := sh.session.Username()
		sh.session.Logout()
		if err := sh.report("logout", user, "", nil); err != nil {
			return false, err
		}
		return false, sh.show()
	case "login":
		if len(args) != 2 {
			return false, sh.usage("login <user> <pin>")
		}
		req := model.LoginRequest{Username: args[0], PIN: args[1]}
		loginErr := sh.session.Login(req)
		if err := sh.report("login", req.Username, "", loginErr); err != nil {
			return false, err
		}
		return false, sh.show()
	case "transfer":
		if len(args) != 2 {
			return false, sh.usage("transfer <to> <amount>")
		}
		req := model.TransferRequest{To: args[0], Amount: args[1]}
		details := fmt.Sprintf("to=%s amount=%s", req.To, req.Amount)
		return false, sh.after("transfer", details, sh.session.Transfer(req))
	case "loan":
		if len(args) != 1 {
			return false, sh.usage("loan <amount>")
		}
		req := model.LoanRequest{Amount: args[0]}
		return false, sh.after("loan", "amount="+req.Amount, sh.session.RequestLoan(req))
	case "close":
		if len(args) != 2 {
			return false, sh.usage("close <user> <pin>")
		}
		user := sh.session.Username()
		req := model.CloseRequest{Username: args[0], PIN: args[1]}
		closeErr := sh.session.Close(req)
		if err := sh.report("close", user, "", closeErr); err != nil {
			return false, err
		}
		return false, sh.show()
	default:
		fmt.Fprintf(sh.out, "unknown command %q, try help\n", name)
		return false, nil
	}
}

// after reports an operation on the current account and redraws it.
func (sh *shell) after(op, details string, opErr error) error {
	if err := sh.report(op, sh.session.Username(), details, opErr); err != nil {
		return err
	}
	return sh.show()
}

// report logs and audits the outcome of op. Rejections are printed; any
// other error is returned unchanged.
func (sh *shell) report(op, user, details string, opErr error) error {
	entry := sh.log.WithField("op", op).WithField("user", user)
	outcome := audit.OutcomeAccepted

	var rej *model.Rejection
	switch {
	case opErr == nil:
		entry.Info("accepted")
	case errors.Is(opErr, model.ErrNoSession):
		outcome = audit.OutcomeRejected
		details = joinDetails(details, opErr.Error())
		entry.Warn(opErr.Error())
		fmt.Fprintln(sh.out, "Log in first.")
	case errors.As(opErr, &rej):
		outcome = audit.OutcomeRejected
		details = joinDetails(details, rej.Reason)
		entry.WithField("reason", rej.Reason).Warn(rej.Kind.Error())
		fmt.Fprintf(sh.out, "%s: %s\n", capitalize(rej.Kind.Error()), rej.Reason)
	default:
		return opErr
	}

	if err := sh.audit.Record(user, op, outcome, details); err != nil {
		return fmt.Errorf("writing audit trail: %w", err)
	}
	return nil
}

func (sh *shell) show() error {
	acct, ok := sh.session.Current()
	return sh.render.Render(sh.out, acct, ok, sh.sorted)
}

func (sh *shell) usage(form string) error {
	_, err := fmt.Fprintf(sh.out, "usage: %s\n", form)
	return err
}

func joinDetails(details, reason string) string {
	if details == "" {
		return reason
	}
	return details + " " + reason
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
