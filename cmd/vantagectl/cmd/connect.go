package cmd

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/loopj/aiovantage-sub001/vantage"
)

// openClient builds a vantage.Client from the persistent --host/--user/
// --password/--no-tls/--conn-timeout flags, prompting for a password on the
// controlling terminal when --user is set but --password is not.
func openClient() (*vantage.Client, error) {
	opts := []vantage.Option{
		vantage.WithTLS(!noTLS),
		vantage.WithConnTimeout(time.Duration(connTimeout) * time.Second),
	}

	if username != "" {
		pw := password
		if pw == "" {
			var err error
			pw, err = readPassword()
			if err != nil {
				return nil, fmt.Errorf("read password: %w", err)
			}
		}
		opts = append(opts, vantage.WithCredentials(username, pw))
	}

	return vantage.New(host, opts...), nil
}

// readPassword prompts on stderr and reads a password from the controlling
// terminal without echoing it, grounded on cmd/control_tui.go's use of
// golang.org/x/term for raw-mode terminal input.
func readPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
