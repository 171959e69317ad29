// Package main wires the CodeCollab command line client.
package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/korhvimtv/code-collab/config"
	"github.com/korhvimtv/code-collab/internal/gateway"
	"github.com/korhvimtv/code-collab/internal/repository"
	"github.com/korhvimtv/code-collab/internal/session"
	"github.com/korhvimtv/code-collab/internal/views"
	"github.com/korhvimtv/code-collab/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	a := &app{}

	root := &cobra.Command{
		Use:           "collab",
		Short:         "CodeCollab command line client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return a.init()
	}

	root.AddCommand(
		registerCmd(a),
		loginCmd(a),
		logoutCmd(a),
		meCmd(a),
		accountCmd(a),
		usersCmd(a),
		projectCmd(a),
		taskCmd(a),
		searchCmd(a),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	cfg     *config.Config
	log     *zap.SugaredLogger
	session *session.Session
	repo    repository.Repository
}

func (a *app) init() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return err
	}

	sess := session.New()
	if file := tokenFile(cfg); file != "" {
		if raw, err := os.ReadFile(file); err == nil {
			sess.Set(strings.TrimSpace(string(raw)))
		}
		// The session outlives one process through the token file; a 401
		// during any command wipes it via this subscription.
		sess.Subscribe(func(token string) {
			if token == "" {
				_ = os.Remove(file)
				return
			}
			_ = os.MkdirAll(filepath.Dir(file), 0o700)
			_ = os.WriteFile(file, []byte(token), 0o600)
		})
	}

	gw := gateway.New(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.RequestTimeout}, sess, log)
	repo, err := repository.New("http", log, gw, sess)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.session = sess
	a.repo = repo
	return nil
}

func tokenFile(cfg *config.Config) string {
	if cfg.Session.TokenFile != "" {
		return cfg.Session.TokenFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".codecollab", "token")
}

// terminalConfirm prompts y/N on stdin before destructive actions.
func terminalConfirm() views.Confirmer {
	return views.ConfirmFunc(func(prompt string) bool {
		fmt.Printf("%s [y/N]: ", prompt)
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	})
}
