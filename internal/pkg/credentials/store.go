package credentials

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dailyavatar/dailyavatar/internal/entity"
	"github.com/dailyavatar/dailyavatar/internal/pkg/storage"
)

// EnvToken overrides the stored credential when set.
const EnvToken = "SLACK_USER_TOKEN"

type Store interface {
	Token() (string, error)
	SetToken(token string) error
	Clear() error
	InteractiveSetup(in io.Reader, out io.Writer) (string, error)
}

type tokenStore struct {
	fs   storage.FileStorage
	file string
}

func NewStore(fs storage.FileStorage, file string) Store {
	return &tokenStore{fs: fs, file: file}
}

// Token resolves the credential: environment variable first, config file
// second. Returns entity.ErrNoToken when neither has a value.
func (s *tokenStore) Token() (string, error) {
	if token := os.Getenv(EnvToken); token != "" {
		return token, nil
	}

	if !s.fs.Exists(s.file) {
		return "", entity.ErrNoToken
	}

	reader, err := s.fs.Get(s.file)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	var cfg entity.TokenConfig
	if err := json.NewDecoder(reader).Decode(&cfg); err != nil {
		return "", err
	}

	if cfg.Token == "" {
		return "", entity.ErrNoToken
	}
	return cfg.Token, nil
}

// SetToken persists the token with owner-only file permissions.
func (s *tokenStore) SetToken(token string) error {
	data, err := json.Marshal(entity.TokenConfig{Token: token})
	if err != nil {
		return err
	}

	if err := s.fs.SaveWithMode(s.file, bytes.NewReader(data), 0600); err != nil {
		return err
	}

	// the 0600 mode is a contract, not a side effect
	info, err := os.Stat(s.fs.FullPath(s.file))
	if err != nil {
		return err
	}
	if info.Mode().Perm() != 0600 {
		return fmt.Errorf("token file has mode %04o, expected 0600", info.Mode().Perm())
	}
	return nil
}

// Clear removes the stored token file, for example after the API reports
// the credential invalid or revoked.
func (s *tokenStore) Clear() error {
	err := s.fs.Delete(s.file)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// InteractiveSetup walks the user through obtaining a Slack user token and
// optionally saves it. The token value is read from in and never echoed.
func (s *tokenStore) InteractiveSetup(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "To upload to Slack, you need a Slack User OAuth Token with the 'users.profile:write' scope.")
	fmt.Fprintln(out, "Follow these steps to get your token:")
	fmt.Fprintln(out, "1. Go to https://api.slack.com/apps")
	fmt.Fprintln(out, "2. Create a new app (or use an existing one)")
	fmt.Fprintln(out, "3. Go to 'OAuth & Permissions' and add 'users.profile:write' to 'User Token Scopes'")
	fmt.Fprintln(out, "4. Install the app to your workspace")
	fmt.Fprintln(out, "5. Copy the 'User OAuth Token' (starts with xoxp-)")
	fmt.Fprintln(out)
	fmt.Fprint(out, "Enter your Slack User OAuth Token: ")

	scanner := bufio.NewScanner(in)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", errors.New("no token provided")
	}

	token := strings.TrimSpace(scanner.Text())
	if token == "" {
		return "", errors.New("no token provided")
	}

	fmt.Fprint(out, "Would you like to save this token for future use? (y/n): ")

	save := false
	if scanner.Scan() {
		save = strings.ToLower(strings.TrimSpace(scanner.Text())) == "y"
	}

	if save {
		if err := s.SetToken(token); err != nil {
			return "", fmt.Errorf("failed to save token: %w", err)
		}
		fmt.Fprintln(out, "Token saved successfully!")
	}

	return token, nil
}
