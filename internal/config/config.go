package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/inovacc/giteabak/internal/application"
	"github.com/inovacc/giteabak/internal/common"
	"github.com/inovacc/giteabak/internal/model"
	"gopkg.in/ini.v1"
)

const (
	sectionGitea = "gitea"
	sectionRepos = "repos"
	sectionAuth  = "auth"

	keyURL             = "url"
	keyExceptions      = "exceptions"
	keyExceptionLegacy = "exception"
	keyUser            = "user"
	keyToken           = "token"
	keyPassword        = "password"
)

// ErrDefaultCreated is returned after a default config file was written because none existed
var ErrDefaultCreated = errors.New("default config file created")

// Options configures Load
type Options struct {
	// DefaultPath is tried when the requested file is missing (default: application.DefaultConfigFile)
	DefaultPath string
	Stdout      io.Writer
	Logger      *slog.Logger
}

var loadOptions = ini.LoadOptions{
	IgnoreInlineComment: true,
	InsensitiveKeys:     true,
}

// Load reads the config at path. When path does not exist the default config
// file is used instead; when that is missing too a default config is written to
// path and an *application.ExitError wrapping ErrDefaultCreated is returned.
func Load(path string, opts Options) (*model.Config, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}

	defaultPath := opts.DefaultPath
	if defaultPath == "" {
		defaultPath = application.DefaultConfigFile
	}

	if isFile(path) {
		return parseFile(path, logger)
	}

	if path != defaultPath {
		_, _ = fmt.Fprintln(out, "config file not found. trying to use default config file")
	}

	if isFile(defaultPath) {
		return parseFile(defaultPath, logger)
	}

	_, _ = fmt.Fprintln(out, "default config file not found. I will create it")

	if err := Save(path, model.DefaultConfig()); err != nil {
		return nil, fmt.Errorf("failed to create default config: %w", err)
	}

	logger.Info("wrote default config", slog.String("path", path))

	return nil, application.Fatal(ErrDefaultCreated, "")
}

// Parse reads a config from raw INI data
func Parse(data []byte) (*model.Config, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return fromINI(f)
}

func parseFile(path string, logger *slog.Logger) (*model.Config, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := fromINI(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("loaded config",
		slog.String("path", path),
		slog.String("url", common.SanitizeURL(cfg.URL)),
		slog.String("auth", cfg.Auth.Mode.String()),
		slog.Int("exceptions", len(cfg.Exceptions)),
	)

	return cfg, nil
}

func fromINI(f *ini.File) (*model.Config, error) {
	cfg := model.DefaultConfig()

	gitea := f.Section(sectionGitea)
	if !gitea.HasKey(keyURL) {
		return nil, fmt.Errorf("missing %s.%s", sectionGitea, keyURL)
	}

	u, err := normalizeURL(gitea.Key(keyURL).String())
	if err != nil {
		return nil, err
	}

	cfg.URL = u

	exceptions, err := parseExceptions(f.Section(sectionRepos))
	if err != nil {
		return nil, err
	}

	cfg.Exceptions = exceptions
	cfg.Auth = parseAuth(f.Section(sectionAuth))

	return &cfg, nil
}

func normalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid %s.%s %q: %w", sectionGitea, keyURL, raw, err)
	}

	return u.String(), nil
}

func parseExceptions(sec *ini.Section) ([]string, error) {
	key := keyExceptions
	if !sec.HasKey(key) {
		key = keyExceptionLegacy
	}

	raw := strings.TrimSpace(sec.Key(key).String())
	if raw == "" {
		return []string{}, nil
	}

	var exceptions []string
	if err := json.Unmarshal([]byte(raw), &exceptions); err != nil {
		return nil, fmt.Errorf("invalid %s.%s: %w", sectionRepos, key, err)
	}

	if exceptions == nil {
		exceptions = []string{}
	}

	return exceptions, nil
}

// parseAuth reads the auth section. A token selects token mode and a password,
// checked afterwards, overrides it.
func parseAuth(sec *ini.Section) model.Auth {
	auth := model.Auth{Mode: model.AuthModeNone}

	if sec.HasKey(keyUser) {
		auth.User = sec.Key(keyUser).String()
	}

	if sec.HasKey(keyToken) {
		auth.Token = sec.Key(keyToken).String()
		auth.Mode = model.AuthModeToken
	}

	if sec.HasKey(keyPassword) {
		auth.Password = sec.Key(keyPassword).String()
		auth.Mode = model.AuthModePassword
	}

	return auth
}

// Save writes cfg to path. An existing file is left untouched.
func Save(path string, cfg model.Config) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	f := ini.Empty()

	exceptions := cfg.Exceptions
	if exceptions == nil {
		exceptions = []string{}
	}

	encoded, err := json.Marshal(exceptions)
	if err != nil {
		return fmt.Errorf("failed to encode exceptions: %w", err)
	}

	f.Section(sectionGitea).Key(keyURL).SetValue(cfg.URL)
	f.Section(sectionRepos).Key(keyExceptions).SetValue(string(encoded))

	auth := f.Section(sectionAuth)
	auth.Key(keyUser).SetValue(cfg.Auth.User)

	switch cfg.Auth.Mode {
	case model.AuthModePassword:
		auth.Key(keyPassword).SetValue(cfg.Auth.Password)
	case model.AuthModeToken:
		auth.Key(keyToken).SetValue(cfg.Auth.Token)
	}

	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
