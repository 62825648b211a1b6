package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/folio-labs/newitem/internal/branding"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// Config keys.
const (
	KeyPostsDir      = "posts_dir"
	KeyBooksDir      = "books_dir"
	KeyLecturesDir   = "lectures_dir"
	KeyDataDir       = "data_dir"
	KeyBooksIndex    = "books_index"
	KeyLecturesIndex = "lectures_index"
	KeyBooksURL      = "books_url"
	KeyLecturesURL   = "lectures_url"
	KeyStrictExit    = "strict_exit"
	KeyMinVersion    = "min_version"
)

var defaults = map[string]any{
	KeyPostsDir:      "_posts",
	KeyBooksDir:      "_books",
	KeyLecturesDir:   "_lecture-notes",
	KeyDataDir:       "_data",
	KeyBooksIndex:    "books.yml",
	KeyLecturesIndex: "lecture-notes.yml",
	KeyBooksURL:      "/books",
	KeyLecturesURL:   "/lecture-notes",
	KeyStrictExit:    false,
	KeyMinVersion:    "",
}

// Config is the decoded site configuration. Directory and index values are
// relative to Root unless absolute.
type Config struct {
	Root          string `mapstructure:"-"`
	PostsDir      string `mapstructure:"posts_dir"`
	BooksDir      string `mapstructure:"books_dir"`
	LecturesDir   string `mapstructure:"lectures_dir"`
	DataDir       string `mapstructure:"data_dir"`
	BooksIndex    string `mapstructure:"books_index"`
	LecturesIndex string `mapstructure:"lectures_index"`
	BooksURL      string `mapstructure:"books_url"`
	LecturesURL   string `mapstructure:"lectures_url"`
	StrictExit    bool   `mapstructure:"strict_exit"`
	MinVersion    string `mapstructure:"min_version"`

	// FileUsed is the config file that was read, empty when none was found.
	FileUsed string `mapstructure:"-"`
}

// Layout holds the resolved filesystem locations the scaffolder writes to.
type Layout struct {
	PostsDir      string
	BooksDir      string
	LecturesDir   string
	BooksIndex    string
	LecturesIndex string
	BooksURL      string
	LecturesURL   string
}

// Keys returns every known config key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKey reports whether key is a known config key.
func IsKey(key string) bool {
	_, ok := defaults[key]
	return ok
}

// FilePath returns the site-local config file path (<root>/.newitem.yaml).
func FilePath(root string) string {
	return filepath.Join(root, branding.ConfigName()+"."+fileType)
}

// Default returns the built-in configuration rooted at root.
func Default(root string) *Config {
	return &Config{
		Root:          root,
		PostsDir:      defaults[KeyPostsDir].(string),
		BooksDir:      defaults[KeyBooksDir].(string),
		LecturesDir:   defaults[KeyLecturesDir].(string),
		DataDir:       defaults[KeyDataDir].(string),
		BooksIndex:    defaults[KeyBooksIndex].(string),
		LecturesIndex: defaults[KeyLecturesIndex].(string),
		BooksURL:      defaults[KeyBooksURL].(string),
		LecturesURL:   defaults[KeyLecturesURL].(string),
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// EnvOverride returns the environment variable for key and whether it is set
// to a value that overrides the config file.
func EnvOverride(key string) (string, bool) {
	name := branding.EnvVar(key)
	return name, os.Getenv(name) != ""
}

// Load reads the configuration for the site at root. When configFile is empty
// the site-local file is used if present; a missing explicit file is an error.
func Load(root, configFile string) (*Config, error) {
	v := newViper()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(root)
		v.SetConfigName(branding.ConfigName())
		v.SetConfigType(fileType)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case configFile == "" && errors.As(err, &notFound):
		case configFile != "" && errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("config file %s not found: %w", configFile, err)
		default:
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Root = root
	cfg.FileUsed = v.ConfigFileUsed()
	if _, err := os.Stat(cfg.FileUsed); err != nil {
		cfg.FileUsed = ""
	}
	return cfg, nil
}

// Layout resolves directories and index files against the site root.
func (c *Config) Layout() Layout {
	dataDir := c.resolve(c.DataDir)
	return Layout{
		PostsDir:      c.resolve(c.PostsDir),
		BooksDir:      c.resolve(c.BooksDir),
		LecturesDir:   c.resolve(c.LecturesDir),
		BooksIndex:    joinUnlessAbs(dataDir, c.BooksIndex),
		LecturesIndex: joinUnlessAbs(dataDir, c.LecturesIndex),
		BooksURL:      strings.TrimSuffix(c.BooksURL, "/"),
		LecturesURL:   strings.TrimSuffix(c.LecturesURL, "/"),
	}
}

// Get returns the string form of a config value.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeyPostsDir:
		return c.PostsDir, nil
	case KeyBooksDir:
		return c.BooksDir, nil
	case KeyLecturesDir:
		return c.LecturesDir, nil
	case KeyDataDir:
		return c.DataDir, nil
	case KeyBooksIndex:
		return c.BooksIndex, nil
	case KeyLecturesIndex:
		return c.LecturesIndex, nil
	case KeyBooksURL:
		return c.BooksURL, nil
	case KeyLecturesURL:
		return c.LecturesURL, nil
	case KeyStrictExit:
		return fmt.Sprintf("%t", c.StrictExit), nil
	case KeyMinVersion:
		return c.MinVersion, nil
	}
	return "", fmt.Errorf("unknown config key %q", key)
}

// Set writes a single key to the config file at path, keeping any other keys
// already stored there. Defaults are not written out.
func Set(path, key, value string) error {
	if !IsKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if key == KeyStrictExit {
		switch strings.ToLower(value) {
		case "true", "1", "yes":
			v.Set(key, true)
		case "false", "0", "no":
			v.Set(key, false)
		default:
			return fmt.Errorf("invalid value %q for %s: expected true or false", value, key)
		}
	} else {
		v.Set(key, value)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func (c *Config) resolve(p string) string {
	return joinUnlessAbs(c.Root, p)
}

func joinUnlessAbs(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
