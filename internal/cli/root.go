package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/folio-labs/newitem/internal/branding"
	"github.com/folio-labs/newitem/internal/config"
	"github.com/folio-labs/newitem/internal/prompt"
	"github.com/folio-labs/newitem/internal/scaffold"
	"github.com/folio-labs/newitem/internal/version"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	siteRoot   string
	configFile string
	verbose    bool
)

// now is the clock used for blog post dates.
var now = time.Now

// errProblem signals a user-level problem under strict_exit. Its message has
// already been printed, so Execute does not print it again.
var errProblem = errors.New("item was not created cleanly")

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new post, book or lecture note in a static site.

Run it from the site root. It asks for the content type and title (and for
books the authors and year), writes the markdown file with its metadata header,
and lists books and lecture notes in their index files under the data directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd.ErrOrStderr(), verbose)
	},
	RunE: runNew,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&siteRoot, "root", ".", "Site root directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default is <root>/"+branding.ConfigName()+".yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errProblem) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// loadConfig reads the site config and enforces its min_version.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(siteRoot, configFile)
	if err != nil {
		return nil, err
	}
	if err := version.CheckMinimum(buildVersion, cfg.MinVersion); err != nil {
		return nil, err
	}
	slog.Debug("config loaded", "root", cfg.Root, "file", cfg.FileUsed)
	return cfg, nil
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s := scaffold.New(cfg.Layout(), cmd.OutOrStdout(), slog.Default())
	s.Now = now

	res, err := s.Run(prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	if cfg.StrictExit && res.Problem() {
		return errProblem
	}
	return nil
}
