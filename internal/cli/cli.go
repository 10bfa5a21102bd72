package cli

import (
  "context"
  "fmt"
  "os"
  "os/signal"
  "syscall"
  "time"

  log "github.com/sirupsen/logrus"
  "github.com/spf13/cobra"
  "github.com/ushakovn/chimera/internal/config"
  "github.com/ushakovn/chimera/pkg/logger"
)

// Runner executes a tool with the resolved config and returns its exit code.
type Runner func(ctx context.Context, cfg config.Config) int

type flags struct {
  config      string
  baseURL     string
  username    string
  password    string
  insecure    bool
  timeout     time.Duration
  outputDir   string
  stripMarkup bool
  narrowUser  bool
  verbose     bool
}

func NewCommand(use, short string, run Runner) (*cobra.Command, *int) {
  var (
    f    flags
    code int
  )

  cmd := &cobra.Command{
    Use:           use,
    Short:         short,
    Args:          cobra.NoArgs,
    SilenceUsage:  true,
    SilenceErrors: true,

    RunE: func(cmd *cobra.Command, _ []string) error {
      logger.SetVerbose(f.verbose)

      cfg, err := resolveConfig(cmd, f)
      if err != nil {
        return err
      }

      ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
      defer cancel()

      code = run(ctx, cfg)
      return nil
    },
  }

  cmd.Flags().StringVar(&f.config, "config", "", "path to a yaml config file")
  cmd.Flags().StringVar(&f.baseURL, "base-url", "", "api base url")
  cmd.Flags().StringVar(&f.username, "username", "", "login username")
  cmd.Flags().StringVar(&f.password, "password", "", "login password")
  cmd.Flags().BoolVar(&f.insecure, "insecure", false, "skip tls certificate verification")
  cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "request timeout")
  cmd.Flags().StringVar(&f.outputDir, "output-dir", "", "directory for the exported json file")
  cmd.Flags().BoolVar(&f.stripMarkup, "strip-markup", false, "strip html markup from product names")
  cmd.Flags().BoolVar(&f.narrowUser, "narrow-username", false, "fold fullwidth characters of a typed username")
  cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")

  return cmd, &code
}

func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
  cfg, err := config.Load(f.config)
  if err != nil {
    return config.Config{}, fmt.Errorf("config.Load: %w", err)
  }
  changed := cmd.Flags().Changed

  if changed("base-url") {
    cfg.BaseURL = f.baseURL
  }
  if changed("username") {
    cfg.Username = f.username
  }
  if changed("password") {
    cfg.Password = f.password
  }
  if changed("insecure") {
    cfg.Insecure = f.insecure
  }
  if changed("timeout") {
    cfg.Timeout = f.timeout
  }
  if changed("output-dir") {
    cfg.OutputDir = f.outputDir
  }
  if changed("strip-markup") {
    cfg.StripMarkup = f.stripMarkup
  }
  if changed("narrow-username") {
    cfg.NarrowUsername = f.narrowUser
  }

  if err = cfg.Validate(); err != nil {
    return config.Config{}, fmt.Errorf("invalid config: %w", err)
  }
  return cfg, nil
}

// Execute runs cmd and returns the process exit code.
func Execute(cmd *cobra.Command, code *int) int {
  if err := cmd.Execute(); err != nil {
    log.Errorf("%s: %v", cmd.Name(), err)
    return 1
  }
  return *code
}
