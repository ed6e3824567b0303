// Package cli implements the html-to-text command line tool.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/htmlparser/internal/adapters/driven/config/file"
	"github.com/custodia-labs/htmlparser/internal/core/domain"
	"github.com/custodia-labs/htmlparser/internal/core/ports/driving"
	"github.com/custodia-labs/htmlparser/internal/core/services"
	"github.com/custodia-labs/htmlparser/internal/logger"
	"github.com/custodia-labs/htmlparser/internal/renderers/text"
)

// version is set at build time via -ldflags.
var version = "dev"

var converter driving.Converter = services.NewConverterService(text.New())

var (
	convertWidth    int
	convertTerminal bool
	convertStrict   bool
	configPath      string
	verbose         bool
)

var rootCmd = &cobra.Command{
	Use:   "html-to-text [file]",
	Short: "Convert HTML to plain text",
	Long: `Reads an HTML document from a file, or from standard input when no file
or "-" is given, and writes its plain-text rendering to standard output.

Documents that cannot be parsed produce no output unless --strict is set.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	rootCmd.Flags().IntVarP(&convertWidth, "width", "w", 0, "wrap width in columns (0 = config or input length)")
	rootCmd.Flags().BoolVar(&convertTerminal, "terminal", false, "wrap to the terminal width when stdout is a terminal")
	rootCmd.Flags().BoolVar(&convertStrict, "strict", false, "fail when the document cannot be parsed")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <user config dir>/htmlparser/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic messages to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetConverter replaces the converter used by the commands.
func SetConverter(c driving.Converter) {
	converter = c
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger.SetVerbose(verbose)

	if convertWidth < 0 {
		return fmt.Errorf("%w: --width must not be negative", domain.ErrInvalidInput)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logger.SetVerbose(true)
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	width := resolveWidth(cmd, cfg)
	logger.Debug("Read %d bytes, wrap width %d", len(input), width)

	out := cmd.OutOrStdout()
	if convertStrict {
		result, err := converter.Render(input, width)
		if err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}
		_, err = io.WriteString(out, result)
		return err
	}

	_, err = io.WriteString(out, converter.Convert(input, width))
	return err
}

func loadConfig() (file.Config, error) {
	var (
		store *file.ConfigStore
		err   error
	)
	if configPath != "" {
		store, err = file.NewConfigStoreAt(configPath)
	} else {
		store, err = file.NewConfigStore("")
	}
	if err != nil {
		return file.Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Debug("Config: %s", store.Path())
	return store.Config(), nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// resolveWidth picks the wrap width: --width, then the terminal width when
// --terminal is set and stdout is a terminal, then the config file.
func resolveWidth(cmd *cobra.Command, cfg file.Config) int {
	if convertWidth > 0 {
		return convertWidth
	}
	if convertTerminal {
		if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
				return w
			}
		}
		logger.Warn("stdout is not a terminal, ignoring --terminal")
	}
	return cfg.Width
}
