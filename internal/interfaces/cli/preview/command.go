package preview

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"obleafusion/internal/application/notification"
	"obleafusion/internal/infrastructure/config"
	"obleafusion/internal/infrastructure/email"
	"obleafusion/internal/infrastructure/i18n"
	"obleafusion/internal/interfaces/dto"
	"obleafusion/internal/shared/logger"
	"obleafusion/internal/shared/services/markdown"
)

const (
	formatHTML = "html"
	formatText = "text"
)

type options struct {
	kind      string
	lang      string
	input     string
	out       string
	format    string
	configDir string
}

// NewCommand returns the preview command, which renders a notification from
// a JSON form body without sending it.
func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a notification without sending it",
		Long: `Render the booking or contact notification for a JSON form body, using the
configured brand and translation overrides. Nothing is sent.`,
		Example: `  obleafusion preview --kind booking --lang en --input booking.json --out booking.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", notification.KindBooking, "Notification kind (booking, contact)")
	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "", "Language override (es, en); defaults to the body's language")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "JSON form body file, - for stdin")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file; defaults to stdout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatHTML, "Body to write (html, text)")
	cmd.Flags().StringVar(&opts.configDir, "config-dir", "", "Directory containing config.yaml (defaults to ./configs)")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	if opts.format != formatHTML && opts.format != formatText {
		return fmt.Errorf("unsupported format %q (html, text)", opts.format)
	}

	var paths []string
	if opts.configDir != "" {
		paths = append(paths, opts.configDir)
	}
	cfg, err := config.Load("", paths...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Keep stdout for the rendered document.
	loggerCfg := cfg.Logger
	loggerCfg.OutputPath = "stderr"
	if err := logger.Init(&loggerCfg, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()
	i18n.Init(cfg.I18n.OverrideDir, log)

	body, err := readInput(cmd.InOrStdin(), opts.input)
	if err != nil {
		return err
	}

	composer := notification.NewComposer(cfg.Email, cfg.Brand, markdown.NewMarkdownService(), log)
	msg, err := Render(composer, opts.kind, opts.lang, body)
	if err != nil {
		return err
	}

	content := msg.HTMLBody
	if opts.format == formatText {
		content = msg.TextBody
	}

	if opts.out == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), content)
		return err
	}
	if err := os.WriteFile(opts.out, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s preview written to %s (subject: %s)\n", msg.Kind, opts.out, msg.Subject)
	return nil
}

// Render decodes a JSON form body of the given kind and composes its
// notification. A non-empty lang replaces the body's language.
func Render(composer *notification.Composer, kind, lang string, body []byte) (*email.Message, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case notification.KindBooking:
		var req dto.BookingRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, fmt.Errorf("invalid booking body: %w", err)
		}
		if lang != "" {
			req.Language = lang
		}
		return composer.ComposeBooking(req.ToApplicationDTO())
	case notification.KindContact:
		var req dto.ContactRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, fmt.Errorf("invalid contact body: %w", err)
		}
		if lang != "" {
			req.Language = lang
		}
		return composer.ComposeContact(req.ToApplicationDTO())
	default:
		return nil, fmt.Errorf("unsupported kind %q (booking, contact)", kind)
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		body, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return body, nil
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return body, nil
}
