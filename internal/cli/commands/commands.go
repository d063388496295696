// Package commands implements the logsense subcommands.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/tripweaver/logsense/pkg/analyzer"
	"github.com/tripweaver/logsense/pkg/config"
	"github.com/tripweaver/logsense/pkg/output"
)

// GlobalOptions holds flags shared by all subcommands.
type GlobalOptions struct {
	ConfigPath string
	LogDir     string
	Output     string
	NoColor    bool
}

// Config resolves the effective configuration from flags and environment.
func (g *GlobalOptions) Config(ctx context.Context) (*config.Config, error) {
	var cfg *config.Config
	if g.ConfigPath != "" {
		loaded, err := config.Load(ctx, g.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.FromEnvironment()
	}

	if g.LogDir != "" {
		cfg.LogDir = g.LogDir
	}

	return cfg, nil
}

// Analyzer builds an analyzer from the effective configuration.
func (g *GlobalOptions) Analyzer(ctx context.Context) (*analyzer.Analyzer, *config.Config, error) {
	cfg, err := g.Config(ctx)
	if err != nil {
		return nil, nil, err
	}
	return analyzer.NewAnalyzer(cfg), cfg, nil
}

// render writes v to w in the selected output format, using renderText
// for the text form.
func (g *GlobalOptions) render(w io.Writer, v any, renderText func(*output.TextRenderer)) error {
	switch g.Output {
	case "json":
		return output.NewJSONRenderer().Render(w, v)
	case "text":
		renderText(g.textRenderer())
		return nil
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", g.Output)
	}
}

func (g *GlobalOptions) textRenderer() *output.TextRenderer {
	var opts []output.TextOption
	if g.NoColor {
		opts = append(opts, output.WithNoColor())
	}
	return output.NewTextRenderer(opts...)
}
