// Package render turns icon sheets into XHTML or HTML documents.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"faicon/config"
	"faicon/markup"
	"faicon/sheet"
	"faicon/state"
)

// Run renders single sheet. Command arguments are SOURCE and optional
// DESTINATION directory (current working directory by default).
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if env.Format, err = config.ParseOutputFmt(cmd.String("to")); err != nil {
		log.Warn("Unknown output format requested, switching to xhtml", zap.Error(err))
		env.Format = config.OutputFmtXhtml
	}
	env.Overwrite = cmd.Bool("overwrite")

	if err := env.LoadStylesheet(); err != nil {
		return err
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	_, err = process(ctx, src, dst, env, log)
	return err
}

// process does the work independently of command line, returns name of
// produced file.
func process(ctx context.Context, src, dst string, env *state.LocalEnv, log *zap.Logger) (string, error) {
	if err := env.Rpt.StoreCopy("source/"+filepath.Base(src), src); err != nil {
		log.Warn("Unable to put source into report", zap.Error(err))
	}

	s, err := sheet.LoadFile(src)
	if err != nil {
		return "", err
	}
	entries, err := sheet.NewResolver(log).Resolve(s)
	if err != nil {
		return "", fmt.Errorf("unable to resolve sheet %q: %w", src, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := DocumentID(s)
	doc := BuildDocument(s, entries, id, DocumentOptions{
		StylesheetURL: env.Cfg.Document.StylesheetURL,
		InlineStyle:   string(env.InlineStyle),
		Labels:        env.Cfg.Document.Labels,
	})

	names := make([]string, 0, len(entries))
	for i, e := range entries {
		names = append(names, e.Name)
		env.Rpt.StoreData(fmt.Sprintf("markup/%03d-%s.txt", i+1, EntryID(e.Name)), []byte(markup.Dump(e.View.View())))
	}

	values := newValues(config.OutputNameTemplateFieldName, s.Title, s.Language, id, src, env.Format, names)
	out := buildOutputPath(values, dst, env.Format, &env.Cfg.Document, log)

	if err := writeDocument(doc, out, env.Format, env.Cfg.Document.Indent, env.Overwrite); err != nil {
		return "", err
	}
	log.Info("Document written", zap.String("file", out), zap.Int("entries", len(entries)), zap.String("id", id))
	return out, nil
}

func writeDocument(doc *markup.Document, out string, format config.OutputFmt, indent int, overwrite bool) error {
	if _, err := os.Stat(out); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", out)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("unable to check output file: %w", err)
	}

	buf := new(bytes.Buffer)
	switch format {
	case config.OutputFmtXhtml:
		if err := doc.WriteXHTML(buf, indent); err != nil {
			return fmt.Errorf("unable to serialize document: %w", err)
		}
	case config.OutputFmtHtml:
		if err := doc.WriteHTML(buf); err != nil {
			return fmt.Errorf("unable to serialize document: %w", err)
		}
	default:
		// this should never happen
		panic("unsupported format requested")
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}
	return nil
}
