package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/gddocs/internal/config"
	"git.home.luguber.info/inful/gddocs/internal/convert"
	"git.home.luguber.info/inful/gddocs/internal/errors"
	"git.home.luguber.info/inful/gddocs/internal/gdscript"
	"git.home.luguber.info/inful/gddocs/internal/hugo"
	"git.home.luguber.info/inful/gddocs/internal/load"
	"git.home.luguber.info/inful/gddocs/internal/logfields"
	"git.home.luguber.info/inful/gddocs/internal/markdown"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Inputs []string `arg:"" optional:"" name:"input" help:"Class reference dump files (JSON); use - for stdin"`
	Output string   `short:"o" help:"Output directory for generated documents"`
	Format string   `short:"f" help:"Output format (markdown or hugo)"`
	Author string   `help:"Front matter author (hugo format only)"`
	Date   string   `help:"Front matter date as YYYY-MM-DD (hugo format only); defaults to today"`
	Verify bool     `help:"Audit rendered documents with a markdown parser before writing"`
	Watch  bool     `short:"w" help:"Watch input dumps and regenerate on change"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	if len(g.Inputs) == 0 {
		g.Inputs = []string{"-"}
	}
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}
	g.applyOverrides(cfg)

	format, err := convert.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	date := cfg.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	opts := convert.Options{
		Format:      format,
		FrontMatter: hugo.Options{Author: cfg.Author, Date: date},
	}

	if g.Watch {
		return g.runWatch(cfg, opts)
	}
	return runGenerate(g.Inputs, cfg, opts)
}

// applyOverrides folds explicit CLI flags over the file configuration.
func (g *GenerateCmd) applyOverrides(cfg *config.Config) {
	if g.Output != "" {
		cfg.Output.Directory = g.Output
	}
	if g.Format != "" {
		cfg.Format = g.Format
	}
	if g.Author != "" {
		cfg.Author = g.Author
	}
	if g.Date != "" {
		cfg.Date = g.Date
	}
	if g.Verify {
		cfg.Verify = true
	}
}

func runGenerate(inputs []string, cfg *config.Config, opts convert.Options) error {
	dump, err := load.ReadFiles(inputs)
	if err != nil {
		return err
	}
	if dump.Project.Name != "" {
		slog.Debug("Read project header", "name", dump.Project.Name, "version", dump.Project.Version)
	}

	classes, err := gdscript.ClassesFromRawList(dump.Records)
	if err != nil {
		return err
	}
	for _, class := range classes.All() {
		slog.Debug("Built class model", logfields.Class(class.Name),
			slog.Int("functions", len(class.Functions)),
			slog.Int("members", len(class.Members)))
	}
	docs, err := convert.ToMarkdown(classes, opts)
	if err != nil {
		return err
	}

	if cfg.Verify {
		var problems []markdown.Problem
		for _, doc := range docs {
			problems = append(problems, markdown.Verify(doc)...)
		}
		for _, p := range problems {
			slog.Error("Document audit failed", logfields.Document(p.Document), slog.String("detail", p.Detail))
		}
		if len(problems) > 0 {
			return errors.New(errors.CategoryValidation, errors.SeverityFatal,
				fmt.Sprintf("%d problem(s) found in rendered documents", len(problems)))
		}
	}

	if err := writeDocuments(docs, cfg.Output); err != nil {
		return err
	}
	slog.Info("Generation complete",
		slog.Int("classes", classes.Len()),
		logfields.Count(len(docs)),
		logfields.Output(cfg.Output.Directory),
		logfields.Format(cfg.Format))
	return nil
}

func writeDocuments(docs []markdown.Document, out config.OutputConfig) error {
	if out.Clean {
		if err := os.RemoveAll(out.Directory); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to clean output directory")
		}
	}
	if err := os.MkdirAll(out.Directory, 0o755); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory")
	}
	for _, doc := range docs {
		path := filepath.Join(out.Directory, doc.Name+".md")
		if err := os.WriteFile(path, []byte(doc.String()+"\n"), 0o644); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, fmt.Sprintf("failed to write %s", path))
		}
		slog.Debug("Wrote document", logfields.Document(doc.Name), logfields.Path(path))
	}
	return nil
}
