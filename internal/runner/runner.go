package runner

import (
	// standard
	"os"

	// external
	"github.com/charmbracelet/log"

	// local
	"listmerge/internal/blocklist"
	"listmerge/internal/config"
	"listmerge/internal/display"
	"listmerge/internal/rawlist"
	"listmerge/internal/tty"
)

// Run executes one merge invocation: parse the target document, parse
// the raw list, union it into the requested section and report counts.
// The target file is only replaced when -run was given, and only after
// every parsing step succeeded.
func Run(conf *config.Config) error {
	opts := conf.Opts

	doc, err := blocklist.ParseFile(opts.TargetPath)
	if err != nil {
		return err
	}
	log.Debug("target parsed",
		"target", opts.TargetPath, "sections", len(doc.Sections()))

	progress := display.NewProgress(
		"\033[36mparsing raw list\033[0m",
		tty.IsTTY(os.Stderr) && !opts.Debug,
	)
	raw, err := rawlist.ParseFile(
		opts.RawFilePath, conf.Subs, func() { progress.Add(1) })
	progress.Finish()
	if err != nil {
		return err
	}
	log.Info("raw list parsed",
		"file", opts.RawFilePath,
		"lines", raw.Lines,
		"domains", len(raw.Domains),
		"skipped", raw.Skipped)

	stats := doc.Merge(opts.Section, raw.Domains)
	if stats.Created {
		log.Info("section not found in target, it will be created",
			"section", opts.Section, "target", opts.TargetPath)
	}
	log.Info("merge computed",
		"section", opts.Section,
		"new", stats.Added,
		"already-present", stats.Present,
		"section-total", stats.Total)

	if !opts.Run {
		log.Info("dry run, target left untouched (pass -run to write)",
			"target", opts.TargetPath)
		return nil
	}
	if err := doc.WriteFile(opts.TargetPath); err != nil {
		return err
	}
	log.Info("target updated", "target", opts.TargetPath)
	return nil
}
