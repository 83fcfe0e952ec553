package config

import (
	// standard
	"flag"
	"fmt"
	"os"

	// external
	// local
	"listmerge/internal/tty"
)

type Options struct {
	Section     string
	RawFilePath string
	TargetPath  string
	SubsPath    string
	LogFilePath string
	Run         bool
	Debug       bool
	ShowHelp    bool
	ShowVersion bool
}

func ShowHelp() {
	var rst = "\033[0m"
	var bol = "\033[1m"
	var yel = "\033[33m"
	var gra = "\033[37m"
	var whi = "\033[97m"
	var s string

	s += fmt.Sprintf("\n")
	s += fmt.Sprintf(
		"%s%slistmerge merges raw domain lists into a sectioned, sorted blocklist file%s\n",
		rst, bol, rst)
	s += fmt.Sprintf("\n")

	s += fmt.Sprintf(
		"Usage:      %slistmerge%s %s[OPTION]...%s\n",
		whi, rst, yel, rst)
	s += fmt.Sprintf(
		"Example:    %slistmerge%s %s-s%s Scam %s-f%s raw.txt %s-t%s blocklist.txt %s-run%s\n",
		whi, rst, yel, rst, yel, rst, yel, rst, yel, rst)
	s += fmt.Sprintf("\n")

	s += fmt.Sprintf(
		"%sMERGE OPTIONS:%s\n",
		bol, rst)
	s += fmt.Sprintf(
		"   %s-s%s %s[NAME]%s       section of the target file to update (eg: %s\"Scam\"%s)\n",
		yel, rst, gra, rst, yel, rst)
	s += fmt.Sprintf(
		"   %s-f%s %s[FILE]%s       file with raw candidate domains, one per line\n",
		yel, rst, gra, rst)
	s += fmt.Sprintf(
		"   %s-t%s %s[FILE]%s       target blocklist file (created if absent)\n",
		yel, rst, gra, rst)
	s += fmt.Sprintf(
		"   %s-subs%s %s[FILE]%s    substitution table (defaults to the built-in one)\n",
		yel, rst, gra, rst)
	s += fmt.Sprintf(
		"   %s-run%s           write the merge result; without it only a dry run is done\n",
		yel, rst)
	s += fmt.Sprintf("\n")

	s += fmt.Sprintf(
		"%sDEBUG:%s\n",
		bol, rst)
	s += fmt.Sprintf(
		"   %s-h, --help%s     show help\n",
		yel, rst)
	s += fmt.Sprintf(
		"   %s-version%s       display version of listmerge\n",
		yel, rst)
	s += fmt.Sprintf(
		"   %s-debug%s         show per-line diagnostics (on STDERR)\n",
		yel, rst)
	s += fmt.Sprintf(
		"   %s-logfile%s %s[FILE]%s mirror diagnostics to a file\n",
		yel, rst, gra, rst)
	s += fmt.Sprintf("\n")
	tty.SmartFprintf(os.Stdout, "%s", s)
}

func ShowVersion() {
	tty.SmartFprintf(os.Stdout, "listmerge %s\n", VERSION)
	os.Exit(0)
}

func ParseOptions() (*Options, error) {
	opts := &Options{}
	// MERGE OPTIONS (-s/-f/-t have long spellings for scripts)
	flag.StringVar(&opts.Section, "s", "", "section name")
	flag.StringVar(&opts.Section, "section", "", "section name")
	flag.StringVar(&opts.RawFilePath, "f", "", "file with raw candidate domains")
	flag.StringVar(&opts.RawFilePath, "filename", "", "file with raw candidate domains")
	flag.StringVar(&opts.TargetPath, "t", "", "target blocklist file")
	flag.StringVar(&opts.TargetPath, "target", "", "target blocklist file")
	flag.StringVar(&opts.SubsPath, "subs", "", "substitution table file")
	flag.BoolVar(&opts.Run, "run", false, "write the merge result (otherwise dry run)")
	// DEBUG
	flag.BoolVar(&opts.ShowHelp, "h", false, "show help")
	flag.BoolVar(&opts.ShowVersion, "version", false, "display version of listmerge")
	flag.BoolVar(&opts.Debug, "debug", false, "show per-line diagnostics")
	flag.StringVar(&opts.LogFilePath, "logfile", "", "mirror diagnostics to a file")

	flag.Usage = ShowHelp
	flag.Parse()

	if opts.ShowHelp {
		flag.Usage()
		os.Exit(0)
	}
	if opts.ShowVersion {
		ShowVersion()
	}
	return opts, nil
}
