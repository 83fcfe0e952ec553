package config

import (
	// standard
	"flag"
	"fmt"
	"io"
	"os"

	// external
	"github.com/charmbracelet/log"
	// local
)

type Config struct {
	Opts *Options
	Subs SubTable
}

func exitUsage(format string, a ...interface{}) {
	err := fmt.Errorf(format, a...)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	flag.Usage()
	os.Exit(1)
}

// Init parses the command line, configures logging and loads the
// substitution table. Any error here is a usage error: the process
// exits before the target file could possibly be touched.
func Init() *Config {
	conf := &Config{}

	opts, err := ParseOptions()
	if err != nil {
		exitUsage("%w", err)
	}

	log.SetLevel(log.InfoLevel)
	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}
	if opts.LogFilePath != "" {
		f, err := os.OpenFile(
			opts.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			exitUsage("-logfile: %w", err)
		}
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	if opts.SubsPath == "" {
		// may come from the environment (or a .env file, see main)
		opts.SubsPath = os.Getenv("LISTMERGE_SUBS")
	}
	if opts.SubsPath == "" {
		conf.Subs, err = NewSubTable(DEFAULT_SUBS)
	} else {
		conf.Subs, err = NewSubTableFromFile(opts.SubsPath)
	}
	if err != nil {
		exitUsage("-subs: %w", err)
	}

	if opts.Section == "" || opts.RawFilePath == "" || opts.TargetPath == "" {
		if opts.Run {
			exitUsage("-run requires -s, -f and -t")
		}
		log.Info("nothing to do, bye! (need -s, -f and -t; see -h)")
		os.Exit(0)
	}

	conf.Opts = opts
	return conf
}
