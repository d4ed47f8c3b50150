package main

import "time"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Checks   string        `short:"c" default:"checks.json" env:"HTMLGRADE_CHECKS" help:"Path to checks.json"`
	File     string        `short:"f" help:"Path to index.html"`
	URL      string        `short:"u" name:"url" help:"URL of index.html"`
	Download string        `default:"downloadedindex.html" help:"Where HTML fetched with --url is saved"`
	Timeout  time.Duration `default:"0s" help:"HTTP timeout, 0 waits indefinitely"`
	Strict   bool          `help:"Fail on selectors that cannot be parsed instead of reporting them absent"`
	Verbose  bool          `short:"v" help:"Log progress to stderr"`
}
