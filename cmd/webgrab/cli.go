package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/webgrab/grab"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Grabber *grab.Grabber
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose      bool          `short:"v" help:"Log every fetch at debug level"`
	Timeout      time.Duration `default:"15s" env:"WEBGRAB_TIMEOUT" help:"Page fetch timeout"`
	AssetTimeout time.Duration `default:"10s" env:"WEBGRAB_ASSET_TIMEOUT" help:"Per-image download timeout"`
	UserAgent    string        `env:"WEBGRAB_USER_AGENT" help:"User-Agent header (default: a desktop Chrome string)"`
	Concurrency  int           `short:"c" default:"4" env:"WEBGRAB_CONCURRENCY" help:"Concurrent image downloads"`

	Scrape  ScrapeCmd  `cmd:"" help:"Extract everything from a page as JSON"`
	Contact ContactCmd `cmd:"" help:"Show emails, phone numbers and address"`
	Social  SocialCmd  `cmd:"" help:"Show social media profile links"`
	Images  ImagesCmd  `cmd:"" help:"Download all images as a zip archive"`
	Icons   IconsCmd   `cmd:"" help:"Download logos and favicons as a zip archive"`
	Serve   ServeCmd   `cmd:"" help:"Serve the REST API"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL string `arg:"" help:"Page URL (https:// is assumed when missing)"`
}

// ContactCmd is the "contact" subcommand.
type ContactCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// SocialCmd is the "social" subcommand.
type SocialCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// ImagesCmd is the "images" subcommand.
type ImagesCmd struct {
	URL    string   `arg:"" help:"Page URL"`
	Output string   `short:"o" help:"Output file (default <host>_images.zip)"`
	Kinds  []string `short:"k" name:"kind" help:"Only download images of this kind: favicon, logo or image (repeatable)"`
}

// IconsCmd is the "icons" subcommand.
type IconsCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Output string `short:"o" help:"Output file (default <host>_icons.zip)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8000" env:"WEBGRAB_ADDR" help:"Listen address"`
}
