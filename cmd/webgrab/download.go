package main

import (
	"fmt"

	"github.com/fwojciec/webgrab"
	"github.com/fwojciec/webgrab/fs"
	"github.com/fwojciec/webgrab/grab"
)

// Run executes the images command.
func (c *ImagesCmd) Run(deps *Dependencies) error {
	kinds, err := grab.ParseKinds(c.Kinds)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webgrab.ErrorMessage(err))
		return err
	}
	dl, err := deps.Grabber.Images(deps.Ctx, c.URL, kinds...)
	return saveDownload(deps, dl, err, c.Output)
}

// Run executes the icons command.
func (c *IconsCmd) Run(deps *Dependencies) error {
	dl, err := deps.Grabber.Icons(deps.Ctx, c.URL)
	return saveDownload(deps, dl, err, c.Output)
}

func saveDownload(deps *Dependencies, dl *grab.Download, err error, output string) error {
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webgrab.ErrorMessage(err))
		return err
	}

	if output == "" {
		output = dl.Filename
	}
	if err := fs.WriteArchive(output, dl.Archive.Data); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return fmt.Errorf("write %s: %w", output, err)
	}

	fmt.Fprintf(deps.Stdout, "Saved %d files to %s", len(dl.Archive.Entries), output)
	if dl.Archive.Failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed)", dl.Archive.Failed)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}
