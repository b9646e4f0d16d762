package main

import (
	"fmt"

	"github.com/fwojciec/webgrab"
)

// Run executes the social command.
func (c *SocialCmd) Run(deps *Dependencies) error {
	result, err := deps.Grabber.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webgrab.ErrorMessage(err))
		return err
	}

	var found int
	for _, platform := range webgrab.Platforms {
		link := result.Social.Get(platform)
		if link == "" {
			continue
		}
		found++
		fmt.Fprintf(deps.Stdout, "%-10s %s\n", platform, link)
	}

	if found == 0 {
		fmt.Fprintf(deps.Stdout, "No social links found on %s\n", result.URL)
	}
	return nil
}
