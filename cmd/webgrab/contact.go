package main

import (
	"fmt"

	"github.com/fwojciec/webgrab"
)

// Run executes the contact command.
func (c *ContactCmd) Run(deps *Dependencies) error {
	result, err := deps.Grabber.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webgrab.ErrorMessage(err))
		return err
	}

	contact := result.Contact
	if len(contact.Emails) == 0 && len(contact.Phones) == 0 && contact.Address == "" {
		fmt.Fprintf(deps.Stdout, "No contact information found on %s\n", result.URL)
		return nil
	}

	for _, email := range contact.Emails {
		fmt.Fprintf(deps.Stdout, "email    %s\n", email)
	}
	for _, phone := range contact.Phones {
		fmt.Fprintf(deps.Stdout, "phone    %s  (%s)\n", phone.Number, phone.Label)
	}
	if contact.Address != "" {
		fmt.Fprintf(deps.Stdout, "address  %s\n", contact.Address)
	}

	return nil
}
