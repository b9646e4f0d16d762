// Package webgrab extracts business information from a single web page:
// company metadata, contact details, social profile links and image assets.
// Selected images can be packaged into a zip archive.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, zip/, chi/).
package webgrab
