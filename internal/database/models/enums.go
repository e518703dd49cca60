package models

import "strings"

// DisplayStyle defines how the members of a relation group are rendered
type DisplayStyle string

const (
	DisplayStyleImageProduct DisplayStyle = "image_product"
	DisplayStyleImageCustom  DisplayStyle = "image_custom"
	DisplayStyleText         DisplayStyle = "text"
	DisplayStyleDropdown     DisplayStyle = "dropdown"
)

// DefaultDisplayStyle is applied when a group is saved without a style
const DefaultDisplayStyle = DisplayStyleImageProduct

// DisplayContext is the rendering situation a relation is requested for
type DisplayContext string

const (
	ContextSingle  DisplayContext = "single"
	ContextListing DisplayContext = "listing"
)

// IsValid checks if the DisplayStyle is valid
func (s DisplayStyle) IsValid() bool {
	switch s {
	case DisplayStyleImageProduct, DisplayStyleImageCustom, DisplayStyleText, DisplayStyleDropdown:
		return true
	}
	return false
}

// IsImage reports whether members are rendered as image swatches
func (s DisplayStyle) IsImage() bool {
	return s == DisplayStyleImageProduct || s == DisplayStyleImageCustom
}

// IsValid checks if the DisplayContext is valid
func (c DisplayContext) IsValid() bool {
	return c == ContextSingle || c == ContextListing
}

// ParseDisplayContext maps a request value to a DisplayContext.
// "archive" is accepted as an alias of listing; empty means single.
func ParseDisplayContext(value string) (DisplayContext, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(ContextSingle):
		return ContextSingle, true
	case string(ContextListing), "archive":
		return ContextListing, true
	}
	return "", false
}
