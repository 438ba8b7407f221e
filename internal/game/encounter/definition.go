package encounter

import (
	"errors"
	"fmt"
)

// OutcomeText is the narrative shown for one outcome.
type OutcomeText struct {
	Message string `yaml:"message" json:"message"`
}

// Definition is one encounter record as authored in content files.
type Definition struct {
	PrimaryAttribute   string       `yaml:"primary_attribute" json:"primary_attribute"`
	SecondaryAttribute string       `yaml:"secondary_attribute" json:"secondary_attribute"`
	PromptText         string       `yaml:"prompt_text" json:"prompt_text"`
	Pass               *OutcomeText `yaml:"pass" json:"pass"`
	Fail               *OutcomeText `yaml:"fail" json:"fail"`
	PartialPass        *OutcomeText `yaml:"partial_pass" json:"partial_pass"`
	// Enemy optionally names an npc template; such records become enemy
	// encounters.
	Enemy string `yaml:"enemy,omitempty" json:"enemy,omitempty"`
}

// ConfigurationError reports a malformed encounter definition.
type ConfigurationError struct {
	// Source names the file or input the record came from.
	Source string
	// Index is the zero-based record position within Source.
	Index int
	// Field is the dotted path of the offending field, e.g. "pass.message".
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("encounter definition %d in %s: field %q %s", e.Index, e.Source, e.Field, e.Reason)
}

// IsConfigurationError reports whether err wraps a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// Validate returns a *ConfigurationError for the first missing field.
func (d *Definition) Validate(source string, index int) error {
	missing := func(field string) error {
		return &ConfigurationError{Source: source, Index: index, Field: field, Reason: "is missing"}
	}
	switch {
	case d.PrimaryAttribute == "":
		return missing("primary_attribute")
	case d.SecondaryAttribute == "":
		return missing("secondary_attribute")
	case d.PromptText == "":
		return missing("prompt_text")
	case d.Pass == nil || d.Pass.Message == "":
		return missing("pass.message")
	case d.Fail == nil || d.Fail.Message == "":
		return missing("fail.message")
	case d.PartialPass == nil || d.PartialPass.Message == "":
		return missing("partial_pass.message")
	}
	return nil
}
