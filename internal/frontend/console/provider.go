// Package console implements the engine's SelectionProvider and Narrator as
// numbered text menus over any line-oriented terminal: standard input and
// output for local play, or a Telnet connection for networked play.
package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/encounters/internal/game/actor"
	"github.com/cory-johannsen/encounters/internal/game/combat"
)

// Terminal is a line-oriented text device.
type Terminal interface {
	// ReadLine returns the next line of input without its terminator.
	ReadLine() (string, error)
	// WriteLine writes text followed by a line break.
	WriteLine(text string) error
	// WritePrompt writes text without a line break.
	WritePrompt(prompt string) error
}

// ErrNoInput is returned when the terminal closes mid-prompt.
var ErrNoInput = errors.New("console: input closed")

// Provider renders menus and narration on a Terminal. It reprompts until the
// player enters a valid choice, so every index it returns is in range.
type Provider struct {
	term Terminal
	// Heading styles menu titles. Defaults to the identity function.
	Heading func(string) string

	writeErr error
}

// NewProvider returns a Provider writing to term.
//
// Precondition: term must be non-nil.
func NewProvider(term Terminal) *Provider {
	if term == nil {
		panic("console.NewProvider: precondition violated: term must be non-nil")
	}
	return &Provider{term: term, Heading: func(s string) string { return s }}
}

// Narrate writes text. A write failure is reported by the next choice.
func (p *Provider) Narrate(text string) {
	if p.writeErr != nil {
		return
	}
	p.writeErr = p.term.WriteLine(text)
}

// ChooseActor lists the party with their stats.
func (p *Provider) ChooseActor(ctx context.Context, party []*actor.Actor) (int, error) {
	options := make([]string, len(party))
	for i, a := range party {
		options[i] = a.String()
	}
	return p.choose(ctx, "Choose a hero:", options)
}

// ChooseStat lists the actor's stats in archetype order.
func (p *Provider) ChooseStat(ctx context.Context, a *actor.Actor) (int, error) {
	stats := a.Stats()
	options := make([]string, len(stats))
	for i, s := range stats {
		options[i] = s.String()
	}
	return p.choose(ctx, fmt.Sprintf("Choose a stat for %s:", a.Name), options)
}

// ChooseSpecialMove lists the actor's available special moves.
func (p *Provider) ChooseSpecialMove(ctx context.Context, a *actor.Actor) (int, error) {
	moves := a.SpecialMoves()
	options := make([]string, len(moves))
	for i, m := range moves {
		options[i] = m.Name()
	}
	return p.choose(ctx, fmt.Sprintf("Choose a special move for %s:", a.Name), options)
}

// ChooseItem lists the items held by s.
func (p *Provider) ChooseItem(ctx context.Context, s *combat.StatBlock) (int, error) {
	return p.choose(ctx, fmt.Sprintf("Choose an item from %s:", s.Name), s.Items())
}

// Confirm asks a yes/no question until it gets an answer.
func (p *Provider) Confirm(ctx context.Context, prompt string) (bool, error) {
	for {
		line, err := p.ask(ctx, prompt+" [y/n] ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err := p.term.WriteLine("Please answer y or n."); err != nil {
			return false, err
		}
	}
}

// choose prints a numbered menu and returns the zero-based index of the
// player's pick.
//
// Precondition: options is non-empty.
func (p *Provider) choose(ctx context.Context, title string, options []string) (int, error) {
	if len(options) == 0 {
		panic("console: menu with no options: " + title)
	}
	if err := p.term.WriteLine(p.Heading(title)); err != nil {
		return 0, err
	}
	for i, opt := range options {
		if err := p.term.WriteLine(fmt.Sprintf("  %d. %s", i+1, opt)); err != nil {
			return 0, err
		}
	}
	for {
		line, err := p.ask(ctx, "> ")
		if err != nil {
			return 0, err
		}
		if n, convErr := strconv.Atoi(line); convErr == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		if err := p.term.WriteLine(fmt.Sprintf("Invalid choice. Enter a number from 1 to %d.", len(options))); err != nil {
			return 0, err
		}
	}
}

func (p *Provider) ask(ctx context.Context, prompt string) (string, error) {
	if p.writeErr != nil {
		return "", p.writeErr
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := p.term.WritePrompt(prompt); err != nil {
		return "", err
	}
	line, err := p.term.ReadLine()
	if err != nil && line == "" {
		return "", fmt.Errorf("%w: %w", ErrNoInput, err)
	}
	return strings.TrimSpace(line), nil
}
