// Package handlers wires the Telnet transport to the encounter engine.
package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/encounters/internal/frontend/console"
	"github.com/cory-johannsen/encounters/internal/frontend/telnet"
	"github.com/cory-johannsen/encounters/internal/game/campaign"
	"github.com/cory-johannsen/encounters/internal/game/encounter"
	"github.com/cory-johannsen/encounters/internal/observability"
)

// CampaignFactory creates a fresh campaign bound to one session's provider.
type CampaignFactory func(sel encounter.SelectionProvider, n encounter.Narrator) (*campaign.Campaign, error)

// CampaignHandler plays one campaign per Telnet connection.
type CampaignHandler struct {
	factory CampaignFactory
	logger  *zap.Logger
}

// NewCampaignHandler creates a CampaignHandler.
//
// Precondition: factory and logger must be non-nil.
func NewCampaignHandler(factory CampaignFactory, logger *zap.Logger) *CampaignHandler {
	if factory == nil {
		panic("handlers.NewCampaignHandler: precondition violated: factory must be non-nil")
	}
	return &CampaignHandler{factory: factory, logger: logger}
}

// HandleSession runs a campaign to completion over conn. A read timeout or
// disconnect abandons the campaign.
func (h *CampaignHandler) HandleSession(ctx context.Context, conn *telnet.Conn) error {
	p := console.NewProvider(conn)
	p.Heading = func(s string) string { return telnet.Colorize(telnet.Bold+telnet.Cyan, s) }

	c, err := h.factory(p, p)
	if err != nil {
		_ = conn.WriteLine(telnet.Colorize(telnet.Red, "The campaign could not be started."))
		return fmt.Errorf("creating campaign: %w", err)
	}
	log := h.logger.With(observability.Campaign(c.ID), observability.RemoteAddr(conn.RemoteAddr().String()))
	log.Info("session campaign started")

	if err := conn.WriteLine(telnet.Colorize(telnet.Bold+telnet.BrightWhite, "Assemble! Your party sets out.")); err != nil {
		return err
	}

	result, err := c.Run(ctx)
	log.Info("session campaign finished",
		zap.Stringer("result", result),
		zap.Int("ticks", c.Ticks()),
		zap.Error(err),
	)
	if err != nil {
		return err
	}
	return conn.WriteLine(RenderResult(result, c.Ticks()))
}

// RenderResult formats the campaign's end state as colored text.
func RenderResult(r campaign.Result, ticks int) string {
	switch r {
	case campaign.ResultVictory:
		return telnet.Colorf(telnet.Green, "Victory! Thanos is defeated after %d ticks.", ticks)
	case campaign.ResultDefeat:
		return telnet.Colorf(telnet.Red, "Defeat. The party has lost after %d ticks.", ticks)
	default:
		return telnet.Colorf(telnet.Yellow, "The campaign ends unresolved after %d ticks.", ticks)
	}
}
