package server

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) handlePlaybackStart(c *fiber.Ctx) error {
	sess := s.sessionFor(c)

	generation, err := sess.Sync.Start()
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"generation": generation,
		"state":      sess.Sync.State().String(),
		"session_id": sess.ID,
	})
}

type tickRequest struct {
	Generation uint64 `json:"generation"`
	PositionMs int64  `json:"position_ms"`
}

// handlePlaybackTick maps the caller's true elapsed playback position to the
// highlighted sentence. The index is re-derived from the timing table on
// every tick, so repeated or delayed requests cannot accumulate drift.
func (s *Server) handlePlaybackTick(c *fiber.Ctx) error {
	sess := s.sessionFor(c)

	var req tickRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}

	hs, err := sess.Sync.Tick(req.Generation, req.PositionMs)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"active_sentence": hs.ActiveSentence,
		"previous":        hs.Previous,
		"position_ms":     hs.PositionMs,
		"generation":      hs.Generation,
		"session_id":      sess.ID,
	})
}

func (s *Server) handlePlaybackPause(c *fiber.Ctx) error {
	sess := s.sessionFor(c)

	if err := sess.Sync.Pause(); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"state": sess.Sync.State().String(), "session_id": sess.ID})
}

func (s *Server) handlePlaybackStop(c *fiber.Ctx) error {
	sess := s.sessionFor(c)

	if err := sess.Sync.Stop(); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"state": sess.Sync.State().String(), "session_id": sess.ID})
}
