package server

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/shivashettydarshan/Document-summerize/internal/extractor"
	"github.com/shivashettydarshan/Document-summerize/internal/pipeline"
	"github.com/shivashettydarshan/Document-summerize/internal/playback"
	"github.com/shivashettydarshan/Document-summerize/internal/session"
	"github.com/shivashettydarshan/Document-summerize/internal/speech"
	"github.com/shivashettydarshan/Document-summerize/internal/summarizer"
	"github.com/shivashettydarshan/Document-summerize/internal/translator"
)

const sessionHeader = "X-Session-ID"

// sessionFor resolves the caller's session, creating one on first contact.
func (s *Server) sessionFor(c *fiber.Ctx) *session.Session {
	return s.sessions.GetOrCreate(c.Get(sessionHeader))
}

// writeError surfaces a stage failure verbatim as a single message. No
// partial pipeline output accompanies it.
func writeError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, extractor.ErrUnsupportedFormat),
		errors.Is(err, extractor.ErrEmptyContent),
		errors.Is(err, summarizer.ErrEmptyInput),
		errors.Is(err, translator.ErrUnsupportedLanguage),
		errors.Is(err, translator.ErrEmptyText),
		errors.Is(err, speech.ErrUnsupportedVoice),
		errors.Is(err, pipeline.ErrNoSource),
		errors.Is(err, playback.ErrNotArmed),
		errors.Is(err, playback.ErrNotPlaying),
		errors.Is(err, playback.ErrInvalidTransition):
		return fiber.StatusBadRequest
	case errors.Is(err, playback.ErrStaleAsset):
		return fiber.StatusConflict
	case errors.Is(err, extractor.ErrFetchFailure),
		errors.Is(err, summarizer.ErrModelFailure),
		errors.Is(err, translator.ErrTranslationFailure),
		errors.Is(err, speech.ErrSynthesisFailure):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

// extractRequest pulls text out of the uploaded file and/or URL of a
// multipart request.
func (s *Server) extractRequest(c *fiber.Ctx) (string, error) {
	var text strings.Builder

	if rawURL := strings.TrimSpace(c.FormValue("url")); rawURL != "" {
		part, err := s.extractor.ExtractURL(c.UserContext(), rawURL)
		if err != nil {
			return "", err
		}
		text.WriteString(part)
		text.WriteByte('\n')
	}

	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return "", errors.Join(extractor.ErrEmptyContent, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return "", errors.Join(extractor.ErrEmptyContent, err)
		}

		part, err := s.extractor.ExtractFile(c.UserContext(), fh.Filename, data)
		if err != nil {
			return "", err
		}
		text.WriteString(part)
		text.WriteByte('\n')
	}

	if strings.TrimSpace(text.String()) == "" {
		return "", extractor.ErrEmptyContent
	}
	return text.String(), nil
}

func (s *Server) handleSummarize(c *fiber.Ctx) error {
	ctx := c.UserContext()
	sess := s.sessionFor(c)

	text, err := s.extractRequest(c)
	if err != nil {
		return writeError(c, err)
	}

	maxSentences := 0
	if v := c.FormValue("max_sentences"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			maxSentences = n
		}
	}

	sum, err := s.summarizer.Summarize(ctx, text, maxSentences)
	if err != nil {
		return writeError(c, err)
	}

	sess.SetSummary(sum)
	s.logger.Info(ctx, "Session %s: summary of %d sentences", sess.ID, len(sum.Boundaries))

	return c.JSON(fiber.Map{
		"summary":    sum.Text,
		"sentences":  sum.Boundaries,
		"session_id": sess.ID,
		"status":     "Content processed successfully",
	})
}

type translateRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

func (s *Server) handleTranslate(c *fiber.Ctx) error {
	ctx := c.UserContext()
	sess := s.sessionFor(c)

	var req translateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}

	text := req.Text
	if text == "" {
		if sum := sess.Summary(); sum != nil {
			text = sum.Text
		}
	}

	translated, err := s.translator.Translate(ctx, text, req.Lang)
	if err != nil {
		// The session's displayed summary stays untouched on failure.
		return writeError(c, err)
	}

	sess.SetTranslated(translated)

	return c.JSON(fiber.Map{
		"translated": translated.Text,
		"language":   translator.LanguageName(translated.TargetLanguage),
		"sentences":  translated.Boundaries,
		"session_id": sess.ID,
	})
}

type speakRequest struct {
	Text  string `json:"text"`
	Lang  string `json:"lang"`
	Voice string `json:"voice"`
}

func (s *Server) handleSpeak(c *fiber.Ctx) error {
	ctx := c.UserContext()
	sess := s.sessionFor(c)

	var req speakRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if req.Lang == "" {
		req.Lang = translator.DefaultLanguage
	}
	if !translator.Supported(req.Lang) {
		return writeError(c, fmt.Errorf("%w: %q", translator.ErrUnsupportedLanguage, req.Lang))
	}

	asset, err := s.synthesizer.Synthesize(ctx, req.Text, req.Lang, req.Voice)
	if err != nil {
		return writeError(c, err)
	}

	// Arming discards the prior asset and its timing table wholesale.
	generation := sess.SetAsset(asset)
	s.logger.Info(ctx, "Session %s: asset %s armed (generation %d)", sess.ID, asset.ID, generation)

	return c.JSON(fiber.Map{
		"audio_path": asset.AudioPath,
		"asset_id":   asset.ID,
		"generation": generation,
		"timings":    asset.Timings,
		"session_id": sess.ID,
	})
}

func (s *Server) handlePipeline(c *fiber.Ctx) error {
	ctx := c.UserContext()
	sess := s.sessionFor(c)

	req := pipeline.Request{
		URL:        strings.TrimSpace(c.FormValue("url")),
		TargetLang: c.FormValue("lang"),
		Voice:      c.FormValue("voice"),
		SkipAudio:  c.FormValue("skip_audio") == "true",
	}
	if v := c.FormValue("max_sentences"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.MaxSentences = n
		}
	}

	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return writeError(c, errors.Join(extractor.ErrEmptyContent, err))
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return writeError(c, errors.Join(extractor.ErrEmptyContent, err))
		}
		req.Filename = fh.Filename
		req.Payload = data
	}

	result, err := s.pipeline.Process(ctx, req)
	if err != nil {
		return writeError(c, err)
	}

	sess.SetSummary(result.Summary)
	if result.Translated != nil {
		sess.SetTranslated(result.Translated)
	}

	resp := fiber.Map{
		"summary":    result.Summary.Text,
		"sentences":  result.Summary.Boundaries,
		"session_id": sess.ID,
	}
	if result.Translated != nil {
		resp["translated"] = result.Translated.Text
		resp["translated_sentences"] = result.Translated.Boundaries
	}
	if result.Asset != nil {
		generation := sess.SetAsset(result.Asset)
		resp["audio_path"] = result.Asset.AudioPath
		resp["asset_id"] = result.Asset.ID
		resp["generation"] = generation
		resp["timings"] = result.Asset.Timings
	}

	return c.JSON(resp)
}

func (s *Server) handleUploads(c *fiber.Ctx) error {
	name := c.Params("filename")
	if name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid file name"})
	}
	return c.SendFile(filepath.Join(s.cfg.Paths.Uploads, name))
}
