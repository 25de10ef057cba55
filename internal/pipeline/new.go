package pipeline

import (
	"github.com/shivashettydarshan/Document-summerize/internal/extractor"
	"github.com/shivashettydarshan/Document-summerize/internal/logger"
	"github.com/shivashettydarshan/Document-summerize/internal/speech"
	"github.com/shivashettydarshan/Document-summerize/internal/summarizer"
	"github.com/shivashettydarshan/Document-summerize/internal/translator"
)

type implPipeline struct {
	extractor   extractor.Extractor
	summarizer  summarizer.Summarizer
	translator  translator.Translator
	synthesizer speech.Synthesizer
	logger      logger.Logger
}

// New creates a Pipeline wiring the four stages together.
func New(
	ext extractor.Extractor,
	sum summarizer.Summarizer,
	tr translator.Translator,
	syn speech.Synthesizer,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		extractor:   ext,
		summarizer:  sum,
		translator:  tr,
		synthesizer: syn,
		logger:      log,
	}
}
