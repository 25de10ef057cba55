package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shivashettydarshan/Document-summerize/internal/pipeline"
	"github.com/shivashettydarshan/Document-summerize/internal/report"
)

// Process runs one dropped document through the whole pipeline and writes the
// summary docx plus the narration audio into the output directory.
func (p *implProcessor) Process(ctx context.Context, docPath string) error {
	startTime := time.Now()
	docName := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing document: %s", docPath)
	p.logger.Info(ctx, "========================================")

	data, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	result, err := p.pipeline.Process(ctx, pipeline.Request{
		Filename: filepath.Base(docPath),
		Payload:  data,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, docName+".docx")
	if err := report.WriteSummaryDocx(docName, result.Summary, result.Translated, docxPath); err != nil {
		return fmt.Errorf("write summary docx: %w", err)
	}

	var audioPath string
	if result.Asset != nil {
		audioPath = filepath.Join(p.cfg.Paths.Output, docName+".mp3")
		src := filepath.Join(p.cfg.Paths.Uploads, filepath.Base(result.Asset.AudioPath))
		if err := p.copyFile(src, audioPath); err != nil {
			p.logger.Warn(ctx, "Failed to copy narration audio: %v", err)
			audioPath = ""
		}
	}

	// Move the source document out of the inbox so it won't be re-processed
	archived := filepath.Join(p.cfg.Paths.Output, filepath.Base(docPath))
	if err := os.Rename(docPath, archived); err != nil {
		p.logger.Warn(ctx, "Failed to move document out of inbox: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Summary: %s", docxPath)
	if audioPath != "" {
		p.logger.Info(ctx, "Narration: %s", audioPath)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

// copyFile copies a file from src to dst
func (p *implProcessor) copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
