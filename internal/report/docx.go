package report

import (
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/shivashettydarshan/Document-summerize/internal/sentence"
	"github.com/shivashettydarshan/Document-summerize/internal/summarizer"
	"github.com/shivashettydarshan/Document-summerize/internal/translator"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteSummaryDocx writes a summary, and optionally its translation, as a
// styled docx file. One paragraph per sentence so the document mirrors the
// boundary structure of the artifacts.
func WriteSummaryDocx(title string, sum *summarizer.Summary, tr *translator.TranslatedSummary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	addStyledRun(doc.AddParagraph(""), time.Now().Format("2006-01-02 15:04"), false, 11)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Summary", true, 15)
	for _, sp := range sum.Boundaries {
		addStyledRun(doc.AddParagraph(""), sentence.Slice(sum.Text, sp), false, fontSize)
	}

	if tr != nil {
		doc.AddParagraph("")
		addStyledRun(doc.AddParagraph(""), "Translation ("+translator.LanguageName(tr.TargetLanguage)+")", true, 15)
		for _, sp := range tr.Boundaries {
			addStyledRun(doc.AddParagraph(""), sentence.Slice(tr.Text, sp), false, fontSize)
		}
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
