package out

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/signintech/gopdf"

	diagdomain "sehat/internal/modules/diagnosis/domain"
)

// fontPaths are probed in order; DejaVuSans ships with most distros.
var fontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
}

// PDFRenderer renders a diagnosis record as a one-page PDF report.
type PDFRenderer struct{}

func NewPDFRenderer() PDFRenderer {
	return PDFRenderer{}
}

func (PDFRenderer) Render(record diagdomain.Record, patientName string) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	loaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("body", path); err == nil {
			loaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !loaded {
		return nil, fmt.Errorf("no usable TTF font found: %w", fontErr)
	}

	if err := pdf.SetFont("body", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "SehatAI Analysis Report")
	pdf.Br(30)

	if err := pdf.SetFont("body", "", 11); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Analysis: %s", record.AnalysisID))
	pdf.Br(14)
	if patientName != "" {
		pdf.Cell(nil, fmt.Sprintf("Patient: %s", patientName))
		pdf.Br(14)
	}
	pdf.Cell(nil, fmt.Sprintf("Date: %s", record.Timestamp.Format("2006-01-02 15:04 MST")))
	pdf.Br(14)
	pdf.Cell(nil, fmt.Sprintf("Risk level: %s (confidence %.0f%%)", record.RiskLevel, record.ConfidenceScore*100))
	pdf.Br(24)

	if err := pdf.SetFont("body", "", 14); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Clinical summary")
	pdf.Br(16)
	if err := pdf.SetFont("body", "", 11); err != nil {
		return nil, err
	}
	writeWrapped(&pdf, record.ClinicalSummary)
	pdf.Br(10)

	if len(record.Recommendations) > 0 {
		if err := pdf.SetFont("body", "", 14); err != nil {
			return nil, err
		}
		pdf.Cell(nil, "Recommendations")
		pdf.Br(16)
		if err := pdf.SetFont("body", "", 11); err != nil {
			return nil, err
		}
		for _, rec := range record.Recommendations {
			writeWrapped(&pdf, "- "+rec)
		}
		pdf.Br(10)
	}

	if len(record.Sources) > 0 {
		if err := pdf.SetFont("body", "", 9); err != nil {
			return nil, err
		}
		writeWrapped(&pdf, "Sources: "+strings.Join(record.Sources, ", "))
	}

	pdf.SetY(800)
	if err := pdf.SetFont("body", "", 8); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Generated %s. Not a medical diagnosis; consult a clinician.", time.Now().UTC().Format(time.RFC3339)))

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeWrapped(pdf *gopdf.GoPdf, text string) {
	lines, err := pdf.SplitText(text, 500)
	if err != nil {
		lines = []string{text}
	}
	for _, line := range lines {
		pdf.Cell(nil, line)
		pdf.Br(13)
	}
}
