package report

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/signintech/gopdf"
)

// RenderPDF lays the report out as an A4 document and returns the bytes.
func RenderPDF(rep *Report) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	// DejaVuSans covers the accented characters case titles tend to
	// carry. Try the common distro paths.
	fontPaths := []string{
		"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}

	var fontErr error
	fontLoaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, errors.Wrap(fontErr, "failed to load PDF font, ensure ttf-dejavu is installed")
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Social Exclusion Diagnostic Report")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Case: %s", rep.Title))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Tool: %s", rep.ToolName))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Generated: %s", rep.GeneratedAt.Format("02.01.2006 15:04")))
	pdf.Br(25)

	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Synthetic exclusion index: %.2f — %s", rep.Composite, rep.Band.Label))
	pdf.Br(15)
	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Risk flags checked: %d    Progress: %.0f%%", rep.TotalRisks, rep.Progress*100))
	pdf.Br(25)

	// Per-dimension comparison
	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Dimensions (valuation / objective / self-perception):")
	pdf.Br(15)
	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return nil, err
	}
	for _, d := range rep.Dimensions {
		line := fmt.Sprintf("- %s: %d / %.2f / %.2f (risks: %d)",
			d.Title, d.Valuation, d.Objective, d.SelfPerception, d.RisksChecked)
		pdf.Cell(nil, line)
		pdf.Br(14)
	}
	pdf.Br(10)

	// Alerts
	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Compound-risk alerts:")
	pdf.Br(15)
	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return nil, err
	}
	if len(rep.Alerts) == 0 {
		pdf.Cell(nil, "- No alert patterns detected.")
		pdf.Br(14)
	}
	for _, a := range rep.Alerts {
		line := fmt.Sprintf("- [%s] %s: %s", a.Severity, a.Title, a.RecommendedAction)
		lines, _ := pdf.SplitText(line, 500)
		for _, l := range lines {
			pdf.Cell(nil, l)
			pdf.Br(12)
		}
		pdf.Br(4)
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "write PDF")
	}
	return buf.Bytes(), nil
}
