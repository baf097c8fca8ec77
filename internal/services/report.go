package services

import (
	"bytes"
	"strconv"

	"github.com/go-pdf/fpdf"
)

// PDF layout constants, US Letter in points (612 x 792).
const (
	reportNameX   = 100.0
	reportVotesX  = 350.0
	reportIndentX = 130.0
	reportTopY    = 50.0
	reportRowStep = 20.0
	reportMaxY    = 742.0
)

func newReportPage(pdf *fpdf.Fpdf, heading string) float64 {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(reportNameX, reportTopY, heading)
	pdf.SetFont("Helvetica", "", 11)
	return reportTopY + reportRowStep
}

// advance moves the cursor one row down, starting a fresh page when the
// current one is full.
func advance(pdf *fpdf.Fpdf, y float64) float64 {
	y += reportRowStep
	if y > reportMaxY {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "", 11)
		return reportTopY
	}
	return y
}

// RenderStatisticsPDF renders one election's tallies as a downloadable PDF.
func RenderStatisticsPDF(stats ElectionStats) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	y := newReportPage(pdf, "Election Statistics for "+stats.ElectionTitle)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(reportNameX, y, "Candidate Name")
	pdf.Text(reportVotesX, y, "Total Votes")
	pdf.SetFont("Helvetica", "", 11)
	y = advance(pdf, y)

	for _, tally := range stats.Candidates {
		pdf.Text(reportNameX, y, tally.CandidateName)
		pdf.Text(reportVotesX, y, strconv.Itoa(tally.TotalVotes))
		y = advance(pdf, y)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderAllStatisticsPDF renders the tallies of every election in one
// document, candidates indented under their election title.
func RenderAllStatisticsPDF(stats []ElectionStats) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	y := newReportPage(pdf, "Election Statistics for All Elections")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(reportNameX, y, "Election / Candidate")
	pdf.Text(reportVotesX, y, "Total Votes")
	pdf.SetFont("Helvetica", "", 11)
	y = advance(pdf, y)

	for _, election := range stats {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(reportNameX, y, election.ElectionTitle)
		pdf.SetFont("Helvetica", "", 11)
		y = advance(pdf, y)

		for _, tally := range election.Candidates {
			pdf.Text(reportIndentX, y, tally.CandidateName)
			pdf.Text(reportVotesX, y, strconv.Itoa(tally.TotalVotes))
			y = advance(pdf, y)
		}
		y = advance(pdf, y) // gap between elections
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
