// Package report exports analysis results as multi-sheet Excel workbooks.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/chunklens/chunklens/internal/analysis"
)

// Sheet names in the exported workbook.
const (
	SheetSummary    = "Summary"
	SheetParagraphs = "Paragraphs"
	SheetChunks     = "Chunks"
	SheetEntities   = "Entities"
	SheetHints      = "Hints"
)

// WriteXLSX exports an analysis result and its hints to an .xlsx workbook.
func WriteXLSX(res *analysis.Result, hints []analysis.Hint, path string) error {
	if res == nil {
		return fmt.Errorf("no analysis available to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return fmt.Errorf("could not create summary sheet: %w", err)
	}
	if err := writeRows(f, SheetSummary, summaryRows(res, hints)); err != nil {
		return err
	}

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{SheetParagraphs, paragraphRows(res)},
		{SheetChunks, chunkRows(res)},
		{SheetEntities, entityRows(res)},
		{SheetHints, hintRows(hints)},
	}
	for _, sheet := range sheets {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return fmt.Errorf("could not create sheet %q: %w", sheet.name, err)
		}
		if err := writeRows(f, sheet.name, sheet.rows); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("could not save %s: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return fmt.Errorf("invalid cell coordinates: %w", err)
			}
			if err := f.SetCellValue(sheet, cellName, cell); err != nil {
				return fmt.Errorf("could not set cell %s!%s: %w", sheet, cellName, err)
			}
		}
	}
	return nil
}

func summaryRows(res *analysis.Result, hints []analysis.Hint) [][]interface{} {
	return [][]interface{}{
		{"Metric", "Value"},
		{"Chunk size", res.ChunkSize},
		{"Tokens (GPT)", res.TokenCounts.GPT},
		{"Tokens (Claude)", res.TokenCounts.Claude},
		{"Tokens (Gemini)", res.TokenCounts.Gemini},
		{"Variance %", res.VariancePct},
		{"Words", res.WordCount},
		{"Words per token", res.WordsPerToken},
		{"Efficiency", res.Efficiency},
		{"Paragraphs", len(res.Paragraphs)},
		{"Chunks", len(res.Chunks)},
		{"Entities", len(res.Entities)},
		{"Hints", len(hints)},
	}
}

func paragraphRows(res *analysis.Result) [][]interface{} {
	rows := [][]interface{}{{"Index", "Tokens", "Exceeds chunk", "Chunks required", "Text"}}
	for _, p := range res.Paragraphs {
		rows = append(rows, []interface{}{p.Index, p.TokenCount, p.ExceedsChunk, p.ChunksRequired, p.Text})
	}
	return rows
}

func chunkRows(res *analysis.Result) [][]interface{} {
	rows := [][]interface{}{{"Index", "Start token", "End token", "Tokens", "Text"}}
	for _, c := range res.Chunks {
		rows = append(rows, []interface{}{c.Index, c.StartToken, c.EndToken, c.TokenCount, c.Text})
	}
	return rows
}

func entityRows(res *analysis.Result) [][]interface{} {
	rows := [][]interface{}{{"Text", "Offset", "Token index", "Chunk", "Position in chunk", "Attention", "Low attention"}}
	for _, e := range res.Entities {
		rows = append(rows, []interface{}{e.Text, e.Offset, e.TokenIndex, e.ChunkIndex, e.ChunkPos, e.Attention, e.LowAttention})
	}
	return rows
}

func hintRows(hints []analysis.Hint) [][]interface{} {
	rows := [][]interface{}{{"Severity", "Message"}}
	for _, h := range hints {
		rows = append(rows, []interface{}{string(h.Severity), h.Message})
	}
	return rows
}
