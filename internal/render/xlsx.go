package render

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/mercdex/internal/engine"
	"github.com/KirkDiggler/mercdex/internal/entities"
	"github.com/KirkDiggler/mercdex/internal/errors"
)

// Sheet names in the exported workbook
const (
	SheetRoster    = "Roster"
	SheetSelection = "Selection"
)

// RosterHeader returns the header row for statOrder
func RosterHeader(statOrder []string) []string {
	header := []string{"Name", "Faction", "AttackType", "Subclass"}
	return append(header, statOrder...)
}

// WriteRosterXLSX writes a workbook with one row per mercenary holding its
// derived stats at p, rounded half up, in statOrder column order.
func WriteRosterXLSX(w io.Writer, mercs []*entities.Mercenary, p entities.Progression, statOrder []string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetRoster); err != nil {
		return errors.Wrap(err, "failed to name roster sheet")
	}

	header := RosterHeader(statOrder)
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(SheetRoster, "A1", &headerRow); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create header style")
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return errors.Wrap(err, "failed to address header")
	}
	if err := f.SetCellStyle(SheetRoster, "A1", lastHeader, headerStyleID); err != nil {
		return errors.Wrap(err, "failed to style header")
	}

	for i, m := range mercs {
		stats := engine.CalculateStats(m, p.Reboot, p.Level)
		row := []any{m.Name, m.Faction, m.AttackType, m.Subclass}
		for _, stat := range statOrder {
			row = append(row, engine.Round(stats[stat]))
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrapf(err, "failed to address row for %s", m.Name)
		}
		if err := f.SetSheetRow(SheetRoster, cell, &row); err != nil {
			return errors.Wrapf(err, "failed to write row for %s", m.Name)
		}
	}

	if _, err := f.NewSheet(SheetSelection); err != nil {
		return errors.Wrap(err, "failed to create selection sheet")
	}
	selection := [][]any{
		{"Level", p.Level},
		{"Reboot", p.Reboot},
	}
	for i, row := range selection {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SheetSelection, cell, &row); err != nil {
			return errors.Wrap(err, "failed to write selection")
		}
	}

	if idx, err := f.GetSheetIndex(SheetRoster); err == nil {
		f.SetActiveSheet(idx)
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}
	return nil
}
