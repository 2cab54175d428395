package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"crate/internal/migrate"
)

// CheckRow is one entity's naming state in a check export.
type CheckRow struct {
	Kind     string
	EntityID int64
	Name     string
	Current  string
	Target   string
	Status   migrate.Status
}

// CheckRows flattens a plan into export rows for one entity kind.
func CheckRows(kind string, plan *migrate.Plan) []CheckRow {
	rows := make([]CheckRow, 0, len(plan.Items))
	for _, item := range plan.Items {
		rows = append(rows, CheckRow{
			Kind:     kind,
			EntityID: item.EntityID,
			Name:     item.Name,
			Current:  item.Current,
			Target:   item.Target,
			Status:   item.Status,
		})
	}
	return rows
}

// WriteCSV writes check rows with a header line.
func WriteCSV(w io.Writer, rows []CheckRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"kind", "entity_id", "name", "current_folder", "target_folder", "status"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Kind,
			strconv.FormatInt(row.EntityID, 10),
			row.Name,
			row.Current,
			row.Target,
			row.Status.String(),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
