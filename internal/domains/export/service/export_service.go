package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"creatorhub-backend/internal/domains/export/model"
	"creatorhub-backend/internal/domains/export/repository"
)

const (
	csvContentType  = "text/csv"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ServiceInterface builds export attachments from already-persisted data.
type ServiceInterface interface {
	Export(ctx context.Context, exportType string) (*model.ExportFile, error)
}

type exportService struct {
	repo repository.RepositoryInterface
}

func NewExportService(repo repository.RepositoryInterface) ServiceInterface {
	return &exportService{repo: repo}
}

// Export renders a single table as CSV, or the complete data set as an xlsx
// workbook when exportType is "all" (the default).
func (s *exportService) Export(ctx context.Context, exportType string) (*model.ExportFile, error) {
	log.Info().Str("type", exportType).Msg("Data export requested")

	switch exportType {
	case model.TypeYoutubers:
		table, err := s.repo.Youtubers(ctx)
		if err != nil {
			return nil, err
		}
		return csvFile("youtubers_export.csv", table)
	case model.TypeVideos:
		table, err := s.repo.Videos(ctx)
		if err != nil {
			return nil, err
		}
		return csvFile("videos_export.csv", table)
	case model.TypePayments:
		table, err := s.repo.Payments(ctx)
		if err != nil {
			return nil, err
		}
		return csvFile("payments_export.csv", table)
	default:
		return s.exportAll(ctx)
	}
}

// exportAll writes one workbook with a sheet per table.
func (s *exportService) exportAll(ctx context.Context) (*model.ExportFile, error) {
	youtubers, err := s.repo.Youtubers(ctx)
	if err != nil {
		return nil, err
	}
	videos, err := s.repo.Videos(ctx)
	if err != nil {
		return nil, err
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := writeSheet(workbook, "Youtubers", youtubers); err != nil {
		return nil, err
	}
	if err := writeSheet(workbook, "Videos", videos); err != nil {
		return nil, err
	}
	// The default sheet excelize creates is replaced by our first one.
	if err := workbook.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return &model.ExportFile{
		Name:        "complete_export.xlsx",
		ContentType: xlsxContentType,
		Data:        buf.Bytes(),
	}, nil
}

func writeSheet(workbook *excelize.File, name string, table *repository.Table) error {
	if _, err := workbook.NewSheet(name); err != nil {
		return fmt.Errorf("new sheet %s: %w", name, err)
	}

	writeRow := func(rowIdx int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(values))
		for i, v := range values {
			row[i] = v
		}
		return workbook.SetSheetRow(name, cell, &row)
	}

	if err := writeRow(1, table.Columns); err != nil {
		return fmt.Errorf("sheet %s header: %w", name, err)
	}
	for i, record := range table.Rows {
		if err := writeRow(i+2, record); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", name, i+1, err)
		}
	}
	return nil
}

func csvFile(name string, table *repository.Table) (*model.ExportFile, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(table.Columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, record := range table.Rows {
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return &model.ExportFile{
		Name:        name,
		ContentType: csvContentType,
		Data:        buf.Bytes(),
	}, nil
}
