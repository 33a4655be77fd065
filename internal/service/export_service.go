package service

import (
	"fmt"
	"strconv"
	"time"

	"patrimonio-go/internal/dto"
	"patrimonio-go/internal/models"
	"patrimonio-go/internal/repository"
	"patrimonio-go/internal/utils"
)

// Export formats
const (
	ExportCSV   = "csv"
	ExportJSONL = "jsonl"
)

// ExportFile rendered export
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// assetRecord one exported asset; dynamic fields are keyed by field name
type assetRecord struct {
	ID         uint              `json:"id"`
	Patrimonio string            `json:"patrimonio"`
	Status     string            `json:"status"`
	Category   string            `json:"category"`
	Owner      uint              `json:"owner"`
	CreatedAt  string            `json:"created_at"`
	Fields     map[string]string `json:"fields"`
}

// ExportService renders the asset inventory as CSV or JSONL
type ExportService struct {
	assetRepo    *repository.AssetRepository
	categoryRepo *repository.CategoryRepository
	fieldRepo    *repository.FieldDefinitionRepository
}

// NewExportService creates the export service
func NewExportService(
	assetRepo *repository.AssetRepository,
	categoryRepo *repository.CategoryRepository,
	fieldRepo *repository.FieldDefinitionRepository,
) *ExportService {
	return &ExportService{assetRepo: assetRepo, categoryRepo: categoryRepo, fieldRepo: fieldRepo}
}

// Export renders every asset matching filter. Each distinct field name becomes
// one CSV column, in schema order.
func (s *ExportService) Export(filter dto.AssetFilter, format string) (*ExportFile, error) {
	if format == "" {
		format = ExportCSV
	}
	if format != ExportCSV && format != ExportJSONL {
		return nil, invalid("format must be csv or jsonl")
	}

	assets, _, err := s.assetRepo.List(repository.AssetFilter{
		CategoryID: filter.CategoryID,
		Status:     models.AssetStatus(filter.Status),
	}, 0, 0)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	categoryNames := make(map[uint]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	fieldIDs := make([]uint, 0)
	seenField := make(map[uint]bool)
	for _, a := range assets {
		for _, v := range a.FieldValues {
			if !seenField[v.FieldDefinitionID] {
				seenField[v.FieldDefinitionID] = true
				fieldIDs = append(fieldIDs, v.FieldDefinitionID)
			}
		}
	}
	fields, err := s.fieldRepo.ListByIDs(fieldIDs)
	if err != nil {
		return nil, err
	}
	fieldNames := make(map[uint]string, len(fields))
	var columns []string
	seenColumn := make(map[string]bool)
	for _, f := range fields {
		fieldNames[f.ID] = f.Name
		if !seenColumn[f.Name] {
			seenColumn[f.Name] = true
			columns = append(columns, f.Name)
		}
	}

	records := make([]assetRecord, len(assets))
	for i, a := range assets {
		values := make(map[string]string, len(a.FieldValues))
		for _, v := range a.FieldValues {
			values[fieldNames[v.FieldDefinitionID]] = v.Value
		}
		records[i] = assetRecord{
			ID:         a.ID,
			Patrimonio: a.Patrimonio,
			Status:     string(a.Status),
			Category:   categoryNames[a.CategoryID],
			Owner:      a.OwnerID,
			CreatedAt:  a.CreatedAt.Format(dto.TimeLayout),
			Fields:     values,
		}
	}

	stamp := time.Now().Format("20060102-150405")
	if format == ExportJSONL {
		content, err := utils.ToJSONL(records)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("patrimonio-%s.jsonl", stamp),
			ContentType: "application/x-ndjson",
			Content:     content,
		}, nil
	}

	headers := append([]string{"id", "patrimonio", "status", "category", "owner", "created_at"}, columns...)
	rows := make([][]string, len(records))
	for i, r := range records {
		row := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Patrimonio,
			r.Status,
			r.Category,
			strconv.FormatUint(uint64(r.Owner), 10),
			r.CreatedAt,
		}
		for _, col := range columns {
			row = append(row, r.Fields[col])
		}
		rows[i] = row
	}

	content, err := utils.ToCSV(headers, rows)
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("patrimonio-%s.csv", stamp),
		ContentType: "text/csv; charset=utf-8",
		Content:     content,
	}, nil
}
