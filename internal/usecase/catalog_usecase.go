package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"cleanpro-web/internal/catalog"
	"cleanpro-web/internal/domain"
	"cleanpro-web/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

type catalogUsecase struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewCatalogUsecase creates a new catalog usecase instance
func NewCatalogUsecase(c *catalog.Catalog) domain.CatalogUsecase {
	return &catalogUsecase{catalog: c, now: time.Now}
}

func (u *catalogUsecase) ListCategories(ctx context.Context) []domain.ServiceCategory {
	return u.catalog.Categories()
}

func (u *catalogUsecase) GetCategory(ctx context.Context, slug string) (*domain.ServiceCategory, error) {
	cat, ok := u.catalog.CategoryBySlug(slug)
	if !ok {
		return nil, apperror.NotFound("Service category not found")
	}
	return &cat, nil
}

// ListServices returns every service, or those matching query when it is not blank.
func (u *catalogUsecase) ListServices(ctx context.Context, query string) []domain.Service {
	if query == "" {
		return u.catalog.AllServices()
	}
	return u.catalog.Search(query)
}

func (u *catalogUsecase) ListPopularServices(ctx context.Context) []domain.Service {
	return u.catalog.PopularServices()
}

func (u *catalogUsecase) GetService(ctx context.Context, slug string) (*domain.Service, error) {
	svc, ok := u.catalog.ServiceBySlug(slug)
	if !ok {
		return nil, apperror.NotFound("Service not found")
	}
	return &svc, nil
}

func (u *catalogUsecase) Stats(ctx context.Context) domain.CatalogStats {
	return domain.CatalogStats{
		Categories: u.catalog.CategoryCount(),
		Services:   u.catalog.TotalServiceCount(),
		Popular:    len(u.catalog.PopularServices()),
	}
}

// ExportPriceList writes one row per service, grouped by category in catalog order.
func (u *catalogUsecase) ExportPriceList(ctx context.Context) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Price List"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []string{"CATEGORY", "SERVICE", "DESCRIPTION", "PRICING", "POPULAR"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#0F766E"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	row := 2
	for _, cat := range u.catalog.Categories() {
		for _, svc := range cat.Services {
			popular := ""
			if svc.Popular {
				popular = "Yes"
			}
			values := []any{cat.Name, svc.Name, svc.Description, svc.PricingModel.Label(), popular}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				f.SetCellValue(sheetName, cell, v)
			}
			row++
		}
	}

	widths := []float64{22, 28, 60, 14, 10}
	for i, w := range widths {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, w)
	}
	f.SetPanes(sheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("avatar_cleanpro_price_list_%s.xlsx", u.now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
