package usecase_test

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"cleanpro-web/internal/catalog"
	"cleanpro-web/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCatalogUsecaseLookups(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCatalogUsecase(catalog.MustDefault())

	stats := uc.Stats(ctx)
	assert.Equal(t, 10, stats.Categories)
	assert.Equal(t, 31, stats.Services)
	assert.Equal(t, 9, stats.Popular)

	svc, err := uc.GetService(ctx, "folding")
	require.NoError(t, err)
	assert.Equal(t, "mama-fua", svc.Category)

	_, err = uc.GetService(ctx, "window-washing")
	assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))

	cat, err := uc.GetCategory(ctx, "fumigation")
	require.NoError(t, err)
	assert.Equal(t, "Fumigation", cat.Name)

	_, err = uc.GetCategory(ctx, "")
	assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))

	assert.Len(t, uc.ListServices(ctx, ""), 31)
	var slugs []string
	for _, s := range uc.ListServices(ctx, "DUVET") {
		slugs = append(slugs, s.Slug)
	}
	assert.Contains(t, slugs, "duvet-hand-wash")
	assert.Less(t, len(slugs), 31)
}

func TestExportPriceList(t *testing.T) {
	data, filename, err := usecase.NewCatalogUsecase(catalog.MustDefault()).ExportPriceList(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "avatar_cleanpro_price_list_"))
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Price List")
	require.NoError(t, err)
	require.Len(t, rows, 32)
	assert.Equal(t, []string{"CATEGORY", "SERVICE", "DESCRIPTION", "PRICING", "POPULAR"}, rows[0])
	assert.Equal(t, "Mama Fua (Housekeeper)", rows[1][0])
	assert.Equal(t, "Duvet (Hand Wash)", rows[1][1])
	assert.Equal(t, "Per Piece", rows[1][3])
}
