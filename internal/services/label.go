package service

import (
	"context"
	"fmt"
	"math"

	"github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/aaravmahajanofficial/pos-admin/internal/pos"
	"github.com/google/uuid"
)

const (
	maxLabelsPerJob = 10000
	// layoutEpsilon absorbs float noise when a label exactly fills the page.
	layoutEpsilon = 1e-6
)

type LabelService interface {
	Layout(ctx context.Context, req *models.LabelLayoutRequest) (*models.LabelLayout, error)
}

type labelService struct {
	products ProductService
}

func NewLabelService(products ProductService) LabelService {
	return &labelService{products: products}
}

// fitCount is how many cells of size cell separated by gap fit in span.
func fitCount(span, cell, gap float64) int {
	if span+layoutEpsilon < cell {
		return 0
	}
	return int(math.Floor((span + gap + layoutEpsilon) / (cell + gap)))
}

// sheetGrid resolves the rows and columns of a sheet. Margins apply on both
// sides of the page. Requested counts must fit; missing ones are the most that do.
func sheetGrid(sheet models.LabelSheet) (rows, cols int, err error) {
	usableWidth := sheet.PageWidthMM - 2*sheet.MarginLeftMM
	usableHeight := sheet.PageHeightMM - 2*sheet.MarginTopMM

	maxCols := fitCount(usableWidth, sheet.LabelWidthMM, sheet.GapXMM)
	maxRows := fitCount(usableHeight, sheet.LabelHeightMM, sheet.GapYMM)

	if maxCols == 0 || maxRows == 0 {
		return 0, 0, errors.AddValidationError("sheet", "label does not fit on the page")
	}

	cols, rows = sheet.Columns, sheet.Rows
	if cols == 0 {
		cols = maxCols
	}
	if rows == 0 {
		rows = maxRows
	}

	if cols > maxCols {
		return 0, 0, errors.AddValidationError("columns", fmt.Sprintf("at most %d columns fit", maxCols))
	}
	if rows > maxRows {
		return 0, 0, errors.AddValidationError("rows", fmt.Sprintf("at most %d rows fit", maxRows))
	}

	return rows, cols, nil
}

// Layout places every requested copy on the sheet grid in reading order.
func (s *labelService) Layout(ctx context.Context, req *models.LabelLayoutRequest) (*models.LabelLayout, error) {
	rows, cols, err := sheetGrid(req.Sheet)
	if err != nil {
		return nil, err
	}

	total := 0
	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		total += item.Copies
		ids = append(ids, item.ProductID)
	}
	if total > maxLabelsPerJob {
		return nil, errors.AddValidationError("items", fmt.Sprintf("at most %d labels per job", maxLabelsPerJob))
	}

	products, err := s.products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	perPage := rows * cols
	layout := &models.LabelLayout{
		Rows:          rows,
		Columns:       cols,
		LabelsPerPage: perPage,
		TotalLabels:   total,
		Pages:         (total + perPage - 1) / perPage,
		Labels:        make([]models.LabelPlacement, 0, total),
	}

	sheet := req.Sheet
	slot := 0
	for _, item := range req.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, errors.BadRequestError("Product not found").WithDetail(item.ProductID.String())
		}
		price := pos.FormatAmount(product.ToPOS().PriceFor(req.Wholesale))

		for range item.Copies {
			cell := slot % perPage
			row, col := cell/cols, cell%cols
			layout.Labels = append(layout.Labels, models.LabelPlacement{
				Page:      slot/perPage + 1,
				Row:       row + 1,
				Column:    col + 1,
				XMM:       pos.Round2(sheet.MarginLeftMM + float64(col)*(sheet.LabelWidthMM+sheet.GapXMM)),
				YMM:       pos.Round2(sheet.MarginTopMM + float64(row)*(sheet.LabelHeightMM+sheet.GapYMM)),
				ProductID: product.ID,
				Barcode:   product.Barcode,
				Name:      product.Name,
				Size:      product.Size,
				Price:     price,
			})
			slot++
		}
	}

	return layout, nil
}
