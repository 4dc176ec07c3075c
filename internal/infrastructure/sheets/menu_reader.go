// Package sheets lee cartas desde Google Sheets para importarlas al menú.
package sheets

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
)

var _ ports.MenuSheetReader = (*MenuReader)(nil)

// Columnas esperadas: nombre, descripción, precio, categoría, url de imagen, disponible.
const (
	colName = iota
	colDescription
	colPrice
	colCategory
	colImageURL
	colAvailable
)

// MenuReader adaptador sobre la API de Google Sheets v4.
type MenuReader struct {
	service *gsheets.Service
}

// NewMenuReader crea el cliente con las credenciales de una cuenta de servicio.
func NewMenuReader(ctx context.Context, credentialsPath string) (*MenuReader, error) {
	creds, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("leer credenciales de google: %w", err)
	}
	service, err := gsheets.NewService(ctx,
		option.WithCredentialsJSON(creds),
		option.WithScopes(gsheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("crear servicio de sheets: %w", err)
	}
	return &MenuReader{service: service}, nil
}

// ReadMenu lee readRange de la hoja y lo convierte en filas de carta.
func (r *MenuReader) ReadMenu(ctx context.Context, spreadsheetID, readRange string) ([]ports.MenuSheetRow, error) {
	resp, err := r.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("leer hoja %s: %w", spreadsheetID, err)
	}
	return ParseRows(resp.Values), nil
}

// ParseRows convierte valores crudos de la hoja en filas de carta.
// Omite la cabecera, las filas vacías y las de precio ilegible; la disponibilidad por defecto es true.
func ParseRows(values [][]interface{}) []ports.MenuSheetRow {
	out := make([]ports.MenuSheetRow, 0, len(values))
	for i, row := range values {
		if len(row) == 0 {
			continue
		}
		if i == 0 && isHeader(row) {
			continue
		}
		price, ok := parsePrice(cell(row, colPrice))
		if !ok {
			continue
		}
		out = append(out, ports.MenuSheetRow{
			Name:        cell(row, colName),
			Description: cell(row, colDescription),
			Price:       price,
			Category:    cell(row, colCategory),
			ImageURL:    cell(row, colImageURL),
			IsAvailable: parseAvailable(cell(row, colAvailable)),
		})
	}
	return out
}

func cell(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[i]))
}

func isHeader(row []interface{}) bool {
	switch strings.ToLower(cell(row, colName)) {
	case "name", "nombre", "plato":
		return true
	}
	return false
}

// parsePrice acepta "12000", "32.000", "12.000,50", "$ 12,000.50" y "12,5".
// Un único punto seguido de exactamente tres dígitos se lee como separador de miles (pesos).
func parsePrice(raw string) (decimal.Decimal, bool) {
	s := strings.NewReplacer("$", "", " ", "", "\u00a0", "").Replace(raw)
	if s == "" {
		return decimal.Zero, false
	}
	lastComma, lastDot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	switch {
	case lastComma > lastDot:
		// coma decimal: los puntos son separadores de miles
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastDot > lastComma:
		s = strings.ReplaceAll(s, ",", "")
		if strings.Count(s, ".") > 1 || (lastComma < 0 && len(s)-strings.LastIndex(s, ".")-1 == 3) {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func parseAvailable(raw string) bool {
	switch strings.ToLower(raw) {
	case "false", "no", "0", "agotado", "n":
		return false
	}
	return true
}
