// import_menu genera un script SQL que carga una carta exportada a CSV en menu_items.
// Las columnas son las mismas que la importación desde Google Sheets:
// nombre, descripción, precio, categoría, url de imagen, disponible.
//
// Uso: go run ./cmd/import_menu <branch_id> [ruta/carta.csv] [salida.sql]
// Acepta CSV en UTF-8 o en ISO-8859-1 (exportación por defecto de Excel en Windows).
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/restaurante-admin-api/internal/infrastructure/sheets"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: import_menu <branch_id> [carta.csv] [salida.sql]")
		os.Exit(2)
	}
	branchID := os.Args[1]
	if err := uuid.Validate(branchID); err != nil {
		fmt.Fprintf(os.Stderr, "branch_id inválido: %v\n", err)
		os.Exit(2)
	}
	csvPath := "carta.csv"
	if len(os.Args) > 2 {
		csvPath = os.Args[2]
	}
	outPath := "menu_import.sql"
	if len(os.Args) > 3 {
		outPath = os.Args[3]
	}

	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	if sep := detectSeparator(raw); sep != ',' {
		r.Comma = sep
	}
	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar CSV: %v\n", err)
		os.Exit(1)
	}

	values := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		row := make([]interface{}, len(rec))
		for i, v := range rec {
			row[i] = v
		}
		values = append(values, row)
	}
	rows := sheets.ParseRows(values)
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "El CSV no tiene filas válidas")
		os.Exit(1)
	}

	var b strings.Builder
	b.WriteString("-- Carta importada desde " + csvPath + "\n")
	b.WriteString("BEGIN;\n\n")
	for _, row := range rows {
		fmt.Fprintf(&b,
			"INSERT INTO menu_items (id, branch_id, name, description, price, category, image_url, is_available) VALUES (%s, %s, %s, %s, %s, %s, %s, %t);\n",
			quote(uuid.NewString()), quote(branchID), quote(row.Name), quote(row.Description),
			row.Price.StringFixed(2), quote(row.Category), quote(row.ImageURL), row.IsAvailable)
	}
	b.WriteString("\nCOMMIT;\n")

	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d platos\n", outPath, len(rows))
}

// detectSeparator Excel en configuración regional es-CO exporta con punto y coma.
func detectSeparator(raw []byte) rune {
	first := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		first = raw[:i]
	}
	if bytes.Count(first, []byte{';'}) > bytes.Count(first, []byte{','}) {
		return ';'
	}
	return ','
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
