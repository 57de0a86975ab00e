package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/gateway/db"
	"weather-api/internal/domain/model"
	"weather-api/pkg/msg"

	"github.com/go-pdf/fpdf"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"

	pdfTitle = "Weather Data"
)

var csvHeader = []string{"id", "location", "dt_txt", "temp", "humidity", "pressure", "wind_speed", "description", "icon"}

type renderer func(documents []entity.WeatherDocument) ([]byte, error)

type exportUseCase struct {
	dbGateway db.WeatherDocumentGateway
	renderers map[string]renderer
	types     map[string]string
}

func NewExportUseCase(dbGateway db.WeatherDocumentGateway) UseCase {
	return &exportUseCase{
		dbGateway: dbGateway,
		renderers: map[string]renderer{
			FormatJSON: RenderJSON,
			FormatCSV:  RenderCSV,
			FormatPDF:  RenderPDF,
		},
		types: map[string]string{
			FormatJSON: "application/json",
			FormatCSV:  "text/csv",
			FormatPDF:  "application/pdf",
		},
	}
}

// Export renders every stored document in the requested format
func (uc *exportUseCase) Export(ctx context.Context, format string) (*File, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	render, ok := uc.renderers[format]
	if !ok {
		return nil, model.NewValidationError(msg.GetMessage("export.error.unsupported-format", format))
	}

	documents, err := uc.dbGateway.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list weather documents for export: %w", err)
	}

	data, err := render(documents)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s export: %w", format, err)
	}

	return &File{
		ContentType: uc.types[format],
		Filename:    "weather-data." + format,
		Data:        data,
	}, nil
}

// RenderJSON writes the documents as an indented JSON array
func RenderJSON(documents []entity.WeatherDocument) ([]byte, error) {
	if documents == nil {
		documents = []entity.WeatherDocument{}
	}
	return json.MarshalIndent(documents, "", "  ")
}

// RenderCSV writes one row per forecast entry; documents without entries get a single row
func RenderCSV(documents []entity.WeatherDocument) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, document := range documents {
		if len(document.Data.List) == 0 {
			if err := writer.Write([]string{document.ID, document.Location, "", "", "", "", "", "", ""}); err != nil {
				return nil, err
			}
			continue
		}

		for _, entry := range document.Data.List {
			var description, icon string
			if len(entry.Weather) > 0 {
				description = entry.Weather[0].Description
				icon = entry.Weather[0].Icon
			}

			row := []string{
				document.ID,
				document.Location,
				entry.DtTxt,
				formatFloat(entry.Main.Temp),
				formatFloat(entry.Main.Humidity),
				formatFloat(entry.Main.Pressure),
				formatFloat(entry.Wind.Speed),
				description,
				icon,
			}
			if err := writer.Write(row); err != nil {
				return nil, err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderPDF writes an A4 document titled "Weather Data" holding the pretty printed JSON
func RenderPDF(documents []entity.WeatherDocument) ([]byte, error) {
	body, err := RenderJSON(documents)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(pdfTitle, true)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, pdfTitle, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// core fonts are cp1252
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Courier", "", 8)
	pdf.MultiCell(0, 3.8, translate(string(body)), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
