package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"

	"fjacquet/card-payoff/internal/models"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ParseFormat converts a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatCSV:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Renderer writes Documents in one format and language.
type Renderer struct {
	format    Format
	loc       Localizer
	currency  string
	delimiter rune
}

// NewRenderer creates a Renderer. A zero delimiter means ','.
func NewRenderer(format Format, loc Localizer, currency string, delimiter rune) *Renderer {
	if delimiter == 0 {
		delimiter = ','
	}
	return &Renderer{
		format:    format,
		loc:       loc,
		currency:  currency,
		delimiter: delimiter,
	}
}

// Format returns the renderer's output format.
func (r *Renderer) Format() Format {
	return r.format
}

// Localizer returns the renderer's message catalog.
func (r *Renderer) Localizer() Localizer {
	return r.loc
}

// envelope is the JSON and YAML shape of a Document.
type envelope struct {
	Operation string                     `json:"operation" yaml:"operation"`
	Card      *models.CreditCardSnapshot `json:"card,omitempty" yaml:"card,omitempty"`
	Result    interface{}                `json:"result" yaml:"result"`
	Notes     []string                   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Render writes doc to w.
func (r *Renderer) Render(w io.Writer, doc Document) error {
	switch r.format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r.envelope(doc))
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(r.envelope(doc)); err != nil {
			return fmt.Errorf("error encoding YAML: %w", err)
		}
		return encoder.Close()
	case FormatCSV:
		return r.renderCSV(w, doc)
	default:
		return r.renderText(w, doc)
	}
}

func (r *Renderer) envelope(doc Document) envelope {
	return envelope{
		Operation: strings.TrimPrefix(string(doc.Title), "title."),
		Card:      doc.Card,
		Result:    doc.Result,
		Notes:     r.notes(doc.Notes),
	}
}

func (r *Renderer) notes(notes []Note) []string {
	if len(notes) == 0 {
		return nil
	}
	out := make([]string, len(notes))
	for i, note := range notes {
		args := make([]interface{}, len(note.Args))
		for j, arg := range note.Args {
			args[j] = arg.argument(r.loc, r.currency)
		}
		out[i] = r.loc.Message(note.Code, args...)
	}
	return out
}

// fieldRow is the CSV shape of a summary line.
type fieldRow struct {
	Field string `csv:"field"`
	Value string `csv:"value"`
}

func (r *Renderer) renderCSV(w io.Writer, doc Document) error {
	rows := doc.Rows
	if isEmptySlice(rows) {
		fields := make([]fieldRow, len(doc.Summary))
		for i, line := range doc.Summary {
			fields[i] = fieldRow{
				Field: strings.TrimPrefix(string(line.Label), "label."),
				Value: line.Value.plain(r.loc),
			}
		}
		rows = fields
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = r.delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

func (r *Renderer) renderText(w io.Writer, doc Document) error {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, r.loc.Message(doc.Title))
	fmt.Fprintln(&buf, strings.Repeat("=", len([]rune(r.loc.Message(doc.Title)))))

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	if doc.Card != nil && doc.Card.DisplayName() != "" {
		fmt.Fprintf(tw, "%s:\t%s\n", r.loc.Message(LabelCard), doc.Card.DisplayName())
	}
	for _, line := range doc.Summary {
		fmt.Fprintf(tw, "%s:\t%s\n", r.loc.Message(line.Label), line.Value.format(r.loc, r.currency))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !isEmptySlice(doc.Rows) {
		table, err := gocsv.MarshalBytes(doc.Rows)
		if err != nil {
			return fmt.Errorf("error formatting table: %w", err)
		}
		records, err := csv.NewReader(bytes.NewReader(table)).ReadAll()
		if err != nil {
			return fmt.Errorf("error formatting table: %w", err)
		}

		fmt.Fprintln(&buf)
		tw = tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
		for i, record := range records {
			if i == 0 {
				record = r.headers(record)
			}
			fmt.Fprintln(tw, strings.Join(record, "\t")+"\t")
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	notes := r.notes(doc.Notes)
	if len(notes) > 0 {
		fmt.Fprintln(&buf)
		for _, note := range notes {
			fmt.Fprintf(&buf, "* %s\n", note)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func (r *Renderer) headers(keys []string) []string {
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = r.loc.Message(enumCode(columnPrefix, key))
	}
	return out
}

// enum renders a language-neutral code: localized in text output, the raw
// code otherwise.
func (r *Renderer) enum(prefix, value string) string {
	if r.format == FormatText {
		return r.loc.Message(enumCode(prefix, value))
	}
	return value
}

// amount renders a monetary cell: currency-formatted in text output, a plain
// two-place number otherwise.
func (r *Renderer) amount(v Value) string {
	if r.format == FormatText {
		return v.format(r.loc, r.currency)
	}
	return v.plain(r.loc)
}

func isEmptySlice(rows interface{}) bool {
	if rows == nil {
		return true
	}
	v := reflect.ValueOf(rows)
	return v.Kind() == reflect.Slice && v.Len() == 0
}
