package csvexport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"git.appkode.ru/pub/go/failure"

	"lead_qualifier/internal/domain/entity"
	"lead_qualifier/internal/domain/value"
	"lead_qualifier/pkg/errcodes"
)

const ContentType = "text/csv; charset=utf-8"

//nolint:gochecknoglobals
var header = []string{
	"ID", "Name", "Email", "Budget_Min", "Budget_Max", "Location", "Timeline",
	"Property_Type", "Score", "Qualified", "Date", "Urgency",
}

// Header returns the column names of the export.
func Header() []string {
	return slices.Clone(header)
}

// FileName embeds the export day, e.g. leads_export_20241014.csv.
func FileName(now time.Time) string {
	return "leads_export_" + now.Format("20060102") + ".csv"
}

func Write(w io.Writer, leads []entity.Lead) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csv.Write(header): %w", err)
	}

	for _, l := range leads {
		if err := cw.Write(record(l)); err != nil {
			return fmt.Errorf("csv.Write(lead %d): %w", l.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv.Flush: %w", err)
	}

	return nil
}

func record(l entity.Lead) []string {
	return []string{
		strconv.Itoa(l.ID),
		l.Name,
		l.Email,
		strconv.Itoa(l.BudgetMin),
		strconv.Itoa(l.BudgetMax),
		l.Location.String(),
		l.Timeline.String(),
		l.PropertyType.String(),
		strconv.Itoa(l.Score),
		value.QualifiedLabel(l.Qualified),
		l.Date(),
		l.Urgency.String(),
	}
}

// Read parses an export produced by Write.
func Read(r io.Reader) ([]entity.Lead, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	got, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalidCSV("missing header")
		}

		return nil, invalidCSV(fmt.Sprintf("read header: %v", err))
	}

	if !slices.Equal(got, header) {
		return nil, invalidCSV(fmt.Sprintf("unexpected header %v", got))
	}

	var leads []entity.Lead

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, invalidCSV(fmt.Sprintf("read row: %v", err))
		}

		line, _ := cr.FieldPos(0)

		l, err := parseRecord(row)
		if err != nil {
			return nil, invalidCSV(fmt.Sprintf("line %d: %v", line, err))
		}

		leads = append(leads, l)
	}

	return leads, nil
}

func parseRecord(row []string) (entity.Lead, error) {
	var (
		l   entity.Lead
		err error
	)

	ints := []struct {
		column string
		src    string
		dst    *int
	}{
		{"ID", row[0], &l.ID},
		{"Budget_Min", row[3], &l.BudgetMin},
		{"Budget_Max", row[4], &l.BudgetMax},
		{"Score", row[8], &l.Score},
	}

	for _, f := range ints {
		if *f.dst, err = strconv.Atoi(f.src); err != nil {
			return entity.Lead{}, fmt.Errorf("%s: %w", f.column, err)
		}
	}

	l.Name = row[1]
	l.Email = row[2]

	if l.Location, err = value.ParseLocation(row[5]); err != nil {
		return entity.Lead{}, fmt.Errorf("Location: %w", err)
	}

	if l.Timeline, err = value.ParseTimeline(row[6]); err != nil {
		return entity.Lead{}, fmt.Errorf("Timeline: %w", err)
	}

	if l.PropertyType, err = value.ParsePropertyType(row[7]); err != nil {
		return entity.Lead{}, fmt.Errorf("Property_Type: %w", err)
	}

	if l.Qualified, err = value.ParseQualifiedLabel(row[9]); err != nil {
		return entity.Lead{}, fmt.Errorf("Qualified: %w", err)
	}

	if l.CreatedDate, err = time.Parse(entity.DateLayout, row[10]); err != nil {
		return entity.Lead{}, fmt.Errorf("Date: %w", err)
	}

	if l.Urgency, err = value.ParseUrgency(row[11]); err != nil {
		return entity.Lead{}, fmt.Errorf("Urgency: %w", err)
	}

	return l, nil
}

func invalidCSV(message string) error {
	return failure.NewInvalidArgumentError(
		message,
		failure.WithCode(errcodes.InvalidCSV),
		failure.WithDescription("Invalid lead export"),
	)
}
