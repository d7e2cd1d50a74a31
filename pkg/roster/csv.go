package roster

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/myoshida/orgchart/pkg/errors"
	"github.com/myoshida/orgchart/pkg/observability"
)

// Encoding identifies the character encoding of a roster file.
type Encoding string

const (
	// EncodingShiftJIS is the cp932 encoding legacy exports use. Default.
	EncodingShiftJIS Encoding = "shift-jis"

	// EncodingUTF8 reads the file as-is.
	EncodingUTF8 Encoding = "utf-8"
)

// Options controls roster ingestion.
type Options struct {
	// Encoding of the source file. Defaults to EncodingShiftJIS.
	Encoding Encoding
}

// ReadFile reads a roster CSV from path.
func ReadFile(ctx context.Context, path string, opts Options) ([]EmployeeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "roster file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open roster %s", path)
	}
	defer f.Close()
	return Read(ctx, f, opts)
}

// Read decodes roster records from r.
//
// The first row must be a header carrying at least the required columns;
// extra columns are ignored. All field values are whitespace-trimmed.
// Rows are returned in file order. Field-level validation (missing grouping
// names) is the hierarchy builder's concern, not the reader's.
func Read(ctx context.Context, r io.Reader, opts Options) ([]EmployeeRecord, error) {
	switch opts.Encoding {
	case EncodingUTF8:
		// no transform
	case EncodingShiftJIS, "":
		r = transform.NewReader(r, japanese.ShiftJIS.NewDecoder())
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown roster encoding %q", opts.Encoding)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // header decides; short rows are padded below

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidInput, "roster is empty")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read roster header")
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "roster is missing column %q", col)
		}
	}

	field := func(row []string, col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []EmployeeRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRecord, err, "read roster row %d", len(records)+2)
		}
		rec := EmployeeRecord{
			ID:           field(row, colID),
			Name:         field(row, colName),
			Department:   field(row, colDept),
			CustomerName: field(row, colCustomer),
			ClientName:   field(row, colClient),
			ProjectName:  field(row, colProject),
			Grade:        field(row, colGrade),
		}
		observability.Reader().OnRecord(ctx, rec.ID)
		records = append(records, rec)
	}
	return records, nil
}
