package dto

// MissingValue marks a field whose pattern did not match.
const MissingValue = "MISSING"

// FileColumn is the trailing report column holding the source file name.
const FileColumn = "File"

// FieldValue is one extracted column of a bill.
type FieldValue struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ExtractionRecord holds every field value extracted from one bill, in
// column order, plus the name of the file it came from.
type ExtractionRecord struct {
	File   string       `json:"file"`
	Fields []FieldValue `json:"fields"`
}

// Value returns the value recorded for field, if any.
func (r ExtractionRecord) Value(field string) (string, bool) {
	for _, fv := range r.Fields {
		if fv.Field == field {
			return fv.Value, true
		}
	}
	return "", false
}

// WithFile returns a copy of the record tagged with the given file name.
func (r ExtractionRecord) WithFile(name string) ExtractionRecord {
	fields := make([]FieldValue, len(r.Fields))
	copy(fields, r.Fields)
	return ExtractionRecord{File: name, Fields: fields}
}

// Row renders the record as report cells: field values then the file name.
func (r ExtractionRecord) Row() []string {
	row := make([]string, 0, len(r.Fields)+1)
	for _, fv := range r.Fields {
		row = append(row, fv.Value)
	}
	return append(row, r.File)
}
