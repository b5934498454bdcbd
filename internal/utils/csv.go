package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"reflect"
	"strings"
)

// utf8BOM is prefixed to CSV output so spreadsheet applications detect the
// encoding of non-ASCII track and artist names.
const utf8BOM = "\uFEFF"

// StructToCsvHeader takes a struct type and returns a slice of strings representing the CSV header.
// It uses the `csv` tag on struct fields to determine the header name.
// If a field doesn't have a `csv` tag, the field name is used.
func StructToCsvHeader(t reflect.Type) []string {
	var headers []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		csvTag := field.Tag.Get("csv")

		// If the csv tag is present, use it as the header name, otherwise use the field name.
		headerName := field.Name
		if csvTag != "" {
			headerName = csvTag
		}
		headers = append(headers, headerName)
	}
	return headers
}

// StructToCsvRecords flattens a slice of structs into string records in field
// order. Slice fields are joined with ", " to keep multi-artist columns readable.
func StructToCsvRecords[T any](data []T) ([][]string, error) {
	records := make([][]string, 0, len(data))
	for _, item := range data {
		v := reflect.ValueOf(item)

		// If item is a pointer, get the value it points to
		if v.Kind() == reflect.Ptr {
			v = v.Elem()
		}

		if v.Kind() != reflect.Struct {
			return nil, fmt.Errorf("data must be a slice of structs")
		}

		row := make([]string, 0, v.NumField())
		for i := 0; i < v.NumField(); i++ {
			fieldValue := v.Field(i)

			// Convert field value to string based on its kind
			var strValue string
			if fieldValue.Kind() == reflect.Slice {
				var sliceValues []string
				for j := 0; j < fieldValue.Len(); j++ {
					sliceValues = append(sliceValues, fmt.Sprintf("%v", fieldValue.Index(j).Interface()))
				}
				strValue = strings.Join(sliceValues, ", ")
			} else {
				strValue = fmt.Sprintf("%v", fieldValue.Interface())
			}

			row = append(row, strValue)
		}
		records = append(records, row)
	}
	return records, nil
}

// WriteToCsvFile writes the given headers and records to a CSV file at the
// specified filePath, prefixed with a UTF-8 BOM.
func WriteToCsvFile(filePath string, headers []string, records [][]string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.WriteString(utf8BOM); err != nil {
		return err
	}

	writer := csv.NewWriter(file)

	// Write the headers
	if err := writer.Write(headers); err != nil {
		return err
	}

	// Write the data rows
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
