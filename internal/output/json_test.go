package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vegasq/csvtab/internal/reader"
)

func TestJSONFormatter_Format(t *testing.T) {
	ds := &reader.Dataset{
		Columns: []string{"name", "year", "rating"},
		Rows: []reader.Row{
			{"name": "Drunken Master", "year": "1978", "rating": "7.5"},
			{"name": "Project A", "year": "1983"},
		},
	}

	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(ds); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	scanner := bufio.NewScanner(strings.NewReader(buf.String()))
	var objects []map[string]interface{}
	for scanner.Scan() {
		var obj map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &obj); err != nil {
			t.Fatalf("line %q is not valid JSON: %v", scanner.Text(), err)
		}
		objects = append(objects, obj)
	}

	if len(objects) != 2 {
		t.Fatalf("got %d JSON lines, want 2", len(objects))
	}
	if objects[0]["name"] != "Drunken Master" {
		t.Errorf("name = %v, want Drunken Master", objects[0]["name"])
	}
	if objects[0]["year"] != float64(1978) {
		t.Errorf("year = %v (%T), want number 1978", objects[0]["year"], objects[0]["year"])
	}
	if objects[0]["rating"] != 7.5 {
		t.Errorf("rating = %v, want 7.5", objects[0]["rating"])
	}
	if _, ok := objects[1]["rating"]; ok {
		t.Errorf("missing cell should be omitted, got %v", objects[1])
	}
}

func TestJSONFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(&reader.Dataset{Columns: []string{"a"}}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format() output should be empty, got %q", buf.String())
	}
}

func TestJSONFormatter_KeepsNonCanonicalNumbersAsText(t *testing.T) {
	ds := &reader.Dataset{
		Columns: []string{"zip", "id", "score", "padded"},
		Rows: []reader.Row{
			{"zip": "02134", "id": "12345678901234567890", "score": "8.0", "padded": " 7"},
		},
	}

	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(ds); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `{"zip":"02134","id":"12345678901234567890","score":"8.0","padded":" 7"}` + "\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestJSONFormatter_HeaderOrder(t *testing.T) {
	ds := &reader.Dataset{
		Columns: []string{"name", "year", "rating"},
		Rows: []reader.Row{
			{"rating": "7.6", "year": "1983", "name": "Project A"},
			{"rating": "6.7", "name": "Armour of God"},
		},
	}

	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(ds); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `{"name":"Project A","year":1983,"rating":7.6}` + "\n" +
		`{"name":"Armour of God","rating":6.7}` + "\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}
