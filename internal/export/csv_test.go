package export

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/hourbill/hourbill/internal/domain/timeentry"
)

func TestEscapeFieldRoundTrip(t *testing.T) {
	tests := []string{
		"plain text",
		"has, a comma",
		`has "quotes"`,
		"has\na newline",
		`all three, "of" them` + "\nhere",
		"",
	}

	for _, in := range tests {
		if got := UnescapeField(EscapeField(in)); got != in {
			t.Errorf("round trip of %q = %q", in, got)
		}
	}
}

func TestEscapeFieldPlainPassthrough(t *testing.T) {
	if got := EscapeField("nothing special"); got != "nothing special" {
		t.Errorf("EscapeField = %q", got)
	}
	if got := EscapeField(`a "quoted", value`); got != `"a ""quoted"", value"` {
		t.Errorf("EscapeField = %q", got)
	}
}

func TestBuildCSV(t *testing.T) {
	entries := []*timeentry.TimeEntry{
		{
			Date:        "2024-03-05",
			Hours:       decimal.NewFromFloat(7.5),
			Description: "Pipeline work, with a comma",
			Notes:       lo.ToPtr("left early"),
		},
		{
			Date:        "2024-03-04",
			Hours:       decimal.NewFromInt(8),
			Description: "Setup",
		},
	}

	out, err := BuildCSV(entries)
	if err != nil {
		t.Fatalf("BuildCSV: %v", err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != CSVHeader {
		t.Errorf("header = %q", lines[0])
	}
	// rows come out ascending by date regardless of input order
	if lines[1] != "3/4/2024,Monday,8,Setup," {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != `3/5/2024,Tuesday,7.5,"Pipeline work, with a comma",left early` {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestBuildCSVEmptyNotesIsEmptyField(t *testing.T) {
	out, err := BuildCSV([]*timeentry.TimeEntry{{
		Date:        "2024-03-04",
		Hours:       decimal.NewFromInt(8),
		Description: "Setup",
	}})
	if err != nil {
		t.Fatalf("BuildCSV: %v", err)
	}
	if !strings.HasSuffix(out, "Setup,") {
		t.Errorf("expected trailing empty notes field, got %q", out)
	}
	if strings.Contains(out, "null") || strings.Contains(out, "nil") {
		t.Errorf("notes rendered a literal null: %q", out)
	}
}

func TestBuildCSVNoEntries(t *testing.T) {
	out, err := BuildCSV(nil)
	if err != nil {
		t.Fatalf("BuildCSV: %v", err)
	}
	if out != CSVHeader {
		t.Errorf("expected header only, got %q", out)
	}
}

func TestBuildCSVInvalidDate(t *testing.T) {
	_, err := BuildCSV([]*timeentry.TimeEntry{{
		Date:        "not-a-date",
		Hours:       decimal.NewFromInt(1),
		Description: "x",
	}})
	if err == nil {
		t.Error("expected error for malformed date")
	}
}
