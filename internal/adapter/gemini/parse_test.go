package gemini

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

func TestParseSeries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    domain.FinancialSeries
		wantErr bool
	}{
		{
			name:  "valid",
			input: `{"summary":"s","data":[{"category":"A","value":1}]}`,
			want:  domain.FinancialSeries{Summary: "s", Data: []domain.SeriesPoint{{Category: "A", Value: 1}}},
		},
		{
			name:  "empty data array",
			input: ` {"summary":"nothing","data":[]} `,
			want:  domain.FinancialSeries{Summary: "nothing", Data: []domain.SeriesPoint{}},
		},
		{name: "empty", input: "", wantErr: true},
		{name: "not json", input: "Revenue was high", wantErr: true},
		{name: "truncated", input: `{"summary":"s","data":[{"category":"A"`, wantErr: true},
		{name: "array root", input: `[{"category":"A","value":1}]`, wantErr: true},
		{name: "null", input: `null`, wantErr: true},
		{name: "missing summary", input: `{"data":[]}`, wantErr: true},
		{name: "missing data", input: `{"summary":"s"}`, wantErr: true},
		{name: "string value", input: `{"summary":"s","data":[{"category":"A","value":"12"}]}`, wantErr: true},
		{name: "point without value", input: `{"summary":"s","data":[{"category":"A"}]}`, wantErr: true},
		{name: "trailing object", input: `{"summary":"s","data":[]}{"x":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseSeries(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrSchemaMismatch) {
					t.Fatalf("error = %v, want ErrSchemaMismatch", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseSeries() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
