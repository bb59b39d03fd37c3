package export

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewExporter(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		wantType string
		wantExt  string
		wantErr  bool
	}{
		{name: "zwo format", format: "zwo", wantType: "*export.ZWOExporter", wantExt: "zwo"},
		{name: "zwift alias", format: "zwift", wantType: "*export.ZWOExporter", wantExt: "zwo"},
		{name: "upper case", format: "ZWO", wantType: "*export.ZWOExporter", wantExt: "zwo"},
		{name: "markdown format", format: "md", wantType: "*export.MarkdownExporter", wantExt: "md"},
		{name: "markdown format long", format: "markdown", wantType: "*export.MarkdownExporter", wantExt: "md"},
		{name: "yaml format", format: "yaml", wantType: "*export.YAMLExporter", wantExt: "yaml"},
		{name: "json format", format: "json", wantType: "*export.JSONExporter", wantExt: "json"},
		{name: "mrc format", format: "mrc", wantType: "*export.MRCExporter", wantExt: "mrc"},
		{name: "plist format", format: "plist", wantType: "*export.PlistExporter", wantExt: "plist"},
		{name: "unsupported format", format: "fit", wantErr: true},
		{name: "empty format", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter, err := NewExporter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewExporter() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				if exporter != nil {
					t.Errorf("NewExporter() returned exporter %T, want nil", exporter)
				}
				if !strings.Contains(err.Error(), "supported: zwo") {
					t.Errorf("NewExporter() error = %q, should list supported formats", err)
				}
				return
			}

			if got := exporter.Extension(); got != tt.wantExt {
				t.Errorf("Exporter.Extension() = %v, want %v", got, tt.wantExt)
			}
			if got := fmt.Sprintf("%T", exporter); got != tt.wantType {
				t.Errorf("NewExporter() type = %s, want %s", got, tt.wantType)
			}
		})
	}
}

func TestFormatRatio(t *testing.T) {
	tests := []struct {
		ratio     float64
		precision int
		want      string
	}{
		{0.8, -1, "0.8"},
		{1.16, -1, "1.16"},
		{190.0 / 250.0, -1, "0.76"},
		{200.0 / 333.0, 2, "0.60"},
		{0.755, 1, "0.8"},
		{1, -1, "1"},
		{0, -1, "0"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%d", tt.ratio, tt.precision), func(t *testing.T) {
			if got := formatRatio(tt.ratio, tt.precision); got != tt.want {
				t.Errorf("formatRatio() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundRatio(t *testing.T) {
	r := 200.0 / 333.0
	if got := roundRatio(r, -1); got != r {
		t.Errorf("roundRatio(-1) = %v, want %v", got, r)
	}
	if got := roundRatio(r, 2); got != 0.6 {
		t.Errorf("roundRatio(2) = %v, want 0.6", got)
	}
}
