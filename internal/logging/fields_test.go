package logging

import (
	"log/slog"
	"testing"
)

func TestWithCommon(t *testing.T) {
	tests := []struct {
		name     string
		service  string
		version  string
		wantKeys []string
	}{
		{"both", "nhl-goal-notifier", "v1", []string{"existing", FieldService, FieldVersion}},
		{"service only", "nhl-goal-notifier", "", []string{"existing", FieldService}},
		{"neither", "", "", []string{"existing"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := WithCommon([]slog.Attr{slog.String("existing", "x")}, tt.service, tt.version)
			if len(attrs) != len(tt.wantKeys) {
				t.Fatalf("expected %d attrs, got %+v", len(tt.wantKeys), attrs)
			}
			for i, key := range tt.wantKeys {
				if attrs[i].Key != key {
					t.Fatalf("attr %d: expected %s, got %s", i, key, attrs[i].Key)
				}
			}
		})
	}
}
