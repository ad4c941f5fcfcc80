package subscriptions

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSanitizeTopic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"alice", "alice"},
		{"  my-topic_1  ", "my-topic_1"},
		{"a b!c@d", "abcd"},
		{"ümlaut", "mlaut"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SanitizeTopic(tc.in); got != tc.want {
			t.Fatalf("SanitizeTopic(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSubscriptionJSONShape(t *testing.T) {
	sub := Subscription{
		ID:         "abc",
		Topic:      "alice",
		TeamAbbrev: "TOR",
		CreatedAt:  time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(sub)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"id", "ntfyTopic", "teamAbbrev", "createdAt"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("expected key %s in %s", key, data)
		}
	}
}

func TestSameTarget(t *testing.T) {
	a := Subscription{ID: "1", Topic: "alice", TeamAbbrev: "TOR"}
	b := Subscription{ID: "2", Topic: "alice", TeamAbbrev: "TOR"}
	c := Subscription{ID: "3", Topic: "alice", TeamAbbrev: "BOS"}
	if !a.SameTarget(b) {
		t.Fatalf("expected same target")
	}
	if a.SameTarget(c) {
		t.Fatalf("expected different target")
	}
}
