// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package cache

import (
	"testing"

	"github.com/bmatcuk/doublestar/v4"
)

func TestKey_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := map[string]string{"platform": "youtube", "creator_id": "5", "cursor": "40|3"}
	b := map[string]string{"cursor": "40|3", "creator_id": "5", "platform": "youtube"}

	for i := 0; i < 20; i++ {
		if Key("media_list", a) != Key("media_list", b) {
			t.Fatal("Key must not depend on map order")
		}
	}
}

func TestKey_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		op    string
		pairs map[string]string
		want  string
	}{
		{"no pairs", "media_list", nil, "media_list|"},
		{"sorted", "media_list", map[string]string{"b": "2", "a": "1"}, "media_list|a=1|b=2|"},
		{"escaped cursor", "media_list", map[string]string{"cursor": "40|3"}, "media_list|cursor=40%7C3|"},
		{"empty value kept", "count", map[string]string{"creator_id": ""}, "count|creator_id=|"},
		{"glob chars escaped", "media_list", map[string]string{"search": "a*b/c"}, "media_list|search=a%2Ab%2Fc|"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Key(tt.op, tt.pairs); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKey_DistinctInputs(t *testing.T) {
	t.Parallel()

	a := Key("media_list", map[string]string{"cursor": "1"})
	b := Key("media_list", map[string]string{"cursor": "2"})
	c := Key("count", map[string]string{"cursor": "1"})
	if a == b || a == c {
		t.Errorf("keys should differ: %q %q %q", a, b, c)
	}
}

func TestScopePattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key   string
		match bool
	}{
		{"media_list|creator_id=5|limit=20|", true},
		{"count|creator_id=5|", true},
		{"media_list|creator_id=55|limit=20|", false},
		{"media_list|creator_id=|limit=20|", false},
		{"media_list|limit=20|", false},
	}
	pattern := ScopePattern("creator_id", "5")
	for _, tt := range tests {
		got, err := doublestar.Match(pattern, tt.key)
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if got != tt.match {
			t.Errorf("Match(%q, %q) = %v, want %v", pattern, tt.key, got, tt.match)
		}
	}

	if ok, _ := doublestar.Match(OperationPattern("count"), "count|creator_id=5|"); !ok {
		t.Error("OperationPattern(count) should match count keys")
	}
}
