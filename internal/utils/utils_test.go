package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"
)

func TestJSONWritesPayload(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusOK, map[string]any{"foo": "bar"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %s", ct)
	}
	var decoded map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if decoded["foo"] != "bar" {
		t.Fatalf("expected payload value 'bar', got %v", decoded["foo"])
	}
}

func TestJSONSkipsNilPayload(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusAccepted, nil)

	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestNewIDIsUnique(t *testing.T) {
	a, b := NewID(), NewID()
	if a == "" || a == b {
		t.Fatalf("expected two distinct ids, got %q and %q", a, b)
	}
}

func TestNewShareToken(t *testing.T) {
	urlSafe := regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token, err := NewShareToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(token) < 32 {
			t.Fatalf("token too short: %q", token)
		}
		if !urlSafe.MatchString(token) {
			t.Fatalf("token is not url safe: %q", token)
		}
		if seen[token] {
			t.Fatalf("duplicate token %q", token)
		}
		seen[token] = true
	}
}

func TestSlugify(t *testing.T) {
	if got := Slugify("Hello World"); got != "hello-world" {
		t.Fatalf("expected hello-world, got %q", got)
	}
	if got := Slugify("  Career & Profession  "); got != "career-and-profession" {
		t.Fatalf("expected career-and-profession, got %q", got)
	}

	ascii := regexp.MustCompile(`^[a-z0-9-]+$`)
	name := "Личность и характер"
	first, second := Slugify(name), Slugify(name)
	if first != second {
		t.Fatalf("slug is not deterministic: %q vs %q", first, second)
	}
	if !ascii.MatchString(first) {
		t.Fatalf("expected ascii slug, got %q", first)
	}
}

func TestNowIsMillisecondUTC(t *testing.T) {
	now := Now()
	if now.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", now.Location())
	}
	if now.Nanosecond()%int(time.Millisecond) != 0 {
		t.Fatalf("expected millisecond precision, got %d ns", now.Nanosecond())
	}
}
