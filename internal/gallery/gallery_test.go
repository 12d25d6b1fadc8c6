package gallery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDecodeMissingTitle(t *testing.T) {
	tests := []struct {
		input string
		url   string
		size  int
	}{
		{`{"url": "1.jpeg", "size": 36}`, "1.jpeg", 36},
		{`{"url": "fruits.jpg", "size": 0}`, "fruits.jpg", 0},
		{`{"url": "a/b/c.png", "size": 1024}`, "a/b/c.png", 1024},
	}
	for _, tt := range tests {
		var p Photo
		if err := json.Unmarshal([]byte(tt.input), &p); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.input, err)
		}
		if p.Title != UntitledTitle {
			t.Errorf("decode(%s): title = %q, want %q", tt.input, p.Title, UntitledTitle)
		}
		if p.URL != tt.url || p.Size != tt.size {
			t.Errorf("decode(%s) = %+v", tt.input, p)
		}
	}
}

func TestDecodeWithTitle(t *testing.T) {
	var p Photo
	input := `{"url": "1.jpeg", "size": 36, "title": "Beachside"}`
	if err := json.Unmarshal([]byte(input), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Title != "Beachside" {
		t.Errorf("title = %q, want Beachside", p.Title)
	}
}

func TestCaption(t *testing.T) {
	p := Photo{URL: "1.jpeg", Size: 36, Title: "Beachside"}
	if got := p.Caption(); got != "Beachside[36 kb]" {
		t.Errorf("Caption() = %q, want %q", got, "Beachside[36 kb]")
	}
}

func TestURLBuilders(t *testing.T) {
	if got := ThumbURL("http://elm-in-action.com/", "1.jpeg"); got != "http://elm-in-action.com/1.jpeg" {
		t.Errorf("ThumbURL = %q", got)
	}
	if got := LargeURL("http://elm-in-action.com/", "1.jpeg"); got != "http://elm-in-action.com/large/1.jpeg" {
		t.Errorf("LargeURL = %q", got)
	}
	// Missing trailing slash gets normalized
	if got := LargeURL("http://example.com", "2.jpeg"); got != "http://example.com/large/2.jpeg" {
		t.Errorf("LargeURL without slash = %q", got)
	}
	// Empty base falls back to the default
	if got := ThumbURL("", "3.jpeg"); got != DefaultBaseURL+"3.jpeg" {
		t.Errorf("ThumbURL with empty base = %q", got)
	}
}

func TestListFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/photos/list.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`[{"url":"1.jpeg","size":36,"title":"Beachside"},{"url":"2.jpeg","size":38}]`))
	}))
	defer srv.Close()

	photos, err := NewClient(srv.URL).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(photos))
	}
	if photos[0].Title != "Beachside" {
		t.Errorf("first title = %q", photos[0].Title)
	}
	if photos[1].Title != UntitledTitle {
		t.Errorf("second title = %q, want %q", photos[1].Title, UntitledTitle)
	}
}

func TestListServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).List(context.Background()); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestListBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).List(context.Background()); err == nil {
		t.Error("expected error for non-array body")
	}
}

func TestListEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	photos, err := NewClient(srv.URL).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(photos) != 0 {
		t.Errorf("expected empty list, got %d photos", len(photos))
	}
}
