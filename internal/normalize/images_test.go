package normalize

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeImagesStringList(t *testing.T) {
	urls, err := NormalizeImages(json.RawMessage(`["https://a.jpg", "", "https://b.jpg"]`))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	want := []string{"https://a.jpg", "https://b.jpg"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("urls = %v, want %v", urls, want)
	}
}

func TestNormalizeImagesURLObjectList(t *testing.T) {
	urls, err := NormalizeImages(json.RawMessage(`[{"url": "https://a.jpg"}, {"url": "https://b.jpg"}]`))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	want := []string{"https://a.jpg", "https://b.jpg"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("urls = %v, want %v", urls, want)
	}
}

func TestNormalizeImagesURLsWrapper(t *testing.T) {
	urls, err := NormalizeImages(json.RawMessage(`{"urls": ["https://a.jpg", "https://b.jpg"]}`))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	want := []string{"https://a.jpg", "https://b.jpg"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("urls = %v, want %v", urls, want)
	}
}

func TestNormalizeImagesKeyedSlots(t *testing.T) {
	raw := json.RawMessage(`{"main": "https://main.jpg", "gallery2": "https://g2.jpg", "gallery1": "https://g1.jpg", "unused": ""}`)
	urls, err := NormalizeImages(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	// Slots flatten in sorted key order.
	want := []string{"https://g1.jpg", "https://g2.jpg", "https://main.jpg"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("urls = %v, want %v", urls, want)
	}
}

func TestNormalizeImagesEmpty(t *testing.T) {
	for _, raw := range []string{"", "null", "[]"} {
		urls, err := NormalizeImages(json.RawMessage(raw))
		if err != nil {
			t.Fatalf("normalize %q: %v", raw, err)
		}
		if len(urls) != 0 {
			t.Errorf("normalize %q: urls = %v, want empty", raw, urls)
		}
	}
}

func TestDetectImageShape(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`["https://a.jpg"]`, "normalize.StringList"},
		{`[{"url": "https://a.jpg"}]`, "normalize.URLObjectList"},
		{`{"urls": []}`, "normalize.URLsWrapper"},
		{`{"main": "https://a.jpg"}`, "normalize.KeyedSlots"},
	}
	for _, tc := range cases {
		shape, err := DetectImageShape(json.RawMessage(tc.raw))
		if err != nil {
			t.Fatalf("detect %s: %v", tc.raw, err)
		}
		if got := reflect.TypeOf(shape).String(); got != tc.want {
			t.Errorf("detect %s: shape = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestDetectImageShapeRejectsGarbage(t *testing.T) {
	if _, err := DetectImageShape(json.RawMessage(`42`)); err == nil {
		t.Error("expected error for numeric image data")
	}
}
