package translate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGuessLangPair(t *testing.T) {
	cases := []struct {
		text   string
		source string
		target string
	}{
		{"나트륨 160mg", "ko", "en"},
		{"Sodium 160 mg", "en", "ko"},
		{"Sodium 나트륨", "ko", "en"},
	}
	for _, c := range cases {
		s, tgt := guessLangPair(c.text)
		if s != c.source || tgt != c.target {
			t.Errorf("guessLangPair(%q) = %s→%s, want %s→%s", c.text, s, tgt, c.source, c.target)
		}
	}
}

func TestTranslateDisabledWithoutCredentials(t *testing.T) {
	c := &Client{}
	got, err := c.Translate("나트륨 160mg")
	if err != nil {
		t.Fatalf("disabled client errored: %v", err)
	}
	if got != "" {
		t.Errorf("disabled client returned %q", got)
	}
}

func TestTranslateEmptyInput(t *testing.T) {
	c := &Client{ClientID: "id", ClientSecret: "secret"}
	got, err := c.Translate("   ")
	if err != nil || got != "" {
		t.Errorf("Translate(blank) = %q, %v", got, err)
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-NCP-APIGW-API-KEY-ID") != "id" {
			t.Error("missing api key id header")
		}
		var req nmtRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Source != "ko" || req.Target != "en" {
			t.Errorf("lang pair = %s→%s", req.Source, req.Target)
		}
		var out nmtResponse
		out.Message.Result.TranslatedText = "Sodium 160mg"
		_ = json.NewEncoder(w).Encode(out)
	}))
	defer srv.Close()

	c := &Client{ClientID: "id", ClientSecret: "secret", Endpoint: srv.URL, HTTP: srv.Client()}
	got, err := c.Translate("나트륨 160mg")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Sodium 160mg" {
		t.Errorf("Translate = %q", got)
	}
}

func TestTranslateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := &Client{ClientID: "id", ClientSecret: "secret", Endpoint: srv.URL, HTTP: srv.Client()}
	if _, err := c.Translate("나트륨"); err == nil {
		t.Error("expected error on non-200 response")
	}
}
