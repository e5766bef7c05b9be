package topics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientExport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/export" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want %q", got, "application/json")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"topics": [
				{"topic_id": "bt-0", "name": "Finance", "size": 42},
				{"topic_id": "bt-1", "name": "Health", "size": 58}
			],
			"docs": []
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	ex, err := client.Export(context.Background())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if len(ex.Topics) != 2 {
		t.Fatalf("got %d topics, want 2", len(ex.Topics))
	}
	if ex.Topics[0].Name != "Health" {
		t.Errorf("Topics[0].Name = %q, want %q (largest first)", ex.Topics[0].Name, "Health")
	}
	if got := FormatPercent(ex.Topics[1].Percent); got != "42" {
		t.Errorf("Topics[1] share = %q, want %q", got, "42")
	}
}

func TestClientNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "No model fitted."}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Export(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
	if nfErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", nfErr.StatusCode)
	}
	if nfErr.Message != "No model fitted." {
		t.Errorf("Message = %q, want %q", nfErr.Message, "No model fitted.")
	}
}

func TestClientErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Export(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "Internal Server Error" {
		t.Errorf("Message = %q, want status text fallback", apiErr.Message)
	}
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	c := NewClient("http://localhost:3000/")
	if c.BaseURL != "http://localhost:3000" {
		t.Errorf("BaseURL = %q, want trailing slash removed", c.BaseURL)
	}
}
