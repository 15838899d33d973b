package solana

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vietddude/deploytime/internal/core/domain"
)

const testProgram = domain.ProgramID("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

func TestClient_GetSignaturesForAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
			Params []any  `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode body: %v", err)
			return
		}

		if req.Method != "getSignaturesForAddress" {
			t.Errorf("expected getSignaturesForAddress, got %q", req.Method)
		}
		if len(req.Params) != 2 {
			t.Fatalf("expected 2 params, got %d", len(req.Params))
		}
		if addr, ok := req.Params[0].(string); !ok || addr != testProgram.String() {
			t.Errorf("expected program address as first param, got %v", req.Params[0])
		}
		opts, ok := req.Params[1].(map[string]any)
		if !ok {
			t.Fatalf("expected options object, got %T", req.Params[1])
		}
		if opts["limit"] != float64(2) {
			t.Errorf("expected limit 2, got %v", opts["limit"])
		}
		if opts["commitment"] != "confirmed" {
			t.Errorf("expected confirmed commitment, got %v", opts["commitment"])
		}
		if opts["before"] != "sigNewest" {
			t.Errorf("expected before cursor sigNewest, got %v", opts["before"])
		}

		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":[
			{"signature":"sigB","slot":150,"blockTime":1700000100,"err":null},
			{"signature":"sigA","slot":100,"blockTime":null,"err":null}
		]}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, 5*time.Second)
	defer c.Close()

	infos, err := c.GetSignaturesForAddress(context.Background(), testProgram, 2, "sigNewest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(infos))
	}
	if infos[0].Signature != "sigB" || infos[0].Slot != 150 {
		t.Errorf("unexpected first entry: %+v", infos[0])
	}
	if infos[0].BlockTime == nil || *infos[0].BlockTime != 1700000100 {
		t.Errorf("expected blockTime 1700000100, got %v", infos[0].BlockTime)
	}
	if infos[1].BlockTime != nil {
		t.Errorf("expected nil blockTime for sigA, got %v", *infos[1].BlockTime)
	}
}

func TestClient_GetSignaturesForAddress_NoCursorOmitsBefore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Params []any `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode body: %v", err)
			return
		}
		opts, _ := req.Params[1].(map[string]any)
		if _, present := opts["before"]; present {
			t.Errorf("expected no before field on first page, got %v", opts["before"])
		}
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":[]}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, 5*time.Second)
	defer c.Close()

	infos, err := c.GetSignaturesForAddress(context.Background(), testProgram, 1000, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("expected empty page, got %d entries", len(infos))
	}
}

func TestClient_GetTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
			Params []any  `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode body: %v", err)
			return
		}
		if req.Method != "getTransaction" {
			t.Errorf("expected getTransaction, got %q", req.Method)
		}
		opts, _ := req.Params[1].(map[string]any)
		if opts["maxSupportedTransactionVersion"] != float64(0) {
			t.Errorf("expected maxSupportedTransactionVersion 0, got %v", opts["maxSupportedTransactionVersion"])
		}

		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"slot":123,"blockTime":1650000000}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, 5*time.Second)
	defer c.Close()

	tx, err := c.GetTransaction(context.Background(), "sigA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Slot != 123 {
		t.Errorf("expected slot 123, got %d", tx.Slot)
	}
	if tx.BlockTime == nil || *tx.BlockTime != 1650000000 {
		t.Errorf("expected blockTime 1650000000, got %v", tx.BlockTime)
	}
}

func TestClient_GetTransaction_NullResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":null}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, 5*time.Second)
	defer c.Close()

	_, err := c.GetTransaction(context.Background(), "sigMissing")
	if err == nil {
		t.Fatal("expected error for null result")
	}

	var notFound *domain.TransactionNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected TransactionNotFoundError, got %T: %v", err, err)
	}
	if notFound.Signature != "sigMissing" {
		t.Errorf("expected signature sigMissing, got %q", notFound.Signature)
	}
}
