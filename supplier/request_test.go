package supplier

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRequestRoundTrip(t *testing.T) {
	req := Request{
		Operation: Search,
		Params: map[string]any{
			"keyword": "laptop",
			"limit":   float64(10),
			"tags":    []any{"new", "sale"},
		},
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded Request
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded.Operation != req.Operation {
		t.Errorf("operation changed: %q -> %q", req.Operation.String(), decoded.Operation.String())
	}
	if !reflect.DeepEqual(decoded.Params, req.Params) {
		t.Errorf("params changed: %#v -> %#v", req.Params, decoded.Params)
	}
}

func TestRequestRoundTripOtherOperation(t *testing.T) {
	req := Request{Operation: Other("submit_transaction"), Params: []any{"a", float64(1)}}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded Request
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.Operation != req.Operation {
		t.Errorf("operation changed: %q -> %q", req.Operation.String(), decoded.Operation.String())
	}
	if !reflect.DeepEqual(decoded.Params, req.Params) {
		t.Errorf("params changed: %#v -> %#v", req.Params, decoded.Params)
	}
}

func TestResponseRoundTrip(t *testing.T) {
	resp := Response{Data: map[string]any{"items": []any{map[string]any{"id": float64(1)}}}}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded Response
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(decoded, resp) {
		t.Errorf("response changed: %#v -> %#v", resp, decoded)
	}
}

func TestCloneIndependence(t *testing.T) {
	req := Request{
		Operation: Search,
		Params: map[string]any{
			"keyword": "laptop",
			"filter":  map[string]any{"max_price": float64(1000)},
			"tags":    []any{"new"},
		},
	}

	clone := req.Clone()

	clone.Params.(map[string]any)["keyword"] = "tampered"
	clone.Params.(map[string]any)["filter"].(map[string]any)["max_price"] = float64(1)
	clone.Params.(map[string]any)["tags"].([]any)[0] = "tampered"

	params := req.Params.(map[string]any)
	if params["keyword"] != "laptop" {
		t.Error("clone mutation leaked into original keyword")
	}
	if params["filter"].(map[string]any)["max_price"] != float64(1000) {
		t.Error("clone mutation leaked into nested map")
	}
	if params["tags"].([]any)[0] != "new" {
		t.Error("clone mutation leaked into nested slice")
	}
}

func TestCloneScalarParams(t *testing.T) {
	req := Request{Operation: GetDetail, Params: "item-42"}
	clone := req.Clone()
	if clone.Params != "item-42" {
		t.Errorf("expected scalar params preserved, got %v", clone.Params)
	}

	req = Request{Operation: GetDetail, Params: nil}
	if req.Clone().Params != nil {
		t.Error("expected nil params preserved")
	}
}
