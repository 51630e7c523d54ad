package agents

import "testing"

func testRoster() Roster {
	return Roster{
		{
			Name:              "Greeter",
			PublicDescription: "Greets callers and routes them onward.",
			Tools:             []Tool{NewTool("lookup_hours", "Look up opening hours.", nil)},
			Handoffs:          []string{"Sales", "Support"},
		},
		{Name: "Sales", PublicDescription: "Handles orders and upgrades."},
	}
}

func TestFindIsCaseInsensitive(t *testing.T) {
	roster := testRoster()

	for _, name := range []string{"Sales", "sales", "SALES"} {
		agent, ok := roster.Find(name)
		if !ok {
			t.Fatalf("expected to find %q", name)
		}
		if agent.Name != "Sales" {
			t.Fatalf("expected canonical name Sales, got %q", agent.Name)
		}
	}

	if _, ok := roster.Find("Billing"); ok {
		t.Fatalf("expected miss for agent outside the roster")
	}
}

func TestDefaultIsFirstAgent(t *testing.T) {
	agent, ok := testRoster().Default()
	if !ok || agent.Name != "Greeter" {
		t.Fatalf("expected Greeter as root agent, got %+v (ok=%v)", agent, ok)
	}

	if _, ok := (Roster{}).Default(); ok {
		t.Fatalf("expected empty roster to have no default")
	}
}

func TestSessionToolsAddsHandoffsAndSkipsMisses(t *testing.T) {
	roster := testRoster()
	agent, _ := roster.Default()

	tools := roster.SessionTools(agent)

	// Own tool plus one handoff tool; the Support handoff misses the
	// roster and must be skipped.
	if len(tools) != 2 {
		t.Fatalf("expected 2 tools, got %d: %+v", len(tools), tools)
	}
	if tools[0].Name != "lookup_hours" {
		t.Fatalf("expected the agent's own tool first, got %q", tools[0].Name)
	}
	if tools[1].Name != "transfer_to_Sales" {
		t.Fatalf("expected handoff tool, got %q", tools[1].Name)
	}
	if tools[1].Description != "Handles orders and upgrades." {
		t.Fatalf("expected target's public description, got %q", tools[1].Description)
	}
}

func TestNewToolReflectsParameterSchema(t *testing.T) {
	type orderParams struct {
		OrderID string `json:"order_id" jsonschema:"description=The order to look up"`
	}

	tool := NewTool("lookup_order", "Look up an order.", orderParams{})
	if tool.Type != "function" {
		t.Fatalf("expected function type, got %q", tool.Type)
	}
	if tool.Parameters == nil {
		t.Fatalf("expected a reflected parameter schema")
	}
	if _, ok := tool.Parameters.Properties.Get("order_id"); !ok {
		t.Fatalf("expected order_id in schema properties")
	}

	pointer := NewTool("lookup_order", "Look up an order.", &orderParams{})
	if pointer.Parameters == nil {
		t.Fatalf("expected pointer parameters to reflect the element type")
	}
	if _, ok := pointer.Parameters.Properties.Get("order_id"); !ok {
		t.Fatalf("expected order_id in schema properties")
	}

	if NewTool("noop", "Does nothing.", nil).Parameters != nil {
		t.Fatalf("expected nil schema for parameterless tool")
	}
}

func TestHandoffTarget(t *testing.T) {
	cases := []struct {
		toolName string
		want     string
		ok       bool
	}{
		{"transfer_to_Sales", "Sales", true},
		{"transfer_to_back_office", "back_office", true},
		{"transfer_to_", "", false},
		{"lookup_hours", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := HandoffTarget(tc.toolName)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("HandoffTarget(%q) = %q, %v; want %q, %v", tc.toolName, got, ok, tc.want, tc.ok)
		}
	}
}
