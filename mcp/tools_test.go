package main

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"profilecard/config"
	"profilecard/render"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty result content")
	}
	return result.Content[0].(*mcp.TextContent).Text
}

func TestMCPTools(t *testing.T) {
	ctx := context.Background()

	t.Run("get_profile default", func(t *testing.T) {
		result, _, err := handleGetProfile(ctx, nil, ProfileInput{})
		if err != nil {
			t.Fatalf("handleGetProfile failed: %v", err)
		}
		if result.IsError {
			t.Fatalf("handleGetProfile returned error result: %s", resultText(t, result))
		}
		want := "--- User Profile ---\nInitial: J\nCurrent Age: 30 years\nHeight: 5.9 feet\nIn 5 years, age will be: 35\nAverage height noted.\n--- End of Profile ---\n"
		if got := resultText(t, result); got != want {
			t.Errorf("unexpected card:\n%s", got)
		}
	})

	t.Run("get_profile overrides", func(t *testing.T) {
		input := ProfileInput{Initial: "K", Age: intPtr(41), Height: floatPtr(6.3), YearsLater: intPtr(10)}
		result, _, err := handleGetProfile(ctx, nil, input)
		if err != nil {
			t.Fatalf("handleGetProfile failed: %v", err)
		}
		text := resultText(t, result)
		for _, want := range []string{"Initial: K", "Current Age: 41 years", "Height: 6.3 feet", "In 10 years, age will be: 51", "You're quite tall!"} {
			if !strings.Contains(text, want) {
				t.Errorf("expected %q in output:\n%s", want, text)
			}
		}
	})

	t.Run("get_profile json", func(t *testing.T) {
		result, _, err := handleGetProfile(ctx, nil, ProfileInput{Format: "json", Height: floatPtr(6.0)})
		if err != nil {
			t.Fatalf("handleGetProfile failed: %v", err)
		}
		var doc render.Document
		if err := json.Unmarshal([]byte(resultText(t, result)), &doc); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if doc.Tall {
			t.Error("height 6.0 must not be tall")
		}
		if doc.FutureAge != 35 {
			t.Errorf("future_age = %d, want 35", doc.FutureAge)
		}
	})

	t.Run("get_profile invalid", func(t *testing.T) {
		cases := []ProfileInput{
			{Initial: "JK"},
			{Age: intPtr(-1)},
			{Age: intPtr(math.MaxInt), YearsLater: intPtr(1)},
			{Height: floatPtr(0)},
			{Format: "xml"},
		}
		for _, input := range cases {
			result, _, err := handleGetProfile(ctx, nil, input)
			if err != nil {
				t.Fatalf("handler returned protocol error: %v", err)
			}
			if !result.IsError {
				t.Errorf("expected error result for %+v, got:\n%s", input, resultText(t, result))
			}
		}
	})

	t.Run("add_numbers", func(t *testing.T) {
		tests := []struct {
			a, b float64
			want string
		}{
			{2, 3, "The sum of 2 and 3 is 5"},
			{1.5, 2.25, "The sum of 1.5 and 2.25 is 3.75"},
			{-4, 4, "The sum of -4 and 4 is 0"},
		}
		for _, tt := range tests {
			result, _, err := handleAddNumbers(ctx, nil, AddNumbersInput{A: tt.a, B: tt.b})
			if err != nil {
				t.Fatalf("handleAddNumbers failed: %v", err)
			}
			if got := resultText(t, result); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		}
	})

	t.Run("hello", func(t *testing.T) {
		result, _, err := handleHello(ctx, nil, HelloInput{Name: "Ada"})
		if err != nil {
			t.Fatalf("handleHello failed: %v", err)
		}
		if got := resultText(t, result); got != "Hello, Ada!" {
			t.Errorf("got %q", got)
		}

		result, _, _ = handleHello(ctx, nil, HelloInput{})
		if result.IsError || resultText(t, result) != "Hello, !" {
			t.Errorf("blank name should still greet, got %q", resultText(t, result))
		}
	})

	t.Run("status", func(t *testing.T) {
		c := config.DefaultConfig()
		c.Server.Name = "cardserver"
		c.Server.Version = "9.9.9"
		result, _, err := statusHandler(c)(ctx, nil, EmptyInput{})
		if err != nil {
			t.Fatalf("status handler failed: %v", err)
		}
		text := resultText(t, result)
		if !strings.HasPrefix(text, "cardserver MCP server v9.9.9\n") {
			t.Errorf("status should report the configured identity:\n%s", text)
		}
		for _, tool := range []string{"get_profile", "add_numbers", "hello", "status"} {
			if !strings.Contains(text, tool) {
				t.Errorf("status missing tool %q:\n%s", tool, text)
			}
		}
	})
}

func TestNewServer(t *testing.T) {
	if s := newServer(config.DefaultConfig()); s == nil {
		t.Fatal("newServer returned nil")
	}
}
