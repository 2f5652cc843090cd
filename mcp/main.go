// MCP Server for profilecard - exposes the profile card and the demo tools to LLMs
package main

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"profilecard/config"
	"profilecard/profile"
	"profilecard/render"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Input types for tools
type ProfileInput struct {
	Initial    string   `json:"initial,omitempty" jsonschema:"Single-character initial (default: J)"`
	Age        *int     `json:"age,omitempty" jsonschema:"Current age in years (default: 30)"`
	Height     *float64 `json:"height,omitempty" jsonschema:"Height in feet (default: 5.9)"`
	YearsLater *int     `json:"years_later,omitempty" jsonschema:"Years to project the age forward (default: 5)"`
	Format     string   `json:"format,omitempty" jsonschema:"Output format: text (default) or json"`
}

type AddNumbersInput struct {
	A float64 `json:"a" jsonschema:"First number to add"`
	B float64 `json:"b" jsonschema:"Second number to add"`
}

type HelloInput struct {
	Name string `json:"name" jsonschema:"Name to greet"`
}

// EmptyInput for tools that don't need parameters
type EmptyInput struct{}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Config error: %v (using defaults)", err)
		cfg = config.DefaultConfig()
	}

	server := newServer(cfg)

	// Run server on stdio
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Printf("Server error: %v", err)
	}
}

func newServer(c *config.Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    c.Server.Name,
		Version: c.Server.Version,
	}, nil)

	// Tool: get_profile - Render the profile card
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_profile",
		Description: "Render the user profile card: initial, current age, height to one decimal, the age after a number of years, and a height verdict. With no arguments it returns the default card; any field can be overridden.",
	}, handleGetProfile)

	// Tool: add_numbers - Add two numbers
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_numbers",
		Description: "Add two numbers together",
	}, handleAddNumbers)

	// Tool: hello - Greet by name
	mcp.AddTool(server, &mcp.Tool{
		Name:        "hello",
		Description: "Return a greeting for the given name",
	}, handleHello)

	// Tool: status - Verify MCP connection
	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Check server status and list available tools",
	}, statusHandler(c))

	return server
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
		IsError: true,
	}
}

// profileFromInput applies the optional overrides on top of the default profile
func profileFromInput(input ProfileInput) (profile.Profile, error) {
	p := profile.Default()

	if input.Initial != "" {
		r, err := profile.ParseInitial(input.Initial)
		if err != nil {
			return p, err
		}
		p.Initial = r
	}
	if input.Age != nil {
		p.Age = *input.Age
	}
	if input.Height != nil {
		p.Height = *input.Height
	}
	if input.YearsLater != nil {
		p.YearsLater = *input.YearsLater
	}

	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid profile: %w", err)
	}
	return p, nil
}

func handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input ProfileInput) (*mcp.CallToolResult, any, error) {
	p, err := profileFromInput(input)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	switch input.Format {
	case "", config.FormatText:
		return textResult(render.TextString(p)), nil, nil
	case config.FormatJSON:
		var sb strings.Builder
		if err := render.JSON(&sb, p); err != nil {
			return errorResult(err.Error()), nil, nil
		}
		return textResult(sb.String()), nil, nil
	default:
		return errorResult(fmt.Sprintf("unknown format: %s (use text or json)", input.Format)), nil, nil
	}
}

// formatNumber prints whole numbers without a fractional part
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func handleAddNumbers(ctx context.Context, req *mcp.CallToolRequest, input AddNumbersInput) (*mcp.CallToolResult, any, error) {
	sum := input.A + input.B
	return textResult(fmt.Sprintf("The sum of %s and %s is %s",
		formatNumber(input.A), formatNumber(input.B), formatNumber(sum))), nil, nil
}

func handleHello(ctx context.Context, req *mcp.CallToolRequest, input HelloInput) (*mcp.CallToolResult, any, error) {
	return textResult(fmt.Sprintf("Hello, %s!", input.Name)), nil, nil
}

// statusHandler reports the identity the server was built with
func statusHandler(c *config.Config) mcp.ToolHandlerFor[EmptyInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, any, error) {
		return textResult(fmt.Sprintf(`%s MCP server v%s
Status: connected

Available tools:
  get_profile   - Render the profile card (optional overrides)
  add_numbers   - Add two numbers
  hello         - Greet by name
  status        - This message`, c.Server.Name, c.Server.Version)), nil, nil
	}
}
