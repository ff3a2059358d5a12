package mcp

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

// CutterBuildInput is the input schema for the cutter_build tool.
type CutterBuildInput struct {
	Text string `json:"text" jsonschema:"the heading as it appears in the field, e.g. 'Smith, John' or 'The Great War'"`
	Tag  string `json:"tag,omitempty" jsonschema:"MARC tag of the source field: 100, 110, 111, 245, 700... (default 100)"`
}

// CutterBuildOutput is the output schema for the cutter_build tool.
type CutterBuildOutput struct {
	Cutter    string `json:"cutter"`
	Lastname  string `json:"lastname"`
	Firstname string `json:"firstname,omitempty"`
	Found     bool   `json:"found"`
}

// CutterGenerateInput is the input schema for the cutter_generate tool.
type CutterGenerateInput struct {
	Lastname       string `json:"lastname" jsonschema:"surname or first significant title word"`
	Firstname      string `json:"firstname,omitempty" jsonschema:"given name; its initial refines the lookup"`
	Suffix         string `json:"suffix,omitempty" jsonschema:"text appended to the number, e.g. a date"`
	FoldDiacritics bool   `json:"fold_diacritics,omitempty" jsonschema:"strip accents before lookup"`
}

// CutterGenerateOutput is the output schema for the cutter_generate tool.
type CutterGenerateOutput struct {
	Cutter string `json:"cutter"`
	Found  bool   `json:"found"`
}

// ValidateFieldInput is the input schema for the validate_field tool.
type ValidateFieldInput struct {
	Field     string `json:"field" jsonschema:"the field text with subfields introduced by $ or 0x1F, e.g. '10$aTitle$bsubtitle'"`
	Tag       string `json:"tag" jsonschema:"MARC tag of the field, e.g. 245"`
	Delimiter string `json:"delimiter,omitempty" jsonschema:"subfield delimiter; detected when empty"`
}

// ValidateFieldOutput is the output schema for the validate_field tool.
type ValidateFieldOutput struct {
	Findings []domain.Finding `json:"findings"`
	Count    int              `json:"count"`
}

// WarningsInput is the empty input of the warning tools.
type WarningsInput struct{}

// WarningsOutput is the output schema for get_warnings and clear_warnings.
type WarningsOutput struct {
	Warnings []domain.Warning `json:"warnings"`
	Count    int              `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cutter_build",
		Description: "Build a Cutter number, with its leading period, from a name or title heading",
	}, s.handleCutterBuild)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cutter_generate",
		Description: "Generate a Cutter number from an explicit surname and given name",
	}, s.handleCutterGenerate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_field",
		Description: "Check the punctuation between subfields of a MARC field and return corrected values",
	}, s.handleValidateField)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_warnings",
		Description: "List structural warnings collected by validate_field since they were last cleared",
	}, s.handleGetWarnings)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clear_warnings",
		Description: "Clear collected warnings, returning the ones removed",
	}, s.handleClearWarnings)
}

func (s *Server) handleCutterBuild(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CutterBuildInput,
) (*mcp.CallToolResult, CutterBuildOutput, error) {
	tag := input.Tag
	if tag == "" {
		tag = domain.TagPersonalName
	}

	parts := s.ports.Cutter.Parse(input.Text, tag)
	cutter := s.ports.Cutter.Build(input.Text, tag)

	return nil, CutterBuildOutput{
		Cutter:    cutter,
		Lastname:  parts.Lastname,
		Firstname: parts.Firstname,
		Found:     cutter != "",
	}, nil
}

func (s *Server) handleCutterGenerate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CutterGenerateInput,
) (*mcp.CallToolResult, CutterGenerateOutput, error) {
	cutter := s.ports.Cutter.Generate(input.Lastname, input.Firstname, domain.CutterOptions{
		Suffix:         input.Suffix,
		FoldDiacritics: input.FoldDiacritics,
	})
	return nil, CutterGenerateOutput{Cutter: cutter, Found: cutter != ""}, nil
}

func (s *Server) handleValidateField(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ValidateFieldInput,
) (*mcp.CallToolResult, ValidateFieldOutput, error) {
	fctx := domain.FieldContext{Tag: input.Tag}
	if input.Delimiter != "" {
		if utf8.RuneCountInString(input.Delimiter) != 1 {
			return nil, ValidateFieldOutput{}, fmt.Errorf("%w: delimiter must be a single character", domain.ErrInvalidInput)
		}
		fctx.Delimiter, _ = utf8.DecodeRuneInString(input.Delimiter)
	}

	result, err := s.session.ValidateField(input.Field, fctx)
	if err != nil {
		return nil, ValidateFieldOutput{}, err
	}
	return nil, ValidateFieldOutput{Findings: result.Findings, Count: len(result.Findings)}, nil
}

func (s *Server) handleGetWarnings(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ WarningsInput,
) (*mcp.CallToolResult, WarningsOutput, error) {
	return nil, warningsOutput(s.session.Warnings()), nil
}

func (s *Server) handleClearWarnings(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ WarningsInput,
) (*mcp.CallToolResult, WarningsOutput, error) {
	return nil, warningsOutput(s.session.DrainWarnings()), nil
}

func warningsOutput(warnings []domain.Warning) WarningsOutput {
	if warnings == nil {
		warnings = []domain.Warning{}
	}
	return WarningsOutput{Warnings: warnings, Count: len(warnings)}
}
