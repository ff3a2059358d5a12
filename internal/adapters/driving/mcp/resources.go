package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/marcassist/internal/core/domain"
)

// uriScheme is the custom URI scheme for marcassist resources.
const uriScheme = "marcassist://"

// ruleInfo is the JSON form of a compiled rule.
type ruleInfo struct {
	Key         string   `json:"key"`
	Checks      []string `json:"checks"`
	Disabled    bool     `json:"disabled,omitempty"`
	Repeatable  bool     `json:"repeatable"`
	MustBeFirst bool     `json:"must_be_first,omitempty"`
	Source      string   `json:"source"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "rules",
		Name:        "rules",
		Description: "All active punctuation rules",
		MIMEType:    "application/json",
	}, s.handleRulesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "rules/{tag}",
		Name:        "tag-rules",
		Description: "Punctuation rules that apply to one field tag, including wildcard rules",
		MIMEType:    "application/json",
	}, s.handleTagRulesResource)
}

func (s *Server) handleRulesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, describeRules(s.session.Rules(), ""))
}

func (s *Server) handleTagRulesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	tag := extractTag(req.Params.URI)
	if tag == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, describeRules(s.session.Rules(), tag))
}

// describeRules lists rules for tag, or every rule when tag is empty.
func describeRules(rules *domain.RuleSet, tag string) []ruleInfo {
	infos := []ruleInfo{}
	for _, key := range rules.Keys() {
		ruleTag, code, _ := strings.Cut(key, "$")
		if tag != "" && ruleTag != tag && ruleTag != domain.WildcardTag {
			continue
		}
		rule, _ := rules.Rule(ruleTag, code)

		names := make([]string, 0, len(rule.Checks))
		for _, c := range rule.Checks {
			names = append(names, c.Name())
		}
		infos = append(infos, ruleInfo{
			Key:         key,
			Checks:      names,
			Disabled:    rule.Disabled,
			Repeatable:  rule.Repeatable,
			MustBeFirst: rule.MustBeFirst,
			Source:      rule.Source,
		})
	}
	return infos
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractTag extracts the tag from a URI like marcassist://rules/{tag}.
func extractTag(uri string) string {
	const prefix = uriScheme + "rules/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	tag := strings.TrimPrefix(uri, prefix)
	if strings.Contains(tag, "/") {
		return ""
	}
	return tag
}
