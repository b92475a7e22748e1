package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// ListInput contains parameters for enumerating descendants.
	ListInput struct {
		Path           string   `json:"path,omitempty" jsonschema:"Directory to enumerate, relative to the server root (default: the root)"`
		Files          *bool    `json:"files,omitempty" jsonschema:"Include regular files (default: true)"`
		Directories    *bool    `json:"directories,omitempty" jsonschema:"Include directories (default: true)"`
		Symlinks       *bool    `json:"symlinks,omitempty" jsonschema:"Include symlinks (default: true)"`
		Hidden         *bool    `json:"hidden,omitempty" jsonschema:"Include dot-entries (default: true)"`
		FollowSymlinks bool     `json:"followSymlinks,omitempty" jsonschema:"Traverse symlink targets instead of listing links (default: false)"`
		Dedupe         bool     `json:"dedupe,omitempty" jsonschema:"Collapse duplicate paths reached through symlinks (default: false)"`
		MaxDepth       *int     `json:"maxDepth,omitempty" jsonschema:"Recursion depth ceiling, 0 lists direct children only (default: unbounded)"`
		Exclude        []string `json:"exclude,omitempty" jsonschema:"Exclude paths matching these regexps"`
		Include        []string `json:"include,omitempty" jsonschema:"Re-include excluded paths matching these regexps"`
	}

	// ListOutput contains the enumerated paths, relative to the server root.
	ListOutput struct {
		Paths []string `json:"paths"`
		Total int      `json:"total"`
	}

	// InspectInput contains parameters for classifying one path.
	InspectInput struct {
		Path string `json:"path" jsonschema:"Path to classify, relative to the server root"`
	}

	// InspectOutput describes one filesystem entry.
	InspectOutput struct {
		Path     string `json:"path"`
		Type     string `json:"type"`
		Hidden   bool   `json:"hidden"`
		RealPath string `json:"realPath"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list",
		Description: "List descendant paths of a directory under the server root. Supports type and visibility filters, a depth ceiling, symlink following, and exclude/include regexp rules. Unreadable subtrees are skipped silently.",
	}, handleList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Classify a single path under the server root: file, directory, or symlink, whether it is hidden, and the resolved target for symlinks.",
	}, handleInspect)
}
