package main

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/subpaths"
	"github.com/taigrr/subpaths/pathmatch"
)

func handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	dir, err := pathScope.Resolve(input.Path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListOutput{}, err
	}

	opts := subpaths.DefaultOptions()
	if input.Files != nil {
		opts.Files = *input.Files
	}
	if input.Directories != nil {
		opts.Directories = *input.Directories
	}
	if input.Symlinks != nil {
		opts.Symlinks = *input.Symlinks
	}
	if input.Hidden != nil {
		opts.Hidden = *input.Hidden
	}
	opts.FollowSymlinks = input.FollowSymlinks
	opts.DedupeSymlinkContents = input.Dedupe
	if input.MaxDepth != nil {
		opts.MaxDepth = *input.MaxDepth
	}

	opts.Exclude, err = pathmatch.Compile(input.Exclude)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListOutput{}, err
	}
	opts.Include, err = pathmatch.Compile(input.Include)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListOutput{}, err
	}

	paths, err := subpaths.List(dir, &opts)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListOutput{}, err
	}

	// Clients never see host-absolute paths; results are rewritten relative
	// to the server root.
	relative := make([]string, 0, len(paths))
	for _, p := range paths {
		relative = append(relative, pathScope.Rel(p))
	}

	return nil, ListOutput{
		Paths: relative,
		Total: len(relative),
	}, nil
}

func handleInspect(ctx context.Context, req *mcp.CallToolRequest, input InspectInput) (*mcp.CallToolResult, InspectOutput, error) {
	path := strings.TrimSpace(input.Path)
	absPath, err := pathScope.Resolve(path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, InspectOutput{}, err
	}

	details, err := subpaths.Inspect(absPath)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, InspectOutput{}, err
	}

	return nil, InspectOutput{
		Path:     pathScope.Rel(absPath),
		Type:     string(details.Type),
		Hidden:   details.Hidden,
		RealPath: pathScope.Rel(details.RealPath),
	}, nil
}
