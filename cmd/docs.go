package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// docMeta is for describing the position/info for a command doc page
type docMeta struct {
	root     bool
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its build meta
var docMetas = map[string]docMeta{
	"reassemble":           {root: true, title: "reassemble"},
	"reassemble_fragments": {title: "fragments", parent: "reassemble"},
}

// docsCmd writes Markdown documentation for every command
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Write Markdown docs for the commands",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := cmd.Flags().GetString("dir")
		if err != nil {
			return err
		}
		return makeDocs(dir)
	},
}

// makeDocs parses the commands and outputs Markdown documentation files to dir
func makeDocs(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to make docs dir: %w", err)
	}
	if err := doc.GenMarkdownTreeCustom(RootCmd, dir, filePrepender, linkHandler); err != nil {
		return fmt.Errorf("failed to write docs: %w", err)
	}
	return nil
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	m, ok := docMetas[docBase(filename)]
	if !ok {
		return ""
	}
	if m.root {
		return fmt.Sprintf(rootDoc, m.title, m.navOrder)
	}
	return fmt.Sprintf(childDoc, m.title, m.parent, m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	base := docBase(filename)
	if base == "reassemble" {
		return "/"
	}
	return base
}

func docBase(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}

func init() {
	docsCmd.Flags().String("dir", "docs", "directory to write the docs to")
	RootCmd.AddCommand(docsCmd)
}
