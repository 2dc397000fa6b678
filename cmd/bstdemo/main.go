/*
Command bstdemo demonstrates the operations of package bst on a small
example tree.

It builds the tree

	      10
	     /  \
	    5    15
	   / \
	  3   9

searches for 15 and 22, prints the tree in pre-, in- and postorder, inserts
a key (8 by default), prints the inorder traversal again, and finally checks
the tree for validity.

Optional flags append a console drawing or a wrapped key listing, or export
the tree in Graphviz DOT or HTML format.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/fatih/color"
	"github.com/npillmayer/bst"
	"github.com/npillmayer/bst/formatter"
	bsthtml "github.com/npillmayer/bst/html"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {

	app := cli.App{
		Name:    "bstdemo",
		Usage:   "demonstrate an integer binary search tree",
		Version: versioninfo.Short(),
		Writer:  out,
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "trace",
			Usage:   "trace level (error, info or debug)",
			Value:   "error",
			EnvVars: []string{"BST_TRACE"},
		},
		&cli.IntFlag{
			Name:  "insert",
			Usage: "key to insert into the example tree",
			Value: 8,
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colored output",
		},
		&cli.BoolFlag{
			Name:  "draw",
			Usage: "draw the final tree to the console",
		},
		&cli.BoolFlag{
			Name:  "wrap",
			Usage: "list the final keys, wrapped to the terminal width",
		},
		&cli.StringFlag{
			Name:  "dot",
			Usage: "write the final tree in Graphviz DOT format to `FILE`",
		},
		&cli.StringFlag{
			Name:  "html",
			Usage: "write the final tree as a nested HTML list to `FILE`",
		},
	}

	app.Action = demo
	return app.Run(args)
}

func setupTracing(level string) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.TraceLevelFromString(level))
}

func demo(cctx *cli.Context) error {
	setupTracing(cctx.String("trace"))
	if cctx.Bool("no-color") {
		color.NoColor = true
	}
	console := formatter.NewConsole(cctx.App.Writer, nil)
	tree := bst.ExampleTree()

	console.Heading("Searching for 15 in the tree")
	console.Bool(tree.Search(15))

	console.Heading("Searching for 22 in the tree")
	console.Bool(tree.Search(22))

	console.Heading("Preorder traversal of binary tree is")
	console.Sequence(tree.Preorder())

	console.Heading("Inorder traversal of binary tree is")
	console.Sequence(tree.Inorder())

	console.Heading("Postorder traversal of binary tree is")
	console.Sequence(tree.Postorder())

	tree.Insert(cctx.Int("insert"))
	console.Heading("Inorder traversal of binary tree is")
	console.Sequence(tree.Inorder())

	console.Bool(tree.IsValid())

	if cctx.Bool("draw") {
		console.Heading("Tree turned sideways")
		console.Draw(tree, formatter.ConfigFromTerminal())
	}
	if cctx.Bool("wrap") {
		console.Heading("Keys in ascending order")
		console.Wrapped(tree.Inorder(), formatter.ConfigFromTerminal())
	}
	if path := cctx.String("dot"); path != "" {
		if err := writeFile(path, func(w io.Writer) error {
			bst.Tree2Dot(tree, w)
			return nil
		}); err != nil {
			return fmt.Errorf("writing DOT output: %w", err)
		}
	}
	if path := cctx.String("html"); path != "" {
		if err := writeFile(path, func(w io.Writer) error {
			return bsthtml.Render(tree, w)
		}); err != nil {
			return fmt.Errorf("writing HTML output: %w", err)
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	gtrace.CoreTracer.Infof("wrote %s", path)
	return f.Close()
}
