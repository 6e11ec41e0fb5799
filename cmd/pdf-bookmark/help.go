package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf-bookmark [flags]")
	fmt.Fprintln(w, "       pdf-bookmark <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Import, export, and apply PDF bookmarks with pdftk and Ghostscript.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  merge      Merge PDFs, keeping each file's bookmarks")
	fmt.Fprintln(w, "  unicode    Encode or decode pdfmark Unicode strings")
	fmt.Fprintln(w, "  doctor     Check pdftk and Ghostscript installation")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pdf-bookmark help bookmark' for the flags of the default command.")
	fmt.Fprintln(w, "Run 'pdf-bookmark help <command>' for details on a specific command.")
}

// printBookmarkUsage prints usage for the default bookmark command.
func printBookmarkUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf-bookmark [--bookmark <file> | --pdf <file>] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read bookmarks from an outline file or a PDF, print them in the chosen")
	fmt.Fprintln(w, "format, and optionally write a copy of the PDF carrying them.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -b, --bookmark <file>     Outline file to import (- = stdin)")
	fmt.Fprintln(w, "  -p, --pdf <file>          PDF to dump bookmarks from, or to apply them to")
	fmt.Fprintln(w, "  -o, --output-pdf <file>   Write --pdf with the bookmarks applied (requires --pdf)")
	fmt.Fprintln(w, "  -f, --format <s>          Output: bmk (default), none, pdftk, pdfmark, json, yaml")
	fmt.Fprintln(w, "  -l, --collapse-level <n>  Collapse entries at level n and deeper (0 = expand all)")
	fmt.Fprintln(w)
	printCommonUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Outline notation:")
	fmt.Fprintln(w, "  Chapter 1.........1       Title, four or more dots, displayed page")
	fmt.Fprintln(w, "    Section 1.1....2        Indentation (level_indent spaces) nests entries")
	fmt.Fprintln(w, "  !!! num_style = Roman     Directives: new_index, num_start, num_style,")
	fmt.Fprintln(w, "                            collapse_level, level_indent")
}

// printMergeUsage prints usage for the merge command.
func printMergeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf-bookmark merge [flags] <input.pdf>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Concatenate PDFs, keeping every input's bookmarks and page labels.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <file>       Merged PDF (default: output.pdf)")
	fmt.Fprintln(w, "      --pdfmarks <file>     Reuse this pdfmarks file if it exists;")
	fmt.Fprintln(w, "                            otherwise write it and stop")
	fmt.Fprintln(w, "  -l, --collapse-level <n>  Collapse entries at level n and deeper")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document info:")
	fmt.Fprintln(w, "      --title <s>           Document title")
	fmt.Fprintln(w, "      --author <s>          Document author")
	fmt.Fprintln(w, "      --keyword <s>         Keyword (repeatable)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printCommonUsage prints the flags shared by bookmark and merge.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Tools:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <dur>       External tool timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --pdftk <exe>         pdftk executable (env: PDFBOOKMARK_PDFTK)")
	fmt.Fprintln(w, "      --gs <exe>            Ghostscript executable (env: PDFBOOKMARK_GS)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show external tool invocations")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "bookmark":
		printBookmarkUsage(env.Stdout)
	case "merge":
		printMergeUsage(env.Stdout)
	case "unicode":
		fmt.Fprintln(env.Stdout, "Usage: pdf-bookmark unicode <string>...")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Decode each <FEFF...> argument to text; encode any other argument")
		fmt.Fprintln(env.Stdout, "as a pdfmark string.")
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: pdf-bookmark doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check that pdftk and Ghostscript are installed.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: pdf-bookmark version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: pdf-bookmark help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
