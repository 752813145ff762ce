// Emailguard CLI - Email HTML checking tool
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joeblew999/plat-emailguard/pkg/deliverability"
	"github.com/joeblew999/plat-emailguard/pkg/emailsafe"
	"github.com/joeblew999/plat-emailguard/pkg/render"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	case "score":
		scoreCmd(os.Args[2:])
	case "text":
		textCmd(os.Args[2:])
	case "optimize":
		optimizeCmd(os.Args[2:])
	case "spam":
		spamCmd(os.Args[2:])
	case "version":
		fmt.Println("emailguard v0.1.0")
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Emailguard - Email HTML Checking CLI

Usage:
  emailguard <command> [options]

Commands:
  check      Validate and sanitize email HTML
  score      Score email HTML quality (0-100)
  text       Extract the plain-text rendition
  optimize   Rewrite HTML for email client compatibility
  spam       Assess spam risk of subject and body
  version    Show version
  help       Show this help

Examples:
  emailguard check -file=email.html
  emailguard check -file=email.mjml -mjml
  emailguard score -file=email.html
  emailguard text -file=email.html -out=email.txt
  emailguard optimize -file=email.html -out=optimized.html
  emailguard spam -file=email.html -subject="Weekly update"

Reading from stdin is supported: pass -file=- or omit -file.`)
}

// readInput reads from the named file, or stdin when file is empty or "-".
func readInput(file string) string {
	if file == "" || file == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Printf("Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		return string(content)
	}

	content, err := os.ReadFile(file)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}
	return string(content)
}

func writeOutput(out, content string) {
	if out != "" {
		if err := os.WriteFile(out, []byte(content), 0644); err != nil {
			fmt.Printf("Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Written to %s (%d bytes)\n", out, len(content))
	} else {
		fmt.Println(content)
	}
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	file := fs.String("file", "", "HTML file to check (default: stdin)")
	mjml := fs.Bool("mjml", false, "Treat input as MJML and render first")
	outFile := fs.String("out", "", "Write sanitized HTML to file")
	fs.Parse(args)

	source := readInput(*file)
	if *mjml {
		rendered, err := render.MJML(source)
		if err != nil {
			fmt.Printf("Error rendering MJML: %v\n", err)
			os.Exit(1)
		}
		source = rendered
	}

	result := emailsafe.ValidateAndSanitize(source)
	score := emailsafe.CalculateQualityScore(result.SanitizedHTML)

	if result.IsValid {
		fmt.Printf("✓ Valid email HTML, score %d/100\n", score.Score)
	} else {
		fmt.Printf("⚠ Found %d issue(s), score %d/100:\n", len(result.Issues), score.Score)
		for _, issue := range result.Issues {
			fmt.Printf("  • %s\n", issue)
		}
		for _, fix := range result.Fixes {
			fmt.Printf("  ✓ %s\n", fix)
		}
	}

	if *outFile != "" {
		writeOutput(*outFile, result.SanitizedHTML)
	}

	if !result.IsValid {
		os.Exit(1)
	}
}

func scoreCmd(args []string) {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	file := fs.String("file", "", "HTML file to score (default: stdin)")
	fs.Parse(args)

	score := emailsafe.CalculateQualityScore(readInput(*file))

	fmt.Printf("Quality score: %d/100\n", score.Score)
	fmt.Printf("  Structure:     %d/25\n", score.Breakdown.Structure)
	fmt.Printf("  Compatibility: %d/25\n", score.Breakdown.Compatibility)
	fmt.Printf("  Accessibility: %d/25\n", score.Breakdown.Accessibility)
	fmt.Printf("  Content:       %d/25\n", score.Breakdown.Content)
}

func textCmd(args []string) {
	fs := flag.NewFlagSet("text", flag.ExitOnError)
	file := fs.String("file", "", "HTML file to extract from (default: stdin)")
	outFile := fs.String("out", "", "Output file (default: stdout)")
	fs.Parse(args)

	writeOutput(*outFile, emailsafe.ExtractPlainText(readInput(*file)))
}

func optimizeCmd(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	file := fs.String("file", "", "HTML file to optimize (default: stdin)")
	outFile := fs.String("out", "", "Output file (default: stdout)")
	fs.Parse(args)

	writeOutput(*outFile, emailsafe.OptimizeForEmailClients(readInput(*file)))
}

func spamCmd(args []string) {
	fs := flag.NewFlagSet("spam", flag.ExitOnError)
	file := fs.String("file", "", "HTML file to assess (default: stdin)")
	subject := fs.String("subject", "", "Email subject line")
	fs.Parse(args)

	html := readInput(*file)

	report := deliverability.CheckSpam(html, *subject)
	fmt.Printf("Spam score: %d (risk: %s)\n", report.Score, report.Risk)
	for _, f := range report.Factors {
		fmt.Printf("  • %s\n", f)
	}
	if len(report.Recommendations) > 0 {
		fmt.Println("Recommendations:")
		for _, rec := range report.Recommendations {
			fmt.Printf("  ✓ %s\n", rec)
		}
	}

	delivery := deliverability.Check(html, *subject)
	fmt.Printf("Deliverability score: %d/100\n", delivery.Score)
	for _, issue := range delivery.Issues {
		fmt.Printf("  • %s\n", issue)
	}

	if report.Risk == deliverability.RiskHigh {
		os.Exit(1)
	}
}
