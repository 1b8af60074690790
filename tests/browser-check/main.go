// tests/browser-check/main.go
//
// Lightweight browser validation for a running scanner.
//
// Usage:
//   go run ./tests/browser-check -url http://localhost:4243/
//   go run ./tests/browser-check -url http://localhost:4243/ -check '#scan-form|visible' -check '.intro|visible'
//   go run ./tests/browser-check -url http://localhost:4243/lang?l=ja -check '.brand-sub|text=インテリジェンス'
//   go run ./tests/browser-check -url http://localhost:4243/ -viewport 375x812 -screenshot /tmp/scanner.png
//   go run ./tests/browser-check -url http://localhost:4243/ -eval 'document.querySelector("input[name=_csrf]").value.length > 0'

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bobmcallan/meme-scanner/tests/common"
)

// multiFlag allows repeated -check or -click or -eval flags.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ", ") }
func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func main() {
	var (
		url        string
		viewport   string
		screenshot string
		waitMs     int
		checks     multiFlag
		clicks     multiFlag
		navs       multiFlag
		evals      multiFlag
	)

	flag.StringVar(&url, "url", "", "URL to test (required)")
	flag.StringVar(&viewport, "viewport", "", "Viewport as WxH, e.g. 375x812")
	flag.StringVar(&screenshot, "screenshot", "", "Save screenshot to path")
	flag.IntVar(&waitMs, "wait", 1000, "Wait ms after load")
	flag.Var(&checks, "check", "selector|state  (state: visible, hidden, exists, gone, text=X, count>N)")
	flag.Var(&clicks, "click", "CSS selector to click (in order, before -check)")
	flag.Var(&navs, "clicknav", "CSS selector to click that navigates (after -click)")
	flag.Var(&evals, "eval", "JS expression that must return truthy")
	flag.Parse()

	if url == "" {
		fmt.Fprintln(os.Stderr, "ERROR: -url is required")
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := common.NewBrowserContext(common.DefaultBrowserConfig())
	defer cancel()

	errs := common.NewJSErrorCollector(ctx)

	resp, err := common.RunChecks(ctx, common.CheckRequest{
		URL:        url,
		Viewport:   viewport,
		Screenshot: screenshot,
		WaitMs:     waitMs,
		Checks:     checks,
		Clicks:     clicks,
		ClickNavs:  navs,
		Evals:      evals,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}

	for _, r := range resp.Results {
		mark := "PASS"
		if !r.Pass {
			mark = "FAIL"
		}
		fmt.Printf("%s  %s  %s\n", mark, r.Name, r.Detail)
	}

	jsErrs := errs.Errors()
	for _, e := range jsErrs {
		fmt.Printf("FAIL  js  %s\n", common.Truncate(e, 120))
	}

	fmt.Printf("\n%d passed, %d failed, %d js errors\n", resp.Passed, resp.Failed, len(jsErrs))
	if screenshot != "" {
		fmt.Printf("screenshot: %s\n", screenshot)
	}
	if resp.Failed > 0 || len(jsErrs) > 0 {
		os.Exit(1)
	}
}
