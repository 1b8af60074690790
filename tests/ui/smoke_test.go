package tests

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bobmcallan/meme-scanner/tests/common"
	"github.com/chromedp/chromedp"
)

func TestSmokeScannerNoJSErrors(t *testing.T) {
	ctx, cancel := newBrowser(t)
	defer cancel()

	errs := common.NewJSErrorCollector(ctx)
	if err := navigateAndWait(ctx, serverURL()+"/"); err != nil {
		t.Fatal(err)
	}

	takeScreenshot(t, ctx, "smoke", "scanner-no-js-errors.png")

	if errs.HasErrors() {
		t.Errorf("JS errors on scanner page:\n  %s", strings.Join(errs.Errors(), "\n  "))
	}
}

func TestSmokeScanFormPresent(t *testing.T) {
	ctx, cancel := newBrowser(t)
	defer cancel()

	if err := navigateAndWait(ctx, serverURL()+"/"); err != nil {
		t.Fatal(err)
	}

	takeScreenshot(t, ctx, "smoke", "scan-form.png")

	for _, sel := range []string{"#scan-form", "#scan-form input[name=address]", "#scan-form button[type=submit]", ".intro"} {
		visible, err := isVisible(ctx, sel)
		if err != nil {
			t.Fatal(err)
		}
		if !visible {
			t.Errorf("%s not visible", sel)
		}
	}

	// The reset form only appears once a scan has started.
	if n, err := elementCount(ctx, ".reset-form"); err != nil {
		t.Fatal(err)
	} else if n != 0 {
		t.Errorf("expected no reset form on idle page, got %d", n)
	}
}

func TestSmokeCSRFFieldPopulated(t *testing.T) {
	ctx, cancel := newBrowser(t)
	defer cancel()

	if err := navigateAndWait(ctx, serverURL()+"/"); err != nil {
		t.Fatal(err)
	}

	ok, err := common.EvalBool(ctx, `
		(() => {
			const f = document.querySelector('#scan-form input[name=_csrf]');
			return !!f && f.value.length >= 32 && document.cookie.includes('_csrf=' + f.value);
		})()
	`)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected hidden _csrf field to match the _csrf cookie")
	}
}

func TestSmokeBranding(t *testing.T) {
	ctx, cancel := newBrowser(t)
	defer cancel()

	var brand string
	err := chromedp.Run(ctx,
		chromedp.Navigate(serverURL()+"/"),
		chromedp.WaitVisible(".brand-title", chromedp.ByQuery),
		chromedp.Text(".brand-title", &brand, chromedp.ByQuery),
	)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(brand, "Meme Scanner") {
		t.Errorf("brand title = %q, want contains Meme Scanner", brand)
	}
}

func TestSmokeLanguageSwitch(t *testing.T) {
	ctx, cancel := newBrowser(t)
	defer cancel()

	if err := navigateAndWait(ctx, serverURL()+"/"); err != nil {
		t.Fatal(err)
	}
	if err := switchLanguage(ctx, "ja"); err != nil {
		t.Fatal(err)
	}

	takeScreenshot(t, ctx, "smoke", "language-ja.png")

	if err := assertTextContains(ctx, "#scan-form button[type=submit]", "スキャン開始", "scan button"); err != nil {
		t.Error(err)
	}

	var lang string
	if err := chromedp.Run(ctx, chromedp.Evaluate(`document.documentElement.lang`, &lang)); err != nil {
		t.Fatal(err)
	}
	if lang != "ja" {
		t.Errorf("html lang = %q, want ja", lang)
	}

	// Back to English so later tests in the same profile are unaffected.
	if err := switchLanguage(ctx, "en"); err != nil {
		t.Fatal(err)
	}
	if err := assertTextContains(ctx, "#scan-form button[type=submit]", "Start Scan", "scan button"); err != nil {
		t.Error(err)
	}
}

func TestSmokeActiveLocaleMarked(t *testing.T) {
	ctx, cancel := newBrowser(t)
	defer cancel()

	if err := navigateAndWait(ctx, serverURL()+"/lang?l=ja"); err != nil {
		t.Fatal(err)
	}

	n, err := elementCount(ctx, `a.lang-opt.active[hreflang="ja"]`)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected ja marked active, got %d matches", n)
	}
}

func TestSmokeCSSLoaded(t *testing.T) {
	ctx, cancel := newBrowser(t)
	defer cancel()

	var fontFamily string
	err := chromedp.Run(ctx,
		chromedp.Navigate(serverURL()+"/"),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.Evaluate(`getComputedStyle(document.body).fontFamily`, &fontFamily),
	)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(strings.ToLower(fontFamily), "system-ui") {
		t.Errorf("font-family = %q, want the app.css stack", fontFamily)
	}
}

func TestSmokeMobileViewport(t *testing.T) {
	ctx, cancel := newBrowser(t)
	defer cancel()

	resp, err := common.RunChecks(ctx, common.CheckRequest{
		URL:        serverURL() + "/",
		Viewport:   "375x812",
		Screenshot: common.GetScreenshotDir("smoke") + "/mobile.png",
		WaitMs:     500,
		Checks: []string{
			"#scan-form|visible",
			".lang-opt|count>=2",
			"footer.footer|exists",
		},
		Evals: []string{
			`document.documentElement.scrollWidth <= window.innerWidth + 1`,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range resp.Results {
		if !r.Pass {
			t.Errorf("%s: %s", r.Name, r.Detail)
		}
	}
}

func TestSmokeFooterVersionDisplay(t *testing.T) {
	ctx, cancel := newBrowser(t)
	defer cancel()

	if err := navigateAndWait(ctx, serverURL()+"/"); err != nil {
		t.Fatal(err)
	}

	versionOk, err := common.EvalBool(ctx, fmt.Sprintf(`
		(() => {
			const footer = document.querySelector('.footer');
			if (!footer) return false;
			return /%s/.test(footer.textContent);
		})()
	`, `v(dev|\d+\.\d+\.\d+)`))
	if err != nil {
		t.Fatal(err)
	}
	if !versionOk {
		t.Error("expected footer to carry the version")
	}
}
