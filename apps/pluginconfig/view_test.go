// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package pluginconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/framegrace/plugconf/config"
	"github.com/framegrace/plugconf/internal/popup"
	"github.com/framegrace/plugconf/registry"
)

func newTestView(t *testing.T) (*View, string) {
	t.Helper()
	return newTestViewFor(t, "extract")
}

func newTestViewFor(t *testing.T, name string) (*View, string) {
	t.Helper()
	reg := registry.New()
	registry.RegisterBuiltIns(reg)
	schema := reg.Get(name)
	if schema == nil {
		t.Fatalf("expected built-in %s schema", name)
	}

	path := filepath.Join(t.TempDir(), name+".ini")
	cfg, err := config.Load(schema, path)
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	dlg, err := popup.NewDialog(cfg)
	if err != nil {
		t.Fatalf("NewDialog: %v", err)
	}
	v, err := New(dlg, Options{Screen: popup.Rect{W: 100, H: 30}, ScalingFactor: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return v, path
}

func sendKey(v *View, key tcell.Key, mod tcell.ModMask) {
	v.Primitive().InputHandler()(tcell.NewEventKey(key, 0, mod), func(tview.Primitive) {})
}

func readScreenLine(screen tcell.Screen, x, y, width int) string {
	runes := make([]rune, width)
	for i := 0; i < width; i++ {
		ch, _, _, _ := screen.GetContent(x+i, y)
		if ch == 0 {
			ch = ' '
		}
		runes[i] = ch
	}
	return strings.TrimRight(string(runes), " ")
}

func findField(t *testing.T, v *View, section, key string) *field {
	t.Helper()
	for _, page := range v.cats {
		for _, panel := range page.panels {
			if panel.section.Name != section {
				continue
			}
			for _, f := range panel.fields {
				if f.key == key {
					return f
				}
			}
		}
	}
	t.Fatalf("field %s.%s not found", section, key)
	return nil
}

func TestCategoryTabsGlobalFirst(t *testing.T) {
	v, _ := newTestView(t)

	want := []string{"Global", "Align", "Detect", "Mask"}
	if len(v.catBar.labels) != len(want) {
		t.Fatalf("expected %d tabs, got %v", len(want), v.catBar.labels)
	}
	for i, label := range want {
		if v.catBar.labels[i] != label {
			t.Fatalf("expected tab %d to be %q, got %q", i, label, v.catBar.labels[i])
		}
	}
}

func TestNestedCategoryGetsPluginTabs(t *testing.T) {
	v, _ := newTestView(t)

	detect := v.cats[2]
	if detect.tabs == nil {
		t.Fatalf("expected detect category to have plugin tabs")
	}
	if got := detect.tabs.labels; len(got) != 2 || got[0] != "Mtcnn" || got[1] != "S3fd" {
		t.Fatalf("unexpected plugin tabs %v", got)
	}
	if v.cats[0].tabs != nil || v.cats[1].tabs != nil {
		t.Fatalf("expected single-plugin categories without sub tabs")
	}
}

func TestFieldKinds(t *testing.T) {
	v, _ := newTestView(t)

	cases := []struct {
		section, key string
		kind         fieldKind
	}{
		{"global", "allow_growth", fieldBool},
		{"detect.mtcnn", "minsize", fieldInt},
		{"detect.mtcnn", "scalefactor", fieldFloat},
	}
	for _, tc := range cases {
		if f := findField(t, v, tc.section, tc.key); f.kind != tc.kind {
			t.Fatalf("%s.%s: expected kind %d, got %d", tc.section, tc.key, tc.kind, f.kind)
		}
	}
}

func TestKeyboardNavigation(t *testing.T) {
	v, _ := newTestView(t)

	sendKey(v, tcell.KeyRight, tcell.ModCtrl)
	sendKey(v, tcell.KeyRight, tcell.ModCtrl)
	if got := v.CurrentCategory(); got != 2 {
		t.Fatalf("expected detect category, got %d", got)
	}

	sendKey(v, tcell.KeyRight, tcell.ModAlt)
	if got := v.CurrentPlugin(); got != 1 {
		t.Fatalf("expected second plugin, got %d", got)
	}
	sendKey(v, tcell.KeyRight, tcell.ModAlt)
	if got := v.CurrentPlugin(); got != 0 {
		t.Fatalf("expected plugin tabs to wrap, got %d", got)
	}

	sendKey(v, tcell.KeyLeft, tcell.ModCtrl)
	sendKey(v, tcell.KeyLeft, tcell.ModCtrl)
	sendKey(v, tcell.KeyLeft, tcell.ModCtrl)
	if got := v.CurrentCategory(); got != 3 {
		t.Fatalf("expected category tabs to wrap to the last tab, got %d", got)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	v, _ := newTestView(t)

	f := findField(t, v, "detect.s3fd", "confidence")
	in := f.item.(*tview.InputField)
	in.SetText("90")

	sendKey(v, tcell.KeyCtrlR, tcell.ModCtrl)
	if got := in.GetText(); got != "50" {
		t.Fatalf("expected confidence reset to 50, got %q", got)
	}
	cb := findField(t, v, "global", "allow_growth").item.(*tview.Checkbox)
	if cb.IsChecked() {
		t.Fatalf("expected allow_growth reset to false")
	}
	if v.dialog.Closed() {
		t.Fatalf("expected reset to keep the dialog open")
	}
}

func TestSaveWritesEdits(t *testing.T) {
	v, path := newTestView(t)
	closed := false
	v.OnClose(func() { closed = true })

	findField(t, v, "detect.s3fd", "confidence").item.(*tview.InputField).SetText("75")
	findField(t, v, "global", "allow_growth").item.(*tview.Checkbox).SetChecked(true)

	sendKey(v, tcell.KeyCtrlS, tcell.ModCtrl)
	if !closed {
		t.Fatalf("expected dialog to close after save")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, want := range []string{"confidence = 75", "allow_growth = true", "minsize = 20"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("expected %q in saved file, got:\n%s", want, data)
		}
	}
}

func TestEscapeCancels(t *testing.T) {
	v, path := newTestView(t)
	before, _ := os.ReadFile(path)

	findField(t, v, "align.fan", "batch-size").item.(*tview.InputField).SetText("99")
	sendKey(v, tcell.KeyEscape, tcell.ModNone)

	if !v.dialog.Closed() {
		t.Fatalf("expected dialog closed")
	}
	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Fatalf("expected cancel to leave the file untouched")
	}
}

func TestButtonTooltips(t *testing.T) {
	v, _ := newTestView(t)

	want := map[string]string{
		ButtonReset:  TooltipReset,
		ButtonOK:     TooltipOK,
		ButtonCancel: TooltipCancel,
	}
	if got := v.actions.GetButtonCount(); got != 3 {
		t.Fatalf("expected 3 buttons, got %d", got)
	}
	for i := 0; i < 3; i++ {
		btn := v.actions.GetButton(i)
		btn.Focus(func(tview.Primitive) {})
		if got := v.Status(); strings.TrimSpace(got) != want[btn.GetLabel()] {
			t.Fatalf("button %q: expected tooltip %q, got %q", btn.GetLabel(), want[btn.GetLabel()], got)
		}
	}
}

func TestMountRemovesPageOnClose(t *testing.T) {
	v, _ := newTestView(t)
	pages := tview.NewPages()
	var focused tview.Primitive
	v.Mount(pages, func(p tview.Primitive) { focused = p })

	name := "popup:extract"
	if !pages.HasPage(name) {
		t.Fatalf("expected dialog page to be mounted")
	}
	if focused == nil {
		t.Fatalf("expected the dialog to take focus")
	}
	v.Close()
	if pages.HasPage(name) {
		t.Fatalf("expected dialog page removed after close")
	}
}

func TestDrawShowsTitleAndTabs(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(100, 30)

	v, _ := newTestView(t)
	rect := v.Rect()
	if rect != (popup.Rect{X: 8, Y: 4, W: 72, H: 20}) {
		t.Fatalf("unexpected dialog rect %+v", rect)
	}
	v.Primitive().Draw(screen)

	title := readScreenLine(screen, 0, rect.Y, 100)
	if !strings.Contains(title, "Extract Plugins") {
		t.Fatalf("expected title in border, got %q", title)
	}
	tabs := readScreenLine(screen, 0, rect.Y+1, 100)
	for _, label := range []string{"Global", "Align", "Detect", "Mask"} {
		if !strings.Contains(tabs, label) {
			t.Fatalf("expected tab %q in %q", label, tabs)
		}
	}
}

func TestTabLabelTruncated(t *testing.T) {
	if got := tabLabel("Short"); got != "Short" {
		t.Fatalf("expected short label unchanged, got %q", got)
	}
	got := tabLabel("A Very Long Plugin Name Indeed")
	if !strings.HasSuffix(got, "…") || len([]rune(got)) > maxTabLabel {
		t.Fatalf("expected truncated label, got %q", got)
	}
}

func TestChoicesKeepCurrentValue(t *testing.T) {
	opt := &popup.Option{Key: "loss", Default: "mae", Value: "custom", Choices: []string{"mae", "mse"}}
	got := choicesFor(opt)
	if len(got) != 3 || got[2] != "custom" {
		t.Fatalf("expected current value appended, got %v", got)
	}
	if choicesFor(&popup.Option{Key: "free"}) != nil {
		t.Fatalf("expected nil choices for free-form option")
	}
}

func TestEscapeClosesOpenDropDownFirst(t *testing.T) {
	v, _ := newTestViewFor(t, "train")

	f := findField(t, v, "global", "loss_function")
	if f.kind != fieldCombo {
		t.Fatalf("expected drop-down for loss_function, got kind %d", f.kind)
	}
	dd := f.item.(*tview.DropDown)
	dd.InputHandler()(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), func(tview.Primitive) {})
	if !dd.IsOpen() {
		t.Fatalf("expected drop-down list to be open")
	}

	sendKey(v, tcell.KeyEscape, tcell.ModNone)
	if v.dialog.Closed() {
		t.Fatalf("expected Esc on an open drop-down to leave the dialog open")
	}
}

func TestTabClickSwitchesCategory(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(100, 30)

	v, _ := newTestView(t)
	v.Primitive().Draw(screen)

	y := v.Rect().Y + 1
	line := readScreenLine(screen, 0, y, 100)
	idx := strings.Index(line, "Align")
	if idx < 0 {
		t.Fatalf("expected Align tab on screen, got %q", line)
	}
	x := utf8.RuneCountInString(line[:idx])
	event := tcell.NewEventMouse(x+1, y, tcell.Button1, tcell.ModNone)
	v.Primitive().MouseHandler()(tview.MouseLeftClick, event, func(tview.Primitive) {})

	if got := v.CurrentCategory(); got != 1 {
		t.Fatalf("expected click to select category 1, got %d", got)
	}
}

func TestHumanLabelNonASCII(t *testing.T) {
	if got := humanLabel("élan_vital"); got != "Élan Vital" {
		t.Fatalf("expected 'Élan Vital', got %q", got)
	}
}
